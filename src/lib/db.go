package lib

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/trailmates/trailmates-server/src/config"
)

// ConnectDB connects to MongoDB and bootstraps the indexes the collections
// rely on. The returned database handle is passed to the repositories.
func ConnectDB(cfg *config.MongoConfig) (*mongo.Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	db := client.Database(cfg.Database)
	if err := ensureIndexes(ctx, db); err != nil {
		return nil, err
	}

	zap.L().Info("connected to MongoDB", zap.String("database", cfg.Database))
	return db, nil
}

// ensureIndexes creates the indexes the application depends on. The unique
// pairKey index is what makes friendship creation an atomic
// create-if-absent: a second edge for the same unordered pair is rejected
// by the store no matter which side sent it.
func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	unique := options.Index().SetUnique(true)

	_, err := db.Collection("friendships").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "pairKey", Value: 1}}, Options: unique},
		{Keys: bson.D{{Key: "user1", Value: 1}, {Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "user2", Value: 1}, {Key: "status", Value: 1}}},
	})
	if err != nil {
		return err
	}

	_, err = db.Collection("users").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
		{Keys: bson.D{{Key: "username", Value: 1}}, Options: options.Index().SetUnique(true)},
	})
	if err != nil {
		return err
	}

	_, err = db.Collection("hike_logs").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "completedAt", Value: -1}}},
	})
	if err != nil {
		return err
	}

	_, err = db.Collection("wishlist").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "hikeId", Value: 1}}, Options: options.Index().SetUnique(true)},
	})
	return err
}
