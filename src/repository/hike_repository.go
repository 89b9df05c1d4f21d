package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/trailmates/trailmates-server/src/models"
)

type hikeRepository struct {
	hikes    *mongo.Collection
	logs     *mongo.Collection
	wishlist *mongo.Collection
}

func NewHikeRepository(db *mongo.Database) HikeRepository {
	return &hikeRepository{
		hikes:    db.Collection("hikes"),
		logs:     db.Collection("hike_logs"),
		wishlist: db.Collection("wishlist"),
	}
}

func (r *hikeRepository) InsertHike(ctx context.Context, hike *models.Hike) (string, error) {
	if hike.Id.IsZero() {
		hike.Id = primitive.NewObjectID()
	}
	if _, err := r.hikes.InsertOne(ctx, hike); err != nil {
		return "", fmt.Errorf("insert hike: %w", err)
	}
	return hike.Id.Hex(), nil
}

func (r *hikeRepository) FindHikeByID(ctx context.Context, id string) (*models.Hike, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	var hike models.Hike
	err = r.hikes.FindOne(ctx, bson.M{"_id": objectID}).Decode(&hike)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find hike %s: %w", id, err)
	}
	return &hike, nil
}

func (r *hikeRepository) FindHikesByIDs(ctx context.Context, ids []string) ([]models.Hike, error) {
	objectIDs := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		objectID, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			continue
		}
		objectIDs = append(objectIDs, objectID)
	}
	if len(objectIDs) == 0 {
		return nil, nil
	}

	cursor, err := r.hikes.Find(ctx, bson.M{"_id": bson.M{"$in": objectIDs}})
	if err != nil {
		return nil, fmt.Errorf("query hikes by ids: %w", err)
	}
	defer cursor.Close(ctx)

	var hikes []models.Hike
	if err := cursor.All(ctx, &hikes); err != nil {
		return nil, fmt.Errorf("decode hikes: %w", err)
	}
	return hikes, nil
}

func (r *hikeRepository) SearchHikes(ctx context.Context, filter HikeFilter) ([]models.Hike, error) {
	query := bson.M{}
	if filter.Region != "" {
		query["region"] = filter.Region
	}
	if filter.Difficulty != "" {
		query["difficulty"] = filter.Difficulty
	}
	if filter.AfterID != "" {
		afterID, err := primitive.ObjectIDFromHex(filter.AfterID)
		if err == nil {
			query["_id"] = bson.M{"$gt": afterID}
		}
	}

	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	if filter.Limit > 0 {
		opts.SetLimit(filter.Limit)
	}

	cursor, err := r.hikes.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("search hikes: %w", err)
	}
	defer cursor.Close(ctx)

	var hikes []models.Hike
	if err := cursor.All(ctx, &hikes); err != nil {
		return nil, fmt.Errorf("decode hikes: %w", err)
	}
	return hikes, nil
}

func (r *hikeRepository) InsertLog(ctx context.Context, log *models.HikeLog) (string, error) {
	if log.Id.IsZero() {
		log.Id = primitive.NewObjectID()
	}
	if _, err := r.logs.InsertOne(ctx, log); err != nil {
		return "", fmt.Errorf("insert hike log: %w", err)
	}
	return log.Id.Hex(), nil
}

func (r *hikeRepository) FindLogsByUser(ctx context.Context, userID string, limit int64) ([]models.HikeLog, error) {
	return r.findLogs(ctx, bson.M{"userId": userID}, limit)
}

func (r *hikeRepository) FindLogsByUsers(ctx context.Context, userIDs []string, limit int64) ([]models.HikeLog, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}
	return r.findLogs(ctx, bson.M{"userId": bson.M{"$in": userIDs}}, limit)
}

func (r *hikeRepository) findLogs(ctx context.Context, filter bson.M, limit int64) ([]models.HikeLog, error) {
	opts := options.Find().SetSort(bson.D{{Key: "completedAt", Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cursor, err := r.logs.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("query hike logs: %w", err)
	}
	defer cursor.Close(ctx)

	var logs []models.HikeLog
	if err := cursor.All(ctx, &logs); err != nil {
		return nil, fmt.Errorf("decode hike logs: %w", err)
	}
	return logs, nil
}

func (r *hikeRepository) FindWishlist(ctx context.Context, userID string) ([]models.WishlistItem, error) {
	opts := options.Find().SetSort(bson.D{{Key: "addedAt", Value: -1}})
	cursor, err := r.wishlist.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("query wishlist: %w", err)
	}
	defer cursor.Close(ctx)

	var items []models.WishlistItem
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("decode wishlist: %w", err)
	}
	return items, nil
}

func (r *hikeRepository) FindWishlistItem(ctx context.Context, userID, hikeID string) (*models.WishlistItem, error) {
	hikeObjectID, err := primitive.ObjectIDFromHex(hikeID)
	if err != nil {
		return nil, nil
	}

	var item models.WishlistItem
	err = r.wishlist.FindOne(ctx, bson.M{"userId": userID, "hikeId": hikeObjectID}).Decode(&item)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find wishlist item: %w", err)
	}
	return &item, nil
}

func (r *hikeRepository) InsertWishlistItem(ctx context.Context, item *models.WishlistItem) error {
	if item.Id.IsZero() {
		item.Id = primitive.NewObjectID()
	}
	if _, err := r.wishlist.InsertOne(ctx, item); err != nil {
		return fmt.Errorf("insert wishlist item: %w", err)
	}
	return nil
}

func (r *hikeRepository) DeleteWishlistItem(ctx context.Context, userID, hikeID string) error {
	hikeObjectID, err := primitive.ObjectIDFromHex(hikeID)
	if err != nil {
		return fmt.Errorf("invalid hike id %q", hikeID)
	}
	if _, err := r.wishlist.DeleteOne(ctx, bson.M{"userId": userID, "hikeId": hikeObjectID}); err != nil {
		return fmt.Errorf("delete wishlist item: %w", err)
	}
	return nil
}
