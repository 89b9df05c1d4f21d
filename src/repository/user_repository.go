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

type userRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) UserRepository {
	return &userRepository{coll: db.Collection("users")}
}

func (r *userRepository) Insert(ctx context.Context, user *models.User) (string, error) {
	if user.Id.IsZero() {
		user.Id = primitive.NewObjectID()
	}
	_, err := r.coll.InsertOne(ctx, user)
	if err != nil {
		return "", fmt.Errorf("insert user: %w", err)
	}
	return user.Id.Hex(), nil
}

func (r *userRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// An identifier this store never issued cannot name a user.
		return nil, nil
	}
	return r.findOne(ctx, bson.M{"_id": objectID})
}

func (r *userRepository) FindByIDs(ctx context.Context, ids []string) ([]models.User, error) {
	if len(ids) > MaxUsersPerBatch {
		return nil, fmt.Errorf("at most %d ids per lookup, got %d", MaxUsersPerBatch, len(ids))
	}

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

	cursor, err := r.coll.Find(ctx, bson.M{"_id": bson.M{"$in": objectIDs}})
	if err != nil {
		return nil, fmt.Errorf("query users by ids: %w", err)
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}
	return users, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *userRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.findOne(ctx, bson.M{"username": username})
}

func (r *userRepository) Update(ctx context.Context, user *models.User) error {
	_, err := r.coll.ReplaceOne(ctx, bson.M{"_id": user.Id}, user)
	if err != nil {
		return fmt.Errorf("update user %s: %w", user.Id.Hex(), err)
	}
	return nil
}

func (r *userRepository) Search(ctx context.Context, query string, limit int64) ([]models.User, error) {
	filter := bson.M{"$or": bson.A{
		bson.M{"username": bson.M{"$regex": "^" + query, "$options": "i"}},
		bson.M{"name": bson.M{"$regex": "^" + query, "$options": "i"}},
	}}

	cursor, err := r.coll.Find(ctx, filter, options.Find().SetLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("search users: %w", err)
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}
	return users, nil
}

func (r *userRepository) findOne(ctx context.Context, filter bson.M) (*models.User, error) {
	var user models.User
	err := r.coll.FindOne(ctx, filter).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &user, nil
}
