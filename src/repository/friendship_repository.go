package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/trailmates/trailmates-server/src/models"
)

type friendshipRepository struct {
	coll *mongo.Collection
}

func NewFriendshipRepository(db *mongo.Database) FriendshipRepository {
	return &friendshipRepository{coll: db.Collection("friendships")}
}

func (r *friendshipRepository) Insert(ctx context.Context, f *models.Friendship) (string, error) {
	if f.Id.IsZero() {
		f.Id = primitive.NewObjectID()
	}
	f.PairKey = models.PairKeyFor(f.User1, f.User2)

	_, err := r.coll.InsertOne(ctx, f)
	if err != nil {
		// The unique pairKey index turns create-if-absent into an atomic
		// conditional write; a duplicate-key error means the pair already
		// has an edge, whichever side sent it.
		if mongo.IsDuplicateKeyError(err) {
			return "", ErrDuplicatePair
		}
		return "", fmt.Errorf("insert friendship: %w", err)
	}
	return f.Id.Hex(), nil
}

func (r *friendshipRepository) FindByID(ctx context.Context, id string) (*models.Friendship, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	var f models.Friendship
	err = r.coll.FindOne(ctx, bson.M{"_id": objectID}).Decode(&f)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find friendship %s: %w", id, err)
	}
	return &f, nil
}

func (r *friendshipRepository) FindDirectional(ctx context.Context, requester, recipient string) ([]models.Friendship, error) {
	return r.findAll(ctx, bson.M{"user1": requester, "user2": recipient}, 0)
}

func (r *friendshipRepository) FindPendingInvolving(ctx context.Context, userID string) ([]models.Friendship, error) {
	filter := bson.M{
		"status": models.FriendshipStatusPending,
		"$or": bson.A{
			bson.M{"user1": userID},
			bson.M{"user2": userID},
		},
	}
	return r.findAll(ctx, filter, 0)
}

func (r *friendshipRepository) FindAcceptedByRequester(ctx context.Context, userID string, limit int64) ([]models.Friendship, error) {
	return r.findAll(ctx, bson.M{"user1": userID, "status": models.FriendshipStatusAccepted}, limit)
}

func (r *friendshipRepository) FindAcceptedByRecipient(ctx context.Context, userID string, limit int64) ([]models.Friendship, error) {
	return r.findAll(ctx, bson.M{"user2": userID, "status": models.FriendshipStatusAccepted}, limit)
}

func (r *friendshipRepository) UpdateStatus(ctx context.Context, id string, status models.FriendshipStatus) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid friendship id %q", id)
	}

	_, err = r.coll.UpdateOne(ctx, bson.M{"_id": objectID}, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return fmt.Errorf("update friendship %s: %w", id, err)
	}
	return nil
}

func (r *friendshipRepository) Delete(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid friendship id %q", id)
	}

	_, err = r.coll.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return fmt.Errorf("delete friendship %s: %w", id, err)
	}
	return nil
}

func (r *friendshipRepository) findAll(ctx context.Context, filter bson.M, limit int64) ([]models.Friendship, error) {
	opts := findOptions(limit)
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("query friendships: %w", err)
	}
	defer cursor.Close(ctx)

	var results []models.Friendship
	if err := cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("decode friendships: %w", err)
	}
	return results, nil
}
