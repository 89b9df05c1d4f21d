package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Friendship is the edge between two users. User1 is always the side that
// sent the request; User2 is the side that received it. PairKey identifies
// the unordered pair so the store can reject a second edge for the same two
// users no matter which of them sent it.
type Friendship struct {
	Id      primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	PairKey string             `json:"-" bson:"pairKey"`
	User1   string             `json:"user1" bson:"user1"`
	User2   string             `json:"user2" bson:"user2"`
	Status  FriendshipStatus   `json:"status" bson:"status"`
	Since   time.Time          `json:"since" bson:"since"`

	// SenderID mirrors User1 on records returned to callers, so they can
	// tell direction apart without knowing the storage layout.
	SenderID string `json:"senderId" bson:"-"`
}

type FriendshipStatus string

const (
	FriendshipStatusPending  FriendshipStatus = "pending"
	FriendshipStatusAccepted FriendshipStatus = "accepted"
)

// PairKeyFor builds the canonical key for the unordered pair {a, b}.
func PairKeyFor(a, b string) string {
	if strings.Compare(a, b) > 0 {
		a, b = b, a
	}
	return a + "|" + b
}
