package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type HikeDifficulty string

const (
	HikeDifficultyEasy     HikeDifficulty = "easy"
	HikeDifficultyModerate HikeDifficulty = "moderate"
	HikeDifficultyHard     HikeDifficulty = "hard"
)

// Hike is a catalog entry users can log or wishlist.
type Hike struct {
	Id             primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name           string             `json:"name" bson:"name"`
	Region         string             `json:"region" bson:"region"`
	DistanceKm     float64            `json:"distanceKm" bson:"distanceKm"`
	ElevationGainM int                `json:"elevationGainM" bson:"elevationGainM"`
	Difficulty     HikeDifficulty     `json:"difficulty" bson:"difficulty"`
	Description    string             `json:"description" bson:"description"`
	CreatedAt      time.Time          `json:"createdAt" bson:"createdAt"`
}

// HikeLog records that a user completed a hike.
type HikeLog struct {
	Id          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID      string             `json:"userId" bson:"userId"`
	HikeID      primitive.ObjectID `json:"hikeId" bson:"hikeId"`
	CompletedAt time.Time          `json:"completedAt" bson:"completedAt"`
	DurationMin int                `json:"durationMin" bson:"durationMin"`
	Notes       string             `json:"notes" bson:"notes"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
}

// WishlistItem bookmarks a hike for a user.
type WishlistItem struct {
	Id      primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID  string             `json:"userId" bson:"userId"`
	HikeID  primitive.ObjectID `json:"hikeId" bson:"hikeId"`
	AddedAt time.Time          `json:"addedAt" bson:"addedAt"`
}
