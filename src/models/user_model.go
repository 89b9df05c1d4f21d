package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	Id             primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name           string             `json:"name" bson:"name"`
	Username       string             `json:"username" bson:"username"`
	Email          string             `json:"email" bson:"email"`
	Password       string             `json:"password,omitempty" bson:"password"`
	ProfilePicture string             `json:"profile_picture" bson:"profile_picture"`
	Bio            string             `json:"bio" bson:"bio"`
	Location       string             `json:"location" bson:"location"`
	FavoriteRegion string             `json:"favorite_region" bson:"favorite_region"`
}

type UserDto struct {
	ID             primitive.ObjectID `bson:"_id" json:"id"`
	Name           string             `bson:"name" json:"name"`
	Username       string             `bson:"username" json:"username"`
	ProfilePicture string             `bson:"profile_picture" json:"profilePicture"`
	Location       string             `bson:"location" json:"location,omitempty"`
}

// Dto strips the credential fields for responses that embed other users.
func (u User) Dto() UserDto {
	return UserDto{
		ID:             u.Id,
		Name:           u.Name,
		Username:       u.Username,
		ProfilePicture: u.ProfilePicture,
		Location:       u.Location,
	}
}
