package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID           primitive.ObjectID `json:"_id" bson:"_id"`
	Name         string             `json:"name" bson:"name" validate:"required,min=2,max=50"`
	Username     string             `json:"username" bson:"username" validate:"required,min=3,max=30,alphanum"`
	Email        string             `json:"email" bson:"email" validate:"required,email"`
	Password     string             `json:"-" bson:"password" validate:"required,min=6"`
	ProfileImage string             `json:"profileImage" bson:"profileImage"`
	CreatedAt    time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// PublicUser is the shape sent back to clients, password hash omitted.
type PublicUser struct {
	ID           primitive.ObjectID `json:"_id"`
	Name         string             `json:"name"`
	Username     string             `json:"username"`
	Email        string             `json:"email"`
	ProfileImage string             `json:"profileImage"`
}

func (u User) Public() PublicUser {
	return PublicUser{
		ID:           u.ID,
		Name:         u.Name,
		Username:     u.Username,
		Email:        u.Email,
		ProfileImage: u.ProfileImage,
	}
}
