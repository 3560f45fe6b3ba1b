package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// User is the persisted shape of a user document in the users collection.
// Email, username and refreshToken carry unique indexes; refreshToken's index
// is partial so that logged-out users (no token set) do not collide.
type User struct {
	ID           bson.ObjectID   `bson:"_id,omitempty"`
	Username     string          `bson:"username"`
	Name         string          `bson:"name"`
	Email        string          `bson:"email"`
	Password     string          `bson:"password"`
	Bio          string          `bson:"bio,omitempty"`
	Avatar       string          `bson:"avatar,omitempty"`
	CreatedAt    time.Time       `bson:"createdAt"`
	RefreshToken *string         `bson:"refreshToken,omitempty"`
	Followers    []bson.ObjectID `bson:"followers"`
	Followings   []bson.ObjectID `bson:"followings"`
}
