package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Article is the persisted shape of an article document.
type Article struct {
	ID        bson.ObjectID   `bson:"_id,omitempty"`
	Title     string          `bson:"title"`
	Content   string          `bson:"content"`
	Summary   string          `bson:"summary"`
	Image     string          `bson:"image,omitempty"`
	Author    bson.ObjectID   `bson:"author"`
	Tags      []bson.ObjectID `bson:"tags"`
	Comments  []bson.ObjectID `bson:"comments"`
	CreatedAt time.Time       `bson:"createdAt"`
	UpdatedAt time.Time       `bson:"updatedAt"`
}
