package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Comment is the persisted shape of a comment document.
type Comment struct {
	ID        bson.ObjectID `bson:"_id,omitempty"`
	Content   string        `bson:"content"`
	Article   bson.ObjectID `bson:"article"`
	Author    bson.ObjectID `bson:"author"`
	CreatedAt time.Time     `bson:"createdAt"`
}
