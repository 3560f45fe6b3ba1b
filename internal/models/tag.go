package models

import "go.mongodb.org/mongo-driver/v2/bson"

// Tag is the persisted shape of a tag document. Name carries a unique index.
type Tag struct {
	ID   bson.ObjectID `bson:"_id,omitempty"`
	Name string        `bson:"name"`
}
