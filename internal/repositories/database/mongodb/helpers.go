package mongodb

import (
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// hexIDs converts object IDs to their hex string form.
func hexIDs(ids []bson.ObjectID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.Hex()
	}
	return out
}

// objectIDs parses hex strings into object IDs, failing on the first bad one.
func objectIDs(hexes []string) ([]bson.ObjectID, error) {
	out := make([]bson.ObjectID, len(hexes))
	for i, h := range hexes {
		id, err := bson.ObjectIDFromHex(h)
		if err != nil {
			return nil, fmt.Errorf("invalid object id %q: %w", h, err)
		}
		out[i] = id
	}
	return out, nil
}
