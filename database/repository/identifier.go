// Package repository holds shared helpers for the Mongo repositories.
package repository

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// IDFilters returns the lookup filters for a client-supplied identifier, in
// resolution order. Historically documents were keyed either by a raw string
// or by a generated ObjectID, so lookups try the exact string first and fall
// back to the parsed ObjectID when the string is valid 24-hex. New writes
// always store the canonical hex string, so the fallback only serves
// pre-migration data.
func IDFilters(id string) []bson.M {
	filters := []bson.M{{"_id": id}}
	if oid, err := primitive.ObjectIDFromHex(id); err == nil {
		filters = append(filters, bson.M{"_id": oid})
	}
	return filters
}

// NewID returns a freshly generated canonical identifier string.
func NewID() string {
	return primitive.NewObjectID().Hex()
}
