package utils

import "go.mongodb.org/mongo-driver/bson/primitive"

// NewHexID returns a fresh 24-character hex identifier. Therapists, services
// and addons use these so references stay checkable by IsValidObjectID.
func NewHexID() string {
	return primitive.NewObjectID().Hex()
}
