// Package models defines the documents persisted by the server.
package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// User is the account document. Friends holds one-way references to other
// users (a set: no duplicates); Thoughts holds the ids of the user's
// thoughts in creation order.
type User struct {
	ID           primitive.ObjectID   `bson:"_id,omitempty"`
	Username     string               `bson:"username"`
	Email        string               `bson:"email"`
	PasswordHash string               `bson:"passwordHash"`
	Friends      []primitive.ObjectID `bson:"friends"`
	Thoughts     []primitive.ObjectID `bson:"thoughts"`
}
