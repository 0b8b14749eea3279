package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MaxThoughtTextLength bounds both thought and reaction bodies.
const MaxThoughtTextLength = 280

// Thought is a posted text item. Username is fixed at creation from the
// author's verified identity, never from caller input.
type Thought struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	ThoughtText string             `bson:"thoughtText"`
	Username    string             `bson:"username"`
	CreatedAt   time.Time          `bson:"createdAt"`
	Reactions   []Reaction         `bson:"reactions"`
}

// Reaction is an embedded reply on a thought.
type Reaction struct {
	ID           primitive.ObjectID `bson:"_id"`
	ReactionBody string             `bson:"reactionBody"`
	Username     string             `bson:"username"`
	CreatedAt    time.Time          `bson:"createdAt"`
}
