package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Event struct {
	ID           primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Name         string               `bson:"name" json:"name"`
	Schedule     string               `bson:"schedule" json:"schedule"`
	Address      string               `bson:"address,omitempty" json:"address,omitempty"`
	Participants []primitive.ObjectID `bson:"participants" json:"participants"`
	Active       bool                 `bson:"active" json:"active"`
}

// PopulatedEvent carries the participant records instead of their ids.
type PopulatedEvent struct {
	ID           primitive.ObjectID `bson:"_id" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Schedule     string             `bson:"schedule" json:"schedule"`
	Address      string             `bson:"address,omitempty" json:"address,omitempty"`
	Participants []UserRef          `bson:"participants" json:"participants"`
	Active       bool               `bson:"active" json:"active"`
}
