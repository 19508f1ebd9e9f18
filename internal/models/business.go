package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Business struct {
	ID       primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Name     string               `bson:"name" json:"name"`
	Address  string               `bson:"address,omitempty" json:"address,omitempty"`
	Phone    string               `bson:"phone,omitempty" json:"phone,omitempty"`
	Email    string               `bson:"email,omitempty" json:"email,omitempty"`
	Events   []primitive.ObjectID `bson:"events" json:"events"`
	Managers []primitive.ObjectID `bson:"managers" json:"managers"`
	Active   bool                 `bson:"active" json:"active"`
}

// PopulatedBusiness carries the referenced event and manager records
// instead of their ids.
type PopulatedBusiness struct {
	ID       primitive.ObjectID `json:"id"`
	Name     string             `json:"name"`
	Address  string             `json:"address,omitempty"`
	Phone    string             `json:"phone,omitempty"`
	Email    string             `json:"email,omitempty"`
	Events   []Event            `json:"events"`
	Managers []UserRef          `json:"managers"`
	Active   bool               `json:"active"`
}
