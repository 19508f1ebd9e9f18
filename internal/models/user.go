package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID       primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Username string               `bson:"username" json:"username"`
	Email    string               `bson:"email" json:"email"`
	Password string               `bson:"password" json:"-"`
	Birthday string               `bson:"birthday" json:"birthday"`
	Events   []primitive.ObjectID `bson:"events" json:"events"`
	Active   bool                 `bson:"active" json:"active"`
	Admin    bool                 `bson:"admin" json:"admin"`
}

// UserRef is the projection used when populating participant and
// manager reference sets.
type UserRef struct {
	ID       primitive.ObjectID `bson:"_id" json:"id"`
	Username string             `bson:"username" json:"username"`
	Email    string             `bson:"email" json:"email"`
}
