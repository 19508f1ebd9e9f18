package services

import (
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
)

var (
	// ErrNotFound signals that the target record is absent or filtered
	// out by its active state.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate signals a unique-index violation on creation.
	ErrDuplicate = errors.New("duplicate record")

	// ErrInvalidCredentials covers both unknown username and wrong
	// password so a login failure never reveals which one it was.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

func wrapMongoErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicate
	}
	return err
}
