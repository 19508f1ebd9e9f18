package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestWrapMongoErr(t *testing.T) {
	t.Run("Should pass nil through", func(t *testing.T) {
		assert.NoError(t, wrapMongoErr(nil))
	})
	t.Run("Should map missing documents to ErrNotFound", func(t *testing.T) {
		assert.ErrorIs(t, wrapMongoErr(mongo.ErrNoDocuments), ErrNotFound)
	})
	t.Run("Should map unique index violations to ErrDuplicate", func(t *testing.T) {
		dup := mongo.WriteException{WriteErrors: mongo.WriteErrors{{Code: 11000}}}
		assert.ErrorIs(t, wrapMongoErr(dup), ErrDuplicate)
	})
	t.Run("Should leave other errors untouched", func(t *testing.T) {
		err := errors.New("connection reset")
		assert.Equal(t, err, wrapMongoErr(err))
	})
}
