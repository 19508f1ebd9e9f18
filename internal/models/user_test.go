package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestUserJSONNeverExposesPassword(t *testing.T) {
	user := User{
		ID:       primitive.NewObjectID(),
		Username: "ana",
		Email:    "ana@x.com",
		Password: "$2a$10$secret-hash",
		Birthday: "1990-01-01",
		Events:   []primitive.ObjectID{},
		Active:   true,
	}

	data, err := json.Marshal(user)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))

	_, hasPassword := decoded["password"]
	assert.False(t, hasPassword)
	assert.NotContains(t, string(data), "secret-hash")
	assert.Equal(t, "ana", decoded["username"])
}
