package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashing(t *testing.T) {
	hashed, err := HashPassword("p1-secret")
	require.NoError(t, err)
	require.NotEqual(t, "p1-secret", hashed)

	t.Run("Should accept the original password", func(t *testing.T) {
		assert.True(t, CheckPassword("p1-secret", hashed))
	})
	t.Run("Should reject a wrong password", func(t *testing.T) {
		assert.False(t, CheckPassword("wrong", hashed))
	})
	t.Run("Should produce distinct hashes per call", func(t *testing.T) {
		again, err := HashPassword("p1-secret")
		require.NoError(t, err)
		assert.NotEqual(t, hashed, again)
	})
}
