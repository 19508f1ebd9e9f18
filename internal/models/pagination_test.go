package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPagination(t *testing.T) {
	t.Run("Should report more pages when window ends before total", func(t *testing.T) {
		p := NewPagination(0, 10, 25)
		assert.Equal(t, int64(25), p.Total)
		assert.True(t, p.HasMore)
	})
	t.Run("Should report no more pages when window reaches total", func(t *testing.T) {
		p := NewPagination(15, 10, 25)
		assert.False(t, p.HasMore)
	})
	t.Run("Should report no more pages when window passes total", func(t *testing.T) {
		p := NewPagination(30, 10, 25)
		assert.False(t, p.HasMore)
	})
	t.Run("Should report no more pages on empty result set", func(t *testing.T) {
		p := NewPagination(0, 10, 0)
		assert.False(t, p.HasMore)
	})
	t.Run("Should keep the requested window in the response", func(t *testing.T) {
		p := NewPagination(5, 7, 100)
		assert.Equal(t, 5, p.Skip)
		assert.Equal(t, 7, p.Limit)
		assert.True(t, p.HasMore)
	})
}
