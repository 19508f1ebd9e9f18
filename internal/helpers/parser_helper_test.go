package helpers

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext(t *testing.T, rawQuery string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?"+rawQuery, nil)
	return c
}

func TestPaginationParams(t *testing.T) {
	t.Run("Should default to 0 and the endpoint limit when absent", func(t *testing.T) {
		skip, limit := PaginationParams(testContext(t, ""), 10)
		assert.Equal(t, 0, skip)
		assert.Equal(t, 10, limit)
	})
	t.Run("Should parse valid skip and limit", func(t *testing.T) {
		skip, limit := PaginationParams(testContext(t, "skip=20&limit=5"), 10)
		assert.Equal(t, 20, skip)
		assert.Equal(t, 5, limit)
	})
	t.Run("Should fall back on non-numeric input", func(t *testing.T) {
		skip, limit := PaginationParams(testContext(t, "skip=abc&limit=xyz"), 10)
		assert.Equal(t, 0, skip)
		assert.Equal(t, 10, limit)
	})
	t.Run("Should reject negative skip and non-positive limit", func(t *testing.T) {
		skip, limit := PaginationParams(testContext(t, "skip=-3&limit=0"), 10)
		assert.Equal(t, 0, skip)
		assert.Equal(t, 10, limit)
	})
	t.Run("Should honor a per-endpoint default limit", func(t *testing.T) {
		_, limit := PaginationParams(testContext(t, ""), 5)
		assert.Equal(t, 5, limit)
	})
}

func TestObjectIDParam(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("Should parse a valid hex id", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Params = gin.Params{{Key: "id", Value: "507f1f77bcf86cd799439011"}}
		id, err := ObjectIDParam(c, "id")
		require.NoError(t, err)
		assert.Equal(t, "507f1f77bcf86cd799439011", id.Hex())
	})
	t.Run("Should error on malformed id", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Params = gin.Params{{Key: "id", Value: "not-an-id"}}
		_, err := ObjectIDParam(c, "id")
		require.Error(t, err)
	})
}
