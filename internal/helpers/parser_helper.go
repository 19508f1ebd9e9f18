package helpers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func StringToInt(s string) (int, error) {
	return strconv.Atoi(s)
}

// PaginationParams reads skip and limit from the query string. Missing,
// non-numeric or out-of-range values fall back to the defaults instead
// of erroring; limit defaults per endpoint.
func PaginationParams(c *gin.Context, defaultLimit int) (skip, limit int) {
	skip = 0
	limit = defaultLimit

	if s, err := StringToInt(c.Query("skip")); err == nil && s > 0 {
		skip = s
	}
	if l, err := StringToInt(c.Query("limit")); err == nil && l > 0 {
		limit = l
	}
	return skip, limit
}

// ObjectIDParam parses a path parameter as a Mongo ObjectID.
func ObjectIDParam(c *gin.Context, name string) (primitive.ObjectID, error) {
	return primitive.ObjectIDFromHex(c.Param(name))
}
