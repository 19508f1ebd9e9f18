package middleware

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

func DatabaseMiddleware(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("db", db)
		c.Next()
	}
}

func GetDatabase(c *gin.Context) *mongo.Database {
	db, exists := c.Get("db")
	if !exists {
		return nil
	}
	return db.(*mongo.Database)
}
