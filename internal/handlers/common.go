package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/eventos-app/backend/internal/helpers"
	"github.com/eventos-app/backend/internal/middleware"
	"github.com/eventos-app/backend/internal/services"
)

// AdminCredentials are the per-call credentials privileged endpoints
// must carry in their request body.
type AdminCredentials struct {
	AdminUsername string `json:"adminUsername"`
	AdminPassword string `json:"adminPassword"`
}

func getDB(c *gin.Context) (*mongo.Database, bool) {
	db := middleware.GetDatabase(c)
	if db == nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return nil, false
	}
	return db, true
}

// requireAdmin enforces the admin gate: missing credentials yield 401,
// credentials that do not resolve to an active admin with a matching
// password yield 403. On failure the response has already been written.
func requireAdmin(c *gin.Context, creds AdminCredentials) bool {
	if creds.AdminUsername == "" || creds.AdminPassword == "" {
		helpers.RespondWithError(c, http.StatusUnauthorized, "Admin credentials required.")
		return false
	}

	db, ok := getDB(c)
	if !ok {
		return false
	}

	_, err := services.NewUserService(db).LoginAdmin(c.Request.Context(), creds.AdminUsername, creds.AdminPassword)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			helpers.RespondWithError(c, http.StatusForbidden, "You do not have admin permissions.")
		} else {
			helpers.RespondWithError(c, http.StatusInternalServerError, "Error verifying admin credentials.")
		}
		return false
	}
	return true
}

func respondServiceError(c *gin.Context, err error, notFoundMessage string) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		helpers.RespondWithError(c, http.StatusNotFound, notFoundMessage)
	case errors.Is(err, services.ErrDuplicate):
		helpers.RespondWithError(c, http.StatusConflict, "A record with that username or email already exists.")
	default:
		helpers.RespondWithError(c, http.StatusInternalServerError, err.Error())
	}
}
