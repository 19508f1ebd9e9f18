package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/eventos-app/backend/internal/helpers"
	"github.com/eventos-app/backend/internal/models"
	"github.com/eventos-app/backend/internal/services"
)

type CreateUserRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Birthday string `json:"birthday" binding:"required"`
}

// userUpdatableFields is the whitelist for generic user updates. The
// password is deliberately absent: password changes must not go through
// the generic update endpoint.
var userUpdatableFields = []string{"username", "email", "birthday"}

// buildPatch extracts whitelisted string fields from a loosely-typed
// body. A payload carrying a password field is rejected outright.
func buildPatch(c *gin.Context, allowed []string) (bson.M, bool) {
	var body map[string]interface{}
	if err := c.ShouldBindJSON(&body); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return nil, false
	}
	if _, hasPassword := body["password"]; hasPassword {
		helpers.RespondWithError(c, http.StatusBadRequest, "Password cannot be changed through this endpoint.")
		return nil, false
	}

	patch := bson.M{}
	for _, field := range allowed {
		if value, ok := body[field].(string); ok {
			patch[field] = value
		}
	}
	if len(patch) == 0 {
		helpers.RespondWithError(c, http.StatusBadRequest, "No updatable fields provided.")
		return nil, false
	}
	return patch, true
}

func CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	db, ok := getDB(c)
	if !ok {
		return
	}

	user, err := services.NewUserService(db).Create(c.Request.Context(), &models.User{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Birthday: req.Birthday,
	})
	if err != nil {
		respondServiceError(c, err, "Failed to create user.")
		return
	}

	c.JSON(http.StatusCreated, user)
}

func ListUsers(c *gin.Context) {
	db, ok := getDB(c)
	if !ok {
		return
	}

	skip, limit := helpers.PaginationParams(c, 10)
	users, total, err := services.NewUserService(db).GetAll(c.Request.Context(), skip, limit)
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving users.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"users":      users,
		"pagination": models.NewPagination(skip, limit, total),
	})
}

// ListUsersWithInactive bypasses the active filter; admin-gated.
func ListUsersWithInactive(c *gin.Context) {
	var creds AdminCredentials
	_ = c.ShouldBindJSON(&creds)
	if !requireAdmin(c, creds) {
		return
	}

	db, ok := getDB(c)
	if !ok {
		return
	}

	skip, limit := helpers.PaginationParams(c, 10)
	users, total, err := services.NewUserService(db).GetAllWithInactive(c.Request.Context(), skip, limit)
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving users.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"users":      users,
		"pagination": models.NewPagination(skip, limit, total),
	})
}

func GetUser(c *gin.Context) {
	id, err := helpers.ObjectIDParam(c, "id")
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid user id.")
		return
	}

	db, ok := getDB(c)
	if !ok {
		return
	}

	user, err := services.NewUserService(db).GetByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, "User not found.")
		return
	}

	c.JSON(http.StatusOK, user)
}

func GetUserByUsername(c *gin.Context) {
	db, ok := getDB(c)
	if !ok {
		return
	}

	user, err := services.NewUserService(db).GetByUsername(c.Request.Context(), c.Param("username"))
	if err != nil {
		respondServiceError(c, err, "User not found.")
		return
	}

	c.JSON(http.StatusOK, user)
}

func UpdateUser(c *gin.Context) {
	id, err := helpers.ObjectIDParam(c, "id")
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid user id.")
		return
	}

	patch, ok := buildPatch(c, userUpdatableFields)
	if !ok {
		return
	}

	db, ok := getDB(c)
	if !ok {
		return
	}

	user, err := services.NewUserService(db).UpdateByID(c.Request.Context(), id, patch)
	if err != nil {
		respondServiceError(c, err, "User not found.")
		return
	}

	c.JSON(http.StatusOK, user)
}

func UpdateUserByUsername(c *gin.Context) {
	patch, ok := buildPatch(c, userUpdatableFields)
	if !ok {
		return
	}

	db, ok := getDB(c)
	if !ok {
		return
	}

	user, err := services.NewUserService(db).UpdateByUsername(c.Request.Context(), c.Param("username"), patch)
	if err != nil {
		respondServiceError(c, err, "User not found.")
		return
	}

	c.JSON(http.StatusOK, user)
}

func DisableUser(c *gin.Context) {
	id, err := helpers.ObjectIDParam(c, "id")
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid user id.")
		return
	}

	var creds AdminCredentials
	_ = c.ShouldBindJSON(&creds)
	if !requireAdmin(c, creds) {
		return
	}

	db, ok := getDB(c)
	if !ok {
		return
	}

	user, err := services.NewUserService(db).DisableByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, "User not found.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "User disabled successfully.",
		"user":    user,
	})
}

func DisableUserByUsername(c *gin.Context) {
	var creds AdminCredentials
	_ = c.ShouldBindJSON(&creds)
	if !requireAdmin(c, creds) {
		return
	}

	db, ok := getDB(c)
	if !ok {
		return
	}

	user, err := services.NewUserService(db).DisableByUsername(c.Request.Context(), c.Param("username"))
	if err != nil {
		respondServiceError(c, err, "User not found.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "User disabled successfully.",
		"user":    user,
	})
}

func ReactivateUser(c *gin.Context) {
	id, err := helpers.ObjectIDParam(c, "id")
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid user id.")
		return
	}

	var creds AdminCredentials
	_ = c.ShouldBindJSON(&creds)
	if !requireAdmin(c, creds) {
		return
	}

	db, ok := getDB(c)
	if !ok {
		return
	}

	user, err := services.NewUserService(db).ReactivateByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, "User not found.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "User reactivated successfully.",
		"user":    user,
	})
}

func ReactivateUserByUsername(c *gin.Context) {
	var creds AdminCredentials
	_ = c.ShouldBindJSON(&creds)
	if !requireAdmin(c, creds) {
		return
	}

	db, ok := getDB(c)
	if !ok {
		return
	}

	user, err := services.NewUserService(db).ReactivateByUsername(c.Request.Context(), c.Param("username"))
	if err != nil {
		respondServiceError(c, err, "User not found.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "User reactivated successfully.",
		"user":    user,
	})
}

func MakeUserAdmin(c *gin.Context) {
	setUserAdmin(c, true, "User converted to administrator.")
}

func RemoveUserAdmin(c *gin.Context) {
	setUserAdmin(c, false, "Administrator permissions removed.")
}

func setUserAdmin(c *gin.Context, admin bool, message string) {
	id, err := helpers.ObjectIDParam(c, "id")
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid user id.")
		return
	}

	var creds AdminCredentials
	_ = c.ShouldBindJSON(&creds)
	if !requireAdmin(c, creds) {
		return
	}

	db, ok := getDB(c)
	if !ok {
		return
	}

	user, err := services.NewUserService(db).SetAdmin(c.Request.Context(), id, admin)
	if err != nil {
		respondServiceError(c, err, "User not found.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": message,
		"user":    user,
	})
}

func DeleteUser(c *gin.Context) {
	id, err := helpers.ObjectIDParam(c, "id")
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid user id.")
		return
	}

	var creds AdminCredentials
	_ = c.ShouldBindJSON(&creds)
	if !requireAdmin(c, creds) {
		return
	}

	db, ok := getDB(c)
	if !ok {
		return
	}

	user, err := services.NewUserService(db).DeleteByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, "User not found.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "User permanently deleted.",
		"user":    user,
	})
}

func DeleteUserByUsername(c *gin.Context) {
	var creds AdminCredentials
	_ = c.ShouldBindJSON(&creds)
	if !requireAdmin(c, creds) {
		return
	}

	db, ok := getDB(c)
	if !ok {
		return
	}

	user, err := services.NewUserService(db).DeleteByUsername(c.Request.Context(), c.Param("username"))
	if err != nil {
		respondServiceError(c, err, "User not found.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "User permanently deleted.",
		"user":    user,
	})
}

func AddEventToUser(c *gin.Context) {
	userID, err := helpers.ObjectIDParam(c, "id")
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid user id.")
		return
	}
	eventID, err := helpers.ObjectIDParam(c, "eventId")
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid event id.")
		return
	}

	db, ok := getDB(c)
	if !ok {
		return
	}

	user, err := services.NewUserService(db).AddEvent(c.Request.Context(), userID, eventID)
	if err != nil {
		respondServiceError(c, err, "User or event not found.")
		return
	}

	c.JSON(http.StatusOK, user)
}

func RemoveEventFromUser(c *gin.Context) {
	userID, err := helpers.ObjectIDParam(c, "id")
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid user id.")
		return
	}
	eventID, err := helpers.ObjectIDParam(c, "eventId")
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid event id.")
		return
	}

	db, ok := getDB(c)
	if !ok {
		return
	}

	user, err := services.NewUserService(db).RemoveEvent(c.Request.Context(), userID, eventID)
	if err != nil {
		respondServiceError(c, err, "User not found.")
		return
	}

	c.JSON(http.StatusOK, user)
}
