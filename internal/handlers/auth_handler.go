package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eventos-app/backend/internal/helpers"
	"github.com/eventos-app/backend/internal/models"
	"github.com/eventos-app/backend/internal/services"
)

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type CreateAdminRequest struct {
	AdminCredentials
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Birthday string `json:"birthday" binding:"required"`
}

type CreateFirstAdminRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Birthday string `json:"birthday" binding:"required"`
}

func Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	db, ok := getDB(c)
	if !ok {
		return
	}

	user, err := services.NewUserService(db).Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			helpers.RespondWithError(c, http.StatusUnauthorized, "Incorrect credentials or user disabled.")
		} else {
			helpers.RespondWithError(c, http.StatusInternalServerError, "Login error.")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful.",
		"user":    user,
	})
}

// LoginBackoffice checks credentials against active admin users only.
func LoginBackoffice(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	db, ok := getDB(c)
	if !ok {
		return
	}

	user, err := services.NewUserService(db).LoginAdmin(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			helpers.RespondWithError(c, http.StatusUnauthorized, "Incorrect credentials or you do not have admin permissions.")
		} else {
			helpers.RespondWithError(c, http.StatusInternalServerError, "Login error.")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Backoffice login successful.",
		"user":    user,
		"isAdmin": true,
	})
}

// CreateFirstAdmin bootstraps the very first admin account. The path is
// open only while no active admin exists; afterwards it always refuses.
func CreateFirstAdmin(c *gin.Context) {
	var req CreateFirstAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	db, ok := getDB(c)
	if !ok {
		return
	}
	svc := services.NewUserService(db)

	hasAdmin, err := svc.HasAnyAdmin(c.Request.Context())
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to create first admin.")
		return
	}
	if hasAdmin {
		helpers.RespondWithError(c, http.StatusBadRequest, "Admins already exist in the system. Use the regular admin creation endpoint.")
		return
	}

	admin, err := svc.CreateAdmin(c.Request.Context(), &models.User{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Birthday: req.Birthday,
	})
	if err != nil {
		respondServiceError(c, err, "Failed to create first admin.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "First admin user created successfully.",
		"user":    admin,
	})
}

// CreateAdminUser creates an additional admin account; requires valid
// admin credentials alongside the new account's fields.
func CreateAdminUser(c *gin.Context) {
	var req CreateAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	if !requireAdmin(c, req.AdminCredentials) {
		return
	}

	db, ok := getDB(c)
	if !ok {
		return
	}

	admin, err := services.NewUserService(db).CreateAdmin(c.Request.Context(), &models.User{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Birthday: req.Birthday,
	})
	if err != nil {
		respondServiceError(c, err, "Failed to create admin user.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Admin user created successfully.",
		"user":    admin,
	})
}
