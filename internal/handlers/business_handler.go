package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eventos-app/backend/internal/helpers"
	"github.com/eventos-app/backend/internal/models"
	"github.com/eventos-app/backend/internal/services"
)

type CreateBusinessRequest struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email" binding:"omitempty,email"`
}

var businessUpdatableFields = []string{"name", "address", "phone", "email"}

// Business listings default to smaller pages than the other resources;
// every item is populated, which makes pages comparatively expensive.
const businessPageLimit = 5

func CreateBusiness(c *gin.Context) {
	var req CreateBusinessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	db, ok := getDB(c)
	if !ok {
		return
	}

	business, err := services.NewBusinessService(db).Create(c.Request.Context(), &models.Business{
		Name:    req.Name,
		Address: req.Address,
		Phone:   req.Phone,
		Email:   req.Email,
	})
	if err != nil {
		respondServiceError(c, err, "Failed to create business.")
		return
	}

	c.JSON(http.StatusCreated, business)
}

func ListBusinesses(c *gin.Context) {
	db, ok := getDB(c)
	if !ok {
		return
	}

	skip, limit := helpers.PaginationParams(c, businessPageLimit)
	businesses, total, err := services.NewBusinessService(db).GetAll(c.Request.Context(), skip, limit)
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving businesses.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"businesses": businesses,
		"pagination": models.NewPagination(skip, limit, total),
	})
}

func ListBusinessesWithInactive(c *gin.Context) {
	db, ok := getDB(c)
	if !ok {
		return
	}

	skip, limit := helpers.PaginationParams(c, businessPageLimit)
	businesses, total, err := services.NewBusinessService(db).GetAllWithInactive(c.Request.Context(), skip, limit)
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving businesses.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"businesses": businesses,
		"pagination": models.NewPagination(skip, limit, total),
	})
}

func GetBusiness(c *gin.Context) {
	id, err := helpers.ObjectIDParam(c, "id")
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid business id.")
		return
	}

	db, ok := getDB(c)
	if !ok {
		return
	}

	business, err := services.NewBusinessService(db).GetByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, "Business not found.")
		return
	}

	c.JSON(http.StatusOK, business)
}

func UpdateBusiness(c *gin.Context) {
	id, err := helpers.ObjectIDParam(c, "id")
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid business id.")
		return
	}

	patch, ok := buildPatch(c, businessUpdatableFields)
	if !ok {
		return
	}

	db, ok := getDB(c)
	if !ok {
		return
	}

	business, err := services.NewBusinessService(db).UpdateByID(c.Request.Context(), id, patch)
	if err != nil {
		respondServiceError(c, err, "Business not found.")
		return
	}

	c.JSON(http.StatusOK, business)
}

func DisableBusiness(c *gin.Context) {
	id, err := helpers.ObjectIDParam(c, "id")
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid business id.")
		return
	}

	db, ok := getDB(c)
	if !ok {
		return
	}

	business, err := services.NewBusinessService(db).DisableByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, "Business not found.")
		return
	}

	c.JSON(http.StatusOK, business)
}

func ReactivateBusiness(c *gin.Context) {
	id, err := helpers.ObjectIDParam(c, "id")
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid business id.")
		return
	}

	db, ok := getDB(c)
	if !ok {
		return
	}

	business, err := services.NewBusinessService(db).ReactivateByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, "Business not found.")
		return
	}

	c.JSON(http.StatusOK, business)
}

func DeleteBusiness(c *gin.Context) {
	id, err := helpers.ObjectIDParam(c, "id")
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid business id.")
		return
	}

	db, ok := getDB(c)
	if !ok {
		return
	}

	business, err := services.NewBusinessService(db).DeleteByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, "Business not found.")
		return
	}

	c.JSON(http.StatusOK, business)
}

func businessLink(c *gin.Context, link func(*services.BusinessService) (*models.PopulatedBusiness, error)) {
	db, ok := getDB(c)
	if !ok {
		return
	}

	business, err := link(services.NewBusinessService(db))
	if err != nil {
		respondServiceError(c, err, "Business not found.")
		return
	}

	c.JSON(http.StatusOK, business)
}

func AddEventToBusiness(c *gin.Context) {
	businessID, err := helpers.ObjectIDParam(c, "id")
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid business id.")
		return
	}
	eventID, err := helpers.ObjectIDParam(c, "eventId")
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid event id.")
		return
	}

	businessLink(c, func(s *services.BusinessService) (*models.PopulatedBusiness, error) {
		return s.AddEvent(c.Request.Context(), businessID, eventID)
	})
}

func RemoveEventFromBusiness(c *gin.Context) {
	businessID, err := helpers.ObjectIDParam(c, "id")
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid business id.")
		return
	}
	eventID, err := helpers.ObjectIDParam(c, "eventId")
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid event id.")
		return
	}

	businessLink(c, func(s *services.BusinessService) (*models.PopulatedBusiness, error) {
		return s.RemoveEvent(c.Request.Context(), businessID, eventID)
	})
}

func AddManagerToBusiness(c *gin.Context) {
	businessID, err := helpers.ObjectIDParam(c, "id")
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid business id.")
		return
	}
	managerID, err := helpers.ObjectIDParam(c, "managerId")
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid manager id.")
		return
	}

	businessLink(c, func(s *services.BusinessService) (*models.PopulatedBusiness, error) {
		return s.AddManager(c.Request.Context(), businessID, managerID)
	})
}

func RemoveManagerFromBusiness(c *gin.Context) {
	businessID, err := helpers.ObjectIDParam(c, "id")
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid business id.")
		return
	}
	managerID, err := helpers.ObjectIDParam(c, "managerId")
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid manager id.")
		return
	}

	businessLink(c, func(s *services.BusinessService) (*models.PopulatedBusiness, error) {
		return s.RemoveManager(c.Request.Context(), businessID, managerID)
	})
}
