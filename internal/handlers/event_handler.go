package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/eventos-app/backend/internal/helpers"
	"github.com/eventos-app/backend/internal/models"
	"github.com/eventos-app/backend/internal/services"
)

type CreateEventRequest struct {
	Name         string   `json:"name" binding:"required"`
	Schedule     string   `json:"schedule" binding:"required"`
	Address      string   `json:"address"`
	Participants []string `json:"participants"`
}

var eventUpdatableFields = []string{"name", "schedule", "address"}

func CreateEvent(c *gin.Context) {
	var req CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	participants := make([]primitive.ObjectID, 0, len(req.Participants))
	for _, raw := range req.Participants {
		id, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			helpers.RespondWithError(c, http.StatusBadRequest, "Invalid participant id: "+raw)
			return
		}
		participants = append(participants, id)
	}

	db, ok := getDB(c)
	if !ok {
		return
	}

	event, err := services.NewEventService(db).Create(c.Request.Context(), &models.Event{
		Name:         req.Name,
		Schedule:     req.Schedule,
		Address:      req.Address,
		Participants: participants,
	})
	if err != nil {
		respondServiceError(c, err, "Failed to create event.")
		return
	}

	c.JSON(http.StatusCreated, event)
}

func ListEvents(c *gin.Context) {
	db, ok := getDB(c)
	if !ok {
		return
	}

	skip, limit := helpers.PaginationParams(c, 10)
	events, total, err := services.NewEventService(db).GetAll(c.Request.Context(), skip, limit)
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving events.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"events":     events,
		"pagination": models.NewPagination(skip, limit, total),
	})
}

func ListEventsWithInactive(c *gin.Context) {
	db, ok := getDB(c)
	if !ok {
		return
	}

	skip, limit := helpers.PaginationParams(c, 10)
	events, total, err := services.NewEventService(db).GetAllWithInactive(c.Request.Context(), skip, limit)
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving events.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"events":     events,
		"pagination": models.NewPagination(skip, limit, total),
	})
}

func GetEvent(c *gin.Context) {
	id, err := helpers.ObjectIDParam(c, "id")
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid event id.")
		return
	}

	db, ok := getDB(c)
	if !ok {
		return
	}

	event, err := services.NewEventService(db).GetByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, "Event not found.")
		return
	}

	c.JSON(http.StatusOK, event)
}

// GetEventParticipants returns the event with its participant reference
// set resolved to user records.
func GetEventParticipants(c *gin.Context) {
	id, err := helpers.ObjectIDParam(c, "id")
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid event id.")
		return
	}

	db, ok := getDB(c)
	if !ok {
		return
	}

	event, err := services.NewEventService(db).GetWithParticipants(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, "Event not found.")
		return
	}

	c.JSON(http.StatusOK, event)
}

func UpdateEvent(c *gin.Context) {
	id, err := helpers.ObjectIDParam(c, "id")
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid event id.")
		return
	}

	patch, ok := buildPatch(c, eventUpdatableFields)
	if !ok {
		return
	}

	db, ok := getDB(c)
	if !ok {
		return
	}

	event, err := services.NewEventService(db).UpdateByID(c.Request.Context(), id, patch)
	if err != nil {
		respondServiceError(c, err, "Event not found.")
		return
	}

	c.JSON(http.StatusOK, event)
}

func DisableEvent(c *gin.Context) {
	id, err := helpers.ObjectIDParam(c, "id")
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid event id.")
		return
	}

	db, ok := getDB(c)
	if !ok {
		return
	}

	event, err := services.NewEventService(db).DisableByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, "Event not found.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Event disabled successfully.",
		"event":   event,
	})
}

func ReactivateEvent(c *gin.Context) {
	id, err := helpers.ObjectIDParam(c, "id")
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid event id.")
		return
	}

	db, ok := getDB(c)
	if !ok {
		return
	}

	event, err := services.NewEventService(db).ReactivateByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, "Event not found.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Event reactivated successfully.",
		"event":   event,
	})
}

func DeleteEvent(c *gin.Context) {
	id, err := helpers.ObjectIDParam(c, "id")
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid event id.")
		return
	}

	db, ok := getDB(c)
	if !ok {
		return
	}

	event, err := services.NewEventService(db).DeleteByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, "Event not found.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Event permanently deleted.",
		"event":   event,
	})
}

func AddUserToEvent(c *gin.Context) {
	eventID, err := helpers.ObjectIDParam(c, "id")
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid event id.")
		return
	}
	userID, err := helpers.ObjectIDParam(c, "userId")
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid user id.")
		return
	}

	db, ok := getDB(c)
	if !ok {
		return
	}

	event, err := services.NewEventService(db).AddParticipant(c.Request.Context(), eventID, userID)
	if err != nil {
		respondServiceError(c, err, "Event or user not found.")
		return
	}

	c.JSON(http.StatusOK, event)
}

func RemoveUserFromEvent(c *gin.Context) {
	eventID, err := helpers.ObjectIDParam(c, "id")
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid event id.")
		return
	}
	userID, err := helpers.ObjectIDParam(c, "userId")
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid user id.")
		return
	}

	db, ok := getDB(c)
	if !ok {
		return
	}

	event, err := services.NewEventService(db).RemoveParticipant(c.Request.Context(), eventID, userID)
	if err != nil {
		respondServiceError(c, err, "Event not found.")
		return
	}

	c.JSON(http.StatusOK, event)
}
