package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/veilandvest/backoffice/internal/helpers"
	"github.com/veilandvest/backoffice/internal/models"
)

type EventRequest struct {
	Name     string         `json:"name" binding:"required"`
	EventAt  time.Time      `json:"event_at" binding:"required"`
	Type     string         `json:"type" binding:"required"`
	Metadata map[string]any `json:"metadata"`
}

func CreateEvent(c *gin.Context) {
	var req EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	if !models.ValidEventType(req.Type) {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid event type. Must be WEDDING, PROM or OTHER.")
		return
	}

	userID, exists := c.Get("user_id")
	if !exists {
		helpers.RespondWithError(c, http.StatusUnauthorized, "User ID not found in token.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var user models.User
	if err := gormDB.Where("id = ?", userID).First(&user).Error; err != nil {
		helpers.RespondWithError(c, http.StatusNotFound, "User not found.")
		return
	}

	event := models.Event{
		ID:       uuid.New(),
		Name:     req.Name,
		EventAt:  req.EventAt,
		Type:     req.Type,
		IsActive: true,
		Metadata: datatypes.JSONMap(req.Metadata),
		UserID:   user.ID,
	}

	if err := gormDB.Create(&event).Error; err != nil {
		helpers.RespondWithDomainError(c, models.WrapDBError(err), "Failed to create event.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Event created successfully.",
		"event_id": event.ID,
	})
}

func GetEvent(c *gin.Context) {
	eventID := c.Param("id")

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var event models.Event
	if err := gormDB.Preload("Attendees").Preload("User").Where("id = ?", eventID).First(&event).Error; err != nil {
		helpers.RespondWithDomainError(c, models.WrapDBError(err), "Error retrieving event.")
		return
	}

	c.JSON(http.StatusOK, event)
}

// ListEvents returns active events only: is_active gates visibility in all
// listing queries.
func ListEvents(c *gin.Context) {
	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	page, limit, offset := helpers.Pagination(c)

	query := gormDB.Model(&models.Event{}).Where("is_active = ?", true)
	if eventType := c.Query("type"); eventType != "" {
		query = query.Where("type = ?", eventType)
	}
	if owner := c.Query("user_id"); owner != "" {
		query = query.Where("user_id = ?", owner)
	}

	var totalCount int64
	query.Count(&totalCount)

	var events []models.Event
	err := query.Preload("User").Offset(offset).Limit(limit).Order("created_at DESC").Find(&events).Error
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving events.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"events":      events,
		"total":       totalCount,
		"page":        page,
		"limit":       limit,
		"total_pages": helpers.TotalPages(totalCount, limit),
	})
}

func UpdateEvent(c *gin.Context) {
	eventID := c.Param("id")
	userID, exists := c.Get("user_id")
	if !exists {
		helpers.RespondWithError(c, http.StatusUnauthorized, "User ID not found in token.")
		return
	}

	var req EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	if !models.ValidEventType(req.Type) {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid event type. Must be WEDDING, PROM or OTHER.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var event models.Event
	if err := gormDB.Where("id = ? AND user_id = ?", eventID, userID).First(&event).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			helpers.RespondWithError(c, http.StatusForbidden, "Event not found or you don't have permission to update.")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error finding event.")
		return
	}

	event.Name = req.Name
	event.EventAt = req.EventAt
	event.Type = req.Type
	if req.Metadata != nil {
		event.Metadata = datatypes.JSONMap(req.Metadata)
	}

	if err := gormDB.Save(&event).Error; err != nil {
		helpers.RespondWithDomainError(c, models.WrapDBError(err), "Failed to update event.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Event updated successfully.",
		"event":   event,
	})
}

// DeactivateEvent soft-hides an event from listings. Rows are never deleted;
// attendees, orders and discounts keep their references.
func DeactivateEvent(c *gin.Context) {
	eventID := c.Param("id")
	userID, exists := c.Get("user_id")
	if !exists {
		helpers.RespondWithError(c, http.StatusUnauthorized, "User ID not found in token.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	result := gormDB.Model(&models.Event{}).Where("id = ? AND user_id = ?", eventID, userID).Update("is_active", false)
	if result.Error != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to deactivate event.")
		return
	}
	if result.RowsAffected == 0 {
		helpers.RespondWithError(c, http.StatusForbidden, "Event not found or you don't have permission to deactivate.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Event deactivated successfully.",
	})
}
