package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/veilandvest/backoffice/internal/helpers"
	"github.com/veilandvest/backoffice/internal/models"
)

type CreateAttendeeRequest struct {
	EventID   uuid.UUID  `json:"event_id" binding:"required"`
	UserID    *uuid.UUID `json:"user_id"`
	LookID    *uuid.UUID `json:"look_id"`
	FirstName string     `json:"first_name" binding:"required"`
	LastName  string     `json:"last_name"`
	Role      *string    `json:"role"`
	Invite    bool       `json:"invite"`
}

type UpdateAttendeeRequest struct {
	UserID    *uuid.UUID `json:"user_id"`
	LookID    *uuid.UUID `json:"look_id"`
	FirstName *string    `json:"first_name"`
	LastName  *string    `json:"last_name"`
	Role      *string    `json:"role"`
	IsActive  *bool      `json:"is_active"`
	Invite    *bool      `json:"invite"`
}

func CreateAttendee(c *gin.Context) {
	var req CreateAttendeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var event models.Event
	if err := gormDB.Where("id = ?", req.EventID).First(&event).Error; err != nil {
		helpers.RespondWithDomainError(c, wrapMissingTarget(err), "Error finding event.")
		return
	}

	attendee := models.Attendee{
		EventID:   event.ID,
		UserID:    req.UserID,
		LookID:    req.LookID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      req.Role,
		IsActive:  true,
		Invite:    req.Invite,
	}

	if err := gormDB.Create(&attendee).Error; err != nil {
		helpers.RespondWithDomainError(c, models.WrapDBError(err), "Failed to create attendee.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":     "Attendee created successfully.",
		"attendee_id": attendee.ID,
	})
}

func GetAttendee(c *gin.Context) {
	attendeeID := c.Param("id")

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var attendee models.Attendee
	if err := gormDB.Preload("Look").Preload("User").Where("id = ?", attendeeID).First(&attendee).Error; err != nil {
		helpers.RespondWithDomainError(c, models.WrapDBError(err), "Error retrieving attendee.")
		return
	}

	c.JSON(http.StatusOK, attendee)
}

func ListAttendees(c *gin.Context) {
	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	page, limit, offset := helpers.Pagination(c)

	query := gormDB.Model(&models.Attendee{}).Where("is_active = ?", true)
	if eventID := c.Query("event_id"); eventID != "" {
		query = query.Where("event_id = ?", eventID)
	}

	var totalCount int64
	query.Count(&totalCount)

	var attendees []models.Attendee
	err := query.Preload("Look").Offset(offset).Limit(limit).Order("created_at DESC").Find(&attendees).Error
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving attendees.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"attendees":   attendees,
		"total":       totalCount,
		"page":        page,
		"limit":       limit,
		"total_pages": helpers.TotalPages(totalCount, limit),
	})
}

func UpdateAttendee(c *gin.Context) {
	attendeeID := c.Param("id")

	var req UpdateAttendeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var attendee models.Attendee
	if err := gormDB.Where("id = ?", attendeeID).First(&attendee).Error; err != nil {
		helpers.RespondWithDomainError(c, models.WrapDBError(err), "Error finding attendee.")
		return
	}

	if req.UserID != nil {
		attendee.UserID = req.UserID
	}
	if req.LookID != nil {
		attendee.LookID = req.LookID
	}
	if req.FirstName != nil {
		attendee.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		attendee.LastName = *req.LastName
	}
	if req.Role != nil {
		attendee.Role = req.Role
	}
	if req.IsActive != nil {
		attendee.IsActive = *req.IsActive
	}
	if req.Invite != nil {
		attendee.Invite = *req.Invite
	}

	if err := gormDB.Save(&attendee).Error; err != nil {
		helpers.RespondWithDomainError(c, models.WrapDBError(err), "Failed to update attendee.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Attendee updated successfully.",
		"attendee": attendee,
	})
}
