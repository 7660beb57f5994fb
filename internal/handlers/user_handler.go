package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/veilandvest/backoffice/internal/helpers"
	"github.com/veilandvest/backoffice/internal/models"
)

type UpdateUserRequest struct {
	FirstName         *string        `json:"first_name"`
	LastName          *string        `json:"last_name"`
	ShopifyCustomerID *string        `json:"shopify_customer_id"`
	Metadata          map[string]any `json:"metadata"`
}

func GetUser(c *gin.Context) {
	userID := c.Param("id")

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var user models.User
	if err := gormDB.Preload("Role").Where("id = ?", userID).First(&user).Error; err != nil {
		helpers.RespondWithDomainError(c, models.WrapDBError(err), "Error retrieving user.")
		return
	}

	c.JSON(http.StatusOK, user)
}

func GetUserByEmail(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		helpers.RespondWithError(c, http.StatusBadRequest, "Email query parameter is required.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var user models.User
	if err := gormDB.Where("email = ?", models.NormalizeEmail(email)).First(&user).Error; err != nil {
		helpers.RespondWithDomainError(c, models.WrapDBError(err), "Error retrieving user.")
		return
	}

	c.JSON(http.StatusOK, user)
}

func ListUsers(c *gin.Context) {
	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	page, limit, offset := helpers.Pagination(c)

	query := gormDB.Model(&models.User{})
	if status := c.Query("account_status"); status != "" {
		query = query.Where("account_status = ?", status)
	}

	var totalCount int64
	query.Count(&totalCount)

	var users []models.User
	err := query.Preload("Role").Offset(offset).Limit(limit).Order("created_at DESC").Find(&users).Error
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving users.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"users":       users,
		"total":       totalCount,
		"page":        page,
		"limit":       limit,
		"total_pages": helpers.TotalPages(totalCount, limit),
	})
}

func UpdateUser(c *gin.Context) {
	userID := c.Param("id")

	var req UpdateUserRequest
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

	var user models.User
	if err := gormDB.Where("id = ?", userID).First(&user).Error; err != nil {
		helpers.RespondWithDomainError(c, models.WrapDBError(err), "Error finding user.")
		return
	}

	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.ShopifyCustomerID != nil {
		user.ShopifyCustomerID = req.ShopifyCustomerID
	}
	if req.Metadata != nil {
		user.Metadata = datatypes.JSONMap(req.Metadata)
	}

	if err := gormDB.Save(&user).Error; err != nil {
		helpers.RespondWithDomainError(c, models.WrapDBError(err), "Failed to update user.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "User updated successfully.",
		"user":    user,
	})
}

// ActivateUser flips a disabled account to active. Admin only; the first
// admin is seeded from ADMIN_EMAIL/ADMIN_PASSWORD at startup. There is no
// public deactivation counterpart; disabling goes through support tooling.
func ActivateUser(c *gin.Context) {
	if c.GetString("role") != "admin" {
		helpers.RespondWithError(c, http.StatusForbidden, "Only admins can activate accounts.")
		return
	}

	userID := c.Param("id")

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var user models.User
	if err := gormDB.Where("id = ?", userID).First(&user).Error; err != nil {
		helpers.RespondWithDomainError(c, models.WrapDBError(err), "Error finding user.")
		return
	}

	user.AccountStatus = models.AccountStatusActive
	if err := gormDB.Save(&user).Error; err != nil {
		helpers.RespondWithDomainError(c, models.WrapDBError(err), "Failed to activate user.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "User activated successfully.",
	})
}
