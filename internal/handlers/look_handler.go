package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/veilandvest/backoffice/internal/helpers"
	"github.com/veilandvest/backoffice/internal/models"
)

func CreateLook(c *gin.Context) {
	name := c.PostForm("name")
	specs := c.PostForm("product_specs")

	if name == "" || specs == "" {
		helpers.RespondWithError(c, http.StatusBadRequest, "Missing required fields.")
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

	look := models.Look{
		Name:         name,
		UserID:       user.ID,
		ProductSpecs: datatypes.JSON(specs),
		IsActive:     true,
	}

	// Only the envelope is validated; the rest of the document is opaque.
	if _, err := look.ParseSpecs(); err != nil {
		helpers.RespondWithDomainError(c, err, "Invalid product specs.")
		return
	}

	imageFile, err := c.FormFile("image")
	if err == nil {
		imagePath, err := helpers.UploadFile(c, imageFile, "look_images")
		if err != nil {
			helpers.RespondWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		look.ImagePath = imagePath
	}

	if err := gormDB.Create(&look).Error; err != nil {
		helpers.RespondWithDomainError(c, models.WrapDBError(err), "Failed to create look.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Look created successfully.",
		"look_id": look.ID,
	})
}

func GetLook(c *gin.Context) {
	lookID := c.Param("id")

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var look models.Look
	if err := gormDB.Where("id = ?", lookID).First(&look).Error; err != nil {
		helpers.RespondWithDomainError(c, models.WrapDBError(err), "Error retrieving look.")
		return
	}

	c.JSON(http.StatusOK, look)
}

func ListLooks(c *gin.Context) {
	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	page, limit, offset := helpers.Pagination(c)

	query := gormDB.Model(&models.Look{}).Where("is_active = ?", true)
	if owner := c.Query("user_id"); owner != "" {
		query = query.Where("user_id = ?", owner)
	}

	var totalCount int64
	query.Count(&totalCount)

	var looks []models.Look
	err := query.Offset(offset).Limit(limit).Order("created_at DESC").Find(&looks).Error
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving looks.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"looks":       looks,
		"total":       totalCount,
		"page":        page,
		"limit":       limit,
		"total_pages": helpers.TotalPages(totalCount, limit),
	})
}

func UpdateLook(c *gin.Context) {
	lookID := c.Param("id")
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

	var look models.Look
	if err := gormDB.Where("id = ? AND user_id = ?", lookID, userID).First(&look).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			helpers.RespondWithError(c, http.StatusForbidden, "Look not found or you don't have permission to update.")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error finding look.")
		return
	}

	if name := c.PostForm("name"); name != "" {
		look.Name = name
	}

	// Replacing specs snapshots the previous document into the legacy copy.
	if specs := c.PostForm("product_specs"); specs != "" {
		look.ProductSpecsLegacy = look.ProductSpecs
		look.ProductSpecs = datatypes.JSON(specs)
		if _, err := look.ParseSpecs(); err != nil {
			helpers.RespondWithDomainError(c, err, "Invalid product specs.")
			return
		}
	}

	imageFile, err := c.FormFile("image")
	if err == nil {
		imagePath, err := helpers.UploadFile(c, imageFile, "look_images")
		if err != nil {
			helpers.RespondWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		if look.ImagePath != "" {
			if err := helpers.DeleteFile(look.ImagePath); err != nil {
				fmt.Printf("Error deleting old look image: %v\n", err)
			}
		}
		look.ImagePath = imagePath
	}

	if err := gormDB.Save(&look).Error; err != nil {
		helpers.RespondWithDomainError(c, models.WrapDBError(err), "Failed to update look.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Look updated successfully.",
		"look":    look,
	})
}

// DeactivateLook soft-deletes a look. Attendee references stay in place and
// the fixed flag is left untouched for the archival job to pick up.
func DeactivateLook(c *gin.Context) {
	lookID := c.Param("id")
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

	result := gormDB.Model(&models.Look{}).Where("id = ? AND user_id = ?", lookID, userID).Update("is_active", false)
	if result.Error != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to deactivate look.")
		return
	}
	if result.RowsAffected == 0 {
		helpers.RespondWithError(c, http.StatusForbidden, "Look not found or you don't have permission to deactivate.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Look deactivated successfully.",
	})
}
