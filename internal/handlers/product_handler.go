package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/veilandvest/backoffice/internal/helpers"
	"github.com/veilandvest/backoffice/internal/models"
)

type ProductItemRequest struct {
	SKU              string          `json:"sku" binding:"required"`
	Name             string          `json:"name" binding:"required"`
	Category         string          `json:"category"`
	ShopifyProductID *string         `json:"shopify_product_id"`
	ShopifyVariantID *string         `json:"shopify_variant_id"`
	Price            decimal.Decimal `json:"price"`
	DisplayOrder     int             `json:"display_order"`
}

func CreateProductItem(c *gin.Context) {
	var req ProductItemRequest
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

	item := models.ProductItem{
		SKU:              req.SKU,
		Name:             req.Name,
		Category:         req.Category,
		ShopifyProductID: req.ShopifyProductID,
		ShopifyVariantID: req.ShopifyVariantID,
		Price:            req.Price,
		DisplayOrder:     req.DisplayOrder,
		IsActive:         true,
	}

	if err := gormDB.Create(&item).Error; err != nil {
		helpers.RespondWithDomainError(c, models.WrapDBError(err), "Failed to create product item.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Product item created successfully.",
		"item_id": item.ID,
	})
}

func GetProductItem(c *gin.Context) {
	itemID := c.Param("id")

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var item models.ProductItem
	if err := gormDB.Where("id = ?", itemID).First(&item).Error; err != nil {
		helpers.RespondWithDomainError(c, models.WrapDBError(err), "Error retrieving product item.")
		return
	}

	c.JSON(http.StatusOK, item)
}

// ListProductItems drives the suit-builder page: active items only, grouped
// by category via the filter, ordered for display.
func ListProductItems(c *gin.Context) {
	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	page, limit, offset := helpers.Pagination(c)

	query := gormDB.Model(&models.ProductItem{}).Where("is_active = ?", true)
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}

	var totalCount int64
	query.Count(&totalCount)

	var items []models.ProductItem
	err := query.Offset(offset).Limit(limit).Order("display_order ASC, created_at DESC").Find(&items).Error
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving product items.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items":       items,
		"total":       totalCount,
		"page":        page,
		"limit":       limit,
		"total_pages": helpers.TotalPages(totalCount, limit),
	})
}

func UpdateProductItem(c *gin.Context) {
	itemID := c.Param("id")

	var req ProductItemRequest
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

	var item models.ProductItem
	if err := gormDB.Where("id = ?", itemID).First(&item).Error; err != nil {
		helpers.RespondWithDomainError(c, models.WrapDBError(err), "Error finding product item.")
		return
	}

	item.SKU = req.SKU
	item.Name = req.Name
	item.Category = req.Category
	item.ShopifyProductID = req.ShopifyProductID
	item.ShopifyVariantID = req.ShopifyVariantID
	item.Price = req.Price
	item.DisplayOrder = req.DisplayOrder

	if err := gormDB.Save(&item).Error; err != nil {
		helpers.RespondWithDomainError(c, models.WrapDBError(err), "Failed to update product item.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Product item updated successfully.",
		"item":    item,
	})
}

func DeactivateProductItem(c *gin.Context) {
	itemID := c.Param("id")

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	result := gormDB.Model(&models.ProductItem{}).Where("id = ?", itemID).Update("is_active", false)
	if result.Error != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to deactivate product item.")
		return
	}
	if result.RowsAffected == 0 {
		helpers.RespondWithError(c, http.StatusNotFound, "Product item not found.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Product item deactivated successfully.",
	})
}
