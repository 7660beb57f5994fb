package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/veilandvest/backoffice/internal/helpers"
	"github.com/veilandvest/backoffice/internal/models"
)

type RMAItemRequest struct {
	SKU              string          `json:"sku" binding:"required"`
	ShopifyProductID *string         `json:"shopify_product_id"`
	ShopifyVariantID *string         `json:"shopify_variant_id"`
	PurchasedPrice   decimal.Decimal `json:"purchased_price"`
	Quantity         int             `json:"quantity"`
	Type             string          `json:"type"`
	Reason           string          `json:"reason"`
}

type CreateRMARequest struct {
	OrderID   uuid.UUID        `json:"order_id" binding:"required"`
	RMANumber string           `json:"rma_number"`
	Type      []string         `json:"type" binding:"required"`
	Items     []RMAItemRequest `json:"items"`
}

type UpdateRMARequest struct {
	Status             *string  `json:"status"`
	Type               []string `json:"type"`
	TotalItemsReceived *int     `json:"total_items_received"`
}

func CreateRMA(c *gin.Context) {
	var req CreateRMARequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	for _, t := range req.Type {
		if t == "" {
			helpers.RespondWithError(c, http.StatusBadRequest, "RMA type values must not be empty.")
			return
		}
	}
	for _, item := range req.Items {
		if item.Type != "" && !models.ValidRMAItemType(item.Type) {
			helpers.RespondWithError(c, http.StatusBadRequest, "Invalid RMA item type: "+item.Type)
			return
		}
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var order models.Order
	if err := gormDB.Where("id = ?", req.OrderID).First(&order).Error; err != nil {
		helpers.RespondWithDomainError(c, wrapMissingTarget(err), "Error finding order.")
		return
	}

	rmaNumber := req.RMANumber
	if rmaNumber == "" {
		rmaNumber = "RMA-" + strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:10])
	}

	rma := models.RMA{
		OrderID:   order.ID,
		RMANumber: rmaNumber,
		Status:    models.RMAStatusPending,
		Type:      req.Type,
	}
	for _, item := range req.Items {
		quantity := item.Quantity
		if quantity < 1 {
			quantity = 1
		}
		rma.Items = append(rma.Items, models.RMAItem{
			SKU:              item.SKU,
			ShopifyProductID: item.ShopifyProductID,
			ShopifyVariantID: item.ShopifyVariantID,
			PurchasedPrice:   item.PurchasedPrice,
			Quantity:         quantity,
			Type:             item.Type,
			Reason:           item.Reason,
		})
		rma.TotalItemsExpected += quantity
	}

	if err := gormDB.Create(&rma).Error; err != nil {
		helpers.RespondWithDomainError(c, models.WrapDBError(err), "Failed to create RMA.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":    "RMA created successfully.",
		"rma_id":     rma.ID,
		"rma_number": rma.RMANumber,
	})
}

func GetRMA(c *gin.Context) {
	rmaID := c.Param("id")

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var rma models.RMA
	if err := gormDB.Preload("Items").Preload("Order").Where("id = ?", rmaID).First(&rma).Error; err != nil {
		helpers.RespondWithDomainError(c, models.WrapDBError(err), "Error retrieving RMA.")
		return
	}

	c.JSON(http.StatusOK, rma)
}

func ListRMAs(c *gin.Context) {
	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	page, limit, offset := helpers.Pagination(c)

	query := gormDB.Model(&models.RMA{})
	if orderID := c.Query("order_id"); orderID != "" {
		query = query.Where("order_id = ?", orderID)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var totalCount int64
	query.Count(&totalCount)

	var rmas []models.RMA
	err := query.Preload("Items").Offset(offset).Limit(limit).Order("created_at DESC").Find(&rmas).Error
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving RMAs.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"rmas":        rmas,
		"total":       totalCount,
		"page":        page,
		"limit":       limit,
		"total_pages": helpers.TotalPages(totalCount, limit),
	})
}

// UpdateRMA accepts any non-empty status. The status set grows over time
// and transitions are owned by the warehouse workflow, so nothing here
// enforces an ordering between values.
func UpdateRMA(c *gin.Context) {
	rmaID := c.Param("id")

	var req UpdateRMARequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}
	if req.Status != nil && *req.Status == "" {
		helpers.RespondWithError(c, http.StatusBadRequest, "RMA status must not be empty.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var rma models.RMA
	if err := gormDB.Where("id = ?", rmaID).First(&rma).Error; err != nil {
		helpers.RespondWithDomainError(c, models.WrapDBError(err), "Error finding RMA.")
		return
	}

	if req.Status != nil {
		rma.Status = *req.Status
	}
	if len(req.Type) > 0 {
		rma.Type = req.Type
	}
	if req.TotalItemsReceived != nil && *req.TotalItemsReceived >= 0 {
		rma.TotalItemsReceived = *req.TotalItemsReceived
	}

	if err := gormDB.Save(&rma).Error; err != nil {
		helpers.RespondWithDomainError(c, models.WrapDBError(err), "Failed to update RMA.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "RMA updated successfully.",
		"rma":     rma,
	})
}

// CreateRMAItem adds an item to an existing RMA and bumps the stored
// expected total in the same transaction.
func CreateRMAItem(c *gin.Context) {
	rmaID := c.Param("id")

	var req RMAItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}
	if req.Type != "" && !models.ValidRMAItemType(req.Type) {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid RMA item type: "+req.Type)
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var rma models.RMA
	if err := gormDB.Where("id = ?", rmaID).First(&rma).Error; err != nil {
		helpers.RespondWithDomainError(c, models.WrapDBError(err), "Error finding RMA.")
		return
	}

	quantity := req.Quantity
	if quantity < 1 {
		quantity = 1
	}
	item := models.RMAItem{
		RMAID:            rma.ID,
		SKU:              req.SKU,
		ShopifyProductID: req.ShopifyProductID,
		ShopifyVariantID: req.ShopifyVariantID,
		PurchasedPrice:   req.PurchasedPrice,
		Quantity:         quantity,
		Type:             req.Type,
		Reason:           req.Reason,
	}

	err := gormDB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&item).Error; err != nil {
			return err
		}
		return tx.Model(&rma).Update("total_items_expected", gorm.Expr("total_items_expected + ?", quantity)).Error
	})
	if err != nil {
		helpers.RespondWithDomainError(c, models.WrapDBError(err), "Failed to create RMA item.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "RMA item created successfully.",
		"item_id": item.ID,
	})
}

type UpdateRMAItemRequest struct {
	Type   *string `json:"type"`
	Reason *string `json:"reason"`
}

func UpdateRMAItem(c *gin.Context) {
	itemID := c.Param("id")

	var req UpdateRMAItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}
	if req.Type != nil && !models.ValidRMAItemType(*req.Type) {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid RMA item type: "+*req.Type)
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var item models.RMAItem
	if err := gormDB.Where("id = ?", itemID).First(&item).Error; err != nil {
		helpers.RespondWithDomainError(c, models.WrapDBError(err), "Error finding RMA item.")
		return
	}

	if req.Type != nil {
		item.Type = *req.Type
	}
	if req.Reason != nil {
		item.Reason = *req.Reason
	}

	if err := gormDB.Save(&item).Error; err != nil {
		helpers.RespondWithDomainError(c, models.WrapDBError(err), "Failed to update RMA item.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "RMA item updated successfully.",
		"item":    item,
	})
}
