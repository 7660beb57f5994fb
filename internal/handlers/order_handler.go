package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/veilandvest/backoffice/internal/helpers"
	"github.com/veilandvest/backoffice/internal/models"
)

type OrderItemRequest struct {
	SKU              string  `json:"sku" binding:"required"`
	ShopifyProductID *string `json:"shopify_product_id"`
	ShopifyVariantID *string `json:"shopify_variant_id"`
	Quantity         int     `json:"quantity"`
	ItemStatus       string  `json:"item_status"`
}

type CreateOrderRequest struct {
	UserID             uuid.UUID          `json:"user_id" binding:"required"`
	EventID            *uuid.UUID         `json:"event_id"`
	ShopifyOrderID     *string            `json:"shopify_order_id"`
	ShopifyOrderNumber *string            `json:"shopify_order_number"`
	OrderType          []string           `json:"order_type"`
	Meta               map[string]any     `json:"meta"`
	Items              []OrderItemRequest `json:"items"`
}

type UpdateOrderRequest struct {
	EventID            *uuid.UUID     `json:"event_id"`
	ShopifyOrderNumber *string        `json:"shopify_order_number"`
	OrderType          []string       `json:"order_type"`
	Meta               map[string]any `json:"meta"`
}

func CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	for _, item := range req.Items {
		if item.ItemStatus != "" && !models.ValidItemStatus(item.ItemStatus) {
			helpers.RespondWithError(c, http.StatusBadRequest, "Invalid item status: "+item.ItemStatus)
			return
		}
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	orderType := req.OrderType
	if len(orderType) == 0 {
		orderType = []string{models.OrderTypeNewOrder}
	}

	order := models.Order{
		UserID:             req.UserID,
		EventID:            req.EventID,
		ShopifyOrderID:     req.ShopifyOrderID,
		ShopifyOrderNumber: req.ShopifyOrderNumber,
		OrderType:          orderType,
		Meta:               datatypes.JSONMap(req.Meta),
	}
	for _, item := range req.Items {
		quantity := item.Quantity
		if quantity < 1 {
			quantity = 1
		}
		order.Items = append(order.Items, models.OrderItem{
			SKU:              item.SKU,
			ShopifyProductID: item.ShopifyProductID,
			ShopifyVariantID: item.ShopifyVariantID,
			Quantity:         quantity,
			ItemStatus:       item.ItemStatus,
		})
	}

	if err := gormDB.Create(&order).Error; err != nil {
		helpers.RespondWithDomainError(c, models.WrapDBError(err), "Failed to create order.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Order created successfully.",
		"order_id": order.ID,
	})
}

func GetOrder(c *gin.Context) {
	orderID := c.Param("id")

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var order models.Order
	if err := gormDB.Preload("Items").Preload("User").Where("id = ?", orderID).First(&order).Error; err != nil {
		helpers.RespondWithDomainError(c, models.WrapDBError(err), "Error retrieving order.")
		return
	}

	c.JSON(http.StatusOK, order)
}

func ListOrders(c *gin.Context) {
	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	page, limit, offset := helpers.Pagination(c)

	query := gormDB.Model(&models.Order{})
	if userID := c.Query("user_id"); userID != "" {
		query = query.Where("user_id = ?", userID)
	}
	if eventID := c.Query("event_id"); eventID != "" {
		query = query.Where("event_id = ?", eventID)
	}
	if shopifyOrderID := c.Query("shopify_order_id"); shopifyOrderID != "" {
		query = query.Where("shopify_order_id = ?", shopifyOrderID)
	}

	var totalCount int64
	query.Count(&totalCount)

	var orders []models.Order
	err := query.Preload("Items").Offset(offset).Limit(limit).Order("created_at DESC").Find(&orders).Error
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving orders.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"orders":      orders,
		"total":       totalCount,
		"page":        page,
		"limit":       limit,
		"total_pages": helpers.TotalPages(totalCount, limit),
	})
}

// UpdateOrder never touches shopify_order_id or created_at; the external
// order identity and creation time are immutable once written.
func UpdateOrder(c *gin.Context) {
	orderID := c.Param("id")

	var req UpdateOrderRequest
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

	var order models.Order
	if err := gormDB.Where("id = ?", orderID).First(&order).Error; err != nil {
		helpers.RespondWithDomainError(c, models.WrapDBError(err), "Error finding order.")
		return
	}

	if req.EventID != nil {
		order.EventID = req.EventID
	}
	if req.ShopifyOrderNumber != nil {
		order.ShopifyOrderNumber = req.ShopifyOrderNumber
	}
	if len(req.OrderType) > 0 {
		order.OrderType = req.OrderType
	}
	if req.Meta != nil {
		order.Meta = datatypes.JSONMap(req.Meta)
	}

	if err := gormDB.Save(&order).Error; err != nil {
		helpers.RespondWithDomainError(c, models.WrapDBError(err), "Failed to update order.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order updated successfully.",
		"order":   order,
	})
}

func CreateOrderItem(c *gin.Context) {
	orderID := c.Param("id")

	var req OrderItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}
	if req.ItemStatus != "" && !models.ValidItemStatus(req.ItemStatus) {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid item status: "+req.ItemStatus)
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var order models.Order
	if err := gormDB.Where("id = ?", orderID).First(&order).Error; err != nil {
		helpers.RespondWithDomainError(c, models.WrapDBError(err), "Error finding order.")
		return
	}

	quantity := req.Quantity
	if quantity < 1 {
		quantity = 1
	}
	item := models.OrderItem{
		OrderID:          order.ID,
		SKU:              req.SKU,
		ShopifyProductID: req.ShopifyProductID,
		ShopifyVariantID: req.ShopifyVariantID,
		Quantity:         quantity,
		ItemStatus:       req.ItemStatus,
	}

	if err := gormDB.Create(&item).Error; err != nil {
		helpers.RespondWithDomainError(c, models.WrapDBError(err), "Failed to create order item.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Order item created successfully.",
		"item_id": item.ID,
	})
}

type UpdateOrderItemRequest struct {
	Quantity   *int    `json:"quantity"`
	ItemStatus *string `json:"item_status"`
}

// UpdateOrderItem overwrites the current item status; there is no status
// history kept on the row.
func UpdateOrderItem(c *gin.Context) {
	itemID := c.Param("id")

	var req UpdateOrderItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}
	if req.ItemStatus != nil && !models.ValidItemStatus(*req.ItemStatus) {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid item status: "+*req.ItemStatus)
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var item models.OrderItem
	if err := gormDB.Where("id = ?", itemID).First(&item).Error; err != nil {
		helpers.RespondWithDomainError(c, models.WrapDBError(err), "Error finding order item.")
		return
	}

	if req.Quantity != nil && *req.Quantity > 0 {
		item.Quantity = *req.Quantity
	}
	if req.ItemStatus != nil {
		item.ItemStatus = *req.ItemStatus
	}

	if err := gormDB.Save(&item).Error; err != nil {
		helpers.RespondWithDomainError(c, models.WrapDBError(err), "Failed to update order item.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order item updated successfully.",
		"item":    item,
	})
}
