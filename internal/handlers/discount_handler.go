package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/veilandvest/backoffice/internal/helpers"
	"github.com/veilandvest/backoffice/internal/models"
)

type CreateDiscountRequest struct {
	EventID           uuid.UUID       `json:"event_id" binding:"required"`
	AttendeeID        uuid.UUID       `json:"attendee_id" binding:"required"`
	Amount            decimal.Decimal `json:"amount"`
	Type              string          `json:"type" binding:"required"`
	Code              string          `json:"code"`
	ShopifyDiscountID *string         `json:"shopify_discount_id"`
	ShopifyProductID  *string         `json:"shopify_product_id"`
	ShopifyVariantID  *string         `json:"shopify_variant_id"`
}

func CreateDiscount(c *gin.Context) {
	var req CreateDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	if !models.ValidDiscountType(req.Type) {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid discount type. Must be GIFT, FULL_PAY or PARTY_OF_FOUR.")
		return
	}
	if req.Amount.IsNegative() {
		helpers.RespondWithError(c, http.StatusBadRequest, "Discount amount must not be negative.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	// Both targets must exist, and the attendee must belong to the event.
	// Nothing is persisted when either check fails.
	var event models.Event
	if err := gormDB.Where("id = ?", req.EventID).First(&event).Error; err != nil {
		helpers.RespondWithDomainError(c, wrapMissingTarget(err), "Error finding event.")
		return
	}
	var attendee models.Attendee
	if err := gormDB.Where("id = ? AND event_id = ?", req.AttendeeID, req.EventID).First(&attendee).Error; err != nil {
		helpers.RespondWithDomainError(c, wrapMissingTarget(err), "Error finding attendee.")
		return
	}

	discount := models.Discount{
		EventID:           event.ID,
		AttendeeID:        attendee.ID,
		Amount:            req.Amount,
		Type:              req.Type,
		Code:              req.Code,
		ShopifyDiscountID: req.ShopifyDiscountID,
		ShopifyProductID:  req.ShopifyProductID,
		ShopifyVariantID:  req.ShopifyVariantID,
	}

	if err := gormDB.Create(&discount).Error; err != nil {
		helpers.RespondWithDomainError(c, models.WrapDBError(err), "Failed to create discount.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":     "Discount created successfully.",
		"discount_id": discount.ID,
	})
}

// wrapMissingTarget turns a not-found referenced row into a referential
// integrity failure, matching what the FK constraint would have reported.
func wrapMissingTarget(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.ErrReferentialIntegrity
	}
	return models.WrapDBError(err)
}

func GetDiscount(c *gin.Context) {
	discountID := c.Param("id")

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var discount models.Discount
	if err := gormDB.Preload("Attendee").Where("id = ?", discountID).First(&discount).Error; err != nil {
		helpers.RespondWithDomainError(c, models.WrapDBError(err), "Error retrieving discount.")
		return
	}

	c.JSON(http.StatusOK, discount)
}

// ListDiscounts supports the selection the coupon deactivation job relies
// on: filter by used flag and code prefix, newest first.
func ListDiscounts(c *gin.Context) {
	var usedFilter *bool
	if used := c.Query("used"); used != "" {
		parsed, err := strconv.ParseBool(used)
		if err != nil {
			helpers.RespondWithError(c, http.StatusBadRequest, "Invalid used filter. Must be true or false.")
			return
		}
		usedFilter = &parsed
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	page, limit, offset := helpers.Pagination(c)

	query := gormDB.Model(&models.Discount{})
	if eventID := c.Query("event_id"); eventID != "" {
		query = query.Where("event_id = ?", eventID)
	}
	if usedFilter != nil {
		query = query.Where("used = ?", *usedFilter)
	}
	if prefix := c.Query("code_prefix"); prefix != "" {
		query = query.Where("code LIKE ?", prefix+"%")
	}

	var totalCount int64
	query.Count(&totalCount)

	var discounts []models.Discount
	err := query.Offset(offset).Limit(limit).Order("created_at DESC").Find(&discounts).Error
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving discounts.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"discounts":   discounts,
		"total":       totalCount,
		"page":        page,
		"limit":       limit,
		"total_pages": helpers.TotalPages(totalCount, limit),
	})
}

// RedeemDiscount flips used to true. The transition is one-way: there is no
// operation anywhere in the API that sets used back to false.
func RedeemDiscount(c *gin.Context) {
	discountID := c.Param("id")

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var discount models.Discount
	if err := gormDB.Where("id = ?", discountID).First(&discount).Error; err != nil {
		helpers.RespondWithDomainError(c, models.WrapDBError(err), "Error finding discount.")
		return
	}

	if err := discount.MarkUsed(); err != nil {
		helpers.RespondWithError(c, http.StatusConflict, "Discount has already been redeemed.")
		return
	}

	if err := gormDB.Model(&discount).Update("used", true).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to redeem discount.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Discount redeemed successfully.",
		"discount": discount,
	})
}
