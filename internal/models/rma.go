package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// RMA statuses are an append-only set: values have been added over the life
// of the system without migrating historic rows, so updates accept any
// non-empty status and reads pass stored values through untouched.
const (
	RMAStatusPending           = "PENDING"
	RMAStatusReceived          = "RECEIVED"
	RMAStatusRestocked         = "RESTOCKED"
	RMAStatusClosed            = "CLOSED"
	RMAStatusPendingCSAction   = "PENDING_CS_ACTION"
	RMAStatusWarehouseComplete = "WAREHOUSE_COMPLETE"
	RMAStatusCompleted         = "COMPLETED"
	RMAStatusCSComplete        = "CS_COMPLETE"
	RMAStatusWarehouseCanceled = "WAREHOUSE_CANCELED"
)

const (
	RMATypeResize       = "RESIZE"
	RMATypeDamaged      = "DAMAGED"
	RMATypeCancellation = "CANCELLATION"
	RMATypeExchange     = "EXCHANGE"
)

const (
	RMAItemTypeDisliked  = "DISLIKED"
	RMAItemTypeTooBig    = "TOO_BIG"
	RMAItemTypeTooSmall  = "TOO_SMALL"
	RMAItemTypeDamaged   = "DAMAGED"
	RMAItemTypeWrongItem = "WRONG_ITEM"
)

func ValidRMAItemType(t string) bool {
	switch t {
	case RMAItemTypeDisliked, RMAItemTypeTooBig, RMAItemTypeTooSmall,
		RMAItemTypeDamaged, RMAItemTypeWrongItem:
		return true
	}
	return false
}

// RMA tracks a return/exchange process against an order. Type is a set: a
// single RMA can be both DAMAGED and EXCHANGE. Status transitions are not
// constrained here; the workflow around the warehouse owns ordering.
type RMA struct {
	ID                 uuid.UUID `gorm:"type:uuid;primary_key"`
	OrderID            uuid.UUID `gorm:"type:uuid;not null;index"`
	Order              *Order
	RMANumber          string         `gorm:"uniqueIndex;not null"`
	Status             string         `gorm:"not null;default:'PENDING'"`
	Type               pq.StringArray `gorm:"type:text[]"`
	TotalItemsExpected int            `gorm:"not null;default:0"`
	TotalItemsReceived int            `gorm:"not null;default:0"`
	Items              []RMAItem      `gorm:"foreignKey:RMAID"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (RMA) TableName() string {
	return "rmas"
}

func (rma *RMA) BeforeCreate(tx *gorm.DB) (err error) {
	if rma.ID == uuid.Nil {
		rma.ID = uuid.New()
	}
	if rma.Status == "" {
		rma.Status = RMAStatusPending
	}
	return
}

type RMAItem struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key"`
	RMAID            uuid.UUID `gorm:"type:uuid;not null;index;column:rma_id"`
	SKU              string    `gorm:"not null"`
	ShopifyProductID *string
	ShopifyVariantID *string
	PurchasedPrice   decimal.Decimal `gorm:"type:numeric(10,2);not null;default:0"`
	Quantity         int             `gorm:"not null;default:1"`
	Type             string
	Reason           string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (RMAItem) TableName() string {
	return "rma_items"
}

func (item *RMAItem) BeforeCreate(tx *gorm.DB) (err error) {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	return
}
