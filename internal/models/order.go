package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Order types are an open set: new values get added for reporting reasons
// and old ones are never removed or renumbered.
const (
	OrderTypeNewOrder   = "NEW_ORDER"
	OrderTypeResize     = "RESIZE"
	OrderTypeDamaged    = "DAMAGED"
	OrderTypeMissedItem = "MISSED_ITEM"
	OrderTypeExchange   = "EXCHANGE"
)

const (
	ItemStatusOrdered   = "ORDERED"
	ItemStatusFulfilled = "FULFILLED"
	ItemStatusShipped   = "SHIPPED"
	ItemStatusReturned  = "RETURNED"
	ItemStatusRefunded  = "REFUNDED"
	ItemStatusBackorder = "BACKORDER"
)

func ValidItemStatus(s string) bool {
	switch s {
	case ItemStatusOrdered, ItemStatusFulfilled, ItemStatusShipped,
		ItemStatusReturned, ItemStatusRefunded, ItemStatusBackorder:
		return true
	}
	return false
}

type Order struct {
	ID                 uuid.UUID `gorm:"type:uuid;primary_key"`
	UserID             uuid.UUID `gorm:"type:uuid;not null;index"`
	User               *User
	EventID            *uuid.UUID `gorm:"type:uuid;index"`
	Event              *Event
	ShopifyOrderID     *string        `gorm:"uniqueIndex"`
	ShopifyOrderNumber *string
	OrderType          pq.StringArray    `gorm:"type:text[]"`
	Meta               datatypes.JSONMap `gorm:"type:jsonb"`
	Items              []OrderItem       `gorm:"foreignKey:OrderID"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (order *Order) BeforeCreate(tx *gorm.DB) (err error) {
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	return
}

type OrderItem struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key"`
	OrderID          uuid.UUID `gorm:"type:uuid;not null;index"`
	SKU              string    `gorm:"not null"`
	ShopifyProductID *string
	ShopifyVariantID *string
	Quantity         int    `gorm:"not null;default:1"`
	ItemStatus       string `gorm:"not null;default:'ORDERED'"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (item *OrderItem) BeforeCreate(tx *gorm.DB) (err error) {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	if item.ItemStatus == "" {
		item.ItemStatus = ItemStatusOrdered
	}
	return
}
