package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ProductItem is a suit-builder catalog entry. Category groups items on the
// builder page (jacket, pant, shirt, tie, ...); DisplayOrder sorts within a
// category.
type ProductItem struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key"`
	SKU              string    `gorm:"uniqueIndex;not null"`
	Name             string    `gorm:"not null"`
	Category         string    `gorm:"index"`
	ShopifyProductID *string
	ShopifyVariantID *string
	Price            decimal.Decimal `gorm:"type:numeric(10,2);not null;default:0"`
	DisplayOrder     int             `gorm:"not null;default:0"`
	IsActive         bool            `gorm:"not null;default:true"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (ProductItem) TableName() string {
	return "product_items"
}

func (item *ProductItem) BeforeCreate(tx *gorm.DB) (err error) {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	return
}
