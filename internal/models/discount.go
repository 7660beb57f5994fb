package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	DiscountTypeGift        = "GIFT"
	DiscountTypeFullPay     = "FULL_PAY"
	DiscountTypePartyOfFour = "PARTY_OF_FOUR"
)

func ValidDiscountType(t string) bool {
	switch t {
	case DiscountTypeGift, DiscountTypeFullPay, DiscountTypePartyOfFour:
		return true
	}
	return false
}

// ErrDiscountUsed is returned when redeeming a discount that was already
// redeemed. Used only ever flips false -> true; there is no un-use.
var ErrDiscountUsed = fmt.Errorf("discount already used")

// Discount is a single-use credit scoped to one attendee within one event.
// PARTY_OF_FOUR discounts carry a zero amount by convention; the value
// lives in the qualifying condition, not the row.
type Discount struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key"`
	EventID           uuid.UUID `gorm:"type:uuid;not null;index"`
	Event             *Event
	AttendeeID        uuid.UUID `gorm:"type:uuid;not null;index"`
	Attendee          *Attendee
	Amount            decimal.Decimal `gorm:"type:numeric(10,2);not null;default:0"`
	Type              string          `gorm:"not null"`
	Used              bool            `gorm:"not null;default:false"`
	Code              string          `gorm:"index"`
	ShopifyDiscountID *string
	ShopifyProductID  *string
	ShopifyVariantID  *string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (discount *Discount) BeforeCreate(tx *gorm.DB) (err error) {
	if discount.ID == uuid.Nil {
		discount.ID = uuid.New()
	}
	return
}

// MarkUsed performs the one-way used transition.
func (discount *Discount) MarkUsed() error {
	if discount.Used {
		return ErrDiscountUsed
	}
	discount.Used = true
	return nil
}
