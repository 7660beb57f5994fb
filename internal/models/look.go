package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Look is a named bundle of apparel items assignable to event attendees.
// ProductSpecs is an opaque JSON document; only the envelope fields below
// are ever interpreted. Deactivation is a soft flag so attendee references
// stay intact, and Fixed records that platform cleanup already ran.
type Look struct {
	ID                 uuid.UUID `gorm:"type:uuid;primary_key"`
	Name               string    `gorm:"not null"`
	UserID             uuid.UUID `gorm:"type:uuid;not null;index"`
	User               *User
	ProductSpecs       datatypes.JSON `gorm:"type:jsonb"`
	ProductSpecsLegacy datatypes.JSON `gorm:"type:jsonb"`
	ImagePath          string
	IsActive           bool `gorm:"not null;default:true"`
	Fixed              bool `gorm:"not null;default:false"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (look *Look) BeforeCreate(tx *gorm.DB) (err error) {
	if look.ID == uuid.Nil {
		look.ID = uuid.New()
	}
	return
}

type SpecsBundle struct {
	ProductID int64 `json:"product_id"`
	VariantID int64 `json:"variant_id"`
}

type SpecsItem struct {
	VariantSKU string `json:"variant_sku"`
}

type SpecsEnvelope struct {
	Bundle SpecsBundle `json:"bundle"`
	Items  []SpecsItem `json:"items"`
}

// ParseSpecs decodes the minimal envelope out of ProductSpecs. Anything in
// the document beyond the envelope fields is ignored rather than rejected.
func (look *Look) ParseSpecs() (*SpecsEnvelope, error) {
	if len(look.ProductSpecs) == 0 {
		return nil, fmt.Errorf("look %s has no product specs: %w", look.ID, ErrValidation)
	}

	var envelope SpecsEnvelope
	if err := json.Unmarshal(look.ProductSpecs, &envelope); err != nil {
		return nil, fmt.Errorf("look %s product specs: %v: %w", look.ID, err, ErrValidation)
	}

	if envelope.Bundle.ProductID == 0 {
		return nil, fmt.Errorf("look %s product specs missing bundle.product_id: %w", look.ID, ErrValidation)
	}
	for i, item := range envelope.Items {
		if item.VariantSKU == "" {
			return nil, fmt.Errorf("look %s product specs item %d missing variant_sku: %w", look.ID, i, ErrValidation)
		}
	}

	return &envelope, nil
}
