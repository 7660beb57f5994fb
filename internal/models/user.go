package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	AccountStatusDisabled = "disabled"
	AccountStatusActive   = "active"
)

type User struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key"`
	Email             string    `gorm:"uniqueIndex;not null"`
	Password          string    `gorm:"not null" json:"-"`
	FirstName         string
	LastName          string
	ShopifyCustomerID *string           `gorm:"index"`
	AccountStatus     string            `gorm:"not null;default:'disabled'"`
	Metadata          datatypes.JSONMap `gorm:"type:jsonb"`
	RoleID            uuid.UUID
	Role              Role
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (user *User) BeforeCreate(tx *gorm.DB) (err error) {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	if user.AccountStatus == "" {
		user.AccountStatus = AccountStatusDisabled
	}
	return
}

// BeforeSave lower-cases the email so the unique index holds
// case-insensitively regardless of how the address was typed.
func (user *User) BeforeSave(tx *gorm.DB) (err error) {
	user.Email = NormalizeEmail(user.Email)
	return
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
