package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	EventTypeWedding = "WEDDING"
	EventTypeProm    = "PROM"
	EventTypeOther   = "OTHER"
)

func ValidEventType(t string) bool {
	switch t {
	case EventTypeWedding, EventTypeProm, EventTypeOther:
		return true
	}
	return false
}

type Event struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	Name      string    `gorm:"not null"`
	EventAt   time.Time `gorm:"not null"`
	Type      string    `gorm:"not null"`
	IsActive  bool      `gorm:"not null;default:true"`
	Metadata  datatypes.JSONMap `gorm:"type:jsonb"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	User      *User
	Attendees []Attendee
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (event *Event) BeforeCreate(tx *gorm.DB) (err error) {
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	return
}
