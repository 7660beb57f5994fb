package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Attendee is a participant in an Event. It may or may not be backed by a
// User account, and may or may not have a Look assigned yet.
type Attendee struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key"`
	EventID   uuid.UUID  `gorm:"type:uuid;not null;index"`
	Event     *Event
	UserID    *uuid.UUID `gorm:"type:uuid"`
	User      *User
	LookID    *uuid.UUID `gorm:"type:uuid"`
	Look      *Look
	FirstName string
	LastName  string
	Role      *string
	IsActive  bool `gorm:"not null;default:true"`
	Invite    bool `gorm:"not null;default:false"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (attendee *Attendee) BeforeCreate(tx *gorm.DB) (err error) {
	if attendee.ID == uuid.Nil {
		attendee.ID = uuid.New()
	}
	return
}
