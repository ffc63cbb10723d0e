package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Event struct {
	gorm.Model
	ID          uuid.UUID `gorm:"type:uuid;primary_key"`
	Title       string    `gorm:"not null"`
	Slug        string    `gorm:"not null;uniqueIndex"`
	Description string
	Genre       string
	Venue       string
	City        string
	Time        string // 24-hour "HH:MM" wall-clock, stored as entered
	ImagePath   string
	Dates       []EventDate
	ArtistID    *uuid.UUID
	Artist      *Artist
	User        User
	UserID      uuid.UUID
}

func (event *Event) BeforeCreate(tx *gorm.DB) (err error) {
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	return
}

type EventDate struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primary_key"`
	Date      time.Time `gorm:"not null;index"`
	EventID   uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
