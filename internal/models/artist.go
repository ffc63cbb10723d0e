package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Artist struct {
	gorm.Model
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	Name      string    `gorm:"not null"`
	Slug      string    `gorm:"not null;uniqueIndex"`
	Genre     string
	Bio       string
	ImagePath string
	Events    []Event
	User      User
	UserID    uuid.UUID
}

func (artist *Artist) BeforeCreate(tx *gorm.DB) (err error) {
	if artist.ID == uuid.Nil {
		artist.ID = uuid.New()
	}
	return
}
