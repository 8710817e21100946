package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID              uuid.UUID `gorm:"primaryKey;type:uuid"`
	Name            string    `gorm:"size:255;not null"`
	Email           string    `gorm:"size:255;uniqueIndex;not null"`
	Password        string    `gorm:"size:255;not null"` // bcrypt hash
	EmailVerifiedAt *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (User) TableName() string {
	return "users"
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
