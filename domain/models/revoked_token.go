package models

import (
	"time"

	"github.com/google/uuid"
)

// RevokedToken is a logged-out or refreshed token id, kept until the
// token would have expired anyway.
type RevokedToken struct {
	JTI       string    `gorm:"primaryKey;size:64"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	ExpiresAt time.Time `gorm:"not null;index"`
	CreatedAt time.Time
}

func (RevokedToken) TableName() string {
	return "revoked_tokens"
}
