package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category groups a user's tasks. Names are unique per owner.
type Category struct {
	ID        uuid.UUID `gorm:"primaryKey;type:uuid"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_categories_name_user,priority:2"`
	Name      string    `gorm:"size:255;not null;uniqueIndex:idx_categories_name_user,priority:1"`
	Slug      string    `gorm:"size:255;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	// filled by list/show queries only
	TasksCount int64 `gorm:"->;-:migration"`

	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (Category) TableName() string {
	return "categories"
}

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
