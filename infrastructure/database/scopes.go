package database

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OwnedBy restricts a query to rows of table owned by userID. Every
// category and task lookup goes through it.
func OwnedBy(table string, userID uuid.UUID) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(table+".user_id = ?", userID)
	}
}

// Paginate applies offset and limit; a non-positive limit means no limit
func Paginate(offset, limit int) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if limit <= 0 {
			return db
		}
		return db.Offset(offset).Limit(limit)
	}
}
