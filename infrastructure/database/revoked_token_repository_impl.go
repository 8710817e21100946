package database

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"todolist-api/domain/models"
	"todolist-api/domain/repositories"
)

type RevokedTokenRepositoryImpl struct {
	db *gorm.DB
}

func NewRevokedTokenRepository(db *gorm.DB) repositories.RevokedTokenRepository {
	return &RevokedTokenRepositoryImpl{db: db}
}

// Revoke is idempotent: revoking the same jti twice is not an error
func (r *RevokedTokenRepositoryImpl) Revoke(ctx context.Context, userID uuid.UUID, tokenID string, expiresAt time.Time) error {
	token := &models.RevokedToken{
		JTI:       tokenID,
		UserID:    userID,
		ExpiresAt: expiresAt.UTC(),
	}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(token).Error
	return translateError(err)
}

func (r *RevokedTokenRepositoryImpl) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.RevokedToken{}).
		Where("jti = ?", tokenID).
		Count(&count).Error
	return count > 0, err
}

func (r *RevokedTokenRepositoryImpl) PurgeExpired(ctx context.Context, now time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("expires_at < ?", now.UTC()).
		Delete(&models.RevokedToken{})
	return result.RowsAffected, result.Error
}
