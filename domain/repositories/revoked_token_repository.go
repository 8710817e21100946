package repositories

import (
	"context"
	"time"

	"todolist-api/domain/ports"
)

// RevokedTokenRepository is the database-backed token blacklist
type RevokedTokenRepository interface {
	ports.TokenBlacklistPort
	PurgeExpired(ctx context.Context, now time.Time) (int64, error)
}
