package ports

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TokenBlacklistPort records revoked token ids until they expire.
// Implemented by Redis and by the database.
type TokenBlacklistPort interface {
	Revoke(ctx context.Context, userID uuid.UUID, tokenID string, expiresAt time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
