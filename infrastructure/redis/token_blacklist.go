package redis

import (
	"context"
	"time"

	"github.com/google/uuid"

	"todolist-api/domain/ports"
)

const revokedKeyPrefix = "revoked:"

// TokenBlacklist keeps revoked token ids in Redis until the token would
// have expired on its own
type TokenBlacklist struct {
	client *Client
}

func NewTokenBlacklist(client *Client) ports.TokenBlacklistPort {
	return &TokenBlacklist{client: client}
}

func (b *TokenBlacklist) Revoke(ctx context.Context, userID uuid.UUID, tokenID string, expiresAt time.Time) error {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}
	_, err := b.client.SetNX(ctx, revokedKeyPrefix+tokenID, userID.String(), ttl)
	return err
}

func (b *TokenBlacklist) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	return b.client.Exists(ctx, revokedKeyPrefix+tokenID)
}
