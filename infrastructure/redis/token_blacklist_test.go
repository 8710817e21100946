package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"

	"todolist-api/pkg/config"
)

func newTestClient(t *testing.T) (*Client, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client, err := NewClient(&config.RedisConfig{URL: "redis://" + mr.Addr()})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	t.Cleanup(func() { client.Close() })
	return client, mr
}

func TestTokenBlacklist(t *testing.T) {
	client, mr := newTestClient(t)
	blacklist := NewTokenBlacklist(client)
	ctx := context.Background()
	userID := uuid.New()

	if err := blacklist.Revoke(ctx, userID, "jti-1", time.Now().Add(time.Hour)); err != nil {
		t.Fatalf("Revoke: %v", err)
	}

	revoked, err := blacklist.IsRevoked(ctx, "jti-1")
	if err != nil || !revoked {
		t.Fatalf("IsRevoked(jti-1) = %v, %v; want true", revoked, err)
	}
	if revoked, _ := blacklist.IsRevoked(ctx, "jti-2"); revoked {
		t.Error("unknown token reported as revoked")
	}

	ttl := mr.TTL(revokedKeyPrefix + "jti-1")
	if ttl <= 0 || ttl > time.Hour {
		t.Errorf("ttl = %v, want within one hour", ttl)
	}

	mr.FastForward(2 * time.Hour)
	if revoked, _ := blacklist.IsRevoked(ctx, "jti-1"); revoked {
		t.Error("revocation should expire with the token")
	}
}

func TestTokenBlacklistSkipsExpiredTokens(t *testing.T) {
	client, mr := newTestClient(t)
	blacklist := NewTokenBlacklist(client)

	if err := blacklist.Revoke(context.Background(), uuid.New(), "old", time.Now().Add(-time.Minute)); err != nil {
		t.Fatalf("Revoke: %v", err)
	}
	if mr.Exists(revokedKeyPrefix + "old") {
		t.Error("expired token should not be stored")
	}
}
