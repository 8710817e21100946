package services

import "context"

// TokenCleanupService purges expired revocations on a schedule
type TokenCleanupService interface {
	RegisterCleanupJob() error
	PurgeExpired(ctx context.Context) (int64, error)
}
