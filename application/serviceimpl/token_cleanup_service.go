package serviceimpl

import (
	"context"
	"time"

	"todolist-api/domain/repositories"
	"todolist-api/domain/services"
	"todolist-api/pkg/logger"
	"todolist-api/pkg/scheduler"
)

const (
	tokenCleanupJobID = "purge-revoked-tokens"
	tokenCleanupCron  = "0 * * * *"
)

type TokenCleanupServiceImpl struct {
	revokedRepo repositories.RevokedTokenRepository
	scheduler   scheduler.EventScheduler
}

func NewTokenCleanupService(revokedRepo repositories.RevokedTokenRepository, scheduler scheduler.EventScheduler) services.TokenCleanupService {
	return &TokenCleanupServiceImpl{
		revokedRepo: revokedRepo,
		scheduler:   scheduler,
	}
}

// RegisterCleanupJob purges expired revocations every hour
func (s *TokenCleanupServiceImpl) RegisterCleanupJob() error {
	return s.scheduler.AddJob(tokenCleanupJobID, tokenCleanupCron, func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()

		if _, err := s.PurgeExpired(ctx); err != nil {
			logger.Error("Revoked token cleanup failed", "error", err)
		}
	})
}

func (s *TokenCleanupServiceImpl) PurgeExpired(ctx context.Context) (int64, error) {
	purged, err := s.revokedRepo.PurgeExpired(ctx, time.Now().UTC())
	if err != nil {
		return 0, err
	}
	if purged > 0 {
		logger.InfoContext(ctx, "Expired revoked tokens purged", "count", purged)
	}
	return purged, nil
}
