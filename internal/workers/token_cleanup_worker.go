package workers

import (
	"context"
	"time"

	"eventora_backend/internal/logger"
	"eventora_backend/internal/repositories"
)

const defaultCleanupInterval = 6 * time.Hour

// TokenCleanupWorker periodically removes expired refresh tokens so the
// table does not grow without bound.
type TokenCleanupWorker struct {
	tokenRepo repositories.RefreshTokenRepository
	interval  time.Duration
}

func NewTokenCleanupWorker(tokenRepo repositories.RefreshTokenRepository, interval time.Duration) *TokenCleanupWorker {
	if interval <= 0 {
		interval = defaultCleanupInterval
	}
	return &TokenCleanupWorker{
		tokenRepo: tokenRepo,
		interval:  interval,
	}
}

// Start launches the worker goroutine. It stops when ctx is cancelled.
func (w *TokenCleanupWorker) Start(ctx context.Context) {
	go w.run(ctx)
}

func (w *TokenCleanupWorker) run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	logger.Info("Token cleanup worker started", "interval", w.interval.String())

	// One pass at startup, then on every tick.
	w.cleanup(ctx)

	for {
		select {
		case <-ctx.Done():
			logger.Info("Token cleanup worker stopped")
			return
		case <-ticker.C:
			w.cleanup(ctx)
		}
	}
}

func (w *TokenCleanupWorker) cleanup(ctx context.Context) {
	deleted, err := w.tokenRepo.DeleteExpired(ctx)
	if err != nil {
		logger.WorkerLog("token_cleanup", "delete_expired", err)
		return
	}
	if deleted > 0 {
		logger.Info("Expired refresh tokens removed", "count", deleted)
	}
}
