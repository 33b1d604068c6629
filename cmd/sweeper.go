package cmd

import (
	"context"
	"time"

	"go.uber.org/zap"
)

const sweepInterval = 15 * time.Minute

type sessionSweeper interface {
	Sweep(ctx context.Context) (int64, error)
}

// startSweeper deletes expired sessions every interval until ctx is done.
// The returned channel is closed once the sweeper has stopped.
func startSweeper(ctx context.Context, logger *zap.SugaredLogger, sessions sessionSweeper, interval time.Duration) <-chan struct{} {
	done := make(chan struct{})

	go func() {
		defer close(done)

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				deleted, err := sessions.Sweep(ctx)
				if err != nil {
					logger.Errorw("failed to sweep expired sessions", "error", err)
					continue
				}
				if deleted > 0 {
					logger.Infow("expired sessions swept", "deleted", deleted)
				}
			}
		}
	}()

	return done
}
