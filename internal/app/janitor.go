package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"
)

type sessionCleaner interface {
	CleanupExpiredSessions(ctx context.Context) (int, error)
}

// runSessionJanitor deletes expired sessions every interval until ctx is
// done. A failed sweep is logged and retried on the next tick.
func runSessionJanitor(ctx context.Context, logger *slog.Logger, clock clockwork.Clock, interval time.Duration, cleaner sessionCleaner) error {
	if interval <= 0 {
		return nil
	}
	log := logger.With("job", "session_janitor")

	ticker := clock.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.Chan():
			deleted, err := cleaner.CleanupExpiredSessions(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return nil
				}
				log.ErrorContext(ctx, "cleanup sessions", slog.String("error", err.Error()))
				continue
			}
			if deleted > 0 {
				log.InfoContext(ctx, "expired sessions deleted", slog.Int("count", deleted))
			}
		}
	}
}
