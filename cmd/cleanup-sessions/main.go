// Command cleanup-sessions deletes expired and revoked login sessions. It is
// meant for an external cron job when the in-process janitor is disabled
// (auth.cleanup_interval set to 0).
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/yatube-backend/internal/adapter/postgres"
	"github.com/heartmarshall/yatube-backend/internal/adapter/postgres/session"
	"github.com/heartmarshall/yatube-backend/internal/app"
	"github.com/heartmarshall/yatube-backend/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	now := time.Now()
	deleted, err := session.New(pool).DeleteExpired(ctx, now)
	if err != nil {
		logger.Error("cleanup sessions failed",
			slog.String("error", err.Error()),
			slog.Time("now", now),
		)
		os.Exit(1)
	}

	logger.Info("cleanup sessions completed", slog.Int("deleted", deleted))
}
