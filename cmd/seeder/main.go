// Command seeder creates or updates the admin-managed post groups listed in
// a YAML file. Groups are matched by slug; groups missing from the file are
// left untouched.
//
// Flags:
//
//	--file           groups file (overrides SEEDER_GROUPS_PATH)
//	--dry-run        parse and validate the file without writing to DB
//	--seeder-config  path to seeder YAML config file
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/yatube-backend/internal/adapter/postgres"
	"github.com/heartmarshall/yatube-backend/internal/adapter/postgres/group"
	"github.com/heartmarshall/yatube-backend/internal/app"
	"github.com/heartmarshall/yatube-backend/internal/app/seeder"
	"github.com/heartmarshall/yatube-backend/internal/config"
)

// Compile-time interface assertion.
var _ seeder.GroupUpserter = (*group.Repo)(nil)

func main() {
	fileFlag := flag.String("file", "", "groups YAML file")
	dryRunFlag := flag.Bool("dry-run", false, "validate the file without writing to DB")
	seederConfigFlag := flag.String("seeder-config", "", "path to seeder YAML config file")
	flag.Parse()

	// Load app config (for DB connection).
	appCfg, err := config.Load()
	if err != nil {
		log.Fatalf("load app config: %v", err)
	}

	logger := app.NewLogger(appCfg.Log)

	seederCfg, err := seeder.LoadConfig(*seederConfigFlag)
	if err != nil {
		logger.Error("load seeder config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// CLI flags override config.
	if *fileFlag != "" {
		seederCfg.GroupsPath = *fileFlag
	}
	if *dryRunFlag {
		seederCfg.DryRun = true
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, appCfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	pipeline := seeder.NewPipeline(logger, group.New(pool), postgres.NewTxManager(pool), *seederCfg, nil)
	if _, err := pipeline.Run(ctx); err != nil {
		logger.Error("seeding failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
