// Package seeder loads admin-managed groups from a YAML file into the store.
package seeder

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/yatube-backend/internal/domain"
)

// GroupUpserter stores a group keyed by its slug and reports whether it
// was created.
type GroupUpserter interface {
	Upsert(ctx context.Context, g domain.Group) (domain.Group, bool, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Result holds the outcome of a seeding run.
type Result struct {
	Inserted int
	Updated  int
	Skipped  int
	Duration time.Duration
}

// Pipeline seeds groups.
type Pipeline struct {
	log   *slog.Logger
	repo  GroupUpserter
	tx    txManager
	cfg   Config
	clock clockwork.Clock
}

// NewPipeline creates a new Pipeline.
func NewPipeline(log *slog.Logger, repo GroupUpserter, tx txManager, cfg Config, clock clockwork.Clock) *Pipeline {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Pipeline{
		log:   log.With("job", "seeder"),
		repo:  repo,
		tx:    tx,
		cfg:   cfg,
		clock: clock,
	}
}

// Run reads the groups file named by the config and seeds it.
func (p *Pipeline) Run(ctx context.Context) (Result, error) {
	f, err := os.Open(p.cfg.GroupsPath)
	if err != nil {
		return Result{}, fmt.Errorf("open groups file: %w", err)
	}
	defer f.Close()

	groups, err := ParseGroups(f)
	if err != nil {
		return Result{}, fmt.Errorf("parse %s: %w", p.cfg.GroupsPath, err)
	}
	return p.Seed(ctx, groups)
}

// Seed upserts groups in a single transaction. In dry-run mode nothing is
// written and every group counts as skipped.
func (p *Pipeline) Seed(ctx context.Context, groups []domain.Group) (Result, error) {
	start := p.clock.Now()

	if p.cfg.DryRun {
		p.log.Info("dry run, nothing written", slog.Int("groups", len(groups)))
		return Result{Skipped: len(groups), Duration: p.clock.Since(start)}, nil
	}

	var result Result
	err := p.tx.RunInTx(ctx, func(ctx context.Context) error {
		result = Result{}
		for _, g := range groups {
			stored, inserted, err := p.repo.Upsert(ctx, g)
			if err != nil {
				return fmt.Errorf("upsert group %q: %w", g.Slug, err)
			}
			if inserted {
				result.Inserted++
			} else {
				result.Updated++
			}
			p.log.Debug("group seeded",
				slog.String("slug", stored.Slug),
				slog.Bool("inserted", inserted),
			)
		}
		return nil
	})
	if err != nil {
		return Result{}, err
	}

	result.Duration = p.clock.Since(start)
	p.log.Info("groups seeded",
		slog.Int("inserted", result.Inserted),
		slog.Int("updated", result.Updated),
		slog.Duration("duration", result.Duration),
	)
	return result, nil
}
