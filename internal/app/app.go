package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jonboulle/clockwork"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/yatube-backend/internal/adapter/media"
	"github.com/heartmarshall/yatube-backend/internal/adapter/postgres"
	authorrepo "github.com/heartmarshall/yatube-backend/internal/adapter/postgres/author"
	commentrepo "github.com/heartmarshall/yatube-backend/internal/adapter/postgres/comment"
	followrepo "github.com/heartmarshall/yatube-backend/internal/adapter/postgres/follow"
	grouprepo "github.com/heartmarshall/yatube-backend/internal/adapter/postgres/group"
	postrepo "github.com/heartmarshall/yatube-backend/internal/adapter/postgres/post"
	sessionrepo "github.com/heartmarshall/yatube-backend/internal/adapter/postgres/session"
	"github.com/heartmarshall/yatube-backend/internal/auth"
	"github.com/heartmarshall/yatube-backend/internal/cache"
	"github.com/heartmarshall/yatube-backend/internal/config"
	"github.com/heartmarshall/yatube-backend/internal/domain"
	authsvc "github.com/heartmarshall/yatube-backend/internal/service/auth"
	"github.com/heartmarshall/yatube-backend/internal/service/feed"
	followsvc "github.com/heartmarshall/yatube-backend/internal/service/follow"
	postsvc "github.com/heartmarshall/yatube-backend/internal/service/post"
	"github.com/heartmarshall/yatube-backend/internal/transport/middleware"
	"github.com/heartmarshall/yatube-backend/internal/transport/rest"
	"github.com/heartmarshall/yatube-backend/internal/transport/web"
)

// Run is the application entry point. It loads configuration, connects to
// the database, wires the services and serves HTTP until ctx is canceled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("build", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	if cfg.Database.AutoMigrate {
		applied, err := postgres.Migrate(ctx, pool)
		if err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		logger.Info("migrations applied", slog.Int("count", len(applied)))
	}

	clock := clockwork.NewRealClock()

	// Repositories.
	txm := postgres.NewTxManager(pool)
	authors := authorrepo.New(pool)
	sessions := sessionrepo.New(pool)
	posts := postrepo.New(pool)
	comments := commentrepo.New(pool)
	groups := grouprepo.New(pool)
	follows := followrepo.New(pool)
	images := media.NewStore(cfg.Media.Dir, cfg.Media.MaxUploadBytes)

	// Services.
	index, err := cache.New[int, domain.Page[domain.Post]](cfg.Feed.IndexCacheSize, cfg.Feed.IndexCacheTTL, clock)
	if err != nil {
		return fmt.Errorf("index cache: %w", err)
	}

	authService := authsvc.NewService(logger, authors, sessions, txm,
		auth.NewPasswordHasher(cfg.Auth.PasswordHashCost),
		auth.NewSessionManager(cfg.Auth.SessionSecret, cfg.Auth.SessionIssuer, cfg.Auth.SessionTTL, clock),
	)
	followService := followsvc.NewService(logger, authors, follows)
	feedService := feed.NewService(logger, feed.Deps{
		Posts:    posts,
		Authors:  authors,
		Groups:   groups,
		Comments: comments,
		Follows:  followService,
		Tx:       txm,
	}, cfg.Feed.PageSize, index)
	postService := postsvc.NewService(logger, posts, comments, groups, images)

	// Transport.
	renderer, err := web.NewRenderer(clock)
	if err != nil {
		return fmt.Errorf("templates: %w", err)
	}

	limiter := middleware.NewRateLimiter(clock, rateLimitCleanupInterval)
	defer limiter.Stop()

	site := web.NewHandler(logger, feedService, postService, followService, authService, renderer, web.Options{
		CookieName:     cfg.Auth.CookieName,
		CookieSecure:   cfg.Auth.CookieSecure,
		LoginPath:      cfg.Auth.LoginPath,
		MaxUploadBytes: cfg.Media.MaxUploadBytes,
	}, limiter.Limit(cfg.Auth.LoginRatePerMinute))

	health := rest.NewHealthHandler(Version,
		rest.Component{Name: "postgres", Check: pool, Critical: true},
		rest.Component{Name: "media", Check: images},
	)

	root := newRootHandler(rootDeps{
		site:      site,
		health:    health,
		mediaRoot: images.Root(),
		middleware: middleware.Chain(
			middleware.RequestID(),
			middleware.Logger(logger),
			middleware.Recovery(logger, site.ServerError()),
			middleware.Session(logger, authService, cfg.Auth.CookieName, site.ServerError()),
		),
	})

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      root,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(gctx), cfg.Server.ShutdownTimeout)
		defer cancel()

		logger.Info("shutting down http server")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		return runSessionJanitor(gctx, logger, clock, cfg.Auth.CleanupInterval, authService)
	})

	if err := g.Wait(); err != nil {
		return err
	}

	logger.Info("application stopped")
	return nil
}
