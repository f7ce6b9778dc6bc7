package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/learning-continuity/internal/config"
	"github.com/heartmarshall/learning-continuity/internal/transport/middleware"
	"github.com/heartmarshall/learning-continuity/internal/transport/rest"
	"github.com/heartmarshall/learning-continuity/pkg/clock"
)

// Version, Commit and BuildTime are set via ldflags at build time, e.g.
// -ldflags "-X github.com/heartmarshall/learning-continuity/internal/app.Version=1.0.0".
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion returns the version string reported by the CLI and /health.
func BuildVersion() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildTime)
}

// Run starts the HTTP API and blocks until ctx is cancelled, then shuts the
// server down gracefully within cfg.Server.ShutdownTimeout.
func Run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	logger.InfoContext(ctx, "starting application",
		slog.String("build", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	storage, err := OpenStorage(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer storage.Close() //nolint:errcheck

	engine := NewEngine(logger, storage.Store, cfg, clock.System{})

	handler, stop := NewHTTPHandler(cfg, logger, engine, storage)
	defer stop()

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.InfoContext(gctx, "http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(gctx), cfg.Server.ShutdownTimeout)
		defer cancel()

		logger.InfoContext(shutdownCtx, "shutting down http server")
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// NewHTTPHandler builds the routed API with the full middleware chain.
// The returned stop func releases the rate limiter's cleanup goroutine.
func NewHTTPHandler(cfg *config.Config, logger *slog.Logger, engine *Engine, storage *Storage) (http.Handler, func()) {
	var limit middleware.Middleware
	stop := func() {}
	if cfg.RateLimit.RequestsPerMinute > 0 {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
		limit = limiter.Limit(cfg.RateLimit.RequestsPerMinute)
		stop = limiter.Stop
	}

	chain := middleware.Chain(
		middleware.RequestID,
		middleware.Identity,
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
		limit,
	)

	h := rest.NewHandler(logger, engine.Sessions, engine.Continuity, engine.Insights, engine.Streaks)
	health := rest.NewHealthHandler(storage.Pinger, storage.Driver, BuildVersion())

	return rest.NewRouter(h, health, chain), stop
}
