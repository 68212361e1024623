package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/iwvelando/carbon-footprint/internal/cache"
	"github.com/iwvelando/carbon-footprint/pkg/constants"
)

// Run serves the API on cfg.Address until ctx is cancelled, then shuts down
// gracefully.
func Run(ctx context.Context, logger *zap.Logger, cfg *Config, version string) error {
	listener, err := net.Listen("tcp", cfg.Address)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", cfg.Address, err)
	}
	return Serve(ctx, logger, listener, cfg, version)
}

// Serve is Run on an existing listener.
func Serve(ctx context.Context, logger *zap.Logger, listener net.Listener, cfg *Config, version string) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	factors, err := cfg.Factors.Load(logger)
	if err != nil {
		_ = listener.Close()
		return err
	}

	reportCache, err := cache.New(cfg.Cache, logger)
	if err != nil {
		_ = listener.Close()
		return err
	}
	defer func() {
		if closeErr := reportCache.Close(); closeErr != nil {
			logger.Warn("failed to close report cache",
				zap.String("op", "server.Serve"),
				zap.Error(closeErr),
			)
		}
	}()

	var limiter *RateLimiter
	if cfg.RateLimit.Requests > 0 {
		limiter = NewRateLimiter(cfg.RateLimit.Requests, cfg.RateLimit.Window())
		defer limiter.Stop()
	}

	srv := &http.Server{
		Handler: NewHandler(logger, Options{
			MaxUploadSize: cfg.UploadSizeBytes(),
			Version:       version,
			Factors:       factors,
			Cache:         reportCache,
			CacheTTL:      cfg.Cache.TTL(),
			RateLimiter:   limiter,
		}),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	info := factors.Info()
	logger.Info("starting server",
		zap.String("op", "server.Serve"),
		zap.String("address", listener.Addr().String()),
		zap.String("factorTable", info.Name),
		zap.String("factorVersion", info.Version),
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), constants.ShutdownTimeoutSeconds*time.Second)
		defer cancel()

		logger.Info("shutting down server", zap.String("op", "server.Serve"))
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
