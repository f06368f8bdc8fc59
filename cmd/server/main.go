// Package main is the entry point for the scoring API server. It wires all
// dependencies using samber/do v2, starts the HTTP server, and handles
// graceful shutdown on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/startup-scorer/internal/adapters/http"
	"github.com/jsamuelsen11/startup-scorer/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/startup-scorer/internal/adapters/http/middleware"

	"github.com/jsamuelsen11/startup-scorer/internal/adapters/clients/acl"
	"github.com/jsamuelsen11/startup-scorer/internal/bootstrap"
	"github.com/jsamuelsen11/startup-scorer/internal/platform/config"
	"github.com/jsamuelsen11/startup-scorer/internal/platform/health"
	"github.com/jsamuelsen11/startup-scorer/internal/platform/logging"
	"github.com/jsamuelsen11/startup-scorer/internal/platform/telemetry"
	"github.com/jsamuelsen11/startup-scorer/internal/ports"
)

const (
	otelShutdownTimeout = 5 * time.Second
	healthCheckTimeout  = 2 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, dev, qa, prod)")
	}

	// Bootstrap: config, logger, telemetry.
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)
	slog.SetDefault(logger)

	ctx := context.Background()
	otel, err := bootstrap.InitTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.Metrics)

	bootstrap.Register(injector, cfg, logger, otel.Metrics)
	registerHTTP(injector, cfg, logger)

	// Resolve the server (eagerly wires the full graph).
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	// Register health checkers after the graph is wired.
	registry := do.MustInvoke[ports.HealthRegistry](injector)
	registry.Register(do.MustInvoke[*acl.HunterClient](injector))

	logger.Info("scoring configured",
		slog.String("profile", profile),
		slog.Float64("threshold_medium", cfg.Scoring.Thresholds.Medium),
		slog.Float64("threshold_high", cfg.Scoring.Thresholds.High),
		slog.Int("batch_max_domains", cfg.Batch.MaxDomains),
	)

	// Start server in background.
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	// Wait for shutdown signal or server error.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	}

	// Graceful shutdown: drain HTTP requests using server.shutdown_timeout.
	if err := server.Shutdown(context.Background()); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}

	// Wait for Start() goroutine to return.
	<-serverErr

	// Flush telemetry.
	otelCtx, otelCancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer otelCancel()

	if err := otel.Shutdown(otelCtx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}

	logger.Info("shutdown complete")
	return nil
}

func registerHTTP(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(health.WithCheckTimeout(healthCheckTimeout)), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.ScoreHandler, error) {
		svc, err := do.Invoke[ports.ScoringService](i)
		if err != nil {
			return nil, err
		}
		return handlers.NewScoreHandler(svc, cfg.Batch.TopN), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		registry := do.MustInvoke[ports.HealthRegistry](i)
		return handlers.NewHealthHandler(registry), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		scoreH, err := do.Invoke[*handlers.ScoreHandler](i)
		if err != nil {
			return nil, err
		}
		healthH := do.MustInvoke[*handlers.HealthHandler](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return adapthttp.NewRouter(scoreH, healthH,
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger),
			middleware.Timeout(cfg.Server.WriteTimeout),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler, err := do.Invoke[nethttp.Handler](i)
		if err != nil {
			return nil, err
		}
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}
