package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/samber/do/v2"
	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/startup-scorer/internal/bootstrap"
	"github.com/jsamuelsen11/startup-scorer/internal/platform/config"
	"github.com/jsamuelsen11/startup-scorer/internal/platform/logging"
	"github.com/jsamuelsen11/startup-scorer/internal/platform/telemetry"
	"github.com/jsamuelsen11/startup-scorer/internal/ports"
)

const (
	defaultProfile      = "local"
	otelShutdownTimeout = 5 * time.Second
)

// globalOptions holds the persistent flags shared by every subcommand.
type globalOptions struct {
	profile   string
	configDir string

	// diag receives logs and stdout telemetry, keeping stdout for reports.
	diag io.Writer
}

// session is the wired scoring graph a subcommand works against.
type session struct {
	service ports.ScoringService
	logger  *slog.Logger
	topN    int
	close   func()
}

// sessionBuilder builds the scoring graph for the selected profile.
type sessionBuilder func(ctx context.Context, opts *globalOptions) (*session, error)

func newRootCmd(build sessionBuilder) *cobra.Command {
	opts := &globalOptions{}

	root := &cobra.Command{
		Use:           "scorer",
		Short:         "Score startup domains by company signals",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			opts.diag = cmd.ErrOrStderr()
		},
	}

	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		profile = defaultProfile
	}
	root.PersistentFlags().StringVar(&opts.profile, "profile", profile, "configuration profile (local, dev, qa, prod)")
	root.PersistentFlags().StringVar(&opts.configDir, "config-dir", "", "directory holding base.yaml and profile files (default ./configs)")

	root.AddCommand(domainCmd(opts, build))
	root.AddCommand(batchCmd(opts, build))

	return root
}

// buildSession loads configuration and wires the scoring graph through the
// same providers the server uses.
func buildSession(ctx context.Context, opts *globalOptions) (*session, error) {
	var loadOpts []config.Option
	if opts.configDir != "" {
		loadOpts = append(loadOpts, config.WithConfigDir(opts.configDir))
	}

	cfg, err := config.Load(opts.profile, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	diag := opts.diag
	if diag == nil {
		diag = os.Stderr
	}
	logger := logging.New(cfg.Log.Level, cfg.Log.Format, diag)

	otel, err := bootstrap.InitTelemetry(ctx, cfg, telemetry.WithWriter(diag))
	if err != nil {
		return nil, fmt.Errorf("initializing telemetry: %w", err)
	}

	injector := do.New()
	bootstrap.Register(injector, cfg, logger, otel.Metrics)

	svc, err := do.Invoke[ports.ScoringService](injector)
	if err != nil {
		_ = otel.Shutdown(ctx)
		return nil, fmt.Errorf("resolving scoring service: %w", err)
	}

	return &session{
		service: svc,
		logger:  logger,
		topN:    cfg.Batch.TopN,
		close: func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
			defer cancel()
			if err := otel.Shutdown(shutdownCtx); err != nil {
				logger.Error("telemetry shutdown error", slog.Any("error", err))
			}
		},
	}, nil
}
