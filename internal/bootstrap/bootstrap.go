// Package bootstrap wires the scoring graph shared by the HTTP server and the
// CLI: telemetry providers, the outbound domain-search client, the scorer and
// the scoring service. Both binaries register it into a samber/do injector
// and add their own inbound adapters on top.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/samber/do/v2"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/jsamuelsen11/startup-scorer/internal/adapters/clients/acl"
	"github.com/jsamuelsen11/startup-scorer/internal/app"
	"github.com/jsamuelsen11/startup-scorer/internal/domain/scoring"
	"github.com/jsamuelsen11/startup-scorer/internal/platform/config"
	"github.com/jsamuelsen11/startup-scorer/internal/platform/httpclient"
	"github.com/jsamuelsen11/startup-scorer/internal/platform/telemetry"
	"github.com/jsamuelsen11/startup-scorer/internal/ports"
)

// Telemetry bundles OpenTelemetry provider lifecycle. All fields are nil
// when telemetry is disabled.
type Telemetry struct {
	tracer  *sdktrace.TracerProvider
	meter   *sdkmetric.MeterProvider
	Metrics *telemetry.Metrics
}

// Shutdown flushes both providers. Nil-safe.
func (t *Telemetry) Shutdown(ctx context.Context) error {
	var errs []error
	if t.tracer != nil {
		if err := t.tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if t.meter != nil {
		if err := t.meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

// InitTelemetry starts the tracer and meter providers configured in
// cfg.Telemetry and creates the application instruments. opts reach the
// exporters, e.g. telemetry.WithWriter for the CLI.
func InitTelemetry(ctx context.Context, cfg *config.Config, opts ...telemetry.Option) (*Telemetry, error) {
	if !cfg.Telemetry.Enabled {
		return &Telemetry{}, nil
	}

	tp, err := telemetry.InitTracer(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
		opts...,
	)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	mp, err := telemetry.InitMeter(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
		opts...,
	)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, fmt.Errorf("init meter: %w", err)
	}

	metrics, err := telemetry.NewMetrics(mp, cfg.Telemetry.ServiceName)
	if err != nil {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
		return nil, fmt.Errorf("creating metrics: %w", err)
	}

	return &Telemetry{tracer: tp, meter: mp, Metrics: metrics}, nil
}

// Register provides the scoring graph:
//
//	*httpclient.Client -> *acl.HunterClient (ports.DomainLookup)
//	*scoring.Scorer    -> ports.ScoringService
//
// metrics may be nil.
func Register(injector do.Injector, cfg *config.Config, logger *slog.Logger, metrics *telemetry.Metrics) {
	do.Provide(injector, func(_ do.Injector) (*httpclient.Client, error) {
		return httpclient.New(&cfg.Client, acl.HunterServiceName, metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (*acl.HunterClient, error) {
		client := do.MustInvoke[*httpclient.Client](i)
		return acl.NewHunterClient(client, &cfg.Hunter, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.DomainLookup, error) {
		return do.MustInvoke[*acl.HunterClient](i), nil
	})

	do.Provide(injector, func(_ do.Injector) (*scoring.Scorer, error) {
		scorer, err := scoring.New(cfg.Scoring.ScorerConfig())
		if err != nil {
			return nil, fmt.Errorf("building scorer: %w", err)
		}
		return scorer, nil
	})

	do.Provide(injector, func(i do.Injector) (ports.ScoringService, error) {
		lookup := do.MustInvoke[ports.DomainLookup](i)
		scorer, err := do.Invoke[*scoring.Scorer](i)
		if err != nil {
			return nil, err
		}
		return app.NewScoringService(lookup, scorer, logger,
			app.WithMaxDomains(cfg.Batch.MaxDomains),
			app.WithMetrics(metrics),
		), nil
	})
}
