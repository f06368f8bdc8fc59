// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/metric"

	appctx "github.com/jsamuelsen11/startup-scorer/internal/app/context"
	"github.com/jsamuelsen11/startup-scorer/internal/domain"
	"github.com/jsamuelsen11/startup-scorer/internal/domain/company"
	"github.com/jsamuelsen11/startup-scorer/internal/domain/report"
	"github.com/jsamuelsen11/startup-scorer/internal/domain/scoring"
	"github.com/jsamuelsen11/startup-scorer/internal/platform/logging"
	"github.com/jsamuelsen11/startup-scorer/internal/platform/telemetry"
	"github.com/jsamuelsen11/startup-scorer/internal/ports"
)

// DefaultMaxDomains caps a batch when no explicit limit is configured.
const DefaultMaxDomains = 500

// Compile-time check that ScoringService implements ports.ScoringService.
var _ ports.ScoringService = (*ScoringService)(nil)

// ScoringService implements ports.ScoringService by normalizing domain names,
// looking them up through the DomainLookup port, and scoring the records.
// Batches run sequentially; a failed lookup marks its row unavailable and
// the batch continues.
type ScoringService struct {
	lookup     ports.DomainLookup
	scorer     *scoring.Scorer
	maxDomains int
	metrics    *telemetry.Metrics
	logger     *slog.Logger
	now        func() time.Time
}

// Option configures a ScoringService.
type Option func(*ScoringService)

// WithMaxDomains sets the largest batch ScoreBatch accepts.
func WithMaxDomains(n int) Option {
	return func(s *ScoringService) {
		if n > 0 {
			s.maxDomains = n
		}
	}
}

// WithMetrics enables scorer metrics. Without it no metrics are recorded.
func WithMetrics(m *telemetry.Metrics) Option {
	return func(s *ScoringService) {
		s.metrics = m
	}
}

// WithClock overrides the report timestamp source.
func WithClock(now func() time.Time) Option {
	return func(s *ScoringService) {
		s.now = now
	}
}

// NewScoringService creates a ScoringService. A nil logger discards output.
func NewScoringService(
	lookup ports.DomainLookup, scorer *scoring.Scorer, logger *slog.Logger, opts ...Option,
) *ScoringService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	s := &ScoringService{
		lookup:     lookup,
		scorer:     scorer,
		maxDomains: DefaultMaxDomains,
		logger:     logger,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ScoreDomain normalizes domainName, looks it up, and scores the record.
// A malformed name returns a *domain.ValidationError without any lookup.
func (s *ScoringService) ScoreDomain(ctx context.Context, domainName string) (*scoring.Result, error) {
	name, err := company.NormalizeDomain(domainName)
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "scoring domain", slog.String("domain", name))

	result, err := s.lookupAndScore(ctx, name)
	if err != nil {
		s.logger.WarnContext(ctx, "domain lookup failed",
			slog.String("operation", "ScoreDomain"),
			slog.String("domain", name),
			slog.Any("error", err),
		)
		return nil, err
	}

	return result, nil
}

// ScoreBatch scores every entry of domains in order and returns a report
// with exactly one row per entry. Malformed names and failed lookups become
// unavailable rows. Repeated domains are looked up once per batch.
//
// An error is returned only for request-level problems: an empty batch, a
// batch larger than the configured maximum, or a canceled context.
func (s *ScoringService) ScoreBatch(ctx context.Context, domains []string) (*report.Report, error) {
	if len(domains) == 0 {
		return nil, domain.NewValidationError("domains", domain.MsgRequired)
	}
	if len(domains) > s.maxDomains {
		return nil, domain.NewValidationError("domains",
			fmt.Sprintf("must contain at most %d entries, got %d", s.maxDomains, len(domains)))
	}

	start := time.Now()
	ctx, logger := logging.With(ctx, slog.String("batch_id", uuid.NewString()))
	logger.InfoContext(ctx, "scoring batch", slog.Int("domains", len(domains)))

	bc := appctx.New(ctx)
	rep := report.New(len(domains), s.now())

	for i, raw := range domains {
		if err := ctx.Err(); err != nil {
			logger.WarnContext(ctx, "batch canceled",
				slog.String("operation", "ScoreBatch"),
				slog.Int("completed", i),
				slog.Any("error", err),
			)
			return nil, fmt.Errorf("scoring batch: %w", err)
		}

		name, err := company.NormalizeDomain(raw)
		if err != nil {
			logger.WarnContext(ctx, "skipping malformed domain",
				slog.String("operation", "ScoreBatch"),
				slog.String("domain", raw),
				slog.Any("error", err),
			)
			s.recordFailure(ctx, err)
			rep.AddUnavailable(strings.TrimSpace(raw), err)
			continue
		}

		result, err := appctx.GetOrFetch(bc, name, func(ctx context.Context) (*scoring.Result, error) {
			return s.lookupAndScore(ctx, name)
		})
		if err != nil {
			if ctx.Err() != nil {
				continue // reported by the ctx.Err check on the next iteration
			}
			logger.WarnContext(ctx, "domain lookup failed",
				slog.String("operation", "ScoreBatch"),
				slog.String("domain", name),
				slog.Any("error", err),
			)
			rep.AddUnavailable(name, err)
			continue
		}

		rep.AddScored(name, *result)
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("scoring batch: %w", err)
	}

	sum := rep.Summary()
	elapsed := time.Since(start)
	logger.InfoContext(ctx, "batch scored",
		slog.Int("total", sum.Total),
		slog.Int("scored", sum.Scored),
		slog.Int("unavailable", sum.Unavailable),
		slog.Int("duplicates", bc.Hits()),
		slog.Duration("elapsed", elapsed),
	)
	if s.metrics != nil {
		s.metrics.BatchDuration.Record(ctx, elapsed.Seconds())
	}

	return rep, nil
}

// ScoringConfig returns a copy of the active scoring configuration.
func (s *ScoringService) ScoringConfig() scoring.Config {
	return s.scorer.Config()
}

// lookupAndScore performs one lookup and scores the record, recording the
// outcome in metrics.
func (s *ScoringService) lookupAndScore(ctx context.Context, name string) (*scoring.Result, error) {
	rec, err := s.lookup.LookupDomain(ctx, name)
	if err != nil {
		s.recordFailure(ctx, err)
		return nil, err
	}
	if rec == nil {
		err := fmt.Errorf("lookup for %s returned no record: %w", name, domain.ErrUnavailable)
		s.recordFailure(ctx, err)
		return nil, err
	}

	result := s.scorer.Score(*rec)
	if s.metrics != nil {
		s.metrics.DomainsScored.Add(ctx, 1,
			metric.WithAttributes(telemetry.AttrTier.String(result.Tier.String())))
	}
	return &result, nil
}

func (s *ScoringService) recordFailure(ctx context.Context, err error) {
	if s.metrics == nil {
		return
	}
	s.metrics.LookupFailures.Add(ctx, 1,
		metric.WithAttributes(telemetry.AttrReason.String(FailureReason(err))))
}

// FailureReason classifies a lookup error into a short, stable label used
// in metrics and report output.
func FailureReason(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, domain.ErrNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrValidation):
		return "invalid"
	case errors.Is(err, domain.ErrForbidden):
		return "forbidden"
	case errors.Is(err, domain.ErrConflict):
		return "conflict"
	case errors.Is(err, domain.ErrRateLimited):
		return "rate_limited"
	case errors.Is(err, domain.ErrUnavailable):
		return "unavailable"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	default:
		return "error"
	}
}
