package app

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/metric/noop"

	"github.com/jsamuelsen11/startup-scorer/internal/domain"
	"github.com/jsamuelsen11/startup-scorer/internal/domain/company"
	"github.com/jsamuelsen11/startup-scorer/internal/domain/scoring"
	"github.com/jsamuelsen11/startup-scorer/internal/platform/telemetry"
	"github.com/jsamuelsen11/startup-scorer/mocks"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }
func strPtr(v string) *string     { return &v }

func newScorer(t *testing.T) *scoring.Scorer {
	t.Helper()

	s, err := scoring.New(scoring.DefaultConfig())
	require.NoError(t, err)
	return s
}

// fintechRecord scores 77 (High) under the default configuration.
func fintechRecord(domainName string) *company.Record {
	return &company.Record{
		Domain:          domainName,
		Organization:    "Acme Pay",
		Industry:        strPtr("Fintech"),
		EmployeeCount:   intPtr(500),
		EmailConfidence: floatPtr(90),
	}
}

// --- NewScoringService ---

func TestNewScoringService_NilLogger(t *testing.T) {
	t.Parallel()

	svc := NewScoringService(mocks.NewMockDomainLookup(t), newScorer(t), nil)
	if svc.logger == nil {
		t.Fatal("NewScoringService(nil logger) should create a no-op logger, got nil")
	}
	if svc.maxDomains != DefaultMaxDomains {
		t.Errorf("maxDomains = %d, want %d", svc.maxDomains, DefaultMaxDomains)
	}
}

func TestNewScoringService_IgnoresNonPositiveMax(t *testing.T) {
	t.Parallel()

	svc := NewScoringService(mocks.NewMockDomainLookup(t), newScorer(t), nil, WithMaxDomains(0))
	if svc.maxDomains != DefaultMaxDomains {
		t.Errorf("maxDomains = %d, want %d", svc.maxDomains, DefaultMaxDomains)
	}
}

// --- ScoreDomain ---

func TestScoringService_ScoreDomain(t *testing.T) {
	t.Parallel()

	t.Run("normalizes, looks up and scores", func(t *testing.T) {
		t.Parallel()
		lookup := mocks.NewMockDomainLookup(t)
		svc := NewScoringService(lookup, newScorer(t), discardLogger())

		lookup.EXPECT().LookupDomain(mock.Anything, "acmepay.com").Return(fintechRecord("acmepay.com"), nil)

		got, err := svc.ScoreDomain(context.Background(), "https://www.AcmePay.com/about")
		require.NoError(t, err)
		assert.Equal(t, "acmepay.com", got.Domain)
		assert.InDelta(t, 77.0, got.Score, 1e-9)
		assert.Equal(t, scoring.TierHigh, got.Tier)
	})

	t.Run("rejects malformed domain without lookup", func(t *testing.T) {
		t.Parallel()
		lookup := mocks.NewMockDomainLookup(t)
		svc := NewScoringService(lookup, newScorer(t), discardLogger())

		_, err := svc.ScoreDomain(context.Background(), "localhost")

		var verr *domain.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Fields, "domain")
	})

	t.Run("returns lookup error", func(t *testing.T) {
		t.Parallel()
		lookup := mocks.NewMockDomainLookup(t)
		svc := NewScoringService(lookup, newScorer(t), discardLogger())

		lookup.EXPECT().LookupDomain(mock.Anything, "gone.io").Return(nil, domain.ErrNotFound)

		_, err := svc.ScoreDomain(context.Background(), "gone.io")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("nil record is unavailable", func(t *testing.T) {
		t.Parallel()
		lookup := mocks.NewMockDomainLookup(t)
		svc := NewScoringService(lookup, newScorer(t), discardLogger())

		lookup.EXPECT().LookupDomain(mock.Anything, "empty.io").Return(nil, nil)

		_, err := svc.ScoreDomain(context.Background(), "empty.io")
		assert.ErrorIs(t, err, domain.ErrUnavailable)
	})
}

// --- ScoreBatch ---

func TestScoringService_ScoreBatch_RequestErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		domains []string
	}{
		{name: "empty batch", domains: nil},
		{name: "too many domains", domains: []string{"a.com", "b.com", "c.com"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			lookup := mocks.NewMockDomainLookup(t)
			svc := NewScoringService(lookup, newScorer(t), discardLogger(), WithMaxDomains(2))

			rep, err := svc.ScoreBatch(context.Background(), tt.domains)
			assert.Nil(t, rep)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestScoringService_ScoreBatch_MixedResults(t *testing.T) {
	t.Parallel()

	lookup := mocks.NewMockDomainLookup(t)
	svc := NewScoringService(lookup, newScorer(t), discardLogger())

	lookup.EXPECT().LookupDomain(mock.Anything, "acmepay.com").Return(fintechRecord("acmepay.com"), nil).Once()
	lookup.EXPECT().LookupDomain(mock.Anything, "gone.io").Return(nil, domain.ErrNotFound).Once()
	lookup.EXPECT().LookupDomain(mock.Anything, "tiny.dev").Return(&company.Record{Domain: "tiny.dev"}, nil).Once()

	input := []string{"acmepay.com", "localhost", "gone.io", "ACMEPAY.com", "tiny.dev", "gone.io"}

	rep, err := svc.ScoreBatch(context.Background(), input)
	require.NoError(t, err)
	require.Equal(t, len(input), rep.Len())

	wantDomains := []string{"acmepay.com", "localhost", "gone.io", "acmepay.com", "tiny.dev", "gone.io"}
	for i, row := range rep.Rows {
		assert.Equal(t, wantDomains[i], row.Domain, "row %d domain", i)
	}

	assert.False(t, rep.Rows[0].Unavailable())
	assert.InDelta(t, 77.0, rep.Rows[0].Result.Score, 1e-9)

	assert.True(t, rep.Rows[1].Unavailable())
	assert.ErrorIs(t, rep.Rows[1].Err, domain.ErrValidation)

	assert.True(t, rep.Rows[2].Unavailable())
	assert.ErrorIs(t, rep.Rows[2].Err, domain.ErrNotFound)

	assert.Equal(t, *rep.Rows[0].Result, *rep.Rows[3].Result, "duplicate rows must be identical")

	assert.InDelta(t, 0.0, rep.Rows[4].Result.Score, 1e-9)
	assert.Equal(t, scoring.TierLow, rep.Rows[4].Result.Tier)

	assert.ErrorIs(t, rep.Rows[5].Err, domain.ErrNotFound)

	sum := rep.Summary()
	assert.Equal(t, 3, sum.Scored)
	assert.Equal(t, 3, sum.Unavailable)
}

func TestScoringService_ScoreBatch_AllFailuresStillReport(t *testing.T) {
	t.Parallel()

	lookup := mocks.NewMockDomainLookup(t)
	svc := NewScoringService(lookup, newScorer(t), discardLogger())

	lookup.EXPECT().LookupDomain(mock.Anything, mock.Anything).Return(nil, domain.ErrUnavailable)

	rep, err := svc.ScoreBatch(context.Background(), []string{"a.com", "b.com"})
	require.NoError(t, err)
	require.Equal(t, 2, rep.Len())
	for _, row := range rep.Rows {
		assert.True(t, row.Unavailable())
	}
}

func TestScoringService_ScoreBatch_Canceled(t *testing.T) {
	t.Parallel()

	lookup := mocks.NewMockDomainLookup(t)
	svc := NewScoringService(lookup, newScorer(t), discardLogger())

	ctx, cancel := context.WithCancel(context.Background())

	lookup.EXPECT().LookupDomain(mock.Anything, "a.com").
		RunAndReturn(func(context.Context, string) (*company.Record, error) {
			cancel()
			return nil, context.Canceled
		}).Once()

	rep, err := svc.ScoreBatch(ctx, []string{"a.com", "b.com"})
	assert.Nil(t, rep)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestScoringService_ScoreBatch_UsesClock(t *testing.T) {
	t.Parallel()

	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	lookup := mocks.NewMockDomainLookup(t)
	svc := NewScoringService(lookup, newScorer(t), discardLogger(),
		WithClock(func() time.Time { return at }))

	lookup.EXPECT().LookupDomain(mock.Anything, "a.com").Return(&company.Record{Domain: "a.com"}, nil)

	rep, err := svc.ScoreBatch(context.Background(), []string{"a.com"})
	require.NoError(t, err)
	assert.Equal(t, at, rep.GeneratedAt)
}

func TestScoringService_ScoreBatch_WithMetrics(t *testing.T) {
	t.Parallel()

	metrics, err := telemetry.NewMetrics(noop.NewMeterProvider(), "test")
	require.NoError(t, err)

	lookup := mocks.NewMockDomainLookup(t)
	svc := NewScoringService(lookup, newScorer(t), discardLogger(), WithMetrics(metrics))

	lookup.EXPECT().LookupDomain(mock.Anything, "a.com").Return(fintechRecord("a.com"), nil)
	lookup.EXPECT().LookupDomain(mock.Anything, "b.com").Return(nil, domain.ErrRateLimited)

	rep, err := svc.ScoreBatch(context.Background(), []string{"a.com", "b.com", "bad"})
	require.NoError(t, err)
	assert.Equal(t, 3, rep.Len())
}

// --- ScoringConfig ---

func TestScoringService_ScoringConfig(t *testing.T) {
	t.Parallel()

	svc := NewScoringService(mocks.NewMockDomainLookup(t), newScorer(t), discardLogger())

	cfg := svc.ScoringConfig()
	assert.InDelta(t, 100.0, cfg.Weights.Total(), 1e-9)
	assert.InDelta(t, 70.0, cfg.Thresholds.High, 1e-9)
}

// --- FailureReason ---

func TestFailureReason(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{domain.ErrNotFound, "not_found"},
		{domain.NewValidationError("domain", domain.MsgInvalid), "invalid"},
		{domain.ErrForbidden, "forbidden"},
		{domain.ErrConflict, "conflict"},
		{domain.ErrRateLimited, "rate_limited"},
		{domain.ErrUnavailable, "unavailable"},
		{context.DeadlineExceeded, "canceled"},
		{errors.New("boom"), "error"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FailureReason(tt.err), "FailureReason(%v)", tt.err)
	}
}
