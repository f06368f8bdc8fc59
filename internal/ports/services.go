package ports

import (
	"context"

	"github.com/jsamuelsen11/startup-scorer/internal/domain/report"
	"github.com/jsamuelsen11/startup-scorer/internal/domain/scoring"
)

// ScoringService defines the service port for scoring use cases.
// Implemented by the application layer; called by inbound adapters (HTTP
// handlers and the CLI).
type ScoringService interface {
	// ScoreDomain looks up and scores a single domain.
	// Returns domain.ErrValidation if the domain name is malformed and the
	// lookup error (ErrNotFound, ErrUnavailable, ...) if the lookup fails.
	ScoreDomain(ctx context.Context, domainName string) (*scoring.Result, error)

	// ScoreBatch scores every domain in order and returns a report with one
	// row per input domain. Lookup failures and malformed domains become
	// unavailable rows; the batch never aborts because of a single item.
	// Returns domain.ErrValidation only for request-level problems (empty
	// batch, batch larger than the configured maximum).
	ScoreBatch(ctx context.Context, domains []string) (*report.Report, error)

	// ScoringConfig returns the active scoring configuration.
	ScoringConfig() scoring.Config
}
