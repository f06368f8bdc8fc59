package ports

import (
	"context"

	"github.com/jsamuelsen11/startup-scorer/internal/domain/company"
)

// DomainLookup defines the client port for the downstream domain-intelligence
// API. Implemented by the ACL adapter; called by the application layer.
type DomainLookup interface {
	// LookupDomain returns the company record for a normalized domain name.
	// Returns domain.ErrNotFound if the API knows nothing about the domain,
	// domain.ErrRateLimited when the API quota is exhausted, and
	// domain.ErrUnavailable when the API cannot be reached.
	LookupDomain(ctx context.Context, domainName string) (*company.Record, error)
}
