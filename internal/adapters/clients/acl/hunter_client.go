package acl

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"strings"

	"github.com/jsamuelsen11/startup-scorer/internal/adapters/clients/acl/hunter"
	"github.com/jsamuelsen11/startup-scorer/internal/domain"
	"github.com/jsamuelsen11/startup-scorer/internal/domain/company"
	"github.com/jsamuelsen11/startup-scorer/internal/platform/config"
	"github.com/jsamuelsen11/startup-scorer/internal/platform/httpclient"
	"github.com/jsamuelsen11/startup-scorer/internal/ports"
)

// HunterServiceName identifies the domain-search API in traces, metrics,
// and health results.
const HunterServiceName = "hunter-api"

const domainSearchPath = "/v2/domain-search"

// Compile-time interface check.
var _ ports.DomainLookup = (*HunterClient)(nil)

// HunterClient is the outbound adapter for the Hunter.io domain-search API.
// It implements [ports.DomainLookup].
//
// Responses are translated to [company.Record] by the [hunter] subpackage.
// HTTP errors are mapped to domain errors (ErrNotFound, ErrValidation,
// ErrForbidden, ErrRateLimited, ErrUnavailable) by [TranslateHTTPError].
//
// The underlying [httpclient.Client] provides circuit breaking, rate
// limiting, retry, and OpenTelemetry tracing for every outbound call.
type HunterClient struct {
	req        *Requester
	apiKey     string
	emailLimit int
	logger     *slog.Logger
}

// NewHunterClient creates a HunterClient that sends requests through the
// given [httpclient.Client]. The client's BaseURL should point to the API
// root (e.g. "https://api.hunter.io").
func NewHunterClient(client *httpclient.Client, cfg *config.HunterConfig, logger *slog.Logger) *HunterClient {
	return &HunterClient{
		req:        NewRequester(client, logger),
		apiKey:     cfg.APIKey,
		emailLimit: cfg.EmailLimit,
		logger:     logger,
	}
}

// LookupDomain fetches GET /v2/domain-search for domainName and returns the
// translated record. A 200 with no organization and no emails is still a
// record. Returns [domain.ErrNotFound] when the API does not know the domain.
func (c *HunterClient) LookupDomain(ctx context.Context, domainName string) (*company.Record, error) {
	domainName = strings.TrimSpace(domainName)
	if domainName == "" {
		return nil, domain.NewValidationError("domain", domain.MsgRequired)
	}

	query := url.Values{}
	query.Set("domain", domainName)
	query.Set("api_key", c.apiKey)
	if c.emailLimit > 0 {
		query.Set("limit", strconv.Itoa(c.emailLimit))
	}

	var dto hunter.DomainSearchResponseDTO
	if err := c.req.Get(ctx, domainSearchPath, query, &dto); err != nil {
		return nil, fmt.Errorf("domain search for %s: %w", domainName, err)
	}

	rec, err := hunter.ToDomainRecord(domainName, dto)
	if err != nil {
		return nil, fmt.Errorf("domain search for %s: %w", domainName, err)
	}

	c.logger.DebugContext(ctx, "domain search completed",
		slog.String("domain", rec.Domain),
		slog.String("organization", rec.Organization),
		slog.Int("key_contacts", rec.KeyContacts),
	)

	return &rec, nil
}
