package acl

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/jsamuelsen11/startup-scorer/internal/domain"
	"github.com/jsamuelsen11/startup-scorer/internal/platform/httpclient"
)

// Requester centralizes the HTTP request lifecycle for ACL clients:
// request creation, query encoding, execution via httpclient.Client,
// response body cleanup on error, status code validation, error
// translation, and JSON decoding.
type Requester struct {
	client *httpclient.Client
	logger *slog.Logger
}

// NewRequester creates a Requester backed by the given HTTP client and logger.
func NewRequester(client *httpclient.Client, logger *slog.Logger) *Requester {
	return &Requester{client: client, logger: logger}
}

// Get executes a GET against the configured base URL with the given query,
// expects 200 OK, and decodes the JSON body into respBody (if non-nil).
//
// On any other status the response is passed to TranslateHTTPError.
// Logged URLs never include the query string, since it carries the API key.
func (r *Requester) Get(ctx context.Context, path string, query url.Values, respBody any) error {
	u := r.client.BaseURL() + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, http.NoBody)
	if err != nil {
		return fmt.Errorf("creating GET request for %s: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")

	return r.execute(req, http.StatusOK, respBody)
}

// BaseURL returns the base URL from the underlying HTTP client.
func (r *Requester) BaseURL() string {
	return r.client.BaseURL()
}

// CircuitBreakerState returns the circuit breaker state from the underlying
// HTTP client.
func (r *Requester) CircuitBreakerState() string {
	return r.client.CircuitBreakerState()
}

// closeBody is a helper that closes an HTTP response body and logs on failure.
func (r *Requester) closeBody(ctx context.Context, resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		r.logger.WarnContext(ctx, "failed to close response body",
			slog.String("error", err.Error()),
		)
	}
}

// execute sends the request, checks the status code, and optionally decodes
// the response body. It ensures resp.Body is always closed.
func (r *Requester) execute(req *http.Request, wantStatus int, respBody any) error {
	ctx := req.Context()

	resp, err := r.client.Do(ctx, req)
	if err != nil {
		// httpclient.Do can return both resp and err when retries are exhausted
		// on a retryable status (e.g. 429, 5xx). In that case, translate the
		// HTTP response into a domain error rather than returning the raw
		// retry error.
		if resp != nil {
			defer r.closeBody(ctx, resp)
			if resp.StatusCode != wantStatus {
				return TranslateHTTPError(resp)
			}
		}
		stripQuery(err, req.URL.Path)
		r.logger.ErrorContext(ctx, "request failed",
			slog.String("method", req.Method),
			slog.String("path", req.URL.Path),
			slog.String("error", err.Error()),
		)
		if ctx.Err() != nil {
			return fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
		}
		// The caller is still waiting, so a refused connection, a client
		// timeout or an open breaker means the lookup service is down.
		return fmt.Errorf("%s %s: %w: %w", req.Method, req.URL.Path, domain.ErrUnavailable, err)
	}
	defer r.closeBody(ctx, resp)

	if resp.StatusCode != wantStatus {
		translateErr := TranslateHTTPError(resp)
		r.logger.WarnContext(ctx, "unexpected status",
			slog.String("method", req.Method),
			slog.String("path", req.URL.Path),
			slog.Int("status", resp.StatusCode),
			slog.Int("want_status", wantStatus),
		)
		return translateErr
	}

	if respBody != nil {
		if err := json.NewDecoder(resp.Body).Decode(respBody); err != nil {
			return fmt.Errorf("decoding response from %s %s: %w", req.Method, req.URL.Path, err)
		}
	}

	return nil
}

// stripQuery rewrites the URL of a transport error to the bare path so the
// API key in the query never reaches logs, reports, or API responses.
func stripQuery(err error, path string) {
	var uerr *url.Error
	if errors.As(err, &uerr) {
		uerr.URL = path
	}
}
