// Package acl implements the Anti-Corruption Layer that translates between
// the Hunter.io domain-search API and domain types. Response translators live
// in the hunter subpackage; shared error mapping lives here.
package acl

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/startup-scorer/internal/adapters/clients/acl/hunter"
	"github.com/jsamuelsen11/startup-scorer/internal/domain"
)

// maxErrorBodySize limits how much of an error response body we read.
const maxErrorBodySize = 1 << 20 // 1 MB

// TranslateHTTPError maps an HTTP error response to a domain error.
// It parses Hunter's {"errors":[{"id","code","details"}]} body when present
// and uses the first entry's details as context. For 400/422 responses with
// error entries, it returns a *domain.ValidationError keyed by error id.
func TranslateHTTPError(resp *http.Response) error {
	body := parseErrorBody(resp)

	detail := http.StatusText(resp.StatusCode)
	if len(body.Errors) > 0 && body.Errors[0].Details != "" {
		detail = body.Errors[0].Details
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%s: %w", detail, domain.ErrNotFound)

	case resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnprocessableEntity:
		if len(body.Errors) > 0 {
			return toValidationError(body.Errors)
		}
		return fmt.Errorf("%s: %w", detail, domain.ErrValidation)

	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return fmt.Errorf("%s: %w", detail, domain.ErrForbidden)

	case resp.StatusCode == http.StatusConflict:
		return fmt.Errorf("%s: %w", detail, domain.ErrConflict)

	case resp.StatusCode == http.StatusTooManyRequests:
		return fmt.Errorf("%s: %w", detail, domain.ErrRateLimited)

	case resp.StatusCode >= http.StatusInternalServerError:
		return fmt.Errorf("%s: %w", detail, domain.ErrUnavailable)

	default:
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, detail)
	}
}

// parseErrorBody reads and parses a JSON error body from the response.
// Returns an empty value if the body is missing or not JSON.
func parseErrorBody(resp *http.Response) hunter.ErrorResponseDTO {
	if resp.Body == nil {
		return hunter.ErrorResponseDTO{}
	}

	ct := resp.Header.Get("Content-Type")
	if !strings.Contains(ct, "json") {
		return hunter.ErrorResponseDTO{}
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	if err != nil {
		return hunter.ErrorResponseDTO{}
	}

	var body hunter.ErrorResponseDTO
	if err := json.Unmarshal(raw, &body); err != nil {
		return hunter.ErrorResponseDTO{}
	}
	return body
}

// toValidationError converts Hunter error entries to a domain ValidationError.
// Ids like "invalid_domain" or "wrong_params" become the field keys.
func toValidationError(errs []hunter.ErrorDTO) *domain.ValidationError {
	fields := make(map[string]string, len(errs))
	for _, e := range errs {
		field := e.ID
		if field == "" {
			field = "request"
		}
		msg := e.Details
		if msg == "" {
			msg = domain.MsgInvalid
		}
		fields[field] = msg
	}
	return &domain.ValidationError{Fields: fields}
}
