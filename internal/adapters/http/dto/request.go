package dto

import (
	"fmt"
	"strings"

	"github.com/jsamuelsen11/startup-scorer/internal/domain"
)

// Report output formats accepted in the "format" query parameter.
const (
	FormatJSON = "json"
	FormatCSV  = "csv"
)

// CreateReportRequest represents the JSON body for scoring a list of domains.
type CreateReportRequest struct {
	Domains []string `json:"domains"`
}

// Validate checks that at least one domain was supplied and that no entry is
// blank. Malformed (non-blank) domains are not rejected here; they become
// unavailable rows in the report.
// Returns a *domain.ValidationError if any checks fail.
func (r *CreateReportRequest) Validate() error {
	fields := make(map[string]string)

	if len(r.Domains) == 0 {
		fields["domains"] = domain.MsgRequired
	}
	for i, d := range r.Domains {
		if strings.TrimSpace(d) == "" {
			fields[fmt.Sprintf("domains[%d]", i)] = "must not be empty"
		}
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ParseFormat validates the "format" query parameter. An empty value selects
// JSON.
func ParseFormat(raw string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", FormatJSON:
		return FormatJSON, nil
	case FormatCSV:
		return FormatCSV, nil
	default:
		return "", domain.NewValidationError("format", fmt.Sprintf("must be %s or %s, got %q", FormatCSV, FormatJSON, raw))
	}
}
