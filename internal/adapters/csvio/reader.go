// Package csvio reads domain lists from CSV and writes score reports as CSV.
package csvio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jsamuelsen11/startup-scorer/internal/domain"
	"github.com/jsamuelsen11/startup-scorer/internal/domain/company"
)

// DomainColumn is the header name that holds the domain of each row.
const DomainColumn = "domain"

// ErrMissingDomainColumn is returned when the header row has no domain column.
// It also matches domain.ErrValidation.
var ErrMissingDomainColumn = errors.New("csv header has no domain column")

// SkippedRow describes an input row that was not imported.
type SkippedRow struct {
	Line   int
	Value  string
	Reason string
}

// Import is the result of reading a domain list.
type Import struct {
	// Domains holds normalized domain names in file order.
	Domains []string
	Skipped []SkippedRow
}

// ReadDomains reads a CSV whose header contains a domain column (matched
// case-insensitively). Rows with a wrong field count, an empty domain, or a
// malformed domain are skipped and reported in Import.Skipped; the caller
// decides how to surface them.
func ReadDomains(r io.Reader) (Import, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return Import{}, fmt.Errorf("empty input: %w: %w", ErrMissingDomainColumn, domain.ErrValidation)
	}
	if err != nil {
		return Import{}, fmt.Errorf("reading csv header: %w: %w", err, domain.ErrValidation)
	}

	col := domainColumnIndex(header)
	if col < 0 {
		return Import{}, fmt.Errorf("%w: %w", ErrMissingDomainColumn, domain.ErrValidation)
	}

	var imp Import
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		var perr *csv.ParseError
		if errors.As(err, &perr) {
			imp.Skipped = append(imp.Skipped, SkippedRow{
				Line:   perr.StartLine,
				Value:  strings.Join(record, ","),
				Reason: perr.Err.Error(),
			})
			continue
		}
		if err != nil {
			return imp, fmt.Errorf("reading csv: %w", err)
		}

		line, _ := cr.FieldPos(0)
		value := strings.TrimSpace(record[col])
		if value == "" {
			imp.Skipped = append(imp.Skipped, SkippedRow{Line: line, Reason: "empty domain"})
			continue
		}

		name, err := company.NormalizeDomain(value)
		if err != nil {
			imp.Skipped = append(imp.Skipped, SkippedRow{Line: line, Value: value, Reason: err.Error()})
			continue
		}

		imp.Domains = append(imp.Domains, name)
	}

	return imp, nil
}

func domainColumnIndex(header []string) int {
	for i, h := range header {
		h = strings.TrimPrefix(h, "\ufeff")
		if strings.EqualFold(strings.TrimSpace(h), DomainColumn) {
			return i
		}
	}
	return -1
}
