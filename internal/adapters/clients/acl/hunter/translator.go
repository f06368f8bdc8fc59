package hunter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/jsamuelsen11/startup-scorer/internal/domain/company"
)

// ToDomainRecord converts a domain-search response to a company.Record.
// requested is the domain that was queried; it is used when the response
// omits data.domain. A null or empty data object still yields a record,
// with every optional signal left unset.
func ToDomainRecord(requested string, dto DomainSearchResponseDTO) (company.Record, error) {
	var data DomainDataDTO
	raw := map[string]any{}

	if len(dto.Data) > 0 && !bytes.Equal(bytes.TrimSpace(dto.Data), []byte("null")) {
		if err := json.Unmarshal(dto.Data, &data); err != nil {
			return company.Record{}, fmt.Errorf("decoding domain-search data: %w", err)
		}
		if err := json.Unmarshal(dto.Data, &raw); err != nil {
			return company.Record{}, fmt.Errorf("decoding domain-search data: %w", err)
		}
	}

	rec := company.Record{
		Domain:          requested,
		Industry:        nonEmpty(data.Industry),
		EmployeeCount:   ParseHeadcount(deref(data.Headcount)),
		EmailConfidence: meanConfidence(data.Emails),
		EmailsFound:     emailsFound(dto.Meta, data.Emails),
		KeyContacts:     keyContacts(data.Emails),
		Webmail:         data.Webmail,
	}
	if d := strings.TrimSpace(data.Domain); d != "" {
		rec.Domain = strings.ToLower(d)
	}
	if data.Organization != nil {
		rec.Organization = strings.TrimSpace(*data.Organization)
	}

	return rec.WithRaw(raw), nil
}

// ParseHeadcount converts a headcount range such as "51-200" or "10001+"
// to its lower bound. Unparseable or empty input returns nil.
func ParseHeadcount(headcount string) *int {
	s := strings.TrimSpace(headcount)
	s = strings.ReplaceAll(s, ",", "")

	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return nil
	}

	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return nil
	}
	return &n
}

// meanConfidence averages the confidence of emails that report one.
func meanConfidence(emails []EmailDTO) *float64 {
	var sum, n int
	for _, e := range emails {
		if e.Confidence == nil {
			continue
		}
		sum += *e.Confidence
		n++
	}
	if n == 0 {
		return nil
	}

	mean := float64(sum) / float64(n)
	return &mean
}

func emailsFound(meta MetaDTO, emails []EmailDTO) *int {
	if meta.Results != nil {
		n := *meta.Results
		return &n
	}
	n := len(emails)
	return &n
}

func keyContacts(emails []EmailDTO) int {
	count := 0
	for _, e := range emails {
		if company.IsKeyContactPosition(deref(e.Position)) {
			count++
		}
	}
	return count
}

func nonEmpty(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
