// Package hunter implements the Anti-Corruption Layer translators for the
// Hunter.io domain-search API.
package hunter

import "encoding/json"

// DomainSearchResponseDTO matches the envelope of GET /v2/domain-search.
// Data is kept raw so the translator can expose it as an open mapping as
// well as decode the typed view.
type DomainSearchResponseDTO struct {
	Data json.RawMessage `json:"data"`
	Meta MetaDTO         `json:"meta"`
}

// DomainDataDTO is the typed view of the "data" object.
type DomainDataDTO struct {
	Domain       string     `json:"domain"`
	Organization *string    `json:"organization"`
	Industry     *string    `json:"industry"`
	Headcount    *string    `json:"headcount"`
	Country      *string    `json:"country"`
	Pattern      *string    `json:"pattern"`
	Webmail      bool       `json:"webmail"`
	Disposable   bool       `json:"disposable"`
	AcceptAll    bool       `json:"accept_all"`
	Emails       []EmailDTO `json:"emails"`
}

// EmailDTO is one entry of data.emails.
type EmailDTO struct {
	Value      string  `json:"value"`
	Type       string  `json:"type"`
	Confidence *int    `json:"confidence"`
	FirstName  *string `json:"first_name"`
	LastName   *string `json:"last_name"`
	Position   *string `json:"position"`
	Seniority  *string `json:"seniority"`
	Department *string `json:"department"`
}

// MetaDTO carries pagination metadata. Results is the total number of
// addresses known for the domain, not just the returned page.
type MetaDTO struct {
	Results *int `json:"results"`
	Limit   int  `json:"limit"`
	Offset  int  `json:"offset"`
}

// ErrorResponseDTO is the body Hunter sends with non-2xx statuses.
type ErrorResponseDTO struct {
	Errors []ErrorDTO `json:"errors"`
}

// ErrorDTO is a single entry of an error body.
type ErrorDTO struct {
	ID      string `json:"id"`
	Code    int    `json:"code"`
	Details string `json:"details"`
}
