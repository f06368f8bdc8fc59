// Package company holds the company record produced by domain lookups.
package company

import (
	"maps"
	"strings"
)

// Record is the set of attributes returned by the lookup service for one
// domain. Optional signals are pointers; nil means the upstream did not
// report the attribute. A Record is treated as a value and never mutated
// after construction; Raw returns a copy of the upstream payload.
type Record struct {
	Domain       string
	Organization string

	Industry        *string
	EmployeeCount   *int
	EmailConfidence *float64 // mean confidence of returned emails, 0-100
	EmailsFound     *int

	// KeyContacts counts emails belonging to decision-maker roles.
	KeyContacts int
	Webmail     bool

	raw map[string]any
}

// WithRaw returns a copy of r carrying a private copy of raw.
func (r Record) WithRaw(raw map[string]any) Record {
	r.raw = maps.Clone(raw)
	return r
}

// Raw returns a shallow copy of the open mapping of upstream fields.
func (r Record) Raw() map[string]any {
	return maps.Clone(r.raw)
}

// DisplayName returns the organization name, falling back to the domain.
func (r Record) DisplayName() string {
	if strings.TrimSpace(r.Organization) != "" {
		return r.Organization
	}
	return r.Domain
}

// keyContactRoles are position keywords that mark a decision-maker contact.
var keyContactRoles = []string{
	"ceo",
	"cto",
	"founder",
	"chief executive",
	"chief technology",
}

// IsKeyContactPosition reports whether a job position names a decision-maker
// role. Matching is case-insensitive on whole words or phrases, so "Co-Founder"
// and "CEO & Founder" match but "Director" does not.
func IsKeyContactPosition(position string) bool {
	p := strings.ToLower(position)
	words := strings.FieldsFunc(p, func(r rune) bool {
		return !(r >= 'a' && r <= 'z')
	})
	joined := " " + strings.Join(words, " ") + " "

	for _, role := range keyContactRoles {
		if strings.Contains(joined, " "+role+" ") {
			return true
		}
	}
	return false
}
