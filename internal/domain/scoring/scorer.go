// Package scoring turns a company record into a normalized score and tier.
//
// Scoring is a pure function of the record: the same record and
// configuration always produce the same Result. Missing signals contribute
// nothing instead of failing.
package scoring

import (
	"math"
	"slices"
	"strings"

	"github.com/jsamuelsen11/startup-scorer/internal/domain/company"
)

// emailsFoundCap is the number of emails at which the emails signal saturates.
const emailsFoundCap = 3

// Breakdown records the points each signal contributed to a score.
type Breakdown struct {
	Employees       float64
	EmailConfidence float64
	Industry        float64
	EmailsFound     float64
	KeyContacts     float64
}

// Result is the score derived from one company record.
type Result struct {
	Domain       string
	Organization string
	Score        float64
	Tier         Tier
	Breakdown    Breakdown
}

// Scorer applies a weighted heuristic to company records. It holds no
// mutable state and is safe for concurrent use.
type Scorer struct {
	cfg        Config
	industries []string
}

// New validates cfg and returns a Scorer.
func New(cfg Config) (*Scorer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	industries := make([]string, 0, len(cfg.Industries))
	for _, ind := range cfg.Industries {
		industries = append(industries, strings.ToLower(strings.TrimSpace(ind)))
	}

	cfg.Industries = slices.Clone(cfg.Industries)
	return &Scorer{cfg: cfg, industries: industries}, nil
}

// Config returns a copy of the scorer's configuration.
func (s *Scorer) Config() Config {
	cfg := s.cfg
	cfg.Industries = slices.Clone(s.cfg.Industries)
	return cfg
}

// Score computes the weighted score for rec, clamped to [0, 100] and rounded
// to one decimal place.
func (s *Scorer) Score(rec company.Record) Result {
	w := s.cfg.Weights

	b := Breakdown{
		Employees:       w.Employees * employeeFactor(rec.EmployeeCount),
		EmailConfidence: w.EmailConfidence * confidenceFactor(rec.EmailConfidence),
		Industry:        w.Industry * s.industryFactor(rec.Industry),
		EmailsFound:     w.EmailsFound * emailsFactor(rec.EmailsFound),
		KeyContacts:     w.KeyContacts * keyContactFactor(rec.KeyContacts),
	}

	total := b.Employees + b.EmailConfidence + b.Industry + b.EmailsFound + b.KeyContacts
	score := round1(clamp(total, 0, MaxScore))

	return Result{
		Domain:       rec.Domain,
		Organization: rec.Organization,
		Score:        score,
		Tier:         s.Tier(score),
		Breakdown:    b,
	}
}

// Tier maps a score onto a tier using the configured thresholds.
func (s *Scorer) Tier(score float64) Tier {
	switch {
	case score > s.cfg.Thresholds.High:
		return TierHigh
	case score >= s.cfg.Thresholds.Medium:
		return TierMedium
	default:
		return TierLow
	}
}

// employeeFactor buckets a headcount into [0, 1].
func employeeFactor(n *int) float64 {
	if n == nil {
		return 0
	}
	switch c := *n; {
	case c <= 0:
		return 0
	case c <= 10:
		return 0.25
	case c <= 50:
		return 0.5
	case c <= 200:
		return 0.75
	default:
		return 1
	}
}

func confidenceFactor(c *float64) float64 {
	if c == nil || math.IsNaN(*c) {
		return 0
	}
	return clamp(*c/MaxScore, 0, 1)
}

func (s *Scorer) industryFactor(industry *string) float64 {
	if industry == nil {
		return 0
	}
	ind := strings.ToLower(*industry)
	if strings.TrimSpace(ind) == "" {
		return 0
	}
	for _, target := range s.industries {
		if strings.Contains(ind, target) {
			return 1
		}
	}
	return 0
}

func emailsFactor(n *int) float64 {
	if n == nil || *n <= 0 {
		return 0
	}
	return float64(min(*n, emailsFoundCap)) / emailsFoundCap
}

func keyContactFactor(n int) float64 {
	if n > 0 {
		return 1
	}
	return 0
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
