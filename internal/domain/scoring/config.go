package scoring

import (
	"fmt"
	"math"
	"strings"

	"github.com/jsamuelsen11/startup-scorer/internal/domain"
)

// MaxScore is the upper bound of every score.
const MaxScore = 100.0

// Weights are the maximum points each signal can contribute.
type Weights struct {
	Employees       float64
	EmailConfidence float64
	Industry        float64
	EmailsFound     float64
	KeyContacts     float64
}

// Total returns the sum of all weights.
func (w Weights) Total() float64 {
	return w.Employees + w.EmailConfidence + w.Industry + w.EmailsFound + w.KeyContacts
}

// Thresholds partition a score into tiers. A score strictly above High is
// TierHigh; a score at or above Medium is TierMedium; anything else is TierLow.
type Thresholds struct {
	Medium float64
	High   float64
}

// Config holds everything the Scorer needs.
type Config struct {
	Weights    Weights
	Thresholds Thresholds
	// Industries are target industry keywords; a record whose industry
	// contains any of them (case-insensitive) earns the industry bonus.
	Industries []string
}

// DefaultConfig returns the stock weighting. Weights sum to 100.
func DefaultConfig() Config {
	return Config{
		Weights: Weights{
			Employees:       30,
			EmailConfidence: 30,
			Industry:        20,
			EmailsFound:     10,
			KeyContacts:     10,
		},
		Thresholds: Thresholds{
			Medium: 40,
			High:   70,
		},
		Industries: []string{"software", "technology", "saas", "fintech", "internet"},
	}
}

// Validate checks the configuration and returns a *domain.ValidationError
// listing every invalid field, or nil.
func (c *Config) Validate() error {
	fields := make(map[string]string)

	weights := map[string]float64{
		"weights.employees":        c.Weights.Employees,
		"weights.email_confidence": c.Weights.EmailConfidence,
		"weights.industry":         c.Weights.Industry,
		"weights.emails_found":     c.Weights.EmailsFound,
		"weights.key_contacts":     c.Weights.KeyContacts,
	}
	for name, w := range weights {
		if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			fields[name] = fmt.Sprintf("must be a non-negative number, got %v", w)
		}
	}
	if len(fields) == 0 && c.Weights.Total() == 0 {
		fields["weights"] = "must not all be zero"
	}

	if c.Thresholds.Medium < 0 || c.Thresholds.Medium > MaxScore {
		fields["thresholds.medium"] = fmt.Sprintf("must be 0-100, got %v", c.Thresholds.Medium)
	}
	if c.Thresholds.High < 0 || c.Thresholds.High > MaxScore {
		fields["thresholds.high"] = fmt.Sprintf("must be 0-100, got %v", c.Thresholds.High)
	}
	if c.Thresholds.Medium > c.Thresholds.High {
		fields["thresholds"] = fmt.Sprintf("medium (%v) must not exceed high (%v)",
			c.Thresholds.Medium, c.Thresholds.High)
	}

	for i, ind := range c.Industries {
		if strings.TrimSpace(ind) == "" {
			fields[fmt.Sprintf("industries[%d]", i)] = "must not be empty"
		}
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
