package config

import "github.com/jsamuelsen11/startup-scorer/internal/domain/scoring"

// ScorerConfig converts the scoring section into the scorer's domain
// configuration.
func (s *ScoringConfig) ScorerConfig() scoring.Config {
	industries := make([]string, len(s.Industries))
	copy(industries, s.Industries)

	return scoring.Config{
		Weights: scoring.Weights{
			Employees:       s.Weights.Employees,
			EmailConfidence: s.Weights.EmailConfidence,
			Industry:        s.Weights.Industry,
			EmailsFound:     s.Weights.EmailsFound,
			KeyContacts:     s.Weights.KeyContacts,
		},
		Thresholds: scoring.Thresholds{
			Medium: s.Thresholds.Medium,
			High:   s.Thresholds.High,
		},
		Industries: industries,
	}
}
