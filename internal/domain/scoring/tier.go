package scoring

// Tier is a coarse bucket derived from a numeric score via fixed thresholds.
type Tier string

const (
	TierLow    Tier = "Low"
	TierMedium Tier = "Medium"
	TierHigh   Tier = "High"
)

// IsValid returns true if the tier is one of the defined constants.
func (t Tier) IsValid() bool {
	switch t {
	case TierLow, TierMedium, TierHigh:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (t Tier) String() string {
	return string(t)
}

// Tiers lists every tier from lowest to highest.
func Tiers() []Tier {
	return []Tier{TierLow, TierMedium, TierHigh}
}
