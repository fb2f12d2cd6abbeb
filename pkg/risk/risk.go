// Package risk maps numeric risk scores to discrete risk tiers.
//
// The collaborator service computes scores (expected range 0–100, but any
// real number is accepted); this package owns the threshold policy that
// turns a score into a displayable tier with a severity color token.
//
// [Classify] is a total function: it never fails and never panics, for
// any input including NaN and infinities.
package risk

// Tier is a discrete risk level derived from a numeric score.
type Tier int

// Risk tiers in ascending severity.
const (
	Safe Tier = iota
	Moderate
	High
	Extreme
)

// Threshold policy: inclusive upper bounds, evaluated in ascending order.
// Scores above the last bound classify Extreme.
const (
	safeMax     = 20
	moderateMax = 50
	highMax     = 70
)

// Classify maps a score to its risk tier.
//
// The branches use inclusive upper bounds, first match wins:
// score ≤ 20 is Safe, ≤ 50 Moderate, ≤ 70 High, otherwise Extreme.
// NaN fails every comparison and therefore classifies Extreme.
func Classify(score float64) Tier {
	switch {
	case score <= safeMax:
		return Safe
	case score <= moderateMax:
		return Moderate
	case score <= highMax:
		return High
	default:
		return Extreme
	}
}

// Label returns the display label for the tier.
func (t Tier) Label() string {
	switch t {
	case Safe:
		return "Safe"
	case Moderate:
		return "Moderate"
	case High:
		return "High"
	case Extreme:
		return "Extreme"
	default:
		return "Unknown"
	}
}

// Color returns the severity color token (CSS hex) for the tier.
func (t Tier) Color() string {
	switch t {
	case Safe:
		return "#2e9e5b"
	case Moderate:
		return "#d9a514"
	case High:
		return "#e06c2b"
	case Extreme:
		return "#d03a3a"
	default:
		return "#8a8a8a"
	}
}

// String implements fmt.Stringer.
func (t Tier) String() string { return t.Label() }
