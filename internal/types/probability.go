package types

import "math"

// NormalizeProbability converts a provider probability into a fraction in
// [0,1]. Values above 1 are read as percentages. It must be applied once, at
// the point a raw value is extracted.
func NormalizeProbability(raw float64) float64 {
	if math.IsNaN(raw) {
		return 0
	}
	if raw > 1.0 {
		raw = raw / 100.0
	}
	if raw < 0 {
		return 0
	}
	if raw > 1 {
		return 1
	}
	return raw
}
