package delivery

import (
	"time"

	"order-weather/internal/types"
)

// DefaultThreshold is the precipitation probability at or above which
// delivery is postponed.
const DefaultThreshold = 0.5

// Decision is the outcome of the delivery policy for one evaluation date.
type Decision struct {
	Available bool
	// RecommendedDate is the day after the evaluation date when delivery is
	// not available, nil otherwise.
	RecommendedDate *time.Time
}

// Decide applies the precipitation threshold to a weather signal. A signal
// without a probability never blocks delivery. Otherwise delivery is
// available only while the probability stays strictly below threshold.
func Decide(signal types.WeatherSignal, threshold float64, today time.Time) Decision {
	if !signal.HasProbability() || *signal.PrecipitationProbability < threshold {
		return Decision{Available: true}
	}
	next := NextDay(today)
	return Decision{RecommendedDate: &next}
}

// NextDay returns midnight of the calendar day after t in t's location.
func NextDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d+1, 0, 0, 0, 0, t.Location())
}
