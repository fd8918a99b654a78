package types

// WeatherSignal is the minimal weather information needed to decide on a
// delivery, independent of the provider's response schema.
type WeatherSignal struct {
	Summary string
	// PrecipitationProbability is a fraction in [0,1]. Nil means no provider
	// field could be located, which is not the same as a 0% chance.
	PrecipitationProbability *float64
}

// NewWeatherSignal builds a signal with a known precipitation probability.
func NewWeatherSignal(summary string, probability float64) WeatherSignal {
	return WeatherSignal{
		Summary:                  summary,
		PrecipitationProbability: &probability,
	}
}

// DegradedSignal builds a signal that carries only a diagnostic summary.
func DegradedSignal(summary string) WeatherSignal {
	return WeatherSignal{Summary: summary}
}

// HasProbability reports whether a precipitation probability was found.
func (s WeatherSignal) HasProbability() bool {
	return s.PrecipitationProbability != nil
}
