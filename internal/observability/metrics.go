package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "order_weather"

// Metrics holds the Prometheus collectors for the resolution pipeline.
type Metrics struct {
	// Geocoding metrics.
	GeocodeAttempts    *prometheus.CounterVec // labels: outcome={hit,miss,error,invalid}
	GeocodeResolutions *prometheus.CounterVec // labels: result={resolved,unresolved,rejected}

	// Forecast metrics.
	ForecastSignals *prometheus.CounterVec // labels: mode={coordinate,text}, source={forecast,salvaged,degraded}

	// Provider call latency.
	ProviderDuration *prometheus.HistogramVec // labels: provider, operation

	// Decision metrics.
	Decisions *prometheus.CounterVec // labels: outcome={available,unavailable}, probability={known,absent}
}

// NewMetrics creates all pipeline metrics and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := newMetrics()
	reg.MustRegister(
		m.GeocodeAttempts,
		m.GeocodeResolutions,
		m.ForecastSignals,
		m.ProviderDuration,
		m.Decisions,
	)
	return m
}

// NewMetricsForTesting creates unregistered metrics so tests can build as
// many as they need.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		GeocodeAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "geocode_attempts_total",
			Help:      "Geocoding provider attempts by outcome, one per query variant tried.",
		}, []string{"outcome"}),
		GeocodeResolutions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "geocode_resolutions_total",
			Help:      "Address resolutions by final result.",
		}, []string{"result"}),
		ForecastSignals: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "forecast_signals_total",
			Help:      "Weather signals produced, by lookup mode and the path that produced them.",
		}, []string{"mode", "source"}),
		ProviderDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "provider_request_duration_seconds",
			Help:      "External provider request duration in seconds.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"provider", "operation"}),
		Decisions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "delivery_decisions_total",
			Help:      "Delivery decisions by outcome and whether a probability was known.",
		}, []string{"outcome", "probability"}),
	}
}
