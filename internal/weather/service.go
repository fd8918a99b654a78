package weather

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"order-weather/internal/config"
	"order-weather/internal/observability"
	"order-weather/internal/providers/meteored"
	"order-weather/internal/tree"
	"order-weather/internal/types"
)

// Provider is a forecast source addressed by location hash.
type Provider interface {
	LocationByCoords(ctx context.Context, latitude, longitude float64) (tree.Node, error)
	LocationByText(ctx context.Context, text string) (tree.Node, error)
	DailyForecast(ctx context.Context, hash string) (tree.Node, error)
}

// Service turns a coordinate or a place name into today's weather signal.
// Provider failures are reported as degraded signals, never as errors.
type Service interface {
	ByCoordinate(ctx context.Context, coords types.Coords) types.WeatherSignal
	ByText(ctx context.Context, query string) types.WeatherSignal
}

type weatherService struct {
	provider Provider
	country  string
	metrics  *observability.Metrics
	logger   *slog.Logger
}

func NewWeatherService(cfg *config.Config, metrics *observability.Metrics, logger *slog.Logger) Service {
	client := meteored.NewClient(
		cfg.Forecast.BaseURL,
		cfg.Forecast.APIKey,
		cfg.Forecast.UserAgent,
		cfg.Forecast.Timeout,
		metrics,
		logger,
	)
	return NewWeatherServiceWithProvider(client, cfg, metrics, logger)
}

// NewWeatherServiceWithProvider creates a weather service over a custom provider.
// This is useful for testing with mock providers
func NewWeatherServiceWithProvider(
	provider Provider,
	cfg *config.Config,
	metrics *observability.Metrics,
	logger *slog.Logger,
) Service {
	return &weatherService{
		provider: provider,
		country:  cfg.Delivery.Country,
		metrics:  metrics,
		logger:   logger.With("component", "weather-service"),
	}
}

func (s *weatherService) ByCoordinate(ctx context.Context, coords types.Coords) (signal types.WeatherSignal) {
	const mode = "coordinate"
	logger := s.logger.With("latitude", coords.Latitude, "longitude", coords.Longitude)
	defer s.recoverSignal(mode, logger, &signal)

	loc, err := s.provider.LocationByCoords(ctx, coords.Latitude, coords.Longitude)
	if err != nil {
		logger.Warn("location lookup failed", "error", err)
		return s.degraded(mode, SummaryQueryError)
	}

	hash, ok := locationHash(loc)
	return s.resolve(ctx, mode, logger, loc, hash, ok)
}

func (s *weatherService) ByText(ctx context.Context, query string) (signal types.WeatherSignal) {
	const mode = "text"
	query = strings.TrimSpace(query)
	logger := s.logger.With("query", query)
	defer s.recoverSignal(mode, logger, &signal)

	if query == "" {
		return s.degraded(mode, SummaryNoSearchText)
	}

	loc, err := s.provider.LocationByText(ctx, query)
	if err != nil {
		logger.Warn("location search failed", "error", err)
		return s.degraded(mode, SummaryQueryError)
	}

	hash, ok := searchHash(loc, s.country)
	return s.resolve(ctx, mode, logger, loc, hash, ok)
}

// resolve finishes a lookup once the location response is known: it either
// salvages a signal from the location itself or reads the daily forecast.
func (s *weatherService) resolve(ctx context.Context, mode string, logger *slog.Logger, loc tree.Node, hash string, found bool) types.WeatherSignal {
	if !found {
		logger.Info("no location hash in response, salvaging location fields")
		signal := salvage(loc)
		s.count(mode, sourceSalvaged)
		return signal
	}

	logger = logger.With("hash", hash)
	forecast, err := s.provider.DailyForecast(ctx, hash)
	if err != nil {
		logger.Warn("forecast lookup failed", "error", err)
		return s.degraded(mode, SummaryNoForecastData)
	}
	if !forecast.Exists() || forecast.IsNull() {
		logger.Warn("forecast response was empty")
		return s.degraded(mode, SummaryNoForecastData)
	}

	signal := extract(forecast)
	logger.Info("resolved weather signal",
		"summary", signal.Summary,
		"has_probability", signal.HasProbability(),
	)
	s.count(mode, sourceForecast)
	return signal
}

func (s *weatherService) degraded(mode, summary string) types.WeatherSignal {
	s.count(mode, sourceDegraded)
	return types.DegradedSignal(summary)
}

func (s *weatherService) count(mode, source string) {
	s.metrics.ForecastSignals.WithLabelValues(mode, source).Inc()
}

func (s *weatherService) recoverSignal(mode string, logger *slog.Logger, signal *types.WeatherSignal) {
	if r := recover(); r != nil {
		logger.Error("weather lookup panicked", "panic", fmt.Sprint(r))
		*signal = s.degraded(mode, SummaryQueryError)
	}
}

// salvage builds a signal from a location response that carries no hash.
func salvage(loc tree.Node) types.WeatherSignal {
	summary, hasSummary := tree.FindString(loc, locationSummaryKeys...)
	if !hasSummary {
		if tmax, ok := loc.Path("temperature_max").Text(); ok {
			summary, hasSummary = "Tmax: "+tmax, true
		}
	}

	p, hasProbability := tree.FindProbability(loc)
	switch {
	case hasProbability && hasSummary:
		return types.NewWeatherSignal(summary, p)
	case hasProbability:
		return types.NewWeatherSignal(SummaryAvailable, p)
	case hasSummary:
		return types.DegradedSignal(summary)
	default:
		return types.DegradedSignal(SummaryNoLocationData)
	}
}

// extract reads today's signal from a daily forecast response. The first
// period is preferred; the whole tree is searched for anything it lacks.
func extract(forecast tree.Node) types.WeatherSignal {
	day := firstPeriod(forecast)

	summary, hasSummary := periodSummary(day)
	if !hasSummary {
		summary, hasSummary = tree.FindString(forecast, summaryKeys...)
	}
	if !hasSummary {
		summary = SummaryAvailable
	}

	raw, ok := tree.FirstOf(day, tree.Node.AsFloat, rainProbabilityKeys...)
	if ok {
		return types.NewWeatherSignal(summary, types.NormalizeProbability(raw))
	}
	if p, ok := tree.FindProbability(forecast); ok {
		return types.NewWeatherSignal(summary, p)
	}
	return types.DegradedSignal(summary)
}
