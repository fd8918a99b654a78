package geocoding

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"order-weather/internal/config"
	"order-weather/internal/observability"
	"order-weather/internal/providers/openstreetmap"
	"order-weather/internal/types"
)

// Provider is a forward geocoder.
type Provider interface {
	Search(ctx context.Context, query string, opts openstreetmap.SearchOptions) ([]openstreetmap.SearchResult, error)
}

// Service resolves free-text addresses to coordinates.
type Service interface {
	// Resolve returns the coordinates of the first query variant the
	// provider can place. ok is false when no variant resolves.
	Resolve(ctx context.Context, address string) (coords types.Coords, ok bool)
}

type geocodingService struct {
	provider Provider
	city     string
	country  string
	options  openstreetmap.SearchOptions
	metrics  *observability.Metrics
	logger   *slog.Logger
}

func NewGeocodingService(cfg *config.Config, metrics *observability.Metrics, logger *slog.Logger) Service {
	client := openstreetmap.NewClient(
		cfg.Geocoding.BaseURL,
		cfg.Geocoding.UserAgent,
		cfg.Geocoding.Timeout,
		metrics,
		logger,
	)
	return NewGeocodingServiceWithProvider(client, cfg, metrics, logger)
}

// NewGeocodingServiceWithProvider creates a geocoding service with a custom provider.
// This is useful for testing with mock providers
func NewGeocodingServiceWithProvider(
	provider Provider,
	cfg *config.Config,
	metrics *observability.Metrics,
	logger *slog.Logger,
) Service {
	return &geocodingService{
		provider: provider,
		city:     cfg.Delivery.City,
		country:  cfg.Delivery.Country,
		options: openstreetmap.SearchOptions{
			CountryCodes: cfg.Delivery.CountryCode,
			Limit:        1,
			Language:     cfg.Geocoding.Language,
		},
		metrics: metrics,
		logger:  logger.With("component", "geocoding-service"),
	}
}

func (s *geocodingService) Resolve(ctx context.Context, address string) (types.Coords, bool) {
	variants := BuildVariants(address, s.city, s.country)
	if len(variants) == 0 {
		s.metrics.GeocodeResolutions.WithLabelValues("rejected").Inc()
		s.logger.Debug("blank address, skipping geocoding")
		return types.Coords{}, false
	}

	for i, query := range variants {
		if err := ctx.Err(); err != nil {
			s.logger.Warn("geocoding cancelled",
				"address", address,
				"attempts", i,
				"error", err,
			)
			break
		}

		coords, outcome := s.attempt(ctx, query)
		s.metrics.GeocodeAttempts.WithLabelValues(outcome).Inc()
		if outcome != "hit" {
			continue
		}

		s.logger.Info("resolved address",
			"address", address,
			"query", query,
			"attempt", i+1,
			"latitude", coords.Latitude,
			"longitude", coords.Longitude,
		)
		s.metrics.GeocodeResolutions.WithLabelValues("resolved").Inc()
		return coords, true
	}

	s.logger.Warn("could not resolve address",
		"address", address,
		"variants", len(variants),
	)
	s.metrics.GeocodeResolutions.WithLabelValues("unresolved").Inc()
	return types.Coords{}, false
}

// attempt sends one query. Every failure is reported as an outcome label
// instead of an error so the caller can move on to the next variant.
func (s *geocodingService) attempt(ctx context.Context, query string) (types.Coords, string) {
	results, err := s.provider.Search(ctx, query, s.options)
	if err != nil {
		s.logger.Debug("geocoding attempt failed", "query", query, "error", err)
		return types.Coords{}, "error"
	}
	if len(results) == 0 {
		s.logger.Debug("geocoding attempt found nothing", "query", query)
		return types.Coords{}, "miss"
	}

	coords, ok := parseCoords(results[0])
	if !ok {
		s.logger.Debug("geocoding attempt returned unusable coordinates",
			"query", query,
			"lat", string(results[0].Lat),
			"lon", string(results[0].Lon),
		)
		return types.Coords{}, "invalid"
	}
	return coords, "hit"
}

func parseCoords(r openstreetmap.SearchResult) (types.Coords, bool) {
	lat, err := strconv.ParseFloat(strings.TrimSpace(string(r.Lat)), 64)
	if err != nil {
		return types.Coords{}, false
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(string(r.Lon)), 64)
	if err != nil {
		return types.Coords{}, false
	}
	coords := types.NewCoords(lat, lon)
	return coords, coords.Valid()
}
