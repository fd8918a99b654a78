package orderweather

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"

	"order-weather/internal/config"
	"order-weather/internal/delivery"
	"order-weather/internal/geocoding"
	"order-weather/internal/observability"
	"order-weather/internal/orders"
	"order-weather/internal/timezone"
	"order-weather/internal/types"
	"order-weather/internal/weather"
)

var (
	ErrOrderNotFound          = errors.New("order not found")
	ErrCoordinatesUnavailable = errors.New("coordinates unavailable for order address")
)

// Result is the weather evaluation of one order.
type Result struct {
	OrderID     int64
	OrderNumber string
	Address     string
	Coords      types.Coords
	Signal      types.WeatherSignal
	Decision    delivery.Decision
	// CheckedAt is midnight of the evaluation date in the order's time zone.
	CheckedAt time.Time
}

type Service interface {
	Evaluate(ctx context.Context, orderID int64) (*Result, error)
	EvaluateByNumber(ctx context.Context, number string) (*Result, error)
}

type orderWeatherService struct {
	repo      orders.Repository
	geocoder  geocoding.Service
	weather   weather.Service
	timezones timezone.Service
	clock     clockwork.Clock
	threshold float64
	fallback  *time.Location
	metrics   *observability.Metrics
	logger    *slog.Logger
}

// NewOrderWeatherService wires the use case. timezones may be nil, in which
// case every evaluation date is taken in the configured delivery time zone.
func NewOrderWeatherService(
	repo orders.Repository,
	geocoder geocoding.Service,
	forecaster weather.Service,
	timezones timezone.Service,
	clock clockwork.Clock,
	cfg *config.Config,
	metrics *observability.Metrics,
	logger *slog.Logger,
) (Service, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, fmt.Errorf("failed to load delivery timezone: %w", err)
	}
	return &orderWeatherService{
		repo:      repo,
		geocoder:  geocoder,
		weather:   forecaster,
		timezones: timezones,
		clock:     clock,
		threshold: cfg.Delivery.PrecipitationThreshold,
		fallback:  loc,
		metrics:   metrics,
		logger:    logger.With("component", "order-weather-service"),
	}, nil
}

func (s *orderWeatherService) Evaluate(ctx context.Context, orderID int64) (*Result, error) {
	order, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		return nil, s.lookupError(err, "order_id", orderID)
	}
	return s.evaluate(ctx, order)
}

func (s *orderWeatherService) EvaluateByNumber(ctx context.Context, number string) (*Result, error) {
	order, err := s.repo.GetByNumber(ctx, number)
	if err != nil {
		return nil, s.lookupError(err, "order_number", number)
	}
	return s.evaluate(ctx, order)
}

func (s *orderWeatherService) lookupError(err error, key string, value any) error {
	if errors.Is(err, orders.ErrNotFound) {
		s.logger.Info("order not found", key, value)
		return fmt.Errorf("%w: %w", ErrOrderNotFound, err)
	}
	s.logger.Error("failed to load order", key, value, "error", err)
	return fmt.Errorf("failed to load order: %w", err)
}

func (s *orderWeatherService) evaluate(ctx context.Context, order *orders.Order) (*Result, error) {
	address := BuildAddress(order)
	logger := s.logger.With("order_id", order.ID, "address", address)

	coords, ok := s.geocoder.Resolve(ctx, address)
	if !ok {
		logger.Warn("order address could not be geocoded")
		return nil, fmt.Errorf("order %d: %w", order.ID, ErrCoordinatesUnavailable)
	}

	signal := s.weather.ByCoordinate(ctx, coords)
	today := s.today(coords)
	decision := delivery.Decide(signal, s.threshold, today)
	s.record(signal, decision)

	logger.Info("evaluated order weather",
		"latitude", coords.Latitude,
		"longitude", coords.Longitude,
		"summary", signal.Summary,
		"has_probability", signal.HasProbability(),
		"delivery_available", decision.Available,
		"checked_at", today.Format(time.DateOnly),
	)

	return &Result{
		OrderID:     order.ID,
		OrderNumber: order.Number,
		Address:     address,
		Coords:      coords,
		Signal:      signal,
		Decision:    decision,
		CheckedAt:   today,
	}, nil
}

// today returns midnight of the current date at coords.
func (s *orderWeatherService) today(coords types.Coords) time.Time {
	loc := s.fallback
	if s.timezones != nil {
		if l, err := s.timezones.Location(coords); err == nil {
			loc = l
		} else {
			s.logger.Debug("timezone lookup failed, using delivery timezone",
				"timezone", loc.String(),
				"error", err,
			)
		}
	}
	y, m, d := s.clock.Now().In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

func (s *orderWeatherService) record(signal types.WeatherSignal, decision delivery.Decision) {
	outcome := "available"
	if !decision.Available {
		outcome = "unavailable"
	}
	probability := "known"
	if !signal.HasProbability() {
		probability = "absent"
	}
	s.metrics.Decisions.WithLabelValues(outcome, probability).Inc()
}

// BuildAddress joins the non-blank address fields of an order with ", ".
func BuildAddress(o *orders.Order) string {
	parts := make([]string, 0, 3)
	for _, p := range []string{o.Street, o.District, o.Region} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}
