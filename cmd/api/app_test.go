package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"order-weather/internal/config"
	"order-weather/internal/delivery"
	"order-weather/internal/observability"
	"order-weather/internal/orders"
	"order-weather/internal/orderweather"
	"order-weather/internal/types"
)

type stubGeocoder struct {
	coords types.Coords
	ok     bool
}

func (s stubGeocoder) Resolve(context.Context, string) (types.Coords, bool) {
	return s.coords, s.ok
}

type stubWeather struct {
	lastText   string
	lastCoords *types.Coords
	signal     types.WeatherSignal
}

func (s *stubWeather) ByCoordinate(_ context.Context, coords types.Coords) types.WeatherSignal {
	s.lastCoords = &coords
	return s.signal
}

func (s *stubWeather) ByText(_ context.Context, query string) types.WeatherSignal {
	s.lastText = query
	return s.signal
}

type stubOrderWeather struct {
	result *orderweather.Result
	err    error
}

func (s stubOrderWeather) Evaluate(_ context.Context, id int64) (*orderweather.Result, error) {
	return s.result, s.err
}

func (s stubOrderWeather) EvaluateByNumber(_ context.Context, number string) (*orderweather.Result, error) {
	return s.result, s.err
}

type stubPinger struct{ err error }

func (s stubPinger) PingContext(context.Context) error { return s.err }

func newTestApp(geocoder stubGeocoder, w *stubWeather, ow stubOrderWeather) *App {
	cfg := &config.Config{Server: config.ServerConfig{GinMode: "test"}}
	registry := prometheus.NewRegistry()
	observability.NewMetrics(registry)
	return newApp(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)), registry, nil, geocoder, w, ow)
}

func get(t *testing.T, app *App, target string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	rec := httptest.NewRecorder()
	app.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))

	var body map[string]any
	if rec.Header().Get("Content-Type") == "application/json; charset=utf-8" {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	}
	return rec, body
}

func TestHandlePing(t *testing.T) {
	app := newTestApp(stubGeocoder{}, &stubWeather{}, stubOrderWeather{})

	rec, body := get(t, app, "/ping")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "pong", body["message"])
}

func TestHandleReady(t *testing.T) {
	app := newTestApp(stubGeocoder{}, &stubWeather{}, stubOrderWeather{})

	rec, _ := get(t, app, "/readyz")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	app.db = stubPinger{}
	rec, body := get(t, app, "/readyz")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ready", body["status"])

	app.db = stubPinger{err: errors.New("connection refused")}
	rec, body = get(t, app, "/readyz")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "connection refused", body["error"])
}

func TestHandleGetOrderWeather(t *testing.T) {
	santiago, err := time.LoadLocation("America/Santiago")
	require.NoError(t, err)
	today := time.Date(2025, time.June, 10, 0, 0, 0, 0, santiago)
	tomorrow := delivery.NextDay(today)

	rainy := &orderweather.Result{
		OrderID:     42,
		OrderNumber: "ORD-42",
		Address:     "Av. Providencia 1234, Providencia",
		Coords:      types.NewCoords(-33.4263, -70.617),
		Signal:      types.NewWeatherSignal("Symbol: 9", 0.8),
		Decision:    delivery.Decision{RecommendedDate: &tomorrow},
		CheckedAt:   today,
	}
	unknown := &orderweather.Result{
		OrderID:   7,
		Address:   "Los Leones 100",
		Signal:    types.DegradedSignal("no forecast data"),
		Decision:  delivery.Decision{Available: true},
		CheckedAt: today,
	}

	tests := []struct {
		name       string
		target     string
		service    stubOrderWeather
		wantStatus int
		check      func(t *testing.T, body map[string]any)
	}{
		{
			name:       "not available",
			target:     "/api/orders/42/weather",
			service:    stubOrderWeather{result: rainy},
			wantStatus: http.StatusOK,
			check: func(t *testing.T, body map[string]any) {
				assert.Equal(t, 42.0, body["order_id"])
				assert.Equal(t, "Symbol: 9", body["weather_summary"])
				assert.Equal(t, 0.8, body["precipitation_probability"])
				assert.Equal(t, false, body["delivery_available"])
				assert.Equal(t, "2025-06-10", body["checked_at"])
				assert.Equal(t, "2025-06-11", body["recommended_date"])
			},
		},
		{
			name:       "unknown probability is null",
			target:     "/api/orders/7/weather",
			service:    stubOrderWeather{result: unknown},
			wantStatus: http.StatusOK,
			check: func(t *testing.T, body map[string]any) {
				v, present := body["precipitation_probability"]
				assert.True(t, present)
				assert.Nil(t, v)
				assert.Equal(t, true, body["delivery_available"])
				assert.NotContains(t, body, "recommended_date")
			},
		},
		{
			name:       "by number",
			target:     "/api/orders/by-number/ORD-42/weather",
			service:    stubOrderWeather{result: rainy},
			wantStatus: http.StatusOK,
			check: func(t *testing.T, body map[string]any) {
				assert.Equal(t, "ORD-42", body["order_number"])
			},
		},
		{
			name:       "invalid id",
			target:     "/api/orders/abc/weather",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "non-positive id",
			target:     "/api/orders/0/weather",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "not found",
			target:     "/api/orders/404/weather",
			service:    stubOrderWeather{err: fmt.Errorf("%w: %w", orderweather.ErrOrderNotFound, orders.ErrNotFound)},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "coordinates unavailable",
			target:     "/api/orders/3/weather",
			service:    stubOrderWeather{err: fmt.Errorf("order 3: %w", orderweather.ErrCoordinatesUnavailable)},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "store failure",
			target:     "/api/orders/1/weather",
			service:    stubOrderWeather{err: errors.New("failed to load order: connection refused")},
			wantStatus: http.StatusInternalServerError,
			check: func(t *testing.T, body map[string]any) {
				assert.Equal(t, "failed to evaluate order weather", body["error"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(stubGeocoder{}, &stubWeather{}, tt.service)

			rec, body := get(t, app, tt.target)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.check != nil {
				tt.check(t, body)
			}
		})
	}
}

func TestHandleGeocode(t *testing.T) {
	app := newTestApp(stubGeocoder{coords: types.NewCoords(-33.4263, -70.617), ok: true}, &stubWeather{}, stubOrderWeather{})

	rec, body := get(t, app, "/api/geocode?address=Av.+Providencia+1234")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, -33.4263, body["latitude"])
	assert.Equal(t, -70.617, body["longitude"])

	rec, _ = get(t, app, "/api/geocode")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	app = newTestApp(stubGeocoder{}, &stubWeather{}, stubOrderWeather{})
	rec, body = get(t, app, "/api/geocode?address=Nowhere")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "could not geocode address", body["error"])
}

func TestHandleGetWeather(t *testing.T) {
	t.Run("by coordinate", func(t *testing.T) {
		w := &stubWeather{signal: types.NewWeatherSignal("Symbol: 2", 0.25)}
		app := newTestApp(stubGeocoder{}, w, stubOrderWeather{})

		rec, body := get(t, app, "/api/weather?latitude=-33.4489&longitude=-70.6693")

		assert.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, w.lastCoords)
		assert.Equal(t, types.NewCoords(-33.4489, -70.6693), *w.lastCoords)
		assert.Equal(t, "Symbol: 2", body["weather_summary"])
		assert.Equal(t, 0.25, body["precipitation_probability"])
	})

	t.Run("by text", func(t *testing.T) {
		w := &stubWeather{signal: types.DegradedSignal("no forecast data")}
		app := newTestApp(stubGeocoder{}, w, stubOrderWeather{})

		rec, body := get(t, app, "/api/weather?q=Providencia")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Providencia", w.lastText)
		assert.Nil(t, w.lastCoords)
		assert.Nil(t, body["precipitation_probability"])
	})

	for _, target := range []string{
		"/api/weather",
		"/api/weather?q=%20%20",
		"/api/weather?latitude=-33.4",
		"/api/weather?latitude=95&longitude=0",
		"/api/weather?latitude=abc&longitude=0",
		"/api/weather?latitude=NaN&longitude=NaN",
		"/api/weather?latitude=-33.4&longitude=NaN",
	} {
		t.Run("bad request "+target, func(t *testing.T) {
			w := &stubWeather{}
			app := newTestApp(stubGeocoder{}, w, stubOrderWeather{})
			rec, _ := get(t, app, target)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Nil(t, w.lastCoords)
		})
	}
}

func TestMetricsEndpoint(t *testing.T) {
	app := newTestApp(stubGeocoder{}, &stubWeather{}, stubOrderWeather{})

	rec := httptest.NewRecorder()
	app.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}
