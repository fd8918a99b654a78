package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), err
}

func TestGeocodeCommand(t *testing.T) {
	var queries []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		queries = append(queries, r.URL.Query().Get("q"))
		assert.Equal(t, "cl", r.URL.Query().Get("countrycodes"))
		_, _ = w.Write([]byte(`[{"lat": "-33.4372", "lon": "-70.6506", "display_name": "Plaza de Armas"}]`))
	}))
	defer srv.Close()
	t.Setenv("ORDER_WEATHER_GEOCODING_BASE_URL", srv.URL)

	out, err := execute(t, "geocode", "Plaza", "de", "Armas")
	require.NoError(t, err)

	var got coordsOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, coordsOutput{Latitude: -33.4372, Longitude: -70.6506}, got)
	assert.Equal(t, []string{"Plaza de Armas, Santiago, Chile"}, queries)
}

func TestGeocodeCommand_Unresolved(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()
	t.Setenv("ORDER_WEATHER_GEOCODING_BASE_URL", srv.URL)

	_, err := execute(t, "geocode", "Nowhere")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not geocode")
}

func TestWeatherCommand(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/location/v1/search/coords/-33.4489/-70.6693":
			_, _ = w.Write([]byte(`{"data": {"locations": [{"hash": "stgo"}]}}`))
		case "/api/location/v1/search/txt/Providencia":
			_, _ = w.Write([]byte(`{"data": {"locations": [{"hash": "prov", "country_name": "Chile"}]}}`))
		case "/api/forecast/v1/daily/stgo":
			_, _ = w.Write([]byte(`{"data": {"days": [{"rain_probability": 70, "symbol": 9}]}}`))
		case "/api/forecast/v1/daily/prov":
			_, _ = w.Write([]byte(`{"data": {"days": [{"rain_probability": 0.1, "symbol": 1}]}}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()
	t.Setenv("ORDER_WEATHER_FORECAST_BASE_URL", srv.URL)

	tests := []struct {
		name        string
		args        []string
		wantSummary string
		wantProb    float64
	}{
		{name: "by coordinate", args: []string{"weather", "--lat", "-33.4489", "--lon", "-70.6693"}, wantSummary: "Symbol: 9", wantProb: 0.7},
		{name: "by text", args: []string{"weather", "Providencia"}, wantSummary: "Symbol: 1", wantProb: 0.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.args...)
			require.NoError(t, err)

			var got signalOutput
			require.NoError(t, json.Unmarshal([]byte(out), &got))
			assert.Equal(t, tt.wantSummary, got.WeatherSummary)
			require.NotNil(t, got.PrecipitationProbability)
			assert.InDelta(t, tt.wantProb, *got.PrecipitationProbability, 1e-9)
		})
	}
}

func TestWeatherCommand_MissingInput(t *testing.T) {
	_, err := execute(t, "weather", "--lat", "-33.4")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--lon")
}

func TestWeatherCommand_NonFiniteCoordinates(t *testing.T) {
	_, err := execute(t, "weather", "--lat", "NaN", "--lon", "-70.6")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "finite")
}

func TestEvaluateCommand_InvalidID(t *testing.T) {
	_, err := execute(t, "evaluate", "abc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid order id")
}
