//go:build integration

package meteored

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"order-weather/internal/observability"
	"order-weather/internal/tree"
)

func TestClient_Integration(t *testing.T) {
	apiKey := os.Getenv("ORDER_WEATHER_FORECAST_API_KEY")
	if apiKey == "" {
		t.Skip("ORDER_WEATHER_FORECAST_API_KEY not set")
	}

	client := NewClient("", apiKey, "order-weather-integration-test/1.0", 10*time.Second,
		observability.NewMetricsForTesting(),
		slog.New(slog.NewTextHandler(os.Stdout, nil)),
	)

	t.Logf("Making API call to Meteored location search...")
	loc, err := client.LocationByCoords(context.Background(), -33.4489, -70.6693)
	if err != nil {
		t.Fatalf("Failed to search location: %v", err)
	}

	hash, ok := loc.Path("data", "locations", 0, "hash").Text()
	if !ok {
		t.Fatalf("No location hash in response (kind=%s)", loc.Kind())
	}
	t.Logf("Location hash: %s", hash)

	forecast, err := client.DailyForecast(context.Background(), hash)
	if err != nil {
		t.Fatalf("Failed to fetch forecast: %v", err)
	}

	if p, ok := tree.FindProbability(forecast); ok {
		t.Logf("Precipitation probability: %.2f", p)
	} else {
		t.Log("No precipitation probability found in forecast")
	}
}
