package meteored

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"order-weather/internal/observability"
	"order-weather/internal/tree"
)

// API Docs: https://dashboard.meteored.com/docs
// Sample requests:
// - https://api.meteored.com/api/location/v1/search/coords/-33.4489/-70.6693
// - https://api.meteored.com/api/location/v1/search/txt/Providencia
// - https://api.meteored.com/api/forecast/v1/daily/{hash}
//
// Response shapes differ between endpoints and API versions, so every call
// returns an untyped tree.Node instead of a fixed model.
const (
	baseURL          = "https://api.meteored.com"
	defaultUserAgent = "order-weather/1.0"

	// maxBodyBytes caps how much of a response is read.
	maxBodyBytes = 4 << 20
)

type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	userAgent  string
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// NewClient creates a Meteored client. The API key may be empty; when set it
// is sent both as the apikey query parameter and the x-api-key header.
func NewClient(base, apiKey, userAgent string, timeout time.Duration, metrics *observability.Metrics, logger *slog.Logger) *Client {
	if base == "" {
		base = baseURL
	}
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(base, "/"),
		apiKey:     strings.TrimSpace(apiKey),
		userAgent:  userAgent,
		metrics:    metrics,
		logger:     logger.With("component", "meteored-client"),
	}
}

// LocationByCoords searches locations near a coordinate.
func (c *Client) LocationByCoords(ctx context.Context, latitude, longitude float64) (tree.Node, error) {
	path := fmt.Sprintf("/api/location/v1/search/coords/%s/%s",
		strconv.FormatFloat(latitude, 'f', -1, 64),
		strconv.FormatFloat(longitude, 'f', -1, 64),
	)
	return c.get(ctx, "location_coords", path)
}

// LocationByText searches locations by free text.
func (c *Client) LocationByText(ctx context.Context, text string) (tree.Node, error) {
	return c.get(ctx, "location_text", "/api/location/v1/search/txt/"+url.PathEscape(text))
}

// DailyForecast fetches the daily forecast for a location hash. An empty
// body yields the missing node and no error.
func (c *Client) DailyForecast(ctx context.Context, hash string) (tree.Node, error) {
	return c.get(ctx, "daily_forecast", "/api/forecast/v1/daily/"+url.PathEscape(hash))
}

func (c *Client) get(ctx context.Context, operation, path string) (tree.Node, error) {
	u, err := url.Parse(c.baseURL + path)
	if err != nil {
		return tree.Node{}, fmt.Errorf("failed to parse URL: %w", err)
	}
	if c.apiKey != "" {
		q := u.Query()
		q.Set("apikey", c.apiKey)
		u.RawQuery = q.Encode()
	}

	c.logger.Debug("fetching Meteored data",
		"operation", operation,
		"path", u.EscapedPath(),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return tree.Node{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("x-api-key", c.apiKey)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	c.metrics.ProviderDuration.WithLabelValues("meteored", operation).Observe(time.Since(start).Seconds())
	if err != nil {
		c.logger.Error("failed to fetch Meteored data",
			"operation", operation,
			"error", err,
		)
		return tree.Node{}, fmt.Errorf("failed to fetch: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return tree.Node{}, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("Meteored API returned error",
			"operation", operation,
			"status_code", resp.StatusCode,
			"response_body", string(body),
		)
		return tree.Node{}, fmt.Errorf("fetch returned status %d: %s", resp.StatusCode, string(body))
	}

	node, err := tree.Parse(body)
	if err != nil {
		c.logger.Error("failed to decode Meteored response",
			"operation", operation,
			"error", err,
		)
		return tree.Node{}, fmt.Errorf("failed to decode response: %w", err)
	}

	c.logger.Debug("successfully fetched Meteored data",
		"operation", operation,
		"kind", node.Kind().String(),
	)

	return node, nil
}
