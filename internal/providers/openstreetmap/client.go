package openstreetmap

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"order-weather/internal/observability"
)

// API Docs: https://nominatim.org/release-docs/develop/api/Search/
// Sample request: https://nominatim.openstreetmap.org/search?q=Av.+Providencia+1234,+Chile&format=json&limit=1&countrycodes=cl&accept-language=es
const (
	baseURL          = "https://nominatim.openstreetmap.org"
	defaultUserAgent = "order-weather/1.0"
)

// SearchOptions narrows a free-text search.
type SearchOptions struct {
	CountryCodes string // comma separated ISO 3166-1 alpha-2 codes
	Limit        int
	Language     string
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// NewClient creates a Nominatim client. Empty baseURL and userAgent fall back
// to the public endpoint and a default agent string.
func NewClient(base, userAgent string, timeout time.Duration, metrics *observability.Metrics, logger *slog.Logger) *Client {
	if base == "" {
		base = baseURL
	}
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(base, "/"),
		userAgent:  userAgent,
		metrics:    metrics,
		logger:     logger.With("component", "openstreetmap-client"),
	}
}

// Search runs a forward geocoding query. Zero results is not an error.
func (c *Client) Search(ctx context.Context, query string, opts SearchOptions) ([]SearchResult, error) {
	// Build URL with query parameters
	u, err := url.Parse(c.baseURL + "/search")
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	q := u.Query()
	q.Set("q", query)
	q.Set("format", "json")
	if opts.Limit > 0 {
		q.Set("limit", strconv.Itoa(opts.Limit))
	}
	if opts.CountryCodes != "" {
		q.Set("countrycodes", opts.CountryCodes)
	}
	if opts.Language != "" {
		q.Set("accept-language", opts.Language)
	}
	u.RawQuery = q.Encode()

	c.logger.Debug("searching OpenStreetMap",
		"query", query,
		"url", u.String(),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	// Nominatim's usage policy requires an identifying User-Agent.
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	c.metrics.ProviderDuration.WithLabelValues("nominatim", "search").Observe(time.Since(start).Seconds())
	if err != nil {
		c.logger.Error("failed to fetch OpenStreetMap data",
			"query", query,
			"error", err,
		)
		return nil, fmt.Errorf("failed to fetch: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("OpenStreetMap API returned error",
			"status_code", resp.StatusCode,
			"query", query,
			"response_body", string(body),
		)
		return nil, fmt.Errorf("fetch returned status %d: %s", resp.StatusCode, string(body))
	}

	// Parse the JSON response
	var results []SearchResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		c.logger.Error("failed to decode OpenStreetMap response",
			"query", query,
			"error", err,
		)
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	c.logger.Debug("successfully searched OpenStreetMap",
		"query", query,
		"results", len(results),
	)

	return results, nil
}
