package nominatim

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// API Docs: https://nominatim.org/release-docs/develop/api/Search/
// Sample request: https://nominatim.openstreetmap.org/search?q=Hanoi,+Vietnam&format=json&limit=1
const (
	baseURL   = "https://nominatim.openstreetmap.org/search"
	userAgent = "vietspot/1.0"
)

// ErrNotFound is returned when the geocoder yields zero matches for a query.
var ErrNotFound = errors.New("no geocoding results")

type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

func NewClient(logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{},
		baseURL:    baseURL,
		logger:     logger.With("component", "nominatim-client"),
	}
}

// Search geocodes a free-text place name scoped to the given country and
// returns the first entry of the ranked match list. One attempt, no retries.
func (c *Client) Search(query, country string) (*Place, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	q := u.Query()
	q.Set("q", fmt.Sprintf("%s, %s", query, country))
	q.Set("format", "json")
	q.Set("limit", "1")
	u.RawQuery = q.Encode()

	c.logger.Debug("geocoding query", "query", query, "url", u.String())

	req, err := http.NewRequest(http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	// Nominatim's usage policy requires an identifying User-Agent.
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("failed to fetch geocoding results", "error", err)
		return nil, fmt.Errorf("failed to fetch: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("geocoding API returned error",
			"status_code", resp.StatusCode,
			"response_body", string(body),
		)
		return nil, fmt.Errorf("fetch returned status %d: %s", resp.StatusCode, string(body))
	}

	var results []SearchAPIResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		c.logger.Error("failed to decode geocoding response", "error", err)
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if len(results) == 0 {
		c.logger.Debug("geocoding query matched nothing", "query", query)
		return nil, ErrNotFound
	}

	best := results[0]
	lat, err := strconv.ParseFloat(strings.TrimSpace(best.Lat), 64)
	if err != nil {
		return nil, fmt.Errorf("failed to parse latitude %q: %w", best.Lat, err)
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(best.Lon), 64)
	if err != nil {
		return nil, fmt.Errorf("failed to parse longitude %q: %w", best.Lon, err)
	}

	c.logger.Debug("geocoded query",
		"query", query,
		"display_name", best.DisplayName,
		"latitude", lat,
		"longitude", lon,
	)

	return &Place{
		Latitude:    lat,
		Longitude:   lon,
		DisplayName: best.DisplayName,
	}, nil
}
