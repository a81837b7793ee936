package overpass

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
)

// API Docs: https://wiki.openstreetmap.org/wiki/Overpass_API
// Queries are Overpass QL POSTed as form data to the interpreter endpoint.
const baseURL = "https://overpass-api.de/api/interpreter"

type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

func NewClient(logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{},
		baseURL:    baseURL,
		logger:     logger.With("component", "overpass-client"),
	}
}

// buildQuery assembles the Overpass QL union over the fixed POI categories:
// any tourism node, restaurants, cafes, historic sites, and leisure amenities,
// all within radiusMeters of the point, output capped at limit.
func buildQuery(latitude, longitude float64, radiusMeters, limit int) string {
	var b strings.Builder
	b.WriteString("[out:json];(")
	selectors := []string{
		`["tourism"]`,
		`["amenity"="restaurant"]`,
		`["amenity"="cafe"]`,
		`["historic"]`,
		`["leisure"]`,
	}
	for _, sel := range selectors {
		fmt.Fprintf(&b, "node(around:%d,%.6f,%.6f)%s;", radiusMeters, latitude, longitude, sel)
	}
	fmt.Fprintf(&b, ");out %d;", limit)
	return b.String()
}

// Nearby fetches tagged nodes around a coordinate. An empty element list is
// not an error at this layer; the caller decides how to surface it.
func (c *Client) Nearby(latitude, longitude float64, radiusMeters, limit int) ([]Element, error) {
	query := buildQuery(latitude, longitude, radiusMeters, limit)

	c.logger.Debug("querying overpass",
		"latitude", latitude,
		"longitude", longitude,
		"radius_meters", radiusMeters,
		"limit", limit,
	)

	form := url.Values{}
	form.Set("data", query)

	resp, err := c.httpClient.PostForm(c.baseURL, form)
	if err != nil {
		c.logger.Error("failed to fetch overpass results", "error", err)
		return nil, fmt.Errorf("failed to fetch: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("overpass API returned error",
			"status_code", resp.StatusCode,
			"response_body", string(body),
		)
		return nil, fmt.Errorf("fetch returned status %d: %s", resp.StatusCode, string(body))
	}

	var apiResp QueryAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		c.logger.Error("failed to decode overpass response", "error", err)
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	c.logger.Debug("fetched overpass elements", "element_count", len(apiResp.Elements))

	return apiResp.Elements, nil
}
