package openmeteo

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
)

// API Docs: https://open-meteo.com/en/docs/geocoding-api
// Sample request: https://geocoding-api.open-meteo.com/v1/search?name=Sao+Paulo&count=1&language=en&format=json
const (
	baseGeocodingURL = "https://geocoding-api.open-meteo.com/v1/search"
)

type GeocodingClient struct {
	baseURL string
	req     *requester
}

func NewGeocodingClient(logger *slog.Logger, opts ...Option) *GeocodingClient {
	o := buildOptions(baseGeocodingURL, opts)
	return &GeocodingClient{
		baseURL: o.baseURL,
		req: &requester{
			service:    ServiceGeocoding,
			httpClient: o.httpClient,
			limiter:    o.limiter,
			observer:   o.observer,
			logger:     logger.With("component", "openmeteo-geocoding-client"),
		},
	}
}

// Search looks up places matching name, returning at most count results
func (c *GeocodingClient) Search(ctx context.Context, name string, count int) (*GeocodingAPIResponse, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	q := u.Query()
	q.Set("name", name)
	q.Set("count", strconv.Itoa(count))
	q.Set("language", "en")
	q.Set("format", "json")
	u.RawQuery = q.Encode()

	var apiResp GeocodingAPIResponse
	if err := c.req.getJSON(ctx, u.String(), &apiResp); err != nil {
		return nil, err
	}

	return &apiResp, nil
}
