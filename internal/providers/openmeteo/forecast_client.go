package openmeteo

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
)

// API Docs: https://open-meteo.com/en/docs
// Sample request: https://api.open-meteo.com/v1/forecast?latitude=-23.55&longitude=-46.63&current_weather=true&hourly=temperature_2m,weathercode,is_day&daily=temperature_2m_max,temperature_2m_min,weathercode&timezone=auto
const (
	baseForecastURL = "https://api.open-meteo.com/v1/forecast"
)

var (
	hourlyVars = []string{
		"temperature_2m",
		"weathercode",
		"is_day",
	}

	dailyVars = []string{
		"temperature_2m_max",
		"temperature_2m_min",
		"weathercode",
	}
)

type ForecastClient struct {
	baseURL string
	req     *requester
}

func NewForecastClient(logger *slog.Logger, opts ...Option) *ForecastClient {
	o := buildOptions(baseForecastURL, opts)
	return &ForecastClient{
		baseURL: o.baseURL,
		req: &requester{
			service:    ServiceForecast,
			httpClient: o.httpClient,
			limiter:    o.limiter,
			observer:   o.observer,
			logger:     logger.With("component", "openmeteo-forecast-client"),
		},
	}
}

// GetForecast fetches current, hourly and daily conditions for the given coordinates.
// Timestamps in the response are local to the location (timezone=auto).
func (c *ForecastClient) GetForecast(ctx context.Context, latitude, longitude float64) (*ForecastAPIResponse, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	q := u.Query()
	q.Set("latitude", fmt.Sprintf("%f", latitude))
	q.Set("longitude", fmt.Sprintf("%f", longitude))
	q.Set("current_weather", "true")
	q.Set("hourly", strings.Join(hourlyVars, ","))
	q.Set("daily", strings.Join(dailyVars, ","))
	q.Set("timezone", "auto")
	u.RawQuery = q.Encode()

	var apiResp ForecastAPIResponse
	if err := c.req.getJSON(ctx, u.String(), &apiResp); err != nil {
		return nil, err
	}

	return &apiResp, nil
}
