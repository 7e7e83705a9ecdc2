package openmeteo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// Request outcomes reported to a RequestObserver
const (
	OutcomeSuccess        = "success"
	OutcomeHTTPError      = "http_error"
	OutcomeTransportError = "transport_error"
	OutcomeDecodeError    = "decode_error"
)

// RequestObserver receives one call per upstream request
type RequestObserver interface {
	ObserveRequest(service, outcome string, duration time.Duration)
}

type options struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	observer   RequestObserver
}

// Option configures a GeocodingClient or ForecastClient
type Option func(*options)

// WithBaseURL overrides the endpoint, mainly for tests
func WithBaseURL(baseURL string) Option {
	return func(o *options) { o.baseURL = baseURL }
}

// WithHTTPClient sets the HTTP client used for requests
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) { o.httpClient = c }
}

// WithTimeout sets the timeout of the default HTTP client
func WithTimeout(timeout time.Duration) Option {
	return func(o *options) { o.httpClient = &http.Client{Timeout: timeout} }
}

// WithRateLimiter makes every request wait on l first. The limiter may be shared between clients.
func WithRateLimiter(l *rate.Limiter) Option {
	return func(o *options) { o.limiter = l }
}

// WithObserver reports each request's outcome and duration
func WithObserver(obs RequestObserver) Option {
	return func(o *options) { o.observer = obs }
}

func buildOptions(defaultURL string, opts []Option) options {
	o := options{
		baseURL:    defaultURL,
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// requester performs a rate-limited GET and decodes the JSON body
type requester struct {
	service    string
	httpClient *http.Client
	limiter    *rate.Limiter
	observer   RequestObserver
	logger     *slog.Logger
}

func (r *requester) getJSON(ctx context.Context, rawURL string, out any) error {
	if r.limiter != nil {
		if err := r.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("rate limit wait: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	r.logger.Debug("fetching", "url", rawURL)
	start := time.Now()

	resp, err := r.httpClient.Do(req)
	if err != nil {
		r.observe(OutcomeTransportError, start)
		r.logger.Error("failed to fetch", "error", err)
		return fmt.Errorf("failed to fetch: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		r.observe(OutcomeHTTPError, start)
		r.logger.Error("API returned error",
			"status_code", resp.StatusCode,
			"response_body", string(body),
		)
		return &APIError{Service: r.service, StatusCode: resp.StatusCode, Body: string(body)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		r.observe(OutcomeDecodeError, start)
		r.logger.Error("failed to decode response", "error", err)
		return fmt.Errorf("failed to decode response: %w", err)
	}

	r.observe(OutcomeSuccess, start)
	r.logger.Debug("fetch complete", "duration", time.Since(start))
	return nil
}

func (r *requester) observe(outcome string, start time.Time) {
	if r.observer != nil {
		r.observer.ObserveRequest(r.service, outcome, time.Since(start))
	}
}
