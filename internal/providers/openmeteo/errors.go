package openmeteo

import (
	"errors"
	"fmt"
)

// ErrServiceUnavailable is matched by every non-success response from an Open-Meteo API
var ErrServiceUnavailable = errors.New("service unavailable")

// Service names reported in APIError and request metrics
const (
	ServiceGeocoding = "geocoding"
	ServiceForecast  = "forecast"
)

// APIError is returned when an Open-Meteo endpoint answers with a non-200 status
type APIError struct {
	Service    string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s fetch returned status %d: %s", e.Service, e.StatusCode, e.Body)
}

// Is makes errors.Is(err, ErrServiceUnavailable) true for any APIError
func (e *APIError) Is(target error) bool {
	return target == ErrServiceUnavailable
}
