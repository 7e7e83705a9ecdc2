package app

import (
	"errors"

	"medi-weather/internal/location"
	"medi-weather/internal/providers/openmeteo"
)

// ErrValidation is returned by Submit for blank input
var ErrValidation = errors.New("city name is empty")

// User-facing messages shown in the error banner
const (
	MsgValidation           = "Please type a city name."
	MsgGeocodingUnavailable = "Could not search for this city right now."
	MsgNotFound             = "City not found. Try another name."
	MsgForecastUnavailable  = "Weather forecast is unavailable now. Please try again."
	MsgUnknown              = "Something went wrong while loading weather data."
)

// ErrorKind classifies load failures
type ErrorKind string

const (
	KindNone               ErrorKind = ""
	KindValidation         ErrorKind = "validation"
	KindServiceUnavailable ErrorKind = "service_unavailable"
	KindNotFound           ErrorKind = "not_found"
	KindUnknown            ErrorKind = "unknown"
)

// Kind returns the ErrorKind of err
func Kind(err error) ErrorKind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrValidation):
		return KindValidation
	case errors.Is(err, location.ErrCityNotFound):
		return KindNotFound
	case errors.Is(err, openmeteo.ErrServiceUnavailable):
		return KindServiceUnavailable
	default:
		return KindUnknown
	}
}

// Message returns the banner text for err
func Message(err error) string {
	switch Kind(err) {
	case KindNone:
		return ""
	case KindValidation:
		return MsgValidation
	case KindNotFound:
		return MsgNotFound
	case KindServiceUnavailable:
		var apiErr *openmeteo.APIError
		if errors.As(err, &apiErr) && apiErr.Service == openmeteo.ServiceGeocoding {
			return MsgGeocodingUnavailable
		}
		return MsgForecastUnavailable
	default:
		return MsgUnknown
	}
}
