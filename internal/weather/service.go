package weather

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
	_ "time/tzdata" // zone database for images without /usr/share/zoneinfo

	"medi-weather/internal/providers/openmeteo"
	"medi-weather/internal/timezone"
)

const (
	hourlyLayout = "2006-01-02T15:04"
	dailyLayout  = "2006-01-02"
)

// ErrInvalidForecast is returned when a forecast payload is missing data or its series are misaligned
var ErrInvalidForecast = errors.New("invalid forecast payload")

type ForecastProvider interface {
	// GetForecast fetches current, hourly and daily conditions for the given coordinates
	GetForecast(ctx context.Context, latitude, longitude float64) (*openmeteo.ForecastAPIResponse, error)
}

type Service interface {
	Fetch(ctx context.Context, latitude, longitude float64) (*Snapshot, error)
}

type weatherService struct {
	forecastProvider ForecastProvider
	timezoneService  timezone.Service
	logger           *slog.Logger
}

// NewWeatherService creates a service backed by the Open-Meteo forecast API.
// When timezoneLookup is set, coordinates are used to find the zone if the provider's name cannot be loaded.
func NewWeatherService(logger *slog.Logger, timezoneLookup bool, opts ...openmeteo.Option) (Service, error) {
	var tzSvc timezone.Service
	if timezoneLookup {
		svc, err := timezone.NewService()
		if err != nil {
			return nil, fmt.Errorf("failed to create timezone service: %w", err)
		}
		tzSvc = svc
	}
	return NewWeatherServiceWithProvider(openmeteo.NewForecastClient(logger, opts...), tzSvc, logger), nil
}

// NewWeatherServiceWithProvider creates a service with a custom provider.
// timezoneService may be nil.
func NewWeatherServiceWithProvider(
	forecastProvider ForecastProvider,
	timezoneService timezone.Service,
	logger *slog.Logger,
) Service {
	return &weatherService{
		forecastProvider: forecastProvider,
		timezoneService:  timezoneService,
		logger:           logger.With("component", "weather-service"),
	}
}

func (s *weatherService) Fetch(ctx context.Context, latitude, longitude float64) (*Snapshot, error) {
	apiResponse, err := s.forecastProvider.GetForecast(ctx, latitude, longitude)
	if err != nil {
		s.logger.Error("failed to get forecast from provider", "error", err)
		return nil, fmt.Errorf("failed to get forecast: %w", err)
	}

	location := s.resolveLocation(apiResponse, latitude, longitude)

	snapshot, err := mapForecastAPIResponseToSnapshot(apiResponse, location)
	if err != nil {
		s.logger.Error("failed to map forecast", "error", err)
		return nil, err
	}

	s.logger.Debug("mapped forecast",
		"timezone", snapshot.Timezone,
		"hours", snapshot.Hourly.Len(),
		"days", snapshot.Daily.Len(),
	)

	return snapshot, nil
}

// resolveLocation picks the zone used to interpret the provider's local timestamps:
// the provider's IANA name, then a coordinate lookup, then the fixed UTC offset.
func (s *weatherService) resolveLocation(resp *openmeteo.ForecastAPIResponse, latitude, longitude float64) *time.Location {
	if resp.Timezone != "" {
		if loc, err := time.LoadLocation(resp.Timezone); err == nil {
			return loc
		}
		s.logger.Warn("failed to load provider timezone", "timezone", resp.Timezone)
	}

	if s.timezoneService != nil {
		name, err := s.timezoneService.GetTimezone(latitude, longitude)
		if err == nil {
			if loc, err := time.LoadLocation(name); err == nil {
				s.logger.Debug("determined timezone for location",
					"latitude", latitude,
					"longitude", longitude,
					"timezone", name,
				)
				return loc
			}
		} else {
			s.logger.Warn("timezone lookup failed", "error", err)
		}
	}

	return fixedZone(resp.TimezoneAbbreviation, resp.UtcOffsetSeconds)
}

func fixedZone(abbreviation string, offsetSeconds int) *time.Location {
	name := abbreviation
	if name == "" {
		sign := '+'
		offset := offsetSeconds
		if offset < 0 {
			sign = '-'
			offset = -offset
		}
		name = fmt.Sprintf("UTC%c%02d:%02d", sign, offset/3600, (offset%3600)/60)
	}
	return time.FixedZone(name, offsetSeconds)
}

func mapForecastAPIResponseToSnapshot(apiResponse *openmeteo.ForecastAPIResponse, location *time.Location) (*Snapshot, error) {
	if apiResponse.CurrentWeather == nil {
		return nil, fmt.Errorf("%w: missing current_weather", ErrInvalidForecast)
	}

	h := apiResponse.Hourly
	if len(h.Temperature2M) != len(h.Time) || len(h.Weathercode) != len(h.Time) || len(h.IsDay) != len(h.Time) {
		return nil, fmt.Errorf("%w: hourly series lengths differ (time=%d temperature=%d weathercode=%d is_day=%d)",
			ErrInvalidForecast, len(h.Time), len(h.Temperature2M), len(h.Weathercode), len(h.IsDay))
	}

	d := apiResponse.Daily
	if len(d.Temperature2MMax) != len(d.Time) || len(d.Temperature2MMin) != len(d.Time) || len(d.Weathercode) != len(d.Time) {
		return nil, fmt.Errorf("%w: daily series lengths differ (time=%d max=%d min=%d weathercode=%d)",
			ErrInvalidForecast, len(d.Time), len(d.Temperature2MMax), len(d.Temperature2MMin), len(d.Weathercode))
	}

	snapshot := &Snapshot{
		Timezone: location.String(),
		Location: location,
		Current: Current{
			Temperature: apiResponse.CurrentWeather.Temperature,
			WeatherCode: apiResponse.CurrentWeather.Weathercode,
			IsDay:       apiResponse.CurrentWeather.IsDay == 1,
		},
	}

	if apiResponse.CurrentWeather.Time != "" {
		t, err := time.ParseInLocation(hourlyLayout, apiResponse.CurrentWeather.Time, location)
		if err != nil {
			return nil, fmt.Errorf("%w: current_weather time %q: %v", ErrInvalidForecast, apiResponse.CurrentWeather.Time, err)
		}
		snapshot.Current.Time = t
	}

	snapshot.Hourly = Hourly{
		Times:        make([]time.Time, len(h.Time)),
		Temperatures: h.Temperature2M,
		WeatherCodes: h.Weathercode,
		IsDay:        make([]bool, len(h.Time)),
	}
	for i, ts := range h.Time {
		t, err := time.ParseInLocation(hourlyLayout, ts, location)
		if err != nil {
			return nil, fmt.Errorf("%w: hourly time %q: %v", ErrInvalidForecast, ts, err)
		}
		snapshot.Hourly.Times[i] = t
		snapshot.Hourly.IsDay[i] = h.IsDay[i] == 1
	}

	snapshot.Daily = Daily{
		Dates:        make([]time.Time, len(d.Time)),
		TempMax:      d.Temperature2MMax,
		TempMin:      d.Temperature2MMin,
		WeatherCodes: d.Weathercode,
	}
	for i, ds := range d.Time {
		t, err := time.ParseInLocation(dailyLayout, ds, location)
		if err != nil {
			return nil, fmt.Errorf("%w: daily date %q: %v", ErrInvalidForecast, ds, err)
		}
		snapshot.Daily.Dates[i] = t
	}

	return snapshot, nil
}
