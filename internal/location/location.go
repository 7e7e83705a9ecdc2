package location

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"medi-weather/internal/providers/openmeteo"
	"medi-weather/internal/types"
)

// ErrCityNotFound is returned when geocoding yields no match for the query
var ErrCityNotFound = errors.New("city not found")

// Service resolves city names to places
type Service interface {
	// Resolve returns the best match for cityName. The caller trims the input.
	Resolve(ctx context.Context, cityName string) (types.Place, error)
}

// GeocodeProvider defines the interface for forward geocoding providers
type GeocodeProvider interface {
	Search(ctx context.Context, name string, count int) (*openmeteo.GeocodingAPIResponse, error)
}

// locationService implements the Service interface
type locationService struct {
	geocodeProvider GeocodeProvider
	logger          *slog.Logger
}

// NewLocationService creates a new location service backed by the Open-Meteo geocoding API
func NewLocationService(logger *slog.Logger, opts ...openmeteo.Option) Service {
	return NewLocationServiceWithProviders(openmeteo.NewGeocodingClient(logger, opts...), logger)
}

// NewLocationServiceWithProviders creates a new location service with a custom provider
// This is useful for testing with mock providers
func NewLocationServiceWithProviders(geocodeProvider GeocodeProvider, logger *slog.Logger) Service {
	return &locationService{
		geocodeProvider: geocodeProvider,
		logger:          logger.With("component", "location-service"),
	}
}

// Resolve asks the provider for a single match
func (s *locationService) Resolve(ctx context.Context, cityName string) (types.Place, error) {
	resp, err := s.geocodeProvider.Search(ctx, cityName, 1)
	if err != nil {
		return types.Place{}, fmt.Errorf("failed to geocode %q: %w", cityName, err)
	}

	if resp == nil || len(resp.Results) == 0 {
		s.logger.Info("no geocoding match", "city", cityName)
		return types.Place{}, fmt.Errorf("%w: %q", ErrCityNotFound, cityName)
	}

	place := translatePlace(resp.Results[0])
	s.logger.Debug("resolved city",
		"city", cityName,
		"name", place.Name,
		"country", place.Country,
		"coords", place.Coordinates.String(),
	)

	return place, nil
}

// translatePlace converts an Open-Meteo geocoding result to the domain Place type
func translatePlace(r openmeteo.GeocodingResult) types.Place {
	return types.Place{
		Name:        r.Name,
		Country:     r.Country,
		Coordinates: types.NewCoords(r.Latitude, r.Longitude),
	}
}
