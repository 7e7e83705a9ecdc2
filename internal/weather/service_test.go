package weather

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"medi-weather/internal/providers/openmeteo"
)

type mockForecastProvider struct {
	response *openmeteo.ForecastAPIResponse
	err      error
}

func (m *mockForecastProvider) GetForecast(_ context.Context, _, _ float64) (*openmeteo.ForecastAPIResponse, error) {
	return m.response, m.err
}

type mockTimezoneService struct {
	name  string
	err   error
	calls int
}

func (m *mockTimezoneService) GetTimezone(_, _ float64) (string, error) {
	m.calls++
	return m.name, m.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func saoPauloResponse() *openmeteo.ForecastAPIResponse {
	return &openmeteo.ForecastAPIResponse{
		Latitude:             -23.5,
		Longitude:            -46.625,
		UtcOffsetSeconds:     -10800,
		Timezone:             "America/Sao_Paulo",
		TimezoneAbbreviation: "GMT-3",
		CurrentWeather: &openmeteo.CurrentWeather{
			Time:        "2024-05-01T14:00",
			Temperature: 23.6,
			Weathercode: 1,
			IsDay:       1,
		},
		Hourly: openmeteo.Hourly{
			Time:          []string{"2024-05-01T14:00", "2024-05-01T15:00", "2024-05-01T19:00"},
			Temperature2M: []float64{23.6, 24.1, 20.0},
			Weathercode:   []int{1, 2, 0},
			IsDay:         []int{1, 1, 0},
		},
		Daily: openmeteo.Daily{
			Time:             []string{"2024-05-01", "2024-05-02"},
			Temperature2MMax: []float64{26.2, 27.0},
			Temperature2MMin: []float64{17.8, 16.4},
			Weathercode:      []int{1, 61},
		},
	}
}

func TestWeatherService_Fetch(t *testing.T) {
	svc := NewWeatherServiceWithProvider(&mockForecastProvider{response: saoPauloResponse()}, nil, discardLogger())

	snap, err := svc.Fetch(context.Background(), -23.5475, -46.63611)
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}

	if snap.Timezone != "America/Sao_Paulo" {
		t.Errorf("Timezone = %q, want America/Sao_Paulo", snap.Timezone)
	}
	if snap.Current.Temperature != 23.6 || snap.Current.WeatherCode != 1 || !snap.Current.IsDay {
		t.Errorf("Current = %+v", snap.Current)
	}

	if snap.Hourly.Len() != 3 {
		t.Fatalf("Hourly.Len() = %d, want 3", snap.Hourly.Len())
	}
	first := snap.Hourly.Times[0]
	if first.Hour() != 14 || first.Day() != 1 || first.Month() != time.May {
		t.Errorf("Hourly.Times[0] = %v, want 2024-05-01 14:00 local", first)
	}
	if _, offset := first.Zone(); offset != -3*3600 {
		t.Errorf("Hourly.Times[0] offset = %d, want %d", offset, -3*3600)
	}
	if snap.Hourly.IsDay[2] {
		t.Error("Hourly.IsDay[2] = true, want false")
	}

	if snap.Daily.Len() != 2 {
		t.Fatalf("Daily.Len() = %d, want 2", snap.Daily.Len())
	}
	if snap.Daily.TempMax[0] != 26.2 || snap.Daily.TempMin[0] != 17.8 {
		t.Errorf("Daily[0] = max %v min %v", snap.Daily.TempMax[0], snap.Daily.TempMin[0])
	}
	if snap.Daily.Dates[1].Weekday() != time.Thursday {
		t.Errorf("Daily.Dates[1] weekday = %v, want Thursday", snap.Daily.Dates[1].Weekday())
	}
}

func TestWeatherService_Fetch_ProviderError(t *testing.T) {
	providerErr := &openmeteo.APIError{Service: openmeteo.ServiceForecast, StatusCode: 500}
	svc := NewWeatherServiceWithProvider(&mockForecastProvider{err: providerErr}, nil, discardLogger())

	_, err := svc.Fetch(context.Background(), 0, 0)
	if !errors.Is(err, openmeteo.ErrServiceUnavailable) {
		t.Errorf("Fetch() error = %v, want ErrServiceUnavailable", err)
	}
}

func TestMapForecastAPIResponseToSnapshot_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*openmeteo.ForecastAPIResponse)
	}{
		{
			name:   "missing current weather",
			mutate: func(r *openmeteo.ForecastAPIResponse) { r.CurrentWeather = nil },
		},
		{
			name:   "short hourly temperatures",
			mutate: func(r *openmeteo.ForecastAPIResponse) { r.Hourly.Temperature2M = r.Hourly.Temperature2M[:1] },
		},
		{
			name:   "short hourly day flags",
			mutate: func(r *openmeteo.ForecastAPIResponse) { r.Hourly.IsDay = nil },
		},
		{
			name:   "long daily weather codes",
			mutate: func(r *openmeteo.ForecastAPIResponse) { r.Daily.Weathercode = append(r.Daily.Weathercode, 3) },
		},
		{
			name:   "unparseable hourly time",
			mutate: func(r *openmeteo.ForecastAPIResponse) { r.Hourly.Time[1] = "tomorrow" },
		},
		{
			name:   "unparseable daily date",
			mutate: func(r *openmeteo.ForecastAPIResponse) { r.Daily.Time[0] = "2024/05/01" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := saoPauloResponse()
			tt.mutate(resp)

			_, err := mapForecastAPIResponseToSnapshot(resp, time.UTC)
			if !errors.Is(err, ErrInvalidForecast) {
				t.Errorf("error = %v, want ErrInvalidForecast", err)
			}
			if errors.Is(err, openmeteo.ErrServiceUnavailable) {
				t.Errorf("malformed payload classified as unavailable: %v", err)
			}
		})
	}
}

func TestMapForecastAPIResponseToSnapshot_Empty(t *testing.T) {
	resp := &openmeteo.ForecastAPIResponse{
		CurrentWeather: &openmeteo.CurrentWeather{Temperature: 5},
	}

	snap, err := mapForecastAPIResponseToSnapshot(resp, time.UTC)
	if err != nil {
		t.Fatalf("error = %v", err)
	}
	if snap.Hourly.Len() != 0 || snap.Daily.Len() != 0 {
		t.Errorf("lengths = %d/%d, want 0/0", snap.Hourly.Len(), snap.Daily.Len())
	}
	if !snap.Current.Time.IsZero() {
		t.Errorf("Current.Time = %v, want zero", snap.Current.Time)
	}
}

func TestWeatherService_ResolveLocation(t *testing.T) {
	tests := []struct {
		name         string
		timezone     string
		abbreviation string
		offset       int
		tz           *mockTimezoneService
		wantName     string
		wantOffset   int
		wantLookups  int
	}{
		{
			name:        "provider zone wins",
			timezone:    "America/Sao_Paulo",
			offset:      -10800,
			tz:          &mockTimezoneService{name: "Europe/London"},
			wantName:    "America/Sao_Paulo",
			wantOffset:  -10800,
			wantLookups: 0,
		},
		{
			name:        "coordinate lookup when provider zone is unknown",
			timezone:    "Mars/Olympus_Mons",
			offset:      -10800,
			tz:          &mockTimezoneService{name: "America/Sao_Paulo"},
			wantName:    "America/Sao_Paulo",
			wantOffset:  -10800,
			wantLookups: 1,
		},
		{
			name:         "fixed offset when lookup fails",
			timezone:     "",
			abbreviation: "GMT-3",
			offset:       -10800,
			tz:           &mockTimezoneService{err: errors.New("ocean")},
			wantName:     "GMT-3",
			wantOffset:   -10800,
			wantLookups:  1,
		},
		{
			name:        "fixed offset without abbreviation or lookup",
			timezone:    "",
			offset:      19800,
			wantName:    "UTC+05:30",
			wantOffset:  19800,
			wantLookups: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ws := &weatherService{logger: discardLogger()}
			if tt.tz != nil {
				ws.timezoneService = tt.tz
			}

			resp := &openmeteo.ForecastAPIResponse{
				Timezone:             tt.timezone,
				TimezoneAbbreviation: tt.abbreviation,
				UtcOffsetSeconds:     tt.offset,
			}
			loc := ws.resolveLocation(resp, -23.5, -46.6)

			if loc.String() != tt.wantName {
				t.Errorf("location = %q, want %q", loc.String(), tt.wantName)
			}
			// A date without daylight saving in either hemisphere's zones used here.
			_, offset := time.Date(2024, 5, 1, 12, 0, 0, 0, loc).Zone()
			if offset != tt.wantOffset {
				t.Errorf("offset = %d, want %d", offset, tt.wantOffset)
			}
			if tt.tz != nil && tt.tz.calls != tt.wantLookups {
				t.Errorf("timezone lookups = %d, want %d", tt.tz.calls, tt.wantLookups)
			}
		})
	}
}
