//go:build integration

package weather

import (
	"context"
	"testing"
)

func TestWeatherService_Fetch_Integration(t *testing.T) {
	svc, err := NewWeatherService(discardLogger(), true)
	if err != nil {
		t.Fatalf("Failed to create service: %v", err)
	}

	// São Paulo
	snap, err := svc.Fetch(context.Background(), -23.5475, -46.63611)
	if err != nil {
		t.Fatalf("Failed to fetch forecast: %v", err)
	}

	if snap.Timezone != "America/Sao_Paulo" {
		t.Errorf("Expected timezone America/Sao_Paulo, got %s", snap.Timezone)
	}

	t.Logf("Current: %.1f°C code=%d day=%v", snap.Current.Temperature, snap.Current.WeatherCode, snap.Current.IsDay)

	// Temperature should be reasonable
	if snap.Current.Temperature < -10 || snap.Current.Temperature > 50 {
		t.Errorf("Current temperature %v°C seems unreasonable", snap.Current.Temperature)
	}

	if snap.Hourly.Len() < 24 {
		t.Errorf("Expected at least 24 hourly points, got %d", snap.Hourly.Len())
	}
	if snap.Daily.Len() < 7 {
		t.Errorf("Expected at least 7 days, got %d", snap.Daily.Len())
	}

	for i := 0; i < snap.Daily.Len() && i < 7; i++ {
		t.Logf("  %s: %.1f / %.1f code=%d",
			snap.Daily.Dates[i].Format("Mon 2006-01-02"),
			snap.Daily.TempMin[i], snap.Daily.TempMax[i], snap.Daily.WeatherCodes[i])
		if snap.Daily.TempMin[i] > snap.Daily.TempMax[i] {
			t.Errorf("Day %d min %v > max %v", i, snap.Daily.TempMin[i], snap.Daily.TempMax[i])
		}
	}
}
