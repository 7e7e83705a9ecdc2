package presentation

import (
	"math"
	"testing"
	"time"

	"medi-weather/internal/types"
	"medi-weather/internal/weather"
	"medi-weather/internal/weathercode"
)

var saoPaulo = time.FixedZone("GMT-3", -3*3600)

func hourlySnapshot(start time.Time, n int) *weather.Snapshot {
	snap := &weather.Snapshot{
		Location: start.Location(),
		Current:  weather.Current{Temperature: 21.5, WeatherCode: 0, IsDay: false},
	}
	for i := 0; i < n; i++ {
		t := start.Add(time.Duration(i) * time.Hour)
		snap.Hourly.Times = append(snap.Hourly.Times, t)
		snap.Hourly.Temperatures = append(snap.Hourly.Temperatures, 20+float64(i)/10)
		snap.Hourly.WeatherCodes = append(snap.Hourly.WeatherCodes, 61)
		snap.Hourly.IsDay = append(snap.Hourly.IsDay, t.Hour() >= 6 && t.Hour() < 18)
	}
	return snap
}

func dailySnapshot(mins, maxs []float64, codes []int) *weather.Snapshot {
	start := time.Date(2024, 5, 1, 0, 0, 0, 0, saoPaulo) // Wednesday
	snap := &weather.Snapshot{Location: saoPaulo}
	for i := range mins {
		snap.Daily.Dates = append(snap.Daily.Dates, start.AddDate(0, 0, i))
	}
	snap.Daily.TempMin = mins
	snap.Daily.TempMax = maxs
	snap.Daily.WeatherCodes = codes
	return snap
}

func TestFormatTemperature(t *testing.T) {
	tests := []struct {
		input float64
		want  string
	}{
		{24.4, "24°"},
		{24.5, "25°"},
		{-0.4, "0°"},
		{-2.5, "-3°"},
		{-7.6, "-8°"},
		{0, "0°"},
	}

	for _, tt := range tests {
		if got := FormatTemperature(tt.input); got != tt.want {
			t.Errorf("FormatTemperature(%v) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestFormatCurrent(t *testing.T) {
	place := types.Place{Name: "São Paulo", Country: "Brazil", Coordinates: types.NewCoords(-23.55, -46.63)}
	snap := dailySnapshot([]float64{18}, []float64{26}, []int{1})
	snap.Current = weather.Current{Temperature: 24.4, WeatherCode: 1, IsDay: true}

	got := FormatCurrent(place, snap)

	want := CurrentView{
		DisplayName: "São Paulo, Brazil",
		Temperature: "24°",
		Icon:        "🌤️",
		Description: "Partly cloudy",
		Condition:   "🌤️ Partly cloudy",
		High:        "H: 26°",
		Low:         "L: 18°",
		IsDay:       true,
	}
	if got != want {
		t.Errorf("FormatCurrent() = %+v, want %+v", got, want)
	}
}

func TestFormatCurrent_NightAndNoDaily(t *testing.T) {
	place := types.Place{Name: "Reykjavik", Country: "Iceland"}
	snap := &weather.Snapshot{Current: weather.Current{Temperature: -3.2, WeatherCode: 0, IsDay: false}}

	got := FormatCurrent(place, snap)

	if got.Condition != "🌙 Clear" {
		t.Errorf("Condition = %q, want %q", got.Condition, "🌙 Clear")
	}
	if got.IsDay {
		t.Error("IsDay = true, want false")
	}
	if got.High != "H: --" || got.Low != "L: --" {
		t.Errorf("High/Low = %q/%q, want placeholders", got.High, got.Low)
	}
}

func TestFormatHourly(t *testing.T) {
	start := time.Date(2024, 5, 1, 0, 0, 0, 0, saoPaulo)
	snap := hourlySnapshot(start, 48)
	now := time.Date(2024, 5, 1, 9, 30, 0, 0, saoPaulo)

	got := FormatHourly(snap, now)

	if len(got.Hours) != 12 {
		t.Fatalf("len(Hours) = %d, want 12", len(got.Hours))
	}
	if got.Hours[0].Label != "Now" || got.Hours[0].Temperature != "22°" || got.Hours[0].Icon != "🌙" {
		t.Errorf("Hours[0] = %+v, want Now 22° 🌙", got.Hours[0])
	}
	if got.Hours[1].Label != "10:00" {
		t.Errorf("Hours[1].Label = %q, want 10:00", got.Hours[1].Label)
	}
	if got.Hours[11].Label != "20:00" {
		t.Errorf("Hours[11].Label = %q, want 20:00", got.Hours[11].Label)
	}
	if got.Advisory != "Rain conditions expected around 6PM." {
		t.Errorf("Advisory = %q", got.Advisory)
	}
}

func TestFormatHourly_LabelsUseSnapshotZone(t *testing.T) {
	start := time.Date(2024, 5, 1, 0, 0, 0, 0, saoPaulo)
	snap := hourlySnapshot(start, 24)
	// 12:30 UTC is 09:30 in São Paulo.
	now := time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC)

	got := FormatHourly(snap, now)

	if got.Hours[1].Label != "10:00" {
		t.Errorf("Hours[1].Label = %q, want 10:00", got.Hours[1].Label)
	}
}

func TestFormatHourly_AllPast(t *testing.T) {
	start := time.Date(2024, 5, 1, 0, 0, 0, 0, saoPaulo)
	snap := hourlySnapshot(start, 24)
	now := time.Date(2024, 5, 2, 3, 0, 0, 0, saoPaulo)

	got := FormatHourly(snap, now)

	if len(got.Hours) != 12 {
		t.Fatalf("len(Hours) = %d, want 12", len(got.Hours))
	}
	if got.Hours[1].Label != "00:00" {
		t.Errorf("Hours[1].Label = %q, want 00:00 (start from index 0)", got.Hours[1].Label)
	}
	if got.Advisory != "Weather changes expected over the next few hours." {
		t.Errorf("Advisory = %q, want generic fallback", got.Advisory)
	}
}

func TestFormatHourly_AfterSixPM(t *testing.T) {
	start := time.Date(2024, 5, 1, 0, 0, 0, 0, saoPaulo)
	snap := hourlySnapshot(start, 24)
	now := time.Date(2024, 5, 1, 18, 30, 0, 0, saoPaulo)

	got := FormatHourly(snap, now)

	if got.Advisory != "Weather changes expected over the next few hours." {
		t.Errorf("Advisory = %q, want generic fallback", got.Advisory)
	}
	// 19:00 to 23:00 remain.
	if len(got.Hours) != 6 {
		t.Errorf("len(Hours) = %d, want 6", len(got.Hours))
	}
}

func TestFormatHourly_SixPMExactlyNow(t *testing.T) {
	start := time.Date(2024, 5, 1, 0, 0, 0, 0, saoPaulo)
	snap := hourlySnapshot(start, 24)
	snap.Hourly.WeatherCodes[18] = 95
	now := time.Date(2024, 5, 1, 18, 0, 0, 0, saoPaulo)

	got := FormatHourly(snap, now)

	if got.Advisory != "Thunderstorm conditions expected around 6PM." {
		t.Errorf("Advisory = %q", got.Advisory)
	}
}

func TestFormatHourly_Empty(t *testing.T) {
	snap := &weather.Snapshot{Current: weather.Current{Temperature: 10, WeatherCode: 3}}

	got := FormatHourly(snap, time.Now())

	if len(got.Hours) != 1 || got.Hours[0].Label != "Now" {
		t.Errorf("Hours = %+v, want only Now", got.Hours)
	}
	if got.Advisory != defaultAdvisory {
		t.Errorf("Advisory = %q", got.Advisory)
	}
}

func TestFormatDaily(t *testing.T) {
	snap := dailySnapshot(
		[]float64{18, 16, 17, 15, 19, 20, 14, 2},
		[]float64{26, 24, 25, 22, 27, 28, 21, 40},
		[]int{1, 61, 0, 3, 2, 95, 71, 0},
	)

	got := FormatDaily(snap)

	if len(got) != 7 {
		t.Fatalf("len(FormatDaily()) = %d, want 7", len(got))
	}

	wantLabels := []string{"Today", "Thu", "Fri", "Sat", "Sun", "Mon", "Tue"}
	for i, want := range wantLabels {
		if got[i].Label != want {
			t.Errorf("day %d label = %q, want %q", i, got[i].Label, want)
		}
	}

	// Day 8 (min 2, max 40) is outside the window and must not widen the scale.
	// weekMin = 14, weekMax = 28, span = 14.
	if got[0].Min != "18°" || got[0].Max != "26°" {
		t.Errorf("day 0 = %s/%s, want 18°/26°", got[0].Min, got[0].Max)
	}
	if want := (18.0 - 14.0) / 14.0 * 100; math.Abs(got[0].LeftPercent-want) > 1e-9 {
		t.Errorf("day 0 LeftPercent = %v, want %v", got[0].LeftPercent, want)
	}
	if want := (26.0 - 18.0) / 14.0 * 100; math.Abs(got[0].WidthPercent-want) > 1e-9 {
		t.Errorf("day 0 WidthPercent = %v, want %v", got[0].WidthPercent, want)
	}
	if got[6].LeftPercent != 0 {
		t.Errorf("coldest day LeftPercent = %v, want 0", got[6].LeftPercent)
	}

	// Daily rows use day icons.
	if got[0].Icon != weathercode.Lookup(1, true).Icon {
		t.Errorf("day 0 icon = %q, want day icon", got[0].Icon)
	}
}

func TestFormatDaily_BarBounds(t *testing.T) {
	tests := []struct {
		name string
		mins []float64
		maxs []float64
	}{
		{"isothermal week", []float64{10, 10, 10}, []float64{10, 10, 10}},
		{"tiny ranges", []float64{10, 10.2, 10.4}, []float64{10.1, 10.3, 10.5}},
		{"wide week", []float64{-20, 0, 15}, []float64{-5, 30, 35}},
		{"single day", []float64{5}, []float64{12}},
		{"negative span", []float64{3, -1}, []float64{4, 0.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			codes := make([]int, len(tt.mins))
			got := FormatDaily(dailySnapshot(tt.mins, tt.maxs, codes))

			if len(got) != len(tt.mins) {
				t.Fatalf("len = %d, want %d", len(got), len(tt.mins))
			}
			for i, d := range got {
				if d.WidthPercent < 8 {
					t.Errorf("day %d WidthPercent = %v, below 8", i, d.WidthPercent)
				}
				if d.WidthPercent > 100 {
					t.Errorf("day %d WidthPercent = %v, above 100", i, d.WidthPercent)
				}
				if d.LeftPercent < 0 || d.LeftPercent > 100 {
					t.Errorf("day %d LeftPercent = %v, outside [0,100]", i, d.LeftPercent)
				}
			}
		})
	}
}

func TestFormatDaily_Empty(t *testing.T) {
	got := FormatDaily(&weather.Snapshot{})
	if got == nil || len(got) != 0 {
		t.Errorf("FormatDaily(empty) = %v, want empty slice", got)
	}
}

func TestMinMaxFloat(t *testing.T) {
	tests := []struct {
		name    string
		input   []float64
		wantMin float64
		wantMax float64
	}{
		{"single", []float64{5}, 5, 5},
		{"mixed", []float64{3, -1, 7, 2}, -1, 7},
		{"all negative", []float64{-3, -9, -4}, -9, -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := minFloat(tt.input); got != tt.wantMin {
				t.Errorf("minFloat(%v) = %v, want %v", tt.input, got, tt.wantMin)
			}
			if got := maxFloat(tt.input); got != tt.wantMax {
				t.Errorf("maxFloat(%v) = %v, want %v", tt.input, got, tt.wantMax)
			}
		})
	}
}
