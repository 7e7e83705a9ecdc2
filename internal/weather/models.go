package weather

import "time"

// Snapshot is one forecast response mapped to domain types.
// All timestamps are in Location, the forecast point's local zone.
type Snapshot struct {
	Timezone string
	Location *time.Location
	Current  Current
	Hourly   Hourly
	Daily    Daily
}

type Current struct {
	Time        time.Time
	Temperature float64
	WeatherCode int
	IsDay       bool
}

// Hourly holds index-aligned series of equal length
type Hourly struct {
	Times        []time.Time
	Temperatures []float64
	WeatherCodes []int
	IsDay        []bool
}

func (h Hourly) Len() int {
	return len(h.Times)
}

// Daily holds index-aligned series of equal length
type Daily struct {
	Dates        []time.Time
	TempMax      []float64
	TempMin      []float64
	WeatherCodes []int
}

func (d Daily) Len() int {
	return len(d.Dates)
}
