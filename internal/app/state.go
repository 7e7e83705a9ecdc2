package app

import (
	"slices"
	"time"

	"medi-weather/internal/presentation"
)

// State is everything the page and the JSON API display
type State struct {
	Input     string                    `json:"input"`
	Loading   bool                      `json:"loading"`
	Error     string                    `json:"error,omitempty"`
	City      string                    `json:"city,omitempty"`
	Timezone  string                    `json:"timezone,omitempty"`
	Current   *presentation.CurrentView `json:"current,omitempty"`
	Hourly    *presentation.HourlyView  `json:"hourly,omitempty"`
	Daily     []presentation.DayView    `json:"daily,omitempty"`
	UpdatedAt time.Time                 `json:"updatedAt,omitzero"`
	LoadID    string                    `json:"loadId,omitempty"`
}

// HasWeather reports whether a load has ever succeeded
func (s State) HasWeather() bool {
	return s.Current != nil
}

// clone copies s so callers cannot mutate the controller's slices
func (s State) clone() State {
	out := s
	if s.Current != nil {
		c := *s.Current
		out.Current = &c
	}
	if s.Hourly != nil {
		h := *s.Hourly
		h.Hours = slices.Clone(s.Hourly.Hours)
		out.Hourly = &h
	}
	out.Daily = slices.Clone(s.Daily)
	return out
}
