package weathercode

import "sort"

// Code represents a WMO weather code
type Code int

// Weather code constants
const (
	ClearSky                   Code = 0
	MainlyClear                Code = 1
	PartlyCloudy               Code = 2
	Overcast                   Code = 3
	Fog                        Code = 45
	DepositingRimeFog          Code = 48
	DrizzleLight               Code = 51
	DrizzleModerate            Code = 53
	DrizzleDense               Code = 55
	FreezingDrizzleLight       Code = 56
	FreezingDrizzleDense       Code = 57
	RainSlight                 Code = 61
	RainModerate               Code = 63
	RainHeavy                  Code = 65
	FreezingRainLight          Code = 66
	FreezingRainHeavy          Code = 67
	SnowFallSlight             Code = 71
	SnowFallModerate           Code = 73
	SnowFallHeavy              Code = 75
	SnowGrains                 Code = 77
	RainShowersSlight          Code = 80
	RainShowersModerate        Code = 81
	RainShowersViolent         Code = 82
	SnowShowersSlight          Code = 85
	SnowShowersHeavy           Code = 86
	Thunderstorm               Code = 95
	ThunderstormWithSlightHail Code = 96
	ThunderstormWithHeavyHail  Code = 99
)

const (
	unknownDescription = "Unknown"
	unknownIcon        = "❔"
)

// IconSpec is either a single icon or a day/night pair.
// Shared is used when the pair leaves a period empty.
type IconSpec struct {
	Shared string
	Day    string
	Night  string
}

// Single returns an icon that ignores the day flag
func Single(icon string) IconSpec {
	return IconSpec{Shared: icon}
}

// DayNight returns an icon that varies with the day flag
func DayNight(day, night string) IconSpec {
	return IconSpec{Day: day, Night: night}
}

// IsDayNight reports whether the icon varies between day and night
func (s IconSpec) IsDayNight() bool {
	return s.Day != "" || s.Night != ""
}

// Pick returns the icon for the given period
func (s IconSpec) Pick(isDay bool) string {
	if !s.IsDayNight() {
		return s.Shared
	}
	if isDay {
		if s.Day != "" {
			return s.Day
		}
		return s.Shared
	}
	if s.Night != "" {
		return s.Night
	}
	return s.Shared
}

// Entry is one row of the catalog
type Entry struct {
	Code        Code
	Description string
	Icon        IconSpec
}

// Info is the display text and icon resolved for a code
type Info struct {
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

var catalog = map[Code]Entry{
	ClearSky:                   {ClearSky, "Clear", DayNight("☀️", "🌙")},
	MainlyClear:                {MainlyClear, "Partly cloudy", DayNight("🌤️", "☁️")},
	PartlyCloudy:               {PartlyCloudy, "Cloudy", DayNight("⛅", "☁️")},
	Overcast:                   {Overcast, "Overcast", Single("☁️")},
	Fog:                        {Fog, "Fog", Single("🌫️")},
	DepositingRimeFog:          {DepositingRimeFog, "Fog", Single("🌫️")},
	DrizzleLight:               {DrizzleLight, "Light drizzle", Single("🌦️")},
	DrizzleModerate:            {DrizzleModerate, "Drizzle", Single("🌦️")},
	DrizzleDense:               {DrizzleDense, "Dense drizzle", Single("🌧️")},
	FreezingDrizzleLight:       {FreezingDrizzleLight, "Freezing drizzle", Single("🌧️")},
	FreezingDrizzleDense:       {FreezingDrizzleDense, "Freezing drizzle", Single("🌧️")},
	RainSlight:                 {RainSlight, "Rain", Single("🌧️")},
	RainModerate:               {RainModerate, "Rain", Single("🌧️")},
	RainHeavy:                  {RainHeavy, "Heavy rain", Single("🌧️")},
	FreezingRainLight:          {FreezingRainLight, "Freezing rain", Single("🌧️")},
	FreezingRainHeavy:          {FreezingRainHeavy, "Freezing rain", Single("🌧️")},
	SnowFallSlight:             {SnowFallSlight, "Snow", Single("🌨️")},
	SnowFallModerate:           {SnowFallModerate, "Snow", Single("🌨️")},
	SnowFallHeavy:              {SnowFallHeavy, "Heavy snow", Single("❄️")},
	SnowGrains:                 {SnowGrains, "Snow grains", Single("❄️")},
	RainShowersSlight:          {RainShowersSlight, "Rain showers", Single("🌦️")},
	RainShowersModerate:        {RainShowersModerate, "Rain showers", Single("🌧️")},
	RainShowersViolent:         {RainShowersViolent, "Heavy showers", Single("🌧️")},
	SnowShowersSlight:          {SnowShowersSlight, "Snow showers", Single("🌨️")},
	SnowShowersHeavy:           {SnowShowersHeavy, "Snow showers", Single("🌨️")},
	Thunderstorm:               {Thunderstorm, "Thunderstorm", Single("⛈️")},
	ThunderstormWithSlightHail: {ThunderstormWithSlightHail, "Thunderstorm + hail", Single("⛈️")},
	ThunderstormWithHeavyHail:  {ThunderstormWithHeavyHail, "Thunderstorm + hail", Single("⛈️")},
}

// Lookup returns the description and icon for a code.
// Codes missing from the catalog resolve to "Unknown".
func Lookup(code int, isDay bool) Info {
	entry, ok := catalog[Code(code)]
	if !ok {
		return Info{Description: unknownDescription, Icon: unknownIcon}
	}
	return Info{Description: entry.Description, Icon: entry.Icon.Pick(isDay)}
}

// Codes returns every catalog entry ordered by code
func Codes() []Entry {
	entries := make([]Entry, 0, len(catalog))
	for _, e := range catalog {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Code < entries[j].Code
	})
	return entries
}
