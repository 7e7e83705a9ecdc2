package openmeteo

// GeocodingAPIResponse is the body of GET /v1/search.
// Results is omitted entirely when nothing matched.
type GeocodingAPIResponse struct {
	Results          []GeocodingResult `json:"results"`
	GenerationtimeMs float64           `json:"generationtime_ms"`
}

type GeocodingResult struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Elevation   float64 `json:"elevation"`
	FeatureCode string  `json:"feature_code"`
	CountryCode string  `json:"country_code"`
	Country     string  `json:"country"`
	Timezone    string  `json:"timezone"`
	Admin1      string  `json:"admin1"`
	Population  int     `json:"population"`
}

// ForecastAPIResponse is the body of GET /v1/forecast for the variables this service requests
type ForecastAPIResponse struct {
	Latitude             float64         `json:"latitude"`
	Longitude            float64         `json:"longitude"`
	GenerationtimeMs     float64         `json:"generationtime_ms"`
	UtcOffsetSeconds     int             `json:"utc_offset_seconds"`
	Timezone             string          `json:"timezone"`
	TimezoneAbbreviation string          `json:"timezone_abbreviation"`
	Elevation            float64         `json:"elevation"`
	CurrentWeather       *CurrentWeather `json:"current_weather"`
	HourlyUnits          HourlyUnits     `json:"hourly_units"`
	Hourly               Hourly          `json:"hourly"`
	DailyUnits           DailyUnits      `json:"daily_units"`
	Daily                Daily           `json:"daily"`
}

type CurrentWeather struct {
	Time          string  `json:"time"`
	Interval      int     `json:"interval"`
	Temperature   float64 `json:"temperature"`
	Windspeed     float64 `json:"windspeed"`
	Winddirection float64 `json:"winddirection"`
	IsDay         int     `json:"is_day"`
	Weathercode   int     `json:"weathercode"`
}

type HourlyUnits struct {
	Time          string `json:"time"`
	Temperature2M string `json:"temperature_2m"`
	Weathercode   string `json:"weathercode"`
	IsDay         string `json:"is_day"`
}

// Hourly holds parallel arrays indexed by Time
type Hourly struct {
	Time          []string  `json:"time"`
	Temperature2M []float64 `json:"temperature_2m"`
	Weathercode   []int     `json:"weathercode"`
	IsDay         []int     `json:"is_day"`
}

type DailyUnits struct {
	Time             string `json:"time"`
	Temperature2MMax string `json:"temperature_2m_max"`
	Temperature2MMin string `json:"temperature_2m_min"`
	Weathercode      string `json:"weathercode"`
}

// Daily holds parallel arrays indexed by Time
type Daily struct {
	Time             []string  `json:"time"`
	Temperature2MMax []float64 `json:"temperature_2m_max"`
	Temperature2MMin []float64 `json:"temperature_2m_min"`
	Weathercode      []int     `json:"weathercode"`
}
