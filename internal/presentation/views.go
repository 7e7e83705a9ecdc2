package presentation

// CurrentView is the current conditions panel
type CurrentView struct {
	DisplayName string `json:"displayName"`
	Temperature string `json:"temperature"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
	Condition   string `json:"condition"`
	High        string `json:"high"`
	Low         string `json:"low"`
	IsDay       bool   `json:"isDay"`
}

// HourView is one cell of the hourly strip
type HourView struct {
	Label       string `json:"label"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
	Temperature string `json:"temperature"`
}

// HourlyView is the hourly strip plus its advisory line
type HourlyView struct {
	Hours    []HourView `json:"hours"`
	Advisory string     `json:"advisory"`
}

// DayView is one row of the daily list.
// LeftPercent and WidthPercent position the range bar on a track spanning the week.
type DayView struct {
	Label        string  `json:"label"`
	Icon         string  `json:"icon"`
	Description  string  `json:"description"`
	Min          string  `json:"min"`
	Max          string  `json:"max"`
	LeftPercent  float64 `json:"leftPercent"`
	WidthPercent float64 `json:"widthPercent"`
}
