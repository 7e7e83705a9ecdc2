package presentation

import (
	"fmt"
	"math"
	"time"

	"medi-weather/internal/types"
	"medi-weather/internal/weather"
	"medi-weather/internal/weathercode"
)

const (
	nowLabel        = "Now"
	todayLabel      = "Today"
	maxHourlyItems  = 11
	maxDailyItems   = 7
	advisoryHour    = 18
	minBarWidth     = 8.0
	minWeekSpan     = 1.0
	missingReading  = "--"
	defaultAdvisory = "Weather changes expected over the next few hours."
)

// FormatTemperature rounds half away from zero and appends a degree sign
func FormatTemperature(v float64) string {
	return fmt.Sprintf("%d°", roundInt(v))
}

func roundInt(v float64) int {
	return int(math.Round(v))
}

// FormatCurrent builds the current conditions panel. High and low come from the first daily entry.
func FormatCurrent(place types.Place, snap *weather.Snapshot) CurrentView {
	info := weathercode.Lookup(snap.Current.WeatherCode, snap.Current.IsDay)

	view := CurrentView{
		DisplayName: place.DisplayName(),
		Temperature: FormatTemperature(snap.Current.Temperature),
		Icon:        info.Icon,
		Description: info.Description,
		Condition:   info.Icon + " " + info.Description,
		High:        "H: " + missingReading,
		Low:         "L: " + missingReading,
		IsDay:       snap.Current.IsDay,
	}

	if snap.Daily.Len() > 0 {
		view.High = "H: " + FormatTemperature(snap.Daily.TempMax[0])
		view.Low = "L: " + FormatTemperature(snap.Daily.TempMin[0])
	}

	return view
}

// FormatHourly builds the hourly strip: "Now" from current conditions followed by
// up to eleven hours starting at the first one after now.
func FormatHourly(snap *weather.Snapshot, now time.Time) HourlyView {
	nowInfo := weathercode.Lookup(snap.Current.WeatherCode, snap.Current.IsDay)

	hours := make([]HourView, 0, maxHourlyItems+1)
	hours = append(hours, HourView{
		Label:       nowLabel,
		Icon:        nowInfo.Icon,
		Description: nowInfo.Description,
		Temperature: FormatTemperature(snap.Current.Temperature),
	})

	h := snap.Hourly
	from := 0
	for i, t := range h.Times {
		if t.After(now) {
			from = i
			break
		}
	}
	to := min(from+maxHourlyItems, h.Len())

	for i := from; i < to; i++ {
		info := weathercode.Lookup(h.WeatherCodes[i], h.IsDay[i])
		hours = append(hours, HourView{
			Label:       h.Times[i].Format("15:04"),
			Icon:        info.Icon,
			Description: info.Description,
			Temperature: FormatTemperature(h.Temperatures[i]),
		})
	}

	return HourlyView{
		Hours:    hours,
		Advisory: advisory(h, now),
	}
}

// advisory describes the first 6PM hour that has not passed yet
func advisory(h weather.Hourly, now time.Time) string {
	for i, t := range h.Times {
		if t.Hour() == advisoryHour && !t.Before(now) {
			info := weathercode.Lookup(h.WeatherCodes[i], h.IsDay[i])
			return info.Description + " conditions expected around 6PM."
		}
	}
	return defaultAdvisory
}

// FormatDaily builds up to seven day rows with range bars scaled to the week's extremes
func FormatDaily(snap *weather.Snapshot) []DayView {
	d := snap.Daily
	n := min(d.Len(), maxDailyItems)
	if n == 0 {
		return []DayView{}
	}

	weekMin := minFloat(d.TempMin[:n])
	weekMax := maxFloat(d.TempMax[:n])
	span := math.Max(weekMax-weekMin, minWeekSpan)

	days := make([]DayView, 0, n)
	for i := 0; i < n; i++ {
		label := todayLabel
		if i > 0 {
			label = d.Dates[i].Format("Mon")
		}
		info := weathercode.Lookup(d.WeatherCodes[i], true)

		days = append(days, DayView{
			Label:        label,
			Icon:         info.Icon,
			Description:  info.Description,
			Min:          FormatTemperature(d.TempMin[i]),
			Max:          FormatTemperature(d.TempMax[i]),
			LeftPercent:  (d.TempMin[i] - weekMin) / span * 100,
			WidthPercent: math.Max((d.TempMax[i]-d.TempMin[i])/span*100, minBarWidth),
		})
	}

	return days
}

func minFloat(value []float64) float64 {
	minValue := value[0]
	for _, v := range value {
		if v < minValue {
			minValue = v
		}
	}
	return minValue
}

func maxFloat(value []float64) float64 {
	maxValue := value[0]
	for _, v := range value {
		if v > maxValue {
			maxValue = v
		}
	}
	return maxValue
}
