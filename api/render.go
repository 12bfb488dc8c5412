package api

import (
	"math"
	"time"

	"weather-lookup/icons"
	"weather-lookup/search"
	"weather-lookup/theme"
)

// View types are what the widget renders from. All shaping of domain
// values for display (rounding, glyph lookup, weekday labels) happens
// here; the views carry no behavior.

// CurrentView is the current-conditions card
type CurrentView struct {
	City        string  `json:"city"`
	Temperature int     `json:"temperature"` // rounded °C
	Unit        string  `json:"unit"`
	Description string  `json:"description"`
	Humidity    int     `json:"humidity"` // rounded percentage
	WindSpeed   float64 `json:"windSpeed"`
	Glyph       string  `json:"glyph"`
}

// ForecastCardView is one card of the multi-day forecast strip
type ForecastCardView struct {
	Day         string `json:"day"` // short weekday label, e.g. "Mon"
	Temperature int    `json:"temperature"`
	Glyph       string `json:"glyph"`
}

// StateView is the full snapshot handed to the widget
type StateView struct {
	Query          string             `json:"query"`
	Status         string             `json:"status"`
	Current        *CurrentView       `json:"current,omitempty"`
	Forecast       []ForecastCardView `json:"forecast,omitempty"`
	Error          string             `json:"error,omitempty"`
	RecentSearches []string           `json:"recentSearches"`
	PanelVisible   bool               `json:"panelVisible"`
	Theme          string             `json:"theme"`
	Placeholder    string             `json:"placeholder,omitempty"`
}

// renderState shapes a controller snapshot and the active theme into
// the widget view
func renderState(snap search.Snapshot, th theme.Theme) StateView {
	view := StateView{
		Query:          snap.Query,
		Status:         string(snap.Status),
		Error:          snap.ErrorMessage,
		RecentSearches: snap.RecentSearches,
		PanelVisible:   snap.PanelVisible,
		Theme:          string(th),
	}
	if view.RecentSearches == nil {
		view.RecentSearches = []string{}
	}

	switch snap.Status {
	case search.StatusLoading:
		view.Placeholder = "Loading..."
	case search.StatusIdle:
		view.Placeholder = "Search for a city to see the weather."
	}

	if snap.CurrentWeather != nil {
		cw := snap.CurrentWeather
		view.Current = &CurrentView{
			City:        cw.City,
			Temperature: int(math.Round(cw.Temperature)),
			Unit:        "°C",
			Description: cw.Description,
			Humidity:    int(math.Round(cw.Humidity)),
			WindSpeed:   cw.WindSpeed,
			Glyph:       icons.Glyph(cw.Icon),
		}
	}

	for _, day := range snap.Forecast {
		view.Forecast = append(view.Forecast, ForecastCardView{
			Day:         weekdayLabel(day.Label),
			Temperature: int(math.Round(day.Temperature)),
			Glyph:       icons.Glyph(day.Icon),
		})
	}

	return view
}

// weekdayLabel converts the provider's timestamp label to a short
// weekday name; the raw label is returned when it does not parse
func weekdayLabel(label string) string {
	t, err := time.Parse("2006-01-02 15:04:05", label)
	if err != nil {
		return label
	}
	return t.Format("Mon")
}
