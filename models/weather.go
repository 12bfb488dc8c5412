package models

// CurrentWeather represents the current conditions for a city as
// reported by the weather provider
type CurrentWeather struct {
	City        string  `json:"city"`        // provider display name
	Lat         float64 `json:"lat"`         // latitude
	Lon         float64 `json:"lon"`         // longitude
	Temperature float64 `json:"temperature"` // in Celsius
	Humidity    float64 `json:"humidity"`    // percentage
	WindSpeed   float64 `json:"windSpeed"`   // in m/s
	Description string  `json:"description"` // short text description
	Icon        string  `json:"icon"`        // provider icon code, e.g. "10d"
}
