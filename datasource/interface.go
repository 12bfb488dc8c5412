package datasource

import (
	"context"

	"weather-lookup/models"
)

// WeatherProvider is an interface for services that can fetch current
// weather conditions and a multi-day forecast
type WeatherProvider interface {
	// FetchCurrent fetches current weather for a city by name. On
	// success the result carries the coordinates needed for a
	// subsequent forecast fetch.
	FetchCurrent(ctx context.Context, city string) (models.CurrentWeather, error)

	// FetchForecast fetches one representative forecast entry per
	// calendar day for a coordinate pair
	FetchForecast(ctx context.Context, lat, lon float64) ([]models.ForecastDay, error)

	// Name returns the provider's name
	Name() string
}
