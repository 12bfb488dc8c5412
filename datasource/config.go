package datasource

import (
	"encoding/json"
	"os"
)

// Config represents the application configuration. The provider API
// key is deliberately not part of it; the key is supplied through the
// environment and must never be written to disk or logged.
type Config struct {
	OpenWeatherMap struct {
		BaseURL string `json:"baseURL"`
	} `json:"openWeatherMap"`

	// RequestTimeoutSeconds bounds each provider call. Expiry surfaces
	// as a network failure.
	RequestTimeoutSeconds int `json:"requestTimeoutSeconds"`

	// StrictForecast downgrades a submission to failed when the
	// forecast call fails. By default the current conditions are kept
	// and the forecast is omitted.
	StrictForecast bool `json:"strictForecast"`

	// StoragePath is the SQLite file holding the recent-search list and
	// the theme preference.
	StoragePath string `json:"storagePath"`

	// PreferDark is the system-level fallback used when no theme
	// preference has been persisted yet.
	PreferDark bool `json:"preferDark"`
}

// LoadConfig loads configuration from a JSON file
func LoadConfig(filename string) (*Config, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	config := DefaultConfig()
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(config); err != nil {
		return nil, err
	}

	return config, nil
}

// DefaultConfig creates a default configuration
func DefaultConfig() *Config {
	config := &Config{}
	config.OpenWeatherMap.BaseURL = "https://api.openweathermap.org/data/2.5"
	config.RequestTimeoutSeconds = 10
	config.StoragePath = "weather.db"
	return config
}
