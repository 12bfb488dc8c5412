package datasource

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"weather-lookup/models"
)

// noonSuffix marks the forecast entry kept for each calendar day
const noonSuffix = "12:00:00"

// OpenWeatherMapProvider implements WeatherProvider against the
// OpenWeatherMap 2.5 API
type OpenWeatherMapProvider struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewOpenWeatherMapProvider creates a new OpenWeatherMap provider.
// Every request is bounded by timeout; expiry is reported as a network
// failure.
func NewOpenWeatherMapProvider(apiKey, baseURL string, timeout time.Duration) *OpenWeatherMapProvider {
	return &OpenWeatherMapProvider{
		apiKey:  apiKey,
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Name returns the provider name
func (p *OpenWeatherMapProvider) Name() string {
	return "OpenWeatherMap"
}

// FetchCurrent fetches current weather for a city by name
func (p *OpenWeatherMapProvider) FetchCurrent(ctx context.Context, city string) (models.CurrentWeather, error) {
	const op = "fetch current"

	// Build URL
	endpoint := fmt.Sprintf("%s/weather", p.baseURL)
	params := url.Values{}
	params.Add("q", city)
	params.Add("appid", p.apiKey)
	params.Add("units", "metric") // Use metric units

	body, status, err := p.get(ctx, endpoint, params)
	if err != nil {
		return models.CurrentWeather{}, &FetchError{Kind: ErrNetwork, Op: op, Err: err}
	}

	// The provider answers any unrecognized city with a non-success status
	if status != http.StatusOK {
		return models.CurrentWeather{}, &FetchError{
			Kind: ErrNotFound,
			Op:   op,
			Err:  fmt.Errorf("API error (status %d): %s", status, string(body)),
		}
	}

	// Parse response
	var response struct {
		Coord struct {
			Lat float64 `json:"lat"`
			Lon float64 `json:"lon"`
		} `json:"coord"`
		Main struct {
			Temp     float64 `json:"temp"`
			Humidity float64 `json:"humidity"`
		} `json:"main"`
		Wind struct {
			Speed float64 `json:"speed"`
		} `json:"wind"`
		Weather []struct {
			Description string `json:"description"`
			Icon        string `json:"icon"`
		} `json:"weather"`
		Name string `json:"name"`
	}

	if err := json.Unmarshal(body, &response); err != nil {
		return models.CurrentWeather{}, &FetchError{Kind: ErrMalformed, Op: op, Err: err}
	}

	if response.Name == "" || len(response.Weather) == 0 {
		return models.CurrentWeather{}, &FetchError{
			Kind: ErrMalformed,
			Op:   op,
			Err:  fmt.Errorf("response missing required fields"),
		}
	}

	return models.CurrentWeather{
		City:        response.Name,
		Lat:         response.Coord.Lat,
		Lon:         response.Coord.Lon,
		Temperature: response.Main.Temp,
		Humidity:    response.Main.Humidity,
		WindSpeed:   response.Wind.Speed,
		Description: response.Weather[0].Description,
		Icon:        response.Weather[0].Icon,
	}, nil
}

// FetchForecast fetches the multi-day forecast for a coordinate pair.
// The endpoint returns data in 3-hour steps; only the noon entry of
// each calendar day is kept, and days without one are omitted rather
// than synthesized.
func (p *OpenWeatherMapProvider) FetchForecast(ctx context.Context, lat, lon float64) ([]models.ForecastDay, error) {
	const op = "fetch forecast"

	// Build URL
	endpoint := fmt.Sprintf("%s/forecast", p.baseURL)
	params := url.Values{}
	params.Add("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Add("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	params.Add("appid", p.apiKey)
	params.Add("units", "metric") // Use metric units

	body, status, err := p.get(ctx, endpoint, params)
	if err != nil {
		return nil, &FetchError{Kind: ErrNetwork, Op: op, Err: err}
	}

	if status != http.StatusOK {
		return nil, &FetchError{
			Kind: ErrNetwork,
			Op:   op,
			Err:  fmt.Errorf("API error (status %d): %s", status, string(body)),
		}
	}

	// Parse response
	var response struct {
		List []struct {
			Main struct {
				Temp float64 `json:"temp"`
			} `json:"main"`
			Weather []struct {
				Description string `json:"description"`
				Icon        string `json:"icon"`
			} `json:"weather"`
			DtTxt string `json:"dt_txt"`
		} `json:"list"`
	}

	if err := json.Unmarshal(body, &response); err != nil {
		return nil, &FetchError{Kind: ErrMalformed, Op: op, Err: err}
	}

	if response.List == nil {
		return nil, &FetchError{
			Kind: ErrMalformed,
			Op:   op,
			Err:  fmt.Errorf("response missing forecast list"),
		}
	}

	var days []models.ForecastDay
	for _, item := range response.List {
		if !strings.HasSuffix(item.DtTxt, noonSuffix) {
			continue
		}

		// Get weather description and icon if available
		description := ""
		icon := ""
		if len(item.Weather) > 0 {
			description = item.Weather[0].Description
			icon = item.Weather[0].Icon
		}

		days = append(days, models.ForecastDay{
			Label:       item.DtTxt,
			Temperature: item.Main.Temp,
			Description: description,
			Icon:        icon,
		})
	}

	return days, nil
}

// get executes a GET request and returns the body and status code.
// Errors returned here are transport-level only.
func (p *OpenWeatherMapProvider) get(ctx context.Context, endpoint string, params url.Values) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read response body: %w", err)
	}

	return body, resp.StatusCode, nil
}

// Ensure OpenWeatherMapProvider implements the WeatherProvider interface
var _ WeatherProvider = (*OpenWeatherMapProvider)(nil)
