// Package icons maps OpenWeatherMap icon codes to glyph names
// understood by the presentation layer.
package icons

var glyphs = map[string]string{
	"01d": "day-sunny",
	"01n": "night-clear",
	"02d": "day-cloudy",
	"02n": "night-cloudy",
	"03d": "cloud",
	"03n": "cloud",
	"04d": "cloudy",
	"04n": "cloudy",
	"09d": "showers",
	"09n": "night-showers",
	"10d": "rain",
	"10n": "night-rain",
	"11d": "thunderstorm",
	"11n": "night-thunderstorm",
	"13d": "snow",
	"13n": "night-snow",
	"50d": "fog",
	"50n": "night-fog",
}

// Glyph resolves an icon code, falling back to the clear-day glyph for
// unknown codes
func Glyph(code string) string {
	if g, ok := glyphs[code]; ok {
		return g
	}
	return "day-sunny"
}
