package models

// ForecastDay is the single representative forecast entry for one
// calendar day, taken from the provider's noon reading
type ForecastDay struct {
	Label       string  `json:"label"`       // provider timestamp label "YYYY-MM-DD HH:MM:SS"
	Temperature float64 `json:"temperature"` // in Celsius
	Description string  `json:"description"` // short text description
	Icon        string  `json:"icon"`        // provider icon code
}
