package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
)

// A small walkthrough of the lookup API: search a city, print the
// rendered state, list recent searches and toggle the theme. The
// service must already be running.
func main() {
	fmt.Println("Weather Lookup API Client Example")
	fmt.Println("=================================")

	baseURL := "http://localhost:8080"
	if len(os.Args) > 1 {
		baseURL = os.Args[1]
	}

	city := "London"
	if len(os.Args) > 2 {
		city = os.Args[2]
	}

	// Submit a search
	fmt.Printf("\nSearching for %q...\n", city)
	payload, _ := json.Marshal(map[string]string{"city": city})
	resp, err := http.Post(baseURL+"/api/search", "application/json", bytes.NewReader(payload))
	if err != nil {
		fmt.Printf("Error submitting search: %v\n", err)
		os.Exit(1)
	}
	state := decode(resp)

	fmt.Printf("Status: %v\n", state["status"])
	if errMsg, ok := state["error"].(string); ok && errMsg != "" {
		fmt.Printf("Error message: %s\n", errMsg)
	}
	if current, ok := state["current"].(map[string]interface{}); ok {
		fmt.Printf("Current weather in %v: %v%v, %v\n",
			current["city"], current["temperature"], current["unit"], current["description"])
	}
	if forecast, ok := state["forecast"].([]interface{}); ok {
		fmt.Printf("Forecast (%d days):\n", len(forecast))
		for _, entry := range forecast {
			day := entry.(map[string]interface{})
			fmt.Printf("  %v: %v°C (%v)\n", day["day"], day["temperature"], day["glyph"])
		}
	}

	// List recent searches
	fmt.Println("\nFetching recent searches...")
	resp, err = http.Get(baseURL + "/api/recent")
	if err != nil {
		fmt.Printf("Error fetching recent searches: %v\n", err)
		os.Exit(1)
	}
	recent := decode(resp)
	fmt.Printf("Recent searches: %v\n", recent["recentSearches"])

	// Toggle the theme
	fmt.Println("\nToggling theme...")
	resp, err = http.Post(baseURL+"/api/theme/toggle", "application/json", nil)
	if err != nil {
		fmt.Printf("Error toggling theme: %v\n", err)
		os.Exit(1)
	}
	toggled := decode(resp)
	fmt.Printf("Theme is now: %v\n", toggled["theme"])
}

func decode(resp *http.Response) map[string]interface{} {
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)

	var data map[string]interface{}
	json.Unmarshal(body, &data)
	return data
}
