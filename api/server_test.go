package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"weather-lookup/datasource"
	"weather-lookup/recent"
	"weather-lookup/search"
	"weather-lookup/storage"
	"weather-lookup/theme"
)

// newTestServer wires a full stack against a fake provider endpoint:
// real client, controller, stores over in-memory storage.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	providerSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/weather":
			if r.URL.Query().Get("q") != "London" {
				w.WriteHeader(http.StatusNotFound)
				w.Write([]byte(`{"cod":"404","message":"city not found"}`))
				return
			}
			w.Write([]byte(`{
				"coord": {"lat": 51.5085, "lon": -0.1257},
				"weather": [{"description": "light rain", "icon": "10d"}],
				"main": {"temp": 17.37, "humidity": 72},
				"wind": {"speed": 4.12},
				"name": "London"
			}`))
		case "/forecast":
			w.Write([]byte(`{"list": [
				{"dt_txt": "2026-08-31 12:00:00", "main": {"temp": 18.2}, "weather": [{"description": "scattered clouds", "icon": "03d"}]},
				{"dt_txt": "2026-09-01 12:00:00", "main": {"temp": 21.0}, "weather": [{"description": "clear sky", "icon": "01d"}]}
			]}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(providerSrv.Close)

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	kv := storage.NewMemory()
	provider := datasource.NewOpenWeatherMapProvider("test-key", providerSrv.URL, 2*time.Second)
	controller := search.NewController(provider, recent.NewStore(kv), search.Config{}, log)
	t.Cleanup(controller.Close)
	themes := theme.NewManager(kv, false)

	server := httptest.NewServer(NewServer(controller, themes, 0, log).Handler())
	t.Cleanup(server.Close)
	return server
}

func getJSON(t *testing.T, url string, out interface{}) *http.Response {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	decodeBody(t, resp, out)
	return resp
}

func postJSON(t *testing.T, url, body string, out interface{}) *http.Response {
	t.Helper()
	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	decodeBody(t, resp, out)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
}

func TestSearchEndpointSuccess(t *testing.T) {
	server := newTestServer(t)

	var state StateView
	resp := postJSON(t, server.URL+"/api/search", `{"city": "London"}`, &state)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	require.Equal(t, "success", state.Status)
	require.NotNil(t, state.Current)
	require.Equal(t, "London", state.Current.City)
	require.Equal(t, 17, state.Current.Temperature)
	require.Equal(t, "rain", state.Current.Glyph)
	require.Len(t, state.Forecast, 2)
	require.Equal(t, "Mon", state.Forecast[0].Day)
	require.Equal(t, []string{"London"}, state.RecentSearches)
}

func TestSearchEndpointCityNotFound(t *testing.T) {
	server := newTestServer(t)

	var state StateView
	postJSON(t, server.URL+"/api/search", `{"city": "Atlantis"}`, &state)

	require.Equal(t, "failed", state.Status)
	require.Nil(t, state.Current)
	require.Equal(t, "City not found. Please check the spelling.", state.Error)
	require.Empty(t, state.RecentSearches)
}

func TestSearchEndpointBadRequest(t *testing.T) {
	server := newTestServer(t)

	resp, err := http.Post(server.URL+"/api/search", "application/json", strings.NewReader("{not json"))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSearchEndpointMethodNotAllowed(t *testing.T) {
	server := newTestServer(t)

	resp, err := http.Get(server.URL + "/api/search")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestStateEndpointStartsIdle(t *testing.T) {
	server := newTestServer(t)

	var state StateView
	getJSON(t, server.URL+"/api/state", &state)

	require.Equal(t, "idle", state.Status)
	require.Equal(t, "Search for a city to see the weather.", state.Placeholder)
	require.NotNil(t, state.RecentSearches)
}

func TestRecentEndpointAfterSearches(t *testing.T) {
	server := newTestServer(t)

	postJSON(t, server.URL+"/api/search", `{"city": "London"}`, nil)

	var recentResp struct {
		RecentSearches []string `json:"recentSearches"`
		Count          int      `json:"count"`
	}
	getJSON(t, server.URL+"/api/recent", &recentResp)

	require.Equal(t, 1, recentResp.Count)
	require.Equal(t, []string{"London"}, recentResp.RecentSearches)
}

func TestSelectRecentEndpoint(t *testing.T) {
	server := newTestServer(t)

	postJSON(t, server.URL+"/api/search", `{"city": "London"}`, nil)

	var state StateView
	postJSON(t, server.URL+"/api/search/recent", `{"city": "London"}`, &state)

	require.Equal(t, "success", state.Status)
	require.Equal(t, "London", state.Query)
	require.Equal(t, []string{"London"}, state.RecentSearches)
}

func TestFocusAndBlurEndpoints(t *testing.T) {
	server := newTestServer(t)

	var state StateView
	postJSON(t, server.URL+"/api/search/focus", "", &state)
	require.True(t, state.PanelVisible)

	postJSON(t, server.URL+"/api/search/blur", "", &state)
	// The hide is deferred, not immediate
	require.True(t, state.PanelVisible)
	require.Eventually(t, func() bool {
		resp, err := http.Get(server.URL + "/api/state")
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		var s StateView
		if err := json.NewDecoder(resp.Body).Decode(&s); err != nil {
			return false
		}
		return !s.PanelVisible
	}, time.Second, 20*time.Millisecond)
}

func TestThemeEndpoints(t *testing.T) {
	server := newTestServer(t)

	var current map[string]string
	getJSON(t, server.URL+"/api/theme", &current)
	require.Equal(t, "light", current["theme"])

	var toggled map[string]string
	postJSON(t, server.URL+"/api/theme/toggle", "", &toggled)
	require.Equal(t, "dark", toggled["theme"])

	getJSON(t, server.URL+"/api/theme", &current)
	require.Equal(t, "dark", current["theme"])
}

func TestHealthEndpoint(t *testing.T) {
	server := newTestServer(t)

	var health map[string]string
	resp := getJSON(t, server.URL+"/api/health", &health)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "ok", health["status"])
}
