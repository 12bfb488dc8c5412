// Package search implements the search-and-fetch orchestration state
// machine: it sequences the current-weather and forecast calls for a
// submitted city, tracks the lifecycle of the latest submission, and
// feeds successful searches into the recent-search list.
package search

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"weather-lookup/datasource"
	"weather-lookup/models"
	"weather-lookup/recent"
)

// Status is the lifecycle of the most recent submitted search
type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusSuccess Status = "success"
	StatusFailed  Status = "failed"
)

// User-facing failure messages
const (
	msgNotFound = "City not found. Please check the spelling."
	msgNetwork  = "Unable to retrieve weather data. Please try again."
)

// defaultPanelHideDelay keeps the recent-search panel visible long
// enough after blur for a click on a panel entry to land
const defaultPanelHideDelay = 150 * time.Millisecond

// Snapshot is a read-only copy of the controller state handed to the
// presentation layer
type Snapshot struct {
	Query          string
	Status         Status
	CurrentWeather *models.CurrentWeather
	Forecast       []models.ForecastDay
	ErrorMessage   string
	RecentSearches []string
	PanelVisible   bool
}

// Config tunes the controller
type Config struct {
	// StrictForecast fails the whole submission when the forecast call
	// fails. The default keeps the current conditions and omits the
	// forecast.
	StrictForecast bool

	// PanelHideDelay overrides how long the recent-search panel stays
	// visible after the input loses focus
	PanelHideDelay time.Duration
}

// Controller owns the search state and drives the two-step
// current-then-forecast pipeline. All state mutation goes through its
// methods. Submissions carry a monotonically increasing sequence
// number; a completion whose number is no longer the latest is
// discarded, so a later submission always wins over an earlier
// in-flight one.
type Controller struct {
	provider datasource.WeatherProvider
	recents  *recent.Store
	cfg      Config
	log      *slog.Logger

	mu           sync.Mutex
	seq          uint64 // last issued submission number
	query        string
	status       Status
	current      *models.CurrentWeather
	forecast     []models.ForecastDay
	errorMessage string
	recentList   []string
	panelVisible bool

	panelHide *Deferred
}

// NewController creates a controller in the Idle state with the
// persisted recent-search list restored
func NewController(provider datasource.WeatherProvider, recents *recent.Store, cfg Config, log *slog.Logger) *Controller {
	if cfg.PanelHideDelay <= 0 {
		cfg.PanelHideDelay = defaultPanelHideDelay
	}

	c := &Controller{
		provider:   provider,
		recents:    recents,
		cfg:        cfg,
		log:        log,
		status:     StatusIdle,
		recentList: recents.Load(),
	}
	c.panelHide = NewDeferred(func() {
		c.mu.Lock()
		c.panelVisible = false
		c.mu.Unlock()
	})
	return c
}

// Submit runs the search pipeline for city and returns the resulting
// snapshot. Empty or whitespace-only input leaves the state untouched.
// If a newer submission supersedes this one while its requests are in
// flight, this one's results are discarded entirely.
func (c *Controller) Submit(ctx context.Context, city string) Snapshot {
	if strings.TrimSpace(city) == "" {
		return c.Snapshot()
	}

	c.panelHide.Cancel()

	c.mu.Lock()
	c.seq++
	seq := c.seq
	c.query = city
	c.status = StatusLoading
	c.current = nil
	c.forecast = nil
	c.errorMessage = ""
	c.panelVisible = false
	c.mu.Unlock()

	cur, err := c.provider.FetchCurrent(ctx, city)
	if err != nil {
		c.log.Warn("current weather fetch failed", "city", city, "error", err)
		msg := msgNetwork
		if datasource.KindOf(err) == datasource.ErrNotFound {
			msg = msgNotFound
		}
		c.fail(seq, msg)
		return c.Snapshot()
	}

	c.mu.Lock()
	if seq != c.seq {
		// A later submission took over while this one was in flight
		c.mu.Unlock()
		return c.Snapshot()
	}
	c.recentList = c.recents.Record(cur.City)
	c.mu.Unlock()

	forecast, err := c.provider.FetchForecast(ctx, cur.Lat, cur.Lon)
	if err != nil {
		c.log.Warn("forecast fetch failed", "city", cur.City, "error", err)
		if c.cfg.StrictForecast {
			c.fail(seq, msgNetwork)
			return c.Snapshot()
		}
		// Forecast is best-effort: keep the current conditions
		forecast = nil
	}

	c.mu.Lock()
	if seq == c.seq {
		c.current = &cur
		c.forecast = forecast
		c.status = StatusSuccess
	}
	c.mu.Unlock()

	return c.Snapshot()
}

// SelectRecent submits a city chosen from the recent-search panel. The
// query is set to the chosen name, same as typing it and submitting.
func (c *Controller) SelectRecent(ctx context.Context, city string) Snapshot {
	return c.Submit(ctx, city)
}

// FocusSearch shows the recent-search panel and cancels any pending
// deferred hide
func (c *Controller) FocusSearch() {
	c.panelHide.Cancel()
	c.mu.Lock()
	c.panelVisible = true
	c.mu.Unlock()
}

// BlurSearch hides the panel after a short delay so a click on a panel
// entry still lands. Re-focusing before the delay fires cancels the
// hide.
func (c *Controller) BlurSearch() {
	c.panelHide.Schedule(c.cfg.PanelHideDelay)
}

// Snapshot returns a read-only copy of the current state for rendering
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	snap := Snapshot{
		Query:        c.query,
		Status:       c.status,
		ErrorMessage: c.errorMessage,
		PanelVisible: c.panelVisible,
	}
	if c.current != nil {
		cur := *c.current
		snap.CurrentWeather = &cur
	}
	snap.Forecast = append([]models.ForecastDay(nil), c.forecast...)
	snap.RecentSearches = append([]string(nil), c.recentList...)
	return snap
}

// Close cancels any pending deferred work
func (c *Controller) Close() {
	c.panelHide.Cancel()
}

// fail records a terminal failure for the given submission unless a
// later submission has taken over
func (c *Controller) fail(seq uint64, msg string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if seq != c.seq {
		return
	}
	c.status = StatusFailed
	c.current = nil
	c.forecast = nil
	c.errorMessage = msg
}
