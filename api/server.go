// Package api is the HTTP presentation boundary: it renders the search
// controller's snapshot for the widget and forwards user events
// (submit, recent-search selection, focus/blur, theme toggle) back into
// the core. It holds no state of its own.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"weather-lookup/search"
	"weather-lookup/theme"
)

// Server exposes the search controller and theme manager over HTTP
type Server struct {
	controller *search.Controller
	themes     *theme.Manager
	server     *http.Server
	log        *slog.Logger
}

// NewServer creates a new API server
func NewServer(controller *search.Controller, themes *theme.Manager, port int, log *slog.Logger) *Server {
	mux := http.NewServeMux()

	s := &Server{
		controller: controller,
		themes:     themes,
		log:        log,
		server: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}

	// State snapshot for rendering
	mux.HandleFunc("/api/state", s.handleGetState)

	// User events
	mux.HandleFunc("/api/search", s.handleSearch)
	mux.HandleFunc("/api/search/recent", s.handleSelectRecent)
	mux.HandleFunc("/api/search/focus", s.handleFocus)
	mux.HandleFunc("/api/search/blur", s.handleBlur)

	// Recent searches and theme
	mux.HandleFunc("/api/recent", s.handleGetRecent)
	mux.HandleFunc("/api/theme", s.handleGetTheme)
	mux.HandleFunc("/api/theme/toggle", s.handleToggleTheme)

	// Health check
	mux.HandleFunc("/api/health", s.handleHealthCheck)

	return s
}

// Start begins the API server; it blocks until the server stops
func (s *Server) Start() error {
	s.log.Info("starting API server", "addr", s.server.Addr)
	return s.server.ListenAndServe()
}

// Shutdown stops the server gracefully
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// Handler returns the route table; used by tests
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

type searchRequest struct {
	City string `json:"city"`
}

// handleGetState returns the rendered snapshot of the current state
func (s *Server) handleGetState(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	s.writeJSON(w, http.StatusOK, renderState(s.controller.Snapshot(), s.themes.Current()))
}

// handleSearch submits a city name and returns the resulting state
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": "invalid request body",
		})
		return
	}

	snap := s.controller.Submit(r.Context(), req.City)
	s.writeJSON(w, http.StatusOK, renderState(snap, s.themes.Current()))
}

// handleSelectRecent submits a city chosen from the recent-search panel
func (s *Server) handleSelectRecent(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": "invalid request body",
		})
		return
	}

	snap := s.controller.SelectRecent(r.Context(), req.City)
	s.writeJSON(w, http.StatusOK, renderState(snap, s.themes.Current()))
}

// handleFocus shows the recent-search panel
func (s *Server) handleFocus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	s.controller.FocusSearch()
	s.writeJSON(w, http.StatusOK, renderState(s.controller.Snapshot(), s.themes.Current()))
}

// handleBlur schedules the recent-search panel to hide
func (s *Server) handleBlur(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	s.controller.BlurSearch()
	s.writeJSON(w, http.StatusOK, renderState(s.controller.Snapshot(), s.themes.Current()))
}

// handleGetRecent returns the recent-search list
func (s *Server) handleGetRecent(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	list := s.controller.Snapshot().RecentSearches
	if list == nil {
		list = []string{}
	}
	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"recentSearches": list,
		"count":          len(list),
	})
}

// handleGetTheme returns the active theme
func (s *Server) handleGetTheme(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]string{
		"theme": string(s.themes.Current()),
	})
}

// handleToggleTheme flips the theme and returns the new value
func (s *Server) handleToggleTheme(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]string{
		"theme": string(s.themes.Toggle()),
	})
}

// handleHealthCheck provides a simple health check endpoint
func (s *Server) handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"status":    "ok",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// writeJSON encodes payload with the given status code
func (s *Server) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.log.Error("encode response", "error", err)
	}
}
