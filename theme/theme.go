// Package theme manages the light/dark preference. It is independent
// of the search pipeline.
package theme

import (
	"log/slog"
	"sync"

	"weather-lookup/storage"
)

// Theme is the UI color scheme preference
type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// storageKey is the durable key holding the preference
const storageKey = "weather-app-theme"

// Resolve picks the initial theme: a valid persisted value wins,
// otherwise the system preference decides
func Resolve(persisted string, systemPrefersDark bool) Theme {
	switch Theme(persisted) {
	case Light, Dark:
		return Theme(persisted)
	}
	if systemPrefersDark {
		return Dark
	}
	return Light
}

// Manager owns the current theme and its durable mirror
type Manager struct {
	mu      sync.Mutex
	kv      storage.Store
	current Theme
}

// NewManager restores the persisted preference, falling back to the
// system preference. A storage failure falls back the same way.
func NewManager(kv storage.Store, systemPrefersDark bool) *Manager {
	persisted, _, err := kv.Get(storageKey)
	if err != nil {
		slog.Warn("theme preference unavailable", "error", err)
		persisted = ""
	}
	return &Manager{
		kv:      kv,
		current: Resolve(persisted, systemPrefersDark),
	}
}

// Current returns the active theme
func (m *Manager) Current() Theme {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

// Toggle flips between light and dark and writes the choice through
func (m *Manager) Toggle() Theme {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current == Light {
		m.current = Dark
	} else {
		m.current = Light
	}
	if err := m.kv.Set(storageKey, string(m.current)); err != nil {
		slog.Error("persist theme", "error", err)
	}
	return m.current
}
