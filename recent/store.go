// Package recent maintains the bounded, deduplicated, most-recent-first
// list of searched city names and its durable mirror.
package recent

import (
	"encoding/json"
	"log/slog"

	"weather-lookup/storage"
)

// storageKey is the durable key holding the JSON array of city names
const storageKey = "recentSearches"

// maxEntries caps the list length
const maxEntries = 5

// Store keeps the recent-search list synchronized with durable storage.
// The durable copy is authoritative; every mutation writes through.
type Store struct {
	kv storage.Store
}

// NewStore creates a store over the given key/value backend
func NewStore(kv storage.Store) *Store {
	return &Store{kv: kv}
}

// Load restores the persisted list. A missing, unreadable or corrupt
// value yields an empty list, never an error.
func (s *Store) Load() []string {
	raw, ok, err := s.kv.Get(storageKey)
	if err != nil {
		slog.Warn("recent searches unavailable, starting empty", "error", err)
		return nil
	}
	if !ok {
		return nil
	}

	var list []string
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		slog.Warn("recent searches corrupt, starting empty", "error", err)
		return nil
	}

	if len(list) > maxEntries {
		list = list[:maxEntries]
	}
	return list
}

// Record inserts city at the front, removes any earlier occurrence of
// the same name, truncates to the cap, writes the result through and
// returns it. Recording the same city twice in a row leaves the list
// unchanged.
func (s *Store) Record(city string) []string {
	prev := s.Load()

	list := make([]string, 0, len(prev)+1)
	list = append(list, city)
	for _, c := range prev {
		if c != city {
			list = append(list, c)
		}
	}
	if len(list) > maxEntries {
		list = list[:maxEntries]
	}

	raw, err := json.Marshal(list)
	if err != nil {
		slog.Error("encode recent searches", "error", err)
		return list
	}
	if err := s.kv.Set(storageKey, string(raw)); err != nil {
		slog.Error("persist recent searches", "error", err)
	}

	return list
}
