package storage

// Store is a durable string key/value store. It backs the
// recent-search list and the theme preference.
type Store interface {
	// Get returns the stored value for key; ok is false when the key
	// has never been written
	Get(key string) (value string, ok bool, err error)

	// Set writes value under key, replacing any previous value
	Set(key, value string) error

	// Close releases the underlying resources
	Close() error
}
