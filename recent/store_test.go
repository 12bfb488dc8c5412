package recent

import (
	"testing"

	"github.com/stretchr/testify/require"

	"weather-lookup/storage"
)

func TestRecordIdempotent(t *testing.T) {
	store := NewStore(storage.NewMemory())

	first := store.Record("Paris")
	second := store.Record("Paris")

	require.Equal(t, []string{"Paris"}, first)
	require.Equal(t, []string{"Paris"}, second)
}

func TestRecordMoveToFront(t *testing.T) {
	store := NewStore(storage.NewMemory())

	store.Record("A")
	store.Record("B")
	list := store.Record("C")
	require.Equal(t, []string{"C", "B", "A"}, list)

	list = store.Record("B")
	require.Equal(t, []string{"B", "C", "A"}, list)
}

func TestRecordBoundedGrowth(t *testing.T) {
	store := NewStore(storage.NewMemory())

	cities := []string{"London", "Paris", "Tokyo", "Oslo", "Madrid", "Rome"}
	var list []string
	for _, city := range cities {
		list = store.Record(city)
	}

	require.Len(t, list, 5)
	require.Equal(t, []string{"Rome", "Madrid", "Oslo", "Tokyo", "Paris"}, list)
	require.NotContains(t, list, "London")
}

func TestRecordCaseSensitive(t *testing.T) {
	store := NewStore(storage.NewMemory())

	store.Record("paris")
	list := store.Record("Paris")

	require.Equal(t, []string{"Paris", "paris"}, list)
}

func TestLoadRoundTrip(t *testing.T) {
	kv := storage.NewMemory()

	store := NewStore(kv)
	store.Record("London")
	store.Record("Paris")

	// A fresh store over the same backend simulates a restart
	restored := NewStore(kv).Load()
	require.Equal(t, []string{"Paris", "London"}, restored)
}

func TestLoadFailsSoft(t *testing.T) {
	t.Run("missing value", func(t *testing.T) {
		store := NewStore(storage.NewMemory())
		require.Empty(t, store.Load())
	})

	t.Run("corrupt value", func(t *testing.T) {
		kv := storage.NewMemory()
		require.NoError(t, kv.Set("recentSearches", "{not json"))

		store := NewStore(kv)
		require.Empty(t, store.Load())

		// A corrupt list does not poison later records
		require.Equal(t, []string{"Oslo"}, store.Record("Oslo"))
	})

	t.Run("oversized persisted list", func(t *testing.T) {
		kv := storage.NewMemory()
		require.NoError(t, kv.Set("recentSearches", `["A","B","C","D","E","F","G"]`))

		store := NewStore(kv)
		require.Equal(t, []string{"A", "B", "C", "D", "E"}, store.Load())
	})
}
