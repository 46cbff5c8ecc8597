package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreLifecycle(t *testing.T) {
	store := NewStore(time.Hour)

	record := store.Create()
	require.NotEmpty(t, record.ID)

	got, ok := store.Get(record.ID)
	require.True(t, ok)
	assert.Zero(t, got.UserID)

	store.SetUser(record.ID, 42)
	store.SetLanguage(record.ID, "hi")
	got, ok = store.Get(record.ID)
	require.True(t, ok)
	assert.Equal(t, uint(42), got.UserID)
	assert.Equal(t, "hi", got.Language)

	store.ClearUser(record.ID)
	got, _ = store.Get(record.ID)
	assert.Zero(t, got.UserID)
	assert.Equal(t, "hi", got.Language, "logout keeps the language preference")

	store.Delete(record.ID)
	_, ok = store.Get(record.ID)
	assert.False(t, ok)
}

func TestStoreExpiry(t *testing.T) {
	store := NewStore(-time.Second)

	record := store.Create()
	_, ok := store.Get(record.ID)
	assert.False(t, ok, "expired sessions are not returned")
	assert.Zero(t, store.Purge(), "Get already dropped the expired session")
}

func TestStorePurge(t *testing.T) {
	store := NewStore(-time.Second)
	store.Create()
	store.Create()
	assert.Equal(t, 2, store.Purge())
}

func TestPreferencesAdapter(t *testing.T) {
	store := NewStore(time.Hour)
	record := store.Create()
	prefs := store.Preferences(record.ID)

	_, ok := prefs.Load(t.Context())
	assert.False(t, ok)

	require.NoError(t, prefs.Store(t.Context(), "or"))
	code, ok := prefs.Load(t.Context())
	require.True(t, ok)
	assert.Equal(t, "or", code)

	// A preference store bound to a dead session degrades silently.
	store.Delete(record.ID)
	require.NoError(t, prefs.Store(t.Context(), "hi"))
	_, ok = prefs.Load(t.Context())
	assert.False(t, ok)
}
