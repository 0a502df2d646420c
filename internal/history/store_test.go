package history

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cognitivecopilot/graphkit/internal/logging"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(":memory:", logging.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestSQLiteStore_AppendAndRecent(t *testing.T) {
	store := NewSQLiteStore(openTestDB(t))

	base := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	for i, q := range []string{"MATCH (n) RETURN count(n)", "MATCH (n) RETURN n LIMIT 10", "CREATE (t:TestNode)"} {
		require.NoError(t, store.Append(Entry{
			Query:      q,
			Status:     "ok",
			RowCount:   i,
			ExecutedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	entries, err := store.Recent(2)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	// Newest first
	assert.Equal(t, "CREATE (t:TestNode)", entries[0].Query)
	assert.Equal(t, "MATCH (n) RETURN n LIMIT 10", entries[1].Query)
}

func TestSQLiteStore_ErrorEntry(t *testing.T) {
	store := NewSQLiteStore(openTestDB(t))

	require.NoError(t, store.Append(Entry{
		Query:  "MATCH syntax error",
		Status: "error",
		Error:  "Invalid input",
	}))

	entries, err := store.Recent(10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "error", entries[0].Status)
	assert.Equal(t, "Invalid input", entries[0].Error)
	assert.NotEmpty(t, entries[0].ID)
	assert.False(t, entries[0].ExecutedAt.IsZero())
}

func TestSQLiteStore_RecentDefaultLimit(t *testing.T) {
	store := NewSQLiteStore(openTestDB(t))

	for i := 0; i < 25; i++ {
		require.NoError(t, store.Append(Entry{Query: "q", Status: "ok"}))
	}

	entries, err := store.Recent(0)
	require.NoError(t, err)
	assert.Len(t, entries, 20)
}

func TestMemoryStore_AppendAndRecent(t *testing.T) {
	store := NewMemoryStore()

	require.NoError(t, store.Append(Entry{Query: "first", Status: "ok"}))
	require.NoError(t, store.Append(Entry{Query: "second", Status: "ok"}))

	entries, err := store.Recent(10)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "second", entries[0].Query)
	assert.Equal(t, "first", entries[1].Query)
}

func TestMemoryStore_Bounded(t *testing.T) {
	store := NewMemoryStore()
	for i := 0; i < maxMemoryEntries+10; i++ {
		require.NoError(t, store.Append(Entry{Query: "q", Status: "ok"}))
	}

	store.mu.Lock()
	n := len(store.entries)
	store.mu.Unlock()
	assert.Equal(t, maxMemoryEntries, n)
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openTestDB(t)
	// Re-running migrations on an up-to-date database is a no-op.
	require.NoError(t, db.migrate())
}
