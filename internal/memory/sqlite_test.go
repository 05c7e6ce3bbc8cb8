package memory

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMemory(t *testing.T) *SQLiteMemory {
	t.Helper()
	mem, err := OpenSQLite(filepath.Join(t.TempDir(), "memory.db"))
	require.NoError(t, err)
	t.Cleanup(func() { mem.Close() })
	return mem
}

// TestAddAndCount tests basic persistence
func TestAddAndCount(t *testing.T) {
	mem := newTestMemory(t)

	count, err := mem.Count()
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	require.NoError(t, mem.Add("first chunk"))
	require.NoError(t, mem.Add("second chunk"))

	count, err = mem.Count()
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

// TestListPreservesInsertionOrder tests ordered retrieval
func TestListPreservesInsertionOrder(t *testing.T) {
	mem := newTestMemory(t)

	entries := []string{"alpha", "beta", "gamma"}
	for _, e := range entries {
		require.NoError(t, mem.Add(e))
	}

	got, err := mem.List()
	require.NoError(t, err)
	assert.Equal(t, entries, got)
}

// TestReopenKeepsEntries tests that the database survives reopening
func TestReopenKeepsEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "memory.db")

	mem, err := OpenSQLite(path)
	require.NoError(t, err)
	require.NoError(t, mem.Add("persisted"))
	require.NoError(t, mem.Close())

	reopened, err := OpenSQLite(path)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"persisted"}, got)
}
