package refcache

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fortuna/dugout/table"
)

func venuesTable(t *testing.T, rows ...[]any) *table.Table {
	t.Helper()
	schema, ok := SchemaOf(Venues)
	require.True(t, ok)
	tab := table.New(schema.Columns...)
	for _, row := range rows {
		require.NoError(t, tab.AppendRow(row...))
	}
	return tab
}

func TestLoadMissingFile(t *testing.T) {
	c := New(t.TempDir())
	_, err := c.Load(Venues)
	require.Error(t, err)

	var missing *MissingError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, Venues, missing.Table)
}

func TestUpdateThenLoadAndLookup(t *testing.T) {
	c := New(t.TempDir())
	fresh := venuesTable(t,
		[]any{int64(680), "T-Mobile Park", "Seattle", "WA", true},
		[]any{int64(2395), "Oracle Park", "San Francisco", "CA", true},
	)
	require.NoError(t, c.Update(Venues, fresh))

	tab, err := c.Load(Venues)
	require.NoError(t, err)
	assert.Equal(t, 2, tab.Len())

	row, found, err := c.Lookup(Venues, int64(680))
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "T-Mobile Park", row[1])

	_, found, err = c.Lookup(Venues, int64(9999))
	require.NoError(t, err)
	assert.False(t, found)
}

func TestUpdateRejectsWrongSchema(t *testing.T) {
	c := New(t.TempDir())
	bad := table.New("mlbam", "name")
	bad.AppendRow(int64(1), "x")
	require.Error(t, c.Update(Venues, bad))
}

func TestUpdateRejectsDuplicateKey(t *testing.T) {
	c := New(t.TempDir())
	dup := venuesTable(t,
		[]any{int64(680), "A", "a", "aa", true},
		[]any{int64(680), "B", "b", "bb", false},
	)
	err := c.Update(Venues, dup)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate")
}

// A snapshot handed out before an update must not change under the
// reader.
func TestSnapshotIsolation(t *testing.T) {
	c := New(t.TempDir())
	require.NoError(t, c.Update(Venues, venuesTable(t,
		[]any{int64(1), "Old Park", "x", "xx", true},
	)))

	before, err := c.Load(Venues)
	require.NoError(t, err)

	require.NoError(t, c.Update(Venues, venuesTable(t,
		[]any{int64(1), "New Park", "y", "yy", true},
		[]any{int64(2), "Second Park", "z", "zz", false},
	)))

	assert.Equal(t, 1, before.Len())
	name, _ := before.Cell(0, "name")
	assert.Equal(t, "Old Park", name)

	after, err := c.Load(Venues)
	require.NoError(t, err)
	assert.Equal(t, 2, after.Len())
}

// An update racing the first load of a cold cache must win: once Update
// returns, every later Load sees the fresh content, never a stale
// snapshot stored late by the loader.
func TestUpdateVisibleAfterConcurrentFirstLoad(t *testing.T) {
	dir := t.TempDir()
	seed := New(dir)
	require.NoError(t, seed.Update(Venues, venuesTable(t,
		[]any{int64(1), "Old Park", "x", "xx", true},
	)))

	for i := 0; i < 20; i++ {
		cold := New(dir)
		done := make(chan struct{})
		go func() {
			defer close(done)
			cold.Load(Venues)
		}()
		require.NoError(t, cold.Update(Venues, venuesTable(t,
			[]any{int64(1), "New Park", "y", "yy", true},
		)))
		<-done

		tab, err := cold.Load(Venues)
		require.NoError(t, err)
		name, _ := tab.Cell(0, "name")
		require.Equal(t, "New Park", name)

		// Reset the file for the next round.
		require.NoError(t, seed.Update(Venues, venuesTable(t,
			[]any{int64(1), "Old Park", "x", "xx", true},
		)))
	}
}

func TestUpdatePersistsAcrossInstances(t *testing.T) {
	dir := t.TempDir()
	first := New(dir)
	require.NoError(t, first.Update(Venues, venuesTable(t,
		[]any{int64(31), "Wrigley Field", "Chicago", "IL", true},
	)))

	second := New(dir)
	row, found, err := second.Lookup(Venues, int64(31))
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "Wrigley Field", row[1])
}

func TestCompositeKeyLookup(t *testing.T) {
	c := New(t.TempDir())
	schema, _ := SchemaOf(YBYRecords)
	tab := table.New(schema.Columns...)
	require.NoError(t, tab.AppendRow(
		"2024", int64(136), "Seattle Mariners", "American League", "AL West",
		int64(85), int64(77), ".525", "8.0", "2",
	))
	require.NoError(t, c.Update(YBYRecords, tab))

	row, found, err := c.Lookup(YBYRecords, "2024", int64(136))
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, int64(85), row[5])
}
