package refcache

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/fortuna/dugout/table"
)

// MissingError reports an absent or unreadable reference file. It is
// fatal to the calling composite: reference data cannot be substituted.
type MissingError struct {
	Table Table
	Path  string
	Err   error
}

func (e *MissingError) Error() string {
	return fmt.Sprintf("reference table %s unavailable at %s: %v", e.Table, e.Path, e.Err)
}

func (e *MissingError) Unwrap() error { return e.Err }

// snapshot is one immutable view of a table: the rows plus a primary-key
// index. Readers always see a whole snapshot, never a partial one.
type snapshot struct {
	tab   *table.Table
	index map[string]int
}

type entry struct {
	snap     atomic.Pointer[snapshot]
	loadMu   sync.Mutex
	updateMu sync.Mutex
}

// Cache serves the reference tables from a directory of CSV files,
// loading each lazily on first read and swapping snapshots atomically on
// update.
type Cache struct {
	dir     string
	mu      sync.Mutex
	entries map[Table]*entry
}

// New creates a cache rooted at dir. No files are read until first use.
func New(dir string) *Cache {
	return &Cache{dir: dir, entries: make(map[Table]*entry)}
}

// Dir returns the cache directory.
func (c *Cache) Dir() string { return c.dir }

// Path returns the on-disk location of a reference table's file.
func (c *Cache) Path(t Table) (string, error) {
	schema, ok := SchemaOf(t)
	if !ok {
		return "", fmt.Errorf("refcache: unknown table %q", t)
	}
	return filepath.Join(c.dir, schema.File), nil
}

func (c *Cache) entry(t Table) *entry {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[t]
	if !ok {
		e = &entry{}
		c.entries[t] = e
	}
	return e
}

// Load returns the current snapshot of a reference table, reading it
// from disk on first use. The returned table must be treated as
// read-only; a later Update leaves it untouched (snapshot isolation).
func (c *Cache) Load(t Table) (*table.Table, error) {
	snap, err := c.snapshot(t)
	if err != nil {
		return nil, err
	}
	return snap.tab, nil
}

// Lookup finds the row for a primary key. Key parts are given in the
// schema's KeyCols order.
func (c *Cache) Lookup(t Table, keyParts ...any) ([]any, bool, error) {
	snap, err := c.snapshot(t)
	if err != nil {
		return nil, false, err
	}
	i, ok := snap.index[joinKey(keyParts)]
	if !ok {
		return nil, false, nil
	}
	return snap.tab.Row(i), true, nil
}

func (c *Cache) snapshot(t Table) (*snapshot, error) {
	e := c.entry(t)
	if snap := e.snap.Load(); snap != nil {
		return snap, nil
	}

	e.loadMu.Lock()
	defer e.loadMu.Unlock()
	if snap := e.snap.Load(); snap != nil {
		return snap, nil
	}

	schema, ok := SchemaOf(t)
	if !ok {
		return nil, fmt.Errorf("refcache: unknown table %q", t)
	}
	path := filepath.Join(c.dir, schema.File)
	tab, err := table.ReadFile(path)
	if err != nil {
		return nil, &MissingError{Table: t, Path: path, Err: err}
	}
	snap, err := buildSnapshot(t, schema, tab)
	if err != nil {
		return nil, &MissingError{Table: t, Path: path, Err: err}
	}
	e.snap.Store(snap)
	return snap, nil
}

// Update validates fresh against the table's schema, writes it to disk
// via temp-file-and-rename, and swaps the in-memory snapshot. On failure
// the previous file and snapshot remain. Concurrent updates on the same
// table are serialized; distinct tables update in parallel.
func (c *Cache) Update(t Table, fresh *table.Table) error {
	schema, ok := SchemaOf(t)
	if !ok {
		return fmt.Errorf("refcache: unknown table %q", t)
	}
	snap, err := buildSnapshot(t, schema, fresh)
	if err != nil {
		return err
	}

	e := c.entry(t)
	e.updateMu.Lock()
	defer e.updateMu.Unlock()

	// Also hold the load lock for the write and swap: a concurrent first
	// load otherwise reads the old file and stores that stale snapshot
	// after ours.
	e.loadMu.Lock()
	defer e.loadMu.Unlock()

	path := filepath.Join(c.dir, schema.File)
	if err := fresh.WriteFile(path); err != nil {
		return fmt.Errorf("refcache: update %s: %w", t, err)
	}
	e.snap.Store(snap)
	return nil
}

func buildSnapshot(t Table, schema Schema, tab *table.Table) (*snapshot, error) {
	cols := tab.Columns()
	if len(cols) != len(schema.Columns) {
		return nil, fmt.Errorf("table %s has %d columns, schema wants %d", t, len(cols), len(schema.Columns))
	}
	for i, want := range schema.Columns {
		if cols[i] != want {
			return nil, fmt.Errorf("table %s column %d is %q, schema wants %q", t, i, cols[i], want)
		}
	}

	keyIdx := make([]int, len(schema.KeyCols))
	for i, kc := range schema.KeyCols {
		found := -1
		for j, col := range cols {
			if col == kc {
				found = j
				break
			}
		}
		if found < 0 {
			return nil, fmt.Errorf("table %s missing key column %q", t, kc)
		}
		keyIdx[i] = found
	}

	index := make(map[string]int, tab.Len())
	keyParts := make([]any, len(keyIdx))
	for i := 0; i < tab.Len(); i++ {
		row := tab.Row(i)
		for j, idx := range keyIdx {
			keyParts[j] = row[idx]
		}
		key := joinKey(keyParts)
		if _, dup := index[key]; dup {
			return nil, fmt.Errorf("table %s has duplicate primary key %q", t, key)
		}
		index[key] = i
	}
	return &snapshot{tab: tab, index: index}, nil
}

func joinKey(parts []any) string {
	strs := make([]string, len(parts))
	for i, p := range parts {
		strs[i] = fmt.Sprintf("%v", p)
	}
	return strings.Join(strs, "|")
}
