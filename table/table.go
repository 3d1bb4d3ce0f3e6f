// Package table holds the tabular result type every projection and
// reference-table read produces. A Table is a fixed, ordered column list
// plus rows of typed cells; a cell is an int64, float64, string, bool, or
// the missing-value sentinel.
package table

import (
	"fmt"
	"sort"
)

// Sentinel marks a value the upstream omitted. It is valid in a column of
// any type and callers treat it as "absent".
const Sentinel = "--"

// Table is a finite sequence of rows sharing one ordered column list.
type Table struct {
	cols []string
	rows [][]any
}

// New creates an empty table with the given column headers.
func New(cols ...string) *Table {
	c := make([]string, len(cols))
	copy(c, cols)
	return &Table{cols: c}
}

// Columns returns a copy of the ordered column headers.
func (t *Table) Columns() []string {
	c := make([]string, len(t.cols))
	copy(c, t.cols)
	return c
}

// Width returns the number of columns.
func (t *Table) Width() int { return len(t.cols) }

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.rows) }

// AppendRow adds one row. The cell count must match the table width.
func (t *Table) AppendRow(cells ...any) error {
	if len(cells) != len(t.cols) {
		return fmt.Errorf("row width %d does not match table width %d", len(cells), len(t.cols))
	}
	row := make([]any, len(cells))
	copy(row, cells)
	t.rows = append(t.rows, row)
	return nil
}

// Row returns a copy of row i.
func (t *Table) Row(i int) []any {
	row := make([]any, len(t.rows[i]))
	copy(row, t.rows[i])
	return row
}

// Cell returns the value at (row i, column name).
func (t *Table) Cell(i int, col string) (any, bool) {
	idx := t.colIndex(col)
	if idx < 0 || i < 0 || i >= len(t.rows) {
		return nil, false
	}
	return t.rows[i][idx], true
}

// Col returns a copy of the named column's cells, top to bottom.
func (t *Table) Col(name string) ([]any, bool) {
	idx := t.colIndex(name)
	if idx < 0 {
		return nil, false
	}
	out := make([]any, len(t.rows))
	for i, row := range t.rows {
		out[i] = row[idx]
	}
	return out, true
}

func (t *Table) colIndex(name string) int {
	for i, c := range t.cols {
		if c == name {
			return i
		}
	}
	return -1
}

// SortBy orders rows by the named column. The sort is stable; sentinel
// cells sort after every real value regardless of direction.
func (t *Table) SortBy(col string, desc bool) {
	idx := t.colIndex(col)
	if idx < 0 {
		return
	}
	sort.SliceStable(t.rows, func(i, j int) bool {
		less, ok := cellLess(t.rows[i][idx], t.rows[j][idx])
		if !ok {
			return false
		}
		if desc {
			return !less
		}
		return less
	})
}

// cellLess compares two cells of possibly mixed type. Returns ok=false
// when either side is the sentinel or the types are not comparable; such
// pairs keep their original order.
func cellLess(a, b any) (less, ok bool) {
	if a == Sentinel || b == Sentinel {
		return false, false
	}
	af, aok := toFloat(a)
	bf, bok := toFloat(b)
	if aok && bok {
		return af < bf, true
	}
	as, aok := a.(string)
	bs, bok := b.(string)
	if aok && bok {
		return as < bs, true
	}
	return false, false
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int64:
		return float64(n), true
	case int:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

// Filter returns a new table containing the rows keep reports true for.
func (t *Table) Filter(keep func(row []any) bool) *Table {
	out := New(t.cols...)
	for _, row := range t.rows {
		if keep(row) {
			out.AppendRow(row...)
		}
	}
	return out
}

// Append copies every row of other into t. Column lists must match.
func (t *Table) Append(other *Table) error {
	if len(other.cols) != len(t.cols) {
		return fmt.Errorf("column count mismatch: %d vs %d", len(other.cols), len(t.cols))
	}
	for i, c := range other.cols {
		if t.cols[i] != c {
			return fmt.Errorf("column %d mismatch: %q vs %q", i, t.cols[i], c)
		}
	}
	for _, row := range other.rows {
		t.AppendRow(row...)
	}
	return nil
}

// Equal reports whether two tables have identical headers and cells.
func (t *Table) Equal(other *Table) bool {
	if other == nil || len(t.cols) != len(other.cols) || len(t.rows) != len(other.rows) {
		return false
	}
	for i := range t.cols {
		if t.cols[i] != other.cols[i] {
			return false
		}
	}
	for i := range t.rows {
		for j := range t.rows[i] {
			if t.rows[i][j] != other.rows[i][j] {
				return false
			}
		}
	}
	return true
}
