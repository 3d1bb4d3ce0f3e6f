package project

import (
	"github.com/fortuna/dugout/catalog"
	"github.com/fortuna/dugout/table"
)

// Extractor pulls one prefix or derived cell out of a row source. A nil
// return becomes the sentinel.
type Extractor func(row map[string]any) any

// Column pairs an output column name with its extractor. Required
// columns identify the row: when a required extractor misses, the row is
// dropped rather than emitted with a sentinel identity.
type Column struct {
	Name     string
	Extract  Extractor
	Required bool
}

// Spec declaratively describes one JSON-document-to-table projection.
type Spec struct {
	// Path locates the iterable of row sources. When GroupFilter or
	// TypeFilter is set, entries at Path are (group, type, splits)
	// wrappers and the matching entries' splits become the row sources.
	Path        []string
	GroupFilter string
	TypeFilter  string
	SplitsKey   string // defaults to "splits"

	// Rows, when set, overrides the Path walk entirely (nested shapes
	// like schedule dates or draft rounds).
	Rows func(doc map[string]any) []map[string]any

	// Expand, when set, maps one row source to several output rows
	// (roster fielding: one row per position).
	Expand func(row map[string]any) []map[string]any

	Prefix []Column

	// StatSource is the sub-path from a row source to its stat-code map
	// (default {"stat"}). Resolve overrides it when the stat map needs a
	// per-row search (roster entries carrying their own stats array).
	StatSource []string
	Resolve    func(row map[string]any) map[string]any

	ColumnList []string
	Derived    []Column

	SortColumn string
	SortDesc   bool
}

// Headers returns the exact output column order: prefix names, displayed
// stat codes, derived names.
func (s Spec) Headers(cat *catalog.Catalog) []string {
	headers := make([]string, 0, len(s.Prefix)+len(s.ColumnList)+len(s.Derived))
	for _, c := range s.Prefix {
		headers = append(headers, c.Name)
	}
	for _, code := range s.ColumnList {
		headers = append(headers, cat.Display(code))
	}
	for _, c := range s.Derived {
		headers = append(headers, c.Name)
	}
	return headers
}

// Project runs the spec against one decoded document. The result always
// carries the full header, even for zero rows. Missing fields become the
// sentinel; a malformed row source contributes sentinels, never an error.
func (s Spec) Project(doc map[string]any, cat *catalog.Catalog) (*table.Table, error) {
	out := EmptyTable(cat, s)
	if doc == nil {
		return out, nil
	}

	for _, row := range s.rowSources(doc) {
		rows := []map[string]any{row}
		if s.Expand != nil {
			rows = s.Expand(row)
		}
		for _, r := range rows {
			cells, ok := s.projectRow(r)
			if !ok {
				continue
			}
			if err := out.AppendRow(cells...); err != nil {
				return nil, err
			}
		}
	}

	if s.SortColumn != "" {
		out.SortBy(s.SortColumn, s.SortDesc)
	}
	return out, nil
}

func (s Spec) rowSources(doc map[string]any) []map[string]any {
	if s.Rows != nil {
		return s.Rows(doc)
	}

	entries := Slice(doc, s.Path...)
	var rows []map[string]any
	for _, e := range entries {
		entry, ok := e.(map[string]any)
		if !ok {
			continue
		}
		if s.GroupFilter == "" && s.TypeFilter == "" {
			rows = append(rows, entry)
			continue
		}
		if s.GroupFilter != "" && Str(entry, "group", "displayName") != s.GroupFilter {
			continue
		}
		if s.TypeFilter != "" && Str(entry, "type", "displayName") != s.TypeFilter {
			continue
		}
		splitsKey := s.SplitsKey
		if splitsKey == "" {
			splitsKey = "splits"
		}
		for _, sp := range Slice(entry, splitsKey) {
			if split, ok := sp.(map[string]any); ok {
				rows = append(rows, split)
			}
		}
	}
	return rows
}

func (s Spec) projectRow(row map[string]any) ([]any, bool) {
	cells := make([]any, 0, len(s.Prefix)+len(s.ColumnList)+len(s.Derived))

	for _, col := range s.Prefix {
		v := col.Extract(row)
		if v == nil {
			if col.Required {
				return nil, false
			}
			cells = append(cells, table.Sentinel)
			continue
		}
		cells = append(cells, NormalizeCell(v))
	}

	stats := s.statMap(row)
	for _, code := range s.ColumnList {
		if stats == nil {
			cells = append(cells, table.Sentinel)
			continue
		}
		cells = append(cells, NormalizeCell(stats[code]))
	}

	for _, col := range s.Derived {
		v := col.Extract(row)
		if v == nil {
			cells = append(cells, table.Sentinel)
			continue
		}
		cells = append(cells, NormalizeCell(v))
	}
	return cells, true
}

func (s Spec) statMap(row map[string]any) map[string]any {
	if s.Resolve != nil {
		return s.Resolve(row)
	}
	src := s.StatSource
	if len(src) == 0 {
		src = []string{"stat"}
	}
	return Map(row, src...)
}
