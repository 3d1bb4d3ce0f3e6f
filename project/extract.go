// Package project turns decoded JSON documents into tables. A Spec
// describes where the rows live, which stat codes to pull, and what to
// prepend and append; the engine guarantees column order and fills every
// missing field with the sentinel instead of failing.
package project

import (
	"math"
	"strconv"

	"github.com/fortuna/dugout/table"
)

// Dig walks a key path through nested maps. Any miss at any level
// returns ok=false; it never panics on shape surprises.
func Dig(doc any, path ...string) (any, bool) {
	cur := doc
	for _, key := range path {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		cur, ok = m[key]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

// Map walks path and returns the map found there, or nil.
func Map(doc any, path ...string) map[string]any {
	v, ok := Dig(doc, path...)
	if !ok {
		return nil
	}
	m, _ := v.(map[string]any)
	return m
}

// Slice walks path and returns the array found there, or nil.
func Slice(doc any, path ...string) []any {
	v, ok := Dig(doc, path...)
	if !ok {
		return nil
	}
	s, _ := v.([]any)
	return s
}

// Str walks path and returns the string found there, or "".
func Str(doc any, path ...string) string {
	v, ok := Dig(doc, path...)
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}

// Int walks path and returns an integer value. JSON numbers arrive as
// float64; numeric strings are accepted too.
func Int(doc any, path ...string) (int64, bool) {
	v, ok := Dig(doc, path...)
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		return int64(n), true
	case string:
		if i, err := strconv.ParseInt(n, 10, 64); err == nil {
			return i, true
		}
	}
	return 0, false
}

// Float walks path and returns a float value.
func Float(doc any, path ...string) (float64, bool) {
	v, ok := Dig(doc, path...)
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		return n, true
	case string:
		if f, err := strconv.ParseFloat(n, 64); err == nil {
			return f, true
		}
	}
	return 0, false
}

// Bool walks path and returns the bool found there.
func Bool(doc any, path ...string) (bool, bool) {
	v, ok := Dig(doc, path...)
	if !ok {
		return false, false
	}
	b, ok := v.(bool)
	return b, ok
}

// Cell walks path and normalizes the value into a table cell: int64,
// float64, string, bool, or the sentinel when the path misses.
func Cell(doc any, path ...string) any {
	v, ok := Dig(doc, path...)
	if !ok {
		return table.Sentinel
	}
	return NormalizeCell(v)
}

// NormalizeCell coerces a decoded JSON value into a table cell type.
// Whole floats become int64 so counting stats stay integers; rate stats
// the upstream sends as strings (".300") stay strings.
func NormalizeCell(v any) any {
	switch c := v.(type) {
	case nil:
		return table.Sentinel
	case float64:
		if c == math.Trunc(c) && math.Abs(c) < 1<<53 {
			return int64(c)
		}
		return c
	case string:
		if c == "" {
			return table.Sentinel
		}
		return c
	case bool:
		return c
	default:
		return table.Sentinel
	}
}
