// Package catalog is the process-wide registry of stat codes, display
// names, ordered column lists, and the small enumerations (leagues,
// divisions, positions, game types, ordinals) every projection joins
// against. It is built once from static tables and never touches the
// network or disk.
package catalog

import "fmt"

// Group is a stat group as the upstream service names it.
type Group string

const (
	GroupHitting  Group = "hitting"
	GroupPitching Group = "pitching"
	GroupFielding Group = "fielding"
	GroupCatching Group = "catching"
)

// Variant selects the standard or advanced column list for a group.
// Fielding has only a standard list.
type Variant string

const (
	VariantStandard Variant = "standard"
	VariantAdvanced Variant = "advanced"
)

type slot struct {
	group   Group
	variant Variant
}

// Catalog holds the static stat and enumeration tables.
type Catalog struct {
	columns map[slot][]string
	display map[string]string
}

// New builds the catalog from its compile-time tables.
func New() *Catalog {
	c := &Catalog{
		columns: map[slot][]string{
			{GroupHitting, VariantStandard}:  hittingStandard,
			{GroupHitting, VariantAdvanced}:  hittingAdvanced,
			{GroupPitching, VariantStandard}: pitchingStandard,
			{GroupPitching, VariantAdvanced}: pitchingAdvanced,
			{GroupFielding, VariantStandard}: fieldingStandard,
			{GroupCatching, VariantStandard}: catchingStandard,
			{GroupCatching, VariantAdvanced}: catchingAdvanced,
		},
		display: displayNames,
	}
	return c
}

// Columns returns the ordered stat-code list for (group, variant). This
// list is the only source of truth for the width and order of tables the
// projection engine produces for that slot.
func (c *Catalog) Columns(group Group, variant Variant) ([]string, error) {
	cols, ok := c.columns[slot{group, variant}]
	if !ok {
		return nil, fmt.Errorf("catalog: unknown column slot (%s, %s)", group, variant)
	}
	out := make([]string, len(cols))
	copy(out, cols)
	return out, nil
}

// Display maps a stat code to its short column header. Unmapped codes
// fall back to the code itself, so Display is total.
func (c *Catalog) Display(code string) string {
	if name, ok := c.display[code]; ok {
		return name
	}
	return code
}

// Known reports whether code is part of the (group, variant) column list.
func (c *Catalog) Known(group Group, variant Variant, code string) bool {
	cols, ok := c.columns[slot{group, variant}]
	if !ok {
		return false
	}
	for _, col := range cols {
		if col == code {
			return true
		}
	}
	return false
}
