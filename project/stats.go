package project

import (
	"fmt"

	"github.com/fortuna/dugout/catalog"
	"github.com/fortuna/dugout/table"
)

// StatSplits builds the generic stat-endpoint projection: entries under
// "stats" filtered to one (group, type) pair, one row per split.
func StatSplits(cat *catalog.Catalog, group catalog.Group, variant catalog.Variant, statType string, prefix []Column) (Spec, error) {
	cols, err := cat.Columns(group, variant)
	if err != nil {
		return Spec{}, err
	}
	return Spec{
		Path:        []string{"stats"},
		GroupFilter: string(group),
		TypeFilter:  statType,
		Prefix:      prefix,
		ColumnList:  cols,
	}, nil
}

// SeasonPrefix is the usual split identity for year-by-year stats.
func SeasonPrefix() []Column {
	return []Column{
		{Name: "season", Extract: func(row map[string]any) any {
			if s := Str(row, "season"); s != "" {
				return s
			}
			return nil
		}},
		{Name: "team", Extract: func(row map[string]any) any {
			if s := Str(row, "team", "name"); s != "" {
				return s
			}
			return nil
		}},
		{Name: "league", Extract: func(row map[string]any) any {
			if s := Str(row, "league", "name"); s != "" {
				return s
			}
			return nil
		}},
	}
}

// PlayerPrefix is the per-player identity used by roster projections.
func PlayerPrefix() []Column {
	return []Column{
		{Name: "status", Extract: func(row map[string]any) any {
			if s := Str(row, "status", "description"); s != "" {
				return s
			}
			return nil
		}},
		{Name: "mlbam", Required: true, Extract: func(row map[string]any) any {
			if id, ok := Int(row, "person", "id"); ok {
				return id
			}
			return nil
		}},
		{Name: "playerName", Extract: func(row map[string]any) any {
			if s := Str(row, "person", "fullName"); s != "" {
				return s
			}
			return nil
		}},
		{Name: "primaryPosition", Extract: func(row map[string]any) any {
			if s := Str(row, "person", "primaryPosition", "abbreviation"); s != "" {
				return s
			}
			return nil
		}},
	}
}

// rosterRows walks the roster array of a hydrated roster document.
func rosterRows(doc map[string]any) []map[string]any {
	var rows []map[string]any
	for _, e := range Slice(doc, "roster") {
		if entry, ok := e.(map[string]any); ok {
			rows = append(rows, entry)
		}
	}
	return rows
}

// playerStatEntry finds the (group, type) stats entry inside one roster
// player's hydrated stats array.
func playerStatEntry(row map[string]any, group catalog.Group, statType string) map[string]any {
	for _, e := range Slice(row, "person", "stats") {
		entry, ok := e.(map[string]any)
		if !ok {
			continue
		}
		if Str(entry, "group", "displayName") != string(group) {
			continue
		}
		if statType != "" && Str(entry, "type", "displayName") != statType {
			continue
		}
		return entry
	}
	return nil
}

// RosterStats projects per-player stats out of a hydrated roster: one
// row per player, stats resolved from that player's own stats array.
func RosterStats(cat *catalog.Catalog, group catalog.Group, variant catalog.Variant, statType string) (Spec, error) {
	cols, err := cat.Columns(group, variant)
	if err != nil {
		return Spec{}, err
	}
	return Spec{
		Rows:       rosterRows,
		Prefix:     PlayerPrefix(),
		ColumnList: cols,
		Resolve: func(row map[string]any) map[string]any {
			entry := playerStatEntry(row, group, statType)
			if entry == nil {
				return nil
			}
			splits := Slice(entry, "splits")
			if len(splits) == 0 {
				return nil
			}
			split, _ := splits[0].(map[string]any)
			return Map(split, "stat")
		},
	}, nil
}

// RosterFielding projects the fielding specialization: one row per
// (player, position). The split is merged into the row under "split";
// the position column marks the player's primary position with a leading
// asterisk.
func RosterFielding(cat *catalog.Catalog, statType string) (Spec, error) {
	cols, err := cat.Columns(catalog.GroupFielding, catalog.VariantStandard)
	if err != nil {
		return Spec{}, err
	}
	prefix := PlayerPrefix()
	prefix = append(prefix, Column{
		Name: "position",
		Extract: func(row map[string]any) any {
			pos := Str(row, "split", "stat", "position", "abbreviation")
			if pos == "" {
				pos = Str(row, "split", "position", "abbreviation")
			}
			if pos == "" {
				return nil
			}
			if pos == Str(row, "person", "primaryPosition", "abbreviation") {
				return "*" + pos
			}
			return pos
		},
	})
	return Spec{
		Rows: func(doc map[string]any) []map[string]any {
			var rows []map[string]any
			for _, player := range rosterRows(doc) {
				entry := playerStatEntry(player, catalog.GroupFielding, statType)
				if entry == nil {
					continue
				}
				for _, sp := range Slice(entry, "splits") {
					split, ok := sp.(map[string]any)
					if !ok {
						continue
					}
					row := make(map[string]any, len(player)+1)
					for k, v := range player {
						row[k] = v
					}
					row["split"] = split
					rows = append(rows, row)
				}
			}
			return rows
		},
		Prefix:     prefix,
		ColumnList: cols,
		Resolve: func(row map[string]any) map[string]any {
			return Map(row, "split", "stat")
		},
	}, nil
}

// TeamStats projects a team-level stats document (one row per split)
// with the team and season as identity.
func TeamStats(cat *catalog.Catalog, group catalog.Group, variant catalog.Variant, statType string) (Spec, error) {
	prefix := []Column{
		{Name: "season", Extract: func(row map[string]any) any {
			if s := Str(row, "season"); s != "" {
				return s
			}
			return nil
		}},
		{Name: "gameType", Extract: func(row map[string]any) any {
			if s := Str(row, "gameType", "id"); s != "" {
				return cat.GameType(s)
			}
			return nil
		}},
	}
	return StatSplits(cat, group, variant, statType, prefix)
}

// validateDisplayInjective is used by tests and construction checks: a
// column list whose displayed headers collide cannot produce a legal
// table.
func validateDisplayInjective(cat *catalog.Catalog, cols []string) error {
	seen := make(map[string]string, len(cols))
	for _, code := range cols {
		name := cat.Display(code)
		if prev, ok := seen[name]; ok {
			return fmt.Errorf("display %q maps from both %q and %q", name, prev, code)
		}
		seen[name] = code
	}
	return nil
}

// EmptyTable returns the zero-row table a composite hands back when a
// leaf failed: correct header, no rows.
func EmptyTable(cat *catalog.Catalog, s Spec) *table.Table {
	return table.New(s.Headers(cat)...)
}
