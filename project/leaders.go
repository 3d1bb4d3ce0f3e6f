package project

import (
	"github.com/fortuna/dugout/catalog"
	"github.com/fortuna/dugout/table"
)

// leaderSpec is the per-category projection shared by every leader
// table.
func leaderSpec(entry map[string]any) Spec {
	return Spec{
		Rows: func(map[string]any) []map[string]any {
			var rows []map[string]any
			for _, l := range Slice(entry, "leaders") {
				if leader, ok := l.(map[string]any); ok {
					rows = append(rows, leader)
				}
			}
			return rows
		},
		Prefix: []Column{
			{Name: "rank", Extract: func(row map[string]any) any {
				if n, ok := Int(row, "rank"); ok {
					return n
				}
				return nil
			}},
			{Name: "player", Required: true, Extract: func(row map[string]any) any {
				if s := Str(row, "person", "fullName"); s != "" {
					return s
				}
				return nil
			}},
			{Name: "value", Extract: func(row map[string]any) any {
				if v, ok := Dig(row, "value"); ok {
					return v
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
			{Name: "season", Extract: func(row map[string]any) any {
				if s := Str(row, "season"); s != "" {
					return s
				}
				return nil
			}},
			{Name: "gameType", Extract: func(row map[string]any) any {
				if s := Str(row, "gameType", "id"); s != "" {
					return s
				}
				return nil
			}},
		},
	}
}

// LeaderColumns is the fixed header of every leader-category table.
func LeaderColumns() []string {
	return []string{"rank", "player", "value", "team", "league", "season", "gameType"}
}

// Leaders groups a league-leaders document into one table per category.
func Leaders(doc map[string]any, cat *catalog.Catalog) (map[string]*table.Table, error) {
	out := make(map[string]*table.Table)
	for _, e := range Slice(doc, "leagueLeaders") {
		entry, ok := e.(map[string]any)
		if !ok {
			continue
		}
		category := Str(entry, "leaderCategory")
		if category == "" {
			continue
		}
		t, err := leaderSpec(entry).Project(doc, cat)
		if err != nil {
			return nil, err
		}
		out[category] = t
	}
	return out, nil
}
