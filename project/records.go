package project

import (
	"strconv"

	"github.com/fortuna/dugout/catalog"
)

// splitCutoffSeason: split records before the modern era are unreliable
// upstream, so every split column is forced to the sentinel for seasons
// before 1901.
const splitCutoffSeason = 1901

// recordRows flattens a standings document's records[].teamRecords[]
// into one row per (season, team).
func recordRows(doc map[string]any) []map[string]any {
	var rows []map[string]any
	for _, r := range Slice(doc, "records") {
		rec, ok := r.(map[string]any)
		if !ok {
			continue
		}
		for _, t := range Slice(rec, "teamRecords") {
			tr, ok := t.(map[string]any)
			if !ok {
				continue
			}
			row := make(map[string]any, len(tr)+2)
			for k, v := range tr {
				row[k] = v
			}
			if _, ok := row["league"]; !ok {
				if lg := Map(rec, "league"); lg != nil {
					row["league"] = lg
				}
			}
			if _, ok := row["division"]; !ok {
				if dv := Map(rec, "division"); dv != nil {
					row["division"] = dv
				}
			}
			rows = append(rows, row)
		}
	}
	return rows
}

func rowSeason(row map[string]any) int {
	s := Str(row, "season")
	if s == "" {
		return 0
	}
	year, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return year
}

// makeSplit builds a pair of W/L derived columns from a records
// sub-array entry selected by a key path and value. Pre-1901 seasons
// always yield the sentinel.
func makeSplit(name, arrayKey, field string, matchPath []string, matchValue string) Column {
	return Column{Name: name, Extract: func(row map[string]any) any {
		if year := rowSeason(row); year != 0 && year < splitCutoffSeason {
			return nil
		}
		for _, e := range Slice(row, "records", arrayKey) {
			entry, ok := e.(map[string]any)
			if !ok {
				continue
			}
			if Str(entry, matchPath...) != matchValue {
				continue
			}
			if n, ok := Int(entry, field); ok {
				return n
			}
			return nil
		}
		return nil
	}}
}

// RecordSplits projects year-by-year standings records: one wide row per
// (season, team), flattening league, division, and situational split
// records into fixed columns.
func RecordSplits(cat *catalog.Catalog) Spec {
	derived := []Column{
		makeSplit("alW", "leagueRecords", "wins", []string{"league", "abbreviation"}, "AL"),
		makeSplit("alL", "leagueRecords", "losses", []string{"league", "abbreviation"}, "AL"),
		makeSplit("nlW", "leagueRecords", "wins", []string{"league", "abbreviation"}, "NL"),
		makeSplit("nlL", "leagueRecords", "losses", []string{"league", "abbreviation"}, "NL"),
		makeSplit("eastW", "divisionRecords", "wins", []string{"division", "name"}, "East"),
		makeSplit("eastL", "divisionRecords", "losses", []string{"division", "name"}, "East"),
		makeSplit("centralW", "divisionRecords", "wins", []string{"division", "name"}, "Central"),
		makeSplit("centralL", "divisionRecords", "losses", []string{"division", "name"}, "Central"),
		makeSplit("westW", "divisionRecords", "wins", []string{"division", "name"}, "West"),
		makeSplit("westL", "divisionRecords", "losses", []string{"division", "name"}, "West"),
	}
	splits := []struct{ name, typ string }{
		{"home", "home"},
		{"away", "away"},
		{"lastTen", "lastTen"},
		{"xInn", "extraInning"},
		{"oneRun", "oneRun"},
		{"winners", "winners"},
		{"day", "day"},
		{"night", "night"},
		{"grass", "grass"},
		{"turf", "turf"},
		{"vsRight", "right"},
		{"vsLeft", "left"},
	}
	for _, sp := range splits {
		derived = append(derived,
			makeSplit(sp.name+"W", "splitRecords", "wins", []string{"type"}, sp.typ),
			makeSplit(sp.name+"L", "splitRecords", "losses", []string{"type"}, sp.typ),
		)
	}

	return Spec{
		Rows: recordRows,
		Prefix: []Column{
			{Name: "season", Required: true, Extract: func(row map[string]any) any {
				if s := Str(row, "season"); s != "" {
					return s
				}
				return nil
			}},
			{Name: "mlbam", Required: true, Extract: func(row map[string]any) any {
				if id, ok := Int(row, "team", "id"); ok {
					return id
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
			{Name: "division", Extract: func(row map[string]any) any {
				if s := Str(row, "division", "name"); s != "" {
					return s
				}
				return nil
			}},
			{Name: "wins", Extract: func(row map[string]any) any {
				if n, ok := Int(row, "wins"); ok {
					return n
				}
				return nil
			}},
			{Name: "losses", Extract: func(row map[string]any) any {
				if n, ok := Int(row, "losses"); ok {
					return n
				}
				return nil
			}},
			{Name: "pct", Extract: func(row map[string]any) any {
				if s := Str(row, "winningPercentage"); s != "" {
					return s
				}
				return nil
			}},
		},
		Derived:    derived,
		SortColumn: "season",
	}
}
