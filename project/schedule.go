package project

import (
	"fmt"

	"github.com/fortuna/dugout/catalog"
)

// scheduleRows flattens the schedule's (date, games) nesting into one
// row per game, carrying the date down onto each game.
func scheduleRows(doc map[string]any) []map[string]any {
	var rows []map[string]any
	for _, d := range Slice(doc, "dates") {
		date, ok := d.(map[string]any)
		if !ok {
			continue
		}
		day := Str(date, "date")
		for _, g := range Slice(date, "games") {
			game, ok := g.(map[string]any)
			if !ok {
				continue
			}
			row := make(map[string]any, len(game)+1)
			for k, v := range game {
				row[k] = v
			}
			if _, ok := row["officialDate"]; !ok {
				row["officialDate"] = day
			}
			rows = append(rows, row)
		}
	}
	return rows
}

// teamSide returns the "home" or "away" sub-document for the team this
// projection is viewed from, plus whether the team is home.
func teamSide(row map[string]any, teamID int64) (side map[string]any, home bool) {
	if id, ok := Int(row, "teams", "home", "team", "id"); ok && id == teamID {
		return Map(row, "teams", "home"), true
	}
	if id, ok := Int(row, "teams", "away", "team", "id"); ok && id == teamID {
		return Map(row, "teams", "away"), false
	}
	return nil, false
}

// DaySchedule projects a league-wide schedule document into one row per
// game, with both teams and their scores.
func DaySchedule(cat *catalog.Catalog) Spec {
	return Spec{
		Rows: scheduleRows,
		Prefix: []Column{
			{Name: "gamePk", Required: true, Extract: func(row map[string]any) any {
				if id, ok := Int(row, "gamePk"); ok {
					return id
				}
				return nil
			}},
			{Name: "date", Extract: func(row map[string]any) any {
				if s := Str(row, "officialDate"); s != "" {
					return s
				}
				return nil
			}},
			{Name: "startTime", Extract: func(row map[string]any) any {
				if s := Str(row, "gameDate"); s != "" {
					return s
				}
				return nil
			}},
			{Name: "status", Extract: func(row map[string]any) any {
				if s := Str(row, "status", "detailedState"); s != "" {
					return s
				}
				return nil
			}},
			{Name: "gameType", Extract: func(row map[string]any) any {
				if s := Str(row, "gameType"); s != "" {
					return cat.GameType(s)
				}
				return nil
			}},
			{Name: "away", Extract: func(row map[string]any) any {
				if s := Str(row, "teams", "away", "team", "name"); s != "" {
					return s
				}
				return nil
			}},
			{Name: "awayScore", Extract: func(row map[string]any) any {
				if n, ok := Int(row, "teams", "away", "score"); ok {
					return n
				}
				return nil
			}},
			{Name: "home", Extract: func(row map[string]any) any {
				if s := Str(row, "teams", "home", "team", "name"); s != "" {
					return s
				}
				return nil
			}},
			{Name: "homeScore", Extract: func(row map[string]any) any {
				if n, ok := Int(row, "teams", "home", "score"); ok {
					return n
				}
				return nil
			}},
			{Name: "venue", Extract: func(row map[string]any) any {
				if s := Str(row, "venue", "name"); s != "" {
					return s
				}
				return nil
			}},
		},
	}
}

// GameLog projects a schedule document from one team's perspective: one
// row per game with result symbol, home/away symbol, running record,
// series indicator, weather, and a rescheduling note.
func GameLog(cat *catalog.Catalog, teamID int64) Spec {
	return Spec{
		Rows: scheduleRows,
		Prefix: []Column{
			{Name: "date", Extract: func(row map[string]any) any {
				if s := Str(row, "officialDate"); s != "" {
					return s
				}
				return nil
			}},
			{Name: "gamePk", Required: true, Extract: func(row map[string]any) any {
				if id, ok := Int(row, "gamePk"); ok {
					return id
				}
				return nil
			}},
			{Name: "gameType", Extract: func(row map[string]any) any {
				if s := Str(row, "gameType"); s != "" {
					return cat.GameType(s)
				}
				return nil
			}},
			{Name: "opponent", Extract: func(row map[string]any) any {
				_, home := teamSide(row, teamID)
				if home {
					if s := Str(row, "teams", "away", "team", "name"); s != "" {
						return s
					}
					return nil
				}
				if s := Str(row, "teams", "home", "team", "name"); s != "" {
					return s
				}
				return nil
			}},
			{Name: "venue", Extract: func(row map[string]any) any {
				if s := Str(row, "venue", "name"); s != "" {
					return s
				}
				return nil
			}},
		},
		Derived: []Column{
			{Name: "result", Extract: func(row map[string]any) any {
				side, _ := teamSide(row, teamID)
				if side == nil {
					return nil
				}
				won, ok := Bool(side, "isWinner")
				if !ok {
					return nil
				}
				if won {
					return "W"
				}
				return "L"
			}},
			{Name: "homeAway", Extract: func(row map[string]any) any {
				side, home := teamSide(row, teamID)
				if side == nil {
					return nil
				}
				if home {
					return "vs"
				}
				return "@"
			}},
			{Name: "record", Extract: func(row map[string]any) any {
				side, _ := teamSide(row, teamID)
				if side == nil {
					return nil
				}
				w, wok := Int(side, "leagueRecord", "wins")
				l, lok := Int(side, "leagueRecord", "losses")
				if !wok || !lok {
					return nil
				}
				return fmt.Sprintf("%d-%d", w, l)
			}},
			{Name: "seriesGame", Extract: func(row map[string]any) any {
				n, nok := Int(row, "seriesGameNumber")
				m, mok := Int(row, "gamesInSeries")
				if !nok || !mok {
					return nil
				}
				return fmt.Sprintf("%d of %d", n, m)
			}},
			{Name: "condition", Extract: func(row map[string]any) any {
				if s := Str(row, "weather", "condition"); s != "" {
					return s
				}
				return nil
			}},
			{Name: "temp", Extract: func(row map[string]any) any {
				if s := Str(row, "weather", "temp"); s != "" {
					return s
				}
				return nil
			}},
			{Name: "wind", Extract: func(row map[string]any) any {
				if s := Str(row, "weather", "wind"); s != "" {
					return s
				}
				return nil
			}},
			{Name: "rescheduled", Extract: func(row map[string]any) any {
				if from := Str(row, "rescheduledFrom"); from != "" {
					return "from " + from
				}
				if to := Str(row, "rescheduleDate"); to != "" {
					return "to " + to
				}
				return nil
			}},
		},
	}
}
