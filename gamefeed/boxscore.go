package gamefeed

import (
	"fmt"
	"sort"

	"github.com/fortuna/dugout/project"
	"github.com/fortuna/dugout/table"
)

// boxPlayers collects one side's boxscore player entries.
func (s *Snapshot) boxPlayers(home bool) []map[string]any {
	players := project.Map(s.doc, "liveData", "boxscore", "teams", side(home), "players")
	out := make([]map[string]any, 0, len(players))
	for _, v := range players {
		if p, ok := v.(map[string]any); ok {
			out = append(out, p)
		}
	}
	return out
}

// BattingColumns is the per-team batting table header.
func BattingColumns() []string {
	return []string{"name", "position", "ab", "r", "h", "rbi", "bb", "so", "lob", "avg"}
}

// TeamBatting returns one row per lineup batter in batting order plus a
// final team summary row. Season averages missing from the feed carry
// the sentinel.
func (s *Snapshot) TeamBatting(home bool) *table.Table {
	out := table.New(BattingColumns()...)

	type lineupEntry struct {
		order int64
		row   map[string]any
	}
	var lineup []lineupEntry
	for _, p := range s.boxPlayers(home) {
		order, ok := project.Int(p, "battingOrder")
		if !ok {
			continue
		}
		lineup = append(lineup, lineupEntry{order: order, row: p})
	}
	sort.SliceStable(lineup, func(i, j int) bool { return lineup[i].order < lineup[j].order })

	for _, e := range lineup {
		p := e.row
		out.AppendRow(
			project.Cell(p, "person", "fullName"),
			project.Cell(p, "position", "abbreviation"),
			project.Cell(p, "stats", "batting", "atBats"),
			project.Cell(p, "stats", "batting", "runs"),
			project.Cell(p, "stats", "batting", "hits"),
			project.Cell(p, "stats", "batting", "rbi"),
			project.Cell(p, "stats", "batting", "baseOnBalls"),
			project.Cell(p, "stats", "batting", "strikeOuts"),
			project.Cell(p, "stats", "batting", "leftOnBase"),
			project.Cell(p, "seasonStats", "batting", "avg"),
		)
	}

	team := project.Map(s.doc, "liveData", "boxscore", "teams", side(home), "teamStats", "batting")
	out.AppendRow(
		"Totals",
		table.Sentinel,
		project.Cell(team, "atBats"),
		project.Cell(team, "runs"),
		project.Cell(team, "hits"),
		project.Cell(team, "rbi"),
		project.Cell(team, "baseOnBalls"),
		project.Cell(team, "strikeOuts"),
		project.Cell(team, "leftOnBase"),
		project.Cell(team, "avg"),
	)
	return out
}

// PitchingColumns is the per-team pitching table header.
func PitchingColumns() []string {
	return []string{
		"name", "ip", "h", "r", "er", "bb", "so", "hr",
		"pitches", "strikes", "strikePct", "era",
	}
}

// TeamPitching returns one row per pitcher used, in appearance order,
// plus a team summary row. The team strike percentage is computed from
// the aggregated strike and pitch counts, never averaged across
// pitchers.
func (s *Snapshot) TeamPitching(home bool) *table.Table {
	out := table.New(PitchingColumns()...)

	order := project.Slice(s.doc, "liveData", "boxscore", "teams", side(home), "pitchers")
	players := project.Map(s.doc, "liveData", "boxscore", "teams", side(home), "players")

	var totalPitches, totalStrikes int64
	for _, idv := range order {
		id, ok := idv.(float64)
		if !ok {
			continue
		}
		p := project.Map(players, fmt.Sprintf("ID%d", int64(id)))
		if p == nil {
			continue
		}
		pitches, _ := project.Int(p, "stats", "pitching", "numberOfPitches")
		strikes, _ := project.Int(p, "stats", "pitching", "strikes")
		totalPitches += pitches
		totalStrikes += strikes

		out.AppendRow(
			project.Cell(p, "person", "fullName"),
			project.Cell(p, "stats", "pitching", "inningsPitched"),
			project.Cell(p, "stats", "pitching", "hits"),
			project.Cell(p, "stats", "pitching", "runs"),
			project.Cell(p, "stats", "pitching", "earnedRuns"),
			project.Cell(p, "stats", "pitching", "baseOnBalls"),
			project.Cell(p, "stats", "pitching", "strikeOuts"),
			project.Cell(p, "stats", "pitching", "homeRuns"),
			project.Cell(p, "stats", "pitching", "numberOfPitches"),
			project.Cell(p, "stats", "pitching", "strikes"),
			strikePct(strikes, pitches),
			project.Cell(p, "seasonStats", "pitching", "era"),
		)
	}

	team := project.Map(s.doc, "liveData", "boxscore", "teams", side(home), "teamStats", "pitching")
	out.AppendRow(
		"Totals",
		project.Cell(team, "inningsPitched"),
		project.Cell(team, "hits"),
		project.Cell(team, "runs"),
		project.Cell(team, "earnedRuns"),
		project.Cell(team, "baseOnBalls"),
		project.Cell(team, "strikeOuts"),
		project.Cell(team, "homeRuns"),
		project.NormalizeCell(float64(totalPitches)),
		project.NormalizeCell(float64(totalStrikes)),
		strikePct(totalStrikes, totalPitches),
		table.Sentinel,
	)
	return out
}

func strikePct(strikes, pitches int64) any {
	if pitches == 0 {
		return table.Sentinel
	}
	return float64(strikes) / float64(pitches)
}

// FieldingColumns is the per-team fielding table header.
func FieldingColumns() []string {
	return []string{"name", "position", "putOuts", "assists", "errors", "chances", "fielding"}
}

// TeamFielding returns one row per fielder: position players first in
// batting order, then pitchers in appearance order.
func (s *Snapshot) TeamFielding(home bool) *table.Table {
	out := table.New(FieldingColumns()...)

	appendFielder := func(p map[string]any) {
		out.AppendRow(
			project.Cell(p, "person", "fullName"),
			project.Cell(p, "position", "abbreviation"),
			project.Cell(p, "stats", "fielding", "putOuts"),
			project.Cell(p, "stats", "fielding", "assists"),
			project.Cell(p, "stats", "fielding", "errors"),
			project.Cell(p, "stats", "fielding", "chances"),
			project.Cell(p, "seasonStats", "fielding", "fielding"),
		)
	}

	type entry struct {
		order int64
		row   map[string]any
	}
	var nonPitchers []entry
	for _, p := range s.boxPlayers(home) {
		if project.Str(p, "position", "abbreviation") == "P" {
			continue
		}
		order, ok := project.Int(p, "battingOrder")
		if !ok {
			order = 1 << 30
		}
		nonPitchers = append(nonPitchers, entry{order: order, row: p})
	}
	sort.SliceStable(nonPitchers, func(i, j int) bool { return nonPitchers[i].order < nonPitchers[j].order })
	for _, e := range nonPitchers {
		appendFielder(e.row)
	}

	players := project.Map(s.doc, "liveData", "boxscore", "teams", side(home), "players")
	for _, idv := range project.Slice(s.doc, "liveData", "boxscore", "teams", side(home), "pitchers") {
		id, ok := idv.(float64)
		if !ok {
			continue
		}
		if p := project.Map(players, fmt.Sprintf("ID%d", int64(id))); p != nil {
			appendFielder(p)
		}
	}
	return out
}
