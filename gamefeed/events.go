package gamefeed

import (
	"fmt"
	"time"

	"github.com/fortuna/dugout/project"
	"github.com/fortuna/dugout/table"
)

// allPlays returns the feed's play list in document order.
func (s *Snapshot) allPlays() []map[string]any {
	raw := project.Slice(s.doc, "liveData", "plays", "allPlays")
	out := make([]map[string]any, 0, len(raw))
	for _, v := range raw {
		if p, ok := v.(map[string]any); ok {
			out = append(out, p)
		}
	}
	return out
}

// inningLabel renders "Top 3rd" / "Bot 9th" for a play, choosing the
// half from the batting side rather than the feed's inning-half field.
func (s *Snapshot) inningLabel(play map[string]any) any {
	inning, ok := project.Int(play, "about", "inning")
	if !ok {
		return table.Sentinel
	}
	half := "Top"
	if batterID, ok := project.Int(play, "matchup", "batter", "id"); ok && s.BatterIsHome(batterID) {
		half = "Bot"
	}
	return fmt.Sprintf("%s %s", half, s.cat.Ordinal(int(inning)))
}

// battingTeam names the team at bat for a play.
func (s *Snapshot) battingTeam(play map[string]any) any {
	batterID, ok := project.Int(play, "matchup", "batter", "id")
	if !ok {
		return table.Sentinel
	}
	name := s.TeamName(s.BatterIsHome(batterID))
	if name == "" {
		return table.Sentinel
	}
	return name
}

// finalPitch returns the last pitch event of a play, if any.
func finalPitch(play map[string]any) map[string]any {
	events := project.Slice(play, "playEvents")
	for i := len(events) - 1; i >= 0; i-- {
		ev, ok := events[i].(map[string]any)
		if !ok {
			continue
		}
		if isPitch, _ := project.Bool(ev, "isPitch"); isPitch {
			return ev
		}
	}
	return nil
}

// PlateAppearanceColumns is the plate-appearance log header.
func PlateAppearanceColumns() []string {
	return []string{
		"paIndex", "inning", "battingTeam",
		"batter", "batSide", "pitcher",
		"pitches", "event", "eventType", "description",
		"pitchType", "pitchSpeed",
		"exitVelocity", "launchAngle", "totalDistance",
		"startTime", "endTime", "elapsed",
	}
}

// PlateAppearances returns the completed plate appearances, most recent
// first. The current in-progress play is excluded until it completes.
func (s *Snapshot) PlateAppearances() *table.Table {
	out := table.New(PlateAppearanceColumns()...)
	plays := s.allPlays()
	for i := len(plays) - 1; i >= 0; i-- {
		play := plays[i]
		if complete, _ := project.Bool(play, "about", "isComplete"); !complete {
			continue
		}
		out.AppendRow(s.paRow(play)...)
	}
	return out
}

func (s *Snapshot) paRow(play map[string]any) []any {
	pitch := finalPitch(play)

	start := project.Str(play, "about", "startTime")
	end := project.Str(play, "about", "endTime")
	elapsed := any(table.Sentinel)
	if st, sok := parseFeedTime(start); sok {
		if et, eok := parseFeedTime(end); eok {
			elapsed = et.Sub(st).Round(time.Second).String()
		}
	}

	return []any{
		project.Cell(play, "about", "atBatIndex"),
		s.inningLabel(play),
		s.battingTeam(play),
		project.Cell(play, "matchup", "batter", "fullName"),
		project.Cell(play, "matchup", "batSide", "code"),
		project.Cell(play, "matchup", "pitcher", "fullName"),
		project.NormalizeCell(float64(len(project.Slice(play, "pitchIndex")))),
		project.Cell(play, "result", "event"),
		project.Cell(play, "result", "eventType"),
		project.Cell(play, "result", "description"),
		project.Cell(pitch, "details", "type", "description"),
		project.Cell(pitch, "pitchData", "startSpeed"),
		project.Cell(pitch, "hitData", "launchSpeed"),
		project.Cell(pitch, "hitData", "launchAngle"),
		project.Cell(pitch, "hitData", "totalDistance"),
		project.NormalizeCell(start),
		project.NormalizeCell(end),
		elapsed,
	}
}

// EventColumns is the per-event log header.
func EventColumns() []string {
	return []string{
		"paIndex", "eventIndex", "inning", "batter", "pitcher",
		"type", "call", "description", "count", "outs",
		"pitchNumber", "pitchType", "pitchCode", "zone",
		"pitchSpeed", "endSpeed", "spinRate", "pitchX", "pitchZ",
		"exitVelocity", "launchAngle", "totalDistance",
		"isInPlay", "isHome", "endTime",
	}
}

// Events returns every play event in the game, most recent first. Rows
// are ordered by (paIndex, eventIndex) strictly descending.
func (s *Snapshot) Events() *table.Table {
	return s.eventLog(false)
}

// ScoringPlays returns the event rows of completed scoring plays, most
// recent first, in the event-log schema.
func (s *Snapshot) ScoringPlays() *table.Table {
	return s.eventLog(true)
}

func (s *Snapshot) eventLog(scoringOnly bool) *table.Table {
	out := table.New(EventColumns()...)
	plays := s.allPlays()
	for i := len(plays) - 1; i >= 0; i-- {
		play := plays[i]
		if scoringOnly {
			if complete, _ := project.Bool(play, "about", "isComplete"); !complete {
				continue
			}
			if scoring, _ := project.Bool(play, "about", "isScoringPlay"); !scoring {
				continue
			}
		}
		isHome := any(table.Sentinel)
		if batterID, ok := project.Int(play, "matchup", "batter", "id"); ok {
			isHome = s.BatterIsHome(batterID)
		}
		events := project.Slice(play, "playEvents")
		for j := len(events) - 1; j >= 0; j-- {
			ev, ok := events[j].(map[string]any)
			if !ok {
				continue
			}
			count := table.Sentinel
			if balls, bok := project.Int(ev, "count", "balls"); bok {
				if strikes, sok := project.Int(ev, "count", "strikes"); sok {
					count = fmt.Sprintf("%d-%d", balls, strikes)
				}
			}
			out.AppendRow(
				project.Cell(play, "about", "atBatIndex"),
				project.NormalizeCell(float64(j)),
				s.inningLabel(play),
				project.Cell(play, "matchup", "batter", "fullName"),
				project.Cell(play, "matchup", "pitcher", "fullName"),
				project.Cell(ev, "type"),
				project.Cell(ev, "details", "call", "description"),
				project.Cell(ev, "details", "description"),
				count,
				project.Cell(ev, "count", "outs"),
				project.Cell(ev, "pitchNumber"),
				project.Cell(ev, "details", "type", "description"),
				project.Cell(ev, "details", "type", "code"),
				project.Cell(ev, "pitchData", "zone"),
				project.Cell(ev, "pitchData", "startSpeed"),
				project.Cell(ev, "pitchData", "endSpeed"),
				project.Cell(ev, "pitchData", "breaks", "spinRate"),
				project.Cell(ev, "pitchData", "coordinates", "pX"),
				project.Cell(ev, "pitchData", "coordinates", "pZ"),
				project.Cell(ev, "hitData", "launchSpeed"),
				project.Cell(ev, "hitData", "launchAngle"),
				project.Cell(ev, "hitData", "totalDistance"),
				project.Cell(ev, "details", "isInPlay"),
				isHome,
				project.Cell(ev, "endTime"),
			)
		}
	}
	return out
}

// TimestampColumns is the per-event timing table header.
func TimestampColumns() []string {
	return []string{
		"atBatIndex", "resultType", "eventIndex",
		"eventType", "eventDescription",
		"startTimeISO", "startTimeCompact",
		"endTimeISO", "endTimeCompact",
	}
}

// Timestamps returns one timing row per play event, most recent first,
// with each time in both the ISO wall-clock form and the compact form
// usable as a timecode query parameter.
func (s *Snapshot) Timestamps() *table.Table {
	out := table.New(TimestampColumns()...)
	plays := s.allPlays()
	for i := len(plays) - 1; i >= 0; i-- {
		play := plays[i]
		resultType := project.Cell(play, "result", "type")
		events := project.Slice(play, "playEvents")
		for j := len(events) - 1; j >= 0; j-- {
			ev, ok := events[j].(map[string]any)
			if !ok {
				continue
			}
			start := project.Str(ev, "startTime")
			end := project.Str(ev, "endTime")
			out.AppendRow(
				project.Cell(play, "about", "atBatIndex"),
				resultType,
				project.NormalizeCell(float64(j)),
				project.Cell(ev, "type"),
				project.Cell(ev, "details", "description"),
				project.NormalizeCell(start),
				compactTime(start),
				project.NormalizeCell(end),
				compactTime(end),
			)
		}
	}
	return out
}
