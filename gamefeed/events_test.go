package gamefeed

import (
	"testing"

	"github.com/fortuna/dugout/catalog"
	"github.com/fortuna/dugout/table"
)

func playEvent(desc string, balls, strikes int, isPitch bool) map[string]any {
	ev := map[string]any{
		"type":      "pitch",
		"isPitch":   isPitch,
		"details":   map[string]any{"description": desc},
		"count":     map[string]any{"balls": float64(balls), "strikes": float64(strikes)},
		"startTime": "2024-06-07T01:02:00.000Z",
		"endTime":   "2024-06-07T01:02:15.000Z",
	}
	if isPitch {
		ev["details"].(map[string]any)["type"] = map[string]any{"description": "Four-Seam Fastball"}
		ev["pitchData"] = map[string]any{"startSpeed": 96.4}
	} else {
		ev["type"] = "action"
	}
	return ev
}

func play(index int, batterID int, event string, scoring, complete bool, events ...map[string]any) map[string]any {
	anyEvents := make([]any, len(events))
	pitchIdx := make([]any, 0, len(events))
	for i, e := range events {
		anyEvents[i] = e
		if isPitch, _ := e["isPitch"].(bool); isPitch {
			pitchIdx = append(pitchIdx, float64(i))
		}
	}
	return map[string]any{
		"about": map[string]any{
			"atBatIndex":    float64(index),
			"inning":        float64(1 + index/2),
			"isComplete":    complete,
			"isScoringPlay": scoring,
			"startTime":     "2024-06-07T01:00:00.000Z",
			"endTime":       "2024-06-07T01:02:30.000Z",
		},
		"result": map[string]any{
			"type":        "atBat",
			"event":       event,
			"eventType":   event,
			"description": "Batter hits a " + event + ".",
		},
		"matchup": map[string]any{
			"batter":  map[string]any{"id": float64(batterID), "fullName": "Batter"},
			"batSide": map[string]any{"code": "R"},
			"pitcher": map[string]any{"id": float64(1), "fullName": "Pitcher"},
		},
		"playEvents": anyEvents,
		"pitchIndex": pitchIdx,
	}
}

func eventsDoc() map[string]any {
	doc := feedDoc()
	doc["liveData"].(map[string]any)["plays"] = map[string]any{
		"allPlays": []any{
			play(0, 999001, "Single", false, true,
				playEvent("Ball", 1, 0, true),
				playEvent("In play, no out", 1, 0, true),
			),
			play(1, 605141, "Home Run", true, true,
				playEvent("Ball", 1, 0, true),
				playEvent("Foul", 1, 1, true),
				playEvent("In play, run(s)", 1, 1, true),
			),
			play(2, 999002, "", false, false,
				playEvent("Ball", 1, 0, true),
			),
		},
	}
	return doc
}

func TestPlateAppearancesReverseChronological(t *testing.T) {
	s := New(eventsDoc(), catalog.New())
	pas := s.PlateAppearances()

	// The in-progress third play is excluded.
	if pas.Len() != 2 {
		t.Fatalf("rows = %d, want 2", pas.Len())
	}
	if v, _ := pas.Cell(0, "paIndex"); v != int64(1) {
		t.Errorf("first row paIndex = %v, want most recent", v)
	}
	if v, _ := pas.Cell(1, "paIndex"); v != int64(0) {
		t.Errorf("second row paIndex = %v", v)
	}

	// The home-run batter is on the home roster: bottom half.
	if v, _ := pas.Cell(0, "inning"); v != "Bot 1st" {
		t.Errorf("inning label = %v", v)
	}
	if v, _ := pas.Cell(1, "inning"); v != "Top 1st" {
		t.Errorf("away batter inning label = %v", v)
	}

	if v, _ := pas.Cell(0, "pitches"); v != int64(3) {
		t.Errorf("pitch count = %v", v)
	}
	if v, _ := pas.Cell(0, "pitchType"); v != "Four-Seam Fastball" {
		t.Errorf("final pitch type = %v", v)
	}
	if v, _ := pas.Cell(0, "elapsed"); v != "2m30s" {
		t.Errorf("elapsed = %v", v)
	}
}

func TestScoringPlaysEventSchema(t *testing.T) {
	s := New(eventsDoc(), catalog.New())
	scoring := s.ScoringPlays()
	// Only the home-run play scores; its three events survive, newest
	// first.
	if scoring.Len() != 3 {
		t.Fatalf("rows = %d, want 3", scoring.Len())
	}
	for i := 0; i < scoring.Len(); i++ {
		if v, _ := scoring.Cell(i, "paIndex"); v != int64(1) {
			t.Fatalf("row %d paIndex = %v, want 1", i, v)
		}
	}
	if v, _ := scoring.Cell(0, "isHome"); v != true {
		t.Errorf("isHome = %v, want true", v)
	}
	if v, _ := scoring.Cell(0, "call"); v != table.Sentinel {
		t.Errorf("call = %v, want sentinel", v)
	}
	if v, _ := scoring.Cell(0, "pitchSpeed"); v != 96.4 {
		t.Errorf("pitchSpeed = %v", v)
	}
}

func TestEventsStrictlyDescending(t *testing.T) {
	s := New(eventsDoc(), catalog.New())
	evs := s.Events()
	if evs.Len() != 6 {
		t.Fatalf("rows = %d, want 6", evs.Len())
	}

	prevPA, prevEv := int64(1<<31), int64(1<<31)
	for i := 0; i < evs.Len(); i++ {
		pav, _ := evs.Cell(i, "paIndex")
		evv, _ := evs.Cell(i, "eventIndex")
		pa, ev := pav.(int64), evv.(int64)
		if pa > prevPA || (pa == prevPA && ev >= prevEv) {
			t.Fatalf("row %d: (%d,%d) not strictly descending after (%d,%d)", i, pa, ev, prevPA, prevEv)
		}
		prevPA, prevEv = pa, ev
	}

	if v, _ := evs.Cell(0, "count"); v != "1-0" {
		t.Errorf("latest event count = %v", v)
	}
}

func TestTimestampsPerEvent(t *testing.T) {
	s := New(eventsDoc(), catalog.New())
	ts := s.Timestamps()

	// One row per play event, every play included, newest first.
	if ts.Len() != 6 {
		t.Fatalf("rows = %d, want 6", ts.Len())
	}
	if v, _ := ts.Cell(0, "atBatIndex"); v != int64(2) {
		t.Errorf("first row atBatIndex = %v, want most recent play", v)
	}
	if v, _ := ts.Cell(0, "resultType"); v != "atBat" {
		t.Errorf("resultType = %v", v)
	}
	if v, _ := ts.Cell(1, "eventIndex"); v != int64(2) {
		t.Errorf("eventIndex = %v, want last event of the home run", v)
	}
	if v, _ := ts.Cell(0, "eventType"); v != "pitch" {
		t.Errorf("eventType = %v", v)
	}
	if v, _ := ts.Cell(0, "startTimeISO"); v != "2024-06-07T01:02:00.000Z" {
		t.Errorf("startTimeISO = %v", v)
	}
	if v, _ := ts.Cell(0, "startTimeCompact"); v != "20240607_010200" {
		t.Errorf("startTimeCompact = %v", v)
	}
	if v, _ := ts.Cell(0, "endTimeCompact"); v != "20240607_010215" {
		t.Errorf("endTimeCompact = %v", v)
	}
}

func TestTimestampsMissingTimes(t *testing.T) {
	doc := eventsDoc()
	plays := doc["liveData"].(map[string]any)["plays"].(map[string]any)
	ev := plays["allPlays"].([]any)[2].(map[string]any)["playEvents"].([]any)[0].(map[string]any)
	delete(ev, "startTime")
	delete(ev, "endTime")
	s := New(doc, catalog.New())
	ts := s.Timestamps()
	if v, _ := ts.Cell(0, "startTimeISO"); v != table.Sentinel {
		t.Errorf("startTimeISO = %v, want sentinel", v)
	}
	if v, _ := ts.Cell(0, "endTimeCompact"); v != table.Sentinel {
		t.Errorf("endTimeCompact = %v, want sentinel", v)
	}
}

func TestMatchupZoneFromLastPitch(t *testing.T) {
	doc := eventsDoc()
	doc["liveData"].(map[string]any)["plays"].(map[string]any)["currentPlay"] = map[string]any{
		"matchup": map[string]any{
			"batter":    map[string]any{"id": float64(605141), "fullName": "Home Batter"},
			"batSide":   map[string]any{"code": "L"},
			"pitcher":   map[string]any{"id": float64(7), "fullName": "Away Arm"},
			"pitchHand": map[string]any{"code": "R"},
		},
		"playEvents": []any{
			map[string]any{"details": map[string]any{"description": "Ball"}},
			map[string]any{"pitchData": map[string]any{
				"strikeZoneTop": 3.4, "strikeZoneBottom": 1.6,
			}},
		},
	}
	s := New(doc, catalog.New())
	m := s.Matchup()
	if m.Batter.Name != "Home Batter" || m.BatSide != "L" {
		t.Errorf("batter = %+v side %q", m.Batter, m.BatSide)
	}
	if m.ZoneTop != 3.4 || m.ZoneBottom != 1.6 {
		t.Errorf("zone = %v/%v", m.ZoneTop, m.ZoneBottom)
	}
}

func TestEventsEmptyFeed(t *testing.T) {
	s := New(nil, catalog.New())
	if s.Events().Len() != 0 || s.PlateAppearances().Len() != 0 {
		t.Fatal("nil document must yield empty logs")
	}
	if got := s.Linescore().Len(); got != 9 {
		t.Fatalf("nil doc linescore rows = %d, want 9 sentinel innings", got)
	}
	if v, _ := s.Linescore().Cell(0, "homeRuns"); v != table.Sentinel {
		t.Fatalf("nil doc inning cell = %v, want sentinel", v)
	}
}
