package gamefeed

import (
	"testing"

	"github.com/fortuna/dugout/catalog"
	"github.com/fortuna/dugout/table"
)

func inning(num int, awayRuns, homeRuns float64) map[string]any {
	return map[string]any{
		"num":  float64(num),
		"away": map[string]any{"runs": awayRuns, "hits": awayRuns, "errors": float64(0)},
		"home": map[string]any{"runs": homeRuns, "hits": homeRuns, "errors": float64(0)},
	}
}

func feedDoc() map[string]any {
	return map[string]any{
		"gamePk": float64(716463),
		"gameData": map[string]any{
			"teams": map[string]any{
				"home": map[string]any{
					"id": float64(136), "name": "Seattle Mariners",
					"record": map[string]any{"wins": float64(54), "losses": float64(40)},
				},
				"away": map[string]any{
					"id": float64(137), "name": "San Francisco Giants",
					"record": map[string]any{"wins": float64(48), "losses": float64(46)},
				},
			},
		},
		"liveData": map[string]any{
			"linescore": map[string]any{
				"innings": []any{
					inning(1, 0, 1),
					inning(2, 2, 0),
					inning(3, 0, 0),
				},
				"teams": map[string]any{
					"away": map[string]any{"runs": float64(2), "hits": float64(4), "errors": float64(0)},
					"home": map[string]any{"runs": float64(1), "hits": float64(3), "errors": float64(1)},
				},
				"outs":    float64(2),
				"balls":   float64(1),
				"strikes": float64(2),
				"offense": map[string]any{
					"first": map[string]any{"id": float64(501), "fullName": "Runner One"},
					"third": map[string]any{"id": float64(503), "fullName": "Runner Three"},
				},
			},
			"boxscore": map[string]any{
				"teams": map[string]any{
					"home": map[string]any{
						"players": map[string]any{
							"ID605141": map[string]any{
								"person":       map[string]any{"id": float64(605141), "fullName": "Home Batter"},
								"position":     map[string]any{"abbreviation": "CF"},
								"battingOrder": "100",
								"stats": map[string]any{
									"batting": map[string]any{
										"atBats": float64(2), "runs": float64(1), "hits": float64(1),
										"rbi": float64(0), "baseOnBalls": float64(0),
										"strikeOuts": float64(1), "leftOnBase": float64(1),
									},
								},
								"seasonStats": map[string]any{
									"batting": map[string]any{"avg": ".312"},
								},
							},
							"ID502042": map[string]any{
								"person":       map[string]any{"id": float64(502042), "fullName": "Second Hitter"},
								"position":     map[string]any{"abbreviation": "1B"},
								"battingOrder": "200",
								"stats": map[string]any{
									"batting": map[string]any{
										"atBats": float64(2), "runs": float64(0), "hits": float64(0),
										"rbi": float64(0), "baseOnBalls": float64(1),
										"strikeOuts": float64(0), "leftOnBase": float64(2),
									},
								},
							},
							"ID443558": map[string]any{
								"person":   map[string]any{"id": float64(443558), "fullName": "Home Starter"},
								"position": map[string]any{"abbreviation": "P"},
								"stats": map[string]any{
									"pitching": map[string]any{
										"inningsPitched": "3.0", "hits": float64(4),
										"runs": float64(2), "earnedRuns": float64(2),
										"baseOnBalls": float64(1), "strikeOuts": float64(4),
										"homeRuns": float64(1), "numberOfPitches": float64(48),
										"strikes": float64(30),
									},
								},
								"seasonStats": map[string]any{
									"pitching": map[string]any{"era": "3.75"},
								},
							},
							"ID607192": map[string]any{
								"person":   map[string]any{"id": float64(607192), "fullName": "Home Reliever"},
								"position": map[string]any{"abbreviation": "P"},
								"stats": map[string]any{
									"pitching": map[string]any{
										"inningsPitched": "1.0", "hits": float64(0),
										"runs": float64(0), "earnedRuns": float64(0),
										"baseOnBalls": float64(0), "strikeOuts": float64(2),
										"homeRuns": float64(0), "numberOfPitches": float64(12),
										"strikes": float64(10),
									},
								},
							},
						},
						"pitchers": []any{float64(443558), float64(607192)},
						"teamStats": map[string]any{
							"batting": map[string]any{
								"atBats": float64(4), "runs": float64(1), "hits": float64(1),
								"rbi": float64(0), "baseOnBalls": float64(1),
								"strikeOuts": float64(1), "leftOnBase": float64(3),
								"avg": ".250",
							},
							"pitching": map[string]any{
								"inningsPitched": "4.0", "hits": float64(4),
								"runs": float64(2), "earnedRuns": float64(2),
								"baseOnBalls": float64(1), "strikeOuts": float64(6),
								"homeRuns": float64(1),
							},
						},
					},
					"away": map[string]any{
						"players":   map[string]any{},
						"pitchers":  []any{},
						"teamStats": map[string]any{},
					},
				},
			},
		},
	}
}

func testSnapshot() *Snapshot {
	return New(feedDoc(), catalog.New())
}

func TestSnapshotIdentity(t *testing.T) {
	s := testSnapshot()
	if s.GamePk() != 716463 {
		t.Errorf("gamePk = %d", s.GamePk())
	}
	if s.TeamName(true) != "Seattle Mariners" {
		t.Errorf("home = %q", s.TeamName(true))
	}
	if s.TeamRecord(false) != "48-46" {
		t.Errorf("away record = %q", s.TeamRecord(false))
	}
}

func TestLinescorePadsToScheduledInnings(t *testing.T) {
	s := testSnapshot()
	ls := s.Linescore()
	if ls.Len() != 9 {
		t.Fatalf("rows = %d, want 9", ls.Len())
	}
	if v, _ := ls.Cell(0, "homeRuns"); v != int64(1) {
		t.Errorf("inning 1 homeRuns = %v", v)
	}
	if v, _ := ls.Cell(1, "awayRuns"); v != int64(2) {
		t.Errorf("inning 2 awayRuns = %v", v)
	}
	// Unplayed innings carry the sentinel everywhere but the labels.
	for _, col := range []string{"awayRuns", "awayHits", "homeErrors"} {
		if v, _ := ls.Cell(8, col); v != table.Sentinel {
			t.Errorf("inning 9 %s = %v, want sentinel", col, v)
		}
	}
	if v, _ := ls.Cell(8, "inningOrdinal"); v != "9th" {
		t.Errorf("inning 9 ordinal = %v", v)
	}
}

func TestScheduledInningsExplicit(t *testing.T) {
	doc := feedDoc()
	doc["liveData"].(map[string]any)["linescore"].(map[string]any)["scheduledInnings"] = float64(7)
	s := New(doc, catalog.New())
	if s.ScheduledInnings() != 7 {
		t.Fatalf("scheduled = %d, want 7", s.ScheduledInnings())
	}
	if s.Linescore().Len() != 7 {
		t.Fatalf("rows = %d, want 7", s.Linescore().Len())
	}
}

func TestSituationBases(t *testing.T) {
	s := testSnapshot()
	sit := s.Situation()
	if sit.Outs != int64(2) || sit.Balls != int64(1) || sit.Strikes != int64(2) {
		t.Errorf("count = %v-%v, %v outs", sit.Balls, sit.Strikes, sit.Outs)
	}
	if len(sit.BasesOccupied) != 2 || sit.BasesOccupied[0] != 1 || sit.BasesOccupied[1] != 3 {
		t.Errorf("bases = %v, want [1 3]", sit.BasesOccupied)
	}
	if sit.RunnersOn[3].Name != "Runner Three" {
		t.Errorf("third = %v", sit.RunnersOn[3])
	}
}

func TestBatterIsHome(t *testing.T) {
	s := testSnapshot()
	if !s.BatterIsHome(605141) {
		t.Error("605141 is on the home roster")
	}
	if s.BatterIsHome(999999) {
		t.Error("999999 is not on the home roster")
	}
}

func TestTeamBattingOrderAndTotals(t *testing.T) {
	s := testSnapshot()
	bat := s.TeamBatting(true)
	// Two lineup batters plus the totals row; the pitcher has no
	// batting order and is excluded.
	if bat.Len() != 3 {
		t.Fatalf("rows = %d, want 3", bat.Len())
	}
	if v, _ := bat.Cell(0, "name"); v != "Home Batter" {
		t.Errorf("leadoff = %v", v)
	}
	if v, _ := bat.Cell(1, "name"); v != "Second Hitter" {
		t.Errorf("second = %v", v)
	}
	if v, _ := bat.Cell(1, "avg"); v != table.Sentinel {
		t.Errorf("missing season avg = %v, want sentinel", v)
	}
	if v, _ := bat.Cell(2, "name"); v != "Totals" {
		t.Errorf("last row = %v, want Totals", v)
	}
	if v, _ := bat.Cell(2, "ab"); v != int64(4) {
		t.Errorf("team ab = %v", v)
	}
}

func TestTeamPitchingStrikePctAggregated(t *testing.T) {
	s := testSnapshot()
	pit := s.TeamPitching(true)
	if pit.Len() != 3 {
		t.Fatalf("rows = %d, want 2 pitchers + totals", pit.Len())
	}
	if v, _ := pit.Cell(0, "name"); v != "Home Starter" {
		t.Errorf("first pitcher = %v", v)
	}

	// 30/48 and 10/12 individually; the team rate is (30+10)/(48+12),
	// not the average of the two rates.
	want := float64(40) / float64(60)
	if v, _ := pit.Cell(2, "strikePct"); v != want {
		t.Errorf("team strikePct = %v, want %v", v, want)
	}
	if v, _ := pit.Cell(2, "pitches"); v != int64(60) {
		t.Errorf("team pitches = %v", v)
	}
}

func TestTeamFieldingOrder(t *testing.T) {
	s := testSnapshot()
	fld := s.TeamFielding(true)
	if fld.Len() != 4 {
		t.Fatalf("rows = %d, want 4", fld.Len())
	}
	// Position players in batting order, then pitchers in appearance
	// order.
	names := make([]string, 0, 4)
	for i := 0; i < fld.Len(); i++ {
		v, _ := fld.Cell(i, "name")
		names = append(names, v.(string))
	}
	want := []string{"Home Batter", "Second Hitter", "Home Starter", "Home Reliever"}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("order = %v, want %v", names, want)
		}
	}
}
