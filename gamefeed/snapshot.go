// Package gamefeed derives every view of a live game from one feed
// document: linescore, situation, diamond, matchup, per-team box tables,
// and the event and plate-appearance logs. It issues no HTTP calls of
// its own; every structural access is defensive and yields the sentinel
// on a missing sub-path.
package gamefeed

import (
	"fmt"
	"time"

	"github.com/fortuna/dugout/catalog"
	"github.com/fortuna/dugout/project"
	"github.com/fortuna/dugout/table"
)

// defaultScheduledInnings is used when the feed omits scheduledInnings.
// The upstream almost always schedules nine; the default is deliberate
// and documented rather than inferred.
const defaultScheduledInnings = 9

const (
	feedTimeLayout    = "2006-01-02T15:04:05.000Z"
	compactTimeLayout = "20060102_150405"
)

// Snapshot is an immutable derivation of one live-feed document. A
// timecode-parameterized document yields a snapshot of that moment.
type Snapshot struct {
	doc map[string]any
	cat *catalog.Catalog
}

// New wraps a decoded live-feed document.
func New(doc map[string]any, cat *catalog.Catalog) *Snapshot {
	return &Snapshot{doc: doc, cat: cat}
}

// GamePk returns the game's MLBAM identifier.
func (s *Snapshot) GamePk() int64 {
	pk, _ := project.Int(s.doc, "gamePk")
	return pk
}

// TeamID returns the home or away team's MLBAM id.
func (s *Snapshot) TeamID(home bool) int64 {
	id, _ := project.Int(s.doc, "gameData", "teams", side(home), "id")
	return id
}

// TeamName returns the home or away team name.
func (s *Snapshot) TeamName(home bool) string {
	return project.Str(s.doc, "gameData", "teams", side(home), "name")
}

// TeamRecord returns the side's win-loss record as "W-L", or the
// sentinel when absent.
func (s *Snapshot) TeamRecord(home bool) string {
	w, wok := project.Int(s.doc, "gameData", "teams", side(home), "record", "wins")
	l, lok := project.Int(s.doc, "gameData", "teams", side(home), "record", "losses")
	if !wok || !lok {
		return table.Sentinel
	}
	return fmt.Sprintf("%d-%d", w, l)
}

// ScheduledInnings returns the scheduled inning count, defaulting to 9
// when the feed omits it.
func (s *Snapshot) ScheduledInnings() int {
	if n, ok := project.Int(s.doc, "liveData", "linescore", "scheduledInnings"); ok && n > 0 {
		return int(n)
	}
	return defaultScheduledInnings
}

func side(home bool) string {
	if home {
		return "home"
	}
	return "away"
}

// LinescoreColumns is the per-inning linescore header.
func LinescoreColumns() []string {
	return []string{
		"inning", "inningOrdinal",
		"awayRuns", "awayHits", "awayErrors",
		"homeRuns", "homeHits", "homeErrors",
	}
}

// Linescore returns one row per scheduled inning, in inning order.
// Innings not yet played carry the sentinel in every runs/hits/errors
// cell; the ordinal comes from the catalog mapping.
func (s *Snapshot) Linescore() *table.Table {
	out := table.New(LinescoreColumns()...)
	byInning := make(map[int64]map[string]any)
	for _, e := range project.Slice(s.doc, "liveData", "linescore", "innings") {
		inning, ok := e.(map[string]any)
		if !ok {
			continue
		}
		if num, ok := project.Int(inning, "num"); ok {
			byInning[num] = inning
		}
	}

	for n := 1; n <= s.ScheduledInnings(); n++ {
		inning := byInning[int64(n)]
		out.AppendRow(
			int64(n),
			s.cat.Ordinal(n),
			project.Cell(inning, "away", "runs"),
			project.Cell(inning, "away", "hits"),
			project.Cell(inning, "away", "errors"),
			project.Cell(inning, "home", "runs"),
			project.Cell(inning, "home", "hits"),
			project.Cell(inning, "home", "errors"),
		)
	}
	return out
}

// Totals holds one side's linescore totals. Cells may be the sentinel
// before the game starts.
type Totals struct {
	Runs   any
	Hits   any
	Errors any
}

// LinescoreTotals returns the game's total block for both sides.
func (s *Snapshot) LinescoreTotals() (away, home Totals) {
	a := project.Map(s.doc, "liveData", "linescore", "teams", "away")
	h := project.Map(s.doc, "liveData", "linescore", "teams", "home")
	return Totals{
			Runs:   project.Cell(a, "runs"),
			Hits:   project.Cell(a, "hits"),
			Errors: project.Cell(a, "errors"),
		}, Totals{
			Runs:   project.Cell(h, "runs"),
			Hits:   project.Cell(h, "hits"),
			Errors: project.Cell(h, "errors"),
		}
}

// Situation is the live count and baserunner state. During an inning
// break the count cells are the sentinel and the base fields are empty.
type Situation struct {
	Outs          any
	Balls         any
	Strikes       any
	BasesOccupied []int
	RunnersOn     map[int]Player
	OnDeck        Player
	InHole        Player
}

// Player is a (name, id) pair pulled from the feed.
type Player struct {
	ID   int64
	Name string
}

func (s *Snapshot) player(path ...string) Player {
	m := project.Map(s.doc, path...)
	if m == nil {
		return Player{}
	}
	id, _ := project.Int(m, "id")
	return Player{ID: id, Name: project.Str(m, "fullName")}
}

// Situation returns the current game situation.
func (s *Snapshot) Situation() Situation {
	sit := Situation{
		Outs:      project.Cell(s.doc, "liveData", "linescore", "outs"),
		Balls:     project.Cell(s.doc, "liveData", "linescore", "balls"),
		Strikes:   project.Cell(s.doc, "liveData", "linescore", "strikes"),
		RunnersOn: make(map[int]Player),
		OnDeck:    s.player("liveData", "linescore", "offense", "onDeck"),
		InHole:    s.player("liveData", "linescore", "offense", "inHole"),
	}
	baseKeys := []string{"first", "second", "third"}
	for i, key := range baseKeys {
		runner := s.player("liveData", "linescore", "offense", key)
		if runner.ID != 0 {
			sit.BasesOccupied = append(sit.BasesOccupied, i+1)
			sit.RunnersOn[i+1] = runner
		}
	}
	return sit
}

// Diamond maps the nine defensive position ids to the fielders currently
// holding them.
func (s *Snapshot) Diamond() map[int]Player {
	keys := map[int]string{
		1: "pitcher", 2: "catcher", 3: "first", 4: "second", 5: "third",
		6: "shortstop", 7: "left", 8: "center", 9: "right",
	}
	out := make(map[int]Player, len(keys))
	for pos, key := range keys {
		if p := s.player("liveData", "linescore", "defense", key); p.ID != 0 {
			out[pos] = p
		}
	}
	return out
}

// Matchup is the current batter/pitcher pairing with the strike zone.
type Matchup struct {
	Batter     Player
	BatSide    string
	ZoneTop    any
	ZoneBottom any
	Pitcher    Player
	PitchHand  string
}

// Matchup returns the at-bat matchup state.
func (s *Snapshot) Matchup() Matchup {
	cur := project.Map(s.doc, "liveData", "plays", "currentPlay")
	m := Matchup{
		Batter:    s.player("liveData", "plays", "currentPlay", "matchup", "batter"),
		BatSide:   project.Str(cur, "matchup", "batSide", "code"),
		Pitcher:   s.player("liveData", "plays", "currentPlay", "matchup", "pitcher"),
		PitchHand: project.Str(cur, "matchup", "pitchHand", "code"),
	}
	m.ZoneTop = table.Sentinel
	m.ZoneBottom = table.Sentinel
	events := project.Slice(cur, "playEvents")
	for i := len(events) - 1; i >= 0; i-- {
		ev, ok := events[i].(map[string]any)
		if !ok {
			continue
		}
		if pd := project.Map(ev, "pitchData"); pd != nil {
			m.ZoneTop = project.Cell(pd, "strikeZoneTop")
			m.ZoneBottom = project.Cell(pd, "strikeZoneBottom")
			break
		}
	}
	return m
}

// BatterIsHome applies the authoritative home-batting rule: the batter
// id appearing under the home team's player block means home is
// batting. The inning-half field is not consulted; it can be absent
// mid-transition.
func (s *Snapshot) BatterIsHome(batterID int64) bool {
	players := project.Map(s.doc, "liveData", "boxscore", "teams", "home", "players")
	if players == nil {
		return false
	}
	_, ok := players[fmt.Sprintf("ID%d", batterID)]
	return ok
}

func parseFeedTime(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(feedTimeLayout, s); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	return time.Time{}, false
}

func compactTime(s string) any {
	t, ok := parseFeedTime(s)
	if !ok {
		return table.Sentinel
	}
	return t.UTC().Format(compactTimeLayout)
}
