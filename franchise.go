package dugout

import (
	"context"

	"github.com/fortuna/dugout/table"
)

// Franchise is the all-history view of one club: season records with
// splits, year-by-year team stat lines, the all-time roster, Hall of
// Fame members, and retired numbers.
type Franchise struct {
	bundle
	id int64
}

// Franchise fetches a franchise bundle.
func (c *Client) Franchise(ctx context.Context, teamID int64) (*Franchise, error) {
	plan, err := c.planner.FranchiseBundle(teamID)
	if err != nil {
		return nil, err
	}
	b, err := c.run(ctx, plan)
	if err != nil {
		return nil, err
	}
	return &Franchise{bundle: b, id: teamID}, nil
}

// ID returns the franchise's MLBAM team id.
func (f *Franchise) ID() int64 { return f.id }

// Info returns the one-row team identity table.
func (f *Franchise) Info() *table.Table { return f.table("team-info") }

// Records returns one season-record row per year.
func (f *Franchise) Records() *table.Table { return f.table("records") }

// RecordSplits returns the full per-season record-split table (home,
// away, one-run, day, night, and the rest).
func (f *Franchise) RecordSplits() *table.Table { return f.table("record-splits") }

// AllTimeRoster lists everyone who ever appeared for the club.
func (f *Franchise) AllTimeRoster() *table.Table { return f.table("all-time-roster") }

func (f *Franchise) infoStr(col string) string {
	info := f.Info()
	if info.Len() == 0 {
		return ""
	}
	v, ok := info.Cell(0, col)
	if !ok {
		return ""
	}
	s, ok := v.(string)
	if !ok || s == table.Sentinel {
		return ""
	}
	return s
}

// FirstYear returns the club's first year of play.
func (f *Franchise) FirstYear() string { return f.infoStr("firstYear") }

// LastYear returns the most recent season in the club's record table,
// falling back to the identity leaf's season.
func (f *Franchise) LastYear() string {
	recs := f.Records()
	if recs.Len() > 0 {
		if v, ok := recs.Cell(recs.Len()-1, "season"); ok {
			if s, ok := v.(string); ok && s != table.Sentinel {
				return s
			}
		}
	}
	return f.infoStr("season")
}

// RosterByPosition filters the all-time roster to the given position
// abbreviations.
func (f *Franchise) RosterByPosition(positions ...string) *table.Table {
	want := make(map[string]bool, len(positions))
	for _, pos := range positions {
		want[pos] = true
	}
	return f.rosterWhere("position", func(s string) bool { return want[s] })
}

func (f *Franchise) rosterWhere(col string, keep func(string) bool) *table.Table {
	roster := f.AllTimeRoster()
	idx := -1
	for i, c := range roster.Columns() {
		if c == col {
			idx = i
		}
	}
	if idx < 0 {
		return table.New(roster.Columns()...)
	}
	return roster.Filter(func(row []any) bool {
		s, ok := row[idx].(string)
		return ok && keep(s)
	})
}

// Pitchers slices the all-time roster to pitchers.
func (f *Franchise) Pitchers() *table.Table { return f.RosterByPosition("P") }

// Catchers slices the all-time roster to catchers.
func (f *Franchise) Catchers() *table.Table { return f.RosterByPosition("C") }

// Infielders slices the all-time roster to the four infield positions.
func (f *Franchise) Infielders() *table.Table {
	return f.RosterByPosition("1B", "2B", "3B", "SS")
}

// Outfielders slices the all-time roster to the outfield positions.
func (f *Franchise) Outfielders() *table.Table {
	return f.RosterByPosition("LF", "CF", "RF", "OF")
}

// DesignatedHitters slices the all-time roster to designated hitters.
func (f *Franchise) DesignatedHitters() *table.Table { return f.RosterByPosition("DH") }

// ActiveRoster slices the all-time roster to players with an active
// status.
func (f *Franchise) ActiveRoster() *table.Table {
	return f.rosterWhere("status", func(s string) bool { return s == "Active" })
}

// Hitting returns one standard hitting row per season.
func (f *Franchise) Hitting() *table.Table { return f.table("hitting-std") }

// HittingAdvanced returns one advanced hitting row per season.
func (f *Franchise) HittingAdvanced() *table.Table { return f.table("hitting-adv") }

// Pitching returns one standard pitching row per season.
func (f *Franchise) Pitching() *table.Table { return f.table("pitching-std") }

// PitchingAdvanced returns one advanced pitching row per season.
func (f *Franchise) PitchingAdvanced() *table.Table { return f.table("pitching-adv") }

// Fielding returns one fielding row per season.
func (f *Franchise) Fielding() *table.Table { return f.table("fielding") }

// HallOfFame lists the club's Hall of Fame inductees.
func (f *Franchise) HallOfFame() *table.Table { return f.table("hall-of-fame") }

// RetiredNumbers lists the club's retired numbers.
func (f *Franchise) RetiredNumbers() *table.Table { return f.table("retired-numbers") }
