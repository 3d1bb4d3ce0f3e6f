package dugout

import (
	"context"

	"github.com/fortuna/dugout/project"
	"github.com/fortuna/dugout/refcache"
	"github.com/fortuna/dugout/table"
)

// Team is the single-season view of one club: the stat-hydrated roster,
// team totals, schedule with results, per-game stat logs, leaders,
// transactions, draft picks, and coaching staff.
type Team struct {
	bundle
	id     int64
	season string
	cache  *refcache.Cache
}

// Team fetches a team bundle for one season.
func (c *Client) Team(ctx context.Context, teamID int64, season string) (*Team, error) {
	plan, err := c.planner.TeamBundle(teamID, season)
	if err != nil {
		return nil, err
	}
	b, err := c.run(ctx, plan)
	if err != nil {
		return nil, err
	}
	return &Team{bundle: b, id: teamID, season: season, cache: c.cache}, nil
}

// ID returns the team's MLBAM id.
func (t *Team) ID() int64 { return t.id }

// Season returns the season the bundle describes.
func (t *Team) Season() string { return t.season }

// Info returns the one-row team identity table.
func (t *Team) Info() *table.Table { return t.table("team-info") }

// RosterHitting returns one standard hitting row per rostered player.
func (t *Team) RosterHitting() *table.Table { return t.table("roster-hitting") }

// RosterHittingAdvanced returns one advanced hitting row per player.
func (t *Team) RosterHittingAdvanced() *table.Table { return t.table("roster-hitting-adv") }

// RosterPitching returns one standard pitching row per player.
func (t *Team) RosterPitching() *table.Table { return t.table("roster-pitching") }

// RosterPitchingAdvanced returns one advanced pitching row per player.
func (t *Team) RosterPitchingAdvanced() *table.Table { return t.table("roster-pitching-adv") }

// RosterFielding returns one fielding row per (player, position) pair.
// The position matching the player's primary position carries a leading
// asterisk.
func (t *Team) RosterFielding() *table.Table { return t.table("roster-fielding") }

// Hitting returns the team's standard hitting totals.
func (t *Team) Hitting() *table.Table { return t.table("team-hitting") }

// HittingAdvanced returns the team's advanced hitting totals.
func (t *Team) HittingAdvanced() *table.Table { return t.table("team-hitting-adv") }

// Pitching returns the team's standard pitching totals.
func (t *Team) Pitching() *table.Table { return t.table("team-pitching") }

// PitchingAdvanced returns the team's advanced pitching totals.
func (t *Team) PitchingAdvanced() *table.Table { return t.table("team-pitching-adv") }

// Fielding returns the team's fielding totals.
func (t *Team) Fielding() *table.Table { return t.table("team-fielding") }

// Schedule returns one row per scheduled game from the team's
// perspective, with result, running record, and weather.
func (t *Team) Schedule() *table.Table { return t.table("schedule") }

// GameLogHitting returns one standard hitting row per game played.
func (t *Team) GameLogHitting() *table.Table { return t.table("gamelog-hitting") }

// GameLogPitching returns one standard pitching row per game played.
func (t *Team) GameLogPitching() *table.Table { return t.table("gamelog-pitching") }

// GameLogFielding returns one fielding row per game played.
func (t *Team) GameLogFielding() *table.Table { return t.table("gamelog-fielding") }

// LeadersHitting returns the team's hitting leaders across categories.
func (t *Team) LeadersHitting() *table.Table { return t.table("leaders-hitting") }

// LeadersPitching returns the team's pitching leaders across categories.
func (t *Team) LeadersPitching() *table.Table { return t.table("leaders-pitching") }

// LeadersFielding returns the team's fielding leaders across categories.
func (t *Team) LeadersFielding() *table.Table { return t.table("leaders-fielding") }

// LeadersHittingByCategory groups the hitting leaders into one table per
// category name.
func (t *Team) LeadersHittingByCategory() map[string]*table.Table {
	return t.leadersByCategory("leaders-hitting")
}

// LeadersPitchingByCategory groups the pitching leaders into one table
// per category name.
func (t *Team) LeadersPitchingByCategory() map[string]*table.Table {
	return t.leadersByCategory("leaders-pitching")
}

// LeadersFieldingByCategory groups the fielding leaders into one table
// per category name.
func (t *Team) LeadersFieldingByCategory() map[string]*table.Table {
	return t.leadersByCategory("leaders-fielding")
}

func (t *Team) leadersByCategory(label string) map[string]*table.Table {
	doc := t.res.Doc(label)
	if doc == nil {
		return map[string]*table.Table{}
	}
	byCat, err := project.Leaders(doc, nil)
	if err != nil {
		return map[string]*table.Table{}
	}
	return byCat
}

// Transactions lists the team's transactions for the season.
func (t *Team) Transactions() *table.Table { return t.table("transactions") }

// Draft lists the team's picks in the season's draft.
func (t *Team) Draft() *table.Table { return t.table("draft") }

// Coaches lists the coaching staff.
func (t *Team) Coaches() *table.Table { return t.table("coaches") }

func (t *Team) infoStr(col string) string {
	info := t.Info()
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

// League returns the team's league name.
func (t *Team) League() string { return t.infoStr("league") }

// Division returns the team's division name.
func (t *Team) Division() string { return t.infoStr("division") }

// Venue identifies the team's home venue, enriched with city and state
// from the venues reference table when the venue id resolves there.
type Venue struct {
	ID    int64
	Name  string
	City  string
	State string
}

// Venue returns the team's home venue.
func (t *Team) Venue() Venue {
	v := Venue{Name: t.infoStr("venue")}
	info := t.Info()
	if info.Len() > 0 {
		if raw, ok := info.Cell(0, "venueID"); ok {
			if id, ok := raw.(int64); ok {
				v.ID = id
			}
		}
	}
	if t.cache == nil || v.ID == 0 {
		return v
	}
	row, found, err := t.cache.Lookup(refcache.Venues, v.ID)
	if err != nil || !found || len(row) < 4 {
		return v
	}
	// venues schema: mlbam, name, city, state, active
	if s, ok := row[2].(string); ok && s != table.Sentinel {
		v.City = s
	}
	if s, ok := row[3].(string); ok && s != table.Sentinel {
		v.State = s
	}
	return v
}
