package dugout

import (
	"context"

	"github.com/fortuna/dugout/table"
)

// League is the league-wide view of one season: every team's stat
// lines, qualified player stat lines, and the standings with record
// splits.
type League struct {
	bundle
	season string
}

// League fetches a league bundle for one season.
func (c *Client) League(ctx context.Context, season string) (*League, error) {
	plan, err := c.planner.LeagueBundle(season)
	if err != nil {
		return nil, err
	}
	b, err := c.run(ctx, plan)
	if err != nil {
		return nil, err
	}
	return &League{bundle: b, season: season}, nil
}

// Season returns the season the bundle describes.
func (l *League) Season() string { return l.season }

// TeamHitting returns one standard hitting row per team.
func (l *League) TeamHitting() *table.Table { return l.table("team-hitting") }

// TeamHittingAdvanced returns one advanced hitting row per team.
func (l *League) TeamHittingAdvanced() *table.Table { return l.table("team-hitting-adv") }

// TeamPitching returns one standard pitching row per team.
func (l *League) TeamPitching() *table.Table { return l.table("team-pitching") }

// TeamPitchingAdvanced returns one advanced pitching row per team.
func (l *League) TeamPitchingAdvanced() *table.Table { return l.table("team-pitching-adv") }

// TeamFielding returns one fielding row per team.
func (l *League) TeamFielding() *table.Table { return l.table("team-fielding") }

// PlayerHitting returns one standard hitting row per qualified batter.
func (l *League) PlayerHitting() *table.Table { return l.table("player-hitting") }

// PlayerHittingAdvanced returns one advanced hitting row per qualified
// batter.
func (l *League) PlayerHittingAdvanced() *table.Table { return l.table("player-hitting-adv") }

// PlayerPitching returns one standard pitching row per qualified
// pitcher.
func (l *League) PlayerPitching() *table.Table { return l.table("player-pitching") }

// PlayerPitchingAdvanced returns one advanced pitching row per
// qualified pitcher.
func (l *League) PlayerPitchingAdvanced() *table.Table { return l.table("player-pitching-adv") }

// PlayerFielding returns one fielding row per qualified player.
func (l *League) PlayerFielding() *table.Table { return l.table("player-fielding") }

// Standings returns the full record-split standings table.
func (l *League) Standings() *table.Table { return l.table("standings") }
