package dugout

import (
	"context"

	"github.com/fortuna/dugout/table"
)

// Person is the aggregated view of one player: identity, career and
// year-by-year stat lines, transactions, and awards. Accessors return
// an empty table with the full header when the backing request failed;
// Status distinguishes "no data" from "fetch failed".
type Person struct {
	bundle
	id    int64
	debut *table.Table
}

// Person fetches a player bundle.
func (c *Client) Person(ctx context.Context, personID int64) (*Person, error) {
	plan, err := c.planner.PersonBundle(personID)
	if err != nil {
		return nil, err
	}
	b, err := c.run(ctx, plan)
	if err != nil {
		return nil, err
	}
	p := &Person{bundle: b, id: personID}
	p.debut = c.debutGame(ctx, p)
	return p, nil
}

// debutGame resolves the player's first game from the debut season's
// game log. It runs after the bundle because the date comes from the
// bio leaf; any failure leaves the accessor's empty-table fallback.
func (c *Client) debutGame(ctx context.Context, p *Person) *table.Table {
	debut := p.DebutDate()
	if len(debut) < 4 {
		return nil
	}
	group := "hitting"
	if p.Position() == "P" {
		group = "pitching"
	}
	plan, err := c.planner.DebutGame(p.id, group, debut[:4], debut)
	if err != nil {
		return nil
	}
	b, err := c.run(ctx, plan)
	if err != nil {
		return nil
	}
	return b.table("debut-game")
}

// ID returns the player's MLBAM id.
func (p *Person) ID() int64 { return p.id }

// Bio returns the one-row identity table.
func (p *Person) Bio() *table.Table { return p.table("bio") }

// bioStr reads one cell of the identity row, or "" when the bio leaf
// failed or the field is absent.
func (p *Person) bioStr(col string) string {
	bio := p.Bio()
	if bio.Len() == 0 {
		return ""
	}
	v, ok := bio.Cell(0, col)
	if !ok {
		return ""
	}
	s, ok := v.(string)
	if !ok || s == table.Sentinel {
		return ""
	}
	return s
}

// FullName returns the player's full name.
func (p *Person) FullName() string { return p.bioStr("fullName") }

// FirstName returns the player's given first name.
func (p *Person) FirstName() string { return p.bioStr("firstName") }

// MiddleName returns the player's middle name, if recorded.
func (p *Person) MiddleName() string { return p.bioStr("middleName") }

// LastName returns the player's last name.
func (p *Person) LastName() string { return p.bioStr("lastName") }

// NickName returns the player's nickname, if recorded.
func (p *Person) NickName() string { return p.bioStr("nickName") }

// UseName returns the name the player goes by.
func (p *Person) UseName() string { return p.bioStr("useName") }

// Position returns the player's primary position abbreviation.
func (p *Person) Position() string { return p.bioStr("position") }

// BirthDate returns the player's birth date (YYYY-MM-DD).
func (p *Person) BirthDate() string { return p.bioStr("birthDate") }

// DeathDate returns the player's death date, or "" while living.
func (p *Person) DeathDate() string { return p.bioStr("deathDate") }

// DebutDate returns the player's MLB debut date.
func (p *Person) DebutDate() string { return p.bioStr("debutDate") }

// LastGameDate returns the date of the player's last MLB game, or ""
// while active.
func (p *Person) LastGameDate() string { return p.bioStr("lastGameDate") }

// Bats returns the player's batting side code.
func (p *Person) Bats() string { return p.bioStr("bats") }

// Throws returns the player's throwing hand code.
func (p *Person) Throws() string { return p.bioStr("throws") }

// HighSchools lists the player's high schools.
func (p *Person) HighSchools() *table.Table { return p.table("education-hs") }

// Colleges lists the player's colleges.
func (p *Person) Colleges() *table.Table { return p.table("education-college") }

// Transactions lists the player's transaction history, newest first.
func (p *Person) Transactions() *table.Table { return p.table("transactions") }

// Awards lists the player's awards.
func (p *Person) Awards() *table.Table { return p.table("awards") }

// HittingCareer returns the career standard hitting line.
func (p *Person) HittingCareer() *table.Table { return p.table("hitting-career") }

// HittingCareerAdvanced returns the career advanced hitting line.
func (p *Person) HittingCareerAdvanced() *table.Table { return p.table("hitting-career-adv") }

// HittingYearByYear returns one standard hitting row per season.
func (p *Person) HittingYearByYear() *table.Table { return p.table("hitting-yby") }

// HittingYearByYearAdvanced returns one advanced hitting row per season.
func (p *Person) HittingYearByYearAdvanced() *table.Table { return p.table("hitting-yby-adv") }

// PitchingCareer returns the career standard pitching line.
func (p *Person) PitchingCareer() *table.Table { return p.table("pitching-career") }

// PitchingCareerAdvanced returns the career advanced pitching line.
func (p *Person) PitchingCareerAdvanced() *table.Table { return p.table("pitching-career-adv") }

// PitchingYearByYear returns one standard pitching row per season.
func (p *Person) PitchingYearByYear() *table.Table { return p.table("pitching-yby") }

// PitchingYearByYearAdvanced returns one advanced pitching row per season.
func (p *Person) PitchingYearByYearAdvanced() *table.Table { return p.table("pitching-yby-adv") }

// FieldingCareer returns the career fielding line.
func (p *Person) FieldingCareer() *table.Table { return p.table("fielding-career") }

// FieldingYearByYear returns one fielding row per season.
func (p *Person) FieldingYearByYear() *table.Table { return p.table("fielding-yby") }

// PastTeams lists the (season, team) pairs of the player's career.
func (p *Person) PastTeams() *table.Table { return p.table("past-teams") }

// DebutGame returns the player's first MLB game as a one-row table
// (date, gamePk, team, opponent). The table is empty when the bio or
// the debut season's game log was unavailable.
func (p *Person) DebutGame() *table.Table {
	if p.debut != nil {
		return p.debut
	}
	return table.New("date", "gamePk", "team", "opponent")
}
