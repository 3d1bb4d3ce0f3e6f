package aggregate

import (
	"fmt"

	"github.com/fortuna/dugout/catalog"
	"github.com/fortuna/dugout/project"
	"github.com/fortuna/dugout/table"
)

// Planner expands bundle identifiers into static plans. It holds only
// the catalog and the base URLs.
type Planner struct {
	cat      *catalog.Catalog
	base     string
	liveBase string
}

// PlannerOption configures a Planner.
type PlannerOption func(*Planner)

// WithBaseURLs points the planner at a different upstream (tests).
func WithBaseURLs(base, liveBase string) PlannerOption {
	return func(p *Planner) {
		if base != "" {
			p.base = base
		}
		if liveBase != "" {
			p.liveBase = liveBase
		}
	}
}

// NewPlanner builds a planner over the given catalog.
func NewPlanner(cat *catalog.Catalog, opts ...PlannerOption) *Planner {
	p := &Planner{cat: cat, base: BaseURL, liveBase: LiveBaseURL}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Planner) leaf(label, url string, spec project.Spec) Leaf {
	return Leaf{
		Label: label,
		URL:   url,
		Project: func(doc map[string]any) (*table.Table, error) {
			return spec.Project(doc, p.cat)
		},
	}
}

func (p *Planner) statLeaf(label, url string, group catalog.Group, variant catalog.Variant, statType string, prefix []project.Column) (Leaf, error) {
	spec, err := project.StatSplits(p.cat, group, variant, statType, prefix)
	if err != nil {
		return Leaf{}, err
	}
	return p.leaf(label, url, spec), nil
}

// PersonBundle is the static plan behind a Person composite.
func (p *Planner) PersonBundle(personID int64) (Plan, error) {
	if personID <= 0 {
		return Plan{}, fmt.Errorf("aggregate: invalid person id %d", personID)
	}

	plan := Plan{Bundle: "person"}
	plan.Leaves = append(plan.Leaves,
		p.leaf("bio", personURL(p.base, personID), personBioSpec()),
		p.leaf("education-hs", personURL(p.base, personID), educationSpec("highschools")),
		p.leaf("education-college", personURL(p.base, personID), educationSpec("colleges")),
		p.leaf("transactions", playerTransactionsURL(p.base, personID), project.Transactions()),
		p.leaf("awards", personAwardsURL(p.base, personID), awardsSpec()),
	)

	type statSlot struct {
		label    string
		group    catalog.Group
		variant  catalog.Variant
		statType string
		apiType  string
		apiGroup string
	}
	slots := []statSlot{
		{"hitting-career", catalog.GroupHitting, catalog.VariantStandard, "career", "career", "hitting"},
		{"hitting-career-adv", catalog.GroupHitting, catalog.VariantAdvanced, "careerAdvanced", "careerAdvanced", "hitting"},
		{"hitting-yby", catalog.GroupHitting, catalog.VariantStandard, "yearByYear", "yearByYear", "hitting"},
		{"hitting-yby-adv", catalog.GroupHitting, catalog.VariantAdvanced, "yearByYearAdvanced", "yearByYearAdvanced", "hitting"},
		{"pitching-career", catalog.GroupPitching, catalog.VariantStandard, "career", "career", "pitching"},
		{"pitching-career-adv", catalog.GroupPitching, catalog.VariantAdvanced, "careerAdvanced", "careerAdvanced", "pitching"},
		{"pitching-yby", catalog.GroupPitching, catalog.VariantStandard, "yearByYear", "yearByYear", "pitching"},
		{"pitching-yby-adv", catalog.GroupPitching, catalog.VariantAdvanced, "yearByYearAdvanced", "yearByYearAdvanced", "pitching"},
		{"fielding-career", catalog.GroupFielding, catalog.VariantStandard, "career", "career", "fielding"},
		{"fielding-yby", catalog.GroupFielding, catalog.VariantStandard, "yearByYear", "yearByYear", "fielding"},
	}
	for _, s := range slots {
		leaf, err := p.statLeaf(
			s.label,
			personStatsURL(p.base, personID, s.apiType, s.apiGroup),
			s.group, s.variant, s.statType,
			project.SeasonPrefix(),
		)
		if err != nil {
			return Plan{}, err
		}
		plan.Leaves = append(plan.Leaves, leaf)
	}

	plan.Leaves = append(plan.Leaves, p.leaf(
		"past-teams",
		personStatsURL(p.base, personID, "yearByYear", "hitting"),
		pastTeamsSpec(),
	))
	return plan, nil
}

// DebutGame is the single-leaf follow-up to a person bundle: once the
// bio has resolved the debut date, the debut season's game log yields
// the first game's date, id, team, and opponent. The plan cannot be
// part of PersonBundle because the date is not known up front.
func (p *Planner) DebutGame(personID int64, group, season, debutDate string) (Plan, error) {
	if personID <= 0 {
		return Plan{}, fmt.Errorf("aggregate: invalid person id %d", personID)
	}
	if season == "" || debutDate == "" {
		return Plan{}, fmt.Errorf("aggregate: debut game requires a season and a debut date")
	}
	return Plan{
		Bundle: "debut-game",
		Leaves: []Leaf{
			p.leaf("debut-game", personGameLogURL(p.base, personID, group, season), debutGameSpec(debutDate)),
		},
	}, nil
}

// FranchiseBundle is the static plan behind a Franchise composite.
func (p *Planner) FranchiseBundle(teamID int64) (Plan, error) {
	if teamID <= 0 {
		return Plan{}, fmt.Errorf("aggregate: invalid team id %d", teamID)
	}

	plan := Plan{Bundle: "franchise"}
	plan.Leaves = append(plan.Leaves,
		p.leaf("team-info", teamURL(p.base, teamID, ""), teamInfoSpec()),
		p.leaf("records", teamStandingsURL(p.base, teamID), ybyRecordsSpec()),
		p.leaf("record-splits", teamStandingsURL(p.base, teamID), project.RecordSplits(p.cat)),
		p.leaf("all-time-roster", rosterURL(p.base, teamID, "allTime", "", ""), allTimeRosterSpec()),
	)

	type slot struct {
		label    string
		group    catalog.Group
		variant  catalog.Variant
		apiType  string
		apiGroup string
	}
	slots := []slot{
		{"hitting-std", catalog.GroupHitting, catalog.VariantStandard, "yearByYear", "hitting"},
		{"hitting-adv", catalog.GroupHitting, catalog.VariantAdvanced, "yearByYearAdvanced", "hitting"},
		{"pitching-std", catalog.GroupPitching, catalog.VariantStandard, "yearByYear", "pitching"},
		{"pitching-adv", catalog.GroupPitching, catalog.VariantAdvanced, "yearByYearAdvanced", "pitching"},
		{"fielding", catalog.GroupFielding, catalog.VariantStandard, "yearByYear", "fielding"},
	}
	for _, s := range slots {
		statType := s.apiType
		leaf, err := p.statLeaf(
			s.label,
			teamStatsURL(p.base, teamID, s.apiType, s.apiGroup, ""),
			s.group, s.variant, statType,
			project.SeasonPrefix(),
		)
		if err != nil {
			return Plan{}, err
		}
		plan.Leaves = append(plan.Leaves, leaf)
	}

	plan.Leaves = append(plan.Leaves,
		p.leaf("hall-of-fame", hallOfFameURL(p.base), hofSpec(teamID)),
		p.leaf("retired-numbers", teamRetiredNumbersURL(p.base, teamID), retiredNumbersSpec()),
	)
	return plan, nil
}

// TeamBundle is the static plan behind a Team composite for one season.
func (p *Planner) TeamBundle(teamID int64, season string) (Plan, error) {
	if teamID <= 0 {
		return Plan{}, fmt.Errorf("aggregate: invalid team id %d", teamID)
	}
	if season == "" {
		return Plan{}, fmt.Errorf("aggregate: team bundle requires a season")
	}

	plan := Plan{Bundle: "team"}
	plan.Leaves = append(plan.Leaves,
		p.leaf("team-info", teamURL(p.base, teamID, season), teamInfoSpec()),
	)

	rosterLeafURL := rosterURL(p.base, teamID, "fullSeason", season, rosterStatsHydrate(season))
	type rosterSlot struct {
		label    string
		group    catalog.Group
		variant  catalog.Variant
		statType string
	}
	rosterSlots := []rosterSlot{
		{"roster-hitting", catalog.GroupHitting, catalog.VariantStandard, "season"},
		{"roster-hitting-adv", catalog.GroupHitting, catalog.VariantAdvanced, "seasonAdvanced"},
		{"roster-pitching", catalog.GroupPitching, catalog.VariantStandard, "season"},
		{"roster-pitching-adv", catalog.GroupPitching, catalog.VariantAdvanced, "seasonAdvanced"},
	}
	for _, s := range rosterSlots {
		spec, err := project.RosterStats(p.cat, s.group, s.variant, s.statType)
		if err != nil {
			return Plan{}, err
		}
		plan.Leaves = append(plan.Leaves, p.leaf(s.label, rosterLeafURL, spec))
	}
	fieldingSpec, err := project.RosterFielding(p.cat, "season")
	if err != nil {
		return Plan{}, err
	}
	plan.Leaves = append(plan.Leaves, p.leaf("roster-fielding", rosterLeafURL, fieldingSpec))

	type teamSlot struct {
		label    string
		group    catalog.Group
		variant  catalog.Variant
		apiType  string
		apiGroup string
	}
	teamSlots := []teamSlot{
		{"team-hitting", catalog.GroupHitting, catalog.VariantStandard, "season", "hitting"},
		{"team-hitting-adv", catalog.GroupHitting, catalog.VariantAdvanced, "seasonAdvanced", "hitting"},
		{"team-pitching", catalog.GroupPitching, catalog.VariantStandard, "season", "pitching"},
		{"team-pitching-adv", catalog.GroupPitching, catalog.VariantAdvanced, "seasonAdvanced", "pitching"},
		{"team-fielding", catalog.GroupFielding, catalog.VariantStandard, "season", "fielding"},
	}
	for _, s := range teamSlots {
		spec, err := project.TeamStats(p.cat, s.group, s.variant, s.apiType)
		if err != nil {
			return Plan{}, err
		}
		plan.Leaves = append(plan.Leaves, p.leaf(s.label, teamStatsURL(p.base, teamID, s.apiType, s.apiGroup, season), spec))
	}

	plan.Leaves = append(plan.Leaves,
		p.leaf("schedule", scheduleURL(p.base, teamID, season), project.GameLog(p.cat, teamID)),
	)

	for _, s := range []struct {
		label    string
		group    catalog.Group
		apiGroup string
	}{
		{"gamelog-hitting", catalog.GroupHitting, "hitting"},
		{"gamelog-pitching", catalog.GroupPitching, "pitching"},
		{"gamelog-fielding", catalog.GroupFielding, "fielding"},
	} {
		spec, err := gameLogStatsSpec(p.cat, s.group)
		if err != nil {
			return Plan{}, err
		}
		plan.Leaves = append(plan.Leaves, p.leaf(s.label, teamStatsURL(p.base, teamID, "gameLog", s.apiGroup, season), spec))
	}

	plan.Leaves = append(plan.Leaves,
		p.leaf("leaders-hitting", teamLeadersURL(p.base, teamID, "homeRuns,battingAverage,runsBattedIn,hits,stolenBases", "hitting", season), leadersFlatSpec()),
		p.leaf("leaders-pitching", teamLeadersURL(p.base, teamID, "wins,earnedRunAverage,strikeouts,saves,whip", "pitching", season), leadersFlatSpec()),
		p.leaf("leaders-fielding", teamLeadersURL(p.base, teamID, "assists,putOuts,fieldingPercentage", "fielding", season), leadersFlatSpec()),
		p.leaf("transactions", teamTransactionsURL(p.base, teamID, season), project.Transactions()),
		p.leaf("draft", draftURL(p.base, season), teamDraftSpec(teamID)),
		p.leaf("coaches", coachesURL(p.base, teamID, season), coachesSpec()),
	)
	return plan, nil
}

// LeagueBundle is the static plan behind a League composite.
func (p *Planner) LeagueBundle(season string) (Plan, error) {
	if season == "" {
		return Plan{}, fmt.Errorf("aggregate: league bundle requires a season")
	}

	plan := Plan{Bundle: "league"}
	type slot struct {
		label    string
		group    catalog.Group
		variant  catalog.Variant
		apiType  string
		apiGroup string
	}
	teamSlots := []slot{
		{"team-hitting", catalog.GroupHitting, catalog.VariantStandard, "season", "hitting"},
		{"team-hitting-adv", catalog.GroupHitting, catalog.VariantAdvanced, "seasonAdvanced", "hitting"},
		{"team-pitching", catalog.GroupPitching, catalog.VariantStandard, "season", "pitching"},
		{"team-pitching-adv", catalog.GroupPitching, catalog.VariantAdvanced, "seasonAdvanced", "pitching"},
		{"team-fielding", catalog.GroupFielding, catalog.VariantStandard, "season", "fielding"},
	}
	for _, s := range teamSlots {
		leaf, err := p.statLeaf(
			s.label,
			leagueStatsURL(p.base, s.apiType, s.apiGroup, season),
			s.group, s.variant, s.apiType,
			teamSplitPrefix(),
		)
		if err != nil {
			return Plan{}, err
		}
		plan.Leaves = append(plan.Leaves, leaf)
	}

	playerSlots := []slot{
		{"player-hitting", catalog.GroupHitting, catalog.VariantStandard, "season", "hitting"},
		{"player-hitting-adv", catalog.GroupHitting, catalog.VariantAdvanced, "seasonAdvanced", "hitting"},
		{"player-pitching", catalog.GroupPitching, catalog.VariantStandard, "season", "pitching"},
		{"player-pitching-adv", catalog.GroupPitching, catalog.VariantAdvanced, "seasonAdvanced", "pitching"},
		{"player-fielding", catalog.GroupFielding, catalog.VariantStandard, "season", "fielding"},
	}
	for _, s := range playerSlots {
		leaf, err := p.statLeaf(
			s.label,
			leaguePlayerStatsURL(p.base, s.apiType, s.apiGroup, season),
			s.group, s.variant, s.apiType,
			playerSplitPrefix(),
		)
		if err != nil {
			return Plan{}, err
		}
		plan.Leaves = append(plan.Leaves, leaf)
	}

	plan.Leaves = append(plan.Leaves,
		p.leaf("standings", standingsURL(p.base, season), project.RecordSplits(p.cat)),
	)
	return plan, nil
}

// DaySchedule is the single-leaf league-wide schedule plan for one date
// (YYYY-MM-DD).
func (p *Planner) DaySchedule(date string) (Plan, error) {
	if date == "" {
		return Plan{}, fmt.Errorf("aggregate: day schedule requires a date")
	}
	return Plan{
		Bundle: "schedule",
		Leaves: []Leaf{
			p.leaf("schedule", dayScheduleURL(p.base, date), project.DaySchedule(p.cat)),
		},
	}, nil
}

// GameSnapshot is the single-leaf live-feed plan. Its failure is the
// caller's failure.
func (p *Planner) GameSnapshot(gamePk int64, timecode string) (Plan, error) {
	if gamePk <= 0 {
		return Plan{}, fmt.Errorf("aggregate: invalid game pk %d", gamePk)
	}
	return Plan{
		Bundle: "game",
		Leaves: []Leaf{{
			Label: "live-feed",
			URL:   liveFeedURL(p.liveBase, gamePk, timecode),
		}},
	}, nil
}
