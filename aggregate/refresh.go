package aggregate

import (
	"fmt"

	"github.com/fortuna/dugout/project"
	"github.com/fortuna/dugout/refcache"
)

// ReferenceRefresh builds the plan that re-derives one reference table
// from the upstream service. The seasons argument is required for the
// year-by-year tables (one leaf per season, labels "standings-<year>")
// and for teams/people (the season the snapshot describes); other tables
// ignore it. The two bbref WAR tables come from the HTML scraper, not
// from this service, so no plan exists for them.
func (p *Planner) ReferenceRefresh(t refcache.Table, seasons []string) (Plan, error) {
	season := ""
	if len(seasons) > 0 {
		season = seasons[len(seasons)-1]
	}

	switch t {
	case refcache.Teams:
		return Plan{Bundle: "refresh-teams", Leaves: []Leaf{
			p.leaf("teams", allTeamsURL(p.base, season), refreshTeamsSpec()),
		}}, nil
	case refcache.People:
		return Plan{Bundle: "refresh-people", Leaves: []Leaf{
			p.leaf("people", allPlayersURL(p.base, season), refreshPeopleSpec()),
		}}, nil
	case refcache.Bios:
		return Plan{Bundle: "refresh-bios", Leaves: []Leaf{
			p.leaf("bios", allPlayersURL(p.base, season), refreshBiosSpec()),
		}}, nil
	case refcache.Venues:
		return Plan{Bundle: "refresh-venues", Leaves: []Leaf{
			p.leaf("venues", allVenuesURL(p.base), refreshVenuesSpec()),
		}}, nil
	case refcache.Seasons:
		return Plan{Bundle: "refresh-seasons", Leaves: []Leaf{
			p.leaf("seasons", allSeasonsURL(p.base), refreshSeasonsSpec()),
		}}, nil
	case refcache.Leagues:
		return Plan{Bundle: "refresh-leagues", Leaves: []Leaf{
			p.leaf("leagues", allLeaguesURL(p.base), refreshLeaguesSpec()),
		}}, nil
	case refcache.HallOfFame:
		return Plan{Bundle: "refresh-hall-of-fame", Leaves: []Leaf{
			p.leaf("hall-of-fame", hallOfFameURL(p.base), refreshHOFSpec()),
		}}, nil
	case refcache.Broadcasts:
		return Plan{Bundle: "refresh-broadcasts", Leaves: []Leaf{
			p.leaf("broadcasts", broadcastsURL(p.base), refreshBroadcastsSpec()),
		}}, nil
	case refcache.YBYRecords:
		if len(seasons) == 0 {
			return Plan{}, fmt.Errorf("aggregate: %s refresh requires seasons", t)
		}
		plan := Plan{Bundle: "refresh-yby-records"}
		for _, s := range seasons {
			plan.Leaves = append(plan.Leaves, p.leaf("standings-"+s, standingsURL(p.base, s), ybyRecordsSpec()))
		}
		return plan, nil
	case refcache.YBYStandings:
		if len(seasons) == 0 {
			return Plan{}, fmt.Errorf("aggregate: %s refresh requires seasons", t)
		}
		plan := Plan{Bundle: "refresh-yby-standings"}
		for _, s := range seasons {
			plan.Leaves = append(plan.Leaves, p.leaf("standings-"+s, standingsURL(p.base, s), project.RecordSplits(p.cat)))
		}
		return plan, nil
	case refcache.WARHitting, refcache.WARPitching:
		return Plan{}, fmt.Errorf("aggregate: %s is refreshed from the HTML source, not the stats service", t)
	default:
		return Plan{}, fmt.Errorf("aggregate: unknown reference table %q", t)
	}
}

// yearCol reads a season or year the service serves as either a JSON
// string or a number.
func yearCol(name string, required bool, path ...string) project.Column {
	return project.Column{Name: name, Required: required, Extract: func(row map[string]any) any {
		if s := project.Str(row, path...); s != "" {
			return s
		}
		if n, ok := project.Int(row, path...); ok {
			return fmt.Sprint(n)
		}
		return nil
	}}
}

func refreshTeamsSpec() project.Spec {
	return project.Spec{
		Path: []string{"teams"},
		Prefix: []project.Column{
			intCol("mlbam", true, "id"),
			yearCol("season", true, "season"),
			strCol("name", false, "name"),
			strCol("abbreviation", false, "abbreviation"),
			strCol("teamCode", false, "teamCode"),
			strCol("league", false, "league", "name"),
			strCol("division", false, "division", "name"),
			strCol("venue", false, "venue", "name"),
			strCol("firstYear", false, "firstYearOfPlay"),
		},
		SortColumn: "mlbam",
	}
}

func refreshPeopleSpec() project.Spec {
	return project.Spec{
		Path: []string{"people"},
		Prefix: []project.Column{
			intCol("mlbam", true, "id"),
			strCol("name", false, "fullName"),
			strCol("firstName", false, "firstName"),
			strCol("lastName", false, "lastName"),
			strCol("birthDate", false, "birthDate"),
			strCol("debutDate", false, "mlbDebutDate"),
			strCol("lastGameDate", false, "lastPlayedDate"),
			strCol("position", false, "primaryPosition", "abbreviation"),
			strCol("bats", false, "batSide", "code"),
			strCol("throws", false, "pitchHand", "code"),
		},
		SortColumn: "mlbam",
	}
}

func refreshBiosSpec() project.Spec {
	return project.Spec{
		Path: []string{"people"},
		Prefix: []project.Column{
			intCol("mlbam", true, "id"),
			strCol("birthCity", false, "birthCity"),
			strCol("birthState", false, "birthStateProvince"),
			strCol("birthCountry", false, "birthCountry"),
			strCol("height", false, "height"),
			intCol("weight", false, "weight"),
			strCol("highSchool", false, "education", "highschool"),
			strCol("college", false, "education", "college"),
		},
		SortColumn: "mlbam",
	}
}

func refreshVenuesSpec() project.Spec {
	return project.Spec{
		Path: []string{"venues"},
		Prefix: []project.Column{
			intCol("mlbam", true, "id"),
			strCol("name", false, "name"),
			strCol("city", false, "location", "city"),
			strCol("state", false, "location", "stateAbbrev"),
			{Name: "active", Extract: func(row map[string]any) any {
				if b, ok := project.Bool(row, "active"); ok {
					return b
				}
				return nil
			}},
		},
		SortColumn: "mlbam",
	}
}

func refreshSeasonsSpec() project.Spec {
	return project.Spec{
		Path: []string{"seasons"},
		Prefix: []project.Column{
			yearCol("year", true, "seasonId"),
			strCol("preSeasonStart", false, "preSeasonStartDate"),
			strCol("seasonStart", false, "seasonStartDate"),
			strCol("regularSeasonStart", false, "regularSeasonStartDate"),
			strCol("regularSeasonEnd", false, "regularSeasonEndDate"),
			strCol("postSeasonEnd", false, "postSeasonEndDate"),
			strCol("seasonEnd", false, "seasonEndDate"),
		},
		SortColumn: "year",
	}
}

func refreshLeaguesSpec() project.Spec {
	return project.Spec{
		Path: []string{"leagues"},
		Prefix: []project.Column{
			intCol("mlbam", true, "id"),
			strCol("name", false, "name"),
			strCol("abbreviation", false, "abbreviation"),
			strCol("firstYear", false, "seasonDateInfo", "firstDate"),
			strCol("lastYear", false, "seasonDateInfo", "lastDate"),
		},
		SortColumn: "mlbam",
	}
}

func refreshHOFSpec() project.Spec {
	return project.Spec{
		Path: []string{"awards"},
		Prefix: []project.Column{
			intCol("mlbam", true, "player", "id"),
			strCol("name", false, "player", "nameFirstLast"),
			yearCol("inducted", true, "season"),
			strCol("votedBy", false, "votedBy"),
			strCol("category", false, "notes"),
		},
		SortColumn: "inducted",
	}
}

func refreshBroadcastsSpec() project.Spec {
	return project.Spec{
		Path: []string{"broadcasters"},
		Prefix: []project.Column{
			intCol("id", true, "id"),
			strCol("name", false, "name"),
			strCol("type", false, "type"),
			strCol("callSign", false, "callSign"),
			strCol("network", false, "network"),
		},
		SortColumn: "id",
	}
}
