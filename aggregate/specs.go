package aggregate

import (
	"github.com/fortuna/dugout/catalog"
	"github.com/fortuna/dugout/project"
)

// Small projection specs owned by the plans. The bigger, reusable ones
// (stat splits, rosters, schedule, transactions, draft, records) live in
// the project package.

func strCol(name string, required bool, path ...string) project.Column {
	return project.Column{Name: name, Required: required, Extract: func(row map[string]any) any {
		if s := project.Str(row, path...); s != "" {
			return s
		}
		return nil
	}}
}

func intCol(name string, required bool, path ...string) project.Column {
	return project.Column{Name: name, Required: required, Extract: func(row map[string]any) any {
		if n, ok := project.Int(row, path...); ok {
			return n
		}
		return nil
	}}
}

func firstElementRows(key string) func(doc map[string]any) []map[string]any {
	return func(doc map[string]any) []map[string]any {
		for _, e := range project.Slice(doc, key) {
			if m, ok := e.(map[string]any); ok {
				return []map[string]any{m}
			}
		}
		return nil
	}
}

// personBioSpec flattens people[0] into a one-row identity table.
func personBioSpec() project.Spec {
	return project.Spec{
		Rows: firstElementRows("people"),
		Prefix: []project.Column{
			intCol("mlbam", true, "id"),
			strCol("fullName", false, "fullName"),
			strCol("firstName", false, "firstName"),
			strCol("middleName", false, "middleName"),
			strCol("lastName", false, "lastName"),
			strCol("nickName", false, "nickName"),
			strCol("useName", false, "useName"),
			strCol("position", false, "primaryPosition", "abbreviation"),
			strCol("birthDate", false, "birthDate"),
			strCol("birthCity", false, "birthCity"),
			strCol("birthCountry", false, "birthCountry"),
			strCol("deathDate", false, "deathDate"),
			strCol("debutDate", false, "mlbDebutDate"),
			strCol("lastGameDate", false, "lastPlayedDate"),
			strCol("height", false, "height"),
			intCol("weight", false, "weight"),
			strCol("bats", false, "batSide", "code"),
			strCol("throws", false, "pitchHand", "code"),
		},
	}
}

// educationSpec lists a player's schools of one kind ("highschools" or
// "colleges") from the hydrated education block.
func educationSpec(kind string) project.Spec {
	return project.Spec{
		Rows: func(doc map[string]any) []map[string]any {
			var rows []map[string]any
			for _, e := range project.Slice(doc, "people") {
				person, ok := e.(map[string]any)
				if !ok {
					continue
				}
				for _, s := range project.Slice(person, "education", kind) {
					if m, ok := s.(map[string]any); ok {
						rows = append(rows, m)
					}
				}
			}
			return rows
		},
		Prefix: []project.Column{
			strCol("school", true, "name"),
			strCol("city", false, "city"),
			strCol("state", false, "state"),
			strCol("country", false, "country"),
		},
	}
}

func awardsSpec() project.Spec {
	return project.Spec{
		Path: []string{"awards"},
		Prefix: []project.Column{
			strCol("id", true, "id"),
			strCol("name", false, "name"),
			strCol("season", false, "season"),
			strCol("team", false, "team", "name"),
			strCol("date", false, "date"),
		},
	}
}

// pastTeamsSpec lists the (season, team) pairs of a player's career from
// the year-by-year hitting splits.
func pastTeamsSpec() project.Spec {
	return project.Spec{
		Path:        []string{"stats"},
		GroupFilter: string(catalog.GroupHitting),
		TypeFilter:  "yearByYear",
		Prefix: []project.Column{
			yearCol("season", true, "season"),
			intCol("mlbam", true, "team", "id"),
			strCol("team", false, "team", "name"),
			strCol("league", false, "league", "name"),
		},
	}
}

// debutGameSpec keeps the game-log split played on the debut date:
// the game id, the player's club, and the opponent. Splits from other
// dates in the debut season are dropped.
func debutGameSpec(debutDate string) project.Spec {
	return project.Spec{
		Path:       []string{"stats"},
		TypeFilter: "gameLog",
		Prefix: []project.Column{
			{Name: "date", Required: true, Extract: func(row map[string]any) any {
				if d := project.Str(row, "date"); d == debutDate {
					return d
				}
				return nil
			}},
			intCol("gamePk", true, "game", "gamePk"),
			strCol("team", false, "team", "name"),
			strCol("opponent", false, "opponent", "name"),
		},
	}
}

func teamInfoSpec() project.Spec {
	return project.Spec{
		Rows: firstElementRows("teams"),
		Prefix: []project.Column{
			intCol("mlbam", true, "id"),
			strCol("name", false, "name"),
			strCol("abbreviation", false, "abbreviation"),
			strCol("teamCode", false, "teamCode"),
			strCol("location", false, "locationName"),
			strCol("firstYear", false, "firstYearOfPlay"),
			strCol("league", false, "league", "name"),
			strCol("division", false, "division", "name"),
			strCol("venue", false, "venue", "name"),
			intCol("venueID", false, "venue", "id"),
			strCol("season", false, "season"),
		},
	}
}

// ybyRecordsSpec is the narrow season-record projection used by the
// franchise records leaf and the yby_records reference refresh.
func ybyRecordsSpec() project.Spec {
	return project.Spec{
		Rows: recordTeamRows,
		Prefix: []project.Column{
			yearCol("season", true, "season"),
			intCol("mlbam", true, "team", "id"),
			strCol("team", false, "team", "name"),
			strCol("league", false, "league", "name"),
			strCol("division", false, "division", "name"),
			intCol("wins", false, "wins"),
			intCol("losses", false, "losses"),
			strCol("pct", false, "winningPercentage"),
			strCol("gamesBack", false, "gamesBack"),
			strCol("divisionRank", false, "divisionRank"),
		},
		SortColumn: "season",
	}
}

// recordTeamRows flattens records[].teamRecords[], carrying the parent
// league/division down.
func recordTeamRows(doc map[string]any) []map[string]any {
	var rows []map[string]any
	for _, r := range project.Slice(doc, "records") {
		rec, ok := r.(map[string]any)
		if !ok {
			continue
		}
		for _, t := range project.Slice(rec, "teamRecords") {
			tr, ok := t.(map[string]any)
			if !ok {
				continue
			}
			row := make(map[string]any, len(tr)+2)
			for k, v := range tr {
				row[k] = v
			}
			if _, ok := row["league"]; !ok {
				if lg := project.Map(rec, "league"); lg != nil {
					row["league"] = lg
				}
			}
			if _, ok := row["division"]; !ok {
				if dv := project.Map(rec, "division"); dv != nil {
					row["division"] = dv
				}
			}
			rows = append(rows, row)
		}
	}
	return rows
}

func allTimeRosterSpec() project.Spec {
	return project.Spec{
		Path: []string{"roster"},
		Prefix: []project.Column{
			intCol("mlbam", true, "person", "id"),
			strCol("name", false, "person", "fullName"),
			strCol("position", false, "position", "abbreviation"),
			strCol("jersey", false, "jerseyNumber"),
			strCol("status", false, "status", "description"),
		},
	}
}

// hofSpec filters Hall of Fame recipients to one franchise.
func hofSpec(teamID int64) project.Spec {
	return project.Spec{
		Rows: func(doc map[string]any) []map[string]any {
			var rows []map[string]any
			for _, e := range project.Slice(doc, "awards") {
				award, ok := e.(map[string]any)
				if !ok {
					continue
				}
				if id, ok := project.Int(award, "team", "id"); !ok || id != teamID {
					continue
				}
				rows = append(rows, award)
			}
			return rows
		},
		Prefix: []project.Column{
			intCol("mlbam", true, "player", "id"),
			strCol("name", false, "player", "nameFirstLast"),
			strCol("inducted", false, "season"),
			strCol("votedBy", false, "votedBy"),
			strCol("notes", false, "notes"),
		},
	}
}

func retiredNumbersSpec() project.Spec {
	return project.Spec{
		Rows: func(doc map[string]any) []map[string]any {
			var rows []map[string]any
			for _, e := range project.Slice(doc, "teams") {
				team, ok := e.(map[string]any)
				if !ok {
					continue
				}
				for _, rn := range project.Slice(team, "retiredNumbers") {
					if m, ok := rn.(map[string]any); ok {
						rows = append(rows, m)
					}
				}
			}
			return rows
		},
		Prefix: []project.Column{
			strCol("number", true, "number"),
			intCol("mlbam", false, "person", "id"),
			strCol("name", false, "person", "fullName"),
		},
	}
}

// gameLogStatsSpec projects per-game stat splits with the game identity
// in front of the stat columns.
func gameLogStatsSpec(cat *catalog.Catalog, group catalog.Group) (project.Spec, error) {
	prefix := []project.Column{
		strCol("date", true, "date"),
		strCol("opponent", false, "opponent", "name"),
		{Name: "homeAway", Extract: func(row map[string]any) any {
			home, ok := project.Bool(row, "isHome")
			if !ok {
				return nil
			}
			if home {
				return "vs"
			}
			return "@"
		}},
	}
	return project.StatSplits(cat, group, catalog.VariantStandard, "gameLog", prefix)
}

// leadersFlatSpec folds every leader category of a leaders document into
// one table with the category as the first column.
func leadersFlatSpec() project.Spec {
	return project.Spec{
		Rows: func(doc map[string]any) []map[string]any {
			var rows []map[string]any
			for _, e := range project.Slice(doc, "leagueLeaders") {
				entry, ok := e.(map[string]any)
				if !ok {
					continue
				}
				category := project.Str(entry, "leaderCategory")
				for _, l := range project.Slice(entry, "leaders") {
					leader, ok := l.(map[string]any)
					if !ok {
						continue
					}
					row := make(map[string]any, len(leader)+1)
					for k, v := range leader {
						row[k] = v
					}
					row["leaderCategory"] = category
					rows = append(rows, row)
				}
			}
			return rows
		},
		Prefix: []project.Column{
			strCol("category", true, "leaderCategory"),
			intCol("rank", false, "rank"),
			strCol("player", false, "person", "fullName"),
			{Name: "value", Extract: func(row map[string]any) any {
				if v, ok := project.Dig(row, "value"); ok {
					return v
				}
				return nil
			}},
			strCol("team", false, "team", "name"),
			strCol("league", false, "league", "name"),
			strCol("season", false, "season"),
			strCol("gameType", false, "gameType", "id"),
		},
	}
}

// teamDraftSpec narrows the season draft to one team's picks.
func teamDraftSpec(teamID int64) project.Spec {
	spec := project.Draft()
	spec.Rows = func(doc map[string]any) []map[string]any {
		var rows []map[string]any
		for _, r := range project.Slice(doc, "drafts", "rounds") {
			round, ok := r.(map[string]any)
			if !ok {
				continue
			}
			for _, pk := range project.Slice(round, "picks") {
				pick, ok := pk.(map[string]any)
				if !ok {
					continue
				}
				if id, ok := project.Int(pick, "team", "id"); !ok || id != teamID {
					continue
				}
				rows = append(rows, pick)
			}
		}
		return rows
	}
	return spec
}

func coachesSpec() project.Spec {
	return project.Spec{
		Path: []string{"roster"},
		Prefix: []project.Column{
			strCol("jersey", false, "jerseyNumber"),
			intCol("mlbam", true, "person", "id"),
			strCol("name", false, "person", "fullName"),
			strCol("job", false, "job"),
			strCol("jobId", false, "jobId"),
		},
	}
}

// teamSplitPrefix identifies league-wide team stat splits.
func teamSplitPrefix() []project.Column {
	return []project.Column{
		intCol("rank", false, "rank"),
		intCol("mlbam", true, "team", "id"),
		strCol("team", false, "team", "name"),
		strCol("season", false, "season"),
	}
}

// playerSplitPrefix identifies league-wide player stat splits.
func playerSplitPrefix() []project.Column {
	return []project.Column{
		intCol("rank", false, "rank"),
		intCol("mlbam", true, "player", "id"),
		strCol("player", false, "player", "fullName"),
		strCol("team", false, "team", "name"),
		strCol("season", false, "season"),
	}
}
