// Package refcache owns the on-disk reference tables every request joins
// against: rarely-changing facts (teams, people, venues, seasons, ...)
// bundled as CSV files. Reads never touch the network; updates replace a
// table's file and in-memory snapshot atomically.
package refcache

// Table names the closed set of reference tables.
type Table string

const (
	Teams        Table = "teams"
	People       Table = "people"
	Bios         Table = "bios"
	Venues       Table = "venues"
	Seasons      Table = "seasons"
	YBYRecords   Table = "yby_records"
	YBYStandings Table = "yby_standings"
	HallOfFame   Table = "hall_of_fame"
	Broadcasts   Table = "broadcasts"
	Leagues      Table = "leagues"
	WARHitting   Table = "bbref_war_hit"
	WARPitching  Table = "bbref_war_pitch"
)

// Schema fixes a reference table's file name, column list, and primary
// key. Uniqueness on the key columns is an invariant checked on update.
type Schema struct {
	File    string
	Columns []string
	KeyCols []string
}

var registry = map[Table]Schema{
	Teams: {
		File: "teams.csv",
		Columns: []string{
			"mlbam", "season", "name", "abbreviation", "teamCode",
			"league", "division", "venue", "firstYear",
		},
		KeyCols: []string{"mlbam", "season"},
	},
	People: {
		File: "people.csv",
		Columns: []string{
			"mlbam", "name", "firstName", "lastName", "birthDate",
			"debutDate", "lastGameDate", "position", "bats", "throws",
		},
		KeyCols: []string{"mlbam"},
	},
	Bios: {
		File: "bios.csv",
		Columns: []string{
			"mlbam", "birthCity", "birthState", "birthCountry",
			"height", "weight", "highSchool", "college",
		},
		KeyCols: []string{"mlbam"},
	},
	Venues: {
		File: "venues.csv",
		Columns: []string{
			"mlbam", "name", "city", "state", "active",
		},
		KeyCols: []string{"mlbam"},
	},
	Seasons: {
		File: "seasons.csv",
		Columns: []string{
			"year", "preSeasonStart", "seasonStart", "regularSeasonStart",
			"regularSeasonEnd", "postSeasonEnd", "seasonEnd",
		},
		KeyCols: []string{"year"},
	},
	YBYRecords: {
		File: "yby_records.csv",
		Columns: []string{
			"season", "mlbam", "team", "league", "division",
			"wins", "losses", "pct", "gamesBack", "divisionRank",
		},
		KeyCols: []string{"season", "mlbam"},
	},
	YBYStandings: {
		File: "yby_standings.csv",
		Columns: []string{
			"season", "mlbam", "team", "league", "division", "wins",
			"losses", "pct", "alW", "alL", "nlW", "nlL", "eastW",
			"eastL", "centralW", "centralL", "westW", "westL", "homeW",
			"homeL", "awayW", "awayL", "lastTenW", "lastTenL", "xInnW",
			"xInnL", "oneRunW", "oneRunL", "winnersW", "winnersL",
			"dayW", "dayL", "nightW", "nightL", "grassW", "grassL",
			"turfW", "turfL", "vsRightW", "vsRightL", "vsLeftW", "vsLeftL",
		},
		KeyCols: []string{"season", "mlbam"},
	},
	HallOfFame: {
		File: "hall_of_fame.csv",
		Columns: []string{
			"mlbam", "name", "inducted", "votedBy", "category",
		},
		KeyCols: []string{"mlbam", "inducted"},
	},
	Broadcasts: {
		File: "broadcasts.csv",
		Columns: []string{
			"id", "name", "type", "callSign", "network",
		},
		KeyCols: []string{"id"},
	},
	Leagues: {
		File: "leagues.csv",
		Columns: []string{
			"mlbam", "name", "abbreviation", "firstYear", "lastYear",
		},
		KeyCols: []string{"mlbam"},
	},
	WARHitting: {
		File: "bbref_war_hit.csv",
		Columns: []string{
			"playerID", "name", "year", "age", "team", "league",
			"pa", "war", "warOff", "warDef", "oRAA", "dRAA",
		},
		KeyCols: []string{"playerID", "year"},
	},
	WARPitching: {
		File: "bbref_war_pitch.csv",
		Columns: []string{
			"playerID", "name", "year", "age", "team", "league",
			"ip", "g", "gs", "war", "raAvg", "waaAdj",
		},
		KeyCols: []string{"playerID", "year"},
	},
}

// SchemaOf returns the schema for a reference table.
func SchemaOf(t Table) (Schema, bool) {
	s, ok := registry[t]
	return s, ok
}

// All lists every reference table name.
func All() []Table {
	return []Table{
		Teams, People, Bios, Venues, Seasons, YBYRecords, YBYStandings,
		HallOfFame, Broadcasts, Leagues, WARHitting, WARPitching,
	}
}
