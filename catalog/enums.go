package catalog

import "strconv"

// League and division MLBAM ids, position codes, game types, ordinals and
// situation codes. These mirror the upstream service's identifiers.

var leagueNames = map[int64]string{
	103: "American League",
	104: "National League",
	105: "American Association",
	106: "Federal League",
}

var leagueAbbrevs = map[int64]string{
	103: "AL",
	104: "NL",
	105: "AA",
	106: "FL",
}

var divisionNames = map[int64]string{
	200: "AL West",
	201: "AL East",
	202: "AL Central",
	203: "NL West",
	204: "NL East",
	205: "NL Central",
}

var positionAbbrevs = map[int64]string{
	1:  "P",
	2:  "C",
	3:  "1B",
	4:  "2B",
	5:  "3B",
	6:  "SS",
	7:  "LF",
	8:  "CF",
	9:  "RF",
	10: "DH",
	11: "PH",
	12: "PR",
}

var gameTypeNames = map[string]string{
	"S": "Spring Training",
	"R": "Regular Season",
	"F": "Wild Card",
	"D": "Division Series",
	"L": "League Championship Series",
	"W": "World Series",
	"C": "Championship",
	"N": "Nineteenth Century Series",
	"P": "Playoffs",
	"A": "All-Star Game",
	"I": "Intrasquad",
	"E": "Exhibition",
}

var situationNames = map[string]string{
	"h":    "Home",
	"a":    "Away",
	"d":    "Day",
	"n":    "Night",
	"g":    "Grass",
	"t":    "Turf",
	"vr":   "vs RHP",
	"vl":   "vs LHP",
	"risp": "Runners In Scoring Position",
	"lo":   "Leading Off",
	"bh":   "Bases Loaded",
	"r0":   "Bases Empty",
}

// LeagueName returns the long league name for an MLBAM league id, or the
// empty string if unknown.
func (c *Catalog) LeagueName(id int64) string { return leagueNames[id] }

// LeagueAbbrev returns the league abbreviation for an MLBAM league id.
func (c *Catalog) LeagueAbbrev(id int64) string { return leagueAbbrevs[id] }

// DivisionName returns the short division name for an MLBAM division id.
func (c *Catalog) DivisionName(id int64) string { return divisionNames[id] }

// Position returns the abbreviation for a numeric position code, or the
// empty string if unknown.
func (c *Catalog) Position(code int64) string { return positionAbbrevs[code] }

// GameType returns the long name for a game-type code, falling back to
// the code itself.
func (c *Catalog) GameType(code string) string {
	if name, ok := gameTypeNames[code]; ok {
		return name
	}
	return code
}

// Situation returns the description for a situation code, falling back to
// the code itself.
func (c *Catalog) Situation(code string) string {
	if name, ok := situationNames[code]; ok {
		return name
	}
	return code
}

// Ordinal renders n as an English ordinal ("1st", "2nd", "11th", ...).
// Used for inning labels.
func (c *Catalog) Ordinal(n int) string {
	suffix := "th"
	switch n % 100 {
	case 11, 12, 13:
	default:
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return strconv.Itoa(n) + suffix
}
