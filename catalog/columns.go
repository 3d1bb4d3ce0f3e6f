package catalog

// Ordered column lists per (group, variant). Order here is order in every
// output table; changing it is an API change.

var hittingStandard = []string{
	"gamesPlayed",
	"plateAppearances",
	"atBats",
	"runs",
	"hits",
	"doubles",
	"triples",
	"homeRuns",
	"rbi",
	"baseOnBalls",
	"intentionalWalks",
	"strikeOuts",
	"hitByPitch",
	"sacBunts",
	"sacFlies",
	"stolenBases",
	"caughtStealing",
	"stolenBasePercentage",
	"groundIntoDoublePlay",
	"groundOuts",
	"airOuts",
	"flyOuts",
	"groundOutsToAirouts",
	"totalBases",
	"leftOnBase",
	"catchersInterference",
	"numberOfPitches",
	"avg",
	"obp",
	"slg",
	"ops",
	"babip",
	"atBatsPerHomeRun",
	"extraBaseHits",
}

var hittingAdvanced = []string{
	"iso",
	"babip",
	"extraBaseHits",
	"hitByPitch",
	"gidp",
	"gidpOpp",
	"numberOfPitches",
	"pitchesPerPlateAppearance",
	"walksPerPlateAppearance",
	"strikeoutsPerPlateAppearance",
	"homeRunsPerPlateAppearance",
	"walksPerStrikeout",
	"reachedOnError",
	"walkOffs",
	"flyOuts",
	"popOuts",
	"lineOuts",
	"groundHits",
	"flyHits",
	"totalSwings",
	"swingAndMisses",
	"ballsInPlay",
}

var pitchingStandard = []string{
	"wins",
	"losses",
	"era",
	"gamesPlayed",
	"gamesStarted",
	"gamesFinished",
	"completeGames",
	"shutouts",
	"saves",
	"saveOpportunities",
	"holds",
	"blownSaves",
	"inningsPitched",
	"hits",
	"runs",
	"earnedRuns",
	"homeRuns",
	"numberOfPitches",
	"strikes",
	"hitBatsmen",
	"baseOnBalls",
	"intentionalWalks",
	"strikeOuts",
	"wildPitches",
	"balks",
	"pickoffs",
	"groundOuts",
	"airOuts",
	"caughtStealing",
	"stolenBases",
	"stolenBasePercentage",
	"battersFaced",
	"outs",
	"atBats",
	"avg",
	"whip",
	"groundIntoDoublePlay",
	"totalBases",
	"strikePercentage",
}

var pitchingAdvanced = []string{
	"winPercentage",
	"obp",
	"slg",
	"ops",
	"babip",
	"strikeoutsPer9Inn",
	"walksPer9Inn",
	"hitsPer9Inn",
	"homeRunsPer9",
	"runsScoredPer9",
	"strikeoutWalkRatio",
	"pitchesPerInning",
	"pitchesPerPlateAppearance",
	"strikePercentage",
	"inheritedRunners",
	"inheritedRunnersScored",
	"bequeathedRunners",
	"bequeathedRunnersScored",
}

var fieldingStandard = []string{
	"gamesPlayed",
	"gamesStarted",
	"innings",
	"assists",
	"putOuts",
	"errors",
	"chances",
	"fielding",
	"doublePlays",
	"triplePlays",
	"throwingErrors",
	"rangeFactorPerGame",
	"rangeFactorPer9Inn",
}

var catchingStandard = []string{
	"gamesPlayed",
	"innings",
	"passedBall",
	"catcherERA",
	"stolenBases",
	"caughtStealing",
	"stolenBasePercentage",
	"pickoffs",
	"wildPitches",
	"throwingErrors",
}

var catchingAdvanced = []string{
	"catchersInterference",
	"caughtStealingPercentage",
	"passedBallPer9",
	"stolenBasesPer9",
	"pickoffsPer9",
}

// displayNames maps stat codes to short column headers. The mapping is
// injective within any single column list above.
var displayNames = map[string]string{
	"gamesPlayed":                  "G",
	"plateAppearances":             "PA",
	"atBats":                       "AB",
	"runs":                         "R",
	"hits":                         "H",
	"doubles":                      "2B",
	"triples":                      "3B",
	"homeRuns":                     "HR",
	"rbi":                          "RBI",
	"baseOnBalls":                  "BB",
	"intentionalWalks":             "IBB",
	"strikeOuts":                   "SO",
	"hitByPitch":                   "HBP",
	"sacBunts":                     "SAC",
	"sacFlies":                     "SF",
	"stolenBases":                  "SB",
	"caughtStealing":               "CS",
	"stolenBasePercentage":         "SB%",
	"groundIntoDoublePlay":         "GIDP",
	"groundOuts":                   "GO",
	"airOuts":                      "AO",
	"flyOuts":                      "FO",
	"groundOutsToAirouts":          "GO/AO",
	"totalBases":                   "TB",
	"leftOnBase":                   "LOB",
	"catchersInterference":         "CI",
	"numberOfPitches":              "#P",
	"avg":                          "AVG",
	"obp":                          "OBP",
	"slg":                          "SLG",
	"ops":                          "OPS",
	"babip":                        "BABIP",
	"atBatsPerHomeRun":             "AB/HR",
	"extraBaseHits":                "XBH",
	"iso":                          "ISO",
	"gidp":                         "GIDP",
	"gidpOpp":                      "GIDPO",
	"pitchesPerPlateAppearance":    "P/PA",
	"walksPerPlateAppearance":      "BB/PA",
	"strikeoutsPerPlateAppearance": "SO/PA",
	"homeRunsPerPlateAppearance":   "HR/PA",
	"walksPerStrikeout":            "BB/SO",
	"reachedOnError":               "ROE",
	"walkOffs":                     "WO",
	"popOuts":                      "PO",
	"lineOuts":                     "LO",
	"groundHits":                   "GH",
	"flyHits":                      "FH",
	"totalSwings":                  "SW",
	"swingAndMisses":               "WHIFF",
	"ballsInPlay":                  "BIP",
	"wins":                         "W",
	"losses":                       "L",
	"era":                          "ERA",
	"gamesStarted":                 "GS",
	"gamesFinished":                "GF",
	"completeGames":                "CG",
	"shutouts":                     "SHO",
	"saves":                        "SV",
	"saveOpportunities":            "SVO",
	"holds":                        "HLD",
	"blownSaves":                   "BS",
	"inningsPitched":               "IP",
	"earnedRuns":                   "ER",
	"strikes":                      "STR",
	"hitBatsmen":                   "HB",
	"wildPitches":                  "WP",
	"balks":                        "BK",
	"pickoffs":                     "PK",
	"battersFaced":                 "BF",
	"outs":                         "OUTS",
	"whip":                         "WHIP",
	"strikePercentage":             "S%",
	"winPercentage":                "W%",
	"strikeoutsPer9Inn":            "SO/9",
	"walksPer9Inn":                 "BB/9",
	"hitsPer9Inn":                  "H/9",
	"homeRunsPer9":                 "HR/9",
	"runsScoredPer9":               "R/9",
	"strikeoutWalkRatio":           "SO/BB",
	"pitchesPerInning":             "P/INN",
	"inheritedRunners":             "IR",
	"inheritedRunnersScored":       "IRS",
	"bequeathedRunners":            "BQR",
	"bequeathedRunnersScored":      "BQRS",
	"innings":                      "INN",
	"assists":                      "A",
	"putOuts":                      "PO",
	"errors":                       "E",
	"chances":                      "TC",
	"fielding":                     "FLD%",
	"doublePlays":                  "DP",
	"triplePlays":                  "TP",
	"throwingErrors":               "TE",
	"rangeFactorPerGame":           "RF/G",
	"rangeFactorPer9Inn":           "RF/9",
	"passedBall":                   "PB",
	"catcherERA":                   "cERA",
	"caughtStealingPercentage":     "CS%",
	"passedBallPer9":               "PB/9",
	"stolenBasesPer9":              "SB/9",
	"pickoffsPer9":                 "PK/9",
}
