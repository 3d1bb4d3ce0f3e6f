// Package aggregate expands high-level request bundles into static lists
// of upstream endpoint calls, fans them out through the fetch client,
// and collects labeled projection results with per-leaf errors.
package aggregate

import (
	"fmt"
	"net/url"
)

// The core owns every URL template it sends to the upstream service.
const (
	BaseURL     = "https://statsapi.mlb.com/api/v1"
	LiveBaseURL = "https://statsapi.mlb.com/api/v1.1"
)

func personURL(base string, personID int64) string {
	return fmt.Sprintf("%s/people/%d?hydrate=education", base, personID)
}

func personStatsURL(base string, personID int64, statType, group string) string {
	q := url.Values{}
	q.Set("stats", statType)
	q.Set("group", group)
	return fmt.Sprintf("%s/people/%d/stats?%s", base, personID, q.Encode())
}

func personGameLogURL(base string, personID int64, group, season string) string {
	q := url.Values{}
	q.Set("stats", "gameLog")
	q.Set("group", group)
	q.Set("season", season)
	return fmt.Sprintf("%s/people/%d/stats?%s", base, personID, q.Encode())
}

func personAwardsURL(base string, personID int64) string {
	return fmt.Sprintf("%s/people/%d/awards", base, personID)
}

func playerTransactionsURL(base string, personID int64) string {
	q := url.Values{}
	q.Set("playerId", fmt.Sprint(personID))
	return fmt.Sprintf("%s/transactions?%s", base, q.Encode())
}

func teamURL(base string, teamID int64, season string) string {
	q := url.Values{}
	q.Set("hydrate", "venue,league,division")
	if season != "" {
		q.Set("season", season)
	}
	return fmt.Sprintf("%s/teams/%d?%s", base, teamID, q.Encode())
}

func teamRetiredNumbersURL(base string, teamID int64) string {
	return fmt.Sprintf("%s/teams/%d?hydrate=retiredNumbers", base, teamID)
}

func teamStatsURL(base string, teamID int64, statType, group, season string) string {
	q := url.Values{}
	q.Set("stats", statType)
	q.Set("group", group)
	if season != "" {
		q.Set("season", season)
	}
	return fmt.Sprintf("%s/teams/%d/stats?%s", base, teamID, q.Encode())
}

func rosterURL(base string, teamID int64, rosterType, season, hydrate string) string {
	q := url.Values{}
	if season != "" {
		q.Set("season", season)
	}
	if hydrate != "" {
		q.Set("hydrate", hydrate)
	}
	u := fmt.Sprintf("%s/teams/%d/roster/%s", base, teamID, rosterType)
	if enc := q.Encode(); enc != "" {
		u += "?" + enc
	}
	return u
}

// rosterStatsHydrate asks the roster endpoint to carry each player's own
// season stats for every group in one document.
func rosterStatsHydrate(season string) string {
	return fmt.Sprintf(
		"person(stats(type=[season,seasonAdvanced],group=[hitting,pitching,fielding],season=%s))",
		season,
	)
}

func scheduleURL(base string, teamID int64, season string) string {
	q := url.Values{}
	q.Set("sportId", "1")
	q.Set("teamId", fmt.Sprint(teamID))
	q.Set("season", season)
	return fmt.Sprintf("%s/schedule?%s", base, q.Encode())
}

func dayScheduleURL(base, date string) string {
	q := url.Values{}
	q.Set("sportId", "1")
	q.Set("date", date)
	return fmt.Sprintf("%s/schedule?%s", base, q.Encode())
}

func teamLeadersURL(base string, teamID int64, categories, group, season string) string {
	q := url.Values{}
	q.Set("leaderCategories", categories)
	q.Set("leaderGameTypes", "R")
	q.Set("statGroup", group)
	if season != "" {
		q.Set("season", season)
	}
	return fmt.Sprintf("%s/teams/%d/leaders?%s", base, teamID, q.Encode())
}

func teamTransactionsURL(base string, teamID int64, season string) string {
	q := url.Values{}
	q.Set("teamId", fmt.Sprint(teamID))
	if season != "" {
		q.Set("startDate", season+"-01-01")
		q.Set("endDate", season+"-12-31")
	}
	return fmt.Sprintf("%s/transactions?%s", base, q.Encode())
}

func draftURL(base string, season string) string {
	return fmt.Sprintf("%s/draft/%s", base, season)
}

func coachesURL(base string, teamID int64, season string) string {
	q := url.Values{}
	if season != "" {
		q.Set("season", season)
	}
	u := fmt.Sprintf("%s/teams/%d/coaches", base, teamID)
	if enc := q.Encode(); enc != "" {
		u += "?" + enc
	}
	return u
}

func standingsURL(base string, season string) string {
	q := url.Values{}
	q.Set("leagueId", "103,104")
	if season != "" {
		q.Set("season", season)
	}
	return fmt.Sprintf("%s/standings?%s", base, q.Encode())
}

func teamStandingsURL(base string, teamID int64) string {
	q := url.Values{}
	q.Set("leagueId", "103,104")
	q.Set("teamId", fmt.Sprint(teamID))
	q.Set("standingsTypes", "regularSeason")
	return fmt.Sprintf("%s/standings?%s", base, q.Encode())
}

func leagueStatsURL(base string, statType, group, season string) string {
	q := url.Values{}
	q.Set("sportId", "1")
	q.Set("stats", statType)
	q.Set("group", group)
	if season != "" {
		q.Set("season", season)
	}
	return fmt.Sprintf("%s/teams/stats?%s", base, q.Encode())
}

func leaguePlayerStatsURL(base string, statType, group, season string) string {
	q := url.Values{}
	q.Set("stats", statType)
	q.Set("group", group)
	q.Set("playerPool", "qualified")
	if season != "" {
		q.Set("season", season)
	}
	return fmt.Sprintf("%s/stats?%s", base, q.Encode())
}

func liveFeedURL(base string, gamePk int64, timecode string) string {
	u := fmt.Sprintf("%s/game/%d/feed/live", base, gamePk)
	if timecode != "" {
		u += "?timecode=" + url.QueryEscape(timecode)
	}
	return u
}

func allTeamsURL(base, season string) string {
	q := url.Values{}
	q.Set("sportId", "1")
	if season != "" {
		q.Set("season", season)
	}
	return fmt.Sprintf("%s/teams?%s", base, q.Encode())
}

func allVenuesURL(base string) string {
	return fmt.Sprintf("%s/venues?sportId=1", base)
}

func allSeasonsURL(base string) string {
	return fmt.Sprintf("%s/seasons/all?sportId=1", base)
}

func allLeaguesURL(base string) string {
	return fmt.Sprintf("%s/leagues?sportId=1", base)
}

func allPlayersURL(base, season string) string {
	q := url.Values{}
	if season != "" {
		q.Set("season", season)
	}
	u := fmt.Sprintf("%s/sports/1/players", base)
	if enc := q.Encode(); enc != "" {
		u += "?" + enc
	}
	return u
}

func hallOfFameURL(base string) string {
	return fmt.Sprintf("%s/awards/MLBHOF/recipients", base)
}

func broadcastsURL(base string) string {
	return fmt.Sprintf("%s/broadcasters?activeStatus=both", base)
}
