package scrape

import (
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/fortuna/dugout/refcache"
	"github.com/fortuna/dugout/table"
)

// warBaseURL is the reference site's season value pages.
const warBaseURL = "https://www.baseball-reference.com/leagues/majors"

func warHitURL(year string) string {
	return fmt.Sprintf("%s/%s-value-batting.shtml", warBaseURL, year)
}

func warPitchURL(year string) string {
	return fmt.Sprintf("%s/%s-value-pitching.shtml", warBaseURL, year)
}

// WARHitting scrapes the batting value page for each year and returns
// the rows in the bbref_war_hit reference schema.
func (c *Client) WARHitting(ctx context.Context, years []string) (*table.Table, error) {
	schema, _ := refcache.SchemaOf(refcache.WARHitting)
	out := table.New(schema.Columns...)
	stats := []string{"PA", "WAR", "WAR_off", "WAR_def", "raa_bat", "raa_def"}
	for _, year := range years {
		doc, err := c.Get(ctx, warHitURL(year))
		if err != nil {
			return nil, fmt.Errorf("scrape: war hitting %s: %w", year, err)
		}
		if err := appendWARRows(out, doc, "table#players_value_batting", year, stats); err != nil {
			return nil, fmt.Errorf("scrape: war hitting %s: %w", year, err)
		}
	}
	c.logger.Printf("[scrape] war hitting: %d rows across %d seasons", out.Len(), len(years))
	return out, nil
}

// WARPitching scrapes the pitching value page for each year and returns
// the rows in the bbref_war_pitch reference schema.
func (c *Client) WARPitching(ctx context.Context, years []string) (*table.Table, error) {
	schema, _ := refcache.SchemaOf(refcache.WARPitching)
	out := table.New(schema.Columns...)
	stats := []string{"IP", "G", "GS", "WAR_pitch", "RA9_avg", "WAA_adj"}
	for _, year := range years {
		doc, err := c.Get(ctx, warPitchURL(year))
		if err != nil {
			return nil, fmt.Errorf("scrape: war pitching %s: %w", year, err)
		}
		if err := appendWARRows(out, doc, "table#players_value_pitching", year, stats); err != nil {
			return nil, fmt.Errorf("scrape: war pitching %s: %w", year, err)
		}
	}
	c.logger.Printf("[scrape] war pitching: %d rows across %d seasons", out.Len(), len(years))
	return out, nil
}

// appendWARRows walks one value table's body rows. Every schema starts
// with playerID, name, year, age, team, league; the stat tail differs
// per table.
func appendWARRows(out *table.Table, doc *goquery.Document, selector, year string, stats []string) error {
	sel := doc.Find(selector).First()
	if sel.Length() == 0 {
		return fmt.Errorf("no table matches %q", selector)
	}
	var rowErr error
	// Traded players get one row per stint plus a combined row, all under
	// the same id. The combined row is listed first and is the one kept;
	// stint rows would collide on the (playerID, year) key.
	seen := make(map[string]bool)
	sel.Find("tbody tr").Each(func(_ int, tr *goquery.Selection) {
		if rowErr != nil || tr.HasClass("thead") {
			return
		}
		id := PlayerID(tr)
		if id == "" || seen[id] {
			return
		}
		seen[id] = true
		row := []any{
			id,
			cleanName(tr.Find(`[data-stat="player"]`).Text()),
			year,
			parseCellText(tr.Find(`[data-stat="age"]`).Text()),
			parseCellText(tr.Find(`[data-stat="team_ID"]`).Text()),
			parseCellText(tr.Find(`[data-stat="lg_ID"]`).Text()),
		}
		for _, stat := range stats {
			row = append(row, parseCellText(tr.Find(fmt.Sprintf(`[data-stat=%q]`, stat)).Text()))
		}
		rowErr = out.AppendRow(row...)
	})
	return rowErr
}

// cleanName strips the site's non-breaking spaces and markers from a
// player name cell.
func cleanName(s string) string {
	s = strings.ReplaceAll(s, "\u00a0", " ")
	s = strings.TrimRight(s, "*#+")
	return strings.TrimSpace(s)
}

// RefreshWAR rebuilds one of the two WAR reference tables in the cache.
func RefreshWAR(ctx context.Context, c *Client, cache *refcache.Cache, t refcache.Table, years []string) error {
	var fresh *table.Table
	var err error
	switch t {
	case refcache.WARHitting:
		fresh, err = c.WARHitting(ctx, years)
	case refcache.WARPitching:
		fresh, err = c.WARPitching(ctx, years)
	default:
		return fmt.Errorf("scrape: table %s is not scraped", t)
	}
	if err != nil {
		return err
	}
	return cache.Update(t, fresh)
}
