package scrape

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/fortuna/dugout/table"
)

// StatTable parses one data-stat annotated stat table (the convention
// the reference site uses: every header and cell carries a data-stat
// attribute) into a Table. The column order follows the header row;
// spacer and repeated-header rows inside tbody are skipped.
func StatTable(doc *goquery.Document, selector string) (*table.Table, error) {
	sel := doc.Find(selector).First()
	if sel.Length() == 0 {
		return nil, fmt.Errorf("scrape: no table matches %q", selector)
	}

	var cols []string
	sel.Find("thead tr").Last().Find("th").Each(func(_ int, th *goquery.Selection) {
		if stat, ok := th.Attr("data-stat"); ok && stat != "" {
			cols = append(cols, stat)
		}
	})
	if len(cols) == 0 {
		return nil, fmt.Errorf("scrape: table %q has no data-stat headers", selector)
	}

	out := table.New(cols...)
	var rowErr error
	sel.Find("tbody tr").Each(func(_ int, tr *goquery.Selection) {
		if rowErr != nil || tr.HasClass("thead") || tr.HasClass("spacer") {
			return
		}
		cells := make(map[string]any, len(cols))
		tr.Find("th, td").Each(func(_ int, td *goquery.Selection) {
			stat, ok := td.Attr("data-stat")
			if !ok {
				return
			}
			cells[stat] = parseCellText(td.Text())
		})
		if len(cells) == 0 {
			return
		}
		row := make([]any, len(cols))
		for i, col := range cols {
			if v, ok := cells[col]; ok {
				row[i] = v
			} else {
				row[i] = table.Sentinel
			}
		}
		rowErr = out.AppendRow(row...)
	})
	if rowErr != nil {
		return nil, rowErr
	}
	return out, nil
}

// PlayerID pulls the site's player identifier out of a row's name cell.
// The site stores it in the data-append-csv attribute of the player
// cell.
func PlayerID(tr *goquery.Selection) string {
	id, _ := tr.Find("[data-append-csv]").First().Attr("data-append-csv")
	return id
}

func parseCellText(s string) any {
	s = strings.TrimSpace(s)
	if s == "" {
		return table.Sentinel
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}
