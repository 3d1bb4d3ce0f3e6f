package scrape

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"

	"github.com/fortuna/dugout/refcache"
	"github.com/fortuna/dugout/table"
)

const warSampleHTML = `
<html><body>
<table id="players_value_batting">
  <thead>
    <tr><th data-stat="player">Name</th></tr>
  </thead>
  <tbody>
    <tr>
      <th data-stat="player" data-append-csv="stayerjo01">Jo Stayer</th>
      <td data-stat="age">27</td>
      <td data-stat="team_ID">SEA</td>
      <td data-stat="lg_ID">AL</td>
      <td data-stat="PA">600</td>
      <td data-stat="WAR">4.1</td>
      <td data-stat="WAR_off">3.5</td>
      <td data-stat="WAR_def">0.6</td>
      <td data-stat="raa_bat">28</td>
      <td data-stat="raa_def">4</td>
    </tr>
    <tr>
      <th data-stat="player" data-append-csv="tradedgu01">Gus Traded*</th>
      <td data-stat="age">30</td>
      <td data-stat="team_ID">2TM</td>
      <td data-stat="lg_ID">MLB</td>
      <td data-stat="PA">540</td>
      <td data-stat="WAR">3.0</td>
      <td data-stat="WAR_off">2.2</td>
      <td data-stat="WAR_def">0.8</td>
      <td data-stat="raa_bat">15</td>
      <td data-stat="raa_def">6</td>
    </tr>
    <tr>
      <th data-stat="player" data-append-csv="tradedgu01">Gus Traded*</th>
      <td data-stat="age">30</td>
      <td data-stat="team_ID">SEA</td>
      <td data-stat="lg_ID">AL</td>
      <td data-stat="PA">300</td>
      <td data-stat="WAR">1.0</td>
      <td data-stat="WAR_off">0.7</td>
      <td data-stat="WAR_def">0.3</td>
      <td data-stat="raa_bat">5</td>
      <td data-stat="raa_def">2</td>
    </tr>
    <tr>
      <th data-stat="player" data-append-csv="tradedgu01">Gus Traded*</th>
      <td data-stat="age">30</td>
      <td data-stat="team_ID">NYY</td>
      <td data-stat="lg_ID">AL</td>
      <td data-stat="PA">240</td>
      <td data-stat="WAR">2.0</td>
      <td data-stat="WAR_off">1.5</td>
      <td data-stat="WAR_def">0.5</td>
      <td data-stat="raa_bat">10</td>
      <td data-stat="raa_def">4</td>
    </tr>
  </tbody>
</table>
</body></html>`

func TestAppendWARRowsKeepsCombinedStintOnly(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(warSampleHTML))
	if err != nil {
		t.Fatal(err)
	}
	schema, ok := refcache.SchemaOf(refcache.WARHitting)
	if !ok {
		t.Fatal("no schema for bbref_war_hit")
	}
	out := table.New(schema.Columns...)
	stats := []string{"PA", "WAR", "WAR_off", "WAR_def", "raa_bat", "raa_def"}
	if err := appendWARRows(out, doc, "table#players_value_batting", "2024", stats); err != nil {
		t.Fatal(err)
	}

	// One row per player: the traded player's two stint rows are dropped
	// in favor of the combined row listed first.
	if out.Len() != 2 {
		t.Fatalf("rows = %d, want 2", out.Len())
	}
	if v, _ := out.Cell(1, "playerID"); v != "tradedgu01" {
		t.Fatalf("playerID = %v", v)
	}
	if v, _ := out.Cell(1, "team"); v != "2TM" {
		t.Errorf("team = %v, want combined row", v)
	}
	if v, _ := out.Cell(1, "war"); v != 3.0 {
		t.Errorf("war = %v, want combined total", v)
	}
	if v, _ := out.Cell(1, "name"); v != "Gus Traded" {
		t.Errorf("name = %v", v)
	}
}
