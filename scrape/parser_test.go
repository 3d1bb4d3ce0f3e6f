package scrape

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"

	"github.com/fortuna/dugout/table"
)

const sampleHTML = `
<html><body>
<table id="players_value_batting">
  <thead>
    <tr><th data-stat="player">Name</th><th data-stat="age">Age</th><th data-stat="WAR">WAR</th></tr>
  </thead>
  <tbody>
    <tr>
      <th data-stat="player" data-append-csv="troutmi01">Mike Trout*</th>
      <td data-stat="age">32</td>
      <td data-stat="WAR">2.7</td>
    </tr>
    <tr class="thead"><th>repeated header</th></tr>
    <tr>
      <th data-stat="player" data-append-csv="ohtansh01">Shohei Ohtani</th>
      <td data-stat="age">29</td>
      <td data-stat="WAR"></td>
    </tr>
  </tbody>
</table>
</body></html>`

func sampleDoc(t *testing.T) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(sampleHTML))
	if err != nil {
		t.Fatal(err)
	}
	return doc
}

func TestStatTable(t *testing.T) {
	tab, err := StatTable(sampleDoc(t), "table#players_value_batting")
	if err != nil {
		t.Fatal(err)
	}
	cols := tab.Columns()
	if len(cols) != 3 || cols[0] != "player" || cols[2] != "WAR" {
		t.Fatalf("columns = %v", cols)
	}
	// The repeated-header row is skipped.
	if tab.Len() != 2 {
		t.Fatalf("rows = %d, want 2", tab.Len())
	}
	if v, _ := tab.Cell(0, "age"); v != int64(32) {
		t.Errorf("age = %v", v)
	}
	if v, _ := tab.Cell(0, "WAR"); v != 2.7 {
		t.Errorf("WAR = %v", v)
	}
	if v, _ := tab.Cell(1, "WAR"); v != table.Sentinel {
		t.Errorf("empty cell = %v, want sentinel", v)
	}
}

func TestStatTableNoMatch(t *testing.T) {
	if _, err := StatTable(sampleDoc(t), "table#nope"); err == nil {
		t.Fatal("expected error for missing table")
	}
}

func TestPlayerID(t *testing.T) {
	var got []string
	sampleDoc(t).Find("tbody tr").Each(func(_ int, tr *goquery.Selection) {
		if tr.HasClass("thead") {
			return
		}
		got = append(got, PlayerID(tr))
	})
	want := []string{"troutmi01", "ohtansh01"}
	if len(got) != len(want) {
		t.Fatalf("ids = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("id %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestCleanName(t *testing.T) {
	if got := cleanName("Mike Trout*"); got != "Mike Trout" {
		t.Errorf("cleanName = %q", got)
	}
	if got := cleanName("Shohei Ohtani#"); got != "Shohei Ohtani" {
		t.Errorf("cleanName = %q", got)
	}
}
