package aggregate

import (
	"testing"

	"github.com/fortuna/dugout/catalog"
)

// The teams endpoint has served season both as a string and as a
// number; the refresh spec must accept either and never drop the row.
func TestRefreshTeamsSeasonAsNumber(t *testing.T) {
	doc := map[string]any{
		"teams": []any{
			map[string]any{
				"id":              float64(136),
				"season":          float64(2024),
				"name":            "Seattle Mariners",
				"abbreviation":    "SEA",
				"teamCode":        "sea",
				"league":          map[string]any{"name": "American League"},
				"division":        map[string]any{"name": "AL West"},
				"venue":           map[string]any{"name": "T-Mobile Park"},
				"firstYearOfPlay": "1977",
			},
			map[string]any{
				"id":     float64(137),
				"season": "2024",
				"name":   "San Francisco Giants",
			},
		},
	}

	tab, err := refreshTeamsSpec().Project(doc, catalog.New())
	if err != nil {
		t.Fatal(err)
	}
	if tab.Len() != 2 {
		t.Fatalf("rows = %d, want 2", tab.Len())
	}
	if v, _ := tab.Cell(0, "season"); v != "2024" {
		t.Errorf("numeric season = %v, want \"2024\"", v)
	}
	if v, _ := tab.Cell(1, "season"); v != "2024" {
		t.Errorf("string season = %v, want \"2024\"", v)
	}
}

// seasonId on /seasons and season on the HOF awards feed take the same
// tolerant treatment.
func TestRefreshYearColumnsAcceptNumbers(t *testing.T) {
	cat := catalog.New()

	seasons := map[string]any{"seasons": []any{
		map[string]any{"seasonId": float64(1901), "seasonStartDate": "1901-04-18"},
	}}
	tab, err := refreshSeasonsSpec().Project(seasons, cat)
	if err != nil {
		t.Fatal(err)
	}
	if tab.Len() != 1 {
		t.Fatalf("rows = %d, want 1", tab.Len())
	}
	if v, _ := tab.Cell(0, "year"); v != "1901" {
		t.Errorf("year = %v", v)
	}

	hof := map[string]any{"awards": []any{
		map[string]any{
			"player": map[string]any{"id": float64(121314), "nameFirstLast": "Ken Griffey Jr."},
			"season": float64(2016),
		},
	}}
	tab, err = refreshHOFSpec().Project(hof, cat)
	if err != nil {
		t.Fatal(err)
	}
	if tab.Len() != 1 {
		t.Fatalf("rows = %d, want 1", tab.Len())
	}
	if v, _ := tab.Cell(0, "inducted"); v != "2016" {
		t.Errorf("inducted = %v", v)
	}
}
