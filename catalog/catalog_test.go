package catalog

import "testing"

func TestColumnListSizes(t *testing.T) {
	c := New()
	cases := []struct {
		group   Group
		variant Variant
		want    int
	}{
		{GroupHitting, VariantStandard, 34},
		{GroupHitting, VariantAdvanced, 22},
		{GroupPitching, VariantStandard, 39},
		{GroupPitching, VariantAdvanced, 18},
		{GroupFielding, VariantStandard, 13},
		{GroupCatching, VariantStandard, 10},
		{GroupCatching, VariantAdvanced, 5},
	}
	for _, tc := range cases {
		cols, err := c.Columns(tc.group, tc.variant)
		if err != nil {
			t.Fatalf("(%s, %s): %v", tc.group, tc.variant, err)
		}
		if len(cols) != tc.want {
			t.Errorf("(%s, %s): %d columns, want %d", tc.group, tc.variant, len(cols), tc.want)
		}
	}
}

func TestColumnsUnknownSlot(t *testing.T) {
	c := New()
	if _, err := c.Columns(GroupFielding, VariantAdvanced); err == nil {
		t.Fatal("expected error for fielding/advanced")
	}
}

func TestColumnsReturnsCopy(t *testing.T) {
	c := New()
	cols, _ := c.Columns(GroupHitting, VariantStandard)
	cols[0] = "mutated"
	again, _ := c.Columns(GroupHitting, VariantStandard)
	if again[0] == "mutated" {
		t.Fatal("Columns must not expose internal state")
	}
}

// Within one column list, two codes must never display as the same
// header; the resulting table would have ambiguous columns.
func TestDisplayInjectivePerList(t *testing.T) {
	c := New()
	for _, s := range []struct {
		group   Group
		variant Variant
	}{
		{GroupHitting, VariantStandard},
		{GroupHitting, VariantAdvanced},
		{GroupPitching, VariantStandard},
		{GroupPitching, VariantAdvanced},
		{GroupFielding, VariantStandard},
		{GroupCatching, VariantStandard},
		{GroupCatching, VariantAdvanced},
	} {
		cols, err := c.Columns(s.group, s.variant)
		if err != nil {
			t.Fatal(err)
		}
		seen := make(map[string]string)
		for _, code := range cols {
			name := c.Display(code)
			if prev, dup := seen[name]; dup {
				t.Errorf("(%s, %s): header %q from both %q and %q", s.group, s.variant, name, prev, code)
			}
			seen[name] = code
		}
	}
}

func TestDisplayTotal(t *testing.T) {
	c := New()
	if got := c.Display("homeRuns"); got != "HR" {
		t.Errorf("homeRuns displayed as %q", got)
	}
	if got := c.Display("noSuchCode"); got != "noSuchCode" {
		t.Errorf("unknown code displayed as %q, want the code itself", got)
	}
}

func TestOrdinal(t *testing.T) {
	c := New()
	cases := map[int]string{
		1: "1st", 2: "2nd", 3: "3rd", 4: "4th",
		11: "11th", 12: "12th", 13: "13th",
		21: "21st", 22: "22nd", 23: "23rd", 101: "101st",
	}
	for n, want := range cases {
		if got := c.Ordinal(n); got != want {
			t.Errorf("Ordinal(%d) = %q, want %q", n, got, want)
		}
	}
}

func TestEnums(t *testing.T) {
	c := New()
	if got := c.LeagueName(103); got != "American League" {
		t.Errorf("league 103 = %q", got)
	}
	if got := c.LeagueAbbrev(104); got != "NL" {
		t.Errorf("league 104 abbrev = %q", got)
	}
	if got := c.Position(1); got != "P" {
		t.Errorf("position 1 = %q", got)
	}
	if got := c.GameType("R"); got == "" || got == "R" {
		t.Errorf("game type R unexpanded: %q", got)
	}
}
