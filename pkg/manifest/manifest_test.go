package manifest

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
)

func TestDefaultManifest(t *testing.T) {
	m := Default()

	want := []string{"quarter-watt-1pct", "one-watt-1pct-low", "one-watt-1pct-high"}
	if diff := cmp.Diff(want, m.Names()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}

	low, ok := m.Sheet("one-watt-1pct-low")
	if !ok {
		t.Fatal("low sheet missing")
	}
	if low.TolerancePercent != 1 {
		t.Fatalf("tolerance = %g", low.TolerancePercent)
	}
	if low.Output != "resistags_1_watt_1percent_low.svg" {
		t.Fatalf("output = %q", low.Output)
	}
	if len(low.Values) != 30 {
		t.Fatalf("low sheet has %d values, want 30", len(low.Values))
	}
	if low.Values[0] != 0.1 || low.Values[1] != 0.33 || low.Values[len(low.Values)-1] != 750 {
		t.Fatalf("low sheet values out of order: %v", low.Values)
	}

	quarter, _ := m.Sheet("quarter-watt-1pct")
	if len(quarter.Values) != 30 || quarter.Values[len(quarter.Values)-1] != 1000000 {
		t.Fatalf("quarter sheet values = %v", quarter.Values)
	}
}

func TestParseCustomManifest(t *testing.T) {
	raw := []byte(`
sheets:
  - name: bench
    output: bench.svg
    tolerance_percent: 5
    columns: 4
    notes: shelf two
    values: [100, 220, 470]
`)
	m, err := Parse(raw)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	sheet, ok := m.Sheet("bench")
	if !ok {
		t.Fatal("sheet missing")
	}
	if sheet.Columns != 4 || sheet.Notes != "shelf two" || sheet.TolerancePercent != 5 {
		t.Fatalf("sheet = %+v", sheet)
	}
	if diff := cmp.Diff([]float64{100, 220, 470}, sheet.Values); diff != "" {
		t.Fatalf("values mismatch (-want +got):\n%s", diff)
	}
}

func TestParseRejectsInvalidManifests(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want string
	}{
		{"empty", `sheets: []`, "no sheets"},
		{"unnamed", `{sheets: [{output: a.svg, tolerance_percent: 1, values: [10]}]}`, "has no name"},
		{"duplicate", `{sheets: [{name: a, output: a.svg, tolerance_percent: 1, values: [10]}, {name: a, output: b.svg, tolerance_percent: 1, values: [10]}]}`, "duplicate"},
		{"no output", `{sheets: [{name: a, tolerance_percent: 1, values: [10]}]}`, "no output"},
		{"no values", `{sheets: [{name: a, output: a.svg, tolerance_percent: 1, values: []}]}`, "no values"},
		{"bad tolerance", `{sheets: [{name: a, output: a.svg, tolerance_percent: 0, values: [10]}]}`, "tolerance"},
		{"bad yaml", `sheets: [`, "parse yaml"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.raw))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("error %q does not mention %q", err, tc.want)
			}
		})
	}
}

func TestLoadFS(t *testing.T) {
	fsys := fstest.MapFS{
		"sheets.yaml": &fstest.MapFile{Data: []byte(`{sheets: [{name: a, output: a.svg, tolerance_percent: 1, values: [10]}]}`)},
	}

	m, err := LoadFS(fsys, "sheets.yaml")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if _, ok := m.Sheet("a"); !ok {
		t.Fatal("sheet missing")
	}

	if _, err := LoadFS(fsys, "missing.yaml"); err == nil {
		t.Fatal("expected error for missing file")
	}
}
