package report

import (
	"strings"
	"testing"

	"github.com/goliatone/go-resistags/pkg/bands"
	"github.com/goliatone/go-resistags/pkg/render"
	"github.com/goliatone/go-resistags/pkg/sticker"
	"github.com/goliatone/go-resistags/pkg/testsupport"
)

func fixtureSheet(t *testing.T) render.Sheet {
	t.Helper()

	instances := make([]sticker.Instance, 0, 2)
	for index, ohms := range []float64{4700, 0.33} {
		spec := bands.MustNewSpec(ohms, 1)
		colors, err := spec.Colors()
		if err != nil {
			t.Fatalf("encode %v: %v", ohms, err)
		}
		instances = append(instances, sticker.Instance{
			Index:            index,
			Ohms:             ohms,
			TolerancePercent: 1,
			Colors:           colors,
			ValueText:        bands.FormatValue(ohms),
			ToleranceText:    bands.FormatTolerance(1),
		})
	}

	return render.Sheet{
		TolerancePercent: 1,
		Palette:          bands.DefaultPalette(),
		Instances:        instances,
		Title:            "¼W drawer",
	}
}

func TestRenderIndex(t *testing.T) {
	out, err := New().Render(testsupport.Context(), fixtureSheet(t), render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	html := string(out)

	if !strings.Contains(html, "<title>¼W drawer</title>") {
		t.Fatalf("title missing:\n%s", html)
	}
	if !strings.Contains(html, "2 stickers at ±1% tolerance.") {
		t.Fatalf("summary line missing:\n%s", html)
	}
	if !strings.Contains(html, "4.7 kΩ ±1") {
		t.Fatalf("value row missing:\n%s", html)
	}
	if !strings.Contains(html, "0.33 Ω ±1") {
		t.Fatalf("sub-ohm row missing:\n%s", html)
	}

	// 4.7k at 1% is yellow violet black brown brown.
	palette := bands.DefaultPalette()
	for _, hex := range []string{palette.Hex(bands.Yellow), palette.Hex(bands.Violet), palette.Hex(bands.Brown)} {
		if !strings.Contains(html, "background:#"+hex) {
			t.Fatalf("swatch %s missing:\n%s", hex, html)
		}
	}
}

func TestRenderSanitizesNotes(t *testing.T) {
	opts := render.RenderOptions{Notes: `cut <b>carefully</b><script>alert(1)</script>`}
	out, err := New().Render(testsupport.Context(), fixtureSheet(t), opts)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	html := string(out)

	if !strings.Contains(html, "cut <b>carefully</b>") {
		t.Fatalf("benign markup stripped:\n%s", html)
	}
	if strings.Contains(html, "<script>") {
		t.Fatalf("script survived sanitization:\n%s", html)
	}
}

func TestRenderOmitsEmptyNotes(t *testing.T) {
	out, err := New().Render(testsupport.Context(), fixtureSheet(t), render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(string(out), `class="notes"`) {
		t.Fatal("notes block rendered without notes")
	}
}

func TestRenderDefaultTitle(t *testing.T) {
	sheet := fixtureSheet(t)
	sheet.Title = ""
	out, err := New().Render(testsupport.Context(), sheet, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(string(out), "<title>Resistor stickers</title>") {
		t.Fatal("default title missing")
	}
}
