package sticker

import (
	"strings"
	"testing"

	"github.com/beevik/etree"

	"github.com/goliatone/go-resistags/pkg/bands"
	"github.com/goliatone/go-resistags/pkg/layout"
	pkgsvg "github.com/goliatone/go-resistags/pkg/svg"
	"github.com/goliatone/go-resistags/pkg/testsupport"
)

func fixtureAnchors() pkgsvg.Anchors {
	return pkgsvg.Anchors{
		MinX:           8.4605201,
		MinY:           9.2461907,
		Width:          21,
		Height:         11.5,
		ValueRightX:    28.181069,
		HasBounds:      true,
		HasValueRightX: true,
	}
}

func fixtureBuilder(t *testing.T) (*Builder, *etree.Element) {
	t.Helper()

	doc := testsupport.LoadTemplate(t)
	layer := testsupport.WorkingLayer(t, doc)

	builder, err := NewBuilder(layer.ChildElements(), fixtureAnchors(), bands.DefaultPalette(), Size{Width: 23, Height: 12})
	if err != nil {
		t.Fatalf("new builder: %v", err)
	}
	return builder, layer
}

func findByLabel(root *etree.Element, label string) *etree.Element {
	var found *etree.Element
	pkgsvg.Walk(root, func(el *etree.Element) {
		if found == nil && pkgsvg.Label(el) == label {
			found = el
		}
	})
	return found
}

func styleOf(t *testing.T, el *etree.Element) string {
	t.Helper()
	if el == nil {
		t.Fatal("element not found")
	}
	return el.SelectAttrValue("style", "")
}

func serialize(t *testing.T, el *etree.Element) string {
	t.Helper()
	doc := etree.NewDocument()
	doc.SetRoot(el.Copy())
	out, err := doc.WriteToString()
	if err != nil {
		t.Fatalf("serialize: %v", err)
	}
	return out
}

func TestBuildFiveBandInstance(t *testing.T) {
	builder, _ := fixtureBuilder(t)

	spec := bands.MustNewSpec(220, 1)
	colors, err := spec.Colors()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	inst, err := builder.Build(Params{Index: 0, Spec: spec, Colors: colors, Position: layout.Point{X: 0, Y: 0}})
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	if inst.ValueText != "220 Ω" {
		t.Fatalf("value text = %q", inst.ValueText)
	}
	if got := inst.Node.SelectAttrValue("id", ""); got != "sticker_0" {
		t.Fatalf("group id = %q", got)
	}
	if got := pkgsvg.Label(inst.Node); got != "220 Ω" {
		t.Fatalf("group label = %q", got)
	}
	if got := inst.Node.SelectAttrValue("transform", ""); got != inst.Transform || !strings.HasPrefix(got, "translate(") || !strings.Contains(got, "scale(") {
		t.Fatalf("transform = %q", got)
	}

	// 220 at 1% is red red black, x1 black, brown.
	palette := bands.DefaultPalette()
	if got := styleOf(t, findByLabel(inst.Node, "t_color_1")); !strings.Contains(got, "fill:#"+palette.Hex(bands.Red)) {
		t.Fatalf("band 1 style = %q", got)
	}
	if got := styleOf(t, findByLabel(inst.Node, "t_color_3")); !strings.Contains(got, "fill:#"+palette.Hex(bands.Black)) {
		t.Fatalf("band 3 style = %q", got)
	}
	if got := styleOf(t, findByLabel(inst.Node, "t_color_4")); !strings.Contains(got, "fill:#"+palette.Hex(bands.Black)) {
		t.Fatalf("band 4 style = %q", got)
	}
	if got := styleOf(t, findByLabel(inst.Node, "t_color_tolerance")); !strings.Contains(got, "fill:#"+palette.Hex(bands.Brown)) {
		t.Fatalf("tolerance band style = %q", got)
	}

	// The preview slot mirrors slot 1.
	slot1 := styleOf(t, findByLabel(inst.Node, "t_color_1"))
	preview := styleOf(t, findByLabel(inst.Node, "r_color_1"))
	if slot1 != preview {
		t.Fatalf("preview style %q differs from slot 1 %q", preview, slot1)
	}
}

func TestBuildFourBandOmitsFourthDigitSlot(t *testing.T) {
	builder, layer := fixtureBuilder(t)

	spec := bands.MustNewSpec(220, 5)
	colors, err := spec.Colors()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	inst, err := builder.Build(Params{Index: 0, Spec: spec, Colors: colors, Position: layout.Point{}})
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	if found := findByLabel(inst.Node, "t_color_4"); found != nil {
		t.Fatal("4-band instance must not carry a 4th digit slot")
	}
	if len(inst.Node.ChildElements()) != len(layer.ChildElements())-1 {
		t.Fatalf("expected %d children, got %d", len(layer.ChildElements())-1, len(inst.Node.ChildElements()))
	}

	// Tolerance comes from the last color, position 3 for 4 bands.
	palette := bands.DefaultPalette()
	if got := styleOf(t, findByLabel(inst.Node, "t_color_tolerance")); !strings.Contains(got, "fill:#"+palette.Hex(bands.Gold)) {
		t.Fatalf("tolerance band style = %q", got)
	}
}

func TestBuildSubstitutesText(t *testing.T) {
	builder, _ := fixtureBuilder(t)

	spec := bands.MustNewSpec(4700, 1)
	colors, _ := spec.Colors()
	inst, err := builder.Build(Params{Index: 2, Spec: spec, Colors: colors, Position: layout.Point{X: 52, Y: 0}})
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	value := findByLabel(inst.Node, "t_value")
	if value == nil {
		t.Fatal("value text node missing")
	}
	if got := value.SelectAttrValue("x", ""); got != "28.181069" {
		t.Fatalf("value text x = %q, want anchor 28.181069", got)
	}
	tspan := value.FindElement(".//tspan")
	if tspan == nil {
		t.Fatal("value tspan missing")
	}
	if got := tspan.Text(); got != "4.7 kΩ" {
		t.Fatalf("value run = %q", got)
	}
	if got := tspan.SelectAttrValue("x", ""); got != "28.181069" {
		t.Fatalf("value tspan x = %q", got)
	}

	// The fixture's trailing whitespace after the tspan must be gone.
	if raw := serialize(t, value); strings.Contains(raw, "</tspan>  ") {
		t.Fatalf("trailing inter-run whitespace survived: %q", raw)
	}

	tolerance := findByLabel(inst.Node, "t_tolerance")
	tolRun := tolerance.FindElement(".//tspan")
	if got := tolRun.Text(); got != "±1" {
		t.Fatalf("tolerance run = %q", got)
	}
}

func TestBuildUniquifiesIdentifiers(t *testing.T) {
	builder, layer := fixtureBuilder(t)

	spec := bands.MustNewSpec(100, 1)
	colors, _ := spec.Colors()

	ids := make(map[string]int)
	for index := 0; index < 3; index++ {
		inst, err := builder.Build(Params{Index: index, Spec: spec, Colors: colors, Position: layout.Point{}})
		if err != nil {
			t.Fatalf("build %d: %v", index, err)
		}
		pkgsvg.Walk(inst.Node, func(el *etree.Element) {
			if id := el.SelectAttrValue("id", ""); id != "" {
				ids[id]++
			}
		})
	}

	for id, count := range ids {
		if count > 1 {
			t.Fatalf("id %q appears %d times", id, count)
		}
	}

	// The shared template must be untouched.
	if got := layer.ChildElements()[1].SelectAttrValue("id", ""); got != "band1" {
		t.Fatalf("template id mutated to %q", got)
	}
	if got := styleOf(t, findByLabel(layer, "t_color_1")); got != "fill:#784421;stroke:none" {
		t.Fatalf("template style mutated to %q", got)
	}
}

func TestBuildIsDeterministic(t *testing.T) {
	builder, _ := fixtureBuilder(t)

	spec := bands.MustNewSpec(0.33, 1)
	colors, err := spec.Colors()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	params := Params{Index: 4, Spec: spec, Colors: colors, Position: layout.Point{X: 104, Y: 15}}
	first, err := builder.Build(params)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	second, err := builder.Build(params)
	if err != nil {
		t.Fatalf("rebuild: %v", err)
	}

	if a, b := serialize(t, first.Node), serialize(t, second.Node); a != b {
		t.Fatalf("identical inputs produced different subtrees:\n%s\n---\n%s", a, b)
	}
}

func TestBuildRejectsColorCountMismatch(t *testing.T) {
	builder, _ := fixtureBuilder(t)

	spec := bands.MustNewSpec(220, 1)
	if _, err := builder.Build(Params{Index: 0, Spec: spec, Colors: []bands.Color{bands.Red, bands.Red}}); err == nil {
		t.Fatal("expected error for color count mismatch")
	}
}
