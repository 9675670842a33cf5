// Package testsupport provides shared fixtures for contract tests across the
// module: a realistic hand-authored tag template and loading helpers.
package testsupport

import (
	"context"
	"testing"

	"github.com/beevik/etree"

	pkgsvg "github.com/goliatone/go-resistags/pkg/svg"
)

// tagTemplate mirrors the stock Inkscape template: one working layer with the
// full label vocabulary, a sibling notes layer, and namespace prefixes that
// must survive serialization. The value tspan carries trailing whitespace on
// purpose so substitution tests cover tail clearing.
const tagTemplate = `<?xml version="1.0" encoding="UTF-8" standalone="no"?>
<svg
   xmlns:inkscape="http://www.inkscape.org/namespaces/inkscape"
   xmlns:sodipodi="http://sodipodi.sourceforge.net/DTD/sodipodi-0.dtd"
   xmlns="http://www.w3.org/2000/svg"
   width="210mm"
   height="297mm"
   viewBox="0 0 210 297"
   version="1.1"
   id="svg1">
  <defs id="defs1" />
  <sodipodi:namedview id="namedview1" pagecolor="#ffffff" />
  <g inkscape:label="Layer 1" inkscape:groupmode="layer" id="layer1">
    <path id="tagoutline" inkscape:label="t_tag" style="fill:none;stroke:#000000;stroke-width:0.2" d="M 8.4605201,9.2461907 V 20.746191 H 29.46052 V 9.2461907 Z" />
    <rect id="band1" inkscape:label="t_color_1" style="fill:#784421;stroke:none" x="10" y="9.2461907" width="1.6" height="7" />
    <rect id="band2" inkscape:label="t_color_2" style="fill:#000000;stroke:none" x="12.4" y="9.2461907" width="1.6" height="7" />
    <rect id="band3" inkscape:label="t_color_3" style="fill:#000000;stroke:none" x="14.8" y="9.2461907" width="1.6" height="7" />
    <rect id="band4" inkscape:label="t_color_4" style="fill:#ff0000;stroke:none" x="17.2" y="9.2461907" width="1.6" height="7" />
    <rect id="bandtol" inkscape:label="t_color_tolerance" style="fill:#784421;stroke:none" x="26.181069" y="9.2461907" width="2" height="7" />
    <rect id="preview" inkscape:label="r_color_1" style="fill:#784421;stroke:none" x="10" y="17" width="1.6" height="2" />
    <text id="toltext" inkscape:label="t_tolerance" xml:space="preserve" x="10" y="20"><tspan id="toltspan" x="10" y="20">±1</tspan></text>
    <text id="valtext" inkscape:label="t_value" xml:space="preserve" x="20" y="20"><tspan id="valtspan" x="21.5" y="20">100</tspan>  </text>
  </g>
  <g inkscape:label="Notes" inkscape:groupmode="layer" id="layer2">
    <text id="cutnote" x="5" y="40">cut along the outline</text>
  </g>
</svg>
`

// TagTemplate returns the raw fixture template.
func TagTemplate() []byte {
	return []byte(tagTemplate)
}

// LoadTemplate parses the fixture template into a Document.
func LoadTemplate(t *testing.T) pkgsvg.Document {
	t.Helper()
	doc, err := pkgsvg.NewDocument(pkgsvg.SourceFromBytes("tag_template.svg", TagTemplate()), TagTemplate())
	if err != nil {
		t.Fatalf("load fixture template: %v", err)
	}
	return doc
}

// WorkingLayer returns the fixture's working layer.
func WorkingLayer(t *testing.T, doc pkgsvg.Document) *etree.Element {
	t.Helper()
	layer, ok := doc.Layer("layer1")
	if !ok {
		t.Fatal("fixture template has no layer1")
	}
	return layer
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}
