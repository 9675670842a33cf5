package svg

import (
	"fmt"
	"testing"

	"github.com/beevik/etree"
)

const miniTemplate = `<svg xmlns="http://www.w3.org/2000/svg" xmlns:inkscape="http://www.inkscape.org/namespaces/inkscape">
  <g id="layer1" inkscape:label="Layer 1">
    <rect id="band1" inkscape:label="t_color_1" style="fill:#ff0000" x="1" y="1"/>
    <g id="wrap">
      <rect id="inner" x="2" y="2"/>
    </g>
  </g>
</svg>`

func TestNewDocumentValidatesInput(t *testing.T) {
	if _, err := NewDocument(nil, []byte(miniTemplate)); err == nil {
		t.Fatal("expected error for nil source")
	}
	if _, err := NewDocument(SourceFromBytes("mini", nil), nil); err == nil {
		t.Fatal("expected error for empty payload")
	}
	if _, err := NewDocument(SourceFromBytes("mini", []byte("not xml <<")), []byte("not xml <<")); err == nil {
		t.Fatal("expected error for malformed payload")
	}
}

func TestLayerLookup(t *testing.T) {
	doc := MustNewDocument(SourceFromBytes("mini", []byte(miniTemplate)), []byte(miniTemplate))

	layer, ok := doc.Layer("layer1")
	if !ok {
		t.Fatal("layer1 not found")
	}
	if got := Label(layer); got != "Layer 1" {
		t.Fatalf("layer label = %q, want %q", got, "Layer 1")
	}

	if _, ok := doc.Layer("missing"); ok {
		t.Fatal("unexpected match for missing layer")
	}
}

func TestCloneElementRewritesEveryID(t *testing.T) {
	doc := MustNewDocument(SourceFromBytes("mini", []byte(miniTemplate)), []byte(miniTemplate))
	layer, _ := doc.Layer("layer1")

	clone := CloneElement(layer, func(position int, id string) string {
		return fmt.Sprintf("copy0_%d_%s", position, id)
	})

	want := map[string]bool{
		"copy0_0_layer1": false,
		"copy0_1_band1":  false,
		"copy0_2_wrap":   false,
		"copy0_3_inner":  false,
	}
	Walk(clone, func(el *etree.Element) {
		if id := el.SelectAttrValue("id", ""); id != "" {
			if _, expected := want[id]; !expected {
				t.Fatalf("unexpected id %q", id)
			}
			want[id] = true
		}
	})
	for id, seen := range want {
		if !seen {
			t.Fatalf("id %q not produced", id)
		}
	}

	// The source tree must be untouched.
	if got := layer.SelectAttrValue("id", ""); got != "layer1" {
		t.Fatalf("source layer id mutated to %q", got)
	}

	// Mutating the clone must not leak into the source.
	clone.ChildElements()[0].CreateAttr("style", "fill:#00ff00")
	band := layer.ChildElements()[0]
	if got := band.SelectAttrValue("style", ""); got != "fill:#ff0000" {
		t.Fatalf("source style mutated to %q", got)
	}
}

func TestAnchorsOrDefaults(t *testing.T) {
	resolved := Anchors{}.OrDefaults()
	if !resolved.HasBounds || !resolved.HasValueRightX {
		t.Fatal("defaults should mark all measurements present")
	}
	if resolved.Width != DefaultTemplateWidth || resolved.ValueRightX != DefaultValueRightX {
		t.Fatalf("unexpected defaults: %+v", resolved)
	}

	partial := Anchors{MinX: 1, MinY: 2, Width: 30, Height: 15, HasBounds: true}.OrDefaults()
	if partial.Width != 30 {
		t.Fatalf("extracted bounds overwritten: %+v", partial)
	}
	if partial.ValueRightX != DefaultValueRightX {
		t.Fatalf("missing anchor not defaulted: %+v", partial)
	}
}
