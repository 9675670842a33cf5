package resistags

import (
	"bytes"
	"context"
	"testing"

	"github.com/beevik/etree"
)

func TestGenerateSVGWithEmbeddedTemplate(t *testing.T) {
	out, err := GenerateSVG(context.Background(), EmbeddedTemplateSource(), []float64{220, 4700}, 1)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(out); err != nil {
		t.Fatalf("output does not parse: %v", err)
	}
	layer := doc.FindElement("//g[@id='stickers']")
	if layer == nil {
		t.Fatal("stickers layer missing")
	}
	if got := len(layer.ChildElements()); got != 2 {
		t.Fatalf("got %d stickers, want 2", got)
	}
}

func TestGenerateSVGFromDocumentMatchesSourcePath(t *testing.T) {
	ctx := context.Background()

	loader := NewLoader()
	doc, err := loader.Load(ctx, EmbeddedTemplateSource())
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	fromDoc, err := GenerateSVGFromDocument(ctx, doc, []float64{100}, 5)
	if err != nil {
		t.Fatalf("generate from document: %v", err)
	}
	fromSource, err := GenerateSVG(ctx, EmbeddedTemplateSource(), []float64{100}, 5)
	if err != nil {
		t.Fatalf("generate from source: %v", err)
	}
	if !bytes.Equal(fromDoc, fromSource) {
		t.Fatal("document and source paths disagree")
	}
}

func TestEmbeddedTemplateReturnsCopy(t *testing.T) {
	first := EmbeddedTemplate()
	first[0] = 'x'
	if second := EmbeddedTemplate(); second[0] == 'x' {
		t.Fatal("EmbeddedTemplate leaked its backing array")
	}
}

func TestDefaultManifestSheets(t *testing.T) {
	m := DefaultManifest()
	if len(m.Sheets) != 3 {
		t.Fatalf("got %d sheets, want 3", len(m.Sheets))
	}
	if _, ok := m.Sheet("quarter-watt-1pct"); !ok {
		t.Fatal("quarter watt sheet missing")
	}
}
