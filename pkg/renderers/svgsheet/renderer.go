// Package svgsheet assembles the output document: it replaces the template's
// working layer with the generated sticker subtrees and serializes the result
// without reformatting, so whitespace-significant text nodes survive intact.
package svgsheet

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/beevik/etree"

	"github.com/goliatone/go-resistags/pkg/render"
	pkgsvg "github.com/goliatone/go-resistags/pkg/svg"
)

const (
	rendererName = "svgsheet"

	defaultDeclaration = `<?xml version="1.0" encoding="UTF-8" standalone="no"?>`
	defaultComment     = `<!-- Generated by go-resistags -->`
	defaultLayerID     = "stickers"
	defaultLayerLabel  = "Stickers"
)

// Option customises the renderer configuration.
type Option func(*Renderer)

// WithGeneratorComment overrides the provenance comment on the header's
// second line.
func WithGeneratorComment(comment string) Option {
	return func(r *Renderer) {
		r.comment = comment
	}
}

// WithOutputLayer overrides the id and display label the working layer is
// re-tagged with.
func WithOutputLayer(id, label string) Option {
	return func(r *Renderer) {
		r.layerID = id
		r.layerLabel = label
	}
}

// Renderer serializes assembled sheets. Header lines and layer tags are
// fixed at construction; Render never mutates shared state, so one instance
// serves concurrent callers.
type Renderer struct {
	declaration string
	comment     string
	layerID     string
	layerLabel  string
}

// Ensure the implementation satisfies the renderer contract.
var _ render.Renderer = (*Renderer)(nil)

// New constructs a Renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	r := &Renderer{
		declaration: defaultDeclaration,
		comment:     defaultComment,
		layerID:     defaultLayerID,
		layerLabel:  defaultLayerLabel,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	if r.layerID == "" {
		return nil, errors.New("svgsheet: output layer id is required")
	}
	return r, nil
}

// Name identifies the renderer inside a registry.
func (r *Renderer) Name() string {
	return rendererName
}

// Render deep-copies the template tree, swaps the working layer's children
// for the sheet's instances, and serializes with the original namespace
// prefixes and no re-indentation. Identical sheets yield identical bytes.
func (r *Renderer) Render(ctx context.Context, sheet render.Sheet, _ render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	root := sheet.Template.CopyRoot()
	if root == nil {
		return nil, errors.New("svgsheet: sheet template is empty")
	}

	layer := findByID(root, sheet.WorkingLayerID)
	if layer == nil {
		return nil, &pkgsvg.TemplateStructureError{Missing: fmt.Sprintf("working layer %q", sheet.WorkingLayerID)}
	}

	// Drop the template content and its authoring attributes, then re-tag.
	for len(layer.Child) > 0 {
		layer.RemoveChildAt(len(layer.Child) - 1)
	}
	layer.Attr = nil
	layer.CreateAttr("id", r.layerID)
	pkgsvg.SetLabel(layer, r.layerLabel)

	for _, inst := range sheet.Instances {
		if inst.Node == nil {
			return nil, fmt.Errorf("svgsheet: instance %d has no subtree", inst.Index)
		}
		layer.AddChild(inst.Node.Copy())
	}

	out := etree.NewDocument()
	out.SetRoot(root)

	var buf bytes.Buffer
	buf.WriteString(r.declaration)
	buf.WriteByte('\n')
	buf.WriteString(r.comment)
	buf.WriteByte('\n')
	if _, err := out.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("svgsheet: serialize document: %w", err)
	}

	return buf.Bytes(), nil
}

func findByID(root *etree.Element, id string) *etree.Element {
	if id == "" {
		return nil
	}
	var found *etree.Element
	pkgsvg.Walk(root, func(el *etree.Element) {
		if found == nil && el.SelectAttrValue("id", "") == id {
			found = el
		}
	})
	return found
}
