// Package render defines the renderer contract shared by the sheet
// serializer and the index report, plus the registry that stores renderers by
// name.
package render

import (
	"context"

	"github.com/goliatone/go-resistags/pkg/bands"
	"github.com/goliatone/go-resistags/pkg/layout"
	"github.com/goliatone/go-resistags/pkg/sticker"
	"github.com/goliatone/go-resistags/pkg/svg"
)

// Sheet is the fully assembled model handed to renderers: the pristine
// template, the ordered sticker instances, and the configuration they were
// built under. Renderers treat it as read-only; every render of the same
// sheet yields byte-identical output.
type Sheet struct {
	// Template is the parsed source document. Renderers that mutate the tree
	// work on a deep copy.
	Template svg.Document

	// WorkingLayerID names the layer whose children are replaced wholesale.
	WorkingLayerID string

	// Anchors are the resolved template measurements.
	Anchors svg.Anchors

	// Grid is the sheet geometry the instances were positioned with.
	Grid layout.Grid

	// TolerancePercent applies to every instance on the sheet.
	TolerancePercent float64

	// Palette maps band colors to fills; immutable configuration.
	Palette bands.Palette

	// Instances are the generated stickers, in input order.
	Instances []sticker.Instance

	// Title names the sheet for human-facing output.
	Title string
}

// RenderOptions carries per-request instructions renderers may surface, such
// as a free-text note on the index report. The zero value is valid.
type RenderOptions struct {
	// Notes is untrusted free text shown on the index report after
	// sanitization. The sheet renderer ignores it.
	Notes string
}

// Renderer turns an assembled sheet into output bytes.
type Renderer interface {
	Name() string
	Render(ctx context.Context, sheet Sheet, opts RenderOptions) ([]byte, error)
}
