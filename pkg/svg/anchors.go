package svg

import (
	"context"

	"github.com/beevik/etree"
)

// Fallback anchor constants, measured from the stock tag template. They apply
// whenever the corresponding labeled node is absent or unparsable.
const (
	DefaultTemplateWidth  = 21.0
	DefaultTemplateHeight = 11.5
	DefaultTemplateMinX   = 8.4605201
	DefaultTemplateMinY   = 9.2461907
	DefaultValueRightX    = 28.1810686
)

// Anchors collects the measurements extracted from a template's labeled
// nodes. Has* fields report which measurements were actually found; missing
// ones are filled from the documented fallback constants via OrDefaults.
// Anchors are derived once per run and read-only afterwards.
type Anchors struct {
	// Bounding box of the sticker boundary path, in template coordinates.
	MinX   float64
	MinY   float64
	Width  float64
	Height float64
	// ValueRightX is the x coordinate the value text right-aligns against:
	// the right edge of the tolerance sizing rectangle when present, else the
	// value text's own x position.
	ValueRightX float64

	HasBounds      bool
	HasValueRightX bool
}

// OrDefaults fills missing measurements with the documented fallbacks and
// marks them present.
func (a Anchors) OrDefaults() Anchors {
	if !a.HasBounds {
		a.MinX = DefaultTemplateMinX
		a.MinY = DefaultTemplateMinY
		a.Width = DefaultTemplateWidth
		a.Height = DefaultTemplateHeight
		a.HasBounds = true
	}
	if !a.HasValueRightX {
		a.ValueRightX = DefaultValueRightX
		a.HasValueRightX = true
	}
	return a
}

// MetricsExtractor derives Anchors from a working layer's labeled nodes. It
// is best-effort: a missing or malformed node leaves its measurement unset
// rather than failing the run.
type MetricsExtractor interface {
	Extract(ctx context.Context, layer *etree.Element) (Anchors, error)
}
