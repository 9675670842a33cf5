// Package metrics derives template anchors by scanning the working layer's
// labeled nodes instead of assuming fixed template dimensions.
package metrics

import (
	"context"
	"errors"
	"strconv"

	"github.com/beevik/etree"

	"github.com/goliatone/go-resistags/internal/svg/svgpath"
	pkgsvg "github.com/goliatone/go-resistags/pkg/svg"
)

// Extractor implements pkgsvg.MetricsExtractor. It is read-only and meant to
// run exactly once per generation, before any instantiation.
type Extractor struct{}

// Ensure the implementation satisfies the public interface.
var _ pkgsvg.MetricsExtractor = (*Extractor)(nil)

// New constructs an Extractor.
func New() pkgsvg.MetricsExtractor {
	return &Extractor{}
}

// Extract scans the layer for the boundary path, the tolerance sizing
// rectangle, and the value text holder. Missing or unparsable nodes leave
// their measurements unset; callers resolve those through Anchors.OrDefaults.
func (e *Extractor) Extract(ctx context.Context, layer *etree.Element) (pkgsvg.Anchors, error) {
	if layer == nil {
		return pkgsvg.Anchors{}, errors.New("svg metrics: layer is nil")
	}
	if err := ctx.Err(); err != nil {
		return pkgsvg.Anchors{}, err
	}

	var anchors pkgsvg.Anchors
	var fallbackX float64
	var hasFallbackX bool

	pkgsvg.Walk(layer, func(el *etree.Element) {
		switch pkgsvg.Label(el) {
		case pkgsvg.LabelBoundary:
			if anchors.HasBounds || el.Tag != "path" {
				return
			}
			box, err := svgpath.Bounds(el.SelectAttrValue("d", ""))
			if err != nil {
				return
			}
			anchors.MinX = box.MinX
			anchors.MinY = box.MinY
			anchors.Width = box.Width
			anchors.Height = box.Height
			anchors.HasBounds = true
		case pkgsvg.LabelToleranceBand:
			if anchors.HasValueRightX || el.Tag != "rect" {
				return
			}
			x, okX := parseAttrFloat(el, "x")
			w, okW := parseAttrFloat(el, "width")
			if okX && okW {
				anchors.ValueRightX = x + w
				anchors.HasValueRightX = true
			}
		case pkgsvg.LabelValueText:
			if hasFallbackX || el.Tag != "text" {
				return
			}
			if x, ok := parseAttrFloat(el, "x"); ok {
				fallbackX = x
				hasFallbackX = true
			}
			for _, tspan := range el.FindElements(".//tspan") {
				if x, ok := parseAttrFloat(tspan, "x"); ok {
					fallbackX = x
					hasFallbackX = true
					break
				}
			}
		}
	})

	// The sizing rectangle wins; the text's own x only stands in when the
	// rectangle is absent.
	if !anchors.HasValueRightX && hasFallbackX {
		anchors.ValueRightX = fallbackX
		anchors.HasValueRightX = true
	}

	return anchors, nil
}

func parseAttrFloat(el *etree.Element, key string) (float64, bool) {
	raw := el.SelectAttrValue(key, "")
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
