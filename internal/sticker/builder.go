// Package sticker turns template content plus an encoded resistance into one
// fully self-contained, uniquely-identified sticker subtree.
package sticker

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/beevik/etree"

	"github.com/goliatone/go-resistags/pkg/bands"
	"github.com/goliatone/go-resistags/pkg/layout"
	pkgsvg "github.com/goliatone/go-resistags/pkg/svg"
)

// Size is the physical sticker size in sheet units.
type Size struct {
	Width  float64
	Height float64
}

// Instance is one generated sticker: its subtree plus the metadata renderers
// report on. Instances are never mutated after Build returns them.
type Instance struct {
	Index            int
	Ohms             float64
	TolerancePercent float64
	Colors           []bands.Color
	ValueText        string
	ToleranceText    string
	Transform        string
	Position         layout.Point
	Node             *etree.Element
}

// Params describes one sticker to build.
type Params struct {
	Index    int
	Spec     bands.Spec
	Colors   []bands.Color
	Position layout.Point
}

// Builder clones template children into positioned, recolored, relabeled
// sticker subtrees. It holds only immutable shared state, so concurrent
// Build calls are safe.
type Builder struct {
	template []*etree.Element
	anchors  pkgsvg.Anchors
	palette  bands.Palette
	target   Size
	scaleX   float64
	scaleY   float64
}

// NewBuilder validates the shared inputs and precomputes the scale factors.
// Anchors must already be resolved (OrDefaults) so every measurement is
// present.
func NewBuilder(templateChildren []*etree.Element, anchors pkgsvg.Anchors, palette bands.Palette, target Size) (*Builder, error) {
	if len(templateChildren) == 0 {
		return nil, errors.New("sticker: template layer has no content")
	}
	if !anchors.HasBounds || !anchors.HasValueRightX {
		return nil, errors.New("sticker: anchors are unresolved; call OrDefaults first")
	}
	if anchors.Width <= 0 || anchors.Height <= 0 {
		return nil, fmt.Errorf("sticker: template size %gx%g is not positive", anchors.Width, anchors.Height)
	}
	if target.Width <= 0 || target.Height <= 0 {
		return nil, fmt.Errorf("sticker: target size %gx%g is not positive", target.Width, target.Height)
	}

	return &Builder{
		template: templateChildren,
		anchors:  anchors,
		palette:  palette,
		target:   target,
		scaleX:   target.Width / anchors.Width,
		scaleY:   target.Height / anchors.Height,
	}, nil
}

// Build produces one sticker subtree. The transform shifts the template's own
// origin so the bounding box's top-left lands at the grid position after
// scaling, regardless of where the template author drew the artwork.
func (b *Builder) Build(p Params) (Instance, error) {
	if len(p.Colors) != p.Spec.Bands() {
		return Instance{}, fmt.Errorf("sticker: got %d colors for a %d-band spec", len(p.Colors), p.Spec.Bands())
	}

	valueText := bands.FormatValue(p.Spec.Ohms())
	toleranceText := bands.FormatTolerance(p.Spec.TolerancePercent())

	transform := fmt.Sprintf("translate(%s,%s) scale(%s,%s)",
		num(p.Position.X-b.anchors.MinX*b.scaleX),
		num(p.Position.Y-b.anchors.MinY*b.scaleY),
		num(b.scaleX),
		num(b.scaleY),
	)

	group := etree.NewElement("g")
	group.CreateAttr("id", fmt.Sprintf("sticker_%d", p.Index))
	group.CreateAttr("transform", transform)
	pkgsvg.SetLabel(group, valueText)

	prefix := fmt.Sprintf("sticker%d", p.Index)
	rewrite := func(position int, id string) string {
		return fmt.Sprintf("%s_%d_%s", prefix, position, id)
	}

	for _, child := range b.template {
		label := pkgsvg.Label(child)

		// A 4-band part has no 4th digit; the slot is omitted outright so no
		// stale template fill survives.
		if label == pkgsvg.DigitBandLabel(4) && p.Spec.Bands() == 4 {
			continue
		}

		node := pkgsvg.CloneElement(child, rewrite)
		b.decorate(node, label, p.Colors, valueText, toleranceText)
		group.AddChild(node)
	}

	return Instance{
		Index:            p.Index,
		Ohms:             p.Spec.Ohms(),
		TolerancePercent: p.Spec.TolerancePercent(),
		Colors:           append([]bands.Color(nil), p.Colors...),
		ValueText:        valueText,
		ToleranceText:    toleranceText,
		Transform:        transform,
		Position:         p.Position,
		Node:             group,
	}, nil
}

func (b *Builder) decorate(node *etree.Element, label string, colors []bands.Color, valueText, toleranceText string) {
	switch label {
	case pkgsvg.DigitBandLabel(1), pkgsvg.LabelPreview:
		// The preview slot always mirrors slot 1 to keep the template's own
		// example rendering in sync.
		b.fill(node, colors[0])
	case pkgsvg.DigitBandLabel(2):
		b.fill(node, colors[1])
	case pkgsvg.DigitBandLabel(3):
		b.fill(node, colors[2])
	case pkgsvg.DigitBandLabel(4):
		b.fill(node, colors[3])
	case pkgsvg.LabelToleranceBand:
		// Tolerance is always the last color, whatever the band count.
		b.fill(node, colors[len(colors)-1])
	case pkgsvg.LabelToleranceText:
		setFirstTextRun(node, toleranceText)
	case pkgsvg.LabelValueText:
		b.substituteValue(node, valueText)
	}
}

func (b *Builder) fill(node *etree.Element, color bands.Color) {
	attr := node.SelectAttr("style")
	if attr == nil {
		return
	}
	attr.Value = setStyleFill(attr.Value, b.palette.Hex(color))
}

// substituteValue right-aligns the value text against the extracted anchor
// and replaces the first numeric text run with the formatted value.
func (b *Builder) substituteValue(node *etree.Element, valueText string) {
	anchor := num(b.anchors.ValueRightX)
	node.CreateAttr("x", anchor)

	replaced := false
	for _, tspan := range node.FindElements(".//tspan") {
		if tspan.SelectAttr("x") != nil {
			tspan.CreateAttr("x", anchor)
		}
		if replaced {
			continue
		}
		if numericRun.MatchString(strings.TrimSpace(tspan.Text())) {
			tspan.SetText(valueText)
			clearTrailingText(tspan)
			replaced = true
		}
	}
}

var (
	numericRun  = regexp.MustCompile(`^[\d.]+$`)
	styleFillRe = regexp.MustCompile(`fill:#[0-9a-fA-F]+`)
)

// setStyleFill rewrites the first fill declaration in a style attribute.
func setStyleFill(style, hex string) string {
	loc := styleFillRe.FindStringIndex(style)
	if loc == nil {
		return style
	}
	return style[:loc[0]] + "fill:#" + hex + style[loc[1]:]
}

// setFirstTextRun replaces the first non-empty tspan text under node.
func setFirstTextRun(node *etree.Element, text string) {
	for _, tspan := range node.FindElements(".//tspan") {
		if strings.TrimSpace(tspan.Text()) != "" {
			tspan.SetText(text)
			return
		}
	}
}

// clearTrailingText drops the character data directly following el inside its
// parent so a replacement run does not visually duplicate spacing.
func clearTrailingText(el *etree.Element) {
	parent := el.Parent()
	if parent == nil {
		return
	}
	idx := el.Index()
	if idx < 0 || idx+1 >= len(parent.Child) {
		return
	}
	if _, ok := parent.Child[idx+1].(*etree.CharData); ok {
		parent.RemoveChildAt(idx + 1)
	}
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
