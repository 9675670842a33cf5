package svg

import (
	"fmt"

	"github.com/beevik/etree"
)

// labelAttr is the namespaced attribute carrying a node's symbolic role. The
// label vocabulary, not tag order or position, is the contract between
// template authoring and generation.
const labelAttr = "inkscape:label"

// Symbolic labels recognized inside the working layer.
const (
	LabelBoundary      = "t_tag"             // sticker boundary path
	LabelToleranceBand = "t_color_tolerance" // tolerance band; doubles as the sizing rectangle
	LabelToleranceText = "t_tolerance"       // tolerance text holder
	LabelValueText     = "t_value"           // value text holder
	LabelPreview       = "r_color_1"         // hand-authored preview duplicate of digit slot 1
)

// DigitBandLabel names the digit band slot for a 1-based position.
func DigitBandLabel(slot int) string {
	return fmt.Sprintf("t_color_%d", slot)
}

// Label reads an element's symbolic role, or "" when untagged.
func Label(el *etree.Element) string {
	if el == nil {
		return ""
	}
	return el.SelectAttrValue(labelAttr, "")
}

// SetLabel tags an element with a symbolic role or display name.
func SetLabel(el *etree.Element, label string) {
	el.CreateAttr(labelAttr, label)
}

// Walk visits el and every descendant element in document order.
func Walk(el *etree.Element, visit func(*etree.Element)) {
	if el == nil {
		return
	}
	visit(el)
	for _, child := range el.ChildElements() {
		Walk(child, visit)
	}
}
