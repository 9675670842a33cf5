package svg

import "github.com/beevik/etree"

// RewriteID produces a replacement identifier from a node's structural
// position (a running depth-first counter over the cloned subtree) and its
// original id.
type RewriteID func(position int, id string) string

// CloneElement returns a deep, independent copy of el: nested children, text
// content, and inter-element whitespace all duplicate, so mutating the copy
// never affects the source. When rewrite is non-nil, every id attribute in
// the copy (the subtree root's included) is passed through it; elements
// without an id remain without one.
func CloneElement(el *etree.Element, rewrite RewriteID) *etree.Element {
	if el == nil {
		return nil
	}

	clone := el.Copy()
	if rewrite == nil {
		return clone
	}

	position := 0
	Walk(clone, func(node *etree.Element) {
		if attr := node.SelectAttr("id"); attr != nil {
			attr.Value = rewrite(position, attr.Value)
		}
		position++
	})
	return clone
}
