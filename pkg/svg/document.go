package svg

import (
	"errors"
	"fmt"

	"github.com/beevik/etree"
)

// Source identifies where a template document originated so loaders can
// operate on files, fs.FS entries, or in-memory payloads without leaking
// implementation details.
type Source interface {
	Kind() SourceKind
	Location() string
}

// SourceKind enumerates the loader modalities.
type SourceKind string

const (
	SourceKindFile  SourceKind = "file"
	SourceKindFS    SourceKind = "fs"
	SourceKindBytes SourceKind = "bytes"
)

// Document wraps a parsed template tree and its origin. The tree is treated
// as read-only after construction; callers that need to mutate it take a deep
// copy through CopyRoot.
type Document struct {
	source Source
	tree   *etree.Document
}

// NewDocument parses the raw payload and wraps it with origin metadata.
func NewDocument(src Source, raw []byte) (Document, error) {
	if src == nil {
		return Document{}, errors.New("svg: source is required")
	}
	if len(raw) == 0 {
		return Document{}, errors.New("svg: raw document is empty")
	}

	tree := etree.NewDocument()
	if err := tree.ReadFromBytes(raw); err != nil {
		return Document{}, fmt.Errorf("svg: parse document: %w", err)
	}
	if tree.Root() == nil {
		return Document{}, errors.New("svg: document has no root element")
	}
	return Document{source: src, tree: tree}, nil
}

// MustNewDocument panics if the document cannot be created. Useful for tests.
func MustNewDocument(src Source, raw []byte) Document {
	doc, err := NewDocument(src, raw)
	if err != nil {
		panic(err)
	}
	return doc
}

// Source returns the origin metadata for the document.
func (d Document) Source() Source {
	return d.source
}

// Location returns the string identifier for the origin.
func (d Document) Location() string {
	if d.source == nil {
		return ""
	}
	return d.source.Location()
}

// Root returns the document's root element. The returned element must not be
// mutated; use CopyRoot for that.
func (d Document) Root() *etree.Element {
	if d.tree == nil {
		return nil
	}
	return d.tree.Root()
}

// CopyRoot returns a deep, detached copy of the root element that callers may
// mutate freely.
func (d Document) CopyRoot() *etree.Element {
	root := d.Root()
	if root == nil {
		return nil
	}
	return root.Copy()
}

// Layer locates the element carrying the given id attribute anywhere in the
// tree. The second return reports whether it was found.
func (d Document) Layer(id string) (*etree.Element, bool) {
	root := d.Root()
	if root == nil || id == "" {
		return nil, false
	}

	var found *etree.Element
	Walk(root, func(el *etree.Element) {
		if found == nil && el.SelectAttrValue("id", "") == id {
			found = el
		}
	})
	return found, found != nil
}

// TemplateStructureError reports a template missing a required node, such as
// the working layer. It is fatal: generation aborts before any output exists.
type TemplateStructureError struct {
	Missing string
}

func (e *TemplateStructureError) Error() string {
	return fmt.Sprintf("svg: template is missing %s", e.Missing)
}
