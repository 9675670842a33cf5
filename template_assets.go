package resistags

import (
	_ "embed"

	pkgsvg "github.com/goliatone/go-resistags/pkg/svg"
)

//go:embed templates/tag_template.svg
var embeddedTemplate []byte

// EmbeddedTemplate returns the stock tag template committed under templates/,
// so callers can generate sheets without shipping an SVG next to the binary.
func EmbeddedTemplate() []byte {
	out := make([]byte, len(embeddedTemplate))
	copy(out, embeddedTemplate)
	return out
}

// EmbeddedTemplateSource wraps the stock template as a loader source.
func EmbeddedTemplateSource() pkgsvg.Source {
	return pkgsvg.SourceFromBytes("templates/tag_template.svg", EmbeddedTemplate())
}
