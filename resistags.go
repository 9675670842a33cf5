// Package resistags generates printable SVG sticker sheets for resistor
// storage drawers: one sticker per resistance value, showing the color bands
// and the formatted value, laid out on a fixed grid for cutting.
package resistags

import (
	"context"

	internalLoader "github.com/goliatone/go-resistags/internal/svg/loader"
	"github.com/goliatone/go-resistags/pkg/manifest"
	"github.com/goliatone/go-resistags/pkg/orchestrator"
	"github.com/goliatone/go-resistags/pkg/render"
	pkgsvg "github.com/goliatone/go-resistags/pkg/svg"
)

// Profile bundles palette, sticker size, grid, and working layer; alias
// exported via the root package for convenience.
type Profile = orchestrator.Profile

// Request describes one sheet to generate.
type Request = orchestrator.Request

// RenderOptions carries per-request instructions renderers can surface.
type RenderOptions = render.RenderOptions

// Manifest is a YAML collection of named sheets.
type Manifest = manifest.Manifest

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module so quick-start callers need a single import.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// NewLoader constructs a template loader using the internal implementation
// while keeping the concrete type hidden from consumers.
func NewLoader(options ...pkgsvg.LoaderOption) pkgsvg.Loader {
	cfg := pkgsvg.NewLoaderOptions(options...)
	return internalLoader.New(cfg)
}

// GenerateSVG loads the template source, encodes the values at the given
// tolerance, and renders the sticker sheet with the default renderer. It is
// the simplest entry point for callers that just want output bytes.
func GenerateSVG(ctx context.Context, source pkgsvg.Source, values []float64, tolerancePercent float64, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Source:           source,
		Values:           values,
		TolerancePercent: tolerancePercent,
	})
}

// GenerateSVGFromDocument renders a sheet from a pre-loaded template,
// bypassing the loader stage while still delegating to the orchestrator.
func GenerateSVGFromDocument(ctx context.Context, doc pkgsvg.Document, values []float64, tolerancePercent float64, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Document:         &doc,
		Values:           values,
		TolerancePercent: tolerancePercent,
	})
}

// WithProfile re-exports the profile option for root-package callers.
func WithProfile(profile Profile) orchestrator.Option {
	return orchestrator.WithProfile(profile)
}

// DefaultManifest returns the embedded stock sheet definitions.
func DefaultManifest() Manifest {
	return manifest.Default()
}
