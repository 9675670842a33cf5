// Package orchestrator coordinates the full pipeline: load the template,
// derive its anchors, encode each value, build the sticker instances, and hand
// the assembled sheet to a renderer.
package orchestrator

import (
	"context"
	"errors"
	"fmt"

	internalLoader "github.com/goliatone/go-resistags/internal/svg/loader"
	internalMetrics "github.com/goliatone/go-resistags/internal/svg/metrics"
	"github.com/goliatone/go-resistags/pkg/bands"
	"github.com/goliatone/go-resistags/pkg/render"
	"github.com/goliatone/go-resistags/pkg/renderers/report"
	"github.com/goliatone/go-resistags/pkg/renderers/svgsheet"
	"github.com/goliatone/go-resistags/pkg/sticker"
	pkgsvg "github.com/goliatone/go-resistags/pkg/svg"
)

const defaultRendererName = "svgsheet"

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithLoader injects a custom template loader.
func WithLoader(loader pkgsvg.Loader) Option {
	return func(o *Orchestrator) {
		o.loader = loader
	}
}

// WithMetricsExtractor injects a custom anchor extractor.
func WithMetricsExtractor(metrics pkgsvg.MetricsExtractor) Option {
	return func(o *Orchestrator) {
		o.metrics = metrics
	}
}

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// WithProfile overrides the generation profile.
func WithProfile(profile Profile) Option {
	return func(o *Orchestrator) {
		o.profile = profile
		o.profileSpecified = true
	}
}

// Orchestrator coordinates the pipeline from template to rendered sheet. It
// applies sensible defaults (stock profile, built-in renderers) while
// remaining open to dependency injection for advanced callers.
type Orchestrator struct {
	loader           pkgsvg.Loader
	metrics          pkgsvg.MetricsExtractor
	registry         *render.Registry
	defaultRenderer  string
	profile          Profile
	profileSpecified bool
	initialiseErr    error
	defaultsApplied  bool
}

// New constructs an Orchestrator applying any provided options. Missing
// dependencies are initialised with the built-in implementations so callers
// can start with a single constructor call.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultRenderer: defaultRendererName,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes one sheet to generate.
type Request struct {
	// Source identifies where the template lives. Optional when Document is
	// supplied.
	Source pkgsvg.Source

	// Document allows callers to bypass the loader when they already hold a
	// parsed template.
	Document *pkgsvg.Document

	// Values are resistances in ohms, in sticker order.
	Values []float64

	// TolerancePercent applies to every value; it also fixes the band count.
	TolerancePercent float64

	// Title names the sheet for human-facing output.
	Title string

	// Columns overrides the profile's column count when positive.
	Columns int

	// Renderer names the renderer to use. If empty, the orchestrator falls
	// back to the configured default renderer.
	Renderer string

	// RenderOptions carries per-request instructions renderers can surface.
	RenderOptions render.RenderOptions
}

// Generate runs the full pipeline and returns the rendered bytes. Any
// encoding or template failure aborts before a single byte of output exists;
// there are no partially generated sheets.
func (o *Orchestrator) Generate(ctx context.Context, req Request) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := o.initialiseErr; err != nil {
		return nil, err
	}
	if !o.defaultsApplied {
		o.applyDefaults()
		if err := o.initialiseErr; err != nil {
			return nil, err
		}
	}

	sheet, err := o.BuildSheet(ctx, req)
	if err != nil {
		return nil, err
	}

	renderer, err := o.rendererFor(req.Renderer)
	if err != nil {
		return nil, err
	}

	output, err := renderer.Render(ctx, sheet, req.RenderOptions)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: render output: %w", err)
	}
	return output, nil
}

// BuildSheet executes everything up to rendering: template resolution, anchor
// extraction, encoding, and instance building. Callers that drive multiple
// renderers off one sheet use this directly.
func (o *Orchestrator) BuildSheet(ctx context.Context, req Request) (render.Sheet, error) {
	if len(req.Values) == 0 {
		return render.Sheet{}, errors.New("orchestrator: at least one value is required")
	}

	profile := o.profile
	if err := profile.Validate(); err != nil {
		return render.Sheet{}, err
	}

	grid := profile.Grid
	if req.Columns > 0 {
		grid.Columns = req.Columns
	}

	doc, err := o.resolveDocument(ctx, req)
	if err != nil {
		return render.Sheet{}, err
	}

	layer, ok := doc.Layer(profile.WorkingLayerID)
	if !ok {
		return render.Sheet{}, &pkgsvg.TemplateStructureError{Missing: fmt.Sprintf("working layer %q", profile.WorkingLayerID)}
	}

	extracted, err := o.metrics.Extract(ctx, layer)
	if err != nil {
		return render.Sheet{}, fmt.Errorf("orchestrator: extract template metrics: %w", err)
	}
	anchors := extracted.OrDefaults()

	builder, err := sticker.NewBuilder(layer.ChildElements(), anchors, profile.Palette, profile.Sticker)
	if err != nil {
		return render.Sheet{}, fmt.Errorf("orchestrator: configure builder: %w", err)
	}

	instances := make([]sticker.Instance, 0, len(req.Values))
	for index, ohms := range req.Values {
		spec, err := bands.NewSpec(ohms, req.TolerancePercent)
		if err != nil {
			return render.Sheet{}, err
		}
		colors, err := spec.Colors()
		if err != nil {
			return render.Sheet{}, err
		}
		inst, err := builder.Build(sticker.Params{
			Index:    index,
			Spec:     spec,
			Colors:   colors,
			Position: grid.Position(index),
		})
		if err != nil {
			return render.Sheet{}, fmt.Errorf("orchestrator: build sticker %d (%g ohm): %w", index, ohms, err)
		}
		instances = append(instances, inst)
	}

	return render.Sheet{
		Template:         doc,
		WorkingLayerID:   profile.WorkingLayerID,
		Anchors:          anchors,
		Grid:             grid,
		TolerancePercent: req.TolerancePercent,
		Palette:          profile.Palette,
		Instances:        instances,
		Title:            req.Title,
	}, nil
}

func (o *Orchestrator) resolveDocument(ctx context.Context, req Request) (pkgsvg.Document, error) {
	if req.Document != nil {
		return *req.Document, nil
	}
	if req.Source == nil {
		return pkgsvg.Document{}, errors.New("orchestrator: source or document is required")
	}
	doc, err := o.loader.Load(ctx, req.Source)
	if err != nil {
		return pkgsvg.Document{}, fmt.Errorf("orchestrator: load template: %w", err)
	}
	return doc, nil
}

func (o *Orchestrator) rendererFor(name string) (render.Renderer, error) {
	if o.registry == nil {
		return nil, errors.New("orchestrator: renderer registry is nil")
	}

	target := name
	if target == "" {
		target = o.defaultRenderer
	}

	if target != "" {
		renderer, err := o.registry.Get(target)
		if err == nil {
			return renderer, nil
		}
		if name != "" {
			return nil, fmt.Errorf("orchestrator: renderer %q: %w", name, err)
		}
	}

	names := o.registry.List()
	if len(names) == 0 {
		return nil, errors.New("orchestrator: no renderers registered")
	}

	renderer, err := o.registry.Get(names[0])
	if err != nil {
		return nil, fmt.Errorf("orchestrator: renderer %q: %w", names[0], err)
	}
	return renderer, nil
}

func (o *Orchestrator) applyDefaults() {
	if o.defaultsApplied {
		return
	}

	if o.loader == nil {
		o.loader = internalLoader.New(pkgsvg.NewLoaderOptions())
	}
	if o.metrics == nil {
		o.metrics = internalMetrics.New()
	}
	if !o.profileSpecified && o.profile.Name == "" {
		o.profile = DefaultProfile()
	}
	if o.registry == nil {
		o.registry = render.NewRegistry()
		sheetRenderer, err := svgsheet.New()
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: default renderer: %w", err)
		} else {
			o.registry.MustRegister(sheetRenderer)
			o.registry.MustRegister(report.New())
		}
	}
	if o.defaultRenderer == "" {
		o.defaultRenderer = defaultRendererName
	}

	o.defaultsApplied = true
}
