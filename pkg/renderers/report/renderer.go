// Package report renders an HTML index of a sheet: one row per sticker with
// its formatted value and band swatches, for checking a print run against the
// drawer labels it came from.
package report

import (
	"context"
	"fmt"
	"sync"

	"github.com/flosch/pongo2/v6"
	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-resistags/pkg/render"
)

const rendererName = "report"

const indexTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{ title }}</title>
<style>
body { font-family: sans-serif; margin: 2rem; color: #222; }
table { border-collapse: collapse; }
th, td { border: 1px solid #ccc; padding: 0.35rem 0.75rem; text-align: left; }
.swatch { display: inline-block; width: 1rem; height: 1rem; margin-right: 2px; border: 1px solid #888; vertical-align: middle; }
.notes { background: #f6f6e8; padding: 0.75rem; margin: 1rem 0; }
</style>
</head>
<body>
<h1>{{ title }}</h1>
<p>{{ count }} sticker{{ count|pluralize }} at {{ tolerance }} tolerance.</p>
{% if notes %}<div class="notes">{{ notes|safe }}</div>{% endif %}
<table>
<thead><tr><th>#</th><th>Value</th><th>Bands</th></tr></thead>
<tbody>
{% for row in rows %}<tr>
<td>{{ row.Number }}</td>
<td>{{ row.Value }} {{ row.Tolerance }}</td>
<td>{% for swatch in row.Swatches %}<span class="swatch" style="background:#{{ swatch.Hex }}" title="{{ swatch.Name }}"></span>{% endfor %}</td>
</tr>
{% endfor %}</tbody>
</table>
</body>
</html>
`

var (
	templateOnce sync.Once
	template     *pongo2.Template
	templateErr  error

	policyOnce sync.Once
	policy     *bluemonday.Policy
)

func compiledTemplate() (*pongo2.Template, error) {
	templateOnce.Do(func() {
		template, templateErr = pongo2.FromString(indexTemplate)
	})
	return template, templateErr
}

func notesPolicy() *bluemonday.Policy {
	policyOnce.Do(func() {
		policy = bluemonday.UGCPolicy()
	})
	return policy
}

type swatch struct {
	Name string
	Hex  string
}

type row struct {
	Number    int
	Value     string
	Tolerance string
	Swatches  []swatch
}

// Renderer produces the HTML index. Stateless; one instance serves
// concurrent callers.
type Renderer struct{}

var _ render.Renderer = (*Renderer)(nil)

// New constructs a report renderer.
func New() *Renderer {
	return &Renderer{}
}

// Name identifies the renderer inside a registry.
func (r *Renderer) Name() string {
	return rendererName
}

// Render produces the index document. Notes pass through an HTML sanitizer
// before reaching the template, so caller-supplied markup cannot script the
// page.
func (r *Renderer) Render(ctx context.Context, sheet render.Sheet, opts render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	tpl, err := compiledTemplate()
	if err != nil {
		return nil, fmt.Errorf("report: compile template: %w", err)
	}

	rows := make([]row, 0, len(sheet.Instances))
	for _, inst := range sheet.Instances {
		swatches := make([]swatch, 0, len(inst.Colors))
		for _, color := range inst.Colors {
			swatches = append(swatches, swatch{
				Name: string(color),
				Hex:  sheet.Palette.Hex(color),
			})
		}
		rows = append(rows, row{
			Number:    inst.Index + 1,
			Value:     inst.ValueText,
			Tolerance: inst.ToleranceText,
			Swatches:  swatches,
		})
	}

	title := sheet.Title
	if title == "" {
		title = "Resistor stickers"
	}

	notes := ""
	if opts.Notes != "" {
		notes = notesPolicy().Sanitize(opts.Notes)
	}

	out, err := tpl.ExecuteBytes(pongo2.Context{
		"title":     title,
		"count":     len(sheet.Instances),
		"tolerance": fmt.Sprintf("±%g%%", sheet.TolerancePercent),
		"notes":     notes,
		"rows":      rows,
	})
	if err != nil {
		return nil, fmt.Errorf("report: execute template: %w", err)
	}
	return out, nil
}
