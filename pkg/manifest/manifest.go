// Package manifest loads sheet definitions from YAML: named groups of
// resistance values plus the output file each group renders to. A stock
// manifest covering common drawer assortments is embedded.
package manifest

import (
	_ "embed"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed default_sheets.yaml
var defaultSheets []byte

// Sheet is one named batch of values rendered into a single output file.
type Sheet struct {
	// Name identifies the sheet for selection on the command line.
	Name string `yaml:"name"`

	// Output is the file the rendered sheet is written to.
	Output string `yaml:"output"`

	// TolerancePercent applies to every value on the sheet.
	TolerancePercent float64 `yaml:"tolerance_percent"`

	// Values are resistances in ohms, in sticker order.
	Values []float64 `yaml:"values"`

	// Columns overrides the layout column count when positive.
	Columns int `yaml:"columns,omitempty"`

	// Notes is free text surfaced on the index report.
	Notes string `yaml:"notes,omitempty"`
}

// Manifest is a collection of sheets.
type Manifest struct {
	Sheets []Sheet `yaml:"sheets"`
}

// Parse decodes and validates a YAML manifest payload.
func Parse(raw []byte) (Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return Manifest{}, fmt.Errorf("manifest: parse yaml: %w", err)
	}
	if err := m.Validate(); err != nil {
		return Manifest{}, err
	}
	return m, nil
}

// Load reads and parses a manifest file from disk.
func Load(path string) (Manifest, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, fmt.Errorf("manifest: read %s: %w", path, err)
	}
	return Parse(raw)
}

// LoadFS reads and parses a manifest from an fs.FS.
func LoadFS(fsys fs.FS, path string) (Manifest, error) {
	raw, err := fs.ReadFile(fsys, path)
	if err != nil {
		return Manifest{}, fmt.Errorf("manifest: read %s: %w", path, err)
	}
	return Parse(raw)
}

// Default returns the embedded stock manifest.
func Default() Manifest {
	m, err := Parse(defaultSheets)
	if err != nil {
		// The embedded manifest ships with the binary; failing to parse it is
		// a build defect, not a runtime condition.
		panic(err)
	}
	return m
}

// Validate checks structural requirements: unique non-empty names, at least
// one value per sheet, and a positive tolerance.
func (m Manifest) Validate() error {
	if len(m.Sheets) == 0 {
		return fmt.Errorf("manifest: no sheets defined")
	}

	seen := make(map[string]struct{}, len(m.Sheets))
	for i, sheet := range m.Sheets {
		if sheet.Name == "" {
			return fmt.Errorf("manifest: sheet %d has no name", i)
		}
		if _, dup := seen[sheet.Name]; dup {
			return fmt.Errorf("manifest: duplicate sheet name %q", sheet.Name)
		}
		seen[sheet.Name] = struct{}{}

		if sheet.Output == "" {
			return fmt.Errorf("manifest: sheet %q has no output file", sheet.Name)
		}
		if len(sheet.Values) == 0 {
			return fmt.Errorf("manifest: sheet %q has no values", sheet.Name)
		}
		if sheet.TolerancePercent <= 0 {
			return fmt.Errorf("manifest: sheet %q has tolerance %g, want > 0", sheet.Name, sheet.TolerancePercent)
		}
		if sheet.Columns < 0 {
			return fmt.Errorf("manifest: sheet %q has negative column count", sheet.Name)
		}
	}
	return nil
}

// Sheet returns the named sheet. The second return reports whether it exists.
func (m Manifest) Sheet(name string) (Sheet, bool) {
	for _, sheet := range m.Sheets {
		if sheet.Name == name {
			return sheet, true
		}
	}
	return Sheet{}, false
}

// Names lists the sheet names in declaration order.
func (m Manifest) Names() []string {
	names := make([]string, 0, len(m.Sheets))
	for _, sheet := range m.Sheets {
		names = append(names, sheet.Name)
	}
	return names
}
