package orchestrator

import (
	"fmt"

	"github.com/goliatone/go-resistags/pkg/bands"
	"github.com/goliatone/go-resistags/pkg/layout"
	"github.com/goliatone/go-resistags/pkg/sticker"
)

// Stock sheet geometry, in millimeters.
const (
	defaultColumns       = 5
	defaultStickerWidth  = 23.0
	defaultStickerHeight = 12.0
	defaultGutter        = 3.0
)

// Profile bundles the generation parameters that describe a print setup
// rather than a single request: palette, sticker size, sheet grid, and which
// template layer holds the labeled artwork.
type Profile struct {
	// Name identifies the profile in logs and errors.
	Name string

	// Palette maps band colors to fill hexes.
	Palette bands.Palette

	// Sticker is the physical size each instance is scaled to.
	Sticker sticker.Size

	// Grid positions instances on the sheet.
	Grid layout.Grid

	// WorkingLayerID is the template layer holding the labeled artwork.
	WorkingLayerID string
}

// Validate checks the profile can drive a generation run.
func (p Profile) Validate() error {
	if p.Sticker.Width <= 0 || p.Sticker.Height <= 0 {
		return fmt.Errorf("orchestrator: profile %q sticker size %gx%g is not positive", p.Name, p.Sticker.Width, p.Sticker.Height)
	}
	if p.WorkingLayerID == "" {
		return fmt.Errorf("orchestrator: profile %q has no working layer id", p.Name)
	}
	if err := p.Grid.Validate(); err != nil {
		return fmt.Errorf("orchestrator: profile %q: %w", p.Name, err)
	}
	return nil
}

// DefaultProfile matches the stock template: five columns of 23x12mm
// stickers with a 3mm cutting gutter and no sheet margins.
func DefaultProfile() Profile {
	return Profile{
		Name:    "default",
		Palette: bands.DefaultPalette(),
		Sticker: sticker.Size{Width: defaultStickerWidth, Height: defaultStickerHeight},
		Grid: layout.Grid{
			Columns:  defaultColumns,
			SpacingX: defaultStickerWidth + defaultGutter,
			SpacingY: defaultStickerHeight + defaultGutter,
		},
		WorkingLayerID: "layer1",
	}
}

// VividProfile is DefaultProfile with the saturated palette, for printers
// that wash out the muted stock colors.
func VividProfile() Profile {
	p := DefaultProfile()
	p.Name = "vivid"
	p.Palette = bands.VividPalette()
	return p
}
