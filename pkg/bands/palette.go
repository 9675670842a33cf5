package bands

// Palette maps band colors to six-digit RGB fill values. Renderers receive a
// palette as immutable configuration; nothing in this package mutates one
// after construction.
type Palette map[Color]string

// Hex resolves a color's fill, falling back to black for anything outside the
// palette.
func (p Palette) Hex(c Color) string {
	if hex, ok := p[c]; ok {
		return hex
	}
	return "000000"
}

// Clone returns an independent copy so callers can derive variants without
// touching the source palette.
func (p Palette) Clone() Palette {
	out := make(Palette, len(p))
	for c, hex := range p {
		out[c] = hex
	}
	return out
}

// DefaultPalette is the muted print palette used by the stock sticker
// template. Each call returns a fresh copy.
func DefaultPalette() Palette {
	return Palette{
		Black:  "000000",
		Brown:  "784421",
		Red:    "ff0000",
		Orange: "ff6600",
		Yellow: "ffff00",
		Green:  "00c400",
		Blue:   "0055d4",
		Violet: "8f37c8",
		Grey:   "828282",
		White:  "dbdbdb",
		Gold:   "decd87",
		Silver: "c0c0c0",
	}
}

// VividPalette is the saturated-screen variant carried over from the second
// generator lineage. Same vocabulary, brighter fills.
func VividPalette() Palette {
	return Palette{
		Black:  "000000",
		Brown:  "8b4513",
		Red:    "ff0000",
		Orange: "ff8c00",
		Yellow: "ffff00",
		Green:  "00ff00",
		Blue:   "0000ff",
		Violet: "9400d3",
		Grey:   "9e9e9e",
		White:  "ffffff",
		Gold:   "ffd700",
		Silver: "c0c0c0",
	}
}
