package bands

// Color is one entry of the closed band color vocabulary. The ten digit
// colors double as multiplier colors for exponents 0-9; gold and silver are
// multiplier (x0.1, x0.01) and tolerance colors only.
type Color string

const (
	Black  Color = "black"
	Brown  Color = "brown"
	Red    Color = "red"
	Orange Color = "orange"
	Yellow Color = "yellow"
	Green  Color = "green"
	Blue   Color = "blue"
	Violet Color = "violet"
	Grey   Color = "grey"
	White  Color = "white"
	Gold   Color = "gold"
	Silver Color = "silver"
)

// digitColors maps a significant digit to its band color.
var digitColors = [10]Color{Black, Brown, Red, Orange, Yellow, Green, Blue, Violet, Grey, White}

// toleranceColors is the recognized tolerance set. Anything else is rejected
// with UnsupportedToleranceError rather than defaulted.
var toleranceColors = map[float64]Color{
	1:  Brown,
	5:  Gold,
	10: Silver,
}

// multiplierColor returns the band color for a power-of-ten exponent.
// Exponents below -2 or above 9 have no color.
func multiplierColor(exp int) (Color, bool) {
	switch {
	case exp == -1:
		return Gold, true
	case exp == -2:
		return Silver, true
	case exp >= 0 && exp <= 9:
		return digitColors[exp], true
	}
	return "", false
}

// digitOf is the inverse of digitColors.
func digitOf(c Color) (int, bool) {
	for i, dc := range digitColors {
		if dc == c {
			return i, true
		}
	}
	return 0, false
}

// exponentOf is the inverse of multiplierColor.
func exponentOf(c Color) (int, bool) {
	switch c {
	case Gold:
		return -1, true
	case Silver:
		return -2, true
	}
	if d, ok := digitOf(c); ok {
		return d, true
	}
	return 0, false
}

// ToleranceColor resolves a tolerance percentage to its band color.
func ToleranceColor(percent float64) (Color, bool) {
	c, ok := toleranceColors[percent]
	return c, ok
}

// BandCount derives the band count from the tolerance: five bands for 1%
// parts, four otherwise. The count is never independently settable.
func BandCount(tolerancePercent float64) int {
	if tolerancePercent == 1 {
		return 5
	}
	return 4
}
