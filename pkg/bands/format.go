package bands

import (
	"math"
	"strconv"
)

// FormatValue renders a resistance for the sticker's value text: MΩ above a
// million, kΩ above a thousand, plain Ω otherwise, with at most one decimal
// place and no trailing ".0".
func FormatValue(ohms float64) string {
	switch {
	case ohms >= 1_000_000:
		return scaledValue(ohms/1_000_000, "MΩ")
	case ohms >= 1_000:
		return scaledValue(ohms/1_000, "kΩ")
	}
	return trimNumber(ohms) + " Ω"
}

// FormatTolerance renders a tolerance percentage as "±N", integer-formatted
// when the tolerance is whole.
func FormatTolerance(percent float64) string {
	return "±" + trimNumber(percent)
}

func scaledValue(v float64, unit string) string {
	if v == math.Trunc(v) {
		return strconv.FormatInt(int64(v), 10) + " " + unit
	}
	return strconv.FormatFloat(v, 'f', 1, 64) + " " + unit
}

func trimNumber(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
