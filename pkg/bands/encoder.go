// Package bands encodes resistance values into ordered resistor color band
// sequences. Values of 10 Ω and above follow the standard decade table; the
// sub-10 Ω path uses a centiunit extension (value x100, silver or grey
// multiplier) that goes beyond the published color-code standard.
package bands

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// centiunit rounding must reconstruct the input exactly; anything finer than
// 0.01 Ω cannot be encoded.
const centiunitEpsilon = 1e-9

// Encode turns a resistance into an ordered color sequence: bandCount-2
// significant digits, one multiplier, one tolerance. It is pure and
// deterministic; identical inputs always yield identical sequences.
func Encode(ohms, tolerancePercent float64, bandCount int) ([]Color, error) {
	if bandCount != 4 && bandCount != 5 {
		return nil, fmt.Errorf("bands: band count must be 4 or 5, got %d", bandCount)
	}
	tolColor, ok := toleranceColors[tolerancePercent]
	if !ok {
		return nil, &UnsupportedToleranceError{Percent: tolerancePercent}
	}
	if ohms <= 0 || math.IsNaN(ohms) || math.IsInf(ohms, 0) {
		return nil, &UnrepresentableValueError{Ohms: ohms, Bands: bandCount, Reason: "value must be a positive finite number"}
	}

	if ohms < 10 {
		return encodeCentiunits(ohms, bandCount, tolColor)
	}
	return encodeDecades(ohms, bandCount, tolColor)
}

// encodeDecades handles the standard path: whole-ohm values decomposed into
// significant digits and a power-of-ten multiplier that reconstruct the value
// exactly.
func encodeDecades(ohms float64, bandCount int, tolColor Color) ([]Color, error) {
	digits := bandCount - 2

	whole := math.Round(ohms)
	if math.Abs(whole-ohms) > centiunitEpsilon {
		return nil, &UnrepresentableValueError{Ohms: ohms, Bands: bandCount, Reason: "values of 10 Ω and above must be whole ohms"}
	}

	text := strconv.FormatInt(int64(whole), 10)
	exp := len(text) - digits
	switch {
	case exp > 0:
		if strings.Trim(text[digits:], "0") != "" {
			return nil, &UnrepresentableValueError{
				Ohms:   ohms,
				Bands:  bandCount,
				Reason: fmt.Sprintf("needs more than %d significant digits", digits),
			}
		}
		text = text[:digits]
	case exp < 0:
		text += strings.Repeat("0", -exp)
	}

	mult, ok := multiplierColor(exp)
	if !ok {
		return nil, &UnrepresentableValueError{Ohms: ohms, Bands: bandCount, Reason: "multiplier exponent out of range"}
	}

	return assemble(text, mult, tolColor), nil
}

// encodeCentiunits handles the sub-10 Ω extension: the value is scaled by 100
// and rounded, its leading digits become the significant bands, and the
// multiplier is silver for sub-unit or whole values, grey for values with a
// fractional part (such as 1.5). This convention is preserved as implemented
// in the original generator, not taken from a published standard.
func encodeCentiunits(ohms float64, bandCount int, tolColor Color) ([]Color, error) {
	digits := bandCount - 2

	centi := math.Round(ohms * 100)
	if centi < 1 || math.Abs(centi/100-ohms) > centiunitEpsilon {
		return nil, &UnrepresentableValueError{Ohms: ohms, Bands: bandCount, Reason: "finer than 0.01 Ω resolution"}
	}

	text := strconv.FormatInt(int64(centi), 10)
	if len(text) > digits {
		return nil, &UnrepresentableValueError{
			Ohms:   ohms,
			Bands:  bandCount,
			Reason: fmt.Sprintf("centiunit value %s needs more than %d significant digits", text, digits),
		}
	}
	text = strings.Repeat("0", digits-len(text)) + text

	mult := Silver
	if ohms >= 1 && ohms != math.Trunc(ohms) {
		mult = Grey
	}

	return assemble(text, mult, tolColor), nil
}

func assemble(digitText string, mult, tol Color) []Color {
	out := make([]Color, 0, len(digitText)+2)
	for _, r := range digitText {
		out = append(out, digitColors[r-'0'])
	}
	return append(out, mult, tol)
}

// Decode reverses a standard-path sequence back into ohms and tolerance. It
// exists to verify the decade encoding round-trips; it applies the standard
// multiplier table, so sequences produced by the sub-10 Ω extension (where
// silver and grey carry a different meaning) do not decode to their source
// value.
func Decode(colors []Color) (ohms, tolerancePercent float64, err error) {
	if len(colors) != 4 && len(colors) != 5 {
		return 0, 0, fmt.Errorf("bands: expected 4 or 5 colors, got %d", len(colors))
	}

	tol := colors[len(colors)-1]
	found := false
	for percent, c := range toleranceColors {
		if c == tol {
			tolerancePercent = percent
			found = true
			break
		}
	}
	if !found {
		return 0, 0, fmt.Errorf("bands: %s is not a tolerance color", tol)
	}

	value := 0
	for _, c := range colors[:len(colors)-2] {
		d, ok := digitOf(c)
		if !ok {
			return 0, 0, fmt.Errorf("bands: %s is not a digit color", c)
		}
		value = value*10 + d
	}

	exp, ok := exponentOf(colors[len(colors)-2])
	if !ok {
		return 0, 0, fmt.Errorf("bands: %s is not a multiplier color", colors[len(colors)-2])
	}

	ohms = float64(value) * math.Pow(10, float64(exp))
	// Round away float noise from negative exponents.
	ohms = math.Round(ohms*100) / 100
	return ohms, tolerancePercent, nil
}
