package bands

// Spec pairs a resistance with its tolerance and the derived band count.
// Instances are immutable once constructed.
type Spec struct {
	ohms      float64
	tolerance float64
	bands     int
}

// NewSpec validates the value and tolerance and derives the band count.
func NewSpec(ohms, tolerancePercent float64) (Spec, error) {
	if _, ok := toleranceColors[tolerancePercent]; !ok {
		return Spec{}, &UnsupportedToleranceError{Percent: tolerancePercent}
	}
	if ohms <= 0 {
		return Spec{}, &UnrepresentableValueError{Ohms: ohms, Bands: BandCount(tolerancePercent), Reason: "value must be positive"}
	}
	return Spec{
		ohms:      ohms,
		tolerance: tolerancePercent,
		bands:     BandCount(tolerancePercent),
	}, nil
}

// MustNewSpec panics when construction fails, assisting fixtures/tests.
func MustNewSpec(ohms, tolerancePercent float64) Spec {
	spec, err := NewSpec(ohms, tolerancePercent)
	if err != nil {
		panic(err)
	}
	return spec
}

// Ohms returns the resistance value.
func (s Spec) Ohms() float64 {
	return s.ohms
}

// TolerancePercent returns the tolerance percentage.
func (s Spec) TolerancePercent() float64 {
	return s.tolerance
}

// Bands returns the derived band count (5 for 1% parts, 4 otherwise).
func (s Spec) Bands() int {
	return s.bands
}

// Colors encodes the spec into its ordered band sequence.
func (s Spec) Colors() ([]Color, error) {
	return Encode(s.ohms, s.tolerance, s.bands)
}
