package bands

import "fmt"

// UnsupportedToleranceError reports a tolerance outside the recognized
// {1, 5, 10} percent set. Callers must not substitute a guessed color.
type UnsupportedToleranceError struct {
	Percent float64
}

func (e *UnsupportedToleranceError) Error() string {
	return fmt.Sprintf("bands: unsupported tolerance %v%%", e.Percent)
}

// UnrepresentableValueError reports a resistance whose significant digits do
// not fit the chosen band count. It is raised instead of silently truncating.
type UnrepresentableValueError struct {
	Ohms   float64
	Bands  int
	Reason string
}

func (e *UnrepresentableValueError) Error() string {
	return fmt.Sprintf("bands: %v Ω not representable with %d bands: %s", e.Ohms, e.Bands, e.Reason)
}
