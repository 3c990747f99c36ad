package errors

import "math"

// ValidateDimension checks that a canvas size is a positive, finite number.
// name is used in the message ("width", "height", "aspect ratio").
func ValidateDimension(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return New(ErrCodeInvalidDimension, "%s must be a finite number", name)
	}
	if v <= 0 {
		return New(ErrCodeInvalidDimension, "%s must be positive, got %g", name, v)
	}
	return nil
}

// ValidateFraction checks that a relative margin lies within [0, upper].
// upper is 1 for fractions and 100 for whole percent.
func ValidateFraction(v, upper float64) error {
	if math.IsNaN(v) || v < 0 || v > upper {
		return New(ErrCodeInvalidMargin, "margin %g outside [0, %g]", v, upper)
	}
	return nil
}

// ValidateMargins checks pixel margins against the rectangle they inset.
// Every margin must be non-negative and the margins must leave a positive
// inner area.
func ValidateMargins(top, right, bottom, left, height, width float64) error {
	for _, m := range []struct {
		name string
		v    float64
	}{{"top", top}, {"right", right}, {"bottom", bottom}, {"left", left}} {
		if math.IsNaN(m.v) || m.v < 0 {
			return New(ErrCodeInvalidMargin, "%s margin must be non-negative, got %g", m.name, m.v)
		}
	}
	if top+bottom >= height {
		return New(ErrCodeInvalidMargin, "top+bottom margins (%g) must be smaller than height (%g)", top+bottom, height)
	}
	if left+right >= width {
		return New(ErrCodeInvalidMargin, "left+right margins (%g) must be smaller than width (%g)", left+right, width)
	}
	return nil
}
