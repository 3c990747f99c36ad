package layout

import "math"

// DefaultMarginFraction is the share of the canvas used for each margin when
// none is given.
const DefaultMarginFraction = 0.1

// Margins are pixel insets applied to the edges of a rectangle.
type Margins struct {
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
	Left   float64 `json:"left"`
}

// IsFinite reports whether every side is a finite number.
func (m Margins) IsFinite() bool { return finite(m.Top, m.Right, m.Bottom, m.Left) }

// Horizontal returns the combined left and right inset.
func (m Margins) Horizontal() float64 { return m.Left + m.Right }

// Vertical returns the combined top and bottom inset.
func (m Margins) Vertical() float64 { return m.Top + m.Bottom }

type marginKind uint8

const (
	marginUnset marginKind = iota
	marginPercent
	marginFraction
	marginInferred
	marginExplicit
)

// MarginSpec describes margins either relative to the rectangle they inset
// or as absolute pixels. The zero value means "not specified".
type MarginSpec struct {
	kind    marginKind
	value   float64
	margins Margins
}

// Percent describes uniform margins as whole percent (10 means 10%).
func Percent(p float64) MarginSpec { return MarginSpec{kind: marginPercent, value: p} }

// Fraction describes uniform margins as a fraction (0.1 means 10%).
func Fraction(f float64) MarginSpec { return MarginSpec{kind: marginFraction, value: f} }

// Inferred describes uniform margins whose unit is guessed from magnitude:
// values below 1 are fractions, values of 1 and above are whole percent.
// Note that 0.5 therefore means 50%, never half a percent.
func Inferred(v float64) MarginSpec { return MarginSpec{kind: marginInferred, value: v} }

// Explicit describes absolute pixel margins. They are used unchanged.
func Explicit(m Margins) MarginSpec { return MarginSpec{kind: marginExplicit, margins: m} }

// IsZero reports whether the margins were left unspecified.
func (s MarginSpec) IsZero() bool { return s.kind == marginUnset }

// IsExplicit reports whether s carries absolute pixel margins.
func (s MarginSpec) IsExplicit() bool { return s.kind == marginExplicit }

// Fraction returns the relative margin as a fraction in [0,1] terms along
// with true, or false for explicit and unspecified margins.
func (s MarginSpec) Fraction() (float64, bool) {
	switch s.kind {
	case marginPercent:
		return s.value / 100, true
	case marginFraction:
		return s.value, true
	case marginInferred:
		if s.value < 1 {
			return s.value, true
		}
		return s.value / 100, true
	}
	return 0, false
}

// ResolveMargins turns spec into pixel margins for a rectangle of the given
// size. Relative specs apply height*fraction to top and bottom and
// width*fraction to left and right. An unspecified spec resolves to
// [DefaultMarginFraction] of each axis.
//
// Explicit margins are returned as-is; keeping them non-negative is the
// caller's job.
func ResolveMargins(spec MarginSpec, height, width float64) Margins {
	switch {
	case spec.IsZero():
		return uniform(DefaultMarginFraction, height, width)
	case spec.IsExplicit():
		return spec.margins
	}
	f, _ := spec.Fraction()
	return uniform(f, height, width)
}

func uniform(fraction, height, width float64) Margins {
	// A zero or NaN fraction yields exact zeros even for NaN or infinite sizes.
	if fraction == 0 || math.IsNaN(fraction) {
		return Margins{}
	}
	x, y := width*fraction, height*fraction
	return Margins{Top: y, Right: x, Bottom: y, Left: x}
}
