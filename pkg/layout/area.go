package layout

import "math"

// Area is a pixel rectangle anchored at (X, Y) in canvas coordinates.
type Area struct {
	Height float64 `json:"height"`
	Width  float64 `json:"width"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
}

// IsFinite reports whether every field is a finite number.
func (a Area) IsFinite() bool { return finite(a.Height, a.Width, a.X, a.Y) }

// Right returns the X coordinate of the right edge.
func (a Area) Right() float64 { return a.X + a.Width }

// Bottom returns the Y coordinate of the bottom edge.
func (a Area) Bottom() float64 { return a.Y + a.Height }

// Size returns the surface of the area. Degenerate areas report zero.
func (a Area) Size() float64 {
	if a.Width <= 0 || a.Height <= 0 {
		return 0
	}
	return a.Width * a.Height
}

// Overlap returns the surface shared by a and b.
func (a Area) Overlap(b Area) float64 {
	w := min(a.Right(), b.Right()) - max(a.X, b.X)
	h := min(a.Bottom(), b.Bottom()) - max(a.Y, b.Y)
	if w <= 0 || h <= 0 {
		return 0
	}
	return w * h
}

// CalculateArea insets the rectangle of size height x width anchored at
// (startX, startY). Without a margins argument, or with an unspecified one,
// the rectangle is returned unchanged. Relative specs resolve against height
// and width, not against the canvas. Only the first spec is used.
func CalculateArea(height, width, startX, startY float64, margins ...MarginSpec) Area {
	var m Margins
	if len(margins) > 0 && !margins[0].IsZero() {
		m = ResolveMargins(margins[0], height, width)
	}
	return inset(height, width, startX, startY, m)
}

func inset(height, width, startX, startY float64, m Margins) Area {
	return Area{
		Height: height - m.Vertical(),
		Width:  width - m.Horizontal(),
		X:      startX + m.Left,
		Y:      startY + m.Top,
	}
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
