package layout

import (
	errs "github.com/matzehuels/chartframe/pkg/errors"
)

// Defaults applied by [New] to unset [Config] fields.
const (
	DefaultWidth       = 960.0
	DefaultAspectRatio = 16.0 / 9.0
)

// Config is the construction-time configuration of a [Layout]. Zero fields
// are unset and receive defaults:
//
//   - Width: [DefaultWidth]
//   - AspectRatio: [DefaultAspectRatio], only used to derive Height
//   - Height: Width / AspectRatio
//   - Margins: 10% of height (top, bottom) and width (left, right)
//   - Labels: [DefaultLabels]; a missing ClassName becomes [DefaultClassName]
//
// Config values are copied; New never modifies caller-owned data.
type Config struct {
	AspectRatio float64
	Width       float64
	Height      float64
	Margins     MarginSpec
	Labels      *Labels

	// Strict turns invalid dimensions and margins into errors instead of
	// degenerate areas.
	Strict bool
}

// resolved is a Config after defaulting.
type resolved struct {
	aspectRatio   float64
	width, height float64
	margins       Margins
	labels        Labels
}

func (c Config) resolve() resolved {
	r := resolved{
		aspectRatio: c.AspectRatio,
		width:       c.Width,
		height:      c.Height,
	}
	if r.aspectRatio == 0 {
		r.aspectRatio = DefaultAspectRatio
	}
	if r.width == 0 {
		r.width = DefaultWidth
	}
	if r.height == 0 {
		r.height = r.width / r.aspectRatio
	}
	r.margins = ResolveMargins(c.Margins, r.height, r.width)
	r.labels = withLabelDefaults(c.Labels)
	return r
}

// Layout is the region model of one chart canvas.
//
// A Layout is not safe for concurrent mutation. Getters never mutate and
// always derive their result from the current dimensions and margins.
type Layout struct {
	height  float64
	width   float64
	margins Margins
	labels  Labels
	strict  bool
}

// New builds a layout from cfg. It only fails when cfg.Strict is set and the
// dimensions or margins are invalid.
func New(cfg Config) (*Layout, error) {
	r := cfg.resolve()
	if cfg.Strict {
		if cfg.AspectRatio != 0 {
			if err := errs.ValidateDimension("aspect ratio", cfg.AspectRatio); err != nil {
				return nil, err
			}
		}
		if err := validateDimensions(r.height, r.width); err != nil {
			return nil, err
		}
		if err := validateSpec(cfg.Margins); err != nil {
			return nil, err
		}
		if err := validateMargins(r.margins, r.height, r.width); err != nil {
			return nil, err
		}
	}
	return &Layout{
		height:  r.height,
		width:   r.width,
		margins: r.margins,
		labels:  r.labels,
		strict:  cfg.Strict,
	}, nil
}

// MustNew is like [New] but panics on error.
func MustNew(cfg Config) *Layout {
	l, err := New(cfg)
	if err != nil {
		panic(err)
	}
	return l
}

// Height returns the canvas height in pixels.
func (l *Layout) Height() float64 { return l.height }

// Width returns the canvas width in pixels.
func (l *Layout) Width() float64 { return l.width }

// Margins returns the resolved canvas margins.
func (l *Layout) Margins() Margins { return l.margins }

// Labels returns a copy of the configured labels.
func (l *Layout) Labels() Labels { return l.labels.clone() }

// Strict reports whether the layout validates its inputs.
func (l *Layout) Strict() bool { return l.strict }

// SetMargins replaces the canvas margins. Relative specs resolve against the
// canvas size; an unspecified spec restores the 10% default. Anything drawn
// from the previous margins is stale and must be redrawn in full.
func (l *Layout) SetMargins(spec MarginSpec) error {
	m := ResolveMargins(spec, l.height, l.width)
	if l.strict {
		if err := validateSpec(spec); err != nil {
			return err
		}
		if err := validateMargins(m, l.height, l.width); err != nil {
			return err
		}
	}
	l.margins = m
	return nil
}

// SetLabels merges u into the current labels. In strict mode a label left
// without an id is rejected.
func (l *Layout) SetLabels(u LabelsUpdate) error {
	next := l.labels.Merge(u)
	if l.strict {
		for _, s := range Slots() {
			if lbl, ok := next.Get(s); ok && lbl.ID == "" {
				return errs.New(errs.ErrCodeInvalidLabel, "%s label has no id", s)
			}
		}
	}
	l.labels = next
	return nil
}

// Area returns the current rectangle of region r. Unknown regions yield a
// zero Area.
func (l *Layout) Area(r Region) Area {
	m := l.margins
	switch r {
	case RegionPlot:
		return inset(l.height, l.width, 0, 0, m)
	case RegionHeader:
		return CalculateArea(m.Top, l.PlotArea().Width, m.Left, 0)
	case RegionFooter:
		return CalculateArea(m.Bottom, l.PlotArea().Width, m.Left, l.height-m.Bottom)
	case RegionLeftLabel:
		return CalculateArea(l.PlotArea().Height, m.Left, 0, m.Top)
	case RegionRightLabel:
		return CalculateArea(l.PlotArea().Height, m.Right, l.width-m.Right, m.Top)
	case RegionTopLeft:
		return CalculateArea(m.Top, m.Left, 0, 0)
	case RegionTopRight:
		return CalculateArea(m.Top, m.Right, l.width-m.Right, 0)
	case RegionBottomLeft:
		return CalculateArea(m.Bottom, m.Left, 0, l.height-m.Bottom)
	case RegionBottomRight:
		return CalculateArea(m.Bottom, m.Right, l.width-m.Right, l.height-m.Bottom)
	}
	return Area{}
}

// Areas returns every region's rectangle keyed by region.
func (l *Layout) Areas() map[Region]Area {
	out := make(map[Region]Area, len(regionNames))
	for _, r := range Regions() {
		out[r] = l.Area(r)
	}
	return out
}

// Canvas returns the full canvas rectangle.
func (l *Layout) Canvas() Area { return Area{Height: l.height, Width: l.width} }

// Region accessors, shorthand for [Layout.Area].

func (l *Layout) PlotArea() Area        { return l.Area(RegionPlot) }
func (l *Layout) HeaderArea() Area      { return l.Area(RegionHeader) }
func (l *Layout) FooterArea() Area      { return l.Area(RegionFooter) }
func (l *Layout) LeftLabelArea() Area   { return l.Area(RegionLeftLabel) }
func (l *Layout) RightLabelArea() Area  { return l.Area(RegionRightLabel) }
func (l *Layout) TopLeftArea() Area     { return l.Area(RegionTopLeft) }
func (l *Layout) TopRightArea() Area    { return l.Area(RegionTopRight) }
func (l *Layout) BottomLeftArea() Area  { return l.Area(RegionBottomLeft) }
func (l *Layout) BottomRightArea() Area { return l.Area(RegionBottomRight) }

func validateDimensions(height, width float64) error {
	if err := errs.ValidateDimension("width", width); err != nil {
		return err
	}
	return errs.ValidateDimension("height", height)
}

func validateSpec(spec MarginSpec) error {
	switch spec.kind {
	case marginPercent:
		return errs.ValidateFraction(spec.value, 100)
	case marginFraction:
		return errs.ValidateFraction(spec.value, 1)
	case marginInferred:
		if spec.value < 1 {
			return errs.ValidateFraction(spec.value, 1)
		}
		return errs.ValidateFraction(spec.value, 100)
	}
	return nil
}

func validateMargins(m Margins, height, width float64) error {
	return errs.ValidateMargins(m.Top, m.Right, m.Bottom, m.Left, height, width)
}
