package render

import "github.com/matzehuels/chartframe/pkg/layout"

// Defaults for [Options].
const (
	DefaultContainer = "#root"
	DefaultSVGClass  = "D3ChartLayout"
)

// Sink receives the drawing operations for one chart.
//
// Groups are keyed by region; a sink must keep at most one text element per
// region and label slot, replacing the previous one when a slot is drawn
// again.
type Sink interface {
	// CreateCanvas creates the root element inside container. width and
	// height set a scale-preserving viewport.
	CreateCanvas(container, className string, width, height float64)
	// AppendGroup creates the group for region, translated to area's origin.
	AppendGroup(region layout.Region, area layout.Area)
	// DrawLabel draws or replaces the text of slot inside region's group.
	// Text is centered on the placement and rotated about it when
	// placement.Rotation is non-zero.
	DrawLabel(region layout.Region, slot layout.LabelSlot, placement layout.Placement, label layout.Label, className string)
}

// Options configures [Draw].
type Options struct {
	// Container is the selector of the element hosting the canvas.
	Container string
	// SVGClass is the CSS class of the root canvas.
	SVGClass string
}

func (o Options) withDefaults() Options {
	if o.Container == "" {
		o.Container = DefaultContainer
	}
	if o.SVGClass == "" {
		o.SVGClass = DefaultSVGClass
	}
	return o
}

// Draw renders l into s: canvas, one group per region, then labels.
func Draw(l *layout.Layout, s Sink, opts Options) {
	opts = opts.withDefaults()
	s.CreateCanvas(opts.Container, opts.SVGClass, l.Width(), l.Height())
	for _, r := range layout.Regions() {
		s.AppendGroup(r, l.Area(r))
	}
	DrawLabels(l, s)
}

// DrawLabels draws every label of l that has text. Labels with empty text
// produce no sink call.
func DrawLabels(l *layout.Layout, s Sink) {
	className := l.Labels().ClassName
	for _, p := range l.Placements() {
		s.DrawLabel(p.Region, p.Slot, p.Placement, p.Label, className)
	}
}
