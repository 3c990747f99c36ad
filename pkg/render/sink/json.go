package sink

import (
	"encoding/json"

	errs "github.com/matzehuels/chartframe/pkg/errors"
	"github.com/matzehuels/chartframe/pkg/layout"
	"github.com/matzehuels/chartframe/pkg/render"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	draw    render.Options
	compact bool
}

// WithJSONDrawOptions records the container and canvas class in the output
// so the document can be drawn again identically.
func WithJSONDrawOptions(opts render.Options) JSONOption {
	return func(r *jsonRenderer) { r.draw = opts }
}

// WithJSONCompact disables indentation.
func WithJSONCompact() JSONOption { return func(r *jsonRenderer) { r.compact = true } }

// Document is the JSON representation of a layout.
type Document struct {
	Width     float64              `json:"width"`
	Height    float64              `json:"height"`
	Container string               `json:"container,omitempty"`
	SVGClass  string               `json:"svg_class,omitempty"`
	ClassName string               `json:"class_name"`
	Margins   layout.Margins       `json:"margins"`
	Regions   []DocumentRegion     `json:"regions"`
	Labels    []layout.PlacedLabel `json:"labels"`
}

// DocumentRegion is one region of a [Document].
type DocumentRegion struct {
	Name  layout.Region `json:"name"`
	Group string        `json:"group"`
	Area  layout.Area   `json:"area"`
}

// BuildDocument collects the geometry of l. Labels with empty text are left
// out, matching what a drawing pass would produce.
func BuildDocument(l *layout.Layout, opts render.Options) Document {
	doc := Document{
		Width:     l.Width(),
		Height:    l.Height(),
		Container: opts.Container,
		SVGClass:  opts.SVGClass,
		ClassName: l.Labels().ClassName,
		Margins:   l.Margins(),
		Labels:    l.Placements(),
	}
	for _, r := range layout.Regions() {
		doc.Regions = append(doc.Regions, DocumentRegion{Name: r, Group: r.GroupID(), Area: l.Area(r)})
	}
	if doc.Labels == nil {
		doc.Labels = []layout.PlacedLabel{}
	}
	return doc
}

// IsFinite reports whether every number in the document is finite. JSON has
// no encoding for NaN or infinities.
func (d Document) IsFinite() bool {
	if !(layout.Area{Width: d.Width, Height: d.Height}).IsFinite() || !d.Margins.IsFinite() {
		return false
	}
	for _, r := range d.Regions {
		if !r.Area.IsFinite() {
			return false
		}
	}
	for _, p := range d.Labels {
		if !p.Placement.IsFinite() {
			return false
		}
	}
	return true
}

// RenderJSON exports the layout geometry as a JSON document. Layouts whose
// geometry overflowed to NaN or infinity are rejected with INVALID_DIMENSION.
func RenderJSON(l *layout.Layout, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}
	doc := BuildDocument(l, r.draw)
	if !doc.IsFinite() {
		return nil, errs.New(errs.ErrCodeInvalidDimension, "layout geometry is not finite (canvas %gx%g, margins %+v)", doc.Width, doc.Height, doc.Margins)
	}
	if r.compact {
		return json.Marshal(doc)
	}
	return json.MarshalIndent(doc, "", "  ")
}
