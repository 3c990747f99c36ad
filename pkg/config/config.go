// Package config loads chart layout configuration from TOML files.
//
// A configuration file mirrors [layout.Config] plus the drawing options of
// [render.Options]. Every key is optional:
//
//	width = 1200
//	aspect_ratio = 2.0
//	strict = true
//	container = "#chart"
//	svg_class = "sales-chart"
//
//	[margins]
//	percent = 8          # or: fraction = 0.08
//	                     # or: top = 40, right = 20, bottom = 40, left = 60
//
//	[labels]
//	class_name = "chart-labels"
//
//	[labels.header]
//	id = "title"
//	text = "Quarterly revenue"
//
//	[labels.subheader]
//	text = "All regions"
//
// Label slots that are absent keep their default text; a [labels.subheader]
// table enables the sub-header.
package config

import (
	"bytes"
	"os"

	"github.com/BurntSushi/toml"

	errs "github.com/matzehuels/chartframe/pkg/errors"
	"github.com/matzehuels/chartframe/pkg/layout"
	"github.com/matzehuels/chartframe/pkg/render"
)

// File is the decoded form of a configuration file. Pointer fields are nil
// when the key is absent. The same schema is accepted as JSON by the HTTP
// server.
type File struct {
	Width       *float64 `toml:"width" json:"width,omitempty"`
	Height      *float64 `toml:"height" json:"height,omitempty"`
	AspectRatio *float64 `toml:"aspect_ratio" json:"aspect_ratio,omitempty"`
	Strict      bool     `toml:"strict" json:"strict,omitempty"`
	Container   string   `toml:"container" json:"container,omitempty"`
	SVGClass    string   `toml:"svg_class" json:"svg_class,omitempty"`
	Margins     *Margins `toml:"margins" json:"margins,omitempty"`
	Labels      *Labels  `toml:"labels" json:"labels,omitempty"`
}

// Margins is the [margins] table. Exactly one of Percent, Fraction or the
// explicit sides may be used.
type Margins struct {
	Percent  *float64 `toml:"percent" json:"percent,omitempty"`
	Fraction *float64 `toml:"fraction" json:"fraction,omitempty"`
	Top      *float64 `toml:"top" json:"top,omitempty"`
	Right    *float64 `toml:"right" json:"right,omitempty"`
	Bottom   *float64 `toml:"bottom" json:"bottom,omitempty"`
	Left     *float64 `toml:"left" json:"left,omitempty"`
}

// Labels is the [labels] table.
type Labels struct {
	ClassName *string `toml:"class_name" json:"class_name,omitempty"`
	Header    *Label  `toml:"header" json:"header,omitempty"`
	Subheader *Label  `toml:"subheader" json:"subheader,omitempty"`
	Footer    *Label  `toml:"footer" json:"footer,omitempty"`
	Left      *Label  `toml:"left" json:"left,omitempty"`
	Right     *Label  `toml:"right" json:"right,omitempty"`
}

// Label is one [labels.<slot>] table.
type Label struct {
	ID   *string `toml:"id" json:"id,omitempty"`
	Text *string `toml:"text" json:"text,omitempty"`
}

// Load reads and decodes the configuration file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errs.Wrap(errs.ErrCodeFileNotFound, err, "config file %s", path)
	}
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidConfig, err, "read %s", path)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	return f, nil
}

// Parse decodes configuration from TOML bytes. Unknown keys are rejected so
// typos do not silently fall back to defaults.
func Parse(data []byte) (*File, error) {
	var f File
	md, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&f)
	if err != nil {
		return nil, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errs.New(errs.ErrCodeInvalidConfig, "unknown key %q", undecoded[0].String())
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Validate reports inconsistent settings that decoding alone cannot catch.
func (f *File) Validate() error {
	if f.Margins != nil {
		return f.Margins.check()
	}
	return nil
}

func (m *Margins) check() error {
	kinds := 0
	if m.Percent != nil {
		kinds++
	}
	if m.Fraction != nil {
		kinds++
	}
	if m.explicit() {
		kinds++
	}
	if kinds > 1 {
		return errs.New(errs.ErrCodeInvalidConfig, "margins: use only one of percent, fraction or top/right/bottom/left")
	}
	return nil
}

func (m *Margins) explicit() bool {
	return m.Top != nil || m.Right != nil || m.Bottom != nil || m.Left != nil
}

// Spec converts the table into a margin spec. Missing explicit sides are 0.
func (m *Margins) Spec() layout.MarginSpec {
	switch {
	case m == nil:
		return layout.MarginSpec{}
	case m.Percent != nil:
		return layout.Percent(*m.Percent)
	case m.Fraction != nil:
		return layout.Fraction(*m.Fraction)
	case m.explicit():
		return layout.Explicit(layout.Margins{
			Top:    deref(m.Top),
			Right:  deref(m.Right),
			Bottom: deref(m.Bottom),
			Left:   deref(m.Left),
		})
	}
	return layout.MarginSpec{}
}

// LayoutConfig converts the file into a layout configuration.
func (f *File) LayoutConfig() layout.Config {
	cfg := layout.Config{
		Width:       deref(f.Width),
		Height:      deref(f.Height),
		AspectRatio: deref(f.AspectRatio),
		Margins:     f.Margins.Spec(),
		Strict:      f.Strict,
	}
	if f.Labels != nil {
		base := layout.DefaultLabels()
		if f.Labels.Subheader != nil {
			base.Subheader = &layout.Label{ID: "subheader"}
		}
		labels := base.Merge(f.Labels.Update())
		cfg.Labels = &labels
	}
	return cfg
}

// DrawOptions returns the canvas container and class.
func (f *File) DrawOptions() render.Options {
	return render.Options{Container: f.Container, SVGClass: f.SVGClass}
}

// Update converts the table into a label update over the defaults.
func (l *Labels) Update() layout.LabelsUpdate {
	if l == nil {
		return layout.LabelsUpdate{}
	}
	return layout.LabelsUpdate{
		ClassName: l.ClassName,
		Header:    l.Header.patch(),
		Subheader: l.Subheader.patch(),
		Footer:    l.Footer.patch(),
		Left:      l.Left.patch(),
		Right:     l.Right.patch(),
	}
}

func (l *Label) patch() *layout.LabelPatch {
	if l == nil {
		return nil
	}
	return &layout.LabelPatch{ID: l.ID, Text: l.Text}
}

func deref(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}
