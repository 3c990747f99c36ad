package pipeline

import (
	"fmt"

	"github.com/matzehuels/chartframe/pkg/layout"
	"github.com/matzehuels/chartframe/pkg/render/sink"
)

// Render draws l in every requested format.
func Render(l *layout.Layout, opts Options) (map[string][]byte, error) {
	opts.SetDefaults()
	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		data, err := RenderFormat(l, format, opts)
		if err != nil {
			return nil, err
		}
		artifacts[format] = data
	}
	return artifacts, nil
}

// RenderFormat draws l in a single format.
func RenderFormat(l *layout.Layout, format string, opts Options) ([]byte, error) {
	if err := ValidateFormat(format); err != nil {
		return nil, err
	}
	svgOpts := svgOptions(opts)

	var (
		data []byte
		err  error
	)
	switch format {
	case FormatSVG:
		data = sink.RenderSVG(l, svgOpts...)
	case FormatJSON:
		data, err = sink.RenderJSON(l, sink.WithJSONDrawOptions(opts.DrawOptions()))
	case FormatPDF:
		data, err = sink.RenderPDF(l, sink.WithPDFSVGOptions(svgOpts...), sink.WithPDFEngine(opts.PDFEngine))
	case FormatPNG:
		data, err = sink.RenderPNG(l, sink.WithPNGSVGOptions(svgOpts...), sink.WithScale(opts.Scale))
	}
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", format, err)
	}
	return data, nil
}

func svgOptions(opts Options) []sink.SVGOption {
	draw := opts.DrawOptions()
	svgOpts := []sink.SVGOption{
		sink.WithContainer(draw.Container),
		sink.WithClass(draw.SVGClass),
	}
	if opts.Outlines {
		svgOpts = append(svgOpts, sink.WithOutlines())
	}
	if opts.FontFamily != "" {
		svgOpts = append(svgOpts, sink.WithFontFamily(opts.FontFamily))
	}
	if opts.Background != "" {
		svgOpts = append(svgOpts, sink.WithBackground(opts.Background))
	}
	return svgOpts
}
