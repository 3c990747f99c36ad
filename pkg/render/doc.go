// Package render draws a chart layout through a [Sink].
//
// # Overview
//
// [Draw] performs the full drawing pass for a [layout.Layout]:
//
//  1. Create the root canvas sized to the layout, scaled through a viewBox
//  2. Append one group per region, translated to the region's origin
//  3. Draw each label at its placement inside its region's group
//
// A sink receives geometry only; it decides what the output looks like. The
// concrete sinks (SVG, JSON, PDF, PNG) live in the [sink] subpackage.
//
//	s := sink.NewSVG()
//	render.Draw(l, s, render.Options{})
//	svg := s.Bytes()
//
// After [layout.Layout.SetLabels] only the labels need to be drawn again:
//
//	_ = l.SetLabels(update)
//	render.DrawLabels(l, s)
//
// After [layout.Layout.SetMargins] every region moves, so the whole chart is
// redrawn with [Draw] on a fresh sink.
//
// # Format Conversion
//
// [ToPDF] and [ToPNG] convert SVG to other formats using the external
// rsvg-convert tool (from librsvg).
//
//	pdf, err := render.ToPDF(svg)
//	png, err := render.ToPNG(svg, 2.0)  // 2x scale
//
// [sink]: github.com/matzehuels/chartframe/pkg/render/sink
package render
