// Package sink provides output formats for chart layouts.
//
// # Overview
//
// A "sink" turns a [layout.Layout] into a final output format. This package
// provides:
//
//   - SVG: an in-memory document implementing [render.Sink]
//   - JSON: region and label geometry for external tools
//   - PDF: print-ready output drawn with fpdf, or converted by rsvg-convert
//   - PNG: raster output (requires rsvg-convert)
//
// # SVG Output
//
// [SVG] records the drawing operations issued by [render.Draw] and
// serializes them with [SVG.Bytes]. Every region becomes a <g> element
// translated to the region's origin; labels are centered <text> elements.
// Drawing a label slot twice replaces the earlier text, so a sink can be
// reused after [layout.Layout.SetLabels]:
//
//	s := sink.NewSVG(sink.WithOutlines())
//	render.Draw(l, s, render.Options{})
//	_ = l.SetLabels(update)
//	render.DrawLabels(l, s)
//	out := s.Bytes()
//
// [RenderSVG] wraps the common case:
//
//	svg := sink.RenderSVG(l, sink.WithClass("sales-chart"))
//
// # JSON Output
//
// [RenderJSON] exports canvas size, resolved margins, all nine regions and
// the label placements. [BuildDocument] returns the same data unmarshaled
// for callers that embed it in their own responses.
//
// # PDF Output
//
// [PDF] is a second [render.Sink]. It records the same scene as [SVG] and
// writes a single page sized to the canvas with one point per layout unit.
// Labels use the PDF core fonts; [WithFontFamily] picks Helvetica, Times or
// Courier by family name, and [WithBackground] accepts hex colors only.
//
//	pdf, err := sink.RenderPDF(l, sink.WithPDFSVGOptions(opts...))
//
// [WithPDFEngine]([PDFEngineRSVG]) converts the SVG document with
// rsvg-convert instead, matching the SVG output exactly.
//
// # PNG Output
//
// [RenderPNG] generates SVG first, then converts it with [render.ToPNG]:
//
//	png, err := sink.RenderPNG(l, sink.WithScale(2))
//
// This requires librsvg to be installed:
//   - macOS: brew install librsvg
//   - Linux: apt install librsvg2-bin
//
// [layout.Layout]: github.com/matzehuels/chartframe/pkg/layout.Layout
// [render.Sink]: github.com/matzehuels/chartframe/pkg/render.Sink
// [render.Draw]: github.com/matzehuels/chartframe/pkg/render.Draw
// [render.ToPNG]: github.com/matzehuels/chartframe/pkg/render.ToPNG
package sink
