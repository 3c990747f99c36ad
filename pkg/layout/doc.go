// Package layout partitions a chart canvas into named rectangular regions.
//
// # Overview
//
// A chart canvas is a single top-left-origin rectangle with Y increasing
// downward. Margins inset the canvas to produce the plot area; the band left
// around it is split into eight regions so that text labels and decorations
// have a well-defined home:
//
//	+----------+--------------------+-----------+
//	| TopLeft  |       Header       | TopRight  |
//	+----------+--------------------+-----------+
//	|          |                    |           |
//	| Left     |        Plot        | Right     |
//	| Label    |                    | Label     |
//	|          |                    |           |
//	+----------+--------------------+-----------+
//	|BottomLeft|       Footer       |BottomRight|
//	+----------+--------------------+-----------+
//
// The nine regions tile the canvas exactly: no gaps, no overlaps.
//
// # Margins
//
// Margins are described by a [MarginSpec] and resolved into pixel [Margins]
// with [ResolveMargins]. The unit is explicit:
//
//	layout.Percent(10)   // 10% of height (top/bottom) and width (left/right)
//	layout.Fraction(0.1) // same thing
//	layout.Explicit(layout.Margins{Top: 40, Right: 20, Bottom: 40, Left: 60})
//
// [Inferred] keeps the magnitude heuristic where values below 1 are read as
// fractions and everything else as whole percent.
//
// # Areas
//
// Every region getter recomputes its [Area] from the current dimensions and
// margins, so results never go stale after [Layout.SetMargins]:
//
//	l, _ := layout.New(layout.Config{})
//	plot := l.PlotArea() // {Height: 432, Width: 768, X: 96, Y: 54}
//
// # Labels
//
// [PlaceLabel] derives the anchor point, font size and rotation for a label
// slot inside a region. [Layout.Placements] does this for every configured
// label, skipping labels with empty text and an absent sub-header.
//
// # Strict Mode
//
// By default nothing is validated: negative sizes or oversized margins simply
// produce degenerate areas. Setting [Config.Strict] makes [New],
// [Layout.SetMargins] and [Layout.SetLabels] return errors coded
// INVALID_DIMENSION or INVALID_MARGIN instead.
package layout
