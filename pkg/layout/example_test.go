package layout_test

import (
	"fmt"

	"github.com/matzehuels/chartframe/pkg/layout"
)

func ExampleNew() {
	l, _ := layout.New(layout.Config{})

	fmt.Printf("Canvas: %.0f x %.0f\n", l.Width(), l.Height())
	fmt.Printf("Plot: %+v\n", l.PlotArea())
	// Output:
	// Canvas: 960 x 540
	// Plot: {Height:432 Width:768 X:96 Y:54}
}

func ExampleLayout_SetMargins() {
	l := layout.MustNew(layout.Config{Width: 800, Height: 600})
	_ = l.SetMargins(layout.Explicit(layout.Margins{Top: 60, Right: 20, Bottom: 40, Left: 80}))

	for _, r := range []layout.Region{layout.RegionPlot, layout.RegionHeader, layout.RegionLeftLabel} {
		fmt.Printf("%s: %+v\n", r, l.Area(r))
	}
	// Output:
	// plot: {Height:500 Width:700 X:80 Y:60}
	// header: {Height:60 Width:700 X:80 Y:0}
	// left-label: {Height:500 Width:80 X:0 Y:60}
}

func ExamplePlaceLabel() {
	header := layout.Area{Height: 60, Width: 700, X: 80}
	fmt.Printf("%+v\n", layout.PlaceLabel(header, layout.SlotHeader))
	fmt.Printf("%+v\n", layout.PlaceLabel(header, layout.SlotSubheader))
	// Output:
	// {X:350 Y:15 FontSize:30 Rotation:0}
	// {X:350 Y:45 FontSize:15 Rotation:0}
}
