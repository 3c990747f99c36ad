package layout

import "fmt"

// Region identifies one of the nine rectangles a canvas is split into.
type Region int

const (
	RegionPlot Region = iota
	RegionHeader
	RegionFooter
	RegionLeftLabel
	RegionRightLabel
	RegionTopLeft
	RegionTopRight
	RegionBottomLeft
	RegionBottomRight
)

var regionNames = [...]string{
	RegionPlot:        "plot",
	RegionHeader:      "header",
	RegionFooter:      "footer",
	RegionLeftLabel:   "left-label",
	RegionRightLabel:  "right-label",
	RegionTopLeft:     "top-left",
	RegionTopRight:    "top-right",
	RegionBottomLeft:  "bottom-left",
	RegionBottomRight: "bottom-right",
}

var regionGroups = [...]string{
	RegionPlot:        "plotGroup",
	RegionHeader:      "headerGroup",
	RegionFooter:      "footerGroup",
	RegionLeftLabel:   "leftGroup",
	RegionRightLabel:  "rightGroup",
	RegionTopLeft:     "topLeftGroup",
	RegionTopRight:    "topRightGroup",
	RegionBottomLeft:  "bottomLeftGroup",
	RegionBottomRight: "bottomRightGroup",
}

// Regions returns every region in drawing order.
func Regions() []Region {
	return []Region{
		RegionPlot,
		RegionHeader,
		RegionFooter,
		RegionLeftLabel,
		RegionRightLabel,
		RegionTopLeft,
		RegionTopRight,
		RegionBottomLeft,
		RegionBottomRight,
	}
}

// Valid reports whether r is one of the known regions.
func (r Region) Valid() bool { return r >= RegionPlot && r <= RegionBottomRight }

func (r Region) String() string {
	if !r.Valid() {
		return fmt.Sprintf("Region(%d)", int(r))
	}
	return regionNames[r]
}

// GroupID returns the element id sinks use for the region's group.
func (r Region) GroupID() string {
	if !r.Valid() {
		return ""
	}
	return regionGroups[r]
}

// ParseRegion maps a region name such as "left-label" back to its Region.
func ParseRegion(name string) (Region, bool) {
	for i, n := range regionNames {
		if n == name {
			return Region(i), true
		}
	}
	return 0, false
}

// MarshalText encodes the region by name so it can key JSON objects.
func (r Region) MarshalText() ([]byte, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("invalid region %d", int(r))
	}
	return []byte(r.String()), nil
}

// UnmarshalText decodes a region name.
func (r *Region) UnmarshalText(b []byte) error {
	v, ok := ParseRegion(string(b))
	if !ok {
		return fmt.Errorf("unknown region %q", b)
	}
	*r = v
	return nil
}
