package layout

// Placement is where and how large a label is drawn, relative to the
// origin of its region.
type Placement struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	FontSize float64 `json:"font_size"`
	Rotation float64 `json:"rotation"`
}

// IsFinite reports whether the anchor and font size are finite numbers.
func (p Placement) IsFinite() bool { return finite(p.X, p.Y, p.FontSize, p.Rotation) }

// Rotation angles for vertical labels, in degrees.
const (
	RotationLeft  = -90.0
	RotationRight = 90.0
)

// PlaceLabel computes the anchor, font size and rotation of a label in slot
// drawn inside area. Coordinates are local to the area.
func PlaceLabel(area Area, slot LabelSlot) Placement {
	switch slot {
	case SlotHeader:
		return Placement{X: area.Width / 2, Y: area.Height / 4, FontSize: area.Height / 2}
	case SlotSubheader, SlotFooter:
		return Placement{X: area.Width / 2, Y: area.Height * 3 / 4, FontSize: area.Height / 4}
	case SlotLeft:
		return Placement{X: area.Width / 2, Y: area.Height / 2, FontSize: area.Width / 4, Rotation: RotationLeft}
	case SlotRight:
		return Placement{X: area.Width / 2, Y: area.Height / 2, FontSize: area.Width / 4, Rotation: RotationRight}
	}
	return Placement{}
}

// PlacedLabel is a label together with the region and geometry it is drawn
// with.
type PlacedLabel struct {
	Slot      LabelSlot `json:"slot"`
	Region    Region    `json:"region"`
	Label     Label     `json:"label"`
	Placement Placement `json:"placement"`
}

// Place computes the placement of the label in slot. It returns false when
// the slot is empty or its text is blank, in which case nothing should be
// drawn.
func (l *Layout) Place(slot LabelSlot) (PlacedLabel, bool) {
	lbl, ok := l.labels.Get(slot)
	if !ok || lbl.Text == "" {
		return PlacedLabel{}, false
	}
	r := slot.Region()
	return PlacedLabel{
		Slot:      slot,
		Region:    r,
		Label:     lbl,
		Placement: PlaceLabel(l.Area(r), slot),
	}, true
}

// Placements returns every drawable label in drawing order.
func (l *Layout) Placements() []PlacedLabel {
	var out []PlacedLabel
	for _, s := range Slots() {
		if p, ok := l.Place(s); ok {
			out = append(out, p)
		}
	}
	return out
}
