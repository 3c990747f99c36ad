package layout

import "testing"

func TestPlaceLabel(t *testing.T) {
	area := Area{Height: 80, Width: 400, X: 33, Y: 44}
	tests := []struct {
		slot LabelSlot
		want Placement
	}{
		{SlotHeader, Placement{X: 200, Y: 20, FontSize: 40}},
		{SlotSubheader, Placement{X: 200, Y: 60, FontSize: 20}},
		{SlotFooter, Placement{X: 200, Y: 60, FontSize: 20}},
		{SlotLeft, Placement{X: 200, Y: 40, FontSize: 100, Rotation: -90}},
		{SlotRight, Placement{X: 200, Y: 40, FontSize: 100, Rotation: 90}},
	}
	for _, tt := range tests {
		t.Run(tt.slot.String(), func(t *testing.T) {
			if got := PlaceLabel(area, tt.slot); got != tt.want {
				t.Errorf("PlaceLabel(%v) = %+v, want %+v", tt.slot, got, tt.want)
			}
		})
	}
}

func TestPlacementsDefaultLayout(t *testing.T) {
	l := MustNew(Config{})
	got := l.Placements()

	wantSlots := []LabelSlot{SlotHeader, SlotFooter, SlotLeft, SlotRight}
	if len(got) != len(wantSlots) {
		t.Fatalf("Placements() returned %d labels, want %d", len(got), len(wantSlots))
	}
	for i, p := range got {
		if p.Slot != wantSlots[i] {
			t.Errorf("placement %d slot = %v, want %v", i, p.Slot, wantSlots[i])
		}
		if p.Region != p.Slot.Region() {
			t.Errorf("%v drawn in %v, want %v", p.Slot, p.Region, p.Slot.Region())
		}
	}

	header := got[0]
	if !approx(header.Placement.X, 384) || !approx(header.Placement.Y, 13.5) || !approx(header.Placement.FontSize, 27) {
		t.Errorf("header placement = %+v", header.Placement)
	}
	left := got[2]
	if !approx(left.Placement.X, 48) || !approx(left.Placement.Y, 216) || !approx(left.Placement.FontSize, 24) {
		t.Errorf("left placement = %+v", left.Placement)
	}
}

func TestPlacementRotation(t *testing.T) {
	sub := Label{ID: "sub", Text: "Sub"}
	labels := DefaultLabels()
	labels.Subheader = &sub
	l := MustNew(Config{Labels: &labels})

	want := map[LabelSlot]float64{
		SlotHeader:    0,
		SlotSubheader: 0,
		SlotFooter:    0,
		SlotLeft:      -90,
		SlotRight:     90,
	}
	got := l.Placements()
	if len(got) != len(want) {
		t.Fatalf("Placements() returned %d labels, want %d", len(got), len(want))
	}
	for _, p := range got {
		if p.Placement.Rotation != want[p.Slot] {
			t.Errorf("%v rotation = %v, want %v", p.Slot, p.Placement.Rotation, want[p.Slot])
		}
	}
	if last := got[len(got)-1]; last.Slot != SlotSubheader || last.Region != RegionHeader {
		t.Errorf("last placement = %v in %v, want subheader in header", last.Slot, last.Region)
	}
}

func TestPlacementSkipsEmptyText(t *testing.T) {
	labels := DefaultLabels()
	labels.Footer.Text = ""
	l := MustNew(Config{Labels: &labels})

	if _, ok := l.Place(SlotFooter); ok {
		t.Error("Place(footer) should be skipped for empty text")
	}
	if _, ok := l.Place(SlotSubheader); ok {
		t.Error("Place(subheader) should be skipped without a subheader")
	}
	for _, p := range l.Placements() {
		if p.Slot == SlotFooter {
			t.Error("Placements() contains the empty footer")
		}
	}
}

func TestLabelSlotText(t *testing.T) {
	for _, s := range Slots() {
		b, err := s.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%v) error: %v", s, err)
		}
		var back LabelSlot
		if err := back.UnmarshalText(b); err != nil || back != s {
			t.Errorf("UnmarshalText(%s) = %v, %v", b, back, err)
		}
	}
}

func TestRegionNames(t *testing.T) {
	seen := map[string]bool{}
	for _, r := range Regions() {
		if seen[r.GroupID()] {
			t.Errorf("duplicate group id %q", r.GroupID())
		}
		seen[r.GroupID()] = true
		back, ok := ParseRegion(r.String())
		if !ok || back != r {
			t.Errorf("ParseRegion(%q) = %v, %v", r.String(), back, ok)
		}
	}
	if Region(99).Valid() || Region(99).GroupID() != "" {
		t.Error("Region(99) should be invalid")
	}
}
