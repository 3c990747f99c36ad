package render

import (
	"fmt"
	"testing"

	"github.com/matzehuels/chartframe/pkg/layout"
)

type call struct {
	op     string
	region layout.Region
	slot   layout.LabelSlot
	label  layout.Label
	rot    float64
}

type recorder struct {
	container, class string
	width, height    float64
	calls            []call
}

func (r *recorder) CreateCanvas(container, className string, width, height float64) {
	r.container, r.class, r.width, r.height = container, className, width, height
	r.calls = append(r.calls, call{op: "canvas"})
}

func (r *recorder) AppendGroup(region layout.Region, area layout.Area) {
	r.calls = append(r.calls, call{op: "group", region: region})
}

func (r *recorder) DrawLabel(region layout.Region, slot layout.LabelSlot, p layout.Placement, l layout.Label, className string) {
	r.calls = append(r.calls, call{op: "label", region: region, slot: slot, label: l, rot: p.Rotation})
}

func (r *recorder) labels() []call {
	var out []call
	for _, c := range r.calls {
		if c.op == "label" {
			out = append(out, c)
		}
	}
	return out
}

func TestDrawDefaults(t *testing.T) {
	l := layout.MustNew(layout.Config{})
	rec := &recorder{}
	Draw(l, rec, Options{})

	if rec.container != DefaultContainer || rec.class != DefaultSVGClass {
		t.Errorf("canvas = (%q, %q), want defaults", rec.container, rec.class)
	}
	if rec.width != 960 {
		t.Errorf("canvas width = %v, want 960", rec.width)
	}

	groups := 0
	for _, c := range rec.calls {
		if c.op == "group" {
			groups++
		}
	}
	if groups != len(layout.Regions()) {
		t.Errorf("appended %d groups, want %d", groups, len(layout.Regions()))
	}

	got := rec.labels()
	want := []struct {
		region layout.Region
		rot    float64
	}{
		{layout.RegionHeader, 0},
		{layout.RegionFooter, 0},
		{layout.RegionLeftLabel, -90},
		{layout.RegionRightLabel, 90},
	}
	if len(got) != len(want) {
		t.Fatalf("drew %d labels, want %d", len(got), len(want))
	}
	for i, w := range want {
		if got[i].region != w.region || got[i].rot != w.rot {
			t.Errorf("label %d = %v rot %v, want %v rot %v", i, got[i].region, got[i].rot, w.region, w.rot)
		}
	}
}

func TestDrawSkipsEmptyFooter(t *testing.T) {
	labels := layout.DefaultLabels()
	labels.Footer.Text = ""
	l := layout.MustNew(layout.Config{Labels: &labels})

	rec := &recorder{}
	Draw(l, rec, Options{Container: "#chart", SVGClass: "mine"})

	if rec.container != "#chart" || rec.class != "mine" {
		t.Errorf("canvas = (%q, %q)", rec.container, rec.class)
	}
	for _, c := range rec.labels() {
		if c.region == layout.RegionFooter {
			t.Errorf("sink received footer label %+v", c.label)
		}
	}
}

func TestDrawLabelsAfterUpdate(t *testing.T) {
	labels := layout.DefaultLabels()
	labels.Subheader = &layout.Label{ID: "subheader", Text: "Monthly"}
	l := layout.MustNew(layout.Config{Labels: &labels})
	rec := &recorder{}
	Draw(l, rec, Options{})

	text := "Quarterly"
	if err := l.SetLabels(layout.LabelsUpdate{Subheader: &layout.LabelPatch{Text: &text}}); err != nil {
		t.Fatal(err)
	}
	rec.calls = nil
	DrawLabels(l, rec)

	got := rec.labels()
	if len(got) != 5 {
		t.Fatalf("drew %d labels, want 5", len(got))
	}
	last := got[len(got)-1]
	if last.slot != layout.SlotSubheader || last.region != layout.RegionHeader || last.label.Text != text {
		t.Errorf("last label = %s", fmt.Sprintf("%+v", last))
	}
}
