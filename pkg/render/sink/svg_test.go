package sink

import (
	"strings"
	"testing"

	"github.com/matzehuels/chartframe/pkg/layout"
	"github.com/matzehuels/chartframe/pkg/render"
)

func TestRenderSVGDefaultLayout(t *testing.T) {
	l := layout.MustNew(layout.Config{})
	svg := string(RenderSVG(l))

	wants := []string{
		`<svg xmlns="http://www.w3.org/2000/svg" class="D3ChartLayout" data-container="#root" viewBox="0 0 960 540" preserveAspectRatio="xMidYMid meet" width="960" height="540">`,
		`<g id="plotGroup" transform="translate(96, 54)">`,
		`<g id="headerGroup" transform="translate(96, 0)">`,
		`<g id="footerGroup" transform="translate(96, 486)">`,
		`<g id="rightGroup" transform="translate(864, 54)">`,
		`<g id="bottomRightGroup" transform="translate(864, 486)">`,
		`<text id="header" class="labels" font-size="27" x="384" y="13.5" text-anchor="middle" dominant-baseline="middle">Header</text>`,
		`<text id="footer" class="labels" font-size="13.5" x="384" y="40.5" text-anchor="middle" dominant-baseline="middle">Footer</text>`,
		`transform="rotate(-90, 48, 216)">Left Label</text>`,
		`transform="rotate(90, 48, 216)">Right Label</text>`,
	}
	for _, want := range wants {
		if !strings.Contains(svg, want) {
			t.Errorf("SVG missing %q", want)
		}
	}
	if got := strings.Count(svg, "<g id="); got != 9 {
		t.Errorf("group count = %d, want 9", got)
	}
	if strings.Contains(svg, "region-outline") {
		t.Error("outlines drawn without WithOutlines")
	}
	if !strings.HasSuffix(svg, "</svg>\n") {
		t.Error("document not closed")
	}
}

func TestRenderSVGOptions(t *testing.T) {
	l := layout.MustNew(layout.Config{Width: 400, Height: 200})
	svg := string(RenderSVG(l,
		WithContainer("#chart"),
		WithClass("sales"),
		WithOutlines(),
		WithFontFamily("Inter"),
		WithBackground("#fff"),
	))

	for _, want := range []string{
		`class="sales"`,
		`data-container="#chart"`,
		`<rect class="region-outline plot" width="320" height="160"/>`,
		`font-family="Inter"`,
		`<rect class="background" width="400" height="200" fill="#fff"/>`,
	} {
		if !strings.Contains(svg, want) {
			t.Errorf("SVG missing %q", want)
		}
	}
}

func TestSVGSkipsEmptyLabel(t *testing.T) {
	labels := layout.DefaultLabels()
	labels.Footer.Text = ""
	l := layout.MustNew(layout.Config{Labels: &labels})
	svg := string(RenderSVG(l))

	if strings.Contains(svg, `id="footer"`) {
		t.Error("empty footer label was rendered")
	}
	if got := strings.Count(svg, "<text"); got != 3 {
		t.Errorf("text count = %d, want 3", got)
	}
}

func TestSVGReplacesLabelOnRedraw(t *testing.T) {
	l := layout.MustNew(layout.Config{})
	s := NewSVG()
	render.Draw(l, s, render.Options{})

	for _, text := range []string{"First", "Second", "Third"} {
		txt := text
		if err := l.SetLabels(layout.LabelsUpdate{Header: &layout.LabelPatch{Text: &txt}}); err != nil {
			t.Fatal(err)
		}
		render.DrawLabels(l, s)
	}

	if s.Len() != 4 {
		t.Errorf("Len() = %d, want 4", s.Len())
	}
	svg := string(s.Bytes())
	if strings.Contains(svg, ">Header<") || strings.Contains(svg, ">Second<") {
		t.Error("stale header text remains")
	}
	if !strings.Contains(svg, ">Third<") {
		t.Error("latest header text missing")
	}
}

func TestSVGSubheaderSharesHeaderGroup(t *testing.T) {
	sub := layout.Label{ID: "subheader", Text: "Sub"}
	labels := layout.DefaultLabels()
	labels.Subheader = &sub
	l := layout.MustNew(layout.Config{Labels: &labels})
	svg := string(RenderSVG(l))

	start := strings.Index(svg, `<g id="headerGroup"`)
	end := strings.Index(svg[start:], "</g>")
	group := svg[start : start+end]
	if !strings.Contains(group, ">Header<") || !strings.Contains(group, ">Sub<") {
		t.Errorf("header group should hold header and subheader:\n%s", group)
	}
}

func TestSVGRedrawAfterMargins(t *testing.T) {
	l := layout.MustNew(layout.Config{})
	s := NewSVG()
	render.Draw(l, s, render.Options{})

	_ = l.SetMargins(layout.Percent(0))
	render.Draw(l, s, render.Options{})

	svg := string(s.Bytes())
	if !strings.Contains(svg, `<g id="plotGroup" transform="translate(0, 0)">`) {
		t.Error("plot group not moved after redraw")
	}
	if got := strings.Count(svg, "<g id="); got != 9 {
		t.Errorf("group count = %d, want 9", got)
	}
}

func TestSVGEscapesText(t *testing.T) {
	labels := layout.DefaultLabels()
	labels.Header.Text = `Sales & "Costs" <2026>`
	l := layout.MustNew(layout.Config{Labels: &labels})
	svg := string(RenderSVG(l))

	if !strings.Contains(svg, ">Sales &amp; &#34;Costs&#34; &lt;2026&gt;</text>") {
		t.Errorf("header text not escaped:\n%s", svg)
	}
}

func TestSVGDropsLabelWithoutGroup(t *testing.T) {
	s := NewSVG()
	s.CreateCanvas("#root", "c", 10, 10)
	s.DrawLabel(layout.RegionHeader, layout.SlotHeader, layout.Placement{}, layout.Label{ID: "h", Text: "H"}, "labels")
	if s.Len() != 0 {
		t.Errorf("Len() = %d, want 0", s.Len())
	}
}

func TestNum(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{96, "96"},
		{13.5, "13.5"},
		{1.0 / 3.0, "0.33"},
		{-0.001, "0"},
		{-90, "-90"},
	}
	for _, tt := range tests {
		if got := num(tt.in); got != tt.want {
			t.Errorf("num(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
