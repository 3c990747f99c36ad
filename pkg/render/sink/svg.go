package sink

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"math"
	"strconv"

	"github.com/matzehuels/chartframe/pkg/layout"
	"github.com/matzehuels/chartframe/pkg/render"
)

const outlineCSS = `
    .region-outline { fill: none; stroke: #9ca3af; stroke-width: 1; stroke-dasharray: 4 3; }
    .region-outline.plot { stroke: #2563eb; }`

// SVGOption configures SVG rendering. The PDF renderer accepts the same
// options through [WithPDFSVGOptions].
type SVGOption func(*svgConfig)

type svgConfig struct {
	draw       render.Options
	outlines   bool
	fontFamily string
	background string
}

// WithContainer sets the selector of the element hosting the canvas.
func WithContainer(selector string) SVGOption {
	return func(c *svgConfig) { c.draw.Container = selector }
}

// WithClass sets the CSS class of the root element.
func WithClass(name string) SVGOption { return func(c *svgConfig) { c.draw.SVGClass = name } }

// WithOutlines draws a dashed outline around every region.
func WithOutlines() SVGOption { return func(c *svgConfig) { c.outlines = true } }

// WithFontFamily sets the font family of all label text.
func WithFontFamily(family string) SVGOption {
	return func(c *svgConfig) { c.fontFamily = family }
}

// WithBackground fills the canvas with color before drawing regions.
func WithBackground(color string) SVGOption {
	return func(c *svgConfig) { c.background = color }
}

// SVG is an in-memory SVG document that implements [render.Sink].
type SVG struct {
	scene
	cfg svgConfig
}

// NewSVG returns an empty document.
func NewSVG(opts ...SVGOption) *SVG {
	s := &SVG{scene: newScene()}
	for _, opt := range opts {
		opt(&s.cfg)
	}
	return s
}

// RenderSVG draws l into a new document and returns its bytes.
func RenderSVG(l *layout.Layout, opts ...SVGOption) []byte {
	s := NewSVG(opts...)
	render.Draw(l, s, s.cfg.draw)
	return s.Bytes()
}

// CreateCanvas starts a new document, discarding any previous groups.
func (s *SVG) CreateCanvas(container, className string, width, height float64) {
	s.reset(container, className, width, height)
}

// AppendGroup creates region's group, or moves it if it already exists.
func (s *SVG) AppendGroup(region layout.Region, area layout.Area) { s.appendGroup(region, area) }

// DrawLabel sets the text of slot in region's group, replacing earlier text.
// Labels for regions without a group are dropped.
func (s *SVG) DrawLabel(region layout.Region, slot layout.LabelSlot, p layout.Placement, l layout.Label, className string) {
	s.drawLabel(region, slot, p, l, className)
}

// Len returns the number of text elements in the document.
func (s *SVG) Len() int { return s.count() }

// Bytes serializes the document.
func (s *SVG) Bytes() []byte {
	var buf bytes.Buffer
	buf.WriteString(`<svg xmlns="http://www.w3.org/2000/svg"`)
	if s.className != "" {
		fmt.Fprintf(&buf, ` class="%s"`, escapeXML(s.className))
	}
	if s.container != "" {
		fmt.Fprintf(&buf, ` data-container="%s"`, escapeXML(s.container))
	}
	fmt.Fprintf(&buf, ` viewBox="0 0 %s %s" preserveAspectRatio="xMidYMid meet" width="%s" height="%s">`+"\n",
		num(s.width), num(s.height), num(s.width), num(s.height))

	if s.cfg.outlines {
		fmt.Fprintf(&buf, "  <style>%s\n  </style>\n", outlineCSS)
	}
	if s.cfg.background != "" {
		fmt.Fprintf(&buf, `  <rect class="background" width="%s" height="%s" fill="%s"/>`+"\n",
			num(s.width), num(s.height), escapeXML(s.cfg.background))
	}

	s.each(func(r layout.Region, g *sceneGroup) { s.writeGroup(&buf, r, g) })

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func (s *SVG) writeGroup(buf *bytes.Buffer, r layout.Region, g *sceneGroup) {
	fmt.Fprintf(buf, `  <g id="%s" transform="translate(%s, %s)">`+"\n", r.GroupID(), num(g.area.X), num(g.area.Y))
	if s.cfg.outlines && g.area.Width > 0 && g.area.Height > 0 {
		class := "region-outline"
		if r == layout.RegionPlot {
			class += " plot"
		}
		fmt.Fprintf(buf, `    <rect class="%s" width="%s" height="%s"/>`+"\n", class, num(g.area.Width), num(g.area.Height))
	}
	g.eachText(func(t sceneText) { s.writeText(buf, t) })
	buf.WriteString("  </g>\n")
}

func (s *SVG) writeText(buf *bytes.Buffer, t sceneText) {
	p := t.placement
	fmt.Fprintf(buf, `    <text id="%s" class="%s" font-size="%s" x="%s" y="%s" text-anchor="middle" dominant-baseline="middle"`,
		escapeXML(t.label.ID), escapeXML(t.className), num(p.FontSize), num(p.X), num(p.Y))
	if s.cfg.fontFamily != "" {
		fmt.Fprintf(buf, ` font-family="%s"`, escapeXML(s.cfg.fontFamily))
	}
	if p.Rotation != 0 {
		fmt.Fprintf(buf, ` transform="rotate(%s, %s, %s)"`, num(p.Rotation), num(p.X), num(p.Y))
	}
	fmt.Fprintf(buf, ">%s</text>\n", escapeXML(t.label.Text))
}

// num formats a coordinate with at most two decimals and no trailing zeros.
func num(v float64) string {
	v = math.Round(v*100) / 100
	if v == 0 {
		v = 0 // drops negative zero
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

var _ render.Sink = (*SVG)(nil)
