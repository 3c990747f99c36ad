package sink

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"

	errs "github.com/matzehuels/chartframe/pkg/errors"
	"github.com/matzehuels/chartframe/pkg/layout"
	"github.com/matzehuels/chartframe/pkg/render"
)

// PDF engines.
const (
	// PDFEngineNative draws the document with fpdf using the core fonts.
	PDFEngineNative = "native"
	// PDFEngineRSVG converts the SVG document with rsvg-convert.
	PDFEngineRSVG = "rsvg"
)

// PDFEngines lists the accepted engine names.
var PDFEngines = []string{PDFEngineNative, PDFEngineRSVG}

// baselineShift moves a baseline so the text is vertically centered on its
// anchor, as a fraction of the font size.
const baselineShift = 0.35

// pdfEpoch is written as the creation date so equal layouts produce equal
// bytes.
var pdfEpoch = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

// PDFOption configures PDF rendering.
type PDFOption func(*pdfRenderer)

type pdfRenderer struct {
	svgOpts  []SVGOption
	engine   string
	compress bool
}

// WithPDFSVGOptions sets the styling options. The native engine honors
// container, class, outlines, background and a font family mapped onto the
// core fonts.
func WithPDFSVGOptions(opts ...SVGOption) PDFOption {
	return func(r *pdfRenderer) { r.svgOpts = opts }
}

// WithPDFEngine selects [PDFEngineNative] (default) or [PDFEngineRSVG].
func WithPDFEngine(engine string) PDFOption {
	return func(r *pdfRenderer) { r.engine = engine }
}

// WithPDFCompression toggles stream compression of the native engine.
// It is on by default.
func WithPDFCompression(on bool) PDFOption {
	return func(r *pdfRenderer) { r.compress = on }
}

// ValidatePDFEngine reports an INVALID_INPUT error for unknown engines.
// The empty string selects the default.
func ValidatePDFEngine(engine string) error {
	switch engine {
	case "", PDFEngineNative, PDFEngineRSVG:
		return nil
	}
	return errs.New(errs.ErrCodeInvalidInput, "invalid pdf engine %q (must be one of: %s)", engine, strings.Join(PDFEngines, ", "))
}

// RenderPDF renders the layout as a single-page PDF sized to the canvas,
// one point per layout unit.
func RenderPDF(l *layout.Layout, opts ...PDFOption) ([]byte, error) {
	r := pdfRenderer{engine: PDFEngineNative, compress: true}
	for _, opt := range opts {
		opt(&r)
	}
	switch r.engine {
	case PDFEngineRSVG:
		return render.ToPDF(RenderSVG(l, r.svgOpts...))
	case PDFEngineNative, "":
	default:
		return nil, ValidatePDFEngine(r.engine)
	}

	p := NewPDF(r.svgOpts...)
	p.compress = r.compress
	render.Draw(l, p, p.cfg.draw)
	return p.Bytes()
}

// PDF is an in-memory PDF document that implements [render.Sink].
type PDF struct {
	scene
	cfg      svgConfig
	compress bool
}

// NewPDF returns an empty document styled by opts.
func NewPDF(opts ...SVGOption) *PDF {
	p := &PDF{scene: newScene(), compress: true}
	for _, opt := range opts {
		opt(&p.cfg)
	}
	return p
}

// CreateCanvas starts a new page, discarding any previous groups.
func (p *PDF) CreateCanvas(container, className string, width, height float64) {
	p.reset(container, className, width, height)
}

// AppendGroup creates region's group, or moves it if it already exists.
func (p *PDF) AppendGroup(region layout.Region, area layout.Area) { p.appendGroup(region, area) }

// DrawLabel sets the text of slot in region's group, replacing earlier text.
func (p *PDF) DrawLabel(region layout.Region, slot layout.LabelSlot, pl layout.Placement, l layout.Label, className string) {
	p.drawLabel(region, slot, pl, l, className)
}

// Len returns the number of text elements on the page.
func (p *PDF) Len() int { return p.count() }

// Bytes writes the page. Canvases without a positive size and scenes with
// NaN or infinite geometry are rejected with INVALID_DIMENSION.
func (p *PDF) Bytes() ([]byte, error) {
	if !(p.width > 0 && p.height > 0) {
		return nil, errs.New(errs.ErrCodeInvalidDimension, "pdf page needs a positive size, got %gx%g", p.width, p.height)
	}
	if !p.finite() {
		return nil, errs.New(errs.ErrCodeInvalidDimension, "pdf page geometry is not finite")
	}

	doc := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: p.width, Ht: p.height},
	})
	doc.SetCompression(p.compress)
	doc.SetCreationDate(pdfEpoch)
	doc.SetModificationDate(pdfEpoch)
	doc.SetCatalogSort(true)
	doc.SetCreator("chartframe", true)
	if p.className != "" {
		doc.SetSubject(p.className, true)
	}
	doc.SetMargins(0, 0, 0)
	doc.SetAutoPageBreak(false, 0)
	doc.AddPage()

	if r, g, b, ok := parseHexColor(p.cfg.background); ok {
		doc.SetFillColor(r, g, b)
		doc.Rect(0, 0, p.width, p.height, "F")
	}

	tr := doc.UnicodeTranslatorFromDescriptor("")
	font := coreFont(p.cfg.fontFamily)
	doc.SetTextColor(0, 0, 0)

	p.each(func(r layout.Region, g *sceneGroup) {
		if p.cfg.outlines && g.area.Width > 0 && g.area.Height > 0 {
			drawOutline(doc, r, g.area)
		}
		g.eachText(func(t sceneText) {
			drawText(doc, g.area, t, font, tr)
		})
	})

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("write pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func drawOutline(doc *fpdf.Fpdf, r layout.Region, a layout.Area) {
	if r == layout.RegionPlot {
		doc.SetDrawColor(37, 99, 235)
	} else {
		doc.SetDrawColor(156, 163, 175)
	}
	doc.SetLineWidth(1)
	doc.SetDashPattern([]float64{4, 3}, 0)
	doc.Rect(a.X, a.Y, a.Width, a.Height, "D")
	doc.SetDashPattern([]float64{}, 0)
}

// drawText centers t on its placement, translated by the group origin and
// rotated clockwise like the SVG transform.
func drawText(doc *fpdf.Fpdf, origin layout.Area, t sceneText, font string, tr func(string) string) {
	pl := t.placement
	if pl.FontSize <= 0 {
		return
	}
	x, y := origin.X+pl.X, origin.Y+pl.Y
	text := tr(t.label.Text)

	doc.SetFont(font, "", pl.FontSize)
	w := doc.GetStringWidth(text)

	if pl.Rotation != 0 {
		doc.TransformBegin()
		doc.TransformRotate(-pl.Rotation, x, y)
	}
	doc.Text(x-w/2, y+pl.FontSize*baselineShift, text)
	if pl.Rotation != 0 {
		doc.TransformEnd()
	}
}

// coreFont maps a CSS font family onto one of the PDF core fonts.
func coreFont(family string) string {
	f := strings.ToLower(family)
	switch {
	case strings.Contains(f, "mono"), strings.Contains(f, "courier"):
		return "Courier"
	case strings.Contains(f, "serif") && !strings.Contains(f, "sans"),
		strings.Contains(f, "times"), strings.Contains(f, "georgia"):
		return "Times"
	}
	return "Helvetica"
}

// parseHexColor parses "#rgb" and "#rrggbb". Other CSS colors are not
// supported by the native engine.
func parseHexColor(s string) (r, g, b int, ok bool) {
	hex, found := strings.CutPrefix(strings.TrimSpace(s), "#")
	if !found {
		return 0, 0, 0, false
	}
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return 0, 0, 0, false
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	return int(v >> 16 & 0xff), int(v >> 8 & 0xff), int(v & 0xff), true
}

var _ render.Sink = (*PDF)(nil)
