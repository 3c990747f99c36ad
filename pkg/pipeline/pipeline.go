// Package pipeline turns a chart configuration into rendered artifacts.
//
// The pipeline has two stages:
//
//  1. Layout: resolve the configuration into a [layout.Layout]
//  2. Render: draw the layout into each requested format (svg, json, pdf, png)
//
// Rendered artifacts are cached by layout content, so two configurations
// that resolve to the same geometry and labels share cache entries. The CLI
// and the HTTP server both go through a [Runner]:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Formats: []string{pipeline.FormatSVG},
//	})
//	svg := result.Artifacts[pipeline.FormatSVG]
package pipeline

import (
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/chartframe/pkg/cache"
	"github.com/matzehuels/chartframe/pkg/config"
	errs "github.com/matzehuels/chartframe/pkg/errors"
	"github.com/matzehuels/chartframe/pkg/layout"
	"github.com/matzehuels/chartframe/pkg/render/sink"
)

// Output formats.
const (
	FormatSVG  = "svg"
	FormatJSON = "json"
	FormatPDF  = "pdf"
	FormatPNG  = "png"
)

// Formats lists every supported format.
var Formats = []string{FormatSVG, FormatJSON, FormatPDF, FormatPNG}

// ContentTypes maps formats to MIME types.
var ContentTypes = map[string]string{
	FormatSVG:  "image/svg+xml",
	FormatJSON: "application/json",
	FormatPDF:  "application/pdf",
	FormatPNG:  "image/png",
}

// Options configures one pipeline run. The embedded [config.File] carries the
// layout settings; the rest selects and styles the output.
type Options struct {
	config.File

	Formats    []string `json:"formats,omitempty"`
	Outlines   bool     `json:"outlines,omitempty"`
	FontFamily string   `json:"font_family,omitempty"`
	Background string   `json:"background,omitempty"`
	Scale      float64  `json:"scale,omitempty"`
	PDFEngine  string   `json:"pdf_engine,omitempty"`

	// Refresh bypasses cached artifacts but still stores the new ones.
	Refresh bool        `json:"-"`
	Logger  *log.Logger `json:"-"`
}

// Result is the output of [Runner.Execute].
type Result struct {
	Layout     *layout.Layout
	LayoutHash string
	Artifacts  map[string][]byte
	Stats      Stats
	CacheInfo  CacheInfo
}

// Stats holds timings and counts of a run.
type Stats struct {
	Labels     int
	LayoutTime time.Duration
	RenderTime time.Duration
}

// CacheInfo records which formats were served from cache.
type CacheInfo struct {
	RenderHit bool     // every format came from cache
	Hits      []string // formats served from cache
}

// ValidateFormat checks that format is supported. Formats are case-sensitive.
func ValidateFormat(format string) error {
	if !slices.Contains(Formats, format) {
		return errs.New(errs.ErrCodeInvalidFormat, "invalid format %q (must be one of: %s)", format, strings.Join(Formats, ", "))
	}
	return nil
}

// ValidateFormats checks every format.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// SetDefaults fills unset output options. It is idempotent.
func (o *Options) SetDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Scale == 0 {
		o.Scale = sink.DefaultPNGScale
	}
	if o.PDFEngine == "" {
		o.PDFEngine = sink.PDFEngineNative
	}
}

// Validate applies defaults and checks the options.
func (o *Options) Validate() error {
	o.SetDefaults()
	if err := o.File.Validate(); err != nil {
		return err
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if o.Scale < 0 {
		return errs.New(errs.ErrCodeInvalidInput, "scale must be positive, got %g", o.Scale)
	}
	if err := sink.ValidatePDFEngine(o.PDFEngine); err != nil {
		return err
	}
	return nil
}

// ArtifactKeyOpts returns the cache key options of one rendered format.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	draw := o.DrawOptions()
	k := cache.ArtifactKeyOpts{
		Format:     format,
		Container:  draw.Container,
		SVGClass:   draw.SVGClass,
		Outlines:   o.Outlines,
		FontFamily: o.FontFamily,
		Background: o.Background,
	}
	switch format {
	case FormatPNG:
		k.Scale = o.Scale
	case FormatPDF:
		k.PDFEngine = o.PDFEngine
	}
	if format == FormatJSON {
		k.Outlines, k.FontFamily, k.Background = false, "", ""
	}
	return k
}
