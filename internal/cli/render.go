package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/chartframe/pkg/pipeline"
	"github.com/matzehuels/chartframe/pkg/render"
	"github.com/matzehuels/chartframe/pkg/render/sink"
)

const defaultOutputBase = "chart"

type renderOpts struct {
	layout     layoutFlags
	formats    string
	output     string
	outlines   bool
	fontFamily string
	background string
	scale      float64
	pdfEngine  string
	noCache    bool
	refresh    bool
}

func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [config.toml]",
		Short: "Render a chart frame to svg, json, pdf or png",
		Long: `Render computes the chart layout from an optional TOML configuration file
and command-line flags, then writes one file per requested format.

Flags override values from the configuration file.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			popts, err := opts.pipelineOptions(cmd, args)
			if err != nil {
				return err
			}
			return c.runRender(cmd.Context(), popts, outputPaths(opts.output, args, popts.Formats), opts.noCache)
		},
	}

	opts.layout.register(cmd)
	fs := cmd.Flags()
	fs.StringVarP(&opts.formats, "format", "f", "", "output format(s): svg (default), json, pdf, png (comma-separated)")
	fs.StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	fs.BoolVar(&opts.outlines, "outlines", false, "outline every region")
	fs.StringVar(&opts.fontFamily, "font-family", "", "label font family")
	fs.StringVar(&opts.background, "background", "", "canvas background color")
	fs.Float64Var(&opts.scale, "scale", 0, "png scale factor (default 2)")
	fs.StringVar(&opts.pdfEngine, "pdf-engine", sink.PDFEngineNative, "pdf engine: native or rsvg")
	fs.BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")
	fs.BoolVar(&opts.refresh, "refresh", false, "re-render even when cached")

	return cmd
}

func (o *renderOpts) pipelineOptions(cmd *cobra.Command, args []string) (pipeline.Options, error) {
	file, err := o.layout.layoutOptions(cmd, args)
	if err != nil {
		return pipeline.Options{}, err
	}
	popts := pipeline.Options{
		File:       file,
		Formats:    parseFormats(o.formats),
		Outlines:   o.outlines,
		FontFamily: o.fontFamily,
		Background: o.background,
		Scale:      o.scale,
		PDFEngine:  o.pdfEngine,
		Refresh:    o.refresh,
	}
	if err := popts.Validate(); err != nil {
		return pipeline.Options{}, err
	}
	return popts, nil
}

func (c *CLI) runRender(ctx context.Context, opts pipeline.Options, paths map[string]string, noCache bool) error {
	logger := loggerFromContext(ctx)

	if needsConverter(opts) && !render.ConverterAvailable() {
		printWarning("png output and the rsvg pdf engine need rsvg-convert on PATH")
	}

	runner, err := c.newRunner(noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	var spin *Spinner
	if needsConverter(opts) {
		spin = newSpinnerWithContext(ctx, "Converting with rsvg-convert...")
		spin.Start()
	}
	prog := newProgress(logger)
	opts.Logger = logger
	res, err := runner.Execute(ctx, opts)
	if spin != nil {
		spin.Stop()
	}
	if err != nil {
		printError("Render failed")
		return err
	}

	for _, format := range opts.Formats {
		path := paths[format]
		if err := os.WriteFile(path, res.Artifacts[format], 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
	}
	prog.done(fmt.Sprintf("Rendered %d file(s)", len(opts.Formats)))

	printSuccess("Rendered chart frame")
	printRenderStats(res.Layout.Width(), res.Layout.Height(), res.Stats.Labels, res.CacheInfo.RenderHit)
	for _, format := range opts.Formats {
		printFile(paths[format])
	}
	if slices.Contains(opts.Formats, pipeline.FormatSVG) {
		printNextStep("Inspect the regions", appName+" regions")
	}
	return nil
}

// parseFormats splits the --format value. Empty means svg.
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatSVG}
	}
	var out []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" && !slices.Contains(out, f) {
			out = append(out, f)
		}
	}
	return out
}

// needsConverter reports whether any requested format shells out to
// rsvg-convert.
func needsConverter(opts pipeline.Options) bool {
	if slices.Contains(opts.Formats, pipeline.FormatPNG) {
		return true
	}
	return opts.PDFEngine == sink.PDFEngineRSVG && slices.Contains(opts.Formats, pipeline.FormatPDF)
}

// outputPaths maps each format to its output file. A single format writes to
// --output verbatim; multiple formats share a base path with per-format
// extensions.
func outputPaths(output string, args []string, formats []string) map[string]string {
	paths := make(map[string]string, len(formats))
	if len(formats) == 1 && output != "" {
		paths[formats[0]] = output
		return paths
	}
	base := basePath(output, args)
	for _, f := range formats {
		paths[f] = base + "." + f
	}
	return paths
}

// basePath strips a known format extension from output, or derives the base
// from the configuration file name.
func basePath(output string, args []string) string {
	if output != "" {
		ext := filepath.Ext(output)
		if slices.Contains(pipeline.Formats, strings.TrimPrefix(ext, ".")) {
			return strings.TrimSuffix(output, ext)
		}
		return output
	}
	if len(args) > 0 {
		return strings.TrimSuffix(args[0], filepath.Ext(args[0]))
	}
	return defaultOutputBase
}
