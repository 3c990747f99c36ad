package cli

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/chartframe/pkg/config"
	errs "github.com/matzehuels/chartframe/pkg/errors"
)

// layoutFlags are the layout settings shared by render, regions and tune.
// They override values from a configuration file only when set.
type layoutFlags struct {
	width, height, aspectRatio float64
	marginPercent              float64
	marginFraction             float64
	margins                    string
	strict                     bool
	container, svgClass        string

	header, subheader, footer, left, right string
}

func (lf *layoutFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.Float64Var(&lf.width, "width", 0, "canvas width in pixels (default 960)")
	fs.Float64Var(&lf.height, "height", 0, "canvas height in pixels (default width / aspect ratio)")
	fs.Float64Var(&lf.aspectRatio, "aspect-ratio", 0, "width / height ratio (default 16:9)")
	fs.Float64Var(&lf.marginPercent, "margin", 0, "uniform margin in percent of height (top, bottom) and width (left, right)")
	fs.Float64Var(&lf.marginFraction, "margin-fraction", 0, "uniform margin as a fraction in [0, 1]")
	fs.StringVar(&lf.margins, "margins", "", "explicit pixel margins: top,right,bottom,left")
	fs.BoolVar(&lf.strict, "strict", false, "reject invalid dimensions and margins")
	fs.StringVar(&lf.container, "container", "", "selector of the hosting element (default #root)")
	fs.StringVar(&lf.svgClass, "svg-class", "", "CSS class of the canvas (default D3ChartLayout)")
	fs.StringVar(&lf.header, "header", "", "header text")
	fs.StringVar(&lf.subheader, "subheader", "", "sub-header text (adds a sub-header)")
	fs.StringVar(&lf.footer, "footer", "", "footer text (empty hides the footer)")
	fs.StringVar(&lf.left, "left", "", "left axis label")
	fs.StringVar(&lf.right, "right", "", "right axis label")
}

// loadFile reads the optional configuration file named by args.
func loadFile(args []string) (config.File, error) {
	if len(args) == 0 {
		return config.File{}, nil
	}
	f, err := config.Load(args[0])
	if err != nil {
		return config.File{}, err
	}
	return *f, nil
}

// apply writes the flags that were set on the command line into f.
func (lf *layoutFlags) apply(changed func(string) bool, f *config.File) error {
	if changed("width") {
		f.Width = &lf.width
	}
	if changed("height") {
		f.Height = &lf.height
	}
	if changed("aspect-ratio") {
		f.AspectRatio = &lf.aspectRatio
	}
	if changed("strict") {
		f.Strict = lf.strict
	}
	if changed("container") {
		f.Container = lf.container
	}
	if changed("svg-class") {
		f.SVGClass = lf.svgClass
	}

	if err := lf.applyMargins(changed, f); err != nil {
		return err
	}

	for _, s := range []struct {
		flag  string
		value *string
		slot  func(*config.Labels) **config.Label
	}{
		{"header", &lf.header, func(l *config.Labels) **config.Label { return &l.Header }},
		{"subheader", &lf.subheader, func(l *config.Labels) **config.Label { return &l.Subheader }},
		{"footer", &lf.footer, func(l *config.Labels) **config.Label { return &l.Footer }},
		{"left", &lf.left, func(l *config.Labels) **config.Label { return &l.Left }},
		{"right", &lf.right, func(l *config.Labels) **config.Label { return &l.Right }},
	} {
		if !changed(s.flag) {
			continue
		}
		if f.Labels == nil {
			f.Labels = &config.Labels{}
		}
		label := s.slot(f.Labels)
		if *label == nil {
			*label = &config.Label{}
		}
		(*label).Text = s.value
	}
	return nil
}

func (lf *layoutFlags) applyMargins(changed func(string) bool, f *config.File) error {
	var set []string
	for _, name := range []string{"margin", "margin-fraction", "margins"} {
		if changed(name) {
			set = append(set, "--"+name)
		}
	}
	switch {
	case len(set) > 1:
		return errs.New(errs.ErrCodeInvalidInput, "use only one of %s", strings.Join(set, ", "))
	case changed("margin"):
		f.Margins = &config.Margins{Percent: &lf.marginPercent}
	case changed("margin-fraction"):
		f.Margins = &config.Margins{Fraction: &lf.marginFraction}
	case changed("margins"):
		sides, err := parseSides(lf.margins)
		if err != nil {
			return err
		}
		f.Margins = &config.Margins{Top: &sides[0], Right: &sides[1], Bottom: &sides[2], Left: &sides[3]}
	}
	return nil
}

// parseSides parses "top,right,bottom,left". A single value applies to all
// four sides.
func parseSides(s string) ([4]float64, error) {
	var out [4]float64
	parts := strings.Split(s, ",")
	if len(parts) != 1 && len(parts) != 4 {
		return out, errs.New(errs.ErrCodeInvalidMargin, "--margins needs 1 or 4 values, got %d", len(parts))
	}
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return out, errs.Wrap(errs.ErrCodeInvalidMargin, err, "--margins value %q", p)
		}
		out[i] = v
	}
	if len(parts) == 1 {
		out = [4]float64{out[0], out[0], out[0], out[0]}
	}
	return out, nil
}

// layoutOptions combines the configuration file and flags.
func (lf *layoutFlags) layoutOptions(cmd *cobra.Command, args []string) (config.File, error) {
	f, err := loadFile(args)
	if err != nil {
		return config.File{}, err
	}
	if err := lf.apply(cmd.Flags().Changed, &f); err != nil {
		return config.File{}, err
	}
	return f, f.Validate()
}
