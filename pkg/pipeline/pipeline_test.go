package pipeline

import (
	"testing"

	"github.com/matzehuels/chartframe/pkg/config"
	errs "github.com/matzehuels/chartframe/pkg/errors"
)

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"svg", false},
		{"json", false},
		{"pdf", false},
		{"png", false},
		{"SVG", true},
		{"gif", true},
		{"", true},
	}
	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
		if err != nil && !errs.Is(err, errs.ErrCodeInvalidFormat) {
			t.Errorf("ValidateFormat(%q) code = %s, want INVALID_FORMAT", tt.format, errs.GetCode(err))
		}
	}
}

func TestValidateFormats(t *testing.T) {
	if err := ValidateFormats([]string{"svg", "json"}); err != nil {
		t.Errorf("valid formats: %v", err)
	}
	if err := ValidateFormats([]string{"svg", "bmp"}); err == nil {
		t.Error("invalid format should fail")
	}
	if err := ValidateFormats(nil); err != nil {
		t.Errorf("empty formats: %v", err)
	}
}

func TestOptionsValidate(t *testing.T) {
	var opts Options
	if err := opts.Validate(); err != nil {
		t.Fatalf("Validate() error: %v", err)
	}
	if len(opts.Formats) != 1 || opts.Formats[0] != FormatSVG {
		t.Errorf("Formats = %v, want [svg]", opts.Formats)
	}
	if opts.Scale != 2 {
		t.Errorf("Scale = %v, want 2", opts.Scale)
	}
	if opts.PDFEngine != "native" {
		t.Errorf("PDFEngine = %q, want native", opts.PDFEngine)
	}

	again := opts
	if err := again.Validate(); err != nil || len(again.Formats) != 1 {
		t.Errorf("Validate() should be idempotent: %v %v", again.Formats, err)
	}

	pct, top := 10.0, 5.0
	bad := Options{File: config.File{Margins: &config.Margins{Percent: &pct, Top: &top}}}
	if err := bad.Validate(); !errs.Is(err, errs.ErrCodeInvalidConfig) {
		t.Errorf("mixed margins error = %v, want INVALID_CONFIG", err)
	}

	neg := Options{Scale: -1}
	if err := neg.Validate(); err == nil {
		t.Error("negative scale should fail")
	}

	engine := Options{PDFEngine: "ghostscript"}
	if err := engine.Validate(); !errs.Is(err, errs.ErrCodeInvalidInput) {
		t.Errorf("unknown pdf engine error = %v, want INVALID_INPUT", err)
	}
}

func TestArtifactKeyOpts(t *testing.T) {
	opts := Options{Outlines: true, Scale: 3}
	opts.SetDefaults()

	svg := opts.ArtifactKeyOpts(FormatSVG)
	if svg.Scale != 0 || !svg.Outlines {
		t.Errorf("svg key opts = %+v", svg)
	}
	if png := opts.ArtifactKeyOpts(FormatPNG); png.Scale != 3 {
		t.Errorf("png key opts = %+v", png)
	}
	if js := opts.ArtifactKeyOpts(FormatJSON); js.Outlines {
		t.Errorf("json key opts should ignore styling: %+v", js)
	}
	if pdf := opts.ArtifactKeyOpts(FormatPDF); pdf.PDFEngine != "native" || pdf.Scale != 0 {
		t.Errorf("pdf key opts = %+v", pdf)
	}
	if svg.PDFEngine != "" {
		t.Errorf("svg key opts should not carry the pdf engine: %+v", svg)
	}
}
