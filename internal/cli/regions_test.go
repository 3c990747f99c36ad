package cli

import (
	"bytes"
	"strings"
	"testing"
)

func TestRegionsCommand(t *testing.T) {
	var buf bytes.Buffer
	prev := stdout
	stdout = &buf
	defer func() { stdout = prev }()

	root := New(&bytes.Buffer{}, LogInfo).RootCommand()
	root.SetArgs([]string{"regions", "--width", "960", "--subheader", "Q3"})
	if err := root.Execute(); err != nil {
		t.Fatalf("regions error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"960 x 540", "plot", "plotGroup", "bottom-right", "432", "subheader", "Q3", "-90"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestNum(t *testing.T) {
	tests := map[float64]string{96: "96", 13.5: "13.5", 1.0 / 3: "0.33", 540: "540"}
	for v, want := range tests {
		if got := num(v); got != want {
			t.Errorf("num(%v) = %q, want %q", v, got, want)
		}
	}
}
