package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/chartframe/pkg/layout"
)

func press(m TuneModel, keys ...tea.KeyMsg) TuneModel {
	for _, k := range keys {
		next, _ := m.Update(k)
		m = next.(TuneModel)
	}
	return m
}

var (
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyRight = tea.KeyMsg{Type: tea.KeyRight}
	keyLeft  = tea.KeyMsg{Type: tea.KeyLeft}
)

func runeKey(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func TestTuneModelAdjust(t *testing.T) {
	l := layout.MustNew(layout.Config{Width: 1000, Height: 500})
	m := NewTuneModel(l)

	m = press(m, keyRight)
	if got := l.Margins().Top; got != 55 {
		t.Errorf("top after +1%% = %v, want 55", got)
	}

	m = press(m, keyDown, keyLeft, keyLeft)
	if got := l.Margins().Right; got != 80 {
		t.Errorf("right after -2%% = %v, want 80", got)
	}

	m = press(m, keyUp, keyUp)
	if m.Cursor != 3 {
		t.Errorf("Cursor = %d, want 3 (left)", m.Cursor)
	}
	if m.Err != nil {
		t.Errorf("Err = %v", m.Err)
	}
}

func TestTuneModelClamps(t *testing.T) {
	l := layout.MustNew(layout.Config{Width: 100, Height: 100, Margins: layout.Explicit(layout.Margins{Top: 1})})
	m := NewTuneModel(l)

	m = press(m, keyLeft, keyLeft)
	if got := l.Margins().Top; got != 0 {
		t.Errorf("top = %v, want 0", got)
	}

	for i := 0; i < 200; i++ {
		m = press(m, keyRight)
	}
	mg := l.Margins()
	if mg.Top+mg.Bottom >= l.Height() {
		t.Errorf("margins %+v swallow the plot area", mg)
	}
	if l.PlotArea().Height <= 0 {
		t.Errorf("PlotArea().Height = %v, want > 0", l.PlotArea().Height)
	}
}

func TestTuneModelReset(t *testing.T) {
	l := layout.MustNew(layout.Config{Width: 1000, Height: 500})
	press(NewTuneModel(l), keyRight, keyRight, runeKey("r"))
	if got := l.Margins(); got != (layout.Margins{Top: 50, Right: 100, Bottom: 50, Left: 100}) {
		t.Errorf("margins after reset = %+v", got)
	}
}

func TestTuneModelQuit(t *testing.T) {
	l := layout.MustNew(layout.Config{})

	_, cmd := NewTuneModel(l).Update(runeKey("q"))
	if cmd == nil {
		t.Fatal("q should quit")
	}

	next, cmd := NewTuneModel(l).Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil || !next.(TuneModel).Saved {
		t.Error("enter should save and quit")
	}
}

func TestTuneModelView(t *testing.T) {
	l := layout.MustNew(layout.Config{Width: 1000, Height: 500})
	view := NewTuneModel(l).View()
	for _, want := range []string{"Tune Margins", "top", "50px", "plot 800 x 400 at (100, 50)"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestPreview(t *testing.T) {
	l := layout.MustNew(layout.Config{Width: 100, Height: 100, Margins: layout.Fraction(0.25)})
	lines := strings.Split(preview(l, 4, 4), "\n")
	if len(lines) != 4 {
		t.Fatalf("preview has %d rows, want 4", len(lines))
	}
	if !strings.Contains(lines[0], "+") || !strings.Contains(lines[0], "═") {
		t.Errorf("top row should show corners and header: %q", lines[0])
	}
	if !strings.Contains(lines[1], "·") || !strings.Contains(lines[1], "║") {
		t.Errorf("middle row should show labels and plot: %q", lines[1])
	}
}
