package cli

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/chartframe/pkg/layout"
	"github.com/matzehuels/chartframe/pkg/render/sink"
)

const (
	previewCols = 64
	previewRows = 18
)

var tuneSides = []string{"top", "right", "bottom", "left"}

var (
	tuneSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	tuneNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	tuneDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
	tunePlotStyle     = lipgloss.NewStyle().Foreground(colorBlue)
	tuneBandStyle     = lipgloss.NewStyle().Foreground(colorGreen)
	tuneCornerStyle   = lipgloss.NewStyle().Foreground(colorDim)
)

// TuneModel is the bubbletea model of the margin tuner. Arrow keys pick a
// side and grow or shrink it by 1% of the matching canvas dimension.
type TuneModel struct {
	Layout *layout.Layout
	Cursor int
	Saved  bool
	Err    error
}

// NewTuneModel returns a tuner editing l in place, starting on the first
// margin side.
func NewTuneModel(l *layout.Layout) TuneModel {
	return TuneModel{Layout: l}
}

func (m TuneModel) Init() tea.Cmd { return nil }

func (m TuneModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "enter", "s":
		m.Saved = true
		return m, tea.Quit
	case "up", "k":
		m.Cursor = (m.Cursor + len(tuneSides) - 1) % len(tuneSides)
	case "down", "j", "tab":
		m.Cursor = (m.Cursor + 1) % len(tuneSides)
	case "right", "l", "+":
		m.adjust(1)
	case "left", "h", "-":
		m.adjust(-1)
	case "shift+right", "L":
		m.adjust(5)
	case "shift+left", "H":
		m.adjust(-5)
	case "r":
		m.Err = m.Layout.SetMargins(layout.MarginSpec{})
	}
	return m, nil
}

// adjust moves the selected margin by steps percent. Margins never go
// negative and never swallow the plot area.
func (m *TuneModel) adjust(steps int) {
	mg := m.Layout.Margins()
	w, h := m.Layout.Width(), m.Layout.Height()

	side := tuneSides[m.Cursor]
	var v *float64
	var dim, other float64
	switch side {
	case "top":
		v, dim, other = &mg.Top, h, mg.Bottom
	case "bottom":
		v, dim, other = &mg.Bottom, h, mg.Top
	case "left":
		v, dim, other = &mg.Left, w, mg.Right
	case "right":
		v, dim, other = &mg.Right, w, mg.Left
	}
	next := *v + float64(steps)*dim/100
	if next < 0 {
		next = 0
	}
	if next+other >= dim {
		return
	}
	*v = next
	m.Err = m.Layout.SetMargins(layout.Explicit(mg))
}

func (m TuneModel) View() string {
	var b strings.Builder
	b.WriteString(StyleTitle.Render("Tune Margins"))
	b.WriteString("\n")
	b.WriteString(tuneDimStyle.Render("↑/↓ side  ←/→ ±1%  H/L ±5%  r reset  ⏎ save  q quit"))
	b.WriteString("\n\n")

	mg := m.Layout.Margins()
	values := []float64{mg.Top, mg.Right, mg.Bottom, mg.Left}
	for i, side := range tuneSides {
		line := fmt.Sprintf("%-7s %7spx", side, num(values[i]))
		if i == m.Cursor {
			b.WriteString(tuneSelectedStyle.Render("▸ " + line))
		} else {
			b.WriteString(tuneNormalStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}

	plot := m.Layout.PlotArea()
	b.WriteString("\n")
	b.WriteString(tuneDimStyle.Render(fmt.Sprintf("plot %s x %s at (%s, %s)", num(plot.Width), num(plot.Height), num(plot.X), num(plot.Y))))
	b.WriteString("\n\n")
	b.WriteString(preview(m.Layout, previewCols, previewRows))
	if m.Err != nil {
		b.WriteString("\n")
		b.WriteString(StyleWarning.Render(m.Err.Error()))
	}
	return b.String()
}

// preview draws the regions as a cols x rows character grid.
func preview(l *layout.Layout, cols, rows int) string {
	areas := l.Areas()
	var b strings.Builder
	for row := 0; row < rows; row++ {
		y := (float64(row) + 0.5) * l.Height() / float64(rows)
		for col := 0; col < cols; col++ {
			x := (float64(col) + 0.5) * l.Width() / float64(cols)
			b.WriteString(cell(regionAt(areas, x, y)))
		}
		if row < rows-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func regionAt(areas map[layout.Region]layout.Area, x, y float64) layout.Region {
	for _, r := range layout.Regions() {
		a := areas[r]
		if x >= a.X && x < a.Right() && y >= a.Y && y < a.Bottom() {
			return r
		}
	}
	return -1
}

func cell(r layout.Region) string {
	switch r {
	case layout.RegionPlot:
		return tunePlotStyle.Render("·")
	case layout.RegionHeader, layout.RegionFooter:
		return tuneBandStyle.Render("═")
	case layout.RegionLeftLabel, layout.RegionRightLabel:
		return tuneBandStyle.Render("║")
	case layout.RegionTopLeft, layout.RegionTopRight, layout.RegionBottomLeft, layout.RegionBottomRight:
		return tuneCornerStyle.Render("+")
	}
	return " "
}

func (c *CLI) tuneCommand() *cobra.Command {
	var (
		lf     layoutFlags
		output string
	)

	cmd := &cobra.Command{
		Use:   "tune [config.toml]",
		Short: "Adjust margins interactively and save the frame as svg",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := lf.layoutOptions(cmd, args)
			if err != nil {
				return err
			}
			l, err := layout.New(f.LayoutConfig())
			if err != nil {
				return err
			}

			p := tea.NewProgram(NewTuneModel(l), tea.WithContext(cmd.Context()))
			final, err := p.Run()
			if err != nil {
				return fmt.Errorf("tuner: %w", err)
			}
			m := final.(TuneModel)
			if !m.Saved {
				printInfo("Discarded")
				return nil
			}

			draw := f.DrawOptions()
			svg := sink.RenderSVG(m.Layout, sink.WithContainer(draw.Container), sink.WithClass(draw.SVGClass))
			if err := os.WriteFile(output, svg, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			mg := m.Layout.Margins()
			printSuccess("Saved tuned frame")
			printFile(output)
			printDetail("margins = %s,%s,%s,%s", num(mg.Top), num(mg.Right), num(mg.Bottom), num(mg.Left))
			printNextStep("Reuse these margins", fmt.Sprintf("%s render --margins %s,%s,%s,%s", appName, num(mg.Top), num(mg.Right), num(mg.Bottom), num(mg.Left)))
			return nil
		},
	}
	lf.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", defaultOutputBase+".svg", "output svg file")
	return cmd
}
