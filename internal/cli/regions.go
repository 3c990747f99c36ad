package cli

import (
	"fmt"
	"math"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/chartframe/pkg/layout"
)

func (c *CLI) regionsCommand() *cobra.Command {
	var lf layoutFlags

	cmd := &cobra.Command{
		Use:   "regions [config.toml]",
		Short: "Print the region rectangles and label placements",
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
			printRegions(l)
			return nil
		},
	}
	lf.register(cmd)
	return cmd
}

func printRegions(l *layout.Layout) {
	m := l.Margins()
	fmt.Fprintln(stdout, StyleTitle.Render("Canvas"))
	printKeyValue("size", fmt.Sprintf("%s x %s", num(l.Width()), num(l.Height())))
	printKeyValue("margins", fmt.Sprintf("top %s  right %s  bottom %s  left %s", num(m.Top), num(m.Right), num(m.Bottom), num(m.Left)))
	fmt.Fprintln(stdout)

	fmt.Fprintln(stdout, regionsTable(l))
	if placed := l.Placements(); len(placed) > 0 {
		fmt.Fprintln(stdout, labelsTable(placed))
	} else {
		printInfo("No labels to place")
	}
}

// headerRow is the row index lipgloss passes to StyleFunc for headers.
const headerRow = -1

var headerStyle = lipgloss.NewStyle().Foreground(colorGray).Bold(true)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(headers...)
}

func regionsTable(l *layout.Layout) string {
	rows := make([][]string, 0, len(layout.Regions()))
	for _, r := range layout.Regions() {
		a := l.Area(r)
		rows = append(rows, []string{r.String(), r.GroupID(), num(a.X), num(a.Y), num(a.Width), num(a.Height)})
	}
	t := newTable("Region", "Group", "X", "Y", "Width", "Height").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == headerRow:
				return headerStyle
			case row == 0:
				return lipgloss.NewStyle().Foreground(colorCyan)
			case col >= 2:
				return lipgloss.NewStyle().Foreground(colorWhite)
			}
			return lipgloss.NewStyle().Foreground(colorGray)
		})
	return t.Render()
}

func labelsTable(placed []layout.PlacedLabel) string {
	rows := make([][]string, 0, len(placed))
	for _, p := range placed {
		rows = append(rows, []string{
			p.Slot.String(), p.Label.ID, p.Label.Text,
			num(p.Placement.X), num(p.Placement.Y), num(p.Placement.FontSize), num(p.Placement.Rotation),
		})
	}
	t := newTable("Slot", "ID", "Text", "X", "Y", "Font", "Rotate").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == headerRow {
				return headerStyle
			}
			return lipgloss.NewStyle()
		})
	return t.Render()
}

// num formats a pixel value with at most two decimals.
func num(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}
