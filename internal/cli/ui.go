package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// stdout receives all user-facing output
var stdout io.Writer = os.Stdout

var (
	colorCyan  = lipgloss.Color("36")
	colorGreen = lipgloss.Color("35")
	colorWhite = lipgloss.Color("255")
	colorGray  = lipgloss.Color("245")
	colorDim   = lipgloss.Color("240")
)

var (
	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleDim     = lipgloss.NewStyle().Foreground(colorDim)
	styleValue   = lipgloss.NewStyle().Foreground(colorWhite)
	styleSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleHeader  = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	styleKey     = lipgloss.NewStyle().Foreground(colorGray).Width(14)
)

const (
	iconSuccess = "✓"
	iconArrow   = "→"
)

func printTitle(format string, args ...any) {
	fmt.Fprintln(stdout, styleTitle.Render(fmt.Sprintf(format, args...)))
}

func printSuccess(format string, args ...any) {
	fmt.Fprintln(stdout, styleSuccess.Render(iconSuccess)+" "+fmt.Sprintf(format, args...))
}

func printFile(path string) {
	fmt.Fprintln(stdout, "  "+styleDim.Render(iconArrow)+" "+styleValue.Render(path))
}

func printKeyValue(key, value string) {
	fmt.Fprintln(stdout, styleKey.Render(key)+" "+styleValue.Render(value))
}

// printTable prints rows under headers with a rounded border
func printTable(headers []string, rows [][]string) {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleHeader.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
	fmt.Fprintln(stdout, t.Render())
}

// fmtRow formats numbers with %.6g
func fmtRow(vals ...float64) (row []string) {
	row = make([]string, len(vals))
	for i, v := range vals {
		row[i] = fmt.Sprintf("%.6g", v)
	}
	return
}
