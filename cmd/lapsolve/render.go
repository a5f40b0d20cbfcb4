// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/katalvlaran/lvlap/instance"
)

var (
	colorCyan  = lipgloss.Color("36")
	colorGreen = lipgloss.Color("35")
	colorRed   = lipgloss.Color("167")
	colorDim   = lipgloss.Color("240")
)

// maxShownPairs caps the assignment column of the text table.
const maxShownPairs = 12

// newTable returns a bordered table whose colors follow the terminal
// capabilities of w; plain writers get no escape codes.
func newTable(w io.Writer, headers ...string) (*table.Table, *lipgloss.Renderer) {
	r := lipgloss.NewRenderer(w)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(r.NewStyle().Foreground(colorDim)).
		Headers(headers...)

	return t, r
}

func renderReports(w io.Writer, reports []instance.Report) error {
	t, r := newTable(w, "Instance", "Strategy", "Status", "Cost", "Assignment", "Phases", "ms")
	header := r.NewStyle().Bold(true).Foreground(colorCyan).Padding(0, 1)
	cell := r.NewStyle().Padding(0, 1)
	for _, rep := range reports {
		t.Row(
			rep.Name,
			rep.Strategy,
			statusText(rep),
			strconv.FormatFloat(rep.TotalCost, 'g', 10, 64),
			shortList(rep.Assignment),
			strconv.Itoa(rep.Augmentations),
			strconv.FormatFloat(rep.ElapsedMS, 'f', 3, 64),
		)
	}
	t.StyleFunc(func(row, col int) lipgloss.Style {
		switch {
		case row == table.HeaderRow:
			return header
		case col == 2 && reports[row].Failed():
			return cell.Foreground(colorRed)
		case col == 2:
			return cell.Foreground(colorGreen)
		}
		return cell
	})

	_, err := fmt.Fprintln(w, t.Render())

	return err
}

func statusText(rep instance.Report) string {
	switch {
	case len(rep.BlockingRows) > 0:
		return rep.Status + " rows " + shortList(rep.BlockingRows)
	case len(rep.BlockingCols) > 0:
		return rep.Status + " cols " + shortList(rep.BlockingCols)
	}

	return rep.Status
}

func shortList(xs []int) string {
	if len(xs) == 0 {
		return "-"
	}
	n := min(len(xs), maxShownPairs)
	parts := make([]string, n)
	for i := range parts {
		parts[i] = strconv.Itoa(xs[i])
	}
	s := strings.Join(parts, " ")
	if len(xs) > n {
		s += fmt.Sprintf(" …(+%d)", len(xs)-n)
	}

	return "[" + s + "]"
}
