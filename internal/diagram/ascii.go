// Package diagram draws spring load charts and coil sketches for the terminal
// and for image files.
package diagram

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/alexiusacademia/gospring/internal/spring"
	"github.com/guptarohit/asciigraph"
)

// maxSketchCoils caps the rows of a coil sketch
const maxSketchCoils = 16

// DrawLoadChart plots the load curve as a terminal line graph
func DrawLoadChart(c spring.LoadCurve, width, height int) string {
	if len(c.Points) < 2 || width < 2 {
		return "  (no load curve: the spring has no rate)\n"
	}

	xmax := c.Points[len(c.Points)-1].X
	series := make([]float64, width)
	for i := range series {
		series[i] = interpolate(c.Points, xmax*float64(i)/float64(width-1))
	}

	graph := asciigraph.Plot(series,
		asciigraph.Height(height),
		asciigraph.Offset(4),
		asciigraph.Precision(2),
		asciigraph.Caption(fmt.Sprintf("%s vs %s, 0 to %.2f", c.YLabel, c.XLabel, xmax)),
	)

	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(graph)
	sb.WriteString("\n\n")
	for _, m := range c.Marks {
		sb.WriteString(fmt.Sprintf("  ● %-6s x = %9.3f   y = %9.3f\n", m.Label, m.X, m.Y))
	}
	return sb.String()
}

// interpolate evaluates the piecewise-linear curve at x
func interpolate(pts []spring.Point, x float64) float64 {
	if x <= pts[0].X {
		return pts[0].Y
	}
	for i := 1; i < len(pts); i++ {
		if x <= pts[i].X {
			span := pts[i].X - pts[i-1].X
			if span <= 0 {
				return pts[i].Y
			}
			t := (x - pts[i-1].X) / span
			return pts[i-1].Y + t*(pts[i].Y-pts[i-1].Y)
		}
	}
	return pts[len(pts)-1].Y
}

// DrawCoilSketch draws a side view of the helix with its main dimensions
func DrawCoilSketch(h spring.Helix) string {
	var sb strings.Builder

	widthChars := 24
	turns := int(math.Round(h.Turns()))
	if turns < 1 {
		turns = 1
	}
	rows := turns
	elided := false
	if rows > maxSketchCoils {
		rows = maxSketchCoils
		elided = true
	}

	sb.WriteString("\n")
	sb.WriteString("  SPRING SIDE VIEW\n")
	sb.WriteString("  ────────────────\n")
	sb.WriteString(fmt.Sprintf("  ├%s┤  D = %.2f mm\n", strings.Repeat("─", widthChars), 2*(h.MeanRadius+h.WireRadius)))

	for i := 0; i < rows; i++ {
		coil := fmt.Sprintf("  ●%s●", strings.Repeat("═", widthChars))
		if i%2 == 1 {
			coil = fmt.Sprintf("  ●%s●", strings.Repeat("─", widthChars))
		}
		switch {
		case i == 0:
			coil += fmt.Sprintf("  ┬ H = %.2f mm", h.Height)
		case i == 1:
			coil += fmt.Sprintf("  │ p = %.3f mm", h.Pitch)
		case i == rows-1:
			coil += "  ┴"
		case elided && i == rows/2:
			coil += fmt.Sprintf("  │ (%d turns, %d shown)", turns, rows)
		default:
			coil += "  │"
		}
		sb.WriteString(coil + "\n")
	}

	sb.WriteString(fmt.Sprintf("  wire d = %.2f mm\n", 2*h.WireRadius))
	return sb.String()
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := utf8.RuneCountInString(title)
	for _, line := range lines {
		if n := utf8.RuneCountInString(line); n > maxLen {
			maxLen = n
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(title, maxLen-4)))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(line, maxLen-4)))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}

func pad(s string, width int) string {
	if n := utf8.RuneCountInString(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}
