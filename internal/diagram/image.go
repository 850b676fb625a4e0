package diagram

import (
	"bytes"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexiusacademia/gospring/internal/spring"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

const (
	chartWidth  = 8 * vg.Inch
	chartHeight = 6 * vg.Inch
)

// newLoadPlot builds the load/deflection plot of a spring
func newLoadPlot(c spring.LoadCurve, title string) (*plot.Plot, error) {
	if len(c.Points) == 0 {
		return nil, fmt.Errorf("load curve has no points")
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = c.XLabel
	p.Y.Label.Text = c.YLabel
	p.Add(plotter.NewGrid())

	pts := make(plotter.XYs, len(c.Points))
	for i, pt := range c.Points {
		pts[i] = plotter.XY{X: pt.X, Y: pt.Y}
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, err
	}
	line.LineStyle.Width = vg.Points(2)
	line.LineStyle.Color = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	p.Add(line)

	if len(c.Marks) > 0 {
		marks := make(plotter.XYs, len(c.Marks))
		labels := make([]string, len(c.Marks))
		for i, m := range c.Marks {
			marks[i] = plotter.XY{X: m.X, Y: m.Y}
			labels[i] = fmt.Sprintf("%s (%.2f, %.2f)", m.Label, m.X, m.Y)
		}

		scatter, err := plotter.NewScatter(marks)
		if err != nil {
			return nil, err
		}
		scatter.GlyphStyle.Color = color.RGBA{R: 255, G: 0, B: 0, A: 255}
		scatter.GlyphStyle.Radius = vg.Points(4)
		scatter.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(scatter)

		l, err := plotter.NewLabels(plotter.XYLabels{XYs: marks, Labels: labels})
		if err != nil {
			return nil, err
		}
		for i := range l.TextStyle {
			l.TextStyle[i].XAlign = draw.XLeft
		}
		l.Offset = vg.Point{X: vg.Points(6), Y: vg.Points(-4)}
		p.Add(l)
	}

	return p, nil
}

// ExportLoadChart saves the load/deflection chart. The format follows the
// file extension (.png, .svg, .pdf); anything else gets .png appended.
func ExportLoadChart(c spring.LoadCurve, title, filename string) (string, error) {
	p, err := newLoadPlot(c, title)
	if err != nil {
		return "", err
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png", ".svg", ".pdf":
	default:
		filename += ".png"
	}

	if dir := filepath.Dir(filename); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}

	if err := p.Save(chartWidth, chartHeight, filename); err != nil {
		return "", fmt.Errorf("failed to save chart: %w", err)
	}
	return filename, nil
}

// RenderLoadChartPNG renders the chart into memory for embedding in reports
func RenderLoadChartPNG(c spring.LoadCurve, title string) ([]byte, error) {
	p, err := newLoadPlot(c, title)
	if err != nil {
		return nil, err
	}
	wt, err := p.WriterTo(chartWidth, chartHeight, "png")
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if _, err := wt.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to render chart: %w", err)
	}
	return buf.Bytes(), nil
}
