package diagram

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/alexiusacademia/gospring/internal/material"
	"github.com/alexiusacademia/gospring/internal/spring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func evaluated(t *testing.T) *spring.Evaluation {
	t.Helper()
	m, err := material.Lookup(material.DefaultKey)
	require.NoError(t, err)
	d := spring.NewCompressionDesign("valve", spring.DefaultCompression(m))
	ev, err := d.Evaluate()
	require.NoError(t, err)
	return ev
}

func TestInterpolate(t *testing.T) {
	pts := []spring.Point{{X: 0, Y: 0}, {X: 2, Y: 4}, {X: 4, Y: 4}}

	assert.Equal(t, 0.0, interpolate(pts, -1))
	assert.Equal(t, 2.0, interpolate(pts, 1))
	assert.Equal(t, 4.0, interpolate(pts, 3))
	assert.Equal(t, 4.0, interpolate(pts, 10))
}

func TestDrawLoadChart(t *testing.T) {
	ev := evaluated(t)
	out := DrawLoadChart(ev.Curve, 40, 8)

	assert.Contains(t, out, "Force (N) vs Deflection (mm)")
	assert.Contains(t, out, "F1")
	assert.Contains(t, out, "Solid")

	empty := DrawLoadChart(spring.LoadCurve{}, 40, 8)
	assert.Contains(t, empty, "no load curve")
}

func TestDrawCoilSketch(t *testing.T) {
	out := DrawCoilSketch(spring.Helix{MeanRadius: 9, Pitch: 2.3, Height: 25, WireRadius: 1})
	assert.Contains(t, out, "D = 20.00 mm")
	assert.Contains(t, out, "H = 25.00 mm")
	assert.Equal(t, 11, strings.Count(out, "●")/2, "one row per turn")

	long := DrawCoilSketch(spring.Helix{MeanRadius: 9, Pitch: 1, Height: 100, WireRadius: 0.5})
	assert.Contains(t, long, "(100 turns, 16 shown)")

	flat := DrawCoilSketch(spring.Helix{})
	assert.Contains(t, flat, "wire d = 0.00 mm")
}

func TestDrawSummaryBox(t *testing.T) {
	out := DrawSummaryBox("RESULT", []string{"Rate = 2.719 N/mm", "Energy = 5.1 N·mm"})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 5)

	width := utf8.RuneCountInString(lines[0])
	for _, l := range lines {
		assert.Equal(t, width, utf8.RuneCountInString(l), "line %q", l)
	}
}

func TestExportLoadChart(t *testing.T) {
	ev := evaluated(t)
	dir := t.TempDir()

	for _, name := range []string{"chart.png", "chart.svg", "nested/chart.pdf"} {
		t.Run(name, func(t *testing.T) {
			path, err := ExportLoadChart(ev.Curve, "valve", filepath.Join(dir, name))
			require.NoError(t, err)
			info, err := os.Stat(path)
			require.NoError(t, err)
			assert.Greater(t, info.Size(), int64(0))
		})
	}

	path, err := ExportLoadChart(ev.Curve, "valve", filepath.Join(dir, "chart"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "chart.png"), path)

	_, err = ExportLoadChart(spring.LoadCurve{}, "empty", filepath.Join(dir, "empty.png"))
	assert.Error(t, err)
}

func TestRenderLoadChartPNG(t *testing.T) {
	png, err := RenderLoadChartPNG(evaluated(t).Curve, "valve")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG")))
}
