package cmd

import (
	"testing"

	"github.com/alexiusacademia/gospring/internal/spring"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func TestFormatLine(t *testing.T) {
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = false })

	tests := []struct {
		name string
		line spring.Line
		want string
	}{
		{"text", spring.Line{Label: "Material", Text: "Music wire"}, "Music wire"},
		{"value with unit", spring.Line{Label: "Rate", Value: 2.719474, Unit: "N/mm", Precision: 3}, "2.719 N/mm"},
		{"unitless", spring.Line{Label: "Index", Value: 9, Precision: 2}, "9.00"},
		{"safe", spring.Line{Label: "FoS", Value: 1.5, Precision: 2, Safety: true}, "1.50 ✓"},
		{"unsafe", spring.Line{Label: "FoS", Value: 0.8, Precision: 2, Safety: true}, "0.80 ⚠"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatLine(tt.line))
		})
	}
}

func TestFormatCell(t *testing.T) {
	assert.Equal(t, "-", formatCell(nil))
	assert.Equal(t, "2", formatCell(2.0))
	assert.Equal(t, "0.75", formatCell(0.75))
	assert.Equal(t, "true", formatCell(true))
	assert.Equal(t, "Hinged", formatCell("Hinged"))
}

func TestSummaryLines(t *testing.T) {
	d := spring.Design{Name: "clip", Family: "Torsion"}
	ev := &spring.Evaluation{Info: spring.Info{OuterDiameterAtFree: 20, WireDiameter: 2, Rate: 287.5}}

	lines := summaryLines(d, ev)
	assert.Contains(t, lines, "OD x d:  20.00 x 2.00 mm")
	assert.Contains(t, lines, "Rate:    287.500 N·mm/rad")
}
