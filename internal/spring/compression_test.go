package spring

import (
	"math"
	"reflect"
	"testing"

	"github.com/alexiusacademia/gospring/internal/material"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func musicWire(t *testing.T) material.Material {
	t.Helper()
	m, err := material.Lookup(material.DefaultKey)
	require.NoError(t, err)
	return m
}

// assertAllFinite fails for any NaN or infinite float64 field of v
func assertAllFinite(t *testing.T, v any) {
	t.Helper()
	rv := reflect.ValueOf(v)
	for i := 0; i < rv.NumField(); i++ {
		f := rv.Field(i)
		if f.Kind() != reflect.Float64 {
			continue
		}
		x := f.Float()
		assert.False(t, math.IsNaN(x) || math.IsInf(x, 0), "%s = %v", rv.Type().Field(i).Name, x)
	}
}

func TestComputeCompression_Scenario(t *testing.T) {
	in := DefaultCompression(musicWire(t))
	r := ComputeCompression(in)

	assert.Equal(t, 18.0, r.MeanDiameter)
	assert.Equal(t, 16.0, r.InsideDiameter)
	assert.Equal(t, 9.0, r.SpringIndex)
	assert.Equal(t, 10.0, r.CoilsActive)

	want := (79.3e9 / 1e6) * 18.0 / (8 * 10 * math.Pow(9, 4))
	assert.InDelta(t, want, r.Rate, 1e-12)
	assert.InDelta(t, 2.71947, r.Rate, 1e-5)

	kc := (4*9.0 - 1) / (4*9.0 - 4)
	assert.InDelta(t, kc, r.CurvatureKc, 1e-12)
	assert.InDelta(t, kc+0.615/9, r.CurvatureKs, 1e-12)

	assert.InDelta(t, 2/want, r.Deflect1, 1e-12)
	assert.InDelta(t, 6/want, r.Deflect2, 1e-12)
	assert.InDelta(t, 25-2/want, r.Length1, 1e-12)
	assert.InDelta(t, r.Length1-r.Length2, r.Stroke, 1e-12)
	assert.Equal(t, 22.0, r.SolidLength)
	assert.InDelta(t, want*3, r.ForceSolid, 1e-12)

	sf := r.CurvatureKs * 8 * 18 / (math.Pi * 8)
	assert.InDelta(t, sf*2, r.Stress1, 1e-9)
	assert.InDelta(t, sf*6, r.Stress2, 1e-9)

	assert.InDelta(t, (25-2.0)/10, r.Pitch, 1e-12)
	assert.InDelta(t, math.Hypot(25, 10*math.Pi*18), r.WireLength, 1e-9)
	assert.InDelta(t, 7850e-9*math.Pi*4/4*r.WireLength, r.Weight, 1e-12)
	assert.InDelta(t, 0.5*want*(r.Deflect2*r.Deflect2-r.Deflect1*r.Deflect1), r.Energy, 1e-12)
	assert.Equal(t, 0.0, r.CycleLife)

	assert.Greater(t, r.Tensile, 0.0)
	assert.InDelta(t, r.Tensile*0.45, r.StressLimStat, 1e-9)
	assert.InDelta(t, r.StressLimStat/r.Stress2, r.FS2, 1e-12)
	assertAllFinite(t, r)
}

func TestCompressionRate_MatchesClosedForm(t *testing.T) {
	tests := []struct {
		outer, wire, coils, g float64
	}{
		{20, 2, 10, 79.3e9},
		{12.5, 1.2, 7.5, 77.2e9},
		{50, 6, 4, 69e9},
		{8, 0.5, 22, 79.3e9},
	}

	for _, tt := range tests {
		D := tt.outer - tt.wire
		want := (tt.g / 1e6) * D / (8 * tt.coils * math.Pow(D/tt.wire, 4))
		got := CompressionRate(1.0, tt.g, D, tt.wire, tt.coils)
		assert.InDelta(t, want, got, want*1e-12)
	}
}

func TestCompressionRate_Monotonic(t *testing.T) {
	base := CompressionRate(1, 79.3e9, 18, 2, 10)

	assert.Greater(t, CompressionRate(1, 79.3e9, 18, 2, 9), base, "fewer active coils is stiffer")

	// Thinner wire at the same outside diameter.
	assert.Less(t, CompressionRate(1, 79.3e9, 18.2, 1.8, 10), base, "thinner wire is softer")
}

func TestComputeCompression_DegenerateGeometry(t *testing.T) {
	m := musicWire(t)
	tests := []struct {
		name   string
		modify func(*CompressionInputs)
	}{
		{"wire equals outer", func(in *CompressionInputs) { in.WireDiameter = in.OuterDiameterAtFree }},
		{"wire exceeds outer", func(in *CompressionInputs) { in.WireDiameter = 30 }},
		{"zero wire", func(in *CompressionInputs) { in.WireDiameter = 0 }},
		{"no coils", func(in *CompressionInputs) { in.CoilsTotal = 0 }},
		{"all coils inactive", func(in *CompressionInputs) { in.InactiveCoils = in.CoilsTotal }},
		{"negative active coils", func(in *CompressionInputs) { in.InactiveCoils = 12 }},
		{"zero modulus", func(in *CompressionInputs) { in.Material.ShearModulus = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := DefaultCompression(m)
			tt.modify(&in)
			r := ComputeCompression(in)

			assert.Equal(t, 0.0, r.Rate)
			assert.Equal(t, 0.0, r.Deflect1)
			assert.Equal(t, 0.0, r.ForceSolid)
			assertAllFinite(t, r)
		})
	}
}

func TestComputeCompression_NeutralSafetyWithoutStress(t *testing.T) {
	in := DefaultCompression(musicWire(t))
	in.Force1, in.Force2 = 0, 0
	r := ComputeCompression(in)

	assert.Equal(t, 1.0, r.FS1)
	assert.Equal(t, 1.0, r.FS2)
}

func TestComputeCompression_Idempotent(t *testing.T) {
	in := DefaultCompression(musicWire(t))
	in.EndType = EndTaperedClosedGround
	in.InactiveCoils = 2
	in.AddCoilsAtSolid = -0.5

	first := ComputeCompression(in)
	second := ComputeCompression(in)
	assert.Equal(t, first, second)
}

func TestComputeCompression_FreeLengthAtSolid(t *testing.T) {
	in := DefaultCompression(musicWire(t))
	in.LengthAtFree = 22 // 2 mm wire × (10 + 1) coils
	r := ComputeCompression(in)

	require.Equal(t, r.SolidLength, in.LengthAtFree)
	assert.Equal(t, 0.0, r.ForceSolid)
	assert.InDelta(t, 100*r.Deflect2/2+100, r.PercentAvailDeflect, 1e-9)
	assertAllFinite(t, r)
}

func TestPercentAvailDeflect_ContinuousAtBoundary(t *testing.T) {
	// travel exactly one wire diameter takes the guarded branch
	atBoundary := percentAvailDeflect(24, 22, 2, 1)
	justAbove := percentAvailDeflect(24+1e-9, 22, 2, 1)
	assert.InDelta(t, 50.0, atBoundary, 1e-9)
	assert.InDelta(t, atBoundary, justAbove, 1e-6)

	assert.InDelta(t, 25.0, percentAvailDeflect(30, 22, 2, 2), 1e-12)
}

func TestCompressionPitch_ByEndType(t *testing.T) {
	const L, d, total, inactive = 30.0, 2.0, 12.0, 2.0
	active := total - inactive

	tests := []struct {
		end  CompressionEnd
		want float64
	}{
		{EndOpen, (L - d) / active},
		{EndOpenGround, L / total},
		{EndClosed, (L - 3*d) / active},
		{EndClosedGround, (L - 2*d) / active},
		{EndTaperedClosedGround, (L - 1.5*d) / active},
		{EndPigTail, (L - 2*d) / active},
		{EndUserSpecified, (L - 3*d) / active},
		{CompressionEndUnspecified, (L - 3*d) / active},
	}

	for _, tt := range tests {
		t.Run(tt.end.String(), func(t *testing.T) {
			assert.InDelta(t, tt.want, compressionPitch(tt.end, L, d, total, inactive, active), 1e-12)
		})
	}

	assert.Equal(t, 0.0, compressionPitch(EndOpen, L, d, total, inactive, 0))
}

func TestComputeCompression_TaperedWireLength(t *testing.T) {
	in := DefaultCompression(musicWire(t))
	open := ComputeCompression(in)
	in.EndType = EndTaperedClosedGround
	tapered := ComputeCompression(in)

	assert.InDelta(t, open.WireLength-3.926*18, tapered.WireLength, 1e-9)
}

func TestComputeCompression_CycleLifeFoS(t *testing.T) {
	in := DefaultCompression(musicWire(t))
	r := ComputeCompression(in)

	se2 := r.StressLimEndur / 2
	avg := (r.Stress1 + r.Stress2) / 2
	rng := (r.Stress2 - r.Stress1) / 2
	want := r.StressLimStat / (r.CurvatureKc*rng*(r.StressLimStat-se2)/se2 + avg)
	assert.InDelta(t, want, r.FSCycleLife, 1e-9)
}

func TestStrength_Limits(t *testing.T) {
	m := musicWire(t)

	s := Strength{PropCalcMethod: MethodSpecifiedTensile, Material: m, Tensile: 1500, PercentTensileEndur: 40, PercentTensileStat: 45}
	tensile, endur, stat := s.limits(2, false)
	assert.Equal(t, 1500.0, tensile)
	assert.InDelta(t, 600.0, endur, 1e-9)
	assert.InDelta(t, 675.0, stat, 1e-9)

	s = Strength{PropCalcMethod: MethodSpecifiedLimits, Material: m, StressLimEndur: 500, StressLimStat: 800}
	_, endur, stat = s.limits(2, false)
	assert.Equal(t, 500.0, endur)
	assert.Equal(t, 800.0, stat)

	s.PropCalcMethod = MethodUnspecified
	_, endur, stat = s.limits(2, false)
	assert.Equal(t, 500.0, endur)
	assert.Equal(t, 800.0, stat)

	s = DefaultStrength(m)
	tensile, endur, stat = s.limits(2, true)
	assert.InDelta(t, m.Tensile(2)*m.BendEndurancePercent(int(LifeNotPeened1e6))/100, endur, 1e-9)
	assert.InDelta(t, tensile*m.PercentTensileBendStatic/100, stat, 1e-9)
}

func TestStrength_HotFactor(t *testing.T) {
	m := musicWire(t)
	m.HotFactor = 0
	in := DefaultCompression(m)
	cold := ComputeCompression(in)

	in.Material.HotFactor = 0.9
	hot := ComputeCompression(in)

	assert.InDelta(t, 0.9*cold.Rate, hot.Rate, 1e-12)
}
