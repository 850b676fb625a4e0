package spring

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTorsionRate_Scenario(t *testing.T) {
	const E, d, D, n = 207e9, 0.002, 0.018, 10.0
	want := E * math.Pow(d, 4) / (64 * n * D) * 1000

	got := TorsionRate(E, d, D, n)
	assert.InDelta(t, want, got, want*1e-9)
	assert.InDelta(t, 287.5, got, 1e-9)
}

func TestComputeTorsion_Scenario(t *testing.T) {
	in := DefaultTorsion(musicWire(t))
	in.ArmsAddCoils = false
	r := ComputeTorsion(in)

	assert.Equal(t, 0.0, r.ArmCoils)
	assert.Equal(t, 10.0, r.CoilsActive)
	assert.InDelta(t, 287.5, r.Rate, 1e-9)
	assert.InDelta(t, 287.5*math.Pi/180, r.RatePerDegree, 1e-12)
	assert.InDelta(t, in.Moment1/r.RatePerDegree, r.Deflect1, 1e-9)
	assert.InDelta(t, in.Moment2/r.RatePerDegree, r.Deflect2, 1e-9)

	ki := (4*81.0 - 9 - 1) / (4 * 9.0 * 8)
	assert.InDelta(t, ki, r.CurvatureKi, 1e-12)
	assert.InDelta(t, ki*32*in.Moment2/(math.Pi*8), r.Stress2, 1e-9)

	// Energy in the radian domain equals the work of the linear moment.
	t1 := in.Moment1 / r.Rate
	t2 := in.Moment2 / r.Rate
	assert.InDelta(t, 0.5*r.Rate*(t2*t2-t1*t1), r.Energy, 1e-9)
	assert.InDelta(t, r.Tensile*0.75, r.StressLimStat, 1e-9)
	assertAllFinite(t, r)
}

func TestComputeTorsion_ArmsAddCoils(t *testing.T) {
	in := DefaultTorsion(musicWire(t))
	r := ComputeTorsion(in)

	wantArm := (in.ArmLength1 + in.ArmLength2) / (3 * math.Pi * 18)
	assert.InDelta(t, wantArm, r.ArmCoils, 1e-12)
	assert.InDelta(t, 10+wantArm, r.CoilsActive, 1e-12)
	assert.Less(t, r.Rate, 287.5)

	in.InactiveCoils = 1
	assert.InDelta(t, 9+wantArm, ComputeTorsion(in).CoilsActive, 1e-12)
}

func TestComputeTorsion_Degenerate(t *testing.T) {
	m := musicWire(t)
	for name, modify := range map[string]func(*TorsionInputs){
		"wire exceeds outer": func(in *TorsionInputs) { in.WireDiameter = 25 },
		"no coils":           func(in *TorsionInputs) { in.CoilsTotal = 0 },
		"zero modulus":       func(in *TorsionInputs) { in.Material.ElasticModulus = 0 },
	} {
		t.Run(name, func(t *testing.T) {
			in := DefaultTorsion(m)
			modify(&in)
			r := ComputeTorsion(in)
			assert.Equal(t, 0.0, r.Rate)
			assert.Equal(t, 0.0, r.Deflect2)
			assertAllFinite(t, r)
		})
	}
}
