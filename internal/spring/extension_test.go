package spring

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtensionRate_Scenario(t *testing.T) {
	const G, d, D, n = 79.3e9, 0.002, 0.018, 10.0
	want := G * math.Pow(d, 4) / (8 * n * math.Pow(D, 3)) / 1000

	got := ExtensionRate(G, d, D, n)
	assert.InDelta(t, want, got, want*1e-6)
	assert.InDelta(t, 2.71947, got, 1e-5)
}

func TestComputeExtension_Scenario(t *testing.T) {
	in := DefaultExtension(musicWire(t))
	in.HookDeflectAll = 0
	in.EndType = ExtensionEndUserSpecified
	r := ComputeExtension(in)

	assert.Equal(t, 18.0, r.MeanDiameter)
	assert.Equal(t, 10.0, r.CoilsActive)
	assert.InDelta(t, ExtensionRate(79.3e9, 0.002, 0.018, 10), r.Rate, 1e-12)

	// Coils stay closed until the load exceeds the initial tension.
	assert.InDelta(t, (in.Force1-in.InitialTension)/r.Rate, r.Deflect1, 1e-12)
	assert.InDelta(t, (in.Force2-in.InitialTension)/r.Rate, r.Deflect2, 1e-12)
	assert.InDelta(t, r.Deflect2-r.Deflect1, r.Stroke, 1e-12)

	assert.Equal(t, in.WireDiameter, r.Pitch)
	assert.Equal(t, 22.0, r.BodyLength)
	assert.Equal(t, 16.0, r.HookLength)
	assert.Equal(t, 54.0, r.LengthAtFree)

	wantEnergy := in.InitialTension*(r.Deflect2-r.Deflect1) +
		0.5*r.Rate*(r.Deflect2*r.Deflect2-r.Deflect1*r.Deflect1)
	assert.InDelta(t, wantEnergy, r.Energy, 1e-12)
	assert.InDelta(t, math.Hypot(22, 10*math.Pi*18)+2*math.Pi*18, r.WireLength, 1e-9)
	assertAllFinite(t, r)
}

func TestComputeExtension_HooksAddCoils(t *testing.T) {
	in := DefaultExtension(musicWire(t))
	in.HookDeflectAll = 0
	plain := ComputeExtension(in)

	in.HookDeflectAll = 0.3
	hooked := ComputeExtension(in)

	assert.InDelta(t, 10.3, hooked.CoilsActive, 1e-12)
	assert.Less(t, hooked.Rate, plain.Rate)
}

func TestComputeExtension_LoadBelowInitialTension(t *testing.T) {
	in := DefaultExtension(musicWire(t))
	in.InitialTension = 5
	in.Force1 = 2
	r := ComputeExtension(in)

	assert.Equal(t, 0.0, r.Deflect1)
	assert.Equal(t, r.LengthAtFree, r.Length1)
}

func TestComputeExtension_Degenerate(t *testing.T) {
	m := musicWire(t)
	for name, modify := range map[string]func(*ExtensionInputs){
		"wire equals outer": func(in *ExtensionInputs) { in.WireDiameter = 20 },
		"no coils":          func(in *ExtensionInputs) { in.CoilsTotal = 0 },
		"zero modulus":      func(in *ExtensionInputs) { in.Material.ShearModulus = 0 },
	} {
		t.Run(name, func(t *testing.T) {
			in := DefaultExtension(m)
			modify(&in)
			r := ComputeExtension(in)
			assert.Equal(t, 0.0, r.Rate)
			assertAllFinite(t, r)
		})
	}
}

func TestComputeExtension_IgnoresHotFactor(t *testing.T) {
	in := DefaultExtension(musicWire(t))
	cold := ComputeExtension(in)

	in.Material.HotFactor = 0.9
	hot := ComputeExtension(in)

	assert.Equal(t, cold.Rate, hot.Rate)
	assert.InDelta(t, ExtensionRate(in.Material.ShearModulus, 0.002, 0.018, cold.CoilsActive), hot.Rate, 1e-12)
}
