package spring

import (
	"math"

	"github.com/alexiusacademia/gospring/internal/material"
)

// ExtensionInputs are the independent inputs of a helical extension spring
type ExtensionInputs struct {
	OuterDiameterAtFree float64 `json:"outer_diameter_at_free"` // mm
	WireDiameter        float64 `json:"wire_diameter"`          // mm
	CoilsTotal          float64 `json:"coils_total"`

	// End-type defaults
	HookDeflectAll float64 `json:"hook_deflect_all"` // equivalent coils added by the hooks
	LoopFraction   float64 `json:"loop_fraction"`    // share of a full loop formed at each end

	InitialTension float64 `json:"initial_tension"` // N
	Force1         float64 `json:"force_1"`         // N
	Force2         float64 `json:"force_2"`         // N

	EndType ExtensionEnd `json:"end_type"`
	Strength
}

// DefaultExtension returns a full-loop spring with the same body as the
// default compression spring.
func DefaultExtension(m material.Material) ExtensionInputs {
	return ExtensionInputs{
		OuterDiameterAtFree: 20.0,
		WireDiameter:        2.0,
		CoilsTotal:          10,
		HookDeflectAll:      0.2,
		LoopFraction:        1.0,
		InitialTension:      1.0,
		Force1:              3.0,
		Force2:              8.0,
		EndType:             EndFullLoop,
		Strength:            DefaultStrength(m),
	}
}

// ExtensionResult holds the dependent properties of an extension spring
type ExtensionResult struct {
	MeanDiameter   float64 // mm
	InsideDiameter float64 // mm
	SpringIndex    float64
	CoilsActive    float64
	CurvatureKc    float64
	CurvatureKs    float64
	Pitch          float64 // mm, close wound
	BodyLength     float64 // mm
	HookLength     float64 // mm, one end
	LengthAtFree   float64 // mm, inside the hooks

	Rate     float64 // N/mm
	Deflect1 float64 // mm
	Deflect2 float64 // mm
	Length1  float64 // mm
	Length2  float64 // mm
	Stroke   float64 // mm

	StressInitial float64 // MPa
	Stress1       float64 // MPa
	Stress2       float64 // MPa

	Tensile        float64
	StressLimEndur float64
	StressLimStat  float64

	FS1         float64
	FS2         float64
	FSCycleLife float64
	CycleLife   float64

	WireLength float64 // mm
	Weight     float64 // kg
	Energy     float64 // N·mm
}

// ExtensionRate is the rate (N/mm) of an extension spring from SI inputs:
// k = G·d⁴/(8·n·D³) with d and D in metres, divided by 1000.
func ExtensionRate(shearModulus, wireDiaM, meanDiaM, activeCoils float64) float64 {
	if wireDiaM <= 0 || meanDiaM <= 0 || activeCoils <= 0 || shearModulus <= 0 {
		return 0
	}
	perMetre := shearModulus * math.Pow(wireDiaM, 4) / (8 * activeCoils * math.Pow(meanDiaM, 3))
	return finite(perMetre / 1000)
}

// ComputeExtension derives every dependent property from the inputs
func ComputeExtension(in ExtensionInputs) ExtensionResult {
	var r ExtensionResult

	d := in.WireDiameter
	r.MeanDiameter = in.OuterDiameterAtFree - d
	r.InsideDiameter = in.OuterDiameterAtFree - 2*d
	D := r.MeanDiameter
	r.CoilsActive = in.CoilsTotal + in.HookDeflectAll

	r.SpringIndex = safeDiv(D, d, 0)
	c := r.SpringIndex
	r.CurvatureKc = safeDiv(4*c-1, 4*c-4, 1.0)
	r.CurvatureKs = r.CurvatureKc + safeDiv(0.615, c, 0)

	if d > 0 && D > 0 && in.CoilsTotal > 0 {
		r.Rate = ExtensionRate(in.Material.ShearModulus, d/1000, D/1000, r.CoilsActive)
	}

	r.Pitch = d
	r.BodyLength = math.Max(d*(in.CoilsTotal+1), 0)
	r.HookLength = math.Max(in.LoopFraction*r.InsideDiameter, 0)
	r.LengthAtFree = r.BodyLength + 2*r.HookLength

	// Load below the initial tension does not open the coils.
	r.Deflect1 = safeDiv(math.Max(in.Force1-in.InitialTension, 0), r.Rate, 0)
	r.Deflect2 = safeDiv(math.Max(in.Force2-in.InitialTension, 0), r.Rate, 0)
	r.Length1 = r.LengthAtFree + r.Deflect1
	r.Length2 = r.LengthAtFree + r.Deflect2
	r.Stroke = r.Length2 - r.Length1

	var sf float64
	if d > 0 && D > 0 {
		sf = finite(r.CurvatureKs * 8 * D / (math.Pi * d * d * d))
	}
	r.StressInitial = sf * in.InitialTension
	r.Stress1 = sf * in.Force1
	r.Stress2 = sf * in.Force2

	r.Tensile, r.StressLimEndur, r.StressLimStat = in.limits(d, false)
	r.FS1 = factorOfSafety(r.StressLimStat, r.Stress1)
	r.FS2 = factorOfSafety(r.StressLimStat, r.Stress2)
	r.FSCycleLife = cycleLifeFoS(r.StressLimStat, r.StressLimEndur, r.Stress1, r.Stress2, r.CurvatureKc)

	body := math.Hypot(r.BodyLength, in.CoilsTotal*math.Pi*D)
	r.WireLength = math.Max(finite(body+2*in.LoopFraction*math.Pi*D), 0)
	r.Weight = wireWeight(in.Material.Density, d, r.WireLength)

	r.Energy = in.InitialTension*(r.Deflect2-r.Deflect1) +
		0.5*r.Rate*(r.Deflect2*r.Deflect2-r.Deflect1*r.Deflect1)

	return r
}
