package spring

import (
	"math"

	"github.com/alexiusacademia/gospring/internal/material"
)

// TorsionInputs are the independent inputs of a helical torsion spring
type TorsionInputs struct {
	OuterDiameterAtFree float64 `json:"outer_diameter_at_free"` // mm
	WireDiameter        float64 `json:"wire_diameter"`          // mm
	CoilsTotal          float64 `json:"coils_total"`
	InactiveCoils       float64 `json:"inactive_coils"`

	ArmLength1   float64 `json:"arm_length_1"` // mm
	ArmLength2   float64 `json:"arm_length_2"` // mm
	ArmsAddCoils bool    `json:"arms_add_coils"`

	Moment1 float64 `json:"moment_1"` // N·mm
	Moment2 float64 `json:"moment_2"` // N·mm

	EndType TorsionEnd `json:"end_type"`
	Strength
}

// DefaultTorsion returns a tangent-leg spring with 25 mm arms
func DefaultTorsion(m material.Material) TorsionInputs {
	return TorsionInputs{
		OuterDiameterAtFree: 20.0,
		WireDiameter:        2.0,
		CoilsTotal:          10,
		InactiveCoils:       0,
		ArmLength1:          25.0,
		ArmLength2:          25.0,
		ArmsAddCoils:        true,
		Moment1:             100.0,
		Moment2:             300.0,
		EndType:             EndTangentLegs,
		Strength:            DefaultStrength(m),
	}
}

// TorsionResult holds the dependent properties of a torsion spring
type TorsionResult struct {
	MeanDiameter   float64 // mm
	InsideDiameter float64 // mm
	SpringIndex    float64
	CoilsActive    float64
	ArmCoils       float64 // equivalent coils contributed by the arms
	CurvatureKi    float64 // (4C²−C−1)/(4C(C−1))
	Pitch          float64 // mm, close wound
	BodyLength     float64 // mm

	Rate          float64 // N·mm/rad
	RatePerDegree float64 // N·mm/deg
	Deflect1      float64 // deg
	Deflect2      float64 // deg
	Stroke        float64 // deg

	Stress1 float64 // MPa, bending
	Stress2 float64 // MPa, bending

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

// TorsionRate is the torque per radian (N·mm/rad) of a torsion spring from SI
// inputs: k = E·d⁴/(64·n·D) with d and D in metres, times 1000.
func TorsionRate(elasticModulus, wireDiaM, meanDiaM, activeCoils float64) float64 {
	if wireDiaM <= 0 || meanDiaM <= 0 || activeCoils <= 0 || elasticModulus <= 0 {
		return 0
	}
	perRadian := elasticModulus * math.Pow(wireDiaM, 4) / (64 * activeCoils * meanDiaM)
	return finite(perRadian * 1000)
}

// ComputeTorsion derives every dependent property from the inputs
func ComputeTorsion(in TorsionInputs) TorsionResult {
	var r TorsionResult

	d := in.WireDiameter
	r.MeanDiameter = in.OuterDiameterAtFree - d
	r.InsideDiameter = in.OuterDiameterAtFree - 2*d
	D := r.MeanDiameter

	if in.ArmsAddCoils {
		r.ArmCoils = safeDiv(in.ArmLength1+in.ArmLength2, 3*math.Pi*D, 0)
	}
	r.CoilsActive = in.CoilsTotal - in.InactiveCoils + r.ArmCoils

	r.SpringIndex = safeDiv(D, d, 0)
	c := r.SpringIndex
	r.CurvatureKi = safeDiv(4*c*c-c-1, 4*c*(c-1), 1.0)

	if d > 0 && D > 0 && in.CoilsTotal > 0 {
		r.Rate = TorsionRate(in.Material.ElasticModulus, d/1000, D/1000, r.CoilsActive)
	}
	r.RatePerDegree = r.Rate * math.Pi / 180

	r.Pitch = d
	r.BodyLength = math.Max(d*(in.CoilsTotal+1), 0)

	r.Deflect1 = safeDiv(in.Moment1, r.RatePerDegree, 0)
	r.Deflect2 = safeDiv(in.Moment2, r.RatePerDegree, 0)
	r.Stroke = r.Deflect2 - r.Deflect1

	var sf float64
	if d > 0 {
		sf = finite(r.CurvatureKi * 32 / (math.Pi * d * d * d))
	}
	r.Stress1 = sf * in.Moment1
	r.Stress2 = sf * in.Moment2

	r.Tensile, r.StressLimEndur, r.StressLimStat = in.limits(d, true)
	r.FS1 = factorOfSafety(r.StressLimStat, r.Stress1)
	r.FS2 = factorOfSafety(r.StressLimStat, r.Stress2)
	r.FSCycleLife = cycleLifeFoS(r.StressLimStat, r.StressLimEndur, r.Stress1, r.Stress2, 1.0)

	body := math.Hypot(r.BodyLength, in.CoilsTotal*math.Pi*D)
	r.WireLength = math.Max(finite(body+in.ArmLength1+in.ArmLength2), 0)
	r.Weight = wireWeight(in.Material.Density, d, r.WireLength)

	t1 := r.Deflect1 * math.Pi / 180
	t2 := r.Deflect2 * math.Pi / 180
	r.Energy = 0.5 * r.Rate * (t2*t2 - t1*t1)

	return r
}
