package spring

import (
	"math"

	"github.com/alexiusacademia/gospring/internal/material"
)

// taperedWireAllowance is the wire saved by tapering both ends, in mean diameters
const taperedWireAllowance = 3.926

// CompressionInputs are the independent inputs of a helical compression spring
type CompressionInputs struct {
	// Geometry (mm)
	OuterDiameterAtFree float64 `json:"outer_diameter_at_free"`
	WireDiameter        float64 `json:"wire_diameter"`
	LengthAtFree        float64 `json:"length_at_free"`

	// Coils
	CoilsTotal      float64 `json:"coils_total"`
	InactiveCoils   float64 `json:"inactive_coils"`
	AddCoilsAtSolid float64 `json:"add_coils_at_solid"`

	// Loads (N)
	Force1 float64 `json:"force_1"`
	Force2 float64 `json:"force_2"`

	EndType CompressionEnd `json:"end_type"`
	Strength
}

// DefaultCompression returns a 20 mm OD, 2 mm wire, 10 coil open-ended spring
func DefaultCompression(m material.Material) CompressionInputs {
	return CompressionInputs{
		OuterDiameterAtFree: 20.0,
		WireDiameter:        2.0,
		LengthAtFree:        25.0,
		CoilsTotal:          10,
		InactiveCoils:       0.0,
		AddCoilsAtSolid:     1.0,
		Force1:              2.0,
		Force2:              6.0,
		EndType:             EndOpen,
		Strength:            DefaultStrength(m),
	}
}

// CompressionResult holds the dependent properties of a compression spring
type CompressionResult struct {
	// Geometry
	MeanDiameter   float64 // mm
	InsideDiameter float64 // mm
	SpringIndex    float64 // C = D/d
	CoilsActive    float64
	Pitch          float64 // mm
	Slenderness    float64 // L/D

	// Stress correction
	CurvatureKc float64 // (4C-1)/(4C-4)
	CurvatureKs float64 // kc + 0.615/C

	// Rate and load points
	Rate        float64 // N/mm
	Deflect1    float64 // mm
	Deflect2    float64 // mm
	Length1     float64 // mm
	Length2     float64 // mm
	Stroke      float64 // mm
	SolidLength float64 // mm
	ForceSolid  float64 // N

	// Stresses (MPa)
	Stress1     float64
	Stress2     float64
	StressSolid float64

	// Strength (MPa)
	Tensile        float64
	StressLimEndur float64
	StressLimStat  float64

	// Factors of safety
	FS1         float64
	FS2         float64
	FSSolid     float64
	FSCycleLife float64
	CycleLife   float64 // cycles, 0 when not estimated

	// Wire and energy
	WireLength          float64 // mm
	Weight              float64 // kg
	PercentAvailDeflect float64 // % of travel to solid used at Force2
	Energy              float64 // N·mm between Force1 and Force2
}

// CompressionRate is the rate (N/mm) of a compression spring:
// k = Kh·(G/1e6)·D/(8·n·C⁴), G in Pa and D in mm. Degenerate inputs give 0.
func CompressionRate(hotFactor, shearModulus, meanDia, wireDia, activeCoils float64) float64 {
	if meanDia <= 0 || wireDia <= 0 || activeCoils <= 0 || shearModulus <= 0 || hotFactor <= 0 {
		return 0
	}
	c := meanDia / wireDia
	return finite(hotFactor * (shearModulus / 1e6) * meanDia / (8 * activeCoils * c * c * c * c))
}

// ComputeCompression derives every dependent property from the inputs.
// It never fails; degenerate geometry yields zero rate and neutral factors of
// safety.
func ComputeCompression(in CompressionInputs) CompressionResult {
	var r CompressionResult

	d := in.WireDiameter
	L := in.LengthAtFree
	r.MeanDiameter = in.OuterDiameterAtFree - d
	r.InsideDiameter = in.OuterDiameterAtFree - 2*d
	r.CoilsActive = in.CoilsTotal - in.InactiveCoils
	D := r.MeanDiameter

	r.SpringIndex = safeDiv(D, d, 0)
	c := r.SpringIndex
	r.CurvatureKc = safeDiv(4*c-1, 4*c-4, 1.0)
	r.CurvatureKs = r.CurvatureKc + safeDiv(0.615, c, 0)

	r.Rate = CompressionRate(in.hotFactor(), in.Material.ShearModulus, D, d, r.CoilsActive)
	r.Pitch = compressionPitch(in.EndType, L, d, in.CoilsTotal, in.InactiveCoils, r.CoilsActive)

	r.Deflect1 = safeDiv(in.Force1, r.Rate, 0)
	r.Deflect2 = safeDiv(in.Force2, r.Rate, 0)
	r.Length1 = L - r.Deflect1
	r.Length2 = L - r.Deflect2
	r.Stroke = r.Length1 - r.Length2
	r.Slenderness = safeDiv(L, D, 0)

	r.SolidLength = d * (in.CoilsTotal + in.AddCoilsAtSolid)
	r.ForceSolid = r.Rate * (L - r.SolidLength)

	var sf float64
	if d > 0 && D > 0 {
		sf = finite(r.CurvatureKs * 8 * D / (math.Pi * d * d * d))
	}
	r.Stress1 = sf * in.Force1
	r.Stress2 = sf * in.Force2
	r.StressSolid = sf * r.ForceSolid

	r.Tensile, r.StressLimEndur, r.StressLimStat = in.limits(d, false)

	r.FS1 = factorOfSafety(r.StressLimStat, r.Stress1)
	r.FS2 = factorOfSafety(r.StressLimStat, r.Stress2)
	r.FSSolid = factorOfSafety(r.StressLimStat, r.StressSolid)
	r.FSCycleLife = cycleLifeFoS(r.StressLimStat, r.StressLimEndur, r.Stress1, r.Stress2, r.CurvatureKc)
	// TODO: estimate CycleLife by interpolating the life-category S-N points
	// once the catalogue carries stress/cycle pairs per category.
	r.CycleLife = 0

	wire := math.Hypot(L, in.CoilsTotal*math.Pi*D)
	if in.EndType == EndTaperedClosedGround {
		wire -= taperedWireAllowance * D
	}
	r.WireLength = math.Max(finite(wire), 0)
	r.Weight = wireWeight(in.Material.Density, d, r.WireLength)

	r.PercentAvailDeflect = percentAvailDeflect(L, r.SolidLength, d, r.Deflect2)
	r.Energy = 0.5 * r.Rate * (r.Deflect2*r.Deflect2 - r.Deflect1*r.Deflect1)

	return r
}

// compressionPitch selects the effective-length reduction for the end type
func compressionPitch(end CompressionEnd, length, wire, total, inactive, active float64) float64 {
	switch end {
	case EndOpen:
		return safeDiv(length-wire, active, 0)
	case EndOpenGround:
		return safeDiv(length, total, 0)
	case EndClosed:
		return safeDiv(length-3*wire, active, 0)
	case EndClosedGround:
		return safeDiv(length-2*wire, active, 0)
	case EndTaperedClosedGround:
		return safeDiv(length-1.5*wire, active, 0)
	case EndPigTail:
		return safeDiv(length-2*wire, active, 0)
	case EndUserSpecified, CompressionEndUnspecified:
		return safeDiv(length-(inactive+1)*wire, active, 0)
	default:
		return safeDiv(length-(inactive+1)*wire, active, 0)
	}
}

// percentAvailDeflect is the share of travel to solid used at the second
// load point. Within one wire diameter of solid a penalty grows with the
// overlap instead of dividing by the vanishing travel.
func percentAvailDeflect(free, solid, wire, deflect float64) float64 {
	travel := free - solid
	if travel > wire {
		return 100 * safeDiv(deflect, travel, 0)
	}
	return 100*safeDiv(deflect, wire, 0) + 100*safeDiv(solid+wire-free, wire, 0)
}
