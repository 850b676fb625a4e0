package spring

import "math"

// Section is a titled group of report lines
type Section struct {
	Title string
	Lines []Line
}

// Line is one labelled value of a report. Text, when set, replaces Value.
// Safety marks factors of safety, which front ends highlight below 1.0.
type Line struct {
	Label     string
	Value     float64
	Unit      string
	Precision int
	Text      string
	Safety    bool
}

func num(label string, v float64, unit string, prec int) Line {
	return Line{Label: label, Value: v, Unit: unit, Precision: prec}
}

func txt(label, text string) Line {
	return Line{Label: label, Text: text}
}

func fos(label string, v float64) Line {
	return Line{Label: label, Value: v, Precision: 2, Safety: true}
}

func strengthLines(s Strength, tensile, endur, stat float64) []Line {
	lines := []Line{
		txt("Material", s.Material.Name),
		txt("Calculation method", s.PropCalcMethod.String()),
	}
	if s.PropCalcMethod == MethodMaterialTable {
		lines = append(lines, txt("Life category", s.LifeCategory.String()))
	}
	return append(lines,
		num("Tensile strength", tensile, "MPa", 1),
		num("Endurance limit", endur, "MPa", 1),
		num("Static limit", stat, "MPa", 1),
	)
}

func compressionReport(in CompressionInputs, r CompressionResult) []Section {
	return []Section{
		{Title: "Geometry", Lines: []Line{
			txt("End type", in.EndType.String()),
			num("Outside diameter", in.OuterDiameterAtFree, "mm", 2),
			num("Mean diameter", r.MeanDiameter, "mm", 2),
			num("Inside diameter", r.InsideDiameter, "mm", 2),
			num("Wire diameter", in.WireDiameter, "mm", 2),
			num("Free length", in.LengthAtFree, "mm", 2),
			num("Total coils", in.CoilsTotal, "", 2),
			num("Active coils", r.CoilsActive, "", 2),
			num("Spring index", r.SpringIndex, "", 3),
			num("Pitch", r.Pitch, "mm", 3),
			num("Slenderness", r.Slenderness, "", 3),
			num("Solid length", r.SolidLength, "mm", 2),
		}},
		{Title: "Loads", Lines: []Line{
			num("Rate", r.Rate, "N/mm", 3),
			num("Force 1", in.Force1, "N", 2),
			num("Deflection 1", r.Deflect1, "mm", 3),
			num("Length 1", r.Length1, "mm", 3),
			num("Force 2", in.Force2, "N", 2),
			num("Deflection 2", r.Deflect2, "mm", 3),
			num("Length 2", r.Length2, "mm", 3),
			num("Stroke", r.Stroke, "mm", 3),
			num("Force at solid", r.ForceSolid, "N", 2),
			num("Available deflection used", r.PercentAvailDeflect, "%", 1),
			num("Energy", r.Energy, "N·mm", 2),
		}},
		{Title: "Stress", Lines: append(strengthLines(in.Strength, r.Tensile, r.StressLimEndur, r.StressLimStat),
			num("Curvature factor ks", r.CurvatureKs, "", 4),
			num("Stress 1", r.Stress1, "MPa", 1),
			num("Stress 2", r.Stress2, "MPa", 1),
			num("Stress at solid", r.StressSolid, "MPa", 1),
			fos("FoS 1", r.FS1),
			fos("FoS 2", r.FS2),
			fos("FoS at solid", r.FSSolid),
			fos("FoS cycle life", r.FSCycleLife),
		)},
		{Title: "Wire", Lines: []Line{
			num("Wire length", r.WireLength, "mm", 1),
			num("Weight", r.Weight*1000, "g", 2),
		}},
	}
}

func extensionReport(in ExtensionInputs, r ExtensionResult) []Section {
	return []Section{
		{Title: "Geometry", Lines: []Line{
			txt("End type", in.EndType.String()),
			num("Outside diameter", in.OuterDiameterAtFree, "mm", 2),
			num("Mean diameter", r.MeanDiameter, "mm", 2),
			num("Wire diameter", in.WireDiameter, "mm", 2),
			num("Body coils", in.CoilsTotal, "", 2),
			num("Active coils", r.CoilsActive, "", 2),
			num("Spring index", r.SpringIndex, "", 3),
			num("Body length", r.BodyLength, "mm", 2),
			num("Free length inside hooks", r.LengthAtFree, "mm", 2),
		}},
		{Title: "Loads", Lines: []Line{
			num("Rate", r.Rate, "N/mm", 3),
			num("Initial tension", in.InitialTension, "N", 2),
			num("Force 1", in.Force1, "N", 2),
			num("Deflection 1", r.Deflect1, "mm", 3),
			num("Length 1", r.Length1, "mm", 3),
			num("Force 2", in.Force2, "N", 2),
			num("Deflection 2", r.Deflect2, "mm", 3),
			num("Length 2", r.Length2, "mm", 3),
			num("Stroke", r.Stroke, "mm", 3),
			num("Energy", r.Energy, "N·mm", 2),
		}},
		{Title: "Stress", Lines: append(strengthLines(in.Strength, r.Tensile, r.StressLimEndur, r.StressLimStat),
			num("Initial tension stress", r.StressInitial, "MPa", 1),
			num("Stress 1", r.Stress1, "MPa", 1),
			num("Stress 2", r.Stress2, "MPa", 1),
			fos("FoS 1", r.FS1),
			fos("FoS 2", r.FS2),
			fos("FoS cycle life", r.FSCycleLife),
		)},
		{Title: "Wire", Lines: []Line{
			num("Wire length", r.WireLength, "mm", 1),
			num("Weight", r.Weight*1000, "g", 2),
		}},
	}
}

func torsionReport(in TorsionInputs, r TorsionResult) []Section {
	return []Section{
		{Title: "Geometry", Lines: []Line{
			txt("End type", in.EndType.String()),
			num("Outside diameter", in.OuterDiameterAtFree, "mm", 2),
			num("Mean diameter", r.MeanDiameter, "mm", 2),
			num("Inside diameter", r.InsideDiameter, "mm", 2),
			num("Wire diameter", in.WireDiameter, "mm", 2),
			num("Body coils", in.CoilsTotal, "", 2),
			num("Arm equivalent coils", r.ArmCoils, "", 3),
			num("Active coils", r.CoilsActive, "", 3),
			num("Spring index", r.SpringIndex, "", 3),
			num("Body length", r.BodyLength, "mm", 2),
		}},
		{Title: "Loads", Lines: []Line{
			num("Rate", r.Rate, "N·mm/rad", 1),
			num("Rate per degree", r.RatePerDegree, "N·mm/deg", 3),
			num("Moment 1", in.Moment1, "N·mm", 1),
			num("Deflection 1", r.Deflect1, "deg", 2),
			num("Moment 2", in.Moment2, "N·mm", 1),
			num("Deflection 2", r.Deflect2, "deg", 2),
			num("Stroke", r.Stroke, "deg", 2),
			num("Energy", r.Energy, "N·mm", 2),
		}},
		{Title: "Stress", Lines: append(strengthLines(in.Strength, r.Tensile, r.StressLimEndur, r.StressLimStat),
			num("Curvature factor Ki", r.CurvatureKi, "", 4),
			num("Stress 1", r.Stress1, "MPa", 1),
			num("Stress 2", r.Stress2, "MPa", 1),
			fos("FoS 1", r.FS1),
			fos("FoS 2", r.FS2),
			fos("FoS cycle life", r.FSCycleLife),
		)},
		{Title: "Wire", Lines: []Line{
			num("Wire length", r.WireLength, "mm", 1),
			num("Weight", r.Weight*1000, "g", 2),
		}},
	}
}

// LoadCurve is the load against deflection line of a spring with its
// operating points marked.
type LoadCurve struct {
	XLabel string
	YLabel string
	Points []Point
	Marks  []Mark
}

// Point is a deflection/load pair
type Point struct {
	X, Y float64
}

// Mark is a labelled operating point
type Mark struct {
	Label string
	Point
}

const curveSamples = 21

func linearCurve(xmax, intercept, slope float64) []Point {
	if !(xmax > 0) || math.IsInf(xmax, 0) {
		return []Point{{0, intercept}}
	}
	pts := make([]Point, curveSamples)
	for i := range pts {
		x := xmax * float64(i) / float64(curveSamples-1)
		pts[i] = Point{X: x, Y: intercept + slope*x}
	}
	return pts
}

func compressionCurve(in CompressionInputs, r CompressionResult) LoadCurve {
	travel := math.Max(in.LengthAtFree-r.SolidLength, r.Deflect2)
	return LoadCurve{
		XLabel: "Deflection (mm)",
		YLabel: "Force (N)",
		Points: linearCurve(travel, 0, r.Rate),
		Marks: []Mark{
			{"F1", Point{r.Deflect1, in.Force1}},
			{"F2", Point{r.Deflect2, in.Force2}},
			{"Solid", Point{in.LengthAtFree - r.SolidLength, r.ForceSolid}},
		},
	}
}

func extensionCurve(in ExtensionInputs, r ExtensionResult) LoadCurve {
	return LoadCurve{
		XLabel: "Deflection (mm)",
		YLabel: "Force (N)",
		Points: linearCurve(1.25*r.Deflect2, in.InitialTension, r.Rate),
		Marks: []Mark{
			{"Fi", Point{0, in.InitialTension}},
			{"F1", Point{r.Deflect1, math.Max(in.Force1, in.InitialTension)}},
			{"F2", Point{r.Deflect2, math.Max(in.Force2, in.InitialTension)}},
		},
	}
}

func torsionCurve(in TorsionInputs, r TorsionResult) LoadCurve {
	return LoadCurve{
		XLabel: "Deflection (deg)",
		YLabel: "Moment (N·mm)",
		Points: linearCurve(1.25*r.Deflect2, 0, r.RatePerDegree),
		Marks: []Mark{
			{"M1", Point{r.Deflect1, in.Moment1}},
			{"M2", Point{r.Deflect2, in.Moment2}},
		},
	}
}
