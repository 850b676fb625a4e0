package spring

import "github.com/alexiusacademia/gospring/internal/material"

// Strength groups the inputs deciding tensile strength and stress limits
type Strength struct {
	PropCalcMethod PropCalcMethod    `json:"prop_calc_method"`
	LifeCategory   LifeCategory      `json:"life_category"`
	Material       material.Material `json:"material"`

	// User values, read depending on PropCalcMethod
	Tensile             float64 `json:"tensile,omitempty"`               // MPa
	PercentTensileEndur float64 `json:"percent_tensile_endur,omitempty"` // % of tensile
	PercentTensileStat  float64 `json:"percent_tensile_stat,omitempty"`  // % of tensile
	StressLimEndur      float64 `json:"stress_lim_endur,omitempty"`      // MPa
	StressLimStat       float64 `json:"stress_lim_stat,omitempty"`       // MPa
}

// DefaultStrength uses the material table for a catalogue material
func DefaultStrength(m material.Material) Strength {
	return Strength{
		PropCalcMethod: MethodMaterialTable,
		LifeCategory:   LifeNotPeened1e6,
		Material:       m,
	}
}

// limits returns tensile strength, endurance limit and static limit (MPa).
// bending selects the bending percents used by torsion springs.
func (s Strength) limits(wireDia float64, bending bool) (tensile, endur, stat float64) {
	switch s.PropCalcMethod {
	case MethodMaterialTable:
		tensile = s.Material.Tensile(wireDia)
		if bending {
			endur = tensile * s.Material.BendEndurancePercent(int(s.LifeCategory)) / 100
			stat = tensile * s.Material.PercentTensileBendStatic / 100
		} else {
			endur = tensile * s.Material.EndurancePercent(int(s.LifeCategory)) / 100
			stat = tensile * s.Material.PercentTensileStatic / 100
		}
	case MethodSpecifiedTensile:
		tensile = s.Tensile
		endur = tensile * s.PercentTensileEndur / 100
		stat = tensile * s.PercentTensileStat / 100
	case MethodSpecifiedLimits, MethodUnspecified:
		tensile = s.Tensile
		endur = s.StressLimEndur
		stat = s.StressLimStat
	default:
		tensile = s.Tensile
		endur = s.StressLimEndur
		stat = s.StressLimStat
	}
	return finite(tensile), finite(endur), finite(stat)
}

// hotFactor returns Kh, treating an unset factor as cold wound
func (s Strength) hotFactor() float64 {
	if s.Material.HotFactor <= 0 {
		return 1.0
	}
	return s.Material.HotFactor
}
