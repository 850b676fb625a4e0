package spring

// EditorMode tells a front end how to present an input field
type EditorMode int

const (
	Editable EditorMode = iota
	ReadOnly
	Hidden
)

func (m EditorMode) String() string {
	switch m {
	case ReadOnly:
		return "read-only"
	case Hidden:
		return "hidden"
	default:
		return "editable"
	}
}

// Strength fields whose presentation depends on the calculation method
const (
	FieldTensile             = "Tensile"
	FieldPercentTensileEndur = "PercentTensileEndur"
	FieldPercentTensileStat  = "PercentTensileStat"
	FieldStressLimEndur      = "StressLimEndur"
	FieldStressLimStat       = "StressLimStat"
	FieldLifeCategory        = "LifeCategory"
)

// FieldModes returns the editor mode of every strength field for method.
// Fields that are computed are read-only, fields that are ignored are hidden.
func FieldModes(method PropCalcMethod) map[string]EditorMode {
	switch method {
	case MethodMaterialTable:
		return map[string]EditorMode{
			FieldTensile:             ReadOnly,
			FieldPercentTensileEndur: ReadOnly,
			FieldPercentTensileStat:  ReadOnly,
			FieldStressLimEndur:      ReadOnly,
			FieldStressLimStat:       ReadOnly,
			FieldLifeCategory:        Editable,
		}
	case MethodSpecifiedTensile:
		return map[string]EditorMode{
			FieldTensile:             Editable,
			FieldPercentTensileEndur: Editable,
			FieldPercentTensileStat:  Editable,
			FieldStressLimEndur:      ReadOnly,
			FieldStressLimStat:       ReadOnly,
			FieldLifeCategory:        Hidden,
		}
	default:
		return map[string]EditorMode{
			FieldTensile:             Editable,
			FieldPercentTensileEndur: Hidden,
			FieldPercentTensileStat:  Hidden,
			FieldStressLimEndur:      Editable,
			FieldStressLimStat:       Editable,
			FieldLifeCategory:        Hidden,
		}
	}
}
