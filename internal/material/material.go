package material

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Spring wire material constants

const (
	// MusicWireShearModulus is G for ASTM A228 music wire (Pa)
	MusicWireShearModulus = 79.3e9
	// MusicWireElasticModulus is E for ASTM A228 music wire (Pa)
	MusicWireElasticModulus = 207e9

	// LifeCategoryCount is the number of cycle-life categories carried per material
	LifeCategoryCount = 8
)

// Material holds the constants of a spring wire material
type Material struct {
	Key  string // catalogue key (e.g. "music_wire")
	Name string // display name
	Spec string // ASTM designation

	Density        float64 // kg/m³
	ShearModulus   float64 // G (Pa)
	ElasticModulus float64 // E (Pa)
	HotFactor      float64 // Kh - hot-working rate correction (1.0 for cold wound)

	// Tensile strength baseline: two (wire diameter, minimum tensile) points
	// used for log-linear interpolation.
	RefDia1     float64 // mm
	RefTensile1 float64 // MPa
	RefDia2     float64 // mm
	RefTensile2 float64 // MPa

	// Percent of tensile strength
	PercentTensileStatic     float64                   // torsional static limit
	PercentTensileBendStatic float64                   // bending static limit (torsion springs)
	PercentTensileEndurance  [LifeCategoryCount]float64 // torsional endurance by life category
	PercentTensileBendEndur  [LifeCategoryCount]float64 // bending endurance by life category
}

// Endurance percents, not peened then shot peened, 1e5..1e8 cycles
var (
	torsionEndurance = [LifeCategoryCount]float64{36, 33, 30, 28, 42, 39, 36, 34}
	bendingEndurance = [LifeCategoryCount]float64{53, 50, 48, 46, 62, 59, 57, 55}
)

// Catalogue of cold-wound spring wire materials.
// Tensile baselines follow Sut = A/d^m at 0.254 mm and 10.16 mm.
var Catalogue = map[string]Material{
	"music_wire": {
		Key: "music_wire", Name: "Music wire", Spec: "ASTM A228",
		Density: 7850, ShearModulus: MusicWireShearModulus, ElasticModulus: MusicWireElasticModulus, HotFactor: 1.0,
		RefDia1: 0.254, RefTensile1: 2697, RefDia2: 10.16, RefTensile2: 1580,
		PercentTensileStatic: 45, PercentTensileBendStatic: 75,
		PercentTensileEndurance: torsionEndurance, PercentTensileBendEndur: bendingEndurance,
	},
	"hard_drawn": {
		Key: "hard_drawn", Name: "Hard drawn", Spec: "ASTM A227",
		Density: 7850, ShearModulus: 79.3e9, ElasticModulus: 196.5e9, HotFactor: 1.0,
		RefDia1: 0.254, RefTensile1: 2313, RefDia2: 10.16, RefTensile2: 1148,
		PercentTensileStatic: 45, PercentTensileBendStatic: 75,
		PercentTensileEndurance: torsionEndurance, PercentTensileBendEndur: bendingEndurance,
	},
	"oil_tempered": {
		Key: "oil_tempered", Name: "Oil tempered", Spec: "ASTM A229",
		Density: 7850, ShearModulus: 77.2e9, ElasticModulus: 196.5e9, HotFactor: 1.0,
		RefDia1: 0.254, RefTensile1: 2236, RefDia2: 10.16, RefTensile2: 1275,
		PercentTensileStatic: 45, PercentTensileBendStatic: 75,
		PercentTensileEndurance: torsionEndurance, PercentTensileBendEndur: bendingEndurance,
	},
	"chrome_vanadium": {
		Key: "chrome_vanadium", Name: "Chrome vanadium", Spec: "ASTM A231",
		Density: 7850, ShearModulus: 77.2e9, ElasticModulus: 203.4e9, HotFactor: 1.0,
		RefDia1: 0.254, RefTensile1: 2524, RefDia2: 10.16, RefTensile2: 1358,
		PercentTensileStatic: 45, PercentTensileBendStatic: 75,
		PercentTensileEndurance: torsionEndurance, PercentTensileBendEndur: bendingEndurance,
	},
	"chrome_silicon": {
		Key: "chrome_silicon", Name: "Chrome silicon", Spec: "ASTM A401",
		Density: 7850, ShearModulus: 77.2e9, ElasticModulus: 203.4e9, HotFactor: 1.0,
		RefDia1: 0.254, RefTensile1: 2289, RefDia2: 10.16, RefTensile2: 1537,
		PercentTensileStatic: 45, PercentTensileBendStatic: 75,
		PercentTensileEndurance: torsionEndurance, PercentTensileBendEndur: bendingEndurance,
	},
	"stainless_302": {
		Key: "stainless_302", Name: "Stainless 302", Spec: "ASTM A313",
		Density: 7920, ShearModulus: 69.0e9, ElasticModulus: 193e9, HotFactor: 1.0,
		RefDia1: 0.254, RefTensile1: 2280, RefDia2: 10.16, RefTensile2: 1331,
		PercentTensileStatic: 35, PercentTensileBendStatic: 75,
		PercentTensileEndurance: torsionEndurance, PercentTensileBendEndur: bendingEndurance,
	},
}

// DefaultKey is the material used when none is selected
const DefaultKey = "music_wire"

// Lookup returns a catalogue material by key. Keys are matched case-insensitively
// and accept '-' or ' ' in place of '_'.
func Lookup(key string) (Material, error) {
	norm := strings.ToLower(strings.TrimSpace(key))
	norm = strings.NewReplacer("-", "_", " ", "_").Replace(norm)
	m, ok := Catalogue[norm]
	if !ok {
		return Material{}, fmt.Errorf("unknown material %q (available: %s)", key, strings.Join(Keys(), ", "))
	}
	return m, nil
}

// Keys returns the sorted catalogue keys
func Keys() []string {
	keys := make([]string, 0, len(Catalogue))
	for k := range Catalogue {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// TensileTerms returns the slope and constant of the log-linear tensile line
// Sut = slope*(log10(d) - log10(RefDia1)) + const
func (m Material) TensileTerms() (slope, constant float64) {
	if m.RefDia1 <= 0 || m.RefDia2 <= 0 {
		return 0, m.RefTensile1
	}
	span := math.Log10(m.RefDia2) - math.Log10(m.RefDia1)
	if span == 0 {
		return 0, m.RefTensile1
	}
	return (m.RefTensile2 - m.RefTensile1) / span, m.RefTensile1
}

// Tensile interpolates the minimum tensile strength (MPa) for a wire diameter (mm).
// Returns 0 for a non-positive diameter.
func (m Material) Tensile(wireDia float64) float64 {
	if wireDia <= 0 || m.RefDia1 <= 0 {
		return 0
	}
	slope, constant := m.TensileTerms()
	return slope*(math.Log10(wireDia)-math.Log10(m.RefDia1)) + constant
}

// EndurancePercent returns the torsional endurance percent for a 1-based life
// category. Category 0 (unspecified) or out of range returns 0.
func (m Material) EndurancePercent(category int) float64 {
	if category < 1 || category > LifeCategoryCount {
		return 0
	}
	return m.PercentTensileEndurance[category-1]
}

// BendEndurancePercent is EndurancePercent for bending stress
func (m Material) BendEndurancePercent(category int) float64 {
	if category < 1 || category > LifeCategoryCount {
		return 0
	}
	return m.PercentTensileBendEndur[category-1]
}
