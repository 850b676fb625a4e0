package spring

// Enumerations driving formula selection. Every enumeration has an explicit
// zero "unspecified" variant. Table selections are matched by name, so an
// option with no variant maps onto it and formulas treat it as the
// user-specified path.

// PropCalcMethod selects where tensile strength and stress limits come from
type PropCalcMethod int

const (
	MethodUnspecified      PropCalcMethod = iota
	MethodMaterialTable                   // tensile interpolated, limits from catalogue percents
	MethodSpecifiedTensile                // user tensile, limits from user percents
	MethodSpecifiedLimits                 // user endurance and static limits
)

var propCalcMethodNames = []string{"", "Use_Material_Table", "Specify_Tensile", "Specify_Stress_Limits"}

// PropCalcMethodFromIndex converts a 1-based table index. Out of range is unspecified.
func PropCalcMethodFromIndex(i int) PropCalcMethod {
	if i < 1 || i >= len(propCalcMethodNames) {
		return MethodUnspecified
	}
	return PropCalcMethod(i)
}

// PropCalcMethodFromName resolves an option name. Unknown names are unspecified.
func PropCalcMethodFromName(s string) PropCalcMethod {
	return PropCalcMethodFromIndex(enumIndex(propCalcMethodNames, s))
}

func (m PropCalcMethod) String() string {
	return enumName(propCalcMethodNames, int(m))
}

// MarshalText implements encoding.TextMarshaler
func (m PropCalcMethod) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler. Unknown names decode as unspecified.
func (m *PropCalcMethod) UnmarshalText(b []byte) error {
	*m = PropCalcMethodFromName(string(b))
	return nil
}

// LifeCategory selects the endurance percent of tensile
type LifeCategory int

const (
	LifeUnspecified LifeCategory = iota
	LifeNotPeened1e5
	LifeNotPeened1e6
	LifeNotPeened1e7
	LifeNotPeened1e8
	LifePeened1e5
	LifePeened1e6
	LifePeened1e7
	LifePeened1e8
)

var lifeCategoryNames = []string{
	"",
	"Not_Peened_1e5", "Not_Peened_1e6", "Not_Peened_1e7", "Not_Peened_1e8",
	"Peened_1e5", "Peened_1e6", "Peened_1e7", "Peened_1e8",
}

// LifeCategoryFromIndex converts a 1-based table index
func LifeCategoryFromIndex(i int) LifeCategory {
	if i < 1 || i >= len(lifeCategoryNames) {
		return LifeUnspecified
	}
	return LifeCategory(i)
}

// LifeCategoryFromName resolves an option name. Unknown names are unspecified.
func LifeCategoryFromName(s string) LifeCategory {
	return LifeCategoryFromIndex(enumIndex(lifeCategoryNames, s))
}

func (l LifeCategory) String() string {
	return enumName(lifeCategoryNames, int(l))
}

func (l LifeCategory) MarshalText() ([]byte, error) { return []byte(l.String()), nil }

func (l *LifeCategory) UnmarshalText(b []byte) error {
	*l = LifeCategoryFromName(string(b))
	return nil
}

// CompressionEnd is the end treatment of a compression spring
type CompressionEnd int

const (
	CompressionEndUnspecified CompressionEnd = iota
	EndOpen
	EndOpenGround
	EndClosed
	EndClosedGround
	EndTaperedClosedGround
	EndPigTail
	EndUserSpecified
)

var compressionEndNames = []string{
	"", "Open", "Open&Ground", "Closed", "Closed&Ground", "Tapered_C&G", "Pig-tail", "User_Specified",
}

// CompressionEndFromIndex converts a 1-based table index
func CompressionEndFromIndex(i int) CompressionEnd {
	if i < 1 || i >= len(compressionEndNames) {
		return CompressionEndUnspecified
	}
	return CompressionEnd(i)
}

// CompressionEndFromName resolves an option name. Unknown names are unspecified.
func CompressionEndFromName(s string) CompressionEnd {
	return CompressionEndFromIndex(enumIndex(compressionEndNames, s))
}

func (e CompressionEnd) String() string {
	return enumName(compressionEndNames, int(e))
}

func (e CompressionEnd) MarshalText() ([]byte, error) { return []byte(e.String()), nil }

func (e *CompressionEnd) UnmarshalText(b []byte) error {
	*e = CompressionEndFromName(string(b))
	return nil
}

// ExtensionEnd is the hook or loop form of an extension spring
type ExtensionEnd int

const (
	ExtensionEndUnspecified ExtensionEnd = iota
	EndFullLoop
	EndThreeQuarterLoop
	EndFullHook
	EndThreeQuarterHook
	EndCrossoverLoop
	ExtensionEndUserSpecified
)

var extensionEndNames = []string{
	"", "Full_Loop", "75%_Loop", "Full_Hook", "75%_Hook", "Crossover_Loop", "User_Specified",
}

// ExtensionEndFromIndex converts a 1-based table index
func ExtensionEndFromIndex(i int) ExtensionEnd {
	if i < 1 || i >= len(extensionEndNames) {
		return ExtensionEndUnspecified
	}
	return ExtensionEnd(i)
}

// ExtensionEndFromName resolves an option name. Unknown names are unspecified.
func ExtensionEndFromName(s string) ExtensionEnd {
	return ExtensionEndFromIndex(enumIndex(extensionEndNames, s))
}

func (e ExtensionEnd) String() string {
	return enumName(extensionEndNames, int(e))
}

func (e ExtensionEnd) MarshalText() ([]byte, error) { return []byte(e.String()), nil }

func (e *ExtensionEnd) UnmarshalText(b []byte) error {
	*e = ExtensionEndFromName(string(b))
	return nil
}

// TorsionEnd is the leg form of a torsion spring
type TorsionEnd int

const (
	TorsionEndUnspecified TorsionEnd = iota
	EndTangentLegs
	EndStraightOffset
	EndHinged
	TorsionEndUserSpecified
)

var torsionEndNames = []string{"", "Tangent_Legs", "Straight_Offset", "Hinged", "User_Specified"}

// TorsionEndFromIndex converts a 1-based table index
func TorsionEndFromIndex(i int) TorsionEnd {
	if i < 1 || i >= len(torsionEndNames) {
		return TorsionEndUnspecified
	}
	return TorsionEnd(i)
}

// TorsionEndFromName resolves an option name. Unknown names are unspecified.
func TorsionEndFromName(s string) TorsionEnd {
	return TorsionEndFromIndex(enumIndex(torsionEndNames, s))
}

func (e TorsionEnd) String() string {
	return enumName(torsionEndNames, int(e))
}

func (e TorsionEnd) MarshalText() ([]byte, error) { return []byte(e.String()), nil }

func (e *TorsionEnd) UnmarshalText(b []byte) error {
	*e = TorsionEndFromName(string(b))
	return nil
}

func enumName(names []string, i int) string {
	if i < 1 || i >= len(names) {
		return "Unspecified"
	}
	return names[i]
}

func enumIndex(names []string, s string) int {
	for i := 1; i < len(names); i++ {
		if names[i] == s {
			return i
		}
	}
	return 0
}
