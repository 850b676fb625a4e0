package spring

import "github.com/alexiusacademia/gospring/internal/tables"

// Setters for the table columns each family understands. Columns not listed
// here are informational and left to the caller.
var (
	compressionFloatFields = map[string]func(*CompressionInputs, float64){
		"InactiveCoils":   func(in *CompressionInputs, v float64) { in.InactiveCoils = v },
		"AddCoilsAtSolid": func(in *CompressionInputs, v float64) { in.AddCoilsAtSolid = v },
	}

	extensionFloatFields = map[string]func(*ExtensionInputs, float64){
		"HookDeflectAll": func(in *ExtensionInputs, v float64) { in.HookDeflectAll = v },
		"LoopFraction":   func(in *ExtensionInputs, v float64) { in.LoopFraction = v },
	}

	torsionFloatFields = map[string]func(*TorsionInputs, float64){
		"InactiveCoils": func(in *TorsionInputs, v float64) { in.InactiveCoils = v },
	}
	torsionBoolFields = map[string]func(*TorsionInputs, bool){
		"ArmsAddCoils": func(in *TorsionInputs, v bool) { in.ArmsAddCoils = v },
	}
)

// ApplyCompressionEndType returns in with the defaults of option copied from
// table. An empty table or unknown option returns in unchanged; null and
// non-numeric cells leave their property unchanged. The end type is matched
// by name, so table rows may come in any order; a row with no matching
// variant selects the unspecified end type.
func ApplyCompressionEndType(in CompressionInputs, table *tables.EndTypeTable, option string) CompressionInputs {
	if !table.Has(option) {
		return in
	}
	applyFloats(&in, table, option, compressionFloatFields)
	in.EndType = CompressionEndFromName(option)
	return in
}

// ApplyExtensionEndType is ApplyCompressionEndType for extension springs
func ApplyExtensionEndType(in ExtensionInputs, table *tables.EndTypeTable, option string) ExtensionInputs {
	if !table.Has(option) {
		return in
	}
	applyFloats(&in, table, option, extensionFloatFields)
	in.EndType = ExtensionEndFromName(option)
	return in
}

// ApplyTorsionEndType is ApplyCompressionEndType for torsion springs
func ApplyTorsionEndType(in TorsionInputs, table *tables.EndTypeTable, option string) TorsionInputs {
	if !table.Has(option) {
		return in
	}
	applyFloats(&in, table, option, torsionFloatFields)
	for name, set := range torsionBoolFields {
		if v, ok := table.Bool(option, name); ok {
			set(&in, v)
		}
	}
	in.EndType = TorsionEndFromName(option)
	return in
}

func applyFloats[T any](in *T, table *tables.EndTypeTable, option string, fields map[string]func(*T, float64)) {
	for name, set := range fields {
		if v, ok := table.Float(option, name); ok {
			set(in, v)
		}
	}
}
