package spring

import (
	"github.com/alexiusacademia/gospring/internal/material"
	"github.com/alexiusacademia/gospring/internal/tables"
)

// Enumeration names shared by every family
const (
	EnumPropCalcMethod = "PropCalcMethod"
	EnumLifeCategory   = "LifeCategory"
)

// Calculator resolves selections against a table registry and recomputes
// designs. A nil registry behaves like one with no tables.
type Calculator struct {
	reg *tables.Registry
}

// NewCalculator creates a calculator backed by reg
func NewCalculator(reg *tables.Registry) *Calculator {
	return &Calculator{reg: reg}
}

// Registry returns the underlying table registry
func (c *Calculator) Registry() *tables.Registry {
	return c.reg
}

// known reports whether value is an option of the family's enumeration
func (c *Calculator) known(f tables.Family, enum, value string) bool {
	return c.reg != nil && c.reg.Index(f, enum, value) > 0
}

// EndTypes returns the end-type table of family f, nil without a registry
func (c *Calculator) EndTypes(f tables.Family) *tables.EndTypeTable {
	if c.reg == nil {
		return nil
	}
	return c.reg.EndTypes(f)
}

// Method resolves a calculation method selection for family f. The value must
// be an option of the family's table and is then matched by name.
func (c *Calculator) Method(f tables.Family, value string) PropCalcMethod {
	if !c.known(f, EnumPropCalcMethod, value) {
		return MethodUnspecified
	}
	return PropCalcMethodFromName(value)
}

// Life resolves a life category selection for family f
func (c *Calculator) Life(f tables.Family, value string) LifeCategory {
	if !c.known(f, EnumLifeCategory, value) {
		return LifeUnspecified
	}
	return LifeCategoryFromName(value)
}

// CompressionEnd resolves a compression end-type selection
func (c *Calculator) CompressionEnd(value string) CompressionEnd {
	if !c.known(tables.Compression, tables.EndTypeEnum, value) {
		return CompressionEndUnspecified
	}
	return CompressionEndFromName(value)
}

// ExtensionEnd resolves an extension end-type selection
func (c *Calculator) ExtensionEnd(value string) ExtensionEnd {
	if !c.known(tables.Extension, tables.EndTypeEnum, value) {
		return ExtensionEndUnspecified
	}
	return ExtensionEndFromName(value)
}

// TorsionEnd resolves a torsion end-type selection
func (c *Calculator) TorsionEnd(value string) TorsionEnd {
	if !c.known(tables.Torsion, tables.EndTypeEnum, value) {
		return TorsionEndUnspecified
	}
	return TorsionEndFromName(value)
}

// SelectCompressionEndType applies the table defaults of option and
// recomputes the whole result.
func (c *Calculator) SelectCompressionEndType(in CompressionInputs, option string) (CompressionInputs, CompressionResult) {
	in = ApplyCompressionEndType(in, c.EndTypes(tables.Compression), option)
	return in, ComputeCompression(in)
}

// SelectExtensionEndType applies the table defaults of option and recomputes
func (c *Calculator) SelectExtensionEndType(in ExtensionInputs, option string) (ExtensionInputs, ExtensionResult) {
	in = ApplyExtensionEndType(in, c.EndTypes(tables.Extension), option)
	return in, ComputeExtension(in)
}

// SelectTorsionEndType applies the table defaults of option and recomputes
func (c *Calculator) SelectTorsionEndType(in TorsionInputs, option string) (TorsionInputs, TorsionResult) {
	in = ApplyTorsionEndType(in, c.EndTypes(tables.Torsion), option)
	return in, ComputeTorsion(in)
}

// NewCompression returns the default compression design with the first
// end type of the table applied.
func (c *Calculator) NewCompression(m material.Material) CompressionInputs {
	in := DefaultCompression(m)
	return ApplyCompressionEndType(in, c.EndTypes(tables.Compression), c.EndTypes(tables.Compression).Default())
}

// NewExtension returns the default extension design with the first end type applied
func (c *Calculator) NewExtension(m material.Material) ExtensionInputs {
	in := DefaultExtension(m)
	return ApplyExtensionEndType(in, c.EndTypes(tables.Extension), c.EndTypes(tables.Extension).Default())
}

// NewTorsion returns the default torsion design with the first end type applied
func (c *Calculator) NewTorsion(m material.Material) TorsionInputs {
	in := DefaultTorsion(m)
	return ApplyTorsionEndType(in, c.EndTypes(tables.Torsion), c.EndTypes(tables.Torsion).Default())
}
