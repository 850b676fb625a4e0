package cmd

import (
	"github.com/alexiusacademia/gospring/internal/material"
	"github.com/alexiusacademia/gospring/internal/spring"
	"github.com/alexiusacademia/gospring/internal/tables"
	"github.com/spf13/cobra"
)

var (
	compressionOpts designFlags

	compOuter    float64
	compWire     float64
	compLength   float64
	compCoils    float64
	compInactive float64
	compAdd      float64
	compForce1   float64
	compForce2   float64
)

var compressionCmd = &cobra.Command{
	Use:     "compression",
	Aliases: []string{"comp"},
	Short:   "Analyze a helical compression spring",
	Long: `Calculate rate, stresses and factors of safety of a helical
compression spring.

Selecting an end type loads its inactive coils and additional coils
at solid from the end-type table. Explicit --inactive and --add-coils
values override the table.

Examples:
  gospring compression --outer 20 --wire 2 --length 25 --coils 10
  gospring compression -e Closed\&Ground --force1 10 --force2 40 --diagram
  gospring compression -f valve.json --pdf valve.pdf --save valve`,
	RunE: runCompression,
}

func init() {
	rootCmd.AddCommand(compressionCmd)

	def := spring.DefaultCompression(material.Material{})
	f := compressionCmd.Flags()
	f.Float64Var(&compOuter, "outer", def.OuterDiameterAtFree, "Outside diameter at free length (mm)")
	f.Float64Var(&compWire, "wire", def.WireDiameter, "Wire diameter (mm)")
	f.Float64Var(&compLength, "length", def.LengthAtFree, "Free length (mm)")
	f.Float64Var(&compCoils, "coils", def.CoilsTotal, "Total coils")
	f.Float64Var(&compInactive, "inactive", def.InactiveCoils, "Inactive coils (default from end type)")
	f.Float64Var(&compAdd, "add-coils", def.AddCoilsAtSolid, "Additional coils at solid (default from end type)")
	f.Float64Var(&compForce1, "force1", def.Force1, "Working force 1 (N)")
	f.Float64Var(&compForce2, "force2", def.Force2, "Working force 2 (N)")

	compressionOpts.bind(compressionCmd)
}

func runCompression(cmd *cobra.Command, args []string) error {
	opts := &compressionOpts
	if err := opts.checkEndType(tables.Compression); err != nil {
		return err
	}

	d, err := opts.loadFile(tables.Compression)
	if err != nil {
		return err
	}
	if d == nil {
		m, err := lookupMaterial(opts.material)
		if err != nil {
			return err
		}
		nd := spring.NewCompressionDesign(opts.name, app.calc.NewCompression(m))
		d = &nd
	}

	in := *d.Compression
	if opts.endType != "" {
		in = spring.ApplyCompressionEndType(in, app.calc.EndTypes(tables.Compression), opts.endType)
	}
	override(cmd, "outer", &in.OuterDiameterAtFree, compOuter)
	override(cmd, "wire", &in.WireDiameter, compWire)
	override(cmd, "length", &in.LengthAtFree, compLength)
	override(cmd, "coils", &in.CoilsTotal, compCoils)
	override(cmd, "inactive", &in.InactiveCoils, compInactive)
	override(cmd, "add-coils", &in.AddCoilsAtSolid, compAdd)
	override(cmd, "force1", &in.Force1, compForce1)
	override(cmd, "force2", &in.Force2, compForce2)
	if err := opts.applyStrength(cmd, tables.Compression, &in.Strength); err != nil {
		return err
	}

	d.Compression = &in
	opts.describe(cmd, d)
	app.log.Debug().Str("design", d.Name).Str("end_type", in.EndType.String()).Msg("Compression inputs resolved")
	return opts.present(cmd, *d)
}
