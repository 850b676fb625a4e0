package cmd

import (
	"github.com/alexiusacademia/gospring/internal/material"
	"github.com/alexiusacademia/gospring/internal/spring"
	"github.com/alexiusacademia/gospring/internal/tables"
	"github.com/spf13/cobra"
)

var (
	extensionOpts designFlags

	extOuter   float64
	extWire    float64
	extCoils   float64
	extHook    float64
	extLoop    float64
	extInitial float64
	extForce1  float64
	extForce2  float64
)

var extensionCmd = &cobra.Command{
	Use:     "extension",
	Aliases: []string{"ext"},
	Short:   "Analyze a helical extension spring",
	Long: `Calculate rate, stresses and factors of safety of a helical
extension spring with initial tension.

Selecting an end type loads the hook deflection allowance and loop
fraction from the end-type table. Deflections are measured from the
point where the applied force overcomes the initial tension.

Examples:
  gospring extension --outer 12 --wire 1.2 --coils 20 --initial 2
  gospring extension -e Full_Hook --force1 5 --force2 15 -o ext.png`,
	RunE: runExtension,
}

func init() {
	rootCmd.AddCommand(extensionCmd)

	def := spring.DefaultExtension(material.Material{})
	f := extensionCmd.Flags()
	f.Float64Var(&extOuter, "outer", def.OuterDiameterAtFree, "Outside diameter at free length (mm)")
	f.Float64Var(&extWire, "wire", def.WireDiameter, "Wire diameter (mm)")
	f.Float64Var(&extCoils, "coils", def.CoilsTotal, "Total body coils")
	f.Float64Var(&extHook, "hook-coils", def.HookDeflectAll, "Equivalent coils added by the hooks (default from end type)")
	f.Float64Var(&extLoop, "loop", def.LoopFraction, "Loop fraction at each end (default from end type)")
	f.Float64Var(&extInitial, "initial", def.InitialTension, "Initial tension (N)")
	f.Float64Var(&extForce1, "force1", def.Force1, "Working force 1 (N)")
	f.Float64Var(&extForce2, "force2", def.Force2, "Working force 2 (N)")

	extensionOpts.bind(extensionCmd)
}

func runExtension(cmd *cobra.Command, args []string) error {
	opts := &extensionOpts
	if err := opts.checkEndType(tables.Extension); err != nil {
		return err
	}

	d, err := opts.loadFile(tables.Extension)
	if err != nil {
		return err
	}
	if d == nil {
		m, err := lookupMaterial(opts.material)
		if err != nil {
			return err
		}
		nd := spring.NewExtensionDesign(opts.name, app.calc.NewExtension(m))
		d = &nd
	}

	in := *d.Extension
	if opts.endType != "" {
		in = spring.ApplyExtensionEndType(in, app.calc.EndTypes(tables.Extension), opts.endType)
	}
	override(cmd, "outer", &in.OuterDiameterAtFree, extOuter)
	override(cmd, "wire", &in.WireDiameter, extWire)
	override(cmd, "coils", &in.CoilsTotal, extCoils)
	override(cmd, "hook-coils", &in.HookDeflectAll, extHook)
	override(cmd, "loop", &in.LoopFraction, extLoop)
	override(cmd, "initial", &in.InitialTension, extInitial)
	override(cmd, "force1", &in.Force1, extForce1)
	override(cmd, "force2", &in.Force2, extForce2)
	if err := opts.applyStrength(cmd, tables.Extension, &in.Strength); err != nil {
		return err
	}

	d.Extension = &in
	opts.describe(cmd, d)
	app.log.Debug().Str("design", d.Name).Str("end_type", in.EndType.String()).Msg("Extension inputs resolved")
	return opts.present(cmd, *d)
}
