package cmd

import (
	"github.com/alexiusacademia/gospring/internal/material"
	"github.com/alexiusacademia/gospring/internal/spring"
	"github.com/alexiusacademia/gospring/internal/tables"
	"github.com/spf13/cobra"
)

var (
	torsionOpts designFlags

	torOuter    float64
	torWire     float64
	torCoils    float64
	torInactive float64
	torArm1     float64
	torArm2     float64
	torArmCoils bool
	torMoment1  float64
	torMoment2  float64
)

var torsionCmd = &cobra.Command{
	Use:     "torsion",
	Aliases: []string{"tor"},
	Short:   "Analyze a helical torsion spring",
	Long: `Calculate angular rate, bending stresses and factors of safety
of a helical torsion spring.

Arm deflection is included as equivalent coils when the arms add
coils. Moments are in N·mm and deflections are reported in degrees.

Examples:
  gospring torsion --outer 20 --wire 2 --coils 6 --moment1 100 --moment2 300
  gospring torsion -e Hinged --arm1 30 --arm2 30 --diagram`,
	RunE: runTorsion,
}

func init() {
	rootCmd.AddCommand(torsionCmd)

	def := spring.DefaultTorsion(material.Material{})
	f := torsionCmd.Flags()
	f.Float64Var(&torOuter, "outer", def.OuterDiameterAtFree, "Outside diameter at free position (mm)")
	f.Float64Var(&torWire, "wire", def.WireDiameter, "Wire diameter (mm)")
	f.Float64Var(&torCoils, "coils", def.CoilsTotal, "Total body coils")
	f.Float64Var(&torInactive, "inactive", def.InactiveCoils, "Inactive coils (default from end type)")
	f.Float64Var(&torArm1, "arm1", def.ArmLength1, "Arm 1 length (mm)")
	f.Float64Var(&torArm2, "arm2", def.ArmLength2, "Arm 2 length (mm)")
	f.BoolVar(&torArmCoils, "arms-add-coils", def.ArmsAddCoils, "Count arm deflection as equivalent coils (default from end type)")
	f.Float64Var(&torMoment1, "moment1", def.Moment1, "Working moment 1 (N·mm)")
	f.Float64Var(&torMoment2, "moment2", def.Moment2, "Working moment 2 (N·mm)")

	torsionOpts.bind(torsionCmd)
}

func runTorsion(cmd *cobra.Command, args []string) error {
	opts := &torsionOpts
	if err := opts.checkEndType(tables.Torsion); err != nil {
		return err
	}

	d, err := opts.loadFile(tables.Torsion)
	if err != nil {
		return err
	}
	if d == nil {
		m, err := lookupMaterial(opts.material)
		if err != nil {
			return err
		}
		nd := spring.NewTorsionDesign(opts.name, app.calc.NewTorsion(m))
		d = &nd
	}

	in := *d.Torsion
	if opts.endType != "" {
		in = spring.ApplyTorsionEndType(in, app.calc.EndTypes(tables.Torsion), opts.endType)
	}
	override(cmd, "outer", &in.OuterDiameterAtFree, torOuter)
	override(cmd, "wire", &in.WireDiameter, torWire)
	override(cmd, "coils", &in.CoilsTotal, torCoils)
	override(cmd, "inactive", &in.InactiveCoils, torInactive)
	override(cmd, "arm1", &in.ArmLength1, torArm1)
	override(cmd, "arm2", &in.ArmLength2, torArm2)
	override(cmd, "moment1", &in.Moment1, torMoment1)
	override(cmd, "moment2", &in.Moment2, torMoment2)
	if cmd.Flags().Changed("arms-add-coils") {
		in.ArmsAddCoils = torArmCoils
	}
	if err := opts.applyStrength(cmd, tables.Torsion, &in.Strength); err != nil {
		return err
	}

	d.Torsion = &in
	opts.describe(cmd, d)
	app.log.Debug().Str("design", d.Name).Str("end_type", in.EndType.String()).Msg("Torsion inputs resolved")
	return opts.present(cmd, *d)
}
