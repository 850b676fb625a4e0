package cmd

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/alexiusacademia/gospring/internal/diagram"
	"github.com/alexiusacademia/gospring/internal/export"
	"github.com/alexiusacademia/gospring/internal/spring"
	"github.com/alexiusacademia/gospring/internal/tables"
	"github.com/alexiusacademia/gospring/internal/version"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// designFlags are the options shared by the compression, extension and
// torsion commands
type designFlags struct {
	file        string
	name        string
	description string
	material    string
	endType     string

	method   string
	life     string
	tensile  float64
	pctEndur float64
	pctStat  float64
	limEndur float64
	limStat  float64

	showDiagram bool
	exportFile  string
	pdfFile     string
	save        string
}

func (o *designFlags) bind(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVarP(&o.file, "file", "f", "", "Load the design from a JSON file; other flags override it")
	f.StringVarP(&o.name, "name", "n", "", "Design name (used for reports and --save)")
	f.StringVar(&o.description, "description", "", "Design description")
	f.StringVarP(&o.material, "material", "m", "", "Material key (default from configuration)")
	f.StringVarP(&o.endType, "end-type", "e", "", "End type option; loads its dependent defaults")

	// Strength options
	f.StringVar(&o.method, "method", "", "Property calculation method (Use_Material_Table, Specify_Tensile, Specify_Stress_Limits)")
	f.StringVar(&o.life, "life", "", "Life category for the material table method")
	f.Float64Var(&o.tensile, "tensile", 0, "Tensile strength (MPa)")
	f.Float64Var(&o.pctEndur, "pct-endur", 0, "Endurance limit as a percent of tensile")
	f.Float64Var(&o.pctStat, "pct-stat", 0, "Static limit as a percent of tensile")
	f.Float64Var(&o.limEndur, "lim-endur", 0, "Endurance stress limit (MPa)")
	f.Float64Var(&o.limStat, "lim-stat", 0, "Static stress limit (MPa)")

	// Output options
	f.BoolVar(&o.showDiagram, "diagram", false, "Show ASCII load chart and coil sketch")
	f.StringVarP(&o.exportFile, "output", "o", "", "Export load chart to file (png, svg, pdf)")
	f.StringVar(&o.pdfFile, "pdf", "", "Write a PDF calculation report")
	f.StringVar(&o.save, "save", "", "Save the design to the catalog under `NAME`")
}

// loadFile reads the design file when one is given and checks its family
func (o *designFlags) loadFile(family tables.Family) (*spring.Design, error) {
	if o.file == "" {
		return nil, nil
	}
	d, err := spring.LoadFromFile(o.file)
	if err != nil {
		return nil, fmt.Errorf("loading design: %w", err)
	}
	if d.Family != family {
		return nil, fmt.Errorf("%s holds a %s spring, not a %s spring", o.file, d.Family, family)
	}
	return d, nil
}

// checkEndType fails for an option the family's end-type table does not have
func (o *designFlags) checkEndType(family tables.Family) error {
	if o.endType == "" {
		return nil
	}
	et := app.reg.EndTypes(family)
	if !et.Has(o.endType) {
		return fmt.Errorf("unknown %s end type %q (available: %s)",
			family, o.endType, strings.Join(et.Options, ", "))
	}
	return nil
}

// applyStrength overrides the strength inputs with every flag that was set
func (o *designFlags) applyStrength(cmd *cobra.Command, family tables.Family, s *spring.Strength) error {
	f := cmd.Flags()
	if f.Changed("material") {
		m, err := lookupMaterial(o.material)
		if err != nil {
			return err
		}
		s.Material = m
	}
	if f.Changed("method") {
		s.PropCalcMethod = app.calc.Method(family, o.method)
		if s.PropCalcMethod == spring.MethodUnspecified {
			return fmt.Errorf("unknown calculation method %q (available: %s)",
				o.method, strings.Join(app.reg.Enum(family, spring.EnumPropCalcMethod).Options(), ", "))
		}
	}
	if f.Changed("life") {
		s.LifeCategory = app.calc.Life(family, o.life)
		if s.LifeCategory == spring.LifeUnspecified {
			return fmt.Errorf("unknown life category %q (available: %s)",
				o.life, strings.Join(app.reg.Enum(family, spring.EnumLifeCategory).Options(), ", "))
		}
	}

	modes := spring.FieldModes(s.PropCalcMethod)
	set := func(flag, field string, dst *float64, v float64) {
		if !f.Changed(flag) {
			return
		}
		if modes[field] != spring.Editable {
			app.log.Warn().Str("flag", flag).Str("method", s.PropCalcMethod.String()).
				Msgf("Value is %s for this method and will not be used", modes[field])
		}
		*dst = v
	}
	set("tensile", spring.FieldTensile, &s.Tensile, o.tensile)
	set("pct-endur", spring.FieldPercentTensileEndur, &s.PercentTensileEndur, o.pctEndur)
	set("pct-stat", spring.FieldPercentTensileStat, &s.PercentTensileStat, o.pctStat)
	set("lim-endur", spring.FieldStressLimEndur, &s.StressLimEndur, o.limEndur)
	set("lim-stat", spring.FieldStressLimStat, &s.StressLimStat, o.limStat)
	return nil
}

// describe applies the name and description flags to a design
func (o *designFlags) describe(cmd *cobra.Command, d *spring.Design) {
	if cmd.Flags().Changed("name") || d.Name == "" {
		d.Name = o.name
	}
	if o.save != "" {
		d.Name = o.save
	}
	if d.Name == "" {
		d.Name = "unnamed-" + d.Family.Dir()
	}
	if cmd.Flags().Changed("description") {
		d.Description = o.description
	}
}

// override copies a float flag onto dst when it was set on the command line
func override(cmd *cobra.Command, flag string, dst *float64, v float64) {
	if cmd.Flags().Changed(flag) {
		*dst = v
	}
}

// present evaluates the design and produces every requested output
func (o *designFlags) present(cmd *cobra.Command, d spring.Design) error {
	ev, err := d.Evaluate()
	if err != nil {
		return fmt.Errorf("evaluating design: %w", err)
	}

	printReport(d, ev)

	if o.showDiagram {
		fmt.Println("LOAD CHART:")
		fmt.Println("───────────────────────────────────────────────────────────────")
		fmt.Print(diagram.DrawLoadChart(ev.Curve, 60, 12))
		fmt.Println()
		fmt.Println("COIL SKETCH:")
		fmt.Println("───────────────────────────────────────────────────────────────")
		fmt.Print(diagram.DrawCoilSketch(ev.Helix))
		fmt.Println()
		fmt.Print(diagram.DrawSummaryBox(d.Name, summaryLines(d, ev)))
		fmt.Println()
	}

	title := fmt.Sprintf("%s spring %s", d.Family, d.Name)
	if o.exportFile != "" {
		path, err := diagram.ExportLoadChart(ev.Curve, title, o.exportFile)
		if err != nil {
			return fmt.Errorf("exporting load chart: %w", err)
		}
		fmt.Printf("  ✓ Load chart exported to: %s\n", path)
	}

	if o.pdfFile != "" {
		if err := writeReport(o.pdfFile, title, d, ev); err != nil {
			return err
		}
		fmt.Printf("  ✓ Report written to: %s\n", o.pdfFile)
	}

	if o.save != "" {
		store, err := openCatalog()
		if err != nil {
			return err
		}
		defer store.Close()

		ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
		defer cancel()
		if err := store.Save(ctx, d); err != nil {
			return fmt.Errorf("saving design: %w", err)
		}
		fmt.Printf("  ✓ Design %q saved to catalog: %s\n", d.Name, app.cfg.Catalog.Path)
	}
	return nil
}

func writeReport(path, title string, d spring.Design, ev *spring.Evaluation) error {
	chart, err := diagram.RenderLoadChartPNG(ev.Curve, title)
	if err != nil {
		app.log.Warn().Err(err).Msg("Load chart left out of report")
		chart = nil
	}

	var buf bytes.Buffer
	meta := export.ReportMeta{
		Project: d.Name,
		Author:  version.Author,
		Notes:   d.Description,
	}
	if err := export.WritePDF(&buf, meta, d, ev, chart); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}

// printReport writes the report sections of an evaluation to stdout
func printReport(d spring.Design, ev *spring.Evaluation) {
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Printf("     %s SPRING ANALYSIS\n", strings.ToUpper(string(d.Family)))
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Printf("  Design: %s\n", d.Name)
	if d.Description != "" {
		fmt.Printf("  Description: %s\n", d.Description)
	}
	fmt.Println()

	for _, sec := range ev.Report {
		fmt.Printf("%s:\n", strings.ToUpper(sec.Title))
		fmt.Println("───────────────────────────────────────────────────────────────")
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		for _, line := range sec.Lines {
			fmt.Fprintf(w, "  %s:\t%s\n", line.Label, formatLine(line))
		}
		w.Flush()
		fmt.Println()
	}

	printStatus(ev.Report)
}

func formatLine(l spring.Line) string {
	if l.Text != "" {
		return l.Text
	}
	v := fmt.Sprintf("%.*f", l.Precision, l.Value)
	if l.Unit != "" {
		v += " " + l.Unit
	}
	if l.Safety {
		if l.Value >= 1 {
			v += " " + color.GreenString("✓")
		} else {
			v += " " + color.RedString("⚠")
		}
	}
	return v
}

// printStatus summarises the factors of safety of a report
func printStatus(report []spring.Section) {
	var low []string
	for _, sec := range report {
		for _, l := range sec.Lines {
			if l.Safety && l.Value < 1 {
				low = append(low, l.Label)
			}
		}
	}

	fmt.Println("STATUS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	if len(low) == 0 {
		color.Green("  ✓ All factors of safety are at least 1.0")
	} else {
		color.Red("  ⚠ Below 1.0: %s", strings.Join(low, ", "))
	}
	fmt.Println()
}

func summaryLines(d spring.Design, ev *spring.Evaluation) []string {
	rateUnit := "N/mm"
	if d.Family == tables.Torsion {
		rateUnit = "N·mm/rad"
	}
	return []string{
		fmt.Sprintf("Family:  %s", d.Family),
		fmt.Sprintf("OD x d:  %.2f x %.2f mm", ev.Info.OuterDiameterAtFree, ev.Info.WireDiameter),
		fmt.Sprintf("Length:  %.2f mm", ev.Info.LengthAtFree),
		fmt.Sprintf("Coils:   %.2f", ev.Info.Coils),
		fmt.Sprintf("Rate:    %.3f %s", ev.Info.Rate, rateUnit),
		fmt.Sprintf("Wire:    %.1f mm", ev.Info.WireLength),
	}
}
