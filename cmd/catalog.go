package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gospring/internal/catalog"
	"github.com/alexiusacademia/gospring/internal/export"
	"github.com/alexiusacademia/gospring/internal/tables"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	catalogFamily      string
	catalogShowDiagram bool
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Manage saved spring designs",
	Long: `Manage the design catalog, a SQLite database of named spring designs.

Designs are added with the --save flag of the compression, extension
and torsion commands, or in bulk from an XLSX batch sheet.

Available subcommands:
  list      List saved designs
  show      Re-evaluate and report a saved design
  delete    Remove a saved design
  import    Add every valid row of an XLSX batch sheet`,
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved designs",
	RunE:  runCatalogList,
}

var catalogShowCmd = &cobra.Command{
	Use:   "show NAME",
	Short: "Re-evaluate and report a saved design",
	Args:  cobra.ExactArgs(1),
	RunE:  runCatalogShow,
}

var catalogDeleteCmd = &cobra.Command{
	Use:   "delete NAME",
	Short: "Remove a saved design",
	Args:  cobra.ExactArgs(1),
	RunE:  runCatalogDelete,
}

var catalogImportCmd = &cobra.Command{
	Use:   "import FILE.xlsx",
	Short: "Import designs from an XLSX batch sheet",
	Long: `Import designs from the first sheet of an XLSX workbook.

The sheet has a header row followed by one design per row:
  Name, Family, Material, EndType, OutsideDiameterAtFree_mm,
  WireDiameter_mm, LengthAtFree_mm, Coils, Load1, Load2

Rows that cannot be read are reported and skipped. Designs with an
existing name are replaced.`,
	Args: cobra.ExactArgs(1),
	RunE: runCatalogImport,
}

func init() {
	rootCmd.AddCommand(catalogCmd)
	catalogCmd.AddCommand(catalogListCmd, catalogShowCmd, catalogDeleteCmd, catalogImportCmd)

	catalogListCmd.Flags().StringVar(&catalogFamily, "family", "", "Only list one family (compression, extension, torsion)")
	catalogShowCmd.Flags().BoolVar(&catalogShowDiagram, "diagram", false, "Show ASCII load chart and coil sketch")
}

func withCatalog(fn func(*catalog.Store) error) error {
	store, err := openCatalog()
	if err != nil {
		return err
	}
	defer store.Close()
	return fn(store)
}

func runCatalogList(cmd *cobra.Command, args []string) error {
	var family tables.Family
	if catalogFamily != "" {
		f, err := tables.ParseFamily(catalogFamily)
		if err != nil {
			return err
		}
		family = f
	}

	return withCatalog(func(store *catalog.Store) error {
		entries, err := store.List(cmd.Context(), family)
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			fmt.Println("  No saved designs.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  Name\tFamily\tRate\tUpdated\tDescription\n")
		fmt.Fprintf(w, "  ────\t──────\t────\t───────\t───────────\n")
		for _, e := range entries {
			rate := "-"
			if ev, err := e.Design.Evaluate(); err == nil {
				rate = fmt.Sprintf("%.3f", ev.Info.Rate)
			}
			fmt.Fprintf(w, "  %s\t%s\t%s\t%s\t%s\n",
				e.Design.Name, e.Design.Family, rate, e.UpdatedAt.Format("2006-01-02 15:04"), e.Design.Description)
		}
		w.Flush()
		return nil
	})
}

func runCatalogShow(cmd *cobra.Command, args []string) error {
	return withCatalog(func(store *catalog.Store) error {
		e, err := store.Get(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		opts := designFlags{showDiagram: catalogShowDiagram}
		return opts.present(cmd, e.Design)
	})
}

func runCatalogDelete(cmd *cobra.Command, args []string) error {
	return withCatalog(func(store *catalog.Store) error {
		if err := store.Delete(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Printf("  ✓ Design %q deleted\n", args[0])
		return nil
	})
}

func runCatalogImport(cmd *cobra.Command, args []string) error {
	batch, err := readBatchFile(args[0])
	if err != nil {
		return err
	}

	return withCatalog(func(store *catalog.Store) error {
		for _, d := range batch.Designs {
			if err := store.Save(cmd.Context(), d); err != nil {
				return fmt.Errorf("saving %q: %w", d.Name, err)
			}
		}
		fmt.Printf("  ✓ Imported %d design(s) into %s\n", len(batch.Designs), app.cfg.Catalog.Path)
		printSkipped(batch.Skipped)
		return nil
	})
}

func readBatchFile(path string) (*export.Batch, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return export.ReadBatch(file, app.calc, app.log)
}

func printSkipped(skipped []export.RowError) {
	for _, s := range skipped {
		color.Yellow("  ⚠ Skipped %s", s.Error())
	}
}
