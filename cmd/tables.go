package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"

	"github.com/alexiusacademia/gospring/internal/tables"
	"github.com/spf13/cobra"
)

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "Inspect end-type and enumeration tables",
	Long: `Inspect the tables that drive end-type defaults and enumerations.

Tables are read from the directory given by --tables (or the
configuration file), with one subdirectory per spring family. Without a
directory the built-in tables are used.

Available subcommands:
  list      List the tables of every family
  show      Print one family's end-type table or an enumeration
  watch     Reload the tables whenever a file changes`,
}

var tablesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the tables of every family",
	Run:   runTablesList,
}

var tablesShowCmd = &cobra.Command{
	Use:   "show FAMILY [ENUM]",
	Short: "Print a family's end-type table or one of its enumerations",
	Args:  cobra.RangeArgs(1, 2),
	RunE:  runTablesShow,
}

var tablesWatchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Reload the tables whenever a file changes",
	RunE:  runTablesWatch,
}

func init() {
	rootCmd.AddCommand(tablesCmd)
	tablesCmd.AddCommand(tablesListCmd, tablesShowCmd, tablesWatchCmd)
}

func runTablesList(cmd *cobra.Command, args []string) {
	source := app.reg.Dir()
	if source == "" {
		source = "built-in"
	}
	fmt.Printf("  Tables: %s\n\n", source)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Family\tEnumeration\tOptions\n")
	fmt.Fprintf(w, "  ──────\t───────────\t───────\n")
	for _, f := range tables.Families {
		for _, name := range app.reg.EnumNames(f) {
			fmt.Fprintf(w, "  %s\t%s\t%d\n", f, name, len(app.reg.Enum(f, name).Rows))
		}
	}
	w.Flush()
}

func runTablesShow(cmd *cobra.Command, args []string) error {
	family, err := tables.ParseFamily(args[0])
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer w.Flush()

	if len(args) == 2 && args[1] != tables.EndTypeEnum {
		e := app.reg.Enum(family, args[1])
		if len(e.Rows) == 0 {
			return fmt.Errorf("no %s enumeration %q (available: %s)",
				family, args[1], strings.Join(app.reg.EnumNames(family), ", "))
		}
		fmt.Fprintf(w, "  #\t%s\n", strings.Join(append([]string{e.Name}, e.Columns...), "\t"))
		for i, r := range e.Rows {
			cells := []string{r.Option}
			for _, v := range r.Values {
				cells = append(cells, formatCell(v))
			}
			fmt.Fprintf(w, "  %d\t%s\n", i+1, strings.Join(cells, "\t"))
		}
		return nil
	}

	et := app.reg.EndTypes(family)
	if et.Empty() {
		return fmt.Errorf("no %s end-type table", family)
	}
	header := []string{tables.EndTypeEnum}
	for _, p := range et.Properties {
		header = append(header, fmt.Sprintf("%s (%s)", p.Name, p.Group))
	}
	fmt.Fprintf(w, "  %s\n", strings.Join(header, "\t"))
	for _, opt := range et.Options {
		cells := []string{opt}
		for _, p := range et.Properties {
			cells = append(cells, formatCell(et.Values[opt][p.Key]))
		}
		fmt.Fprintf(w, "  %s\n", strings.Join(cells, "\t"))
	}
	return nil
}

func formatCell(v any) string {
	switch x := v.(type) {
	case nil:
		return "-"
	case float64:
		return fmt.Sprintf("%g", x)
	default:
		return fmt.Sprint(x)
	}
}

func runTablesWatch(cmd *cobra.Command, args []string) error {
	if app.reg.Dir() == "" {
		return fmt.Errorf("built-in tables cannot be watched; pass --tables DIR")
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("  Watching %s (Ctrl+C to stop)\n", app.reg.Dir())
	return app.reg.Watch(ctx, func() {
		for _, f := range tables.Families {
			app.log.Info().Str("family", string(f)).Int("end_types", len(app.reg.EndTypes(f).Options)).Msg("Tables reloaded")
		}
	})
}
