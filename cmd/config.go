package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gospring/internal/config"
	"github.com/spf13/cobra"
)

var configForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect or create the configuration file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default configuration file",
	// a broken configuration must not stop it from being replaced
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	RunE:              runConfigInit,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Run:   runConfigShow,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd, configShowCmd)

	configInitCmd.Flags().BoolVar(&configForce, "force", false, "Overwrite an existing file")
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	if _, err := os.Stat(configFile); err == nil && !configForce {
		return fmt.Errorf("%s already exists (use --force to overwrite)", configFile)
	}
	if err := config.DefaultConfig().Save(configFile); err != nil {
		return err
	}
	fmt.Printf("  ✓ Configuration written to: %s\n", configFile)
	return nil
}

func runConfigShow(cmd *cobra.Command, args []string) {
	tablesSource := app.cfg.Tables.Dir
	if tablesSource == "" {
		tablesSource = "built-in"
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Config file:\t%s\n", configFile)
	fmt.Fprintf(w, "  Tables:\t%s\n", tablesSource)
	fmt.Fprintf(w, "  Catalog:\t%s\n", app.cfg.Catalog.Path)
	fmt.Fprintf(w, "  Log level:\t%s\n", app.cfg.Logging.Level)
	fmt.Fprintf(w, "  Log format:\t%s\n", app.cfg.Logging.Format)
	fmt.Fprintf(w, "  Default material:\t%s\n", app.cfg.Design.Material)
	w.Flush()
}
