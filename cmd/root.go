package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/gospring/internal/catalog"
	"github.com/alexiusacademia/gospring/internal/config"
	"github.com/alexiusacademia/gospring/internal/logging"
	"github.com/alexiusacademia/gospring/internal/material"
	"github.com/alexiusacademia/gospring/internal/spring"
	"github.com/alexiusacademia/gospring/internal/tables"
	"github.com/alexiusacademia/gospring/internal/version"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	configFile  string
	tablesDir   string
	logLevel    string
	catalogPath string
)

// app holds what every command needs once flags and configuration are read
var app struct {
	cfg  *config.Config
	log  zerolog.Logger
	reg  *tables.Registry
	calc *spring.Calculator
}

var rootCmd = &cobra.Command{
	Use:   "gospring",
	Short: "Mechanical Spring Calculator",
	Long: `gospring - Go Mechanical Spring Calculator

A CLI tool for the analysis of helical springs:
  - Compression springs (end-type dependent pitch and solid height)
  - Extension springs (hooks, loops and initial tension)
  - Torsion springs (arm deflection and bending stress)

Rates, stresses, factors of safety, weight and stored energy are
derived from the wire, coil and material inputs. End types and
enumerations are read from tables that can be replaced per project.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gospring v%-46s║\n", version.Version)
		fmt.Println("  ║   Go Mechanical Spring Calculator                         ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Compression, extension and torsion spring analysis")
		fmt.Println("    • Table driven end types and stress limit methods")
		fmt.Println("    • Load charts, PDF reports, CSV and XLSX exports")
		fmt.Println("    • Design catalog and XLSX batch import")
		fmt.Println()
		fmt.Println("  Use 'gospring --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&configFile, "config", config.DefaultConfigPath(), "Configuration file")
	rootCmd.PersistentFlags().StringVar(&tablesDir, "tables", "", "End-type and enumeration table directory (default: built-in tables)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "Design catalog database")
}

// setup loads configuration, logging and tables before any command runs
func setup(cmd *cobra.Command, args []string) error {
	if err := config.LoadEnv(); err != nil {
		return err
	}

	cfg, err := config.Load(configFile)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("tables") {
		cfg.Tables.Dir = tablesDir
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Logging.Level = logLevel
	}
	if cmd.Flags().Changed("catalog") {
		cfg.Catalog.Path = catalogPath
	}

	logger, err := logging.Setup(os.Stderr, cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		return err
	}

	reg, err := tables.Open(cfg.Tables.Dir, logger)
	if err != nil {
		return err
	}

	app.cfg = cfg
	app.log = logger
	app.reg = reg
	app.calc = spring.NewCalculator(reg)
	logger.Debug().Str("config", configFile).Str("tables", reg.Dir()).Msg("Configuration loaded")
	return nil
}

// openCatalog opens the configured design catalog
func openCatalog() (*catalog.Store, error) {
	return catalog.Open(app.cfg.Catalog.Path, app.log)
}

// lookupMaterial resolves a material key, falling back to the configured default
func lookupMaterial(key string) (material.Material, error) {
	if key == "" {
		key = app.cfg.Design.Material
	}
	return material.Lookup(key)
}
