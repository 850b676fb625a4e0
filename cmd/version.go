package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gospring/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gospring",
	// version needs no configuration or tables
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gospring v%s\n", version.Version)
		fmt.Println("Mechanical Spring Calculator")
		fmt.Printf("Built: %s (commit %s)\n", version.BuildTime, version.GitCommit)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
