package cmd

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexiusacademia/gospring/internal/catalog"
	"github.com/alexiusacademia/gospring/internal/export"
	"github.com/alexiusacademia/gospring/internal/spring"
	"github.com/alexiusacademia/gospring/internal/tables"
	"github.com/spf13/cobra"
)

var (
	exportFormat string
	exportOutput string
	exportBatch  string
	exportFamily string
	exportSheet  bool
)

var exportCmd = &cobra.Command{
	Use:   "export [NAME...]",
	Short: "Export spring summaries to CSV or XLSX",
	Long: `Export one summary row per spring: outside diameter, wire diameter,
pitch, free length, coils, wire length and rate.

Springs come from the catalog (all of them, the named ones, or one
family) or from an XLSX batch sheet given with --batch. With --sheet the
designs are written back as a batch sheet instead of summaries.

Examples:
  gospring export -o springs.csv
  gospring export valve clip --format xlsx -o springs.xlsx
  gospring export --batch batch.xlsx -o batch.csv
  gospring export --family torsion --sheet -o torsion-batch.xlsx`,
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVar(&exportFormat, "format", "", "Output format: csv or xlsx (default from --output extension)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file [required]")
	exportCmd.Flags().StringVar(&exportBatch, "batch", "", "Read designs from an XLSX batch sheet instead of the catalog")
	exportCmd.Flags().StringVar(&exportFamily, "family", "", "Only export one family")
	exportCmd.Flags().BoolVar(&exportSheet, "sheet", false, "Write designs as an XLSX batch sheet")
	exportCmd.MarkFlagRequired("output")
}

func runExport(cmd *cobra.Command, args []string) error {
	format := strings.ToLower(exportFormat)
	if format == "" {
		format = strings.TrimPrefix(strings.ToLower(filepath.Ext(exportOutput)), ".")
	}
	if exportSheet {
		format = "xlsx"
	}
	if format != "csv" && format != "xlsx" {
		return fmt.Errorf("unsupported export format %q (use csv or xlsx)", format)
	}

	designs, err := exportDesigns(cmd, args)
	if err != nil {
		return err
	}
	if len(designs) == 0 {
		return fmt.Errorf("no designs to export")
	}

	var buf bytes.Buffer
	switch {
	case exportSheet:
		err = export.WriteBatch(&buf, designs)
	case format == "csv":
		err = export.WriteCSV(&buf, evaluateInfos(designs))
	default:
		err = export.WriteXLSX(&buf, evaluateInfos(designs))
	}
	if err != nil {
		return err
	}
	if err := os.WriteFile(exportOutput, buf.Bytes(), 0o644); err != nil {
		return err
	}
	fmt.Printf("  ✓ Exported %d design(s) to: %s\n", len(designs), exportOutput)
	return nil
}

// exportDesigns collects the designs selected by the export flags
func exportDesigns(cmd *cobra.Command, names []string) ([]spring.Design, error) {
	var family tables.Family
	if exportFamily != "" {
		f, err := tables.ParseFamily(exportFamily)
		if err != nil {
			return nil, err
		}
		family = f
	}

	var designs []spring.Design
	if exportBatch != "" {
		batch, err := readBatchFile(exportBatch)
		if err != nil {
			return nil, err
		}
		printSkipped(batch.Skipped)
		designs = batch.Designs
	} else {
		err := withCatalog(func(store *catalog.Store) error {
			if len(names) > 0 {
				for _, name := range names {
					e, err := store.Get(cmd.Context(), name)
					if err != nil {
						return err
					}
					designs = append(designs, e.Design)
				}
				return nil
			}
			entries, err := store.List(cmd.Context(), family)
			if err != nil {
				return err
			}
			for _, e := range entries {
				designs = append(designs, e.Design)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	if family == "" {
		return designs, nil
	}
	out := designs[:0]
	for _, d := range designs {
		if d.Family == family {
			out = append(out, d)
		}
	}
	return out, nil
}

func evaluateInfos(designs []spring.Design) []spring.Info {
	infos := make([]spring.Info, 0, len(designs))
	for _, d := range designs {
		ev, err := d.Evaluate()
		if err != nil {
			app.log.Warn().Str("design", d.Name).Err(err).Msg("Skipping design")
			continue
		}
		infos = append(infos, ev.Info)
	}
	return infos
}
