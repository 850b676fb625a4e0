// Package export writes spring tables and reports to CSV, XLSX and PDF and
// reads XLSX batch files back into designs.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/alexiusacademia/gospring/internal/spring"
)

// InfoHeader is the column header of the spring info export
var InfoHeader = []string{
	"Name",
	"OutsideDiameterAtFree_mm",
	"WireDiameter_mm",
	"Pitch_mm",
	"LengthAtFree_mm",
	"Coils",
	"WireLength_mm",
	"SpringRate_N_per_mm",
}

// InfoRecord formats one spring as an export record
func InfoRecord(info spring.Info) []string {
	return []string{
		info.Name,
		fmt.Sprintf("%.2f", info.OuterDiameterAtFree),
		fmt.Sprintf("%.2f", info.WireDiameter),
		fmt.Sprintf("%.2f", info.Pitch),
		fmt.Sprintf("%.2f", info.LengthAtFree),
		fmt.Sprintf("%.2f", info.Coils),
		fmt.Sprintf("%.1f", info.WireLength),
		fmt.Sprintf("%.3f", info.Rate),
	}
}

// WriteCSV writes the header and one record per spring
func WriteCSV(w io.Writer, infos []spring.Info) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(InfoHeader); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, info := range infos {
		if err := writer.Write(InfoRecord(info)); err != nil {
			return fmt.Errorf("failed to write csv row %q: %w", info.Name, err)
		}
	}
	writer.Flush()
	return writer.Error()
}

// SaveCSV writes the info export to a file
func SaveCSV(path string, infos []spring.Info) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer file.Close()

	if err := WriteCSV(file, infos); err != nil {
		return err
	}
	return file.Close()
}
