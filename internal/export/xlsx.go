package export

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alexiusacademia/gospring/internal/material"
	"github.com/alexiusacademia/gospring/internal/spring"
	"github.com/alexiusacademia/gospring/internal/tables"
	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"
)

const (
	infoSheet  = "Springs"
	batchSheet = "Batch"
)

// BatchHeader lists the columns of a batch import sheet. Load1 and Load2 are
// forces (N) for compression and extension and moments (N·mm) for torsion.
// LengthAtFree_mm is ignored for extension and torsion springs.
var BatchHeader = []string{
	"Name",
	"Family",
	"Material",
	"EndType",
	"OutsideDiameterAtFree_mm",
	"WireDiameter_mm",
	"LengthAtFree_mm",
	"Coils",
	"Load1",
	"Load2",
}

// WriteXLSX writes the info export as a workbook with one sheet
func WriteXLSX(w io.Writer, infos []spring.Info) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", infoSheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	sw, err := f.NewStreamWriter(infoSheet)
	if err != nil {
		return fmt.Errorf("failed to open stream writer: %w", err)
	}

	if err := sw.SetRow("A1", toRow(InfoHeader)); err != nil {
		return err
	}
	for i, info := range infos {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := sw.SetRow(cell, []interface{}{
			info.Name,
			round(info.OuterDiameterAtFree, 2),
			round(info.WireDiameter, 2),
			round(info.Pitch, 2),
			round(info.LengthAtFree, 2),
			round(info.Coils, 2),
			round(info.WireLength, 1),
			round(info.Rate, 3),
		}); err != nil {
			return fmt.Errorf("failed to write row %q: %w", info.Name, err)
		}
	}
	if err := sw.Flush(); err != nil {
		return fmt.Errorf("failed to flush sheet: %w", err)
	}

	_, err = f.WriteTo(w)
	return err
}

// WriteBatch writes designs in the batch import layout
func WriteBatch(w io.Writer, designs []spring.Design) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", batchSheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}
	sw, err := f.NewStreamWriter(batchSheet)
	if err != nil {
		return fmt.Errorf("failed to open stream writer: %w", err)
	}
	if err := sw.SetRow("A1", toRow(BatchHeader)); err != nil {
		return err
	}

	row := 2
	for _, d := range designs {
		values, ok := batchRow(d)
		if !ok {
			continue
		}
		cell, _ := excelize.CoordinatesToCellName(1, row)
		if err := sw.SetRow(cell, values); err != nil {
			return fmt.Errorf("failed to write row %q: %w", d.Name, err)
		}
		row++
	}
	if err := sw.Flush(); err != nil {
		return fmt.Errorf("failed to flush sheet: %w", err)
	}

	_, err = f.WriteTo(w)
	return err
}

func batchRow(d spring.Design) ([]interface{}, bool) {
	switch {
	case d.Family == tables.Compression && d.Compression != nil:
		in := d.Compression
		return []interface{}{d.Name, string(d.Family), in.Material.Key, in.EndType.String(),
			in.OuterDiameterAtFree, in.WireDiameter, in.LengthAtFree, in.CoilsTotal, in.Force1, in.Force2}, true
	case d.Family == tables.Extension && d.Extension != nil:
		in := d.Extension
		return []interface{}{d.Name, string(d.Family), in.Material.Key, in.EndType.String(),
			in.OuterDiameterAtFree, in.WireDiameter, "", in.CoilsTotal, in.Force1, in.Force2}, true
	case d.Family == tables.Torsion && d.Torsion != nil:
		in := d.Torsion
		return []interface{}{d.Name, string(d.Family), in.Material.Key, in.EndType.String(),
			in.OuterDiameterAtFree, in.WireDiameter, "", in.CoilsTotal, in.Moment1, in.Moment2}, true
	}
	return nil, false
}

// Batch is the outcome of reading a batch import sheet
type Batch struct {
	Designs []spring.Design
	Skipped []RowError
}

// RowError records a sheet row that could not be imported
type RowError struct {
	Row int // 1-based sheet row
	Err error
}

func (e RowError) Error() string {
	return fmt.Sprintf("row %d: %v", e.Row, e.Err)
}

// ReadBatch reads the first sheet of a workbook as batch import rows. End
// types are applied from the calculator's tables. Rows that cannot be parsed
// are skipped and reported.
func ReadBatch(r io.Reader, calc *spring.Calculator, log zerolog.Logger) (*Batch, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("sheet %q has no data rows", sheet)
	}

	batch := &Batch{}
	for i := 1; i < len(rows); i++ {
		if blank(rows[i]) {
			continue
		}
		d, err := parseBatchRow(rows[i], calc)
		if err != nil {
			log.Warn().Int("row", i+1).Err(err).Msg("Skipping batch row")
			batch.Skipped = append(batch.Skipped, RowError{Row: i + 1, Err: err})
			continue
		}
		batch.Designs = append(batch.Designs, d)
	}
	return batch, nil
}

func parseBatchRow(row []string, calc *spring.Calculator) (spring.Design, error) {
	if len(row) < 6 {
		return spring.Design{}, fmt.Errorf("expected at least 6 columns, got %d", len(row))
	}
	cell := func(i int) string {
		if i < len(row) {
			return strings.TrimSpace(row[i])
		}
		return ""
	}

	name := cell(0)
	if name == "" {
		return spring.Design{}, fmt.Errorf("missing name")
	}
	family, err := tables.ParseFamily(cell(1))
	if err != nil {
		return spring.Design{}, err
	}
	key := cell(2)
	if key == "" {
		key = material.DefaultKey
	}
	m, err := material.Lookup(key)
	if err != nil {
		return spring.Design{}, err
	}

	num := func(col int) (float64, bool, error) {
		s := cell(col)
		if s == "" {
			return 0, false, nil
		}
		v, err := toFloat(s)
		if err != nil {
			return 0, false, fmt.Errorf("column %s: %w", BatchHeader[col], err)
		}
		return v, true, nil
	}

	var outer, wire float64
	for col, dst := range map[int]*float64{4: &outer, 5: &wire} {
		v, ok, err := num(col)
		if err != nil {
			return spring.Design{}, err
		}
		if !ok {
			return spring.Design{}, fmt.Errorf("column %s is required", BatchHeader[col])
		}
		*dst = v
	}

	present := make(map[int]float64)
	for col := 6; col < len(BatchHeader); col++ {
		v, ok, err := num(col)
		if err != nil {
			return spring.Design{}, err
		}
		if ok {
			present[col] = v
		}
	}
	set := func(dst *float64, col int) {
		if v, ok := present[col]; ok {
			*dst = v
		}
	}
	endType := cell(3)
	if et := calc.EndTypes(family); endType != "" && !et.Has(endType) {
		return spring.Design{}, fmt.Errorf("unknown %s end type %q (available: %s)",
			family, endType, strings.Join(et.Options, ", "))
	}

	switch family {
	case tables.Compression:
		in := calc.NewCompression(m)
		in.OuterDiameterAtFree, in.WireDiameter = outer, wire
		set(&in.LengthAtFree, 6)
		set(&in.CoilsTotal, 7)
		set(&in.Force1, 8)
		set(&in.Force2, 9)
		if endType != "" {
			in = spring.ApplyCompressionEndType(in, calc.EndTypes(tables.Compression), endType)
		}
		return spring.NewCompressionDesign(name, in), nil
	case tables.Extension:
		in := calc.NewExtension(m)
		in.OuterDiameterAtFree, in.WireDiameter = outer, wire
		set(&in.CoilsTotal, 7)
		set(&in.Force1, 8)
		set(&in.Force2, 9)
		if endType != "" {
			in = spring.ApplyExtensionEndType(in, calc.EndTypes(tables.Extension), endType)
		}
		return spring.NewExtensionDesign(name, in), nil
	default:
		in := calc.NewTorsion(m)
		in.OuterDiameterAtFree, in.WireDiameter = outer, wire
		set(&in.CoilsTotal, 7)
		set(&in.Moment1, 8)
		set(&in.Moment2, 9)
		if endType != "" {
			in = spring.ApplyTorsionEndType(in, calc.EndTypes(tables.Torsion), endType)
		}
		return spring.NewTorsionDesign(name, in), nil
	}
}

func toFloat(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func toRow(cells []string) []interface{} {
	out := make([]interface{}, len(cells))
	for i, c := range cells {
		out[i] = c
	}
	return out
}

func round(v float64, places int) float64 {
	f, _ := strconv.ParseFloat(strconv.FormatFloat(v, 'f', places, 64), 64)
	return f
}
