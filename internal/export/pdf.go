package export

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/alexiusacademia/gospring/internal/spring"
	"github.com/phpdave11/gofpdf"
)

// ReportMeta is the title block of a PDF report
type ReportMeta struct {
	Title   string
	Project string
	Author  string
	Notes   string
	Date    time.Time
}

// WritePDF renders a one-page calculation report for an evaluated design.
// chartPNG, when not empty, is placed below the tables.
func WritePDF(w io.Writer, meta ReportMeta, d spring.Design, ev *spring.Evaluation, chartPNG []byte) error {
	if ev == nil {
		return fmt.Errorf("design %q has not been evaluated", d.Name)
	}
	if meta.Title == "" {
		meta.Title = fmt.Sprintf("%s Spring Report", d.Family)
	}
	if meta.Date.IsZero() {
		meta.Date = time.Now()
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, tr(meta.Title))
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, tr(fmt.Sprintf("Design: %s", d.Name)))
	pdf.Ln(6)
	if meta.Project != "" {
		pdf.Cell(0, 6, tr(fmt.Sprintf("Project: %s", meta.Project)))
		pdf.Ln(6)
	}
	if meta.Author != "" {
		pdf.Cell(0, 6, tr(fmt.Sprintf("Author: %s", meta.Author)))
		pdf.Ln(6)
	}
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", meta.Date.Format("2006-01-02")))
	pdf.Ln(10)

	const labelW, valueW, unitW, rowH = 70.0, 35.0, 25.0, 5.5
	for _, s := range ev.Report {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.SetFillColor(230, 230, 230)
		pdf.CellFormat(labelW+valueW+unitW, rowH+1, tr(s.Title), "1", 1, "L", true, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		for _, l := range s.Lines {
			value := l.Text
			if value == "" {
				value = strconv.FormatFloat(l.Value, 'f', l.Precision, 64)
			}
			if l.Safety && l.Value < 1.0 {
				pdf.SetTextColor(200, 0, 0)
			}
			pdf.CellFormat(labelW, rowH, tr(l.Label), "LB", 0, "L", false, 0, "")
			pdf.CellFormat(valueW, rowH, tr(value), "B", 0, "R", false, 0, "")
			pdf.CellFormat(unitW, rowH, tr(l.Unit), "RB", 1, "L", false, 0, "")
			pdf.SetTextColor(0, 0, 0)
		}
		pdf.Ln(3)
	}

	if len(chartPNG) > 0 {
		opts := gofpdf.ImageOptions{ImageType: "PNG", ReadDpi: true}
		pdf.RegisterImageOptionsReader("chart", opts, bytes.NewReader(chartPNG))
		pdf.ImageOptions("chart", pdf.GetX(), pdf.GetY(), 120, 0, true, opts, 0, "")
	}

	if meta.Notes != "" {
		pdf.Ln(4)
		pdf.MultiCell(0, 6, tr(meta.Notes), "", "L", false)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to render pdf: %w", err)
	}
	return nil
}
