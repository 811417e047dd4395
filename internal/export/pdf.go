package export

import (
	"fmt"
	"io"
	"time"
	"unicode/utf8"

	"github.com/go-pdf/fpdf"

	"github.com/skintel-labs/skintel/internal/model"
)

const pdfPageWidth = 190.0 // A4 printable width in mm with default margins

// WritePDF renders the report as a PDF with one bordered table per section
func WritePDF(report model.Report, w io.Writer) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(pdfPageWidth, 10, fmt.Sprintf("Skincare Comment Analysis Report - %s", report.Platform), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(pdfPageWidth, 6, fmt.Sprintf("Generated %s | %d comments | %d mentions",
		report.GeneratedAt.Format(time.RFC1123), report.CommentCount, report.MentionCount), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	for _, table := range BuildTables(report) {
		writePDFTable(pdf, table)
		pdf.Ln(6)
	}

	if report.LLM != nil && report.LLM.Enabled && report.LLM.Text != "" {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(pdfPageWidth, 8, "Generated Narrative", "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 9)
		pdf.MultiCell(pdfPageWidth, 5, report.LLM.Text, "", "L", false)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

func writePDFTable(pdf *fpdf.Fpdf, table Table) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(pdfPageWidth, 8, table.Name, "", 1, "L", false, 0, "")

	colWidth := pdfPageWidth / float64(len(table.Header))

	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetFillColor(230, 230, 230)
	for _, h := range table.Header {
		pdf.CellFormat(colWidth, 7, h, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 8)
	if table.Empty() {
		pdf.CellFormat(pdfPageWidth, 7, "(no entries)", "1", 1, "L", false, 0, "")
		return
	}

	for _, row := range table.Rows {
		for _, v := range row {
			pdf.CellFormat(colWidth, 7, truncateCell(v, 60), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}
}

// truncateCell keeps long URLs and notes from overflowing a fixed-width
// cell. Counts and slices runes so multi-byte text is never cut mid-rune.
func truncateCell(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return string(runes[:max-3]) + "..."
}
