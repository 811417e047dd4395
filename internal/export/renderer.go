package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/skintel-labs/skintel/internal/model"
)

// Renderer writes a report to its output formats
type Renderer struct {
	out io.Writer // Destination for the stdout summary
}

// NewRenderer creates a renderer printing its console summary to out
func NewRenderer(out io.Writer) *Renderer {
	if out == nil {
		out = os.Stdout
	}
	return &Renderer{out: out}
}

// RenderJSON writes the full report as indented JSON
func (r *Renderer) RenderJSON(report model.Report, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// RenderMarkdown writes the report tables as a markdown document
func (r *Renderer) RenderMarkdown(report model.Report, path string) error {
	var b strings.Builder

	fmt.Fprintf(&b, "# Skincare Comment Analysis Report\n\n")
	fmt.Fprintf(&b, "- Platform: %s\n", report.Platform)
	fmt.Fprintf(&b, "- Generated: %s\n", report.GeneratedAt.Format("2006-01-02 15:04:05 MST"))
	fmt.Fprintf(&b, "- Comments analyzed: %d\n", report.CommentCount)
	fmt.Fprintf(&b, "- Products searched: %d\n", report.ProductCount)
	fmt.Fprintf(&b, "- Mentions found: %d\n\n", report.MentionCount)

	for _, table := range BuildTables(report) {
		fmt.Fprintf(&b, "## %s\n\n", table.Name)

		if table.Empty() {
			b.WriteString("_No entries._\n\n")
			continue
		}

		b.WriteString("| " + strings.Join(table.Header, " | ") + " |\n")
		b.WriteString("|" + strings.Repeat(" --- |", len(table.Header)) + "\n")
		for _, row := range table.Rows {
			cells := make([]string, len(row))
			for i, v := range row {
				cells[i] = strings.ReplaceAll(v, "|", "\\|")
			}
			b.WriteString("| " + strings.Join(cells, " | ") + " |\n")
		}
		b.WriteString("\n")
	}

	if report.LLM != nil && report.LLM.Enabled {
		b.WriteString("## Generated Narrative\n\n")
		if report.LLM.Text != "" {
			fmt.Fprintf(&b, "%s\n\n", report.LLM.Text)
			fmt.Fprintf(&b, "_Generated by %s (%s). The tables above were computed independently._\n\n",
				report.LLM.Provider, report.LLM.Model)
		}
		for _, warning := range report.LLM.Warnings {
			fmt.Fprintf(&b, "> %s\n", warning)
		}
	}

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// RenderXLSX writes the report workbook to path
func (r *Renderer) RenderXLSX(report model.Report, path string) error {
	return r.renderToFile(path, func(w io.Writer) error {
		return WriteXLSX(report, w)
	})
}

// RenderDOCX writes the report document to path
func (r *Renderer) RenderDOCX(report model.Report, path string) error {
	return r.renderToFile(path, func(w io.Writer) error {
		return WriteDOCX(report, w)
	})
}

// RenderPDF writes the report PDF to path
func (r *Renderer) RenderPDF(report model.Report, path string) error {
	return r.renderToFile(path, func(w io.Writer) error {
		return WritePDF(report, w)
	})
}

func (r *Renderer) renderToFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	if err := write(f); err != nil {
		_ = f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

// RenderSummary prints the report tables to the console
func (r *Renderer) RenderSummary(report model.Report) {
	fmt.Fprintf(r.out, "\n📊 Skincare Comment Analysis — %s\n", report.Platform)
	fmt.Fprintf(r.out, "Comments: %d  Products: %d  Mentions: %d\n",
		report.CommentCount, report.ProductCount, report.MentionCount)

	if report.Empty() {
		fmt.Fprintf(r.out, "\nNo product mentions found.\n")
	}

	for _, table := range BuildTables(report) {
		fmt.Fprintf(r.out, "\n--- %s ---\n", table.Name)
		if table.Empty() {
			fmt.Fprintln(r.out, "(no entries)")
			continue
		}
		printAligned(r.out, table)
	}

	if report.LLM != nil && report.LLM.Enabled {
		fmt.Fprintf(r.out, "\n--- Generated Narrative (%s) ---\n", report.LLM.Provider)
		if report.LLM.Text != "" {
			fmt.Fprintln(r.out, report.LLM.Text)
		}
		for _, warning := range report.LLM.Warnings {
			fmt.Fprintf(r.out, "Warning: %s\n", warning)
		}
	}

	fmt.Fprintln(r.out)
}

// printAligned writes a table with columns padded to their widest cell
func printAligned(out io.Writer, table Table) {
	widths := make([]int, len(table.Header))
	for i, h := range table.Header {
		widths[i] = len(h)
	}
	for _, row := range table.Rows {
		for i, v := range row {
			if i < len(widths) && len(v) > widths[i] {
				widths[i] = len(v)
			}
		}
	}

	printRow := func(cells []string) {
		parts := make([]string, len(cells))
		for i, v := range cells {
			parts[i] = fmt.Sprintf("%-*s", widths[i], v)
		}
		fmt.Fprintln(out, strings.TrimRight(strings.Join(parts, "  "), " "))
	}

	printRow(table.Header)
	for _, row := range table.Rows {
		printRow(row)
	}
}
