package export

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/gingfrederik/docx"

	"github.com/skintel-labs/skintel/internal/model"
)

const (
	docxTitleSize   = 16
	docxSectionSize = 13
	docxAccentColor = "2E74B5"
)

// WriteDOCX renders the report as a Word document. Sections are laid out
// as headed row listings rather than grid tables.
func WriteDOCX(report model.Report, w io.Writer) error {
	f := docx.NewFile()

	title := f.AddParagraph()
	title.AddText(fmt.Sprintf("Skincare Comment Analysis Report — %s", report.Platform)).Size(docxTitleSize)

	meta := f.AddParagraph()
	meta.AddText(fmt.Sprintf("Generated %s · %d comments · %d mentions",
		report.GeneratedAt.Format(time.RFC1123), report.CommentCount, report.MentionCount))

	if report.Empty() {
		p := f.AddParagraph()
		p.AddText("No product mentions were found in the provided comments.")
	}

	for _, table := range BuildTables(report) {
		heading := f.AddParagraph()
		heading.AddText(table.Name).Size(docxSectionSize).Color(docxAccentColor)

		header := f.AddParagraph()
		header.AddText(strings.Join(table.Header, "  |  ")).Color(docxAccentColor)

		if table.Empty() {
			p := f.AddParagraph()
			p.AddText("(no entries)")
			continue
		}

		for _, row := range table.Rows {
			p := f.AddParagraph()
			p.AddText(strings.Join(row, "  |  "))
		}
	}

	if report.LLM != nil && report.LLM.Enabled && report.LLM.Text != "" {
		heading := f.AddParagraph()
		heading.AddText("Generated Narrative").Size(docxSectionSize).Color(docxAccentColor)
		p := f.AddParagraph()
		p.AddText(report.LLM.Text)
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write document: %w", err)
	}
	return nil
}
