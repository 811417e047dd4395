package export

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"

	"github.com/skintel-labs/skintel/internal/model"
)

func sampleReport() model.Report {
	return model.Report{
		ID:           "test-report",
		Platform:     "TikTok / Online Forums",
		GeneratedAt:  time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		CommentCount: 12,
		ProductCount: 15,
		MentionCount: 4,
		Summary: []model.SummaryRow{
			{Product: "CeraVe", Platform: "TikTok / Online Forums", Claim: "Acne & Breakouts", Sentiment: model.SentimentPositive, Count: 3},
			{Product: "Supergoop", Platform: "TikTok / Online Forums", Claim: "Sun Protection", Sentiment: model.SentimentMixed, Count: 1},
		},
		Keywords: []model.KeywordInsight{
			{Phrase: "dark spots", Reason: "Likely related to hyperpigmentation concerns, a major driver of skincare purchases.", Count: 2},
		},
		Manufacturers: []model.ManufacturerInfo{
			{Product: "CeraVe", Link: "https://www.cerave.com/&rut=abc", Note: "Successfully found a likely official link."},
			{Product: "Supergoop", Link: model.TraceNotFound, Note: "Could not automatically find a link."},
		},
	}
}

func TestBuildTables_ColumnNames(t *testing.T) {
	tables := BuildTables(sampleReport())

	if len(tables) != 3 {
		t.Fatalf("Expected 3 tables, got %d", len(tables))
	}

	if tables[0].Name != "Product Mention Summary" {
		t.Errorf("Unexpected summary table name: %s", tables[0].Name)
	}
	wantSummary := []string{
		"Product Name",
		"Platform Mentioned On",
		"Most Common Use or Claim",
		"User Sentiment",
		"Approximate Number of Mentions",
	}
	for i, h := range wantSummary {
		if tables[0].Header[i] != h {
			t.Errorf("Summary header[%d] = %q, want %q", i, tables[0].Header[i], h)
		}
	}

	if tables[1].Name != "Trend & Keyword Insights" {
		t.Errorf("Unexpected keyword table name: %s", tables[1].Name)
	}
	if tables[1].Header[0] != "Trending Keyword" || tables[1].Header[1] != "Reason for Trend" {
		t.Errorf("Unexpected keyword headers: %v", tables[1].Header)
	}

	if tables[2].Name != "Manufacturer Info" {
		t.Errorf("Unexpected manufacturer table name: %s", tables[2].Name)
	}
	if tables[2].Header[1] != "Official Link (Best Guess)" {
		t.Errorf("Unexpected link header: %s", tables[2].Header[1])
	}
}

func TestBuildTables_RowValues(t *testing.T) {
	tables := BuildTables(sampleReport())

	summary := tables[0]
	if len(summary.Rows) != 2 {
		t.Fatalf("Expected 2 summary rows, got %d", len(summary.Rows))
	}
	first := summary.Rows[0]
	if first[0] != "CeraVe" || first[3] != "Positive" || first[4] != "3" {
		t.Errorf("Unexpected first summary row: %v", first)
	}

	manufacturers := tables[2]
	if manufacturers.Rows[1][1] != "Not Found" {
		t.Errorf("Expected Not Found status in link column, got %q", manufacturers.Rows[1][1])
	}
}

func TestBuildTables_EmptyReport(t *testing.T) {
	tables := BuildTables(model.Report{Platform: "TikTok"})

	for _, table := range tables {
		if !table.Empty() {
			t.Errorf("Expected table %q to be empty", table.Name)
		}
		if len(table.Header) == 0 {
			t.Errorf("Expected table %q to keep its header", table.Name)
		}
	}
}

func TestRenderJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "report.json")

	renderer := NewRenderer(&bytes.Buffer{})
	if err := renderer.RenderJSON(sampleReport(), path); err != nil {
		t.Fatalf("RenderJSON failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Read report: %v", err)
	}

	var decoded model.Report
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Report JSON is invalid: %v", err)
	}
	if decoded.ID != "test-report" {
		t.Errorf("Expected ID test-report, got %s", decoded.ID)
	}
	if len(decoded.Summary) != 2 {
		t.Errorf("Expected 2 summary rows, got %d", len(decoded.Summary))
	}
}

func TestRenderMarkdown(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "report.md")

	renderer := NewRenderer(&bytes.Buffer{})
	if err := renderer.RenderMarkdown(sampleReport(), path); err != nil {
		t.Fatalf("RenderMarkdown failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Read report: %v", err)
	}
	md := string(data)

	required := []string{
		"# Skincare Comment Analysis Report",
		"## Product Mention Summary",
		"## Trend & Keyword Insights",
		"## Manufacturer Info",
		"| CeraVe |",
		"| dark spots |",
		"Not Found",
	}
	for _, want := range required {
		if !strings.Contains(md, want) {
			t.Errorf("Expected markdown to contain %q", want)
		}
	}
}

func TestRenderMarkdown_EmptyReport(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.md")

	renderer := NewRenderer(&bytes.Buffer{})
	if err := renderer.RenderMarkdown(model.Report{Platform: "TikTok"}, path); err != nil {
		t.Fatalf("RenderMarkdown failed on empty report: %v", err)
	}

	data, _ := os.ReadFile(path)
	if !strings.Contains(string(data), "_No entries._") {
		t.Error("Expected empty sections to be marked")
	}
}

func TestWriteXLSX_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteXLSX(sampleReport(), &buf); err != nil {
		t.Fatalf("WriteXLSX failed: %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("Workbook is unreadable: %v", err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) != 3 {
		t.Fatalf("Expected 3 sheets, got %d: %v", len(sheets), sheets)
	}

	cell, err := f.GetCellValue(sheets[0], "A1")
	if err != nil {
		t.Fatalf("GetCellValue: %v", err)
	}
	if cell != "Product Name" {
		t.Errorf("Expected A1 header Product Name, got %q", cell)
	}

	cell, err = f.GetCellValue(sheets[0], "A2")
	if err != nil {
		t.Fatalf("GetCellValue: %v", err)
	}
	if cell != "CeraVe" {
		t.Errorf("Expected A2 to be CeraVe, got %q", cell)
	}
}

func TestWriteXLSX_EmptyReport(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteXLSX(model.Report{Platform: "TikTok"}, &buf); err != nil {
		t.Fatalf("WriteXLSX failed on empty report: %v", err)
	}
	if buf.Len() == 0 {
		t.Error("Expected non-empty workbook bytes")
	}
}

func TestWriteDOCX(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteDOCX(sampleReport(), &buf); err != nil {
		t.Fatalf("WriteDOCX failed: %v", err)
	}

	// DOCX is a zip container
	if !bytes.HasPrefix(buf.Bytes(), []byte("PK")) {
		t.Error("Expected DOCX output to be a zip archive")
	}
}

func TestWriteDOCX_EmptyReport(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteDOCX(model.Report{Platform: "TikTok"}, &buf); err != nil {
		t.Fatalf("WriteDOCX failed on empty report: %v", err)
	}
}

func TestWritePDF(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePDF(sampleReport(), &buf); err != nil {
		t.Fatalf("WritePDF failed: %v", err)
	}

	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Error("Expected PDF header in output")
	}
}

func TestWritePDF_EmptyReport(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePDF(model.Report{Platform: "TikTok"}, &buf); err != nil {
		t.Fatalf("WritePDF failed on empty report: %v", err)
	}
}

func TestRenderSummary_Console(t *testing.T) {
	var out bytes.Buffer
	renderer := NewRenderer(&out)

	renderer.RenderSummary(sampleReport())

	text := out.String()
	for _, want := range []string{
		"Product Mention Summary",
		"Trend & Keyword Insights",
		"Manufacturer Info",
		"CeraVe",
		"dark spots",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("Expected console summary to contain %q", want)
		}
	}
}

func TestRenderSummary_EmptyReport(t *testing.T) {
	var out bytes.Buffer
	renderer := NewRenderer(&out)

	renderer.RenderSummary(model.Report{Platform: "TikTok"})

	if !strings.Contains(out.String(), "No product mentions found.") {
		t.Error("Expected empty-report notice in console summary")
	}
}

func TestTruncateCell(t *testing.T) {
	if got := truncateCell("short", 60); got != "short" {
		t.Errorf("Expected short string unchanged, got %q", got)
	}

	long := strings.Repeat("x", 100)
	got := truncateCell(long, 60)
	if len(got) != 60 {
		t.Errorf("Expected truncated length 60, got %d", len(got))
	}
	if !strings.HasSuffix(got, "...") {
		t.Error("Expected ellipsis suffix")
	}

	// Multi-byte text must be cut between runes, not mid-byte
	accented := strings.Repeat("è", 100)
	got = truncateCell(accented, 60)
	if !utf8.ValidString(got) {
		t.Errorf("Expected valid UTF-8 after truncation, got %q", got)
	}
	if utf8.RuneCountInString(got) != 60 {
		t.Errorf("Expected 60 runes after truncation, got %d", utf8.RuneCountInString(got))
	}
	if !strings.HasSuffix(got, "...") {
		t.Error("Expected ellipsis suffix on accented text")
	}
}
