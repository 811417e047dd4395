package export

import (
	"strconv"

	"github.com/skintel-labs/skintel/internal/model"
)

// Report section titles, shared by every output format
const (
	SectionSummary       = "Product Mention Summary"
	SectionKeywords      = "Trend & Keyword Insights"
	SectionManufacturers = "Manufacturer Info"
)

// Table is a rendered report section: a title, a header row and data rows.
// All formats (xlsx, docx, pdf, markdown) draw the same tables so the
// numbers can never drift between exports.
type Table struct {
	Name   string
	Header []string
	Rows   [][]string
}

// Empty reports whether the table has no data rows
func (t Table) Empty() bool {
	return len(t.Rows) == 0
}

// BuildTables converts a report into its three presentation tables
func BuildTables(report model.Report) []Table {
	summary := Table{
		Name: SectionSummary,
		Header: []string{
			"Product Name",
			"Platform Mentioned On",
			"Most Common Use or Claim",
			"User Sentiment",
			"Approximate Number of Mentions",
		},
	}
	for _, row := range report.Summary {
		summary.Rows = append(summary.Rows, []string{
			row.Product,
			row.Platform,
			row.Claim,
			string(row.Sentiment),
			strconv.Itoa(row.Count),
		})
	}

	keywords := Table{
		Name: SectionKeywords,
		Header: []string{
			"Trending Keyword",
			"Reason for Trend",
		},
	}
	for _, kw := range report.Keywords {
		keywords.Rows = append(keywords.Rows, []string{
			kw.Phrase,
			kw.Reason,
		})
	}

	manufacturers := Table{
		Name: SectionManufacturers,
		Header: []string{
			"Product Name",
			"Official Link (Best Guess)",
			"Note",
		},
	}
	for _, info := range report.Manufacturers {
		manufacturers.Rows = append(manufacturers.Rows, []string{
			info.Product,
			info.Link,
			info.Note,
		})
	}

	return []Table{summary, keywords, manufacturers}
}
