package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/skintel-labs/skintel/internal/model"
)

// WriteXLSX renders the report as a workbook with one sheet per section.
// Empty sections still get their sheet and header row so the workbook
// shape is stable run to run.
func WriteXLSX(report model.Report, w io.Writer) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	tables := BuildTables(report)

	for i, table := range tables {
		sheet := sheetName(table.Name)
		if i == 0 {
			// Rename the default sheet instead of leaving "Sheet1" behind
			if err := f.SetSheetName("Sheet1", sheet); err != nil {
				return fmt.Errorf("rename sheet: %w", err)
			}
		} else {
			if _, err := f.NewSheet(sheet); err != nil {
				return fmt.Errorf("create sheet %q: %w", sheet, err)
			}
		}

		if err := writeSheet(f, sheet, table); err != nil {
			return fmt.Errorf("write sheet %q: %w", sheet, err)
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func writeSheet(f *excelize.File, sheet string, table Table) error {
	header := make([]interface{}, len(table.Header))
	for i, h := range table.Header {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}

	for r, row := range table.Rows {
		cells := make([]interface{}, len(row))
		for i, v := range row {
			cells[i] = v
		}
		cell, err := excelize.CoordinatesToCellName(1, r+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
			return err
		}
	}

	return nil
}

// sheetName trims a section title to Excel's 31-character sheet name limit
func sheetName(name string) string {
	if len(name) > 31 {
		return name[:31]
	}
	return name
}
