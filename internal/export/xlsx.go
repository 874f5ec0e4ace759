package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/dbsmedya/metasheet/internal/types"
)

// DefaultSheet is the sheet name used when none is configured.
const DefaultSheet = "Extracted"

// XLSXExporter writes the table as a single-sheet xlsx workbook:
// header row of column names, one data row per record, no index column.
type XLSXExporter struct {
	sheet string
}

// NewXLSXExporter creates an xlsx exporter writing to the named sheet.
func NewXLSXExporter(sheet string) *XLSXExporter {
	if sheet == "" {
		sheet = DefaultSheet
	}
	return &XLSXExporter{sheet: sheet}
}

// Export implements Exporter.
func (e *XLSXExporter) Export(table *types.ResultTable, path string) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", e.sheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	if err := f.SetSheetRow(e.sheet, "A1", &table.Columns); err != nil {
		return fmt.Errorf("failed to write header row: %w", err)
	}

	for i := range table.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("failed to address row %d: %w", i+2, err)
		}
		cells := table.RowCells(i)
		if err := f.SetSheetRow(e.sheet, cell, &cells); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}
