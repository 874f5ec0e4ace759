package export

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"os"

	"github.com/dbsmedya/metasheet/internal/types"
)

// CSVExporter writes the table as a CSV file with the same shape as
// the xlsx output: header row first, one line per record.
type CSVExporter struct{}

// NewCSVExporter creates a csv exporter.
func NewCSVExporter() *CSVExporter {
	return &CSVExporter{}
}

// Export implements Exporter.
func (e *CSVExporter) Export(table *types.ResultTable, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = f.Close() }()

	buffered := bufio.NewWriter(f)
	writer := csv.NewWriter(buffered)

	if err := writer.Write(table.Columns); err != nil {
		return fmt.Errorf("failed to write header row: %w", err)
	}
	for i := range table.Rows {
		if err := writer.Write(table.RowCells(i)); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}
	if err := buffered.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}
	return f.Close()
}
