// Package export writes result tables to spreadsheet files.
package export

import (
	"fmt"

	"github.com/dbsmedya/metasheet/internal/types"
)

// Exporter writes a result table to a destination path. The file is
// written once, fully, at the end of a run; there is no incremental
// or streaming write.
type Exporter interface {
	Export(table *types.ResultTable, path string) error
}

// ForFormat returns the exporter for a configured format name.
func ForFormat(format, sheet string) (Exporter, error) {
	switch format {
	case "", "xlsx":
		return NewXLSXExporter(sheet), nil
	case "csv":
		return NewCSVExporter(), nil
	default:
		return nil, fmt.Errorf("unsupported export format %q", format)
	}
}
