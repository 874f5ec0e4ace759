package types

import "time"

// Record is one flattened row of extracted column -> value pairs for a
// single input file. A missing key means the field was absent in the
// source (unmatched path or unseen key); values are kept verbatim.
type Record map[string]string

// Value returns the extracted value for a column and whether it was present.
func (r Record) Value(column string) (string, bool) {
	v, ok := r[column]
	return v, ok
}

// ScanStats contains statistics about a folder processing run.
type ScanStats struct {
	FilesScanned     int           // Directory entries considered
	RecordsExtracted int           // Files that produced a record
	FilesSkipped     int           // Files skipped due to parse/read errors
	FilesIgnored     int           // Entries with unrecognized extensions
	Duration         time.Duration // Time taken for the scan
}

// ResultTable is the ordered collection of Records plus the unified
// column schema they are exported under. Rows are appended in
// processing order; the column set is fixed at construction.
type ResultTable struct {
	Columns []string
	Rows    []Record
	Stats   ScanStats
}

// NewResultTable creates an empty table with the given column schema.
func NewResultTable(columns []string) *ResultTable {
	return &ResultTable{Columns: columns}
}

// Append adds a record to the table.
func (t *ResultTable) Append(r Record) {
	t.Rows = append(t.Rows, r)
}

// Len returns the number of data rows.
func (t *ResultTable) Len() int {
	return len(t.Rows)
}

// RowCells returns row i shaped to the table's column set, with absent
// fields rendered as empty strings. Every row, regardless of source
// format, is shaped to the same column set.
func (t *ResultTable) RowCells(i int) []string {
	cells := make([]string, len(t.Columns))
	for c, col := range t.Columns {
		if v, ok := t.Rows[i][col]; ok {
			cells[c] = v
		}
	}
	return cells
}
