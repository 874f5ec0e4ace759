// Package verifier provides post-export integrity checks for Metasheet.
package verifier

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/xuri/excelize/v2"

	"github.com/dbsmedya/metasheet/internal/logger"
	"github.com/dbsmedya/metasheet/internal/types"
)

// Method defines how to verify a written export.
type Method string

const (
	// MethodCount compares header cells and data row counts (fast)
	MethodCount Method = "count"
	// MethodSkip skips verification entirely
	MethodSkip Method = "skip"
)

// Result holds verification results for one written export.
type Result struct {
	Path         string
	Method       Method
	ExpectedRows int
	WrittenRows  int
	Match        bool
	ErrorMessage string
}

// Verifier re-opens a written export and checks it against the table
// it was produced from. The exported file is left in place either way
// so a mismatch can be inspected.
type Verifier struct {
	method Method
	logger *logger.Logger
}

// New creates a verifier. An empty method defaults to count.
func New(method Method, log *logger.Logger) (*Verifier, error) {
	if method == "" {
		method = MethodCount
	}
	switch method {
	case MethodCount, MethodSkip:
	default:
		return nil, fmt.Errorf("unknown verification method %q", method)
	}
	if log == nil {
		log = logger.NewDefault()
	}

	return &Verifier{method: method, logger: log}, nil
}

// Verify checks the written file against the table. The format is the
// export format the file was written with (xlsx or csv).
func (v *Verifier) Verify(table *types.ResultTable, path, format string) (*Result, error) {
	result := &Result{
		Path:         path,
		Method:       v.method,
		ExpectedRows: table.Len(),
	}

	if v.method == MethodSkip {
		result.Match = true
		v.logger.Debugw("Verification skipped", "path", path)
		return result, nil
	}

	var header []string
	var dataRows int
	var err error
	switch format {
	case "", "xlsx":
		header, dataRows, err = readXLSX(path)
	case "csv":
		header, dataRows, err = readCSV(path)
	default:
		return nil, fmt.Errorf("unknown export format %q", format)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to re-open export for verification: %w", err)
	}

	result.WrittenRows = dataRows
	result.Match = true

	if dataRows != table.Len() {
		result.Match = false
		result.ErrorMessage = fmt.Sprintf("row count mismatch: wrote %d, expected %d", dataRows, table.Len())
	} else if !sameColumns(header, table.Columns) {
		result.Match = false
		result.ErrorMessage = fmt.Sprintf("header mismatch: wrote %v, expected %v", header, table.Columns)
	}

	if result.Match {
		v.logger.Infow("Export verified", "path", path, "rows", dataRows)
	} else {
		v.logger.Errorw("Export verification failed", "path", path, "reason", result.ErrorMessage)
	}

	return result, nil
}

func readXLSX(path string) (header []string, dataRows int, err error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, 0, err
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, 0, fmt.Errorf("workbook has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, 0, err
	}
	if len(rows) == 0 {
		return nil, 0, nil
	}
	return rows[0], len(rows) - 1, nil
}

func readCSV(path string) (header []string, dataRows int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer func() { _ = f.Close() }()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, 0, err
	}
	if len(records) == 0 {
		return nil, 0, nil
	}
	return records[0], len(records) - 1, nil
}

func sameColumns(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}
