package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gookit/color"
	"github.com/mattn/go-runewidth"

	"github.com/dbsmedya/metasheet/internal/types"
)

// Estimate describes what a run would process, without reading any
// file contents or writing output.
type Estimate struct {
	Folder   string
	XMLFiles int
	MetFiles int
	Ignored  int
	Columns  []string
}

// Estimate counts the folder's entries by extension and reports the
// column plan derived from the mappings.
func (p *Processor) Estimate(ctx context.Context, folder string) (*Estimate, error) {
	entries, err := os.ReadDir(folder)
	if err != nil {
		return nil, fmt.Errorf("failed to scan folder: %w", err)
	}

	est := &Estimate{
		Folder:  folder,
		Columns: types.UnionColumns(p.xmlMapping, p.metMapping),
	}

	for _, entry := range entries {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		if entry.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".xml":
			est.XMLFiles++
		case ".met":
			est.MetFiles++
		default:
			est.Ignored++
		}
	}

	return est, nil
}

// DisplayPlan prints a human-readable execution plan for a dry run.
func DisplayPlan(est *Estimate, output, format string) {
	color.Bold.Println("\n=== Execution Plan ===")

	rows := [][2]string{
		{"Folder", est.Folder},
		{"Output", output},
		{"Format", format},
		{"XML files", strconv.Itoa(est.XMLFiles)},
		{"MET files", strconv.Itoa(est.MetFiles)},
		{"Ignored entries", strconv.Itoa(est.Ignored)},
	}

	width := 0
	for _, r := range rows {
		if w := runewidth.StringWidth(r[0]); w > width {
			width = w
		}
	}
	for _, r := range rows {
		fmt.Printf("%s  %s\n", runewidth.FillRight(r[0], width), r[1])
	}

	color.Bold.Println("\nColumn order:")
	for i, col := range est.Columns {
		fmt.Printf("  %2d. %s\n", i+1, col)
	}

	if est.XMLFiles+est.MetFiles == 0 {
		color.Warn.Println("\nNo matching files found - a run would write no output.")
	}
}
