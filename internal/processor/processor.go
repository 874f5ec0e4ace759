// Package processor provides the folder scanning and aggregation pipeline for Metasheet.
package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dbsmedya/metasheet/internal/export"
	"github.com/dbsmedya/metasheet/internal/extractor"
	"github.com/dbsmedya/metasheet/internal/logger"
	"github.com/dbsmedya/metasheet/internal/types"
)

// Processor scans a folder non-recursively, dispatches each file to
// the extractor for its format, aggregates the records, and exports
// the result table. Files are processed one at a time in whatever
// order the filesystem returns them; nothing depends on that order.
type Processor struct {
	registry   extractor.Registry
	xmlMapping *types.FieldMapping
	metMapping *types.FieldMapping
	exporter   export.Exporter
	logger     *logger.Logger
}

// New creates a Processor from the two field mappings. The mappings
// are passed in explicitly by the caller; the processor holds no
// global state and each file is processed independently.
func New(xmlMapping, metMapping *types.FieldMapping, exporter export.Exporter, log *logger.Logger) (*Processor, error) {
	if exporter == nil {
		return nil, fmt.Errorf("exporter is nil")
	}
	if log == nil {
		log = logger.NewDefault()
	}

	xmlEx, err := extractor.NewXMLExtractor(xmlMapping)
	if err != nil {
		return nil, fmt.Errorf("invalid xml mapping: %w", err)
	}

	return &Processor{
		registry:   extractor.NewRegistry(xmlEx, extractor.NewMetExtractor(metMapping)),
		xmlMapping: xmlMapping,
		metMapping: metMapping,
		exporter:   exporter,
		logger:     log,
	}, nil
}

// Result summarizes a completed processing run.
type Result struct {
	Table   *types.ResultTable
	Output  string
	Written bool
}

// Process enumerates the folder, extracts a record per matching file,
// and writes the aggregated table to the output path. Per-file
// failures are logged and skipped; the only batch-level terminal
// condition is an unreadable folder. If no records were extracted the
// output file is not written and Result.Written is false.
func (p *Processor) Process(ctx context.Context, folder, output string) (*Result, error) {
	startTime := time.Now()

	entries, err := os.ReadDir(folder)
	if err != nil {
		return nil, fmt.Errorf("failed to scan folder: %w", err)
	}

	// The column set comes from the mappings alone, never from the
	// files, so every run over the same config produces the same schema.
	columns := types.UnionColumns(p.xmlMapping, p.metMapping)
	table := types.NewResultTable(columns)

	p.logger.Infow("Scanning folder", "folder", folder, "entries", len(entries))

	for _, entry := range entries {
		// Check for context cancellation (graceful shutdown)
		select {
		case <-ctx.Done():
			p.logger.Warnf("Scan interrupted: %v", ctx.Err())
			return nil, ctx.Err()
		default:
		}

		if entry.IsDir() {
			continue
		}
		name := entry.Name()

		ex, ok := p.registry.Lookup(name)
		if !ok {
			// Unrecognized suffix: no record, no log entry.
			table.Stats.FilesIgnored++
			continue
		}
		table.Stats.FilesScanned++

		p.logger.Infow("Extracting file", "file", name)
		record, err := ex.Extract(filepath.Join(folder, name))
		if err != nil {
			// Terminal for this file only; the batch continues.
			p.logger.Errorw("Extraction failed", "file", name, "error", err)
			table.Stats.FilesSkipped++
			continue
		}

		table.Append(record)
		table.Stats.RecordsExtracted++
	}

	table.Stats.Duration = time.Since(startTime)

	if table.Len() == 0 {
		p.logger.Warnw("No valid data extracted from the provided folder", "folder", folder)
		return &Result{Table: table, Output: output}, nil
	}

	if err := p.exporter.Export(table, output); err != nil {
		return nil, fmt.Errorf("failed to export result table: %w", err)
	}

	p.logger.Infow("Data exported",
		"output", output,
		"rows", table.Len(),
		"columns", len(columns),
		"duration", table.Stats.Duration,
	)

	return &Result{Table: table, Output: output, Written: true}, nil
}
