package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/metasheet/internal/config"
	"github.com/dbsmedya/metasheet/internal/export"
	"github.com/dbsmedya/metasheet/internal/lock"
	"github.com/dbsmedya/metasheet/internal/logger"
	"github.com/dbsmedya/metasheet/internal/processor"
	"github.com/dbsmedya/metasheet/internal/verifier"
)

var (
	extractJob   string
	extractForce bool
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract mapped fields from a folder into a spreadsheet",
	Long: `Extract scans the job's input folder, extracts mapped fields from
every .xml and .met file, and writes the aggregated rows to the job's
output spreadsheet.

The extract process follows these steps:
  1. Scan the folder (non-recursive) and dispatch files by extension
  2. Project the mapped fields of each file into one row
  3. Skip and log files that fail to parse or read
  4. Write the result table once, then verify the written file

Example:
  metasheet extract --config metasheet.yaml --job people`,
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().StringVarP(&extractJob, "job", "j", "",
		"Job name from configuration file (required)")
	extractCmd.MarkFlagRequired("job")

	extractCmd.Flags().BoolVar(&extractForce, "force", false,
		"Force execution even if the job lock cannot be acquired (use with caution)")

	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	configFile := GetConfigFile()

	// Load configuration
	cfg, err := config.Load(configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	jobCfg, err := cfg.GetJob(extractJob)
	if err != nil {
		return err
	}

	// Apply CLI overrides
	overrides := GetCLIOverrides()
	cfg.ApplyOverrides(overrides.LogLevel, overrides.LogFormat, overrides.ExportFormat)

	// Initialize logger
	log, err := logger.New(&cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log.Infow("Starting extraction",
		"job", extractJob,
		"config", configFile,
	)

	exportCfg := jobCfg.GetJobExport(cfg.Export)
	exporter, err := export.ForFormat(exportCfg.Format, exportCfg.Sheet)
	if err != nil {
		return err
	}

	proc, err := processor.New(jobCfg.XMLMapping(), jobCfg.MetMapping(), exporter, log.WithJob(extractJob))
	if err != nil {
		return fmt.Errorf("failed to create processor: %w", err)
	}

	// Setup context with signal handling
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Acquire lock to prevent concurrent runs against the same output
	if !extractForce {
		jobLock := lock.NewJobLock(jobCfg.Output)
		if err := jobLock.AcquireOrFail(); err != nil {
			if errors.Is(err, lock.ErrLockHeld) {
				return fmt.Errorf("job '%s' is already running (use --force to override)", extractJob)
			}
			return fmt.Errorf("failed to acquire job lock: %w", err)
		}
		defer jobLock.Release()
		log.Infow("Acquired job lock", "job", extractJob)
	} else {
		log.Warnw("Skipping job lock acquisition (--force flag used)", "job", extractJob)
	}

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Warn("Received shutdown signal - stopping after current file...")
		cancel()
	}()

	// Execute extraction
	result, err := proc.Process(ctx, jobCfg.Folder, jobCfg.Output)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			log.Warn("Extraction cancelled by user")
			return nil
		}
		return fmt.Errorf("extraction failed: %w", err)
	}

	// Verify written output
	var verifyResult *verifier.Result
	if result.Written {
		verifyCfg := jobCfg.GetJobVerification(cfg.Verification)
		v, err := verifier.New(verifier.Method(verifyCfg.Method), log)
		if err != nil {
			return err
		}
		verifyResult, err = v.Verify(result.Table, result.Output, exportCfg.Format)
		if err != nil {
			return fmt.Errorf("verification failed: %w", err)
		}
	}

	// Display results
	stats := result.Table.Stats
	fmt.Printf("\n=== Extraction Complete ===\n")
	fmt.Printf("Job: %s\n", extractJob)
	fmt.Printf("Duration: %s\n", stats.Duration)
	fmt.Printf("Files Matched: %d\n", stats.FilesScanned)
	fmt.Printf("Records Extracted: %d\n", stats.RecordsExtracted)
	fmt.Printf("Files Skipped: %d\n", stats.FilesSkipped)
	fmt.Printf("Entries Ignored: %d\n", stats.FilesIgnored)
	if result.Written {
		fmt.Printf("Output: %s\n", result.Output)
	} else {
		fmt.Printf("Output: none (no valid data extracted)\n")
	}

	if verifyResult != nil && !verifyResult.Match {
		fmt.Printf("Verification: FAILED (%s)\n", verifyResult.ErrorMessage)
		return fmt.Errorf("extraction completed but verification failed")
	}

	return nil
}
