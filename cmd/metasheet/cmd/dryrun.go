package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/metasheet/internal/config"
	"github.com/dbsmedya/metasheet/internal/export"
	"github.com/dbsmedya/metasheet/internal/logger"
	"github.com/dbsmedya/metasheet/internal/processor"
)

var dryrunJob string

var dryrunCmd = &cobra.Command{
	Use:   "dry-run",
	Short: "Simulate extraction without reading file contents",
	Long: `Dry-run scans the job's folder and reports what a run would process
without extracting any fields or writing output.

The dry-run shows:
  - Matching file counts per extension
  - Entries that would be ignored
  - The column order of the output spreadsheet

Example:
  metasheet dry-run --config metasheet.yaml --job people`,
	RunE: runDryrun,
}

func init() {
	dryrunCmd.Flags().StringVarP(&dryrunJob, "job", "j", "",
		"Job name from configuration file (required)")
	dryrunCmd.MarkFlagRequired("job")

	rootCmd.AddCommand(dryrunCmd)
}

func runDryrun(cmd *cobra.Command, args []string) error {
	configFile := GetConfigFile()

	// Load configuration
	cfg, err := config.Load(configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	jobCfg, err := cfg.GetJob(dryrunJob)
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

	exportCfg := jobCfg.GetJobExport(cfg.Export)
	exporter, err := export.ForFormat(exportCfg.Format, exportCfg.Sheet)
	if err != nil {
		return err
	}

	proc, err := processor.New(jobCfg.XMLMapping(), jobCfg.MetMapping(), exporter, log.WithJob(dryrunJob))
	if err != nil {
		return fmt.Errorf("failed to create processor: %w", err)
	}

	// Run estimation
	est, err := proc.Estimate(context.Background(), jobCfg.Folder)
	if err != nil {
		return fmt.Errorf("estimation failed: %w", err)
	}

	// Display execution plan
	processor.DisplayPlan(est, jobCfg.Output, exportCfg.Format)

	return nil
}
