package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/metasheet/internal/config"
	"github.com/dbsmedya/metasheet/internal/extractor"
	"github.com/dbsmedya/metasheet/internal/logger"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate configuration and run preflight checks",
	Long: `Validate checks the configuration file and runs preflight checks
to ensure safe execution.

Checks performed:
  - Configuration syntax and required fields
  - Export format and verification method values
  - Input folder existence and readability
  - XML path expression compilation

Example:
  metasheet validate --config metasheet.yaml`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	configFile := GetConfigFile()

	// Load configuration
	cfg, err := config.Load(configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Apply CLI overrides
	overrides := GetCLIOverrides()
	cfg.ApplyOverrides(overrides.LogLevel, overrides.LogFormat, overrides.ExportFormat)

	// Initialize logger
	log, err := logger.New(&cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log.Info("Starting validation checks...")

	fmt.Printf("\n=== Configuration Validation ===\n")
	fmt.Printf("Config file: %s\n", configFile)
	fmt.Printf("Jobs found: %d\n\n", len(cfg.Jobs))

	// Structural validation first
	if err := cfg.Validate(); err != nil {
		fmt.Printf("❌ Configuration invalid:\n%v\n", err)
		return fmt.Errorf("validation failed")
	}

	// Validate each job
	hasErrors := false
	for _, jobName := range cfg.ListJobs() {
		jobCfg, err := cfg.GetJob(jobName)
		if err != nil {
			return err
		}
		fmt.Printf("--- Job: %s ---\n", jobName)
		fmt.Printf("Folder: %s\n", jobCfg.Folder)
		fmt.Printf("Output: %s\n", jobCfg.Output)

		jobOK := true

		// Check folder exists and is a directory
		info, err := os.Stat(jobCfg.Folder)
		switch {
		case err != nil:
			fmt.Printf("❌ Folder check failed: %v\n", err)
			jobOK = false
		case !info.IsDir():
			fmt.Printf("❌ Folder is not a directory: %s\n", jobCfg.Folder)
			jobOK = false
		}

		// Check XML path expressions compile
		if jobCfg.XMLMapping().Len() > 0 {
			if _, err := extractor.NewXMLExtractor(jobCfg.XMLMapping()); err != nil {
				fmt.Printf("❌ XML mapping invalid: %v\n", err)
				jobOK = false
			}
		}

		if jobOK {
			fmt.Printf("✅ All checks passed\n\n")
		} else {
			fmt.Println()
			hasErrors = true
		}
	}

	if hasErrors {
		return fmt.Errorf("validation failed for one or more jobs")
	}

	fmt.Println("=== Validation Complete ===")
	fmt.Println("✅ All jobs validated successfully")
	return nil
}
