package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// Version information (set via ldflags at build time)
var (
	Version = "0.0.1-dev"
	Commit  = "unknown"
)

// CLI flags that override config file values
var (
	cfgFile      string
	logLevel     string
	logFormat    string
	exportFormat string
)

var rootCmd = &cobra.Command{
	Use:   "metasheet",
	Short: "Metadata Field Extractor & Spreadsheet Exporter",
	Long: `A CLI tool for batch-extracting structured fields from folders of
XML and .met metadata files into a single spreadsheet report.

Features:
  - Mapping-driven field extraction (XML path expressions, .met keys)
  - Per-format extractors dispatched by file extension
  - Skip-and-log handling of malformed or unreadable files
  - xlsx and csv export with post-write verification
  - Job locking against concurrent runs`,
	Version: Version,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Config file flag
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "metasheet.yaml",
		"Path to configuration file")

	// Logging overrides
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"Override log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "",
		"Override log format (json, text)")

	// Export override
	rootCmd.PersistentFlags().StringVar(&exportFormat, "format", "",
		"Override export format (xlsx, csv)")
}

// GetConfigFile returns the config file path
func GetConfigFile() string {
	return cfgFile
}

// CLIOverrides contains flag values that override config file settings
type CLIOverrides struct {
	LogLevel     string
	LogFormat    string
	ExportFormat string
}

// GetCLIOverrides returns the CLI flag override values
func GetCLIOverrides() CLIOverrides {
	return CLIOverrides{
		LogLevel:     logLevel,
		LogFormat:    logFormat,
		ExportFormat: exportFormat,
	}
}
