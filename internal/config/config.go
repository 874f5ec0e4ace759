// Package config provides configuration structures and loading for Metasheet.
package config

import (
	"github.com/dbsmedya/metasheet/internal/types"
)

// Config represents the complete application configuration.
type Config struct {
	Jobs         map[string]JobConfig `yaml:"jobs" mapstructure:"jobs"`
	Export       ExportConfig         `yaml:"export" mapstructure:"export"`
	Verification VerificationConfig   `yaml:"verification" mapstructure:"verification"`
	Logging      LoggingConfig        `yaml:"logging" mapstructure:"logging"`
}

// JobConfig represents one extraction job: an input folder, an output
// destination, and the field mappings for each supported file format.
type JobConfig struct {
	Folder       string              `yaml:"folder" mapstructure:"folder"`
	Output       string              `yaml:"output" mapstructure:"output"`
	XMLFields    []XMLField          `yaml:"xml_fields" mapstructure:"xml_fields"`
	MetFields    []MetField          `yaml:"met_fields" mapstructure:"met_fields"`
	Export       *ExportConfig       `yaml:"export,omitempty" mapstructure:"export"`
	Verification *VerificationConfig `yaml:"verification,omitempty" mapstructure:"verification"`
}

// XMLField maps an output column to an XML path expression evaluated
// relative to the document root (e.g. ./details/name).
//
// Fields are lists rather than YAML mappings because column order in
// the exported table follows mapping order, and YAML mappings do not
// preserve key order.
type XMLField struct {
	Column string `yaml:"column" mapstructure:"column"`
	Path   string `yaml:"path" mapstructure:"path"`
}

// MetField maps an output column to a literal key in a .met key-value file.
type MetField struct {
	Column string `yaml:"column" mapstructure:"column"`
	Key    string `yaml:"key" mapstructure:"key"`
}

// ExportConfig represents spreadsheet export settings.
type ExportConfig struct {
	Format string `yaml:"format" mapstructure:"format"` // xlsx or csv
	Sheet  string `yaml:"sheet" mapstructure:"sheet"`   // sheet name for xlsx output
}

// VerificationConfig represents post-export verification settings.
type VerificationConfig struct {
	Method string `yaml:"method" mapstructure:"method"` // "count" or "skip"
}

// LoggingConfig represents logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`   // debug, info, warn, error
	Format string `yaml:"format" mapstructure:"format"` // json or text
	Output string `yaml:"output" mapstructure:"output"` // stdout, stderr, or file path
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() *Config {
	return &Config{
		Export: ExportConfig{
			Format: "xlsx",
			Sheet:  "Extracted",
		},
		Verification: VerificationConfig{
			Method: "count",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			Output: "stdout",
		},
	}
}

// XMLMapping builds the ordered column -> path mapping for XML files.
func (jc *JobConfig) XMLMapping() *types.FieldMapping {
	m := types.NewFieldMapping()
	for _, f := range jc.XMLFields {
		m.Set(f.Column, f.Path)
	}
	return m
}

// MetMapping builds the ordered column -> key mapping for .met files.
func (jc *JobConfig) MetMapping() *types.FieldMapping {
	m := types.NewFieldMapping()
	for _, f := range jc.MetFields {
		m.Set(f.Column, f.Key)
	}
	return m
}

// GetJobExport returns the export config for a job by name, falling back to global if not set.
func (c *Config) GetJobExport(jobName string) ExportConfig {
	job, err := c.GetJob(jobName)
	if err != nil {
		return c.Export
	}
	return job.GetJobExport(c.Export)
}

// GetJobVerification returns the verification config for a job by name, falling back to global if not set.
func (c *Config) GetJobVerification(jobName string) VerificationConfig {
	job, err := c.GetJob(jobName)
	if err != nil {
		return c.Verification
	}
	return job.GetJobVerification(c.Verification)
}

// GetJobExport returns the export config for a job, falling back to global if not set.
func (jc *JobConfig) GetJobExport(global ExportConfig) ExportConfig {
	if jc.Export == nil {
		return global
	}

	// Merge job-specific with global defaults
	result := global
	if jc.Export.Format != "" {
		result.Format = jc.Export.Format
	}
	if jc.Export.Sheet != "" {
		result.Sheet = jc.Export.Sheet
	}
	return result
}

// GetJobVerification returns the verification config for a job, falling back to global if not set.
func (jc *JobConfig) GetJobVerification(global VerificationConfig) VerificationConfig {
	if jc.Verification == nil {
		return global
	}

	result := global
	if jc.Verification.Method != "" {
		result.Method = jc.Verification.Method
	}
	return result
}
