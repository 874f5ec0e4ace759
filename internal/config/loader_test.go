package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

const testConfig = `
jobs:
  people:
    folder: /data/incoming
    output: people.xlsx
    xml_fields:
      - column: Full Name
        path: ./details/name
      - column: Age
        path: ./details/age
      - column: Email Address
        path: ./contact/email
    met_fields:
      - column: Full Name
        key: Full Name
      - column: Age
        key: Age

export:
  format: xlsx
  sheet: People

verification:
  method: count

logging:
  level: debug
  format: text
  output: stdout
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	configPath := filepath.Join(t.TempDir(), "test.yaml")
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	return configPath
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, testConfig))
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	job, err := cfg.GetJob("people")
	if err != nil {
		t.Fatalf("GetJob failed: %v", err)
	}

	if job.Folder != "/data/incoming" {
		t.Errorf("Folder = %q", job.Folder)
	}
	if job.Output != "people.xlsx" {
		t.Errorf("Output = %q", job.Output)
	}
	if cfg.Export.Sheet != "People" {
		t.Errorf("Export.Sheet = %q", cfg.Export.Sheet)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q", cfg.Logging.Level)
	}
}

func TestLoadPreservesFieldOrder(t *testing.T) {
	cfg, err := Load(writeConfig(t, testConfig))
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	job, _ := cfg.GetJob("people")

	want := []string{"Full Name", "Age", "Email Address"}
	if got := job.XMLMapping().Columns(); !reflect.DeepEqual(got, want) {
		t.Errorf("XMLMapping columns = %v, want %v", got, want)
	}

	path, ok := job.XMLMapping().Locator("Email Address")
	if !ok || path != "./contact/email" {
		t.Errorf("Locator(Email Address) = %q, %v", path, ok)
	}

	want = []string{"Full Name", "Age"}
	if got := job.MetMapping().Columns(); !reflect.DeepEqual(got, want) {
		t.Errorf("MetMapping columns = %v, want %v", got, want)
	}
}

func TestLoadAppliesDefaults(t *testing.T) {
	minimal := `
jobs:
  j:
    folder: /in
    output: out.xlsx
    xml_fields:
      - column: A
        path: ./a
`
	cfg, err := Load(writeConfig(t, minimal))
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Export.Format != "xlsx" {
		t.Errorf("default export format = %q, want xlsx", cfg.Export.Format)
	}
	if cfg.Verification.Method != "count" {
		t.Errorf("default verification method = %q, want count", cfg.Verification.Method)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("default log level = %q, want info", cfg.Logging.Level)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestEnvVarSubstitution(t *testing.T) {
	t.Setenv("METASHEET_TEST_IN", "/data/from-env")

	content := `
jobs:
  j:
    folder: ${METASHEET_TEST_IN}
    output: out.xlsx
    xml_fields:
      - column: A
        path: ./a
`
	cfg, err := Load(writeConfig(t, content))
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	job, _ := cfg.GetJob("j")
	if job.Folder != "/data/from-env" {
		t.Errorf("Folder = %q, want /data/from-env", job.Folder)
	}
}

func TestEnvVarSubstitutionUnsetKept(t *testing.T) {
	content := `
jobs:
  j:
    folder: ${METASHEET_DEFINITELY_UNSET}
    output: out.xlsx
    xml_fields:
      - column: A
        path: ./a
`
	cfg, err := Load(writeConfig(t, content))
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	job, _ := cfg.GetJob("j")
	if job.Folder != "${METASHEET_DEFINITELY_UNSET}" {
		t.Errorf("unset env var should be kept verbatim, got %q", job.Folder)
	}
}

func TestGetJobMissing(t *testing.T) {
	cfg := DefaultConfig()
	if _, err := cfg.GetJob("missing"); err == nil {
		t.Error("expected error for unknown job")
	}
}

func TestListJobs(t *testing.T) {
	cfg, err := Load(writeConfig(t, testConfig))
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	jobs := cfg.ListJobs()
	if len(jobs) != 1 || jobs[0] != "people" {
		t.Errorf("ListJobs = %v", jobs)
	}
}

func TestApplyOverrides(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ApplyOverrides("debug", "json", "csv")

	if cfg.Logging.Level != "debug" {
		t.Errorf("Level = %q", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("Format = %q", cfg.Logging.Format)
	}
	if cfg.Export.Format != "csv" {
		t.Errorf("Export.Format = %q", cfg.Export.Format)
	}

	// Empty values leave config untouched
	cfg.ApplyOverrides("", "", "")
	if cfg.Logging.Level != "debug" || cfg.Export.Format != "csv" {
		t.Error("empty overrides should not reset values")
	}
}

func TestJobExportOverride(t *testing.T) {
	content := testConfig + `
`
	cfg, err := Load(writeConfig(t, content))
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// No per-job override: global wins.
	ec := cfg.GetJobExport("people")
	if ec.Format != "xlsx" || ec.Sheet != "People" {
		t.Errorf("GetJobExport = %+v", ec)
	}

	// Per-job override merges over global.
	job := cfg.Jobs["people"]
	job.Export = &ExportConfig{Format: "csv"}
	cfg.Jobs["people"] = job

	ec = cfg.GetJobExport("people")
	if ec.Format != "csv" {
		t.Errorf("overridden format = %q, want csv", ec.Format)
	}
	if ec.Sheet != "People" {
		t.Errorf("sheet should fall back to global, got %q", ec.Sheet)
	}
}
