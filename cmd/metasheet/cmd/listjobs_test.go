package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListJobsCommandStructure(t *testing.T) {
	assert.NotNil(t, listJobsCmd)
	assert.Equal(t, "list-jobs", listJobsCmd.Use)
	assert.NotEmpty(t, listJobsCmd.Short)
	assert.NotEmpty(t, listJobsCmd.Long)
	assert.NotNil(t, listJobsCmd.RunE)
}

func TestListJobsIsAddedToRoot(t *testing.T) {
	found := false
	for _, cmd := range rootCmd.Commands() {
		if cmd.Name() == "list-jobs" {
			found = true
			break
		}
	}
	assert.True(t, found, "list-jobs command should be added to root command")
}

func TestListJobsCommandExample(t *testing.T) {
	assert.Contains(t, listJobsCmd.Long, "Example:")
	assert.Contains(t, listJobsCmd.Long, "metasheet list-jobs")
}

// TestListJobsCmd_Execute lists jobs sorted by name with their settings
func TestListJobsCmd_Execute(t *testing.T) {
	origCfgFile := cfgFile
	defer func() {
		cfgFile = origCfgFile
		rootCmd.SetArgs(nil)
		listJobsCmd.SetOut(nil)
	}()

	configFile := createTempTestConfig(t, `
jobs:
  zeta:
    folder: ./z
    output: ./z.xlsx
    xml_fields:
      - column: Name
        path: ./name
  alpha:
    folder: ./a
    output: ./a.csv
    met_fields:
      - column: Dept
        key: Department
    export:
      format: csv
    verification:
      method: skip
`)

	var buf bytes.Buffer
	listJobsCmd.SetOut(&buf)

	rootCmd.SetArgs([]string{"list-jobs", "--config", configFile})
	err := rootCmd.Execute()
	assert.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "1. alpha")
	assert.Contains(t, output, "2. zeta")
	assert.Contains(t, output, "Dept <- Department")
	assert.Contains(t, output, "Name <- ./name")
	assert.Contains(t, output, "Export:        Custom (format=csv")
	assert.Contains(t, output, "Verification:  Custom (method=skip)")
	assert.Contains(t, output, "Total: 2 job(s)")
}

// TestListJobsCmd_Execute_NoJobs reports when the config defines no jobs
func TestListJobsCmd_Execute_NoJobs(t *testing.T) {
	origCfgFile := cfgFile
	defer func() {
		cfgFile = origCfgFile
		rootCmd.SetArgs(nil)
		listJobsCmd.SetOut(nil)
	}()

	configFile := createTempTestConfig(t, `
jobs: {}
`)

	var buf bytes.Buffer
	listJobsCmd.SetOut(&buf)

	rootCmd.SetArgs([]string{"list-jobs", "--config", configFile})
	err := rootCmd.Execute()
	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "No jobs defined")
}
