package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/metasheet/internal/config"
)

var listJobsCmd = &cobra.Command{
	Use:   "list-jobs",
	Short: "List all jobs defined in configuration",
	Long: `List-jobs displays all extraction jobs defined in the configuration file
along with their basic settings.

Example:
  metasheet list-jobs --config metasheet.yaml`,
	RunE: runListJobs,
}

func init() {
	rootCmd.AddCommand(listJobsCmd)
}

func runListJobs(cmd *cobra.Command, args []string) error {
	configFile := GetConfigFile()

	// Load configuration
	cfg, err := config.Load(configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Get all job names
	jobNames := cfg.ListJobs()

	if len(jobNames) == 0 {
		cmd.Printf("No jobs defined in %s\n", configFile)
		return nil
	}

	// Sort job names for consistent output
	sort.Strings(jobNames)

	cmd.Printf("Jobs defined in %s:\n\n", configFile)

	for i, jobName := range jobNames {
		job, err := cfg.GetJob(jobName)
		if err != nil {
			return fmt.Errorf("failed to get job %q: %w", jobName, err)
		}

		// Job header
		cmd.Printf("%d. %s\n", i+1, jobName)
		cmd.Printf("   Folder:        %s\n", job.Folder)
		cmd.Printf("   Output:        %s\n", job.Output)

		// Field mappings
		cmd.Printf("   XML fields:    %d\n", len(job.XMLFields))
		for _, f := range job.XMLFields {
			cmd.Printf("      - %s <- %s\n", f.Column, f.Path)
		}
		cmd.Printf("   MET fields:    %d\n", len(job.MetFields))
		for _, f := range job.MetFields {
			cmd.Printf("      - %s <- %s\n", f.Column, f.Key)
		}

		// Job-specific export config
		if job.Export != nil {
			cmd.Printf("   Export:        Custom (format=%s, sheet=%s)\n",
				job.Export.Format, job.Export.Sheet)
		}

		// Job-specific verification config
		if job.Verification != nil {
			cmd.Printf("   Verification:  Custom (method=%s)\n", job.Verification.Method)
		}

		// Add spacing between jobs
		if i < len(jobNames)-1 {
			cmd.Println()
		}
	}

	cmd.Printf("\nTotal: %d job(s)\n", len(jobNames))
	return nil
}
