package main

import (
	"context"
	"fmt"
	"os"

	"github.com/aaron-seq/CareerAgent/internal/jobs"
	"github.com/aaron-seq/CareerAgent/internal/observability"
	"github.com/aaron-seq/CareerAgent/internal/schemas"
	"github.com/aaron-seq/CareerAgent/internal/types"
	"github.com/spf13/cobra"
)

var jobDetailsCmd = &cobra.Command{
	Use:   "job-details",
	Short: "Fetch a job posting URL and extract structured details",
	Long:  "Fetch a job posting page, extract its text with an optional headless browser fallback for JavaScript-heavy sites, and parse it into a structured posting JSON.",
	RunE:  runJobDetails,
}

var (
	jobDetailsURL    string
	jobDetailsOutput string
)

func init() {
	jobDetailsCmd.Flags().StringVarP(&jobDetailsURL, "url", "u", "", "Job posting URL (required)")
	jobDetailsCmd.Flags().StringVarP(&jobDetailsOutput, "out", "o", "posting.json", "Path to output posting JSON")

	jobDetailsCmd.MarkFlagRequired("url")

	rootCmd.AddCommand(jobDetailsCmd)
}

func runJobDetails(_ *cobra.Command, _ []string) error {
	cfg, log, err := loadSetup()
	if err != nil {
		return err
	}
	if err := cfg.RequireLLM(); err != nil {
		return err
	}

	ctx := context.Background()

	gen, cleanup, err := buildGenerator(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer cleanup()

	// Details only fetches and parses, so no search client is needed.
	finder := jobs.NewFinder(nil, gen, log, jobs.WithBrowserFallback(cfg.UseBrowser))

	posting, err := finder.Details(ctx, jobDetailsURL)
	if err != nil {
		return fmt.Errorf("failed to fetch job details: %w", err)
	}

	if err := writeArtifact(jobDetailsOutput, schemas.KindJobPosting, posting); err != nil {
		return err
	}

	observability.NewPrinter(os.Stdout).PrintPostings([]types.JobPosting{*posting})
	_, _ = fmt.Fprintf(os.Stdout, "Posting written to %s\n", jobDetailsOutput)

	return nil
}
