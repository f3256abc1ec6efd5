package main

import (
	"context"
	"fmt"
	"os"

	"github.com/aaron-seq/CareerAgent/internal/jobs"
	"github.com/aaron-seq/CareerAgent/internal/observability"
	"github.com/aaron-seq/CareerAgent/internal/research"
	"github.com/aaron-seq/CareerAgent/internal/schemas"
	"github.com/aaron-seq/CareerAgent/internal/types"
	"github.com/spf13/cobra"
)

var findJobsCmd = &cobra.Command{
	Use:   "find-jobs",
	Short: "Search for recent job postings",
	Long:  "Search Google Custom Search for recent job postings on LinkedIn, Greenhouse, Lever, and company career pages, score them by relevance, and write the results as JSON.",
	RunE:  runFindJobs,
}

var (
	findJobsQuery    string
	findJobsLocation string
	findJobsRemote   bool
	findJobsDays     int
	findJobsMax      int
	findJobsDetails  bool
	findJobsOutput   string
)

func init() {
	findJobsCmd.Flags().StringVarP(&findJobsQuery, "query", "q", "", "Search query, e.g. \"senior golang engineer\" (required)")
	findJobsCmd.Flags().StringVar(&findJobsLocation, "location", "", "Preferred location filter")
	findJobsCmd.Flags().BoolVar(&findJobsRemote, "remote", false, "Prefer remote positions")
	findJobsCmd.Flags().IntVar(&findJobsDays, "days", 30, "Only include postings from the last N days")
	findJobsCmd.Flags().IntVar(&findJobsMax, "max", 20, "Maximum number of postings to return")
	findJobsCmd.Flags().BoolVar(&findJobsDetails, "details", false, "Fetch each posting page and extract full details")
	findJobsCmd.Flags().StringVarP(&findJobsOutput, "out", "o", "postings.json", "Path to output postings JSON")

	findJobsCmd.MarkFlagRequired("query")

	rootCmd.AddCommand(findJobsCmd)
}

func runFindJobs(_ *cobra.Command, _ []string) error {
	cfg, log, err := loadSetup()
	if err != nil {
		return err
	}
	if err := cfg.RequireLLM(); err != nil {
		return err
	}
	if err := cfg.RequireSearch(); err != nil {
		return err
	}

	ctx := context.Background()

	searcher, err := research.NewGoogleSearcher(ctx, cfg.SearchAPIKey, cfg.SearchCX)
	if err != nil {
		return fmt.Errorf("failed to create search client: %w", err)
	}

	gen, cleanup, err := buildGenerator(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer cleanup()

	finder := jobs.NewFinder(searcher, gen, log, jobs.WithBrowserFallback(cfg.UseBrowser))

	query := types.SearchQuery{
		Query:      findJobsQuery,
		Location:   findJobsLocation,
		Remote:     findJobsRemote,
		LastNDays:  findJobsDays,
		MaxResults: findJobsMax,
	}

	postings, err := finder.Search(ctx, query)
	if err != nil {
		return fmt.Errorf("job search failed: %w", err)
	}

	if findJobsDetails {
		postings = finder.DetailsAll(ctx, postings)
	}

	if err := writeArtifact(findJobsOutput, schemas.KindJobPosting, postings); err != nil {
		return err
	}

	observability.NewPrinter(os.Stdout).PrintPostings(postings)
	_, _ = fmt.Fprintf(os.Stdout, "Found %d postings, written to %s\n", len(postings), findJobsOutput)

	return nil
}
