package main

import (
	"context"
	"fmt"
	"os"

	"github.com/aaron-seq/CareerAgent/internal/contacts"
	"github.com/aaron-seq/CareerAgent/internal/observability"
	"github.com/aaron-seq/CareerAgent/internal/research"
	"github.com/aaron-seq/CareerAgent/internal/schemas"
	"github.com/spf13/cobra"
)

var findContactsCmd = &cobra.Command{
	Use:   "find-contacts",
	Short: "Find hiring contacts at a company",
	Long:  "Search LinkedIn profiles for recruiters, hiring managers, and engineering leaders at a company, guess email permutations, and rank the candidates by confidence.",
	RunE:  runFindContacts,
}

var (
	findContactsCompany string
	findContactsTitle   string
	findContactsMax     int
	findContactsOutput  string
)

func init() {
	findContactsCmd.Flags().StringVarP(&findContactsCompany, "company", "c", "", "Company name (required)")
	findContactsCmd.Flags().StringVarP(&findContactsTitle, "title", "t", "", "Job title used to target the right hiring team")
	findContactsCmd.Flags().IntVar(&findContactsMax, "max", 5, "Maximum number of contacts to return")
	findContactsCmd.Flags().StringVarP(&findContactsOutput, "out", "o", "contacts.json", "Path to output contacts JSON")

	findContactsCmd.MarkFlagRequired("company")

	rootCmd.AddCommand(findContactsCmd)
}

func runFindContacts(_ *cobra.Command, _ []string) error {
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

	finder := contacts.NewFinder(searcher, gen, log)
	found := finder.Find(ctx, findContactsCompany, findContactsTitle, findContactsMax)

	if err := writeArtifact(findContactsOutput, schemas.KindContactCandidate, found); err != nil {
		return err
	}

	observability.NewPrinter(os.Stdout).PrintContacts(found)
	_, _ = fmt.Fprintf(os.Stdout, "Found %d contacts, written to %s\n", len(found), findContactsOutput)

	return nil
}
