package main

import (
	"context"
	"fmt"
	"os"

	"github.com/aaron-seq/CareerAgent/internal/observability"
	"github.com/aaron-seq/CareerAgent/internal/profile"
	"github.com/aaron-seq/CareerAgent/internal/schemas"
	"github.com/spf13/cobra"
)

var parseCVCmd = &cobra.Command{
	Use:   "parse-cv",
	Short: "Parse a CV file into a structured profile",
	Long:  "Extract text from a CV in PDF, DOCX, or plain text form and parse it into a structured profile JSON that validates against the cv_profile schema.",
	RunE:  runParseCV,
}

var (
	parseCVInput  string
	parseCVOutput string
)

func init() {
	parseCVCmd.Flags().StringVarP(&parseCVInput, "cv", "c", "", "Path to CV file (required)")
	parseCVCmd.Flags().StringVarP(&parseCVOutput, "out", "o", "cv_profile.json", "Path to output profile JSON")

	parseCVCmd.MarkFlagRequired("cv")

	rootCmd.AddCommand(parseCVCmd)
}

func runParseCV(_ *cobra.Command, _ []string) error {
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

	parser := profile.NewParser(gen, log)
	prof, err := parser.ParseFile(ctx, parseCVInput)
	if err != nil {
		return fmt.Errorf("failed to parse CV: %w", err)
	}

	if err := writeArtifact(parseCVOutput, schemas.KindCVProfile, prof); err != nil {
		return err
	}

	observability.NewPrinter(os.Stdout).PrintProfile(prof)
	_, _ = fmt.Fprintf(os.Stdout, "Profile written to %s\n", parseCVOutput)

	return nil
}
