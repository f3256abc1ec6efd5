package main

import (
	"fmt"
	"os"

	"github.com/aaron-seq/CareerAgent/internal/observability"
	"github.com/aaron-seq/CareerAgent/internal/quality"
	"github.com/aaron-seq/CareerAgent/internal/schemas"
	"github.com/aaron-seq/CareerAgent/internal/types"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Run quality checks on an email draft",
	Long:  "Check an email draft for concrete metrics, a project link, a company hook, a call to action, length, emojis, and bullet formatting. Exits non-zero when the draft scores below the passing threshold.",
	RunE:  runCheck,
}

var (
	checkDraft  string
	checkOutput string
)

func init() {
	checkCmd.Flags().StringVarP(&checkDraft, "draft", "d", "email_draft.json", "Path to email draft JSON")
	checkCmd.Flags().StringVarP(&checkOutput, "out", "o", "", "Path to output quality check JSON (optional)")

	rootCmd.AddCommand(checkCmd)
}

func runCheck(_ *cobra.Command, _ []string) error {
	var draft types.EmailDraft
	if err := readArtifact(checkDraft, schemas.KindEmailDraft, &draft); err != nil {
		return err
	}

	check := quality.Review(&draft)

	observability.NewPrinter(os.Stdout).PrintQuality(check)

	if checkOutput != "" {
		if err := writeJSON(checkOutput, check); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(os.Stdout, "Quality check written to %s\n", checkOutput)
	}

	// Exit code 1 signals a failing draft to scripts and CI.
	if !check.Passed {
		return fmt.Errorf("quality check failed: score %.0f/100 with %d issue(s)", check.Score, len(check.Issues))
	}

	return nil
}
