package main

import (
	"context"
	"fmt"
	"os"

	"github.com/aaron-seq/CareerAgent/internal/observability"
	"github.com/aaron-seq/CareerAgent/internal/outreach"
	"github.com/aaron-seq/CareerAgent/internal/quality"
	"github.com/aaron-seq/CareerAgent/internal/schemas"
	"github.com/aaron-seq/CareerAgent/internal/types"
	"github.com/spf13/cobra"
)

var draftEmailCmd = &cobra.Command{
	Use:   "draft-email",
	Short: "Draft a personalized outreach email",
	Long:  "Plan and draft a short personalized email for a job posting, run the quality checks on the result, and write the draft as JSON. --regenerate redrafts the existing output file with the given angle, reusing its attached plan.",
	RunE:  runDraftEmail,
}

var (
	draftEmailProfile   string
	draftEmailPosting   string
	draftEmailRecipient string
	draftEmailAngle     string
	draftEmailOutput    string
	draftEmailRegen     bool
)

func init() {
	draftEmailCmd.Flags().StringVar(&draftEmailProfile, "profile", "cv_profile.json", "Path to parsed CV profile JSON")
	draftEmailCmd.Flags().StringVar(&draftEmailPosting, "posting", "posting.json", "Path to job posting JSON")
	draftEmailCmd.Flags().StringVar(&draftEmailRecipient, "recipient", "", "Recipient name, e.g. \"Priya Patel\"")
	draftEmailCmd.Flags().StringVar(&draftEmailAngle, "angle", types.AngleTechnical, "Outreach angle: technical, impact, or product")
	draftEmailCmd.Flags().StringVarP(&draftEmailOutput, "out", "o", "email_draft.json", "Path to output draft JSON")
	draftEmailCmd.Flags().BoolVar(&draftEmailRegen, "regenerate", false, "Regenerate the existing draft at --out with the given angle")

	rootCmd.AddCommand(draftEmailCmd)
}

func runDraftEmail(_ *cobra.Command, _ []string) error {
	if err := checkAngle(draftEmailAngle); err != nil {
		return err
	}

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

	engine := outreach.NewEngine(gen, log)

	var draft *types.EmailDraft
	if draftEmailRegen {
		var existing types.EmailDraft
		if err := readArtifact(draftEmailOutput, schemas.KindEmailDraft, &existing); err != nil {
			return err
		}
		draft, err = engine.Regenerate(ctx, &existing, draftEmailAngle)
		if err != nil {
			return fmt.Errorf("failed to regenerate email: %w", err)
		}
	} else {
		var prof types.CVProfile
		if err := readArtifact(draftEmailProfile, schemas.KindCVProfile, &prof); err != nil {
			return err
		}
		var posting types.JobPosting
		if err := readArtifact(draftEmailPosting, schemas.KindJobPosting, &posting); err != nil {
			return err
		}

		draft, err = engine.Email(ctx, &prof, &posting, draftEmailRecipient, draftEmailAngle)
		if err != nil {
			return fmt.Errorf("failed to draft email: %w", err)
		}
	}

	if err := writeArtifact(draftEmailOutput, schemas.KindEmailDraft, draft); err != nil {
		return err
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintEmailDraft(draft)
	printer.PrintQuality(quality.Review(draft))
	_, _ = fmt.Fprintf(os.Stdout, "Draft written to %s\n", draftEmailOutput)

	return nil
}
