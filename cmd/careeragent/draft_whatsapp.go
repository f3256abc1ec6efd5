package main

import (
	"context"
	"fmt"
	"os"

	"github.com/aaron-seq/CareerAgent/internal/observability"
	"github.com/aaron-seq/CareerAgent/internal/outreach"
	"github.com/aaron-seq/CareerAgent/internal/schemas"
	"github.com/aaron-seq/CareerAgent/internal/types"
	"github.com/spf13/cobra"
)

var draftWhatsAppCmd = &cobra.Command{
	Use:   "draft-whatsapp",
	Short: "Draft a short WhatsApp outreach message",
	Long:  "Draft a WhatsApp-length outreach message for a job posting and build the wa.me click-to-chat link with the message pre-filled.",
	RunE:  runDraftWhatsApp,
}

var (
	draftWhatsAppProfile string
	draftWhatsAppPosting string
	draftWhatsAppPhone   string
	draftWhatsAppOutput  string
)

func init() {
	draftWhatsAppCmd.Flags().StringVar(&draftWhatsAppProfile, "profile", "cv_profile.json", "Path to parsed CV profile JSON")
	draftWhatsAppCmd.Flags().StringVar(&draftWhatsAppPosting, "posting", "posting.json", "Path to job posting JSON")
	draftWhatsAppCmd.Flags().StringVar(&draftWhatsAppPhone, "phone", "", "Recipient phone number with country code, e.g. +15551234567")
	draftWhatsAppCmd.Flags().StringVarP(&draftWhatsAppOutput, "out", "o", "whatsapp_draft.json", "Path to output draft JSON")

	rootCmd.AddCommand(draftWhatsAppCmd)
}

func runDraftWhatsApp(_ *cobra.Command, _ []string) error {
	cfg, log, err := loadSetup()
	if err != nil {
		return err
	}
	if err := cfg.RequireLLM(); err != nil {
		return err
	}

	var prof types.CVProfile
	if err := readArtifact(draftWhatsAppProfile, schemas.KindCVProfile, &prof); err != nil {
		return err
	}
	var posting types.JobPosting
	if err := readArtifact(draftWhatsAppPosting, schemas.KindJobPosting, &posting); err != nil {
		return err
	}

	ctx := context.Background()

	gen, cleanup, err := buildGenerator(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer cleanup()

	engine := outreach.NewEngine(gen, log)
	draft, err := engine.WhatsApp(ctx, &prof, &posting, draftWhatsAppPhone)
	if err != nil {
		return fmt.Errorf("failed to draft WhatsApp message: %w", err)
	}

	if err := writeJSON(draftWhatsAppOutput, draft); err != nil {
		return err
	}

	observability.NewPrinter(os.Stdout).PrintWhatsAppDraft(draft)
	_, _ = fmt.Fprintf(os.Stdout, "Draft written to %s\n", draftWhatsAppOutput)

	return nil
}
