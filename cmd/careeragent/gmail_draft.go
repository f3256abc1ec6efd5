package main

import (
	"context"
	"fmt"
	"os"

	"github.com/aaron-seq/CareerAgent/internal/gmail"
	"github.com/aaron-seq/CareerAgent/internal/schemas"
	"github.com/aaron-seq/CareerAgent/internal/types"
	"github.com/spf13/cobra"
)

var gmailDraftCmd = &cobra.Command{
	Use:   "gmail-draft",
	Short: "Create a Gmail draft from an email draft",
	Long:  "Create a draft in the user's Gmail account from an email draft JSON using the compose-only OAuth2 scope. Nothing is sent; the Gmail draft id is written back into the artifact. --list, --show and --delete manage existing drafts instead.",
	RunE:  runGmailDraft,
}

var (
	gmailDraftFile   string
	gmailDraftTo     string
	gmailDraftFrom   string
	gmailDraftList   bool
	gmailDraftShow   string
	gmailDraftDelete string
	gmailDraftMax    int
)

func init() {
	gmailDraftCmd.Flags().StringVarP(&gmailDraftFile, "draft", "d", "email_draft.json", "Path to email draft JSON")
	gmailDraftCmd.Flags().StringVar(&gmailDraftTo, "to", "", "Recipient email address (required to create)")
	gmailDraftCmd.Flags().StringVar(&gmailDraftFrom, "from", "", "Sender email address (optional)")
	gmailDraftCmd.Flags().BoolVar(&gmailDraftList, "list", false, "List existing Gmail drafts instead of creating one")
	gmailDraftCmd.Flags().StringVar(&gmailDraftShow, "show", "", "Gmail draft id to show")
	gmailDraftCmd.Flags().StringVar(&gmailDraftDelete, "delete", "", "Gmail draft id to delete")
	gmailDraftCmd.Flags().IntVar(&gmailDraftMax, "max", gmail.DefaultMaxDrafts, "Maximum drafts to list")

	rootCmd.AddCommand(gmailDraftCmd)
}

func runGmailDraft(_ *cobra.Command, _ []string) error {
	cfg, log, err := loadSetup()
	if err != nil {
		return err
	}

	manage := gmailDraftList || gmailDraftShow != "" || gmailDraftDelete != ""

	var draft types.EmailDraft
	if !manage {
		if gmailDraftTo == "" {
			return fmt.Errorf("--to is required to create a draft")
		}
		if err := readArtifact(gmailDraftFile, schemas.KindEmailDraft, &draft); err != nil {
			return err
		}
	}

	ctx := context.Background()

	client, err := gmail.NewClient(ctx, cfg.GmailCredentials, cfg.GmailToken, log)
	if err != nil {
		return err
	}

	switch {
	case gmailDraftList:
		drafts, err := client.ListDrafts(ctx, gmailDraftMax)
		if err != nil {
			return err
		}
		if len(drafts) == 0 {
			_, _ = fmt.Fprintln(os.Stdout, "No drafts")
			return nil
		}
		for _, d := range drafts {
			_, _ = fmt.Fprintf(os.Stdout, "%s  %s\n", d.ID, d.Snippet)
		}
		return nil

	case gmailDraftShow != "":
		summary, err := client.GetDraft(ctx, gmailDraftShow)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintf(os.Stdout, "%s  %s\n", summary.ID, summary.Snippet)
		return nil

	case gmailDraftDelete != "":
		if err := client.DeleteDraft(ctx, gmailDraftDelete); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(os.Stdout, "Gmail draft deleted: %s\n", gmailDraftDelete)
		return nil
	}

	id, err := client.CreateDraft(ctx, gmail.DraftRequest{
		To:      gmailDraftTo,
		From:    gmailDraftFrom,
		Subject: draft.Subject,
		Body:    draft.Body,
	})
	if err != nil {
		return fmt.Errorf("failed to create gmail draft: %w", err)
	}

	draft.GmailDraftID = id
	draft.RecipientEmail = gmailDraftTo
	if err := writeArtifact(gmailDraftFile, schemas.KindEmailDraft, &draft); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(os.Stdout, "Gmail draft created: %s\n", id)
	_, _ = fmt.Fprintf(os.Stdout, "Updated %s\n", gmailDraftFile)

	return nil
}
