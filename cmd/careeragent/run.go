package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/aaron-seq/CareerAgent/internal/contacts"
	"github.com/aaron-seq/CareerAgent/internal/gmail"
	"github.com/aaron-seq/CareerAgent/internal/jobs"
	"github.com/aaron-seq/CareerAgent/internal/observability"
	"github.com/aaron-seq/CareerAgent/internal/outreach"
	"github.com/aaron-seq/CareerAgent/internal/profile"
	"github.com/aaron-seq/CareerAgent/internal/quality"
	"github.com/aaron-seq/CareerAgent/internal/research"
	"github.com/aaron-seq/CareerAgent/internal/schemas"
	"github.com/aaron-seq/CareerAgent/internal/store"
	"github.com/aaron-seq/CareerAgent/internal/types"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var runCommand = &cobra.Command{
	Use:   "run",
	Short: "Run the full outreach pipeline end-to-end",
	Long: `Orchestrates the entire outreach flow: CV parsing -> job discovery -> contact discovery -> personalization planning -> email drafting -> quality checks, with optional WhatsApp and Gmail drafts.

Artifacts are written as JSON files into --out-dir and, when DATABASE_URL is configured, persisted per step in PostgreSQL.`,
	RunE: runPipeline,
}

var (
	runCV        string
	runQuery     string
	runJobURL    string
	runLocation  string
	runDays      int
	runMax       int
	runContacts  int
	runRecipient string
	runAngle     string
	runPhone     string
	runTo        string
	runGmail     bool
	runOutDir    string
)

func init() {
	runCommand.Flags().StringVarP(&runCV, "cv", "c", "", "Path to CV file (required)")
	runCommand.Flags().StringVarP(&runQuery, "query", "q", "", "Job search query (mutually exclusive with --job-url)")
	runCommand.Flags().StringVar(&runJobURL, "job-url", "", "Job posting URL to target directly (mutually exclusive with --query)")
	runCommand.Flags().StringVar(&runLocation, "location", "", "Preferred location filter for --query mode")
	runCommand.Flags().IntVar(&runDays, "days", 30, "Only include postings from the last N days")
	runCommand.Flags().IntVar(&runMax, "max", 20, "Maximum number of postings to consider")
	runCommand.Flags().IntVar(&runContacts, "contacts", 5, "Maximum number of contacts to discover")
	runCommand.Flags().StringVar(&runRecipient, "recipient", "", "Recipient name for the email draft (defaults to the best contact found)")
	runCommand.Flags().StringVar(&runAngle, "angle", types.AngleTechnical, "Outreach angle: technical, impact, or product")
	runCommand.Flags().StringVar(&runPhone, "phone", "", "Phone number for a WhatsApp draft (optional)")
	runCommand.Flags().StringVar(&runTo, "to", "", "Recipient email for a Gmail draft (requires --gmail)")
	runCommand.Flags().BoolVar(&runGmail, "gmail", false, "Create a Gmail draft from the final email")
	runCommand.Flags().StringVarP(&runOutDir, "out-dir", "o", ".", "Directory for artifact JSON files")

	runCommand.MarkFlagRequired("cv")

	rootCmd.AddCommand(runCommand)
}

func artifactPath(name string) string {
	return filepath.Join(runOutDir, name)
}

func runPipeline(_ *cobra.Command, _ []string) (retErr error) {
	if runQuery == "" && runJobURL == "" {
		return fmt.Errorf("either --query or --job-url must be provided")
	}
	if runQuery != "" && runJobURL != "" {
		return fmt.Errorf("--query and --job-url are mutually exclusive; provide only one")
	}
	if err := checkAngle(runAngle); err != nil {
		return err
	}
	if runGmail && runTo == "" {
		return fmt.Errorf("--to is required with --gmail")
	}

	cfg, log, err := loadSetup()
	if err != nil {
		return err
	}
	if err := cfg.RequireLLM(); err != nil {
		return err
	}
	if runQuery != "" {
		if err := cfg.RequireSearch(); err != nil {
			return err
		}
	}

	ctx := context.Background()

	gen, cleanup, err := buildGenerator(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer cleanup()

	// Contact discovery is skipped rather than failed when search is
	// not configured and the target came from --job-url.
	var searcher research.Searcher
	if cfg.SearchAPIKey != "" && cfg.SearchCX != "" {
		gs, err := research.NewGoogleSearcher(ctx, cfg.SearchAPIKey, cfg.SearchCX)
		if err != nil {
			return fmt.Errorf("failed to create search client: %w", err)
		}
		searcher = gs
	}

	printer := observability.NewPrinter(os.Stdout)

	// Step 1: parse the CV.
	_, _ = fmt.Fprintf(os.Stdout, "Step 1/6: Parsing CV\n")
	parser := profile.NewParser(gen, log)
	prof, err := parser.ParseFile(ctx, runCV)
	if err != nil {
		return fmt.Errorf("failed to parse CV: %w", err)
	}
	if err := writeArtifact(artifactPath("cv_profile.json"), schemas.KindCVProfile, prof); err != nil {
		return err
	}
	printer.PrintProfile(prof)

	// Step 2: find the target posting.
	_, _ = fmt.Fprintf(os.Stdout, "Step 2/6: Finding job posting\n")
	finder := jobs.NewFinder(searcher, gen, log, jobs.WithBrowserFallback(cfg.UseBrowser))

	var posting *types.JobPosting
	var postings []types.JobPosting
	if runJobURL != "" {
		posting, err = finder.Details(ctx, runJobURL)
		if err != nil {
			return fmt.Errorf("failed to fetch job details: %w", err)
		}
		postings = []types.JobPosting{*posting}
	} else {
		query := types.SearchQuery{
			Query:      runQuery,
			Location:   runLocation,
			LastNDays:  runDays,
			MaxResults: runMax,
		}
		postings, err = finder.Search(ctx, query)
		if err != nil {
			return fmt.Errorf("job search failed: %w", err)
		}
		if len(postings) == 0 {
			return fmt.Errorf("no job postings found for %q", runQuery)
		}

		// Enrich the best match with full page details when it has a URL.
		posting = &postings[0]
		if posting.URL != "" {
			detailed, err := finder.Details(ctx, posting.URL)
			if err != nil {
				log.Warn("job enrichment failed, keeping search result",
					zap.String("url", posting.URL),
					zap.Error(err),
				)
			} else {
				posting = detailed
				postings[0] = *detailed
			}
		}
	}

	if err := writeArtifact(artifactPath("postings.json"), schemas.KindJobPosting, postings); err != nil {
		return err
	}
	if err := writeArtifact(artifactPath("posting.json"), schemas.KindJobPosting, posting); err != nil {
		return err
	}
	printer.PrintPostings([]types.JobPosting{*posting})

	// Record run history once the target is known.
	var st *store.Store
	var runID uuid.UUID
	if cfg.HasDatabase() {
		st, err = store.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.EnsureSchema(ctx); err != nil {
			return err
		}
		runID, err = st.CreateRun(ctx, posting.Company, posting.Title, posting.URL)
		if err != nil {
			return fmt.Errorf("failed to create run: %w", err)
		}

		defer func() {
			status := store.RunStatusCompleted
			if retErr != nil {
				status = store.RunStatusFailed
			}
			if err := st.CompleteRun(ctx, runID, status); err != nil {
				log.Warn("failed to complete run", zap.Error(err))
			}
		}()
	}

	saveStep := func(step string, content any) {
		if st == nil {
			return
		}
		if err := st.SaveRecord(ctx, runID, step, content); err != nil {
			log.Warn("failed to persist step",
				zap.String("step", step),
				zap.Error(err),
			)
		}
	}
	saveStep(store.StepCVProfile, prof)
	saveStep(store.StepPostings, postings)

	// Step 3: find contacts.
	var contactList []types.ContactCandidate
	if searcher != nil {
		_, _ = fmt.Fprintf(os.Stdout, "Step 3/6: Finding contacts at %s\n", posting.Company)
		contactFinder := contacts.NewFinder(searcher, gen, log)
		contactList = contactFinder.Find(ctx, posting.Company, posting.Title, runContacts)
		if err := writeArtifact(artifactPath("contacts.json"), schemas.KindContactCandidate, contactList); err != nil {
			return err
		}
		printer.PrintContacts(contactList)
		saveStep(store.StepContacts, contactList)
	} else {
		_, _ = fmt.Fprintf(os.Stdout, "Step 3/6: Skipping contact discovery (search not configured)\n")
	}

	// Step 4: plan and draft the email.
	_, _ = fmt.Fprintf(os.Stdout, "Step 4/6: Drafting email\n")
	engine := outreach.NewEngine(gen, log)

	recipient := runRecipient
	if recipient == "" && len(contactList) > 0 {
		recipient = contactList[0].Name
	}

	draft, err := engine.Email(ctx, prof, posting, recipient, runAngle)
	if err != nil {
		return fmt.Errorf("failed to draft email: %w", err)
	}
	if draft.PersonalizationPlan != nil {
		if err := writeArtifact(artifactPath("plan.json"), schemas.KindPersonalizationPlan, draft.PersonalizationPlan); err != nil {
			return err
		}
		saveStep(store.StepPlan, draft.PersonalizationPlan)
	}
	if err := writeArtifact(artifactPath("email_draft.json"), schemas.KindEmailDraft, draft); err != nil {
		return err
	}
	printer.PrintEmailDraft(draft)
	saveStep(store.StepEmailDraft, draft)

	// Step 5: quality checks.
	_, _ = fmt.Fprintf(os.Stdout, "Step 5/6: Checking quality\n")
	check := quality.Review(draft)
	printer.PrintQuality(check)
	if err := writeJSON(artifactPath("quality_check.json"), check); err != nil {
		return err
	}
	saveStep(store.StepQualityCheck, check)

	// Step 6: optional WhatsApp and Gmail drafts.
	if runPhone == "" && !runGmail {
		_, _ = fmt.Fprintf(os.Stdout, "Step 6/6: Skipping optional drafts (no --phone or --gmail)\n")
	} else {
		_, _ = fmt.Fprintf(os.Stdout, "Step 6/6: Creating optional drafts\n")
	}

	if runPhone != "" {
		waDraft, err := engine.WhatsApp(ctx, prof, posting, runPhone)
		if err != nil {
			return fmt.Errorf("failed to draft WhatsApp message: %w", err)
		}
		if err := writeJSON(artifactPath("whatsapp_draft.json"), waDraft); err != nil {
			return err
		}
		printer.PrintWhatsAppDraft(waDraft)
		saveStep(store.StepWhatsAppDraft, waDraft)
	}

	if runGmail {
		client, err := gmail.NewClient(ctx, cfg.GmailCredentials, cfg.GmailToken, log)
		if err != nil {
			return err
		}
		id, err := client.CreateDraft(ctx, gmail.DraftRequest{
			To:      runTo,
			Subject: draft.Subject,
			Body:    draft.Body,
		})
		if err != nil {
			return fmt.Errorf("failed to create gmail draft: %w", err)
		}

		draft.GmailDraftID = id
		draft.RecipientEmail = runTo
		if err := writeArtifact(artifactPath("email_draft.json"), schemas.KindEmailDraft, draft); err != nil {
			return err
		}
		saveStep(store.StepEmailDraft, draft)
		_, _ = fmt.Fprintf(os.Stdout, "Gmail draft created: %s\n", id)
	}

	_, _ = fmt.Fprintf(os.Stdout, "\nDone. Artifacts written to %s\n", runOutDir)
	if st != nil {
		_, _ = fmt.Fprintf(os.Stdout, "Run recorded: %s\n", runID)
	}

	return nil
}
