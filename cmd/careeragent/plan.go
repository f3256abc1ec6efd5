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

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Build a personalization plan from a profile and posting",
	Long:  "Match a parsed CV profile against a job posting and produce a personalization plan: the anchor project, the technical, impact, and company hooks, and the outreach angle.",
	RunE:  runPlan,
}

var (
	planProfile string
	planPosting string
	planOutput  string
)

func init() {
	planCmd.Flags().StringVar(&planProfile, "profile", "cv_profile.json", "Path to parsed CV profile JSON")
	planCmd.Flags().StringVar(&planPosting, "posting", "posting.json", "Path to job posting JSON")
	planCmd.Flags().StringVarP(&planOutput, "out", "o", "plan.json", "Path to output plan JSON")

	rootCmd.AddCommand(planCmd)
}

func runPlan(_ *cobra.Command, _ []string) error {
	cfg, log, err := loadSetup()
	if err != nil {
		return err
	}
	if err := cfg.RequireLLM(); err != nil {
		return err
	}

	var prof types.CVProfile
	if err := readArtifact(planProfile, schemas.KindCVProfile, &prof); err != nil {
		return err
	}
	var posting types.JobPosting
	if err := readArtifact(planPosting, schemas.KindJobPosting, &posting); err != nil {
		return err
	}

	ctx := context.Background()

	gen, cleanup, err := buildGenerator(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer cleanup()

	engine := outreach.NewEngine(gen, log)
	plan := engine.Plan(ctx, &prof, &posting)

	if err := writeArtifact(planOutput, schemas.KindPersonalizationPlan, plan); err != nil {
		return err
	}

	observability.NewPrinter(os.Stdout).PrintPlan(plan)
	_, _ = fmt.Fprintf(os.Stdout, "Plan written to %s\n", planOutput)

	return nil
}
