package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/aaron-seq/CareerAgent/internal/store"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded pipeline runs",
	Long:  "List pipeline runs recorded in PostgreSQL, newest first. --show prints one run with its persisted steps, --step prints a single artifact as JSON, --delete removes a run and its artifacts.",
	RunE:  runHistory,
}

var (
	historyLimit  int
	historySteps  bool
	historyShow   string
	historyStep   string
	historyDelete string
)

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", store.DefaultListLimit, "Maximum number of runs to list")
	historyCmd.Flags().BoolVar(&historySteps, "steps", false, "Show persisted step names per run")
	historyCmd.Flags().StringVar(&historyShow, "show", "", "Run id to show in detail")
	historyCmd.Flags().StringVar(&historyStep, "step", "", "With --show, print this step's artifact JSON")
	historyCmd.Flags().StringVar(&historyDelete, "delete", "", "Run id to delete along with its artifacts")

	rootCmd.AddCommand(historyCmd)
}

func runHistory(_ *cobra.Command, _ []string) error {
	cfg, _, err := loadSetup()
	if err != nil {
		return err
	}
	if err := cfg.RequireDatabase(); err != nil {
		return err
	}

	ctx := context.Background()

	st, err := store.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer st.Close()

	switch {
	case historyDelete != "":
		return deleteRun(ctx, st, historyDelete)
	case historyShow != "":
		return showRun(ctx, st, historyShow, historyStep)
	}

	runs, err := st.ListRuns(ctx, historyLimit)
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}

	if len(runs) == 0 {
		_, _ = fmt.Fprintf(os.Stdout, "No runs recorded\n")
		return nil
	}

	for _, run := range runs {
		_, _ = fmt.Fprintf(os.Stdout, "%s  %-9s  %s", run.ID, run.Status, run.CreatedAt.Format("2006-01-02 15:04"))
		if run.Company != "" {
			_, _ = fmt.Fprintf(os.Stdout, "  %s", run.Company)
		}
		if run.JobTitle != "" {
			_, _ = fmt.Fprintf(os.Stdout, "  (%s)", run.JobTitle)
		}
		_, _ = fmt.Fprintln(os.Stdout)

		if historySteps {
			steps, err := st.ListSteps(ctx, run.ID)
			if err != nil {
				return fmt.Errorf("failed to list steps for %s: %w", run.ID, err)
			}
			if len(steps) > 0 {
				_, _ = fmt.Fprintf(os.Stdout, "    steps: %s\n", strings.Join(steps, ", "))
			}
		}
	}

	return nil
}

func showRun(ctx context.Context, st *store.Store, rawID, step string) error {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return fmt.Errorf("invalid run id %q: %w", rawID, err)
	}

	run, err := st.GetRun(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to load run: %w", err)
	}
	if run == nil {
		return fmt.Errorf("run not found: %s", id)
	}

	if step != "" {
		content, err := st.GetRecord(ctx, id, step)
		if err != nil {
			return fmt.Errorf("failed to load %s artifact: %w", step, err)
		}
		if content == nil {
			return fmt.Errorf("no %s artifact recorded for run %s", step, id)
		}
		_, _ = os.Stdout.Write(content)
		_, _ = fmt.Fprintln(os.Stdout)
		return nil
	}

	_, _ = fmt.Fprintf(os.Stdout, "Run:      %s\n", run.ID)
	_, _ = fmt.Fprintf(os.Stdout, "Status:   %s\n", run.Status)
	_, _ = fmt.Fprintf(os.Stdout, "Created:  %s\n", run.CreatedAt.Format("2006-01-02 15:04:05"))
	if run.CompletedAt != nil {
		_, _ = fmt.Fprintf(os.Stdout, "Finished: %s\n", run.CompletedAt.Format("2006-01-02 15:04:05"))
	}
	if run.Company != "" {
		_, _ = fmt.Fprintf(os.Stdout, "Company:  %s\n", run.Company)
	}
	if run.JobTitle != "" {
		_, _ = fmt.Fprintf(os.Stdout, "Job:      %s\n", run.JobTitle)
	}
	if run.JobURL != "" {
		_, _ = fmt.Fprintf(os.Stdout, "URL:      %s\n", run.JobURL)
	}

	steps, err := st.ListSteps(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to list steps: %w", err)
	}
	if len(steps) > 0 {
		_, _ = fmt.Fprintf(os.Stdout, "Steps:    %s\n", strings.Join(steps, ", "))
	}

	return nil
}

func deleteRun(ctx context.Context, st *store.Store, rawID string) error {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return fmt.Errorf("invalid run id %q: %w", rawID, err)
	}
	if err := st.DeleteRun(ctx, id); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(os.Stdout, "Run %s deleted\n", id)
	return nil
}
