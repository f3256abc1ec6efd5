package store

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArtifactStepConstants(t *testing.T) {
	steps := []string{
		StepCVProfile,
		StepPostings,
		StepContacts,
		StepPlan,
		StepEmailDraft,
		StepWhatsAppDraft,
		StepQualityCheck,
	}

	seen := make(map[string]bool, len(steps))
	for _, step := range steps {
		assert.NotEmpty(t, step, "step constant should not be empty")
		assert.False(t, seen[step], "step constant %q duplicated", step)
		seen[step] = true
	}
}

func TestRunType(t *testing.T) {
	run := Run{
		Company:  "Acme",
		JobTitle: "Senior Backend Engineer",
		Status:   RunStatusRunning,
	}

	assert.Equal(t, "Acme", run.Company)
	assert.Equal(t, "Senior Backend Engineer", run.JobTitle)
	assert.Equal(t, "running", run.Status)
	assert.Nil(t, run.CompletedAt)
}

func TestSchemaCoversBothTables(t *testing.T) {
	assert.Contains(t, schema, "CREATE TABLE IF NOT EXISTS runs")
	assert.Contains(t, schema, "CREATE TABLE IF NOT EXISTS artifacts")
	assert.Contains(t, schema, "ON DELETE CASCADE")
	assert.Contains(t, schema, "UNIQUE (run_id, step)")
	assert.Equal(t, 2, strings.Count(schema, "CREATE TABLE"))
}
