package records

import (
	"errors"
	"testing"

	"github.com/aaron-seq/CareerAgent/internal/schemas"
	"github.com/aaron-seq/CareerAgent/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCVProfileFromMap(t *testing.T) {
	record := map[string]any{
		"name":     "Jane Doe",
		"email":    "jane@example.com",
		"linkedin": "https://linkedin.com/in/janedoe",
		"skills":   []any{"Go", "PostgreSQL", "Kubernetes"},
		"experiences": []any{
			map[string]any{
				"title":    "Senior Engineer",
				"company":  "Acme Corp",
				"duration": "2020-2023",
				"metrics":  []any{"Cut latency by 40%"},
			},
		},
		"projects": []any{
			map[string]any{
				"name":        "Distributed Cache",
				"description": "Sharded cache layer",
				"github":      "https://github.com/janedoe/cache",
				"impact":      "1M requests/day",
			},
		},
		"education": []any{"BSc Computer Science"},
	}

	profile := CVProfileFromMap(record, "raw cv text")

	assert.Equal(t, "Jane Doe", profile.Name)
	assert.Equal(t, "jane@example.com", profile.Email)
	assert.Equal(t, []string{"Go", "PostgreSQL", "Kubernetes"}, profile.Skills)
	require.Len(t, profile.Experiences, 1)
	assert.Equal(t, "Senior Engineer", profile.Experiences[0].Title)
	assert.Equal(t, []string{"Cut latency by 40%"}, profile.Experiences[0].Metrics)
	require.Len(t, profile.Projects, 1)
	assert.Equal(t, "Distributed Cache", profile.Projects[0].Name)
	assert.Equal(t, "raw cv text", profile.RawText)
}

func TestCVProfileFromMap_GarbageFieldsDropped(t *testing.T) {
	record := map[string]any{
		"skills":      "not a list",
		"experiences": []any{"not a map", 42},
		"projects":    map[string]any{"not": "a list"},
	}

	profile := CVProfileFromMap(record, "raw cv text")

	assert.Empty(t, profile.Skills)
	assert.Empty(t, profile.Experiences)
	assert.Empty(t, profile.Projects)
	assert.Equal(t, "raw cv text", profile.RawText)
}

func TestCVProfileFromMap_EmptyMap(t *testing.T) {
	profile := CVProfileFromMap(map[string]any{}, "raw cv text")

	assert.Empty(t, profile.Name)
	assert.NotNil(t, profile.Experiences)
	assert.NotNil(t, profile.Skills)
	assert.Equal(t, "raw cv text", profile.RawText)
}

func TestFallbackProfile(t *testing.T) {
	profile := FallbackProfile("raw cv text", errors.New("model returned prose"))

	assert.Equal(t, "CV parsing failed: model returned prose. Using raw text.", profile.Summary)
	assert.Equal(t, "raw cv text", profile.RawText)
	assert.NotNil(t, profile.Skills)
	assert.NotNil(t, profile.Experiences)
	assert.NotNil(t, profile.Projects)
	assert.NotNil(t, profile.Education)
}

func TestJobPostingFromMap(t *testing.T) {
	record := map[string]any{
		"title":           "Backend Engineer",
		"company":         "Acme Corp",
		"location":        "Berlin",
		"description":     "Build services in Go",
		"requirements":    []any{"Go", "PostgreSQL"},
		"tech_stack":      []any{"Go", "Kubernetes"},
		"relevance_score": 0.8,
	}

	posting, err := JobPostingFromMap(record)

	require.NoError(t, err)
	assert.Equal(t, "Backend Engineer", posting.Title)
	assert.Equal(t, "Acme Corp", posting.Company)
	assert.Equal(t, []string{"Go", "PostgreSQL"}, posting.Requirements)
	assert.InDelta(t, 0.8, posting.RelevanceScore, 1e-9)
}

func TestJobPostingFromMap_MissingCompany(t *testing.T) {
	record := map[string]any{
		"title": "Backend Engineer",
	}

	posting, err := JobPostingFromMap(record)

	require.Error(t, err)
	assert.Nil(t, posting)

	var validationErr *schemas.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Error(), "company")
}

func TestJobPostingFromMap_Defaults(t *testing.T) {
	record := map[string]any{
		"title":   "Backend Engineer",
		"company": "Acme Corp",
	}

	posting, err := JobPostingFromMap(record)

	require.NoError(t, err)
	assert.Empty(t, posting.Location)
	assert.NotNil(t, posting.Requirements)
	assert.Empty(t, posting.Requirements)
	assert.Zero(t, posting.RelevanceScore)
}

func TestContactFromMap(t *testing.T) {
	record := map[string]any{
		"name":             "John Smith",
		"role":             "Engineering Manager",
		"email":            "john@acme.com",
		"email_confidence": "confirmed",
		"source":           "https://linkedin.com/in/johnsmith",
		"confidence_score": 0.9,
	}

	contact, err := ContactFromMap(record)

	require.NoError(t, err)
	assert.Equal(t, "John Smith", contact.Name)
	assert.Equal(t, types.EmailConfirmed, contact.EmailConfidence)
	assert.InDelta(t, 0.9, contact.ConfidenceScore, 1e-9)
}

func TestContactFromMap_MissingName(t *testing.T) {
	record := map[string]any{
		"role": "Recruiter",
	}

	contact, err := ContactFromMap(record)

	require.Error(t, err)
	assert.Nil(t, contact)

	var validationErr *schemas.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestContactFromMap_ConfidenceDefaultsToUnknown(t *testing.T) {
	contact, err := ContactFromMap(map[string]any{"name": "John Smith"})

	require.NoError(t, err)
	assert.Equal(t, types.EmailUnknown, contact.EmailConfidence)
}

func TestPlanFromMap(t *testing.T) {
	record := map[string]any{
		"anchor_project": map[string]any{
			"name":        "Distributed Cache",
			"description": "Sharded cache layer",
		},
		"technical_hook":      "Experience with Go, Redis",
		"impact_hook":         "Cut latency by 40%",
		"company_hook":        "Interested in the Backend Engineer role",
		"shared_technologies": []any{"Go", "Redis"},
		"relevant_metrics":    []any{"40% latency reduction"},
		"angle":               "impact",
	}

	plan, err := PlanFromMap(record)

	require.NoError(t, err)
	require.NotNil(t, plan.AnchorProject)
	assert.Equal(t, "Distributed Cache", plan.AnchorProject.Name)
	assert.Equal(t, "impact", plan.Angle)
	assert.Equal(t, []string{"Go", "Redis"}, plan.SharedTechnologies)
}

func TestPlanFromMap_EmptyMapDefaults(t *testing.T) {
	plan, err := PlanFromMap(map[string]any{})

	require.NoError(t, err)
	assert.Nil(t, plan.AnchorProject)
	assert.Equal(t, types.AngleTechnical, plan.Angle)
	assert.NotNil(t, plan.SharedTechnologies)
	assert.NotNil(t, plan.RelevantMetrics)
}

func TestPlanFromMap_BadAnchorShape(t *testing.T) {
	plan, err := PlanFromMap(map[string]any{
		"anchor_project": "not an object",
	})

	require.Error(t, err)
	assert.Nil(t, plan)

	var validationErr *schemas.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestEmailDraftFromMap(t *testing.T) {
	record := map[string]any{
		"subject":   "Re: Backend Engineer",
		"body":      "Hi John, I built a cache serving 1M requests/day.",
		"job_title": "Backend Engineer",
		"company":   "Acme Corp",
	}

	draft, err := EmailDraftFromMap(record)

	require.NoError(t, err)
	assert.Equal(t, "Re: Backend Engineer", draft.Subject)
	assert.Equal(t, 9, draft.WordCount)
	assert.False(t, draft.CreatedAt.IsZero())
}

func TestEmailDraftFromMap_MissingBody(t *testing.T) {
	record := map[string]any{
		"subject": "Re: Backend Engineer",
	}

	draft, err := EmailDraftFromMap(record)

	require.Error(t, err)
	assert.Nil(t, draft)
}

func TestCoerceString(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected string
	}{
		{name: "string trimmed", input: "  hello  ", expected: "hello"},
		{name: "nil", input: nil, expected: ""},
		{name: "number serialized", input: float64(42), expected: "42"},
		{name: "bool serialized", input: true, expected: "true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, coerceString(tt.input))
		})
	}
}

func TestCoerceFloat(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected float64
	}{
		{name: "float", input: 0.8, expected: 0.8},
		{name: "int", input: 3, expected: 3},
		{name: "numeric string", input: "0.5", expected: 0.5},
		{name: "junk string", input: "high", expected: 0},
		{name: "nil", input: nil, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, coerceFloat(tt.input), 1e-9)
		})
	}
}

func TestCoerceStringSlice(t *testing.T) {
	result := coerceStringSlice([]any{"Go", "", "  Redis  ", 7})
	assert.Equal(t, []string{"Go", "Redis", "7"}, result)

	assert.Empty(t, coerceStringSlice("not a slice"))
	assert.NotNil(t, coerceStringSlice(nil))
}
