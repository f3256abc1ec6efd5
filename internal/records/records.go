// Package records turns generic key/value mappings recovered from model
// output into validated domain records. Each kind validates against its
// embedded schema and then coerces fields permissively: anything absent
// or unusable takes the field's declared default instead of failing, and
// only a minimal per-kind required subset can reject a record.
package records

import (
	"fmt"
	"time"

	"github.com/aaron-seq/CareerAgent/internal/schemas"
	"github.com/aaron-seq/CareerAgent/internal/types"
)

// CVProfileFromMap builds a profile from a generic mapping. It never
// fails: fields that cannot be used are dropped and rawText is always
// retained for downstream fallbacks.
func CVProfileFromMap(record map[string]any, rawText string) *types.CVProfile {
	profile := &types.CVProfile{
		Name:        coerceString(record["name"]),
		Email:       coerceString(record["email"]),
		Phone:       coerceString(record["phone"]),
		LinkedIn:    coerceString(record["linkedin"]),
		GitHub:      coerceString(record["github"]),
		Portfolio:   coerceString(record["portfolio"]),
		Summary:     coerceString(record["summary"]),
		Experiences: make([]types.Experience, 0),
		Projects:    make([]types.Project, 0),
		Skills:      coerceStringSlice(record["skills"]),
		Education:   coerceStringSlice(record["education"]),
		RawText:     rawText,
	}

	for _, item := range coerceMapSlice(record["experiences"]) {
		profile.Experiences = append(profile.Experiences, experienceFromMap(item))
	}
	for _, item := range coerceMapSlice(record["projects"]) {
		profile.Projects = append(profile.Projects, projectFromMap(item))
	}

	return profile
}

// FallbackProfile builds the minimal profile used when structured CV
// extraction failed. The raw text is kept so later steps can still work
// from it, and the summary records why extraction degraded.
func FallbackProfile(rawText string, reason error) *types.CVProfile {
	return &types.CVProfile{
		Summary:     fmt.Sprintf("CV parsing failed: %v. Using raw text.", reason),
		Experiences: make([]types.Experience, 0),
		Projects:    make([]types.Project, 0),
		Skills:      make([]string, 0),
		Education:   make([]string, 0),
		RawText:     rawText,
	}
}

// JobPostingFromMap builds a job posting from a generic mapping.
// Title and company are required; everything else defaults.
func JobPostingFromMap(record map[string]any) (*types.JobPosting, error) {
	if err := schemas.ValidateRecord(schemas.KindJobPosting, record); err != nil {
		return nil, err
	}

	return &types.JobPosting{
		Title:          coerceString(record["title"]),
		Company:        coerceString(record["company"]),
		Location:       coerceString(record["location"]),
		URL:            coerceString(record["url"]),
		Description:    coerceString(record["description"]),
		Requirements:   coerceStringSlice(record["requirements"]),
		NiceToHave:     coerceStringSlice(record["nice_to_have"]),
		TechStack:      coerceStringSlice(record["tech_stack"]),
		Problems:       coerceStringSlice(record["problems"]),
		Benefits:       coerceStringSlice(record["benefits"]),
		SalaryRange:    coerceString(record["salary_range"]),
		RelevanceScore: coerceFloat(record["relevance_score"]),
	}, nil
}

// ContactFromMap builds a contact candidate from a generic mapping.
// Name is required; confidence defaults to unknown.
func ContactFromMap(record map[string]any) (*types.ContactCandidate, error) {
	if err := schemas.ValidateRecord(schemas.KindContactCandidate, record); err != nil {
		return nil, err
	}

	contact := &types.ContactCandidate{
		Name:            coerceString(record["name"]),
		Role:            coerceString(record["role"]),
		Email:           coerceString(record["email"]),
		EmailConfidence: coerceString(record["email_confidence"]),
		LinkedIn:        coerceString(record["linkedin"]),
		Source:          coerceString(record["source"]),
		ConfidenceScore: coerceFloat(record["confidence_score"]),
	}
	if contact.EmailConfidence == "" {
		contact.EmailConfidence = types.EmailUnknown
	}

	return contact, nil
}

// PlanFromMap builds a personalization plan from a generic mapping.
// No field is required; the angle defaults to technical.
func PlanFromMap(record map[string]any) (*types.PersonalizationPlan, error) {
	if err := schemas.ValidateRecord(schemas.KindPersonalizationPlan, record); err != nil {
		return nil, err
	}

	plan := &types.PersonalizationPlan{
		TechnicalHook:      coerceString(record["technical_hook"]),
		ImpactHook:         coerceString(record["impact_hook"]),
		CompanyHook:        coerceString(record["company_hook"]),
		SharedTechnologies: coerceStringSlice(record["shared_technologies"]),
		RelevantMetrics:    coerceStringSlice(record["relevant_metrics"]),
		Angle:              coerceString(record["angle"]),
	}
	if anchor := coerceMap(record["anchor_project"]); anchor != nil {
		project := projectFromMap(anchor)
		plan.AnchorProject = &project
	}
	if plan.Angle == "" {
		plan.Angle = types.AngleTechnical
	}

	return plan, nil
}

// EmailDraftFromMap builds an email draft from a generic mapping.
// Subject and body are required; the word count is always recomputed.
func EmailDraftFromMap(record map[string]any) (*types.EmailDraft, error) {
	if err := schemas.ValidateRecord(schemas.KindEmailDraft, record); err != nil {
		return nil, err
	}

	draft := &types.EmailDraft{
		Subject:        coerceString(record["subject"]),
		Body:           coerceString(record["body"]),
		RecipientEmail: coerceString(record["recipient_email"]),
		RecipientName:  coerceString(record["recipient_name"]),
		JobTitle:       coerceString(record["job_title"]),
		Company:        coerceString(record["company"]),
		CreatedAt:      time.Now(),
	}
	draft.RecountWords()

	return draft, nil
}

func experienceFromMap(record map[string]any) types.Experience {
	return types.Experience{
		Title:        coerceString(record["title"]),
		Company:      coerceString(record["company"]),
		Duration:     coerceString(record["duration"]),
		Achievements: coerceStringSlice(record["achievements"]),
		Metrics:      coerceStringSlice(record["metrics"]),
		Technologies: coerceStringSlice(record["technologies"]),
	}
}

func projectFromMap(record map[string]any) types.Project {
	return types.Project{
		Name:         coerceString(record["name"]),
		Description:  coerceString(record["description"]),
		Technologies: coerceStringSlice(record["technologies"]),
		Link:         coerceString(record["link"]),
		GitHub:       coerceString(record["github"]),
		Impact:       coerceString(record["impact"]),
	}
}
