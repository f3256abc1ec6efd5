// Package outreach turns a parsed CV and a job posting into personalized
// messages. Every draft starts from a personalization plan so emails and
// chat messages stay anchored to the same project and metrics.
package outreach

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/aaron-seq/CareerAgent/internal/llm"
	"github.com/aaron-seq/CareerAgent/internal/prompts"
	"github.com/aaron-seq/CareerAgent/internal/records"
	"github.com/aaron-seq/CareerAgent/internal/types"
	"github.com/aaron-seq/CareerAgent/internal/whatsapp"
)

// Sampling temperatures per step. Planning stays conservative, drafting
// gets more freedom, and regeneration the most so a retry does not
// reproduce the draft it replaces.
const (
	planTemperature       = 0.4
	emailTemperature      = 0.6
	whatsappTemperature   = 0.5
	regenerateTemperature = 0.7
)

// DefaultRecipient addresses the message when no contact name is known.
const DefaultRecipient = "Hiring Manager"

// ErrMissingPlan is returned by Regenerate when the existing draft carries
// no personalization plan to rebuild from.
var ErrMissingPlan = errors.New("existing draft has no personalization plan")

// Engine drafts outreach messages for a candidate and a posting.
type Engine struct {
	gen *llm.Generator
	log *zap.Logger
}

// NewEngine returns an Engine backed by gen.
func NewEngine(gen *llm.Generator, log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{gen: gen, log: log}
}

// Plan analyzes the overlap between the candidate and the posting and
// returns a personalization plan. Planning never fails: when generation
// or validation goes wrong, a deterministic plan built from the profile
// is returned instead.
func (e *Engine) Plan(ctx context.Context, profile *types.CVProfile, posting *types.JobPosting) *types.PersonalizationPlan {
	record, err := e.gen.GenerateJSON(ctx, planPrompt(profile, posting), llm.GenerateOptions{
		Tier:        llm.TierAdvanced,
		Temperature: planTemperature,
	})
	if err != nil {
		e.log.Warn("personalization planning failed, using fallback plan", zap.Error(err))
		return fallbackPlan(profile, posting)
	}

	plan, err := records.PlanFromMap(record)
	if err != nil {
		e.log.Warn("personalization plan invalid, using fallback plan", zap.Error(err))
		return fallbackPlan(profile, posting)
	}
	return plan
}

// Email drafts an outreach email for the posting. recipientName and angle
// may be empty; the prompt then addresses DefaultRecipient with the
// technical angle, while the draft keeps the caller's recipientName.
func (e *Engine) Email(ctx context.Context, profile *types.CVProfile, posting *types.JobPosting, recipientName, angle string) (*types.EmailDraft, error) {
	if angle == "" {
		angle = types.AngleTechnical
	}

	plan := e.Plan(ctx, profile, posting)
	prompt := emailPrompt(plan, posting.Title, posting.Company, orDefault(recipientName, DefaultRecipient), angle)

	record, err := e.gen.GenerateJSON(ctx, prompt, llm.GenerateOptions{
		Tier:        llm.TierAdvanced,
		Temperature: emailTemperature,
	})
	if err != nil {
		return nil, fmt.Errorf("email generation failed: %w", err)
	}

	draft := &types.EmailDraft{
		Subject:             stringField(record, "subject", "Re: "+posting.Title),
		Body:                stringField(record, "body", ""),
		RecipientName:       recipientName,
		JobTitle:            posting.Title,
		Company:             posting.Company,
		PersonalizationPlan: plan,
		CreatedAt:           time.Now(),
	}
	draft.RecountWords()

	return draft, nil
}

// WhatsApp drafts a short chat message for the posting together with its
// click-to-chat link. phone may be empty, which yields a link that opens
// WhatsApp without a contact.
func (e *Engine) WhatsApp(ctx context.Context, profile *types.CVProfile, posting *types.JobPosting, phone string) (*types.WhatsAppDraft, error) {
	plan := e.Plan(ctx, profile, posting)

	metric := "relevant experience"
	if len(plan.RelevantMetrics) > 0 {
		metric = plan.RelevantMetrics[0]
	}
	projectName := "a project"
	projectLink := ""
	if plan.AnchorProject != nil {
		projectName = plan.AnchorProject.Name
		projectLink = plan.AnchorProject.Link
	}

	prompt := prompts.Render("outreach.json", "whatsapp", map[string]string{
		"JobTitle":      posting.Title,
		"CompanyName":   posting.Company,
		"CandidateName": orDefault(profile.Name, "I"),
		"AnchorProject": projectName,
		"Metric":        metric,
		"Link":          projectLink,
	})

	record, err := e.gen.GenerateJSON(ctx, prompt, llm.GenerateOptions{
		Tier:        llm.TierAdvanced,
		Temperature: whatsappTemperature,
	})
	if err != nil {
		return nil, fmt.Errorf("whatsapp message generation failed: %w", err)
	}

	message := stringField(record, "message", "")
	draft := &types.WhatsAppDraft{
		Message:        message,
		ClickToChatURL: whatsapp.BuildClickToChatURL(message, phone),
		RecipientPhone: phone,
		JobTitle:       posting.Title,
		Company:        posting.Company,
		CreatedAt:      time.Now(),
	}
	draft.RecountChars()

	return draft, nil
}

// Regenerate drafts a replacement email from an existing draft, reusing
// its personalization plan with a different angle. Unlike Email, the
// model output is validated strictly: a regeneration that loses the
// subject or body is an error, not a silent default.
func (e *Engine) Regenerate(ctx context.Context, draft *types.EmailDraft, angle string) (*types.EmailDraft, error) {
	if draft.PersonalizationPlan == nil {
		return nil, ErrMissingPlan
	}
	if angle == "" {
		angle = types.AngleTechnical
	}

	prompt := emailPrompt(draft.PersonalizationPlan, draft.JobTitle, draft.Company, orDefault(draft.RecipientName, DefaultRecipient), angle)

	record, err := e.gen.GenerateJSON(ctx, prompt, llm.GenerateOptions{
		Tier:        llm.TierAdvanced,
		Temperature: regenerateTemperature,
	})
	if err != nil {
		return nil, fmt.Errorf("email regeneration failed: %w", err)
	}

	regenerated, err := records.EmailDraftFromMap(record)
	if err != nil {
		return nil, fmt.Errorf("regenerated draft invalid: %w", err)
	}

	regenerated.RecipientName = draft.RecipientName
	regenerated.JobTitle = draft.JobTitle
	regenerated.Company = draft.Company
	regenerated.PersonalizationPlan = draft.PersonalizationPlan
	return regenerated, nil
}

func planPrompt(profile *types.CVProfile, posting *types.JobPosting) string {
	return prompts.Render("outreach.json", "plan", map[string]string{
		"CandidateName":    orDefault(profile.Name, "Candidate"),
		"CandidateSummary": orDefault(profile.Summary, "Experienced professional"),
		"ProjectsText":     formatProjects(profile.Projects),
		"AchievementsText": formatAchievements(profile.Experiences),
		"JobTitle":         posting.Title,
		"CompanyName":      posting.Company,
		"Requirements":     joinFirst(posting.Requirements, 5, ", "),
		"TechStack":        joinFirst(posting.TechStack, 5, ", "),
		"Problems":         joinFirst(posting.Problems, 3, ", "),
	})
}

func emailPrompt(plan *types.PersonalizationPlan, jobTitle, company, recipientName, angle string) string {
	return prompts.Render("outreach.json", "email", map[string]string{
		"AnchorProject": formatAnchorProject(plan.AnchorProject),
		"TechnicalHook": plan.TechnicalHook,
		"ImpactHook":    plan.ImpactHook,
		"CompanyHook":   plan.CompanyHook,
		"Metrics":       joinFirst(plan.RelevantMetrics, 2, "\n"),
		"JobTitle":      jobTitle,
		"CompanyName":   company,
		"RecipientName": recipientName,
		"Angle":         angle,
	})
}

// stringField reads a string value from a model record, falling back only
// when the key is absent or not a string. A present-but-empty value is
// kept as is.
func stringField(record map[string]any, key, fallback string) string {
	value, ok := record[key]
	if !ok {
		return fallback
	}
	s, ok := value.(string)
	if !ok {
		return fallback
	}
	return s
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
