// Package types provides type definitions for structured data used throughout the careeragent system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"strings"
	"time"
)

// Outreach angles for personalization plans and email drafts.
const (
	// AngleTechnical leads with technical skill alignment.
	AngleTechnical = "technical"
	// AngleImpact leads with business outcomes.
	AngleImpact = "impact"
	// AngleProduct leads with product thinking.
	AngleProduct = "product"
)

// PersonalizationPlan is the strategic plan seeding message generation
type PersonalizationPlan struct {
	AnchorProject      *Project `json:"anchor_project,omitempty"`
	TechnicalHook      string   `json:"technical_hook"`
	ImpactHook         string   `json:"impact_hook"`
	CompanyHook        string   `json:"company_hook"`
	SharedTechnologies []string `json:"shared_technologies"`
	RelevantMetrics    []string `json:"relevant_metrics"`
	Angle              string   `json:"angle"`
}

// EmailDraft is a generated outreach email with metadata.
// WordCount is derived from Body; call RecountWords after changing Body.
type EmailDraft struct {
	Subject             string               `json:"subject"`
	Body                string               `json:"body"`
	RecipientEmail      string               `json:"recipient_email,omitempty"`
	RecipientName       string               `json:"recipient_name,omitempty"`
	JobTitle            string               `json:"job_title"`
	Company             string               `json:"company"`
	PersonalizationPlan *PersonalizationPlan `json:"personalization_plan,omitempty"`
	WordCount           int                  `json:"word_count"`
	CreatedAt           time.Time            `json:"created_at"`
	GmailDraftID        string               `json:"gmail_draft_id,omitempty"`
}

// RecountWords recomputes WordCount from the current Body and returns it.
func (d *EmailDraft) RecountWords() int {
	d.WordCount = len(strings.Fields(d.Body))
	return d.WordCount
}

// WhatsAppDraft is a generated chat message with its click-to-chat URL.
// CharacterCount is derived from Message; call RecountChars after changing it.
type WhatsAppDraft struct {
	Message        string    `json:"message"`
	ClickToChatURL string    `json:"click_to_chat_url"`
	RecipientPhone string    `json:"recipient_phone,omitempty"`
	JobTitle       string    `json:"job_title"`
	Company        string    `json:"company"`
	CharacterCount int       `json:"character_count"`
	CreatedAt      time.Time `json:"created_at"`
}

// RecountChars recomputes CharacterCount from the current Message and returns it.
func (d *WhatsAppDraft) RecountChars() int {
	d.CharacterCount = len([]rune(d.Message))
	return d.CharacterCount
}
