package store

import (
	"time"

	"github.com/google/uuid"
)

// Run represents one outreach pipeline run against a single posting.
type Run struct {
	ID          uuid.UUID  `json:"id"`
	Company     string     `json:"company"`
	JobTitle    string     `json:"job_title"`
	JobURL      string     `json:"job_url"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// Run statuses.
const (
	RunStatusRunning   = "running"
	RunStatusCompleted = "completed"
	RunStatusFailed    = "failed"
)

// Artifact step constants for the pipeline outputs a run can persist.
const (
	StepCVProfile     = "cv_profile"
	StepPostings      = "postings"
	StepContacts      = "contacts"
	StepPlan          = "plan"
	StepEmailDraft    = "email_draft"
	StepWhatsAppDraft = "whatsapp_draft"
	StepQualityCheck  = "quality_check"
)
