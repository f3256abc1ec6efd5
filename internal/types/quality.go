// Package types provides type definitions for structured data used throughout the careeragent system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// passingScore is the minimum quality score for a draft to pass review.
const passingScore = 70.0

// QualityCheck holds the results of the seven draft quality checks.
// Score and Passed are derived from the check booleans via Finalize.
type QualityCheck struct {
	HasMetric      bool     `json:"has_metric"`
	HasProjectLink bool     `json:"has_project_link"`
	HasCompanyHook bool     `json:"has_company_hook"`
	HasClearCTA    bool     `json:"has_clear_cta"`
	UnderWordLimit bool     `json:"under_word_limit"`
	NoEmojis       bool     `json:"no_emojis"`
	NoBulletDashes bool     `json:"no_bullet_dashes"`
	Score          float64  `json:"score"`
	Issues         []string `json:"issues"`
	Passed         bool     `json:"passed"`
}

// Finalize recomputes Score and Passed from the check booleans.
func (q *QualityCheck) Finalize() {
	checks := []bool{
		q.HasMetric,
		q.HasProjectLink,
		q.HasCompanyHook,
		q.HasClearCTA,
		q.UnderWordLimit,
		q.NoEmojis,
		q.NoBulletDashes,
	}

	passed := 0
	for _, ok := range checks {
		if ok {
			passed++
		}
	}

	q.Score = float64(passed) / float64(len(checks)) * 100
	q.Passed = q.Score >= passingScore
}
