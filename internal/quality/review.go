package quality

import (
	"fmt"

	"github.com/aaron-seq/CareerAgent/internal/types"
)

// Review runs every draft check and returns the scored result. The
// subject participates in the metric, link, CTA, and emoji checks; the
// company hook, word limit, and bullet checks read the body alone.
// Review never fails, a weak draft simply scores lower.
func Review(draft *types.EmailDraft) *types.QualityCheck {
	fullText := draft.Subject + " " + draft.Body

	check := &types.QualityCheck{
		HasMetric:      hasMetric(fullText),
		HasProjectLink: hasLink(fullText),
		HasCompanyHook: hasCompanyHook(draft.Body, draft.Company, draft.JobTitle),
		HasClearCTA:    hasCTA(fullText),
		UnderWordLimit: wordCount(draft.Body) <= MaxBodyWords,
		NoEmojis:       !hasEmoji(fullText),
		NoBulletDashes: !hasBullets(draft.Body),
	}
	check.Issues = describeIssues(check, draft)
	check.Finalize()

	return check
}

// describeIssues names what each failed check is missing. The strings are
// data for callers and storage; presentation decides how to decorate them.
func describeIssues(check *types.QualityCheck, draft *types.EmailDraft) []string {
	issues := make([]string, 0)

	if !check.HasMetric {
		issues = append(issues, "No concrete metrics found (e.g., '40% improvement', '10K users')")
	}
	if !check.HasProjectLink {
		issues = append(issues, "No project link found (GitHub, portfolio, demo)")
	}
	if !check.HasCompanyHook {
		issues = append(issues, fmt.Sprintf("No specific reference to %s or job role", draft.Company))
	}
	if !check.HasClearCTA {
		issues = append(issues, "No clear call-to-action (e.g., '10-minute call', 'quick demo')")
	}
	if !check.UnderWordLimit {
		issues = append(issues, fmt.Sprintf("Too long: %d words (limit: %d)", wordCount(draft.Body), MaxBodyWords))
	}
	if !check.NoEmojis {
		issues = append(issues, "Contains emojis (remove all emojis)")
	}
	if !check.NoBulletDashes {
		issues = append(issues, "Contains bullet dashes (use paragraphs instead)")
	}

	return issues
}
