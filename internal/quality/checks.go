// Package quality provides functionality to validate email drafts against
// outreach writing rules.
package quality

import (
	"regexp"
	"strings"
)

// MaxBodyWords is the upper bound on email body length. Anything longer
// stops reading like a note and starts reading like a cover letter.
const MaxBodyWords = 180

// metricPatterns match quantified claims: percentages, magnitude
// suffixes, multipliers, audience sizes, and change verbs followed by a
// number.
var metricPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\d+%`),
	regexp.MustCompile(`\d+[KkMm]`),
	regexp.MustCompile(`(?i)\d+x`),
	regexp.MustCompile(`(?i)\d+\s*(?:users|customers|developers|engineers)`),
	regexp.MustCompile(`(?i)(?:increased|decreased|improved|reduced|grew|scaled)\s+(?:by\s+)?\d+`),
}

var urlPattern = regexp.MustCompile(`http[s]?://(?:[a-zA-Z]|[0-9]|[$-_@.&+]|[!*\\(\\),]|(?:%[0-9a-fA-F][0-9a-fA-F]))+`)

// ctaPatterns match an explicit ask for a next step.
var ctaPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:quick|brief|short)?\s*(?:call|chat|meeting|demo)`),
	regexp.MustCompile(`(?i)(?:available|free)\s+(?:this week|next week|to chat)`),
	regexp.MustCompile(`(?i)(?:discuss|talk|show|demo)`),
	regexp.MustCompile(`(?i)(?:7|10|15)[\s-]*(?:min|minute)`),
}

var emojiPattern = regexp.MustCompile(`[` +
	`\x{1F600}-\x{1F64F}` + // emoticons
	`\x{1F300}-\x{1F5FF}` + // symbols and pictographs
	`\x{1F680}-\x{1F6FF}` + // transport and map symbols
	`\x{1F1E0}-\x{1F1FF}` + // flags
	`\x{2702}-\x{27B0}` + // dingbats
	`\x{24C2}-\x{1F251}` + // enclosed characters
	`\x{1F900}-\x{1F9FF}` + // supplemental symbols
	`]+`)

// bulletPatterns match list formatting at the start of a line.
var bulletPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?m)^\s*[-•*→]\s+`),
	regexp.MustCompile(`\n\s*[-•*→]\s+`),
}

func hasMetric(text string) bool {
	for _, pattern := range metricPatterns {
		if pattern.MatchString(text) {
			return true
		}
	}
	return false
}

func hasLink(text string) bool {
	return urlPattern.MatchString(text)
}

// hasCompanyHook reports whether the body names the company or echoes a
// meaningful word from the job title. Only the first three title words
// count, and words of three letters or fewer are too generic to signal
// anything.
func hasCompanyHook(body, company, jobTitle string) bool {
	bodyLower := strings.ToLower(body)

	if company != "" && strings.Contains(bodyLower, strings.ToLower(company)) {
		return true
	}

	words := strings.Fields(strings.ToLower(jobTitle))
	if len(words) > 3 {
		words = words[:3]
	}
	for _, word := range words {
		if len(word) > 3 && strings.Contains(bodyLower, word) {
			return true
		}
	}
	return false
}

func hasCTA(text string) bool {
	for _, pattern := range ctaPatterns {
		if pattern.MatchString(text) {
			return true
		}
	}
	return false
}

func hasEmoji(text string) bool {
	return emojiPattern.MatchString(text)
}

func hasBullets(body string) bool {
	for _, pattern := range bulletPatterns {
		if pattern.MatchString(body) {
			return true
		}
	}
	return false
}

func wordCount(body string) int {
	return len(strings.Fields(body))
}
