// Package contacts discovers hiring contacts through web search heuristics
// and generates likely email permutations when no address was found.
package contacts

import (
	"regexp"
	"strings"
	"unicode"
)

// emailPattern matches the first plausible address in free text.
var emailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Z|a-z]{2,}\b`)

// roleKeywords mark a search hit as naming a position. Matching is
// case-sensitive on purpose: these words are capitalized in titles.
var roleKeywords = []string{
	"Manager",
	"Director",
	"Lead",
	"Engineer",
	"Recruiter",
	"VP",
	"Head",
	"Chief",
	"Senior",
	"Principal",
}

// roleQueryKeywords seed search query generation from a job title.
var roleQueryKeywords = []string{
	"engineer",
	"developer",
	"manager",
	"lead",
	"scientist",
	"analyst",
	"designer",
}

// ExtractNameFromTitle pulls a person name out of a search result title.
// LinkedIn titles follow "Name - Position | LinkedIn"; anything else falls
// back to the first two capitalized words. Returns "" when no name is found.
func ExtractNameFromTitle(title string) string {
	if strings.Contains(title, "|") && strings.Contains(title, "LinkedIn") {
		head := strings.TrimSpace(strings.Split(title, "|")[0])
		if strings.Contains(head, "-") {
			return strings.TrimSpace(strings.Split(head, "-")[0])
		}
	}

	words := strings.Fields(title)
	if len(words) >= 2 && startsUpper(words[0]) && startsUpper(words[1]) {
		return words[0] + " " + words[1]
	}

	return ""
}

// ExtractEmail returns the first email address found in the text, or "".
func ExtractEmail(text string) string {
	return emailPattern.FindString(text)
}

// ExtractRole derives a role phrase from the result title. A keyword must
// appear somewhere in title or snippet; the phrase is built from the title
// word carrying it plus one word of context either side.
func ExtractRole(title, snippet string) string {
	combined := title + " " + snippet
	for _, keyword := range roleKeywords {
		if !strings.Contains(combined, keyword) {
			continue
		}
		words := strings.Fields(title)
		for i, word := range words {
			if strings.Contains(word, keyword) && i > 0 {
				end := i + 2
				if end > len(words) {
					end = len(words)
				}
				return strings.Join(words[i-1:end], " ")
			}
		}
	}

	return "Unknown Role"
}

// ExtractRoleKeyword reduces a job title to a single search keyword.
func ExtractRoleKeyword(jobTitle string) string {
	titleLower := strings.ToLower(jobTitle)
	for _, keyword := range roleQueryKeywords {
		if strings.Contains(titleLower, keyword) {
			return keyword
		}
	}

	if words := strings.Fields(jobTitle); len(words) > 0 {
		return words[0]
	}
	return "manager"
}

// ConfidenceScore estimates how likely a discovered contact is real and
// reachable: 0.3 base, +0.4 for an email, +0.2 for a LinkedIn profile,
// +0.1 when the company is named in the snippet, clamped to 1.0.
func ConfidenceScore(email, linkedin, company, snippet string) float64 {
	score := 0.3

	if email != "" {
		score += 0.4
	}
	if linkedin != "" {
		score += 0.2
	}
	if strings.Contains(strings.ToLower(snippet), strings.ToLower(company)) {
		score += 0.1
	}

	if score > 1.0 {
		score = 1.0
	}
	return score
}

func startsUpper(word string) bool {
	for _, r := range word {
		return unicode.IsUpper(r)
	}
	return false
}
