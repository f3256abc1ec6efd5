// Package research - filter.go separates job postings from general search noise.
package research

import "strings"

// jobKeywords are substrings that mark a search hit as job-related.
// Matching is case-insensitive across title, snippet and URL.
var jobKeywords = []string{
	"job",
	"career",
	"hiring",
	"position",
	"opening",
	"apply",
	"linkedin.com/jobs",
	"indeed",
	"glassdoor",
	"greenhouse.io",
	"lever.co",
	"workday",
	"full-time",
	"part-time",
}

// IsJobRelated reports whether a search result looks like a job posting.
func IsJobRelated(title, snippet, url string) bool {
	haystack := strings.ToLower(title + " " + snippet + " " + url)
	for _, keyword := range jobKeywords {
		if strings.Contains(haystack, keyword) {
			return true
		}
	}
	return false
}
