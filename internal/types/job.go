// Package types provides type definitions for structured data used throughout the careeragent system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// JobPosting represents a job post with requirements and tech stack
type JobPosting struct {
	Title          string   `json:"title"`
	Company        string   `json:"company"`
	Location       string   `json:"location,omitempty"`
	URL            string   `json:"url,omitempty"`
	Description    string   `json:"description"`
	Requirements   []string `json:"requirements"`
	NiceToHave     []string `json:"nice_to_have"`
	TechStack      []string `json:"tech_stack"`
	Problems       []string `json:"problems"`
	Benefits       []string `json:"benefits"`
	SalaryRange    string   `json:"salary_range,omitempty"`
	RelevanceScore float64  `json:"relevance_score"`
}

// SearchQuery describes a job search request with filters
type SearchQuery struct {
	Query      string `json:"query"`
	Location   string `json:"location,omitempty"`
	Remote     bool   `json:"remote"`
	LastNDays  int    `json:"last_n_days"`
	MaxResults int    `json:"max_results"`
}

// DefaultSearchQuery returns a SearchQuery with the standard filter defaults.
func DefaultSearchQuery(query string) SearchQuery {
	return SearchQuery{
		Query:      query,
		LastNDays:  30,
		MaxResults: 20,
	}
}
