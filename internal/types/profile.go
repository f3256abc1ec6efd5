// Package types provides type definitions for structured data used throughout the careeragent system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Experience represents a single work experience entry from a CV
type Experience struct {
	Title        string   `json:"title"`
	Company      string   `json:"company"`
	Duration     string   `json:"duration"`
	Achievements []string `json:"achievements"`
	Metrics      []string `json:"metrics"`
	Technologies []string `json:"technologies"`
}

// Project represents a project with links and description
type Project struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	Link         string   `json:"link,omitempty"`
	GitHub       string   `json:"github,omitempty"`
	Impact       string   `json:"impact,omitempty"`
}

// CVProfile represents the structured information extracted from a CV.
// RawText always carries the source text so downstream steps can fall
// back to it when structured extraction failed.
type CVProfile struct {
	Name        string       `json:"name,omitempty"`
	Email       string       `json:"email,omitempty"`
	Phone       string       `json:"phone,omitempty"`
	LinkedIn    string       `json:"linkedin,omitempty"`
	GitHub      string       `json:"github,omitempty"`
	Portfolio   string       `json:"portfolio,omitempty"`
	Summary     string       `json:"summary,omitempty"`
	Experiences []Experience `json:"experiences"`
	Projects    []Project    `json:"projects"`
	Skills      []string     `json:"skills"`
	Education   []string     `json:"education"`
	RawText     string       `json:"raw_text"`
}

// Links collects every URL referenced by the profile (profile links plus
// project links) in a stable order.
func (p *CVProfile) Links() []string {
	links := make([]string, 0)
	if p.GitHub != "" {
		links = append(links, p.GitHub)
	}
	if p.LinkedIn != "" {
		links = append(links, p.LinkedIn)
	}
	if p.Portfolio != "" {
		links = append(links, p.Portfolio)
	}
	for _, project := range p.Projects {
		if project.Link != "" {
			links = append(links, project.Link)
		}
		if project.GitHub != "" {
			links = append(links, project.GitHub)
		}
	}
	return links
}

// AllMetrics collects quantified achievements from experiences and
// project impact statements.
func (p *CVProfile) AllMetrics() []string {
	metrics := make([]string, 0)
	for _, exp := range p.Experiences {
		metrics = append(metrics, exp.Metrics...)
	}
	for _, project := range p.Projects {
		if project.Impact != "" {
			metrics = append(metrics, project.Impact)
		}
	}
	return metrics
}

// TopSkills returns the first n skills, or all of them when fewer exist.
func (p *CVProfile) TopSkills(n int) []string {
	if n >= len(p.Skills) {
		return p.Skills
	}
	return p.Skills[:n]
}
