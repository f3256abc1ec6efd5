// Package types provides type definitions for structured data used throughout the careeragent system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Email confidence levels for a ContactCandidate.
const (
	// EmailConfirmed means the address was found verbatim in a source.
	EmailConfirmed = "confirmed"
	// EmailGuessed means the address was generated from a name pattern.
	EmailGuessed = "guessed"
	// EmailUnknown means no address is known for the contact.
	EmailUnknown = "unknown"
)

// ContactCandidate represents a potential outreach contact discovered
// from search results or generated email permutations.
type ContactCandidate struct {
	Name            string  `json:"name"`
	Role            string  `json:"role,omitempty"`
	Email           string  `json:"email,omitempty"`
	EmailConfidence string  `json:"email_confidence"`
	LinkedIn        string  `json:"linkedin,omitempty"`
	Source          string  `json:"source"`
	ConfidenceScore float64 `json:"confidence_score"`
}
