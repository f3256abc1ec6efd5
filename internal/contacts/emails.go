// Package contacts - emails.go generates likely corporate email addresses.
package contacts

import (
	"fmt"
	"strings"

	"github.com/aaron-seq/CareerAgent/internal/types"
)

// permutationConfidence is the score of the most likely pattern; each
// following pattern drops by permutationStep.
const (
	permutationConfidence = 0.7
	permutationStep       = 0.1
)

// Permutations generates the three most likely email addresses for a
// person at a domain, ranked by how common the pattern is. The name on
// each candidate keeps its original casing; the address is lowercased.
// Returns nil when a usable address cannot be formed.
func Permutations(firstName, lastName, domain string) []types.ContactCandidate {
	first := strings.ToLower(strings.TrimSpace(firstName))
	last := strings.ToLower(strings.TrimSpace(lastName))
	domain = strings.ToLower(strings.TrimSpace(domain))

	if strings.Contains(domain, "@") {
		domain = strings.Split(domain, "@")[1]
	}

	if first == "" || last == "" || domain == "" {
		return nil
	}

	patterns := []string{
		fmt.Sprintf("%s.%s@%s", first, last, domain),
		fmt.Sprintf("%s@%s", first, domain),
		fmt.Sprintf("%s%s@%s", first, last, domain),
		fmt.Sprintf("%s%s@%s", firstRune(first), last, domain),
		fmt.Sprintf("%s_%s@%s", first, last, domain),
	}

	candidates := make([]types.ContactCandidate, 0, 3)
	for i, email := range patterns[:3] {
		candidates = append(candidates, types.ContactCandidate{
			Name:            fmt.Sprintf("%s %s", firstName, lastName),
			Email:           email,
			EmailConfidence: types.EmailGuessed,
			Source:          "email_permutation",
			ConfidenceScore: permutationConfidence - float64(i)*permutationStep,
		})
	}

	return candidates
}

func firstRune(s string) string {
	for _, r := range s {
		return string(r)
	}
	return ""
}
