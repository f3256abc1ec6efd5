package contacts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aaron-seq/CareerAgent/internal/types"
)

func TestPermutations(t *testing.T) {
	candidates := Permutations("Jane", "Doe", "acme.com")
	require.Len(t, candidates, 3)

	assert.Equal(t, "jane.doe@acme.com", candidates[0].Email)
	assert.Equal(t, "jane@acme.com", candidates[1].Email)
	assert.Equal(t, "janedoe@acme.com", candidates[2].Email)

	assert.InDelta(t, 0.7, candidates[0].ConfidenceScore, 1e-9)
	assert.InDelta(t, 0.6, candidates[1].ConfidenceScore, 1e-9)
	assert.InDelta(t, 0.5, candidates[2].ConfidenceScore, 1e-9)

	for _, candidate := range candidates {
		assert.Equal(t, "Jane Doe", candidate.Name)
		assert.Equal(t, types.EmailGuessed, candidate.EmailConfidence)
		assert.Equal(t, "email_permutation", candidate.Source)
	}
}

func TestPermutations_NormalizesInputs(t *testing.T) {
	candidates := Permutations("JANE", " Doe ", " ACME.com ")
	require.Len(t, candidates, 3)
	assert.Equal(t, "jane.doe@acme.com", candidates[0].Email)
	// The display name keeps the caller's casing.
	assert.Equal(t, "JANE  Doe ", candidates[0].Name)
}

func TestPermutations_StripsUserFromDomain(t *testing.T) {
	candidates := Permutations("Jane", "Doe", "someone@acme.com")
	require.Len(t, candidates, 3)
	assert.Equal(t, "jane.doe@acme.com", candidates[0].Email)
}

func TestPermutations_UnusableInputs(t *testing.T) {
	assert.Nil(t, Permutations("", "Doe", "acme.com"))
	assert.Nil(t, Permutations("Jane", "", "acme.com"))
	assert.Nil(t, Permutations("Jane", "Doe", ""))
	assert.Nil(t, Permutations("  ", "Doe", "acme.com"))
}
