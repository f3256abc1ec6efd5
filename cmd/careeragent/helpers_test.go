package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aaron-seq/CareerAgent/internal/schemas"
	"github.com/aaron-seq/CareerAgent/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteReadArtifact_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "draft.json")

	draft := &types.EmailDraft{
		Subject: "Re: Backend Engineer",
		Body:    "Short note about the role.",
		Company: "Acme",
	}
	require.NoError(t, writeArtifact(path, schemas.KindEmailDraft, draft))

	var got types.EmailDraft
	require.NoError(t, readArtifact(path, schemas.KindEmailDraft, &got))

	assert.Equal(t, draft.Subject, got.Subject)
	assert.Equal(t, draft.Body, got.Body)
	assert.Equal(t, draft.Company, got.Company)
}

func TestWriteArtifact_SchemaViolation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "draft.json")

	// Empty body violates the schema, so nothing is written.
	err := writeArtifact(path, schemas.KindEmailDraft, &types.EmailDraft{Subject: "No body"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "email_draft")

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestWriteArtifact_ValidatesListElements(t *testing.T) {
	path := filepath.Join(t.TempDir(), "postings.json")

	postings := []types.JobPosting{
		{Title: "Backend Engineer", Company: "Acme"},
		{Title: "Missing Company"},
	}

	err := writeArtifact(path, schemas.KindJobPosting, postings)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "item 1")
}

func TestWriteArtifact_EmptyList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "postings.json")

	require.NoError(t, writeArtifact(path, schemas.KindJobPosting, []types.JobPosting{}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(data))
}

func TestReadArtifact_MissingFile(t *testing.T) {
	var draft types.EmailDraft
	err := readArtifact(filepath.Join(t.TempDir(), "missing.json"), schemas.KindEmailDraft, &draft)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read")
}

func TestReadArtifact_SchemaViolation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "draft.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"subject": "No body"}`), 0644))

	var draft types.EmailDraft
	err := readArtifact(path, schemas.KindEmailDraft, &draft)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "email_draft")
}

func TestWriteJSON_CreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "artifacts", "check.json")

	require.NoError(t, writeJSON(path, map[string]int{"score": 100}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "score")
}

func TestCheckAngle(t *testing.T) {
	assert.NoError(t, checkAngle(types.AngleTechnical))
	assert.NoError(t, checkAngle(types.AngleImpact))
	assert.NoError(t, checkAngle(types.AngleProduct))

	err := checkAngle("aggressive")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid angle")
}
