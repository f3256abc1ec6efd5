package main

import (
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunCommand_MissingTarget(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "run", "--cv", "cv.pdf")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "either --query or --job-url must be provided")
}

func TestRunCommand_MutuallyExclusiveTarget(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "run",
		"--cv", "cv.pdf",
		"--query", "golang engineer",
		"--job-url", "https://example.com/job")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "mutually exclusive")
}

func TestRunCommand_InvalidAngle(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "run",
		"--cv", "cv.pdf",
		"--query", "golang engineer",
		"--angle", "aggressive")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "invalid angle")
}

func TestRunCommand_GmailRequiresTo(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "run",
		"--cv", "cv.pdf",
		"--query", "golang engineer",
		"--gmail")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "--to is required with --gmail")
}

func TestDraftEmailCommand_InvalidAngle(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "draft-email", "--angle", "aggressive")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "invalid angle")
}

func TestCheckCommand_MissingDraft(t *testing.T) {
	binaryPath := getBinaryPath(t)

	missing := filepath.Join(t.TempDir(), "email_draft.json")
	cmd := exec.Command(binaryPath, "check", "--draft", missing)
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "failed to read")
}

func TestGmailDraftCommand_MissingTo(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "gmail-draft")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "--to is required")
}

func TestHistoryCommand_RequiresDatabase(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "history", "--delete", "not-a-uuid")
	cmd.Env = environWithout("DATABASE_URL")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "DATABASE_URL")
}
