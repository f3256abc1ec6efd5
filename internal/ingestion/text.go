package ingestion

import (
	"regexp"
	"strings"
)

var (
	spaceRun = regexp.MustCompile(`\s+`)
	blankRun = regexp.MustCompile("\n{3,}")
)

// CleanText normalizes raw document text before it reaches a prompt. PDF and
// DOCX extraction leave ragged spacing and mixed line endings behind, so the
// cleanup collapses those while keeping Markdown-style headings and bullet
// lists intact.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = normalizeLine(line)
	}

	// Clamp runs of blank lines to a single empty line between paragraphs.
	joined := blankRun.ReplaceAllString(strings.Join(lines, "\n"), "\n\n")
	return strings.TrimSpace(joined)
}

// normalizeLine rewrites one line. Headings lose their indentation, bullets
// keep theirs, and everything else keeps leading whitespace while interior
// runs of spaces collapse to one.
func normalizeLine(line string) string {
	line = strings.TrimRight(line, " \t")
	if strings.TrimSpace(line) == "" {
		return ""
	}

	stripped := strings.TrimLeft(line, " \t")
	if strings.HasPrefix(stripped, "#") {
		return stripped
	}

	indent := len(line) - len(stripped)
	if strings.HasPrefix(stripped, "- ") || strings.HasPrefix(stripped, "* ") {
		if indent > 0 {
			return strings.Repeat(" ", indent) + stripped
		}
		return stripped
	}

	collapsed := spaceRun.ReplaceAllString(strings.TrimSpace(line), " ")
	if indent > 0 {
		return strings.Repeat(" ", indent) + collapsed
	}
	return collapsed
}
