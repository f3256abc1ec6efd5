// Package ingestion extracts plain text from CV documents. PDF and DOCX
// payloads are unwrapped to text; everything else is treated as plain
// text. Extracted text is normalized before being handed to parsing.
package ingestion

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ExtractFile reads a CV document and returns its cleaned plain text.
// The format is chosen by file extension: .pdf and .docx are unwrapped,
// anything else is read as-is.
func ExtractFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("file not found: %w", err)
		}
		return "", fmt.Errorf("failed to read file: %w", err)
	}

	var text string
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		text, err = extractPDF(data)
		if err != nil {
			return "", fmt.Errorf("failed to extract text from PDF: %w", err)
		}
	case ".docx":
		text, err = extractDOCX(data)
		if err != nil {
			return "", fmt.Errorf("failed to extract text from DOCX: %w", err)
		}
	default:
		text = string(data)
	}

	cleaned := CleanText(text)
	if cleaned == "" {
		return "", fmt.Errorf("no extractable text in %s; file may be a scanned image or corrupted", filepath.Base(path))
	}

	return cleaned, nil
}
