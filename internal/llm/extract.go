// Package llm - extract.go recovers structured JSON objects from noisy model output.
package llm

import "strings"

// preambles are boilerplate prefixes models prepend despite instructions.
// Checked case-insensitively, in order.
var preambles = []string{
	"here's the json:",
	"here is the json:",
	"json:",
	"output:",
}

// ExtractJSONObject returns the substring of text that forms a single
// balanced JSON object. Models wrap objects in prose, preambles and code
// fences, and nest objects inside them; stripping the wrapping and then
// brace-depth scanning is the only way to capture exactly one object.
func ExtractJSONObject(text string) (string, error) {
	text = strings.TrimSpace(text)

	for _, pre := range preambles {
		if len(text) >= len(pre) && strings.EqualFold(text[:len(pre)], pre) {
			text = strings.TrimSpace(text[len(pre):])
		}
	}

	// Take the content between the first pair of code fences.
	if strings.Contains(text, "```") {
		parts := strings.Split(text, "```")
		if len(parts) >= 3 {
			text = parts[1]
			trimmed := strings.TrimSpace(text)
			if len(trimmed) >= 4 && strings.EqualFold(trimmed[:4], "json") {
				text = strings.TrimSpace(trimmed[4:])
			}
		}
	}

	start := strings.Index(text, "{")
	if start < 0 {
		return "", &ExtractionError{Message: "no JSON object found in response"}
	}

	depth := 0
	for i := start; i < len(text); i++ {
		switch text[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[start : i+1], nil
			}
		}
	}

	return "", &ExtractionError{Message: "malformed JSON: no matching closing brace"}
}
