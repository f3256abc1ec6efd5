// Package prompts loads the LLM prompt templates for CV parsing, job
// extraction, contact discovery and outreach drafting. Templates live in
// JSON files embedded at compile time, one file per pipeline area, keyed
// by task name.
package prompts

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
)

//go:embed *.json
var templateFS embed.FS

// parsed caches decoded template files so each is read and parsed once.
var (
	parsed   = make(map[string]map[string]string)
	parsedMu sync.RWMutex
)

// Render loads the template key from filename and substitutes vars into
// its {{.Name}} placeholders. Templates are part of the binary, so a
// missing file or key is a programming error and panics.
func Render(filename, key string, vars map[string]string) string {
	template, err := Get(filename, key)
	if err != nil {
		panic(fmt.Sprintf("failed to load prompt: %v", err))
	}
	return Format(template, vars)
}

// Get returns the raw template under key in filename, e.g.
// Get("outreach.json", "plan"). The filename carries no path.
func Get(filename, key string) (string, error) {
	templates, err := loadFile(filename)
	if err != nil {
		return "", err
	}

	template, ok := templates[key]
	if !ok {
		return "", fmt.Errorf("prompt key %q not found in %s", key, filename)
	}
	return template, nil
}

// Format substitutes vars into {{.Name}} placeholders in template.
// Placeholders with no matching var are left in place.
func Format(template string, vars map[string]string) string {
	result := template
	for name, value := range vars {
		result = strings.ReplaceAll(result, "{{."+name+"}}", value)
	}
	return result
}

// Keys lists the template keys available in filename.
func Keys(filename string) ([]string, error) {
	templates, err := loadFile(filename)
	if err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(templates))
	for key := range templates {
		keys = append(keys, key)
	}
	return keys, nil
}

func loadFile(filename string) (map[string]string, error) {
	parsedMu.RLock()
	templates, ok := parsed[filename]
	parsedMu.RUnlock()
	if ok {
		return templates, nil
	}

	data, err := templateFS.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read prompt file %s: %w", filename, err)
	}

	if err := json.Unmarshal(data, &templates); err != nil {
		return nil, fmt.Errorf("failed to parse prompt file %s: %w", filename, err)
	}

	parsedMu.Lock()
	parsed[filename] = templates
	parsedMu.Unlock()

	return templates, nil
}
