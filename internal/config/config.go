// Package config loads CLI configuration from the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Defaults applied when the environment leaves a path unset. The token
// cache defaults into the state directory; credentials are a file the
// user downloads, so they default to the working directory.
const (
	DefaultGmailCredentials = "credentials.json"
	DefaultGmailTokenName   = "token.json"
	DefaultStateDir         = ".careeragent"
)

// Config carries every setting the CLI reads from the environment.
// Secrets may live in files referenced by *_FILE variables instead of
// the environment itself.
type Config struct {
	GeminiAPIKey     string
	SearchAPIKey     string
	SearchCX         string
	DatabaseURL      string
	GmailCredentials string
	GmailToken       string
	StateDir         string
	UseBrowser       bool
	Debug            bool
}

// FromEnv reads configuration from the environment. For each secret
// variable (GEMINI_API_KEY, SEARCH_API_KEY, SEARCH_CX, DATABASE_URL) a
// companion *_FILE variable naming a file takes precedence; its trimmed
// contents become the value.
func FromEnv() (*Config, error) {
	geminiKey, err := secretFromEnv("GEMINI_API_KEY")
	if err != nil {
		return nil, err
	}
	searchKey, err := secretFromEnv("SEARCH_API_KEY")
	if err != nil {
		return nil, err
	}
	searchCX, err := secretFromEnv("SEARCH_CX")
	if err != nil {
		return nil, err
	}
	databaseURL, err := secretFromEnv("DATABASE_URL")
	if err != nil {
		return nil, err
	}

	stateDir := envOr("STATE_DIR", DefaultStateDir)

	return &Config{
		GeminiAPIKey:     geminiKey,
		SearchAPIKey:     searchKey,
		SearchCX:         searchCX,
		DatabaseURL:      databaseURL,
		GmailCredentials: envOr("GMAIL_CREDENTIALS", DefaultGmailCredentials),
		GmailToken:       envOr("GMAIL_TOKEN", filepath.Join(stateDir, DefaultGmailTokenName)),
		StateDir:         stateDir,
		UseBrowser:       boolFromEnv("USE_BROWSER"),
		Debug:            boolFromEnv("DEBUG"),
	}, nil
}

// RequireLLM errors unless a Gemini API key is configured.
func (c *Config) RequireLLM() error {
	if c.GeminiAPIKey == "" {
		return fmt.Errorf("config error: GEMINI_API_KEY is not set")
	}
	return nil
}

// RequireSearch errors unless the Custom Search API key and engine id
// are both configured.
func (c *Config) RequireSearch() error {
	if c.SearchAPIKey == "" {
		return fmt.Errorf("config error: SEARCH_API_KEY is not set")
	}
	if c.SearchCX == "" {
		return fmt.Errorf("config error: SEARCH_CX is not set")
	}
	return nil
}

// RequireDatabase errors unless a database URL is configured.
func (c *Config) RequireDatabase() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("config error: DATABASE_URL is not set")
	}
	return nil
}

// HasDatabase reports whether run persistence is configured. Commands
// that merely record history treat an empty DATABASE_URL as "skip
// persistence" rather than an error.
func (c *Config) HasDatabase() bool {
	return c.DatabaseURL != ""
}

// secretFromEnv resolves name, preferring the file named by name_FILE
// when that variable is set.
func secretFromEnv(name string) (string, error) {
	if path := os.Getenv(name + "_FILE"); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("config error: failed to read %s_FILE: %w", name, err)
		}
		return strings.TrimSpace(string(raw)), nil
	}
	return os.Getenv(name), nil
}

func envOr(name, fallback string) string {
	if value := os.Getenv(name); value != "" {
		return value
	}
	return fallback
}

func boolFromEnv(name string) bool {
	value, err := strconv.ParseBool(os.Getenv(name))
	if err != nil {
		return false
	}
	return value
}
