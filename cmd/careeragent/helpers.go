package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aaron-seq/CareerAgent/internal/config"
	"github.com/aaron-seq/CareerAgent/internal/llm"
	"github.com/aaron-seq/CareerAgent/internal/observability"
	"github.com/aaron-seq/CareerAgent/internal/schemas"
	"github.com/aaron-seq/CareerAgent/internal/types"
	"go.uber.org/zap"
)

// loadSetup reads configuration from the environment and builds the
// process logger. The --debug flag wins over the DEBUG variable.
func loadSetup() (*config.Config, *zap.Logger, error) {
	cfg, err := config.FromEnv()
	if err != nil {
		return nil, nil, err
	}
	if rootDebug {
		cfg.Debug = true
	}

	log, err := observability.NewLogger(rootJSONLogs, cfg.Debug)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}

	return cfg, log, nil
}

// buildGenerator wires the Gemini client behind the retrying generator.
// The returned cleanup closes the client connection.
func buildGenerator(ctx context.Context, cfg *config.Config, log *zap.Logger) (*llm.Generator, func(), error) {
	client, err := llm.NewClient(ctx, llm.DefaultGeminiConfig(), cfg.GeminiAPIKey)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create LLM client: %w", err)
	}

	cleanup := func() { _ = client.Close() }
	return llm.NewGenerator(client, log), cleanup, nil
}

// checkAngle rejects outreach angles the drafting prompts do not know.
func checkAngle(angle string) error {
	switch angle {
	case types.AngleTechnical, types.AngleImpact, types.AngleProduct:
		return nil
	}
	return fmt.Errorf("invalid angle %q (choose one of: %s)",
		angle, strings.Join([]string{types.AngleTechnical, types.AngleImpact, types.AngleProduct}, ", "))
}

// writeArtifact marshals v with indentation, checks it against the
// schema for kind, and writes it to path.
func writeArtifact(path string, kind schemas.Kind, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	if err := validateArtifact(kind, data); err != nil {
		return err
	}
	return writeFile(path, data)
}

// readArtifact reads path, checks it against the schema for kind, and
// unmarshals the content into v.
func readArtifact(path string, kind schemas.Kind, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := validateArtifact(kind, data); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

// writeJSON marshals v with indentation and writes it to path without
// schema validation, for artifact kinds that carry no schema.
func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return writeFile(path, data)
}

func writeFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// validateArtifact checks data against the schema for kind. Array
// payloads are validated element by element.
func validateArtifact(kind schemas.Kind, data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var items []json.RawMessage
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return fmt.Errorf("failed to parse JSON list: %w", err)
		}
		for i, item := range items {
			if err := validateOne(kind, item); err != nil {
				return fmt.Errorf("item %d: %w", i, err)
			}
		}
		return nil
	}
	return validateOne(kind, trimmed)
}

// validateOne degrades schema loading problems to a warning so a broken
// embedded schema never blocks the pipeline.
func validateOne(kind schemas.Kind, data []byte) error {
	err := schemas.ValidateJSONString(kind, string(data))
	if err == nil {
		return nil
	}

	var loadErr *schemas.SchemaLoadError
	if errors.As(err, &loadErr) {
		_, _ = fmt.Fprintf(os.Stderr, "Warning: could not validate against %s schema: %v\n", kind, err)
		return nil
	}
	return fmt.Errorf("does not validate against %s schema: %w", kind, err)
}
