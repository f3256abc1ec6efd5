// Package schemas provides JSON Schema validation for structured records
// recovered from model output. Schemas are embedded at compile time and
// compiled once per record kind.
package schemas

import (
	"embed"
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed *.schema.json
var schemaFiles embed.FS

// Kind names one validated record shape.
type Kind string

// Record kinds with an embedded schema.
const (
	KindCVProfile           Kind = "cv_profile"
	KindJobPosting          Kind = "job_posting"
	KindContactCandidate    Kind = "contact_candidate"
	KindPersonalizationPlan Kind = "personalization_plan"
	KindEmailDraft          Kind = "email_draft"
)

// compiled caches schemas so each kind is compiled at most once.
var (
	compiled   = make(map[Kind]*gojsonschema.Schema)
	compiledMu sync.RWMutex
)

// ValidationError represents a schema validation error with field paths
type ValidationError struct {
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// SchemaLoadError represents errors loading or parsing the schema itself
type SchemaLoadError struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load schema for %s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load schema for %s: %s", e.Kind, e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

// schemaFor returns the compiled schema for kind, compiling and caching it
// on first use.
func schemaFor(kind Kind) (*gojsonschema.Schema, error) {
	compiledMu.RLock()
	schema, exists := compiled[kind]
	compiledMu.RUnlock()
	if exists {
		return schema, nil
	}

	data, err := schemaFiles.ReadFile(string(kind) + ".schema.json")
	if err != nil {
		return nil, &SchemaLoadError{Kind: kind, Message: "unknown record kind", Cause: err}
	}

	schema, err = gojsonschema.NewSchema(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return nil, &SchemaLoadError{Kind: kind, Message: "schema failed to compile", Cause: err}
	}

	compiledMu.Lock()
	compiled[kind] = schema
	compiledMu.Unlock()

	return schema, nil
}

// ValidateRecord validates a decoded record against the schema for kind.
// Returns a *ValidationError when the record violates the schema and a
// *SchemaLoadError when the schema itself cannot be used.
func ValidateRecord(kind Kind, record map[string]any) error {
	schema, err := schemaFor(kind)
	if err != nil {
		return err
	}

	result, err := schema.Validate(gojsonschema.NewGoLoader(record))
	if err != nil {
		return &SchemaLoadError{Kind: kind, Message: "validation failed to run", Cause: err}
	}

	return resultError(result)
}

// ValidateJSONString validates raw JSON content against the schema for kind.
func ValidateJSONString(kind Kind, jsonContent string) error {
	schema, err := schemaFor(kind)
	if err != nil {
		return err
	}

	result, err := schema.Validate(gojsonschema.NewStringLoader(jsonContent))
	if err != nil {
		return &SchemaLoadError{Kind: kind, Message: "validation failed to run", Cause: err}
	}

	return resultError(result)
}

// resultError converts a validation result into a structured error, or nil
// when the document is valid.
func resultError(result *gojsonschema.Result) error {
	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{
		Errors: make([]FieldError, 0, len(result.Errors())),
	}

	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}

	return validationErr
}
