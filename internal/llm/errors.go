package llm

import "fmt"

// ExtractionError means no well-formed JSON object could be recovered
// from the model output.
type ExtractionError struct {
	Message string
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extraction error: %s", e.Message)
}

// TransportError represents a failure of the generation transport itself
// (network, quota, provider error). It is never retried by the generator.
type TransportError struct {
	Message string
	Timeout bool
	Cause   error
}

func (e *TransportError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("transport error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("transport error: %s", e.Message)
}

func (e *TransportError) Unwrap() error {
	return e.Cause
}

// GenerationError means every parse attempt was exhausted. LastOutput
// carries the raw text of the final attempt for diagnosis.
type GenerationError struct {
	Attempts   int
	LastOutput string
	Cause      error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("failed to parse JSON after %d attempts", e.Attempts)
}

func (e *GenerationError) Unwrap() error {
	return e.Cause
}
