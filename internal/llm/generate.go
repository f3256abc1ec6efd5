// Package llm - generate.go wraps a Client with bounded JSON-parse retries.
package llm

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/aaron-seq/CareerAgent/internal/observability"
)

// jsonInstruction is appended to every structured-generation prompt.
const jsonInstruction = "\n\nIMPORTANT: Return ONLY valid JSON, no markdown, no explanations."

// DefaultMaxAttempts is the number of generation attempts before giving up.
const DefaultMaxAttempts = 2

// retryPause is the delay between attempts, giving the provider a moment
// before the stricter retry.
const retryPause = time.Second

// TemperatureStrategy computes the temperature for the next attempt after
// a parse failure.
type TemperatureStrategy func(attempt int, current float64) float64

// HalveTemperature drifts generation toward determinism on every retry.
func HalveTemperature(_ int, current float64) float64 {
	return current * 0.5
}

// Generator produces structured objects from a text-generation client,
// retrying with decreasing temperature while the output fails to parse.
// Transport errors are propagated immediately and never retried.
type Generator struct {
	client      Client
	log         *zap.Logger
	maxAttempts int
	nextTemp    TemperatureStrategy
	sleep       func(time.Duration)
}

// GeneratorOption customizes a Generator.
type GeneratorOption func(*Generator)

// WithMaxAttempts overrides the attempt bound.
func WithMaxAttempts(n int) GeneratorOption {
	return func(g *Generator) {
		if n > 0 {
			g.maxAttempts = n
		}
	}
}

// WithTemperatureStrategy overrides how the next attempt's temperature is derived.
func WithTemperatureStrategy(s TemperatureStrategy) GeneratorOption {
	return func(g *Generator) {
		if s != nil {
			g.nextTemp = s
		}
	}
}

// WithSleep overrides the inter-attempt pause. Tests pass a no-op.
func WithSleep(sleep func(time.Duration)) GeneratorOption {
	return func(g *Generator) {
		if sleep != nil {
			g.sleep = sleep
		}
	}
}

// NewGenerator creates a Generator around client.
func NewGenerator(client Client, log *zap.Logger, opts ...GeneratorOption) *Generator {
	if log == nil {
		log = zap.NewNop()
	}
	g := &Generator{
		client:      client,
		log:         log,
		maxAttempts: DefaultMaxAttempts,
		nextTemp:    HalveTemperature,
		sleep:       time.Sleep,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// GenerateText generates a free-text completion with the client defaults.
func (g *Generator) GenerateText(ctx context.Context, prompt string, opts GenerateOptions) (string, error) {
	return g.client.GenerateText(ctx, prompt, opts)
}

// GenerateJSON generates a structured object from the prompt. Each attempt
// appends a strict formatting instruction, extracts the balanced JSON
// object from the raw output and deserializes it into a generic mapping.
// Parse failures halve the temperature and retry up to the attempt bound;
// exhaustion returns a GenerationError carrying the last raw output.
func (g *Generator) GenerateJSON(ctx context.Context, prompt string, opts GenerateOptions) (map[string]any, error) {
	if opts.Temperature == 0 {
		opts.Temperature = DefaultJSONTemperature
	}
	if opts.MaxTokens <= 0 {
		opts.MaxTokens = DefaultJSONMaxTokens
	}
	opts.JSON = true

	temperature := opts.Temperature
	var lastRaw string
	var lastErr error

	for attempt := 1; attempt <= g.maxAttempts; attempt++ {
		attemptOpts := opts
		attemptOpts.Temperature = temperature

		raw, err := g.client.GenerateText(ctx, prompt+jsonInstruction, attemptOpts)
		if err != nil {
			// Transport failures are not parse failures; never retry them.
			return nil, err
		}
		lastRaw = raw

		g.log.Debug("generated structured response",
			zap.Int("attempt", attempt),
			zap.Float64("temperature", temperature),
			zap.String("response_preview", observability.Truncate(raw, 256)),
		)

		object, err := ExtractJSONObject(raw)
		if err == nil {
			var parsed map[string]any
			jsonErr := json.Unmarshal([]byte(object), &parsed)
			if jsonErr == nil {
				return parsed, nil
			}
			err = jsonErr
		}
		lastErr = err

		g.log.Debug("structured response failed to parse",
			zap.Int("attempt", attempt),
			zap.Error(err),
		)

		if attempt < g.maxAttempts {
			g.sleep(retryPause)
			temperature = g.nextTemp(attempt, temperature)
		}
	}

	return nil, &GenerationError{
		Attempts:   g.maxAttempts,
		LastOutput: lastRaw,
		Cause:      lastErr,
	}
}

// IsTransportError reports whether err is a transport failure, as opposed
// to a parse or validation failure.
func IsTransportError(err error) bool {
	var transportErr *TransportError
	return errors.As(err, &transportErr)
}
