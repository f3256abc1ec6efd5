// Package profile turns raw CV text into a structured CVProfile using LLM
// extraction. Extraction failures degrade to a minimal profile built around
// the raw text instead of failing the pipeline.
package profile

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/aaron-seq/CareerAgent/internal/ingestion"
	"github.com/aaron-seq/CareerAgent/internal/llm"
	"github.com/aaron-seq/CareerAgent/internal/prompts"
	"github.com/aaron-seq/CareerAgent/internal/records"
	"github.com/aaron-seq/CareerAgent/internal/types"
)

// MinTextLength is the minimum significant CV length worth parsing.
const MinTextLength = 50

// MaxTextLength caps the CV text included in the prompt to keep latency
// and token usage bounded.
const MaxTextLength = 12000

// parseTemperature keeps structured extraction near-deterministic.
const parseTemperature = 0.2

// ErrTextTooShort is returned when the input cannot plausibly be a CV.
var ErrTextTooShort = errors.New("CV text is too short or empty")

// Parser extracts structured profiles from CV documents.
type Parser struct {
	gen *llm.Generator
	log *zap.Logger
}

// NewParser creates a Parser around a generator.
func NewParser(gen *llm.Generator, log *zap.Logger) *Parser {
	if log == nil {
		log = zap.NewNop()
	}
	return &Parser{gen: gen, log: log}
}

// ParseFile extracts text from a CV document (PDF, DOCX or plain text)
// and parses it.
func (p *Parser) ParseFile(ctx context.Context, path string) (*types.CVProfile, error) {
	text, err := ingestion.ExtractFile(path)
	if err != nil {
		return nil, err
	}
	return p.ParseText(ctx, text)
}

// ParseText parses CV text into a structured profile. The only hard
// failure is an unusably short input; generation and parse failures fall
// back to a minimal profile that keeps the raw text for later steps.
func (p *Parser) ParseText(ctx context.Context, cvText string) (*types.CVProfile, error) {
	if len(strings.TrimSpace(cvText)) < MinTextLength {
		return nil, ErrTextTooShort
	}

	if runes := []rune(cvText); len(runes) > MaxTextLength {
		cvText = string(runes[:MaxTextLength])
	}

	prompt := prompts.Render("parsing.json", "parse-cv", map[string]string{
		"CVText": cvText,
	})

	p.log.Debug("parsing cv text", zap.Int("chars", len(cvText)))

	record, err := p.gen.GenerateJSON(ctx, prompt, llm.GenerateOptions{
		Tier:        llm.TierStandard,
		Temperature: parseTemperature,
	})
	if err != nil {
		p.log.Warn("cv extraction failed, keeping raw text only", zap.Error(err))
		return records.FallbackProfile(cvText, err), nil
	}

	// The model is never trusted with raw_text; the input always wins.
	return records.CVProfileFromMap(record, cvText), nil
}
