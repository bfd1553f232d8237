package extraction

import (
	"context"
	"fmt"

	"github.com/allenkiakshay/vessify/pkg/config"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

// GeminiExtractor is the AI extraction strategy. It never returns an error:
// any failure along the call-and-parse sequence collapses into a degraded
// result so the orchestrator sees a single output shape. The reasoning text is
// the only place a caller can tell an internal failure from a genuine
// zero-confidence extraction.
type GeminiExtractor struct {
	cfg    *config.GeminiConfig
	logger *zap.Logger
}

func NewGeminiExtractor(cfg *config.GeminiConfig, logger *zap.Logger) *GeminiExtractor {
	return &GeminiExtractor{
		cfg:    cfg,
		logger: logger,
	}
}

// IsConfigured reports whether credentials for the inference service are
// present. The orchestrator consults this before attempting the AI path; it is
// not a health check.
func (g *GeminiExtractor) IsConfigured() bool {
	return g.cfg != nil && g.cfg.APIKey != ""
}

func (g *GeminiExtractor) Extract(ctx context.Context, text string) ParsedTransaction {
	result, err := g.extract(ctx, text)
	if err != nil {
		g.logger.Warn("AI extraction failed", zap.Error(err))
		return ParsedTransaction{
			Confidence: 0,
			Reasoning:  strPtr("AI extraction failed: " + err.Error()),
		}
	}
	return result
}

func (g *GeminiExtractor) extract(ctx context.Context, text string) (ParsedTransaction, error) {
	// One attempt, bounded: a slow inference call must not stall the pipeline.
	ctx, cancel := context.WithTimeout(ctx, g.cfg.Timeout)
	defer cancel()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: g.cfg.APIKey})
	if err != nil {
		return ParsedTransaction{}, fmt.Errorf("create genai client: %w", err)
	}

	// Low temperature for deterministic field extraction.
	temperature := float32(0.1)
	resp, err := client.Models.GenerateContent(ctx, g.cfg.Model,
		genai.Text(buildExtractionPrompt(text)),
		&genai.GenerateContentConfig{Temperature: &temperature},
	)
	if err != nil {
		return ParsedTransaction{}, fmt.Errorf("generate content: %w", err)
	}

	raw := resp.Text()
	if raw == "" {
		return ParsedTransaction{}, fmt.Errorf("empty response from model")
	}

	payload, err := decodeModelJSON(raw)
	if err != nil {
		return ParsedTransaction{}, fmt.Errorf("decode model response: %w", err)
	}

	return sanitize(payload), nil
}
