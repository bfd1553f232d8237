package extraction

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubAI struct {
	configured bool
	result     ParsedTransaction
	panicWith  any
	calls      int
}

func (s *stubAI) IsConfigured() bool { return s.configured }

func (s *stubAI) Extract(ctx context.Context, text string) ParsedTransaction {
	s.calls++
	if s.panicWith != nil {
		panic(s.panicWith)
	}
	return s.result
}

func TestExtractor_FallbackWhenUnconfigured(t *testing.T) {
	ai := &stubAI{configured: false}
	extractor := NewExtractor(ai, zap.NewNop())

	result := extractor.Extract(context.Background(), "Starbucks Coffee 12/15/2024 ₹420.00")

	assert.Zero(t, ai.calls)
	require.NotNil(t, result.Amount)
	assert.Equal(t, 420.00, *result.Amount)
}

func TestExtractor_AIPathWhenConfigured(t *testing.T) {
	amount := 99.0
	ai := &stubAI{
		configured: true,
		result:     ParsedTransaction{Amount: &amount, Confidence: 0.9},
	}
	extractor := NewExtractor(ai, zap.NewNop())

	result := extractor.Extract(context.Background(), "whatever the model saw")

	assert.Equal(t, 1, ai.calls)
	require.NotNil(t, result.Amount)
	assert.Equal(t, 99.0, *result.Amount)
	assert.Equal(t, 0.9, result.Confidence)
}

func TestExtractor_DegradedAIResultNotBlended(t *testing.T) {
	reason := "AI extraction failed: connection refused"
	ai := &stubAI{
		configured: true,
		result:     ParsedTransaction{Confidence: 0, Reasoning: &reason},
	}
	extractor := NewExtractor(ai, zap.NewNop())

	// The adapter absorbed a runtime failure; its degraded result stands as-is
	// even though the heuristic parser could have extracted these fields.
	result := extractor.Extract(context.Background(), "Starbucks Coffee ₹420.00")

	assert.Nil(t, result.Amount)
	assert.Equal(t, 0.0, result.Confidence)
	require.NotNil(t, result.Reasoning)
	assert.Equal(t, reason, *result.Reasoning)
}

func TestExtractor_PanicFallsBack(t *testing.T) {
	ai := &stubAI{configured: true, panicWith: "transport blew up"}
	extractor := NewExtractor(ai, zap.NewNop())

	result := extractor.Extract(context.Background(), "Uber trip ₹250.00")

	assert.Equal(t, 1, ai.calls)
	require.NotNil(t, result.Amount)
	assert.Equal(t, 250.00, *result.Amount)
}

func TestExtractor_NilAdapterUsesFallback(t *testing.T) {
	extractor := NewExtractor(nil, zap.NewNop())

	result := extractor.Extract(context.Background(), "INR 99 recharge")

	require.NotNil(t, result.Amount)
	assert.Equal(t, 99.0, *result.Amount)
}
