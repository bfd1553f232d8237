package extraction

import (
	"context"

	"go.uber.org/zap"
)

// aiExtractor is the AI strategy as seen by the orchestrator.
type aiExtractor interface {
	IsConfigured() bool
	Extract(ctx context.Context, text string) ParsedTransaction
}

// Extractor chooses between the AI strategy and the heuristic parser. It never
// returns an error and never blends the two strategies: exactly one of them
// produces the final result.
type Extractor struct {
	ai       aiExtractor
	fallback *FallbackParser
	logger   *zap.Logger
}

func NewExtractor(ai aiExtractor, logger *zap.Logger) *Extractor {
	return &Extractor{
		ai:       ai,
		fallback: NewFallbackParser(),
		logger:   logger,
	}
}

// Extract produces exactly one ParsedTransaction for the text. The AI path is
// taken only when the adapter reports itself configured; without configuration,
// or when the AI path panics, the heuristic parser runs on the original text.
func (e *Extractor) Extract(ctx context.Context, text string) ParsedTransaction {
	if e.ai != nil && e.ai.IsConfigured() {
		if result, ok := e.aiExtract(ctx, text); ok {
			return result
		}
	}
	return e.fallback.Parse(text)
}

// aiExtract guards against panics escaping the adapter. The adapter absorbs
// its own failures, but a transport-layer panic must still degrade to the
// fallback parser instead of killing the request.
func (e *Extractor) aiExtract(ctx context.Context, text string) (result ParsedTransaction, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("AI extraction panicked", zap.Any("panic", r))
			ok = false
		}
	}()
	return e.ai.Extract(ctx, text), true
}
