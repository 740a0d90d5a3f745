package critique

import (
	"context"
	"fmt"

	"decision-critic/pkg/types"
)

// Completer is the minimal surface of the AI client the pipeline depends on.
type Completer interface {
	Complete(ctx context.Context, prompt string, temperature float64) (string, error)
}

// ModelGenerator delegates critique generation to an external language
// model. One attempt, no retry; every failure is returned to the caller so
// the heuristic fallback engages.
type ModelGenerator struct {
	client Completer
}

// NewModelGenerator creates a generator backed by the given client.
func NewModelGenerator(client Completer) *ModelGenerator {
	return &ModelGenerator{client: client}
}

// Generate builds the prompt, makes a single model call at the tier's
// temperature, and parses the reply.
func (g *ModelGenerator) Generate(ctx context.Context, in types.Intent, intensity types.Intensity) (*Set, error) {
	reply, err := g.client.Complete(ctx, BuildPrompt(in, intensity), intensity.Temperature())
	if err != nil {
		return nil, fmt.Errorf("model call failed: %w", err)
	}
	return ParseReply(reply)
}
