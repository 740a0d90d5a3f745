// Package engine orchestrates the analysis pipeline: intent parsing, bias
// detection, confidence scoring, and critique generation, assembled into a
// single analysis record per invocation.
package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"decision-critic/internal/ai"
	"decision-critic/internal/bias"
	"decision-critic/internal/confidence"
	"decision-critic/internal/config"
	"decision-critic/internal/critique"
	"decision-critic/internal/intent"
	"decision-critic/internal/logging"
	"decision-critic/pkg/types"
)

// Request carries the inputs of one analysis invocation. Decision and
// context may be empty; intensity outside [1,5] is clamped.
type Request struct {
	Decision  string `json:"decision"`
	Context   string `json:"context"`
	Intensity int    `json:"intensity"`
	UseModel  bool   `json:"use_model"`
}

// Engine is the single entry point the presentation surfaces call. It holds
// no mutable state; concurrent Analyze calls need no locking.
type Engine struct {
	cfg       *config.Config
	logger    logging.Logger
	generator critique.Generator
}

// New creates an engine from configuration. The external-model generator is
// wired only when a credential is configured; its absence disables
// external-call mode regardless of what callers request.
func New(cfg *config.Config, logger logging.Logger) (*Engine, error) {
	e := &Engine{
		cfg:    cfg,
		logger: logger.WithComponent("engine"),
	}

	if cfg.OpenAI.Enabled() {
		client, err := ai.NewOpenAIClient(cfg.OpenAI)
		if err != nil {
			return nil, fmt.Errorf("failed to create OpenAI client: %w", err)
		}
		e.generator = critique.NewModelGenerator(client)
	}

	return e, nil
}

// NewWithGenerator creates an engine with an explicit generator. Used by
// tests and by callers that bring their own model client.
func NewWithGenerator(cfg *config.Config, logger logging.Logger, generator critique.Generator) *Engine {
	return &Engine{
		cfg:       cfg,
		logger:    logger.WithComponent("engine"),
		generator: generator,
	}
}

// ModelAvailable reports whether external-call mode can be offered.
func (e *Engine) ModelAvailable() bool {
	return e.generator != nil
}

// Analyze runs the full pipeline. It always produces an analysis record;
// external-model failures downgrade to heuristic output with an advisory
// warning, never an error.
func (e *Engine) Analyze(ctx context.Context, req Request) *types.Analysis {
	intensity := types.IntensityFromLevel(req.Intensity)
	parsed := intent.Parse(req.Decision, req.Context)
	flags := bias.Detect(parsed)
	score := confidence.Score(parsed.Decision, parsed.Context)

	var warnings []string
	mode := types.ModeHeuristic
	var set *critique.Set

	if req.UseModel {
		switch {
		case e.generator == nil:
			warnings = append(warnings, "external model requested but no credential is configured; using heuristic generator")
		default:
			generated, err := e.generator.Generate(ctx, parsed, intensity)
			if err != nil {
				warnings = append(warnings, fmt.Sprintf("model generation failed (%v); using heuristic generator", err))
				e.logger.Warn("model generation failed, falling back to heuristics",
					"error", err.Error(), "intensity", intensity.Name())
			} else {
				set = generated
				mode = types.ModeModel
			}
		}
	}

	if set == nil {
		set = critique.Heuristic(parsed, intensity)
	}

	return &types.Analysis{
		ID:               uuid.New().String(),
		Intent:           parsed,
		BiasFlags:        flags,
		Confidence:       score,
		Counterarguments: set.Counterarguments,
		Impacts:          set.Impacts,
		Recommendations:  set.Recommendations,
		Intensity:        intensity,
		Mode:             mode,
		Warnings:         warnings,
		Timestamp:        time.Now().UTC(),
	}
}
