// Package critique expands a parsed intent record into counterarguments,
// second-order impacts, and de-risking recommendations, either through
// local heuristic templates or through a single external-model call with
// mandatory local fallback.
package critique

import (
	"context"

	"decision-critic/pkg/types"
)

// Set holds the three generated output lists of one pipeline run. The JSON
// tags double as the wire schema expected from the external model.
type Set struct {
	Counterarguments []string `json:"counterarguments"`
	Impacts          []string `json:"impacts"`
	Recommendations  []string `json:"recommendations"`
}

// Generator produces a critique set. Implementations may call external
// collaborators; any returned error means the caller must fall back to the
// heuristic generator.
type Generator interface {
	Generate(ctx context.Context, in types.Intent, intensity types.Intensity) (*Set, error)
}
