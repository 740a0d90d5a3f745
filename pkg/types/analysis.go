// Package types defines the shared data model for the Decision Critic
// analysis pipeline: parsed intent, intensity tiers, and the assembled
// analysis record returned to callers.
package types

import "time"

// TimeframeNotSpecified is the timeframe value used when the decision text
// contains no recognizable timeframe expression.
const TimeframeNotSpecified = "Not specified"

// GenerationMode identifies which generator produced the critique portion
// of an analysis.
type GenerationMode string

const (
	// ModeHeuristic means the local template-based generator was used.
	ModeHeuristic GenerationMode = "heuristic"
	// ModeModel means an external language model produced the critique.
	ModeModel GenerationMode = "model"
)

// Signals holds the boolean features extracted from the decision text.
type Signals struct {
	Urgency   bool `json:"urgency"`
	Scale     bool `json:"scale"`
	Certainty bool `json:"certainty"`
}

// Intent is the structured record produced by the intent parser. It is
// created once per analysis run and never mutated afterward.
type Intent struct {
	Decision  string  `json:"decision"`
	Context   string  `json:"context"`
	Timeframe string  `json:"timeframe"`
	Signals   Signals `json:"signals"`
}

// Analysis aggregates every output of one pipeline run. A fresh record is
// constructed per invocation; there is no cross-run state.
type Analysis struct {
	ID               string         `json:"id"`
	Intent           Intent         `json:"intent"`
	BiasFlags        []string       `json:"bias_flags"`
	Confidence       int            `json:"confidence"`
	Counterarguments []string       `json:"counterarguments"`
	Impacts          []string       `json:"impacts"`
	Recommendations  []string       `json:"recommendations"`
	Intensity        Intensity      `json:"intensity"`
	Mode             GenerationMode `json:"mode"`
	Warnings         []string       `json:"warnings,omitempty"`
	Timestamp        time.Time      `json:"timestamp"`
}
