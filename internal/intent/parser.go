// Package intent converts raw decision and context text into the structured
// intent record consumed by the bias detector and the argument pipeline.
package intent

import (
	"regexp"
	"strings"

	"decision-critic/internal/textsignal"
	"decision-critic/pkg/types"
)

// timeframePattern recognizes expressions like "in 3 months", "within 2
// weeks", or "over 1 year" anywhere in the decision text. The first match
// wins.
var timeframePattern = regexp.MustCompile(`(?i)\b(?:in|within|over)\s+(\d+)\s+(days?|weeks?|months?|quarters?|years?)\b`)

var (
	urgencyKeywords   = []string{"asap", "immediately", "right away", "urgent"}
	scaleKeywords     = []string{"scale", "roll out", "rollout", "expand", "enterprise-wide"}
	certaintyKeywords = []string{"no-brainer", "sure", "guaranteed", "can't fail"}
)

// Parse builds an intent record from decision and context text. It never
// fails: missing or empty input produces a valid but sparse record.
func Parse(decision, context string) types.Intent {
	decision = strings.TrimSpace(decision)
	context = strings.TrimSpace(context)

	timeframe := types.TimeframeNotSpecified
	if m := timeframePattern.FindStringSubmatch(decision); m != nil {
		timeframe = m[1] + " " + strings.ToLower(m[2])
	}

	normalized := textsignal.NormalizeApostrophes(decision)

	return types.Intent{
		Decision:  decision,
		Context:   context,
		Timeframe: timeframe,
		Signals: types.Signals{
			Urgency:   textsignal.ContainsAny(decision, urgencyKeywords),
			Scale:     textsignal.ContainsAny(decision, scaleKeywords),
			Certainty: textsignal.ContainsAny(normalized, certaintyKeywords),
		},
	}
}
