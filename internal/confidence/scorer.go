// Package confidence derives a bounded confidence score from textual
// specificity and hedging markers in the decision and context text.
package confidence

import (
	"strings"

	"decision-critic/internal/textsignal"
)

const (
	baseScore = 55

	numericBonusPerToken = 4
	numericBonusMax      = 20
	evidenceBonus        = 10
	absolutePenalty      = 15
	shortDecisionPenalty = 10
	shortContextPenalty  = 5

	shortDecisionLength = 40
	shortContextLength  = 20
)

var (
	evidentiaryMarkers = []string{"because", "due to", "based on", "data", "analysis", "pilot", "experiment", "evidence"}
	absoluteMarkers    = []string{"no-brainer", "guaranteed", "can't fail", "zero risk", "no risk"}
)

// Score computes the confidence score for a decision. The result is always
// in [0,100] and identical inputs always yield identical output.
func Score(decision, context string) int {
	decision = strings.TrimSpace(decision)
	context = strings.TrimSpace(context)
	combined := textsignal.NormalizeApostrophes(decision + " " + context)

	score := baseScore
	score += textsignal.Clamp(numericBonusPerToken*textsignal.CountNumbers(combined), 0, numericBonusMax)

	if textsignal.ContainsAny(combined, evidentiaryMarkers) {
		score += evidenceBonus
	}
	if textsignal.ContainsAny(combined, absoluteMarkers) {
		score -= absolutePenalty
	}
	if len(decision) < shortDecisionLength {
		score -= shortDecisionPenalty
	}
	if len(context) < shortContextLength {
		score -= shortContextPenalty
	}

	return textsignal.Clamp(score, 0, 100)
}
