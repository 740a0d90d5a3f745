// Package bias scans a parsed intent record for linguistic markers of known
// cognitive-bias patterns. Flags are heuristic signals, not certified
// findings.
package bias

import (
	"strings"

	"decision-critic/internal/textsignal"
	"decision-critic/pkg/types"
)

// NoStrongBias is the sentinel flag emitted when no rule fires, so the flag
// set is never empty.
const NoStrongBias = "No strong bias detected (based on visible signals)"

type rule struct {
	label    string
	keywords []string
}

// rules are checked in fixed order; their order becomes the output order.
var rules = []rule{
	{"Overconfidence bias", []string{"no-brainer", "sure", "guaranteed", "can't fail"}},
	{"Social proof / groupthink", []string{"everyone", "obvious", "clearly"}},
	{"Optimism / planning fallacy", []string{"quick", "fast", "asap", "immediately"}},
	{"Sunk cost fallacy", []string{"sunk cost", "we've already invested", "too much to stop"}},
}

// Detect returns the ordered, deduplicated set of bias flags for the given
// intent record.
func Detect(in types.Intent) []string {
	text := textsignal.NormalizeApostrophes(strings.ToLower(in.Decision))

	var flags []string
	for _, r := range rules {
		if textsignal.ContainsAny(text, r.keywords) {
			flags = append(flags, r.label)
		}
	}

	flags = dedupe(flags)
	if len(flags) == 0 {
		return []string{NoStrongBias}
	}
	return flags
}

// dedupe removes repeated flags, preserving first-seen order.
func dedupe(flags []string) []string {
	seen := make(map[string]bool, len(flags))
	result := make([]string, 0, len(flags))
	for _, flag := range flags {
		if !seen[flag] {
			seen[flag] = true
			result = append(result, flag)
		}
	}
	return result
}
