// Package textsignal provides the low-level keyword, numeric, and
// normalization utilities shared by the analysis detectors. All functions
// are pure; empty input is treated as the empty string.
package textsignal

import (
	"regexp"
	"strings"
)

// numberPattern matches integer and decimal tokens. The count of matches is
// used as a proxy for how specific a piece of text is.
var numberPattern = regexp.MustCompile(`\d+(\.\d+)?`)

// apostropheReplacer folds the common unicode apostrophe variants to the
// ASCII form so keyword lists like "can't fail" match regardless of which
// quote character the input used.
var apostropheReplacer = strings.NewReplacer("’", "'", "‘", "'", "`", "'")

// ContainsAny reports whether text contains any of the given keywords,
// case-insensitively.
func ContainsAny(text string, keywords []string) bool {
	if text == "" || len(keywords) == 0 {
		return false
	}
	lower := strings.ToLower(text)
	for _, keyword := range keywords {
		if strings.Contains(lower, strings.ToLower(keyword)) {
			return true
		}
	}
	return false
}

// CountNumbers returns the number of numeric tokens in text.
func CountNumbers(text string) int {
	return len(numberPattern.FindAllString(text, -1))
}

// Clamp bounds n to the inclusive range [lo, hi].
func Clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}

// NormalizeApostrophes folds unicode apostrophe variants to ASCII.
func NormalizeApostrophes(text string) string {
	return apostropheReplacer.Replace(text)
}
