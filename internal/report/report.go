// Package report renders a completed analysis as a Markdown document or as
// HTML. Rendering is deterministic for a given analysis.
package report

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"

	"decision-critic/pkg/types"
)

// Markdown renders the analysis as a Markdown document with the same
// section layout the interactive surfaces use.
func Markdown(a *types.Analysis) string {
	var b strings.Builder

	b.WriteString("# Decision Critique\n\n")

	b.WriteString("## Original Decision\n\n")
	if a.Intent.Decision == "" {
		b.WriteString("_(empty)_\n\n")
	} else {
		b.WriteString(a.Intent.Decision + "\n\n")
	}

	b.WriteString("## Structured Intent\n\n")
	fmt.Fprintf(&b, "- **Timeframe:** %s\n", a.Intent.Timeframe)
	fmt.Fprintf(&b, "- **Urgency:** %t\n", a.Intent.Signals.Urgency)
	fmt.Fprintf(&b, "- **Scale:** %t\n", a.Intent.Signals.Scale)
	fmt.Fprintf(&b, "- **Certainty:** %t\n\n", a.Intent.Signals.Certainty)

	b.WriteString("## Bias Detection\n\n")
	for _, flag := range a.BiasFlags {
		fmt.Fprintf(&b, "- %s\n", flag)
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "## Confidence\n\n%d / 100 (intensity: %s)\n\n", a.Confidence, a.Intensity.Name())

	b.WriteString("## Counterarguments\n\n")
	for i, c := range a.Counterarguments {
		fmt.Fprintf(&b, "%d. %s\n", i+1, c)
	}
	b.WriteString("\n")

	b.WriteString("## Second-Order Impacts\n\n")
	for _, impact := range a.Impacts {
		fmt.Fprintf(&b, "- %s\n", impact)
	}
	b.WriteString("\n")

	b.WriteString("## De-risk Recommendations\n\n")
	for _, rec := range a.Recommendations {
		fmt.Fprintf(&b, "- %s\n", rec)
	}

	if len(a.Warnings) > 0 {
		b.WriteString("\n## Warnings\n\n")
		for _, warning := range a.Warnings {
			fmt.Fprintf(&b, "- %s\n", warning)
		}
	}

	return b.String()
}

// HTML renders the analysis Markdown to an HTML fragment.
func HTML(a *types.Analysis) (string, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(Markdown(a)), &buf); err != nil {
		return "", fmt.Errorf("failed to render report: %w", err)
	}
	return buf.String(), nil
}
