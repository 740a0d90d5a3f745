// critic runs a single decision critique from the command line and prints
// the result as colored text, Markdown, or HTML.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/fatih/color"

	"decision-critic/internal/config"
	"decision-critic/internal/engine"
	"decision-critic/internal/logging"
	"decision-critic/internal/report"
	"decision-critic/pkg/types"
)

// Sample inputs used when no decision is supplied, so the binary demos
// itself out of the box.
const (
	sampleDecision = "We should launch Product X in 3 months; it's a no-brainer and will capture market share quickly. Let's push marketing spend ASAP and scale integrations."
	sampleContext  = "Budget limited to $500k; growth is the priority."
)

func main() {
	var (
		decision  = flag.String("decision", "", "decision text to critique (sample used when empty)")
		contextIn = flag.String("context", "", "optional context: constraints, goals, timeframe")
		intensity = flag.Int("intensity", 0, "challenge intensity 1-5 (default from config)")
		useModel  = flag.Bool("model", false, "use the external model when a credential is configured")
		format    = flag.String("format", "text", "output format: text, markdown, or html")
	)
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	eng, err := engine.New(cfg, logging.NewNoOpLogger())
	if err != nil {
		log.Fatalf("Failed to create analysis engine: %v", err)
	}

	if *decision == "" {
		*decision = sampleDecision
		if *contextIn == "" {
			*contextIn = sampleContext
		}
	}
	if *intensity == 0 {
		*intensity = cfg.Analysis.DefaultIntensity
	}

	analysis := eng.Analyze(context.Background(), engine.Request{
		Decision:  *decision,
		Context:   *contextIn,
		Intensity: *intensity,
		UseModel:  *useModel,
	})

	switch *format {
	case "markdown":
		fmt.Print(report.Markdown(analysis))
	case "html":
		html, err := report.HTML(analysis)
		if err != nil {
			log.Fatalf("Failed to render HTML report: %v", err)
		}
		fmt.Print(html)
	case "text":
		printText(analysis)
	default:
		fmt.Fprintf(os.Stderr, "unknown format %q\n", *format)
		os.Exit(2)
	}
}

var (
	header  = color.New(color.FgCyan, color.Bold)
	item    = color.New(color.FgWhite)
	caution = color.New(color.FgYellow)
)

func printText(a *types.Analysis) {
	header.Println("Decision Critique")
	fmt.Printf("mode: %s  intensity: %s  confidence: %d/100\n\n", a.Mode, a.Intensity.Name(), a.Confidence)

	header.Println("Structured Intent")
	fmt.Printf("timeframe: %s  urgency: %t  scale: %t  certainty: %t\n\n",
		a.Intent.Timeframe, a.Intent.Signals.Urgency, a.Intent.Signals.Scale, a.Intent.Signals.Certainty)

	header.Println("Bias Detection")
	for _, flag := range a.BiasFlags {
		item.Printf("  - %s\n", flag)
	}
	fmt.Println()

	header.Println("Counterarguments")
	for i, c := range a.Counterarguments {
		item.Printf("  %d. %s\n", i+1, c)
	}
	fmt.Println()

	header.Println("Second-Order Impacts")
	for _, impact := range a.Impacts {
		item.Printf("  - %s\n", impact)
	}
	fmt.Println()

	header.Println("De-risk Recommendations")
	for _, rec := range a.Recommendations {
		item.Printf("  - %s\n", rec)
	}

	if len(a.Warnings) > 0 {
		fmt.Println()
		caution.Println("Warnings")
		for _, warning := range a.Warnings {
			caution.Printf("  - %s\n", warning)
		}
	}
}
