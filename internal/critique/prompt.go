package critique

import (
	"encoding/json"
	"fmt"
	"strings"

	"decision-critic/pkg/types"
)

// promptSignals is the JSON signal block embedded in the model prompt.
type promptSignals struct {
	Decision  string        `json:"decision"`
	Context   string        `json:"context"`
	Timeframe string        `json:"timeframe"`
	Signals   types.Signals `json:"signals"`
	Intensity string        `json:"intensity"`
}

// BuildPrompt constructs the single instruction sent to the external model.
// The reply must match the Set schema exactly; anything else is handled by
// ParseReply's salvage path or the heuristic fallback.
func BuildPrompt(in types.Intent, intensity types.Intensity) string {
	signals, _ := json.MarshalIndent(promptSignals{
		Decision:  in.Decision,
		Context:   in.Context,
		Timeframe: in.Timeframe,
		Signals:   in.Signals,
		Intensity: intensity.Name(),
	}, "", "  ")

	var b strings.Builder
	b.WriteString("You are a constructive devil's advocate reviewing a proposed decision. ")
	b.WriteString(fmt.Sprintf("Challenge it at the %q intensity tier (gentle through brutally_honest). ", intensity.Name()))
	b.WriteString("Using the parsed signals below, produce specific counterarguments, second-order impacts, and de-risking recommendations.\n\n")
	b.Write(signals)
	b.WriteString("\n\nRespond with JSON only, exactly this shape and nothing else:\n")
	b.WriteString(`{"counterarguments": ["..."], "impacts": ["..."], "recommendations": ["..."]}`)
	return b.String()
}

// ParseReply extracts a critique set from a model reply. It first attempts a
// strict JSON parse, then a single salvage pass over the substring between
// the first '{' and the last '}'. No further heuristics are attempted; any
// remaining failure escalates to the heuristic fallback.
func ParseReply(raw string) (*Set, error) {
	var set Set
	if err := json.Unmarshal([]byte(raw), &set); err == nil {
		return &set, nil
	}

	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start < 0 || end <= start {
		return nil, fmt.Errorf("model reply contains no JSON object")
	}
	if err := json.Unmarshal([]byte(raw[start:end+1]), &set); err != nil {
		return nil, fmt.Errorf("model reply is not valid JSON after salvage: %w", err)
	}
	return &set, nil
}
