package critique

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"decision-critic/internal/intent"
	"decision-critic/pkg/types"
)

const (
	sampleDecision = "We should launch Product X in 3 months; it's a no-brainer and will capture market share quickly. Let's push marketing spend ASAP and scale integrations."
	sampleContext  = "Budget limited to $500k; growth is the priority."
)

func TestHeuristic_CounterargumentCapAndAdditions(t *testing.T) {
	in := intent.Parse(sampleDecision, sampleContext)

	tests := []struct {
		name           string
		intensity      types.Intensity
		wantCount      int
		wantPreMortem  bool
		wantIrrevCosts bool
	}{
		{"gentle keeps two", types.IntensityGentle, 2, false, false},
		{"probing keeps three", types.IntensityProbing, 3, false, false},
		{"firm adds pre-mortem", types.IntensityFirm, 5, true, false},
		{"harsh keeps five plus pre-mortem", types.IntensityHarsh, 6, true, false},
		{"brutally honest adds both prompts", types.IntensityBrutallyHonest, 8, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := Heuristic(in, tt.intensity)
			assert.Len(t, set.Counterarguments, tt.wantCount)

			joined := strings.Join(set.Counterarguments, "\n")
			assert.Equal(t, tt.wantPreMortem, strings.Contains(joined, "Pre-mortem"))
			assert.Equal(t, tt.wantIrrevCosts, strings.Contains(joined, "cannot be recovered"))
		})
	}
}

func TestHeuristic_CountsGrowWithIntensity(t *testing.T) {
	in := intent.Parse(sampleDecision, sampleContext)

	var prev *Set
	for level := 1; level <= 5; level++ {
		set := Heuristic(in, types.IntensityFromLevel(level))
		if prev != nil {
			assert.GreaterOrEqual(t, len(set.Counterarguments), len(prev.Counterarguments), "level %d", level)
			assert.GreaterOrEqual(t, len(set.Impacts), len(prev.Impacts), "level %d", level)
			assert.GreaterOrEqual(t, len(set.Recommendations), len(prev.Recommendations), "level %d", level)
		}
		prev = set
	}
}

func TestHeuristic_GenericFallbackWhenNothingMatches(t *testing.T) {
	in := intent.Parse("we could reconsider the vendor choice", "")
	set := Heuristic(in, types.IntensityGentle)

	require.Len(t, set.Counterarguments, 1)
	assert.Contains(t, set.Counterarguments[0], "underestimating uncertainty")
}

func TestHeuristic_TimelineTemplateUsesParsedTimeframe(t *testing.T) {
	in := intent.Parse("launch the redesign in 6 weeks", "")
	set := Heuristic(in, types.IntensityBrutallyHonest)

	joined := strings.Join(set.Counterarguments, "\n")
	assert.Contains(t, joined, "6 weeks")
}

func TestHeuristic_Impacts(t *testing.T) {
	tests := []struct {
		name      string
		decision  string
		context   string
		intensity types.Intensity
		wantLen   int
	}{
		{
			name:      "always-on impacts only",
			decision:  "switch the billing vendor",
			context:   "",
			intensity: types.IntensityFirm,
			wantLen:   2,
		},
		{
			name:      "launch language adds operational load",
			decision:  "launch the new tier",
			context:   "",
			intensity: types.IntensityFirm,
			wantLen:   3,
		},
		{
			name:      "launch and integration language",
			decision:  "launch the platform integration",
			context:   "",
			intensity: types.IntensityFirm,
			wantLen:   4,
		},
		{
			name:      "harsh adds stakeholder trust erosion",
			decision:  "switch the billing vendor",
			context:   "",
			intensity: types.IntensityHarsh,
			wantLen:   3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := intent.Parse(tt.decision, tt.context)
			set := Heuristic(in, tt.intensity)
			assert.Len(t, set.Impacts, tt.wantLen)
		})
	}
}

func TestHeuristic_RecommendationSplit(t *testing.T) {
	in := intent.Parse(sampleDecision, sampleContext)

	for level := 1; level <= 3; level++ {
		set := Heuristic(in, types.IntensityFromLevel(level))
		assert.Len(t, set.Recommendations, 3, "level %d", level)
	}
	for level := 4; level <= 5; level++ {
		set := Heuristic(in, types.IntensityFromLevel(level))
		assert.Len(t, set.Recommendations, 4, "level %d", level)
	}
}
