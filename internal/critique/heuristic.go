package critique

import (
	"fmt"
	"strings"

	"decision-critic/internal/textsignal"
	"decision-critic/pkg/types"
)

// counterTemplate pairs a counterargument with the condition under which it
// applies. Templates are evaluated in fixed order; their order becomes the
// output order before the intensity cap is applied.
type counterTemplate struct {
	applies func(in types.Intent, combined string) bool
	text    func(in types.Intent) string
}

var (
	spendKeywords  = []string{"spend", "invest", "budget", "hire", "fund", "purchase", "buy"}
	budgetKeywords = []string{"budget", "limited", "constraint", "cap", "$"}
	launchKeywords = []string{"launch", "scale", "roll out", "rollout"}
	integKeywords  = []string{"integration", "platform", "api", "migrate", "migration"}
)

var counterTemplates = []counterTemplate{
	{
		applies: func(in types.Intent, _ string) bool { return in.Timeframe != types.TimeframeNotSpecified },
		text: func(in types.Intent) string {
			return fmt.Sprintf("The stated %s timeline assumes everything goes right; comparable efforts routinely slip when integrations, approvals, or hiring take longer than planned.", in.Timeframe)
		},
	},
	{
		applies: func(in types.Intent, _ string) bool { return in.Signals.Scale },
		text: func(types.Intent) string {
			return "Scaling before the core offering is validated multiplies the cost of every flawed assumption instead of containing it."
		},
	},
	{
		applies: func(in types.Intent, _ string) bool { return in.Signals.Urgency },
		text: func(types.Intent) string {
			return "The urgency in this plan crowds out due diligence; moving fast only pays off if the direction is right."
		},
	},
	{
		applies: func(_ types.Intent, combined string) bool {
			return textsignal.ContainsAny(combined, spendKeywords)
		},
		text: func(types.Intent) string {
			return "Committing spend up front creates pressure to justify the outlay rather than to re-evaluate the decision as evidence arrives."
		},
	},
	{
		applies: func(in types.Intent, _ string) bool { return in.Signals.Certainty },
		text: func(types.Intent) string {
			return "Certainty language usually masks untested assumptions; the strongest case for this decision has not yet survived contact with a skeptic."
		},
	},
	{
		applies: func(_ types.Intent, combined string) bool {
			return textsignal.ContainsAny(combined, budgetKeywords)
		},
		text: func(types.Intent) string {
			return "With a constrained budget, the downside scenario is not a smaller win but running out of runway before the work is finished."
		},
	},
}

const (
	genericCounterargument = "The plan may be underestimating uncertainty; list the assumptions that must hold for this to work and how each would be detected if wrong."

	preMortemPrompt = "Pre-mortem: assume this decision has failed twelve months from now and write down the three most likely reasons before committing."

	irreversibleCostPrompt = "Name every cost that cannot be recovered once incurred, and what evidence would justify accepting each one."
)

var (
	impactOperationalLoad = "Operational load will spike around launch; support and delivery teams absorb the gap between plan and reality."
	impactIntegrationLag  = "Integration and platform dependencies tend to cascade; one delayed dependency can push the whole schedule by weeks."
	impactReversalCost    = "If the decision is reversed later, the reversal itself carries reputational cost with customers and partners."
	impactLostOptionality = "Committing now reduces long-term optionality; resources locked here are unavailable for whatever is learned next quarter."
	impactTrustErosion    = "Repeated course corrections erode stakeholder trust, making the next ambitious proposal harder to approve."
)

// recommendations is the fixed de-risking playbook; tiers at or below firm
// receive the first three entries, higher tiers all four.
var recommendations = []string{
	"Run a time-boxed pilot with explicit success metrics before committing fully.",
	"Define go/no-go criteria now, and agree in advance who makes the call.",
	"Stage funding in tranches tied to validated milestones rather than committing the full budget up front.",
	"Schedule a checkpoint before any irreversible step such as contracts, public announcements, or head-count changes.",
}

// Heuristic generates a critique set from templates alone. It is the default
// generator and the fallback for every external-model failure. Output counts
// grow monotonically with intensity.
func Heuristic(in types.Intent, intensity types.Intensity) *Set {
	combined := strings.ToLower(in.Decision + " " + in.Context)

	return &Set{
		Counterarguments: heuristicCounterarguments(in, combined, intensity),
		Impacts:          heuristicImpacts(combined, intensity),
		Recommendations:  heuristicRecommendations(intensity),
	}
}

func heuristicCounterarguments(in types.Intent, combined string, intensity types.Intensity) []string {
	var counters []string
	for _, tmpl := range counterTemplates {
		if tmpl.applies(in, combined) {
			counters = append(counters, tmpl.text(in))
		}
	}
	if len(counters) == 0 {
		counters = append(counters, genericCounterargument)
	}

	if limit := intensity.CounterargumentCap(); len(counters) > limit {
		counters = counters[:limit]
	}

	// Tier additions sit beyond the cap: they are how higher intensity
	// visibly sharpens the output.
	if intensity >= types.IntensityFirm {
		counters = append(counters, preMortemPrompt)
	}
	if intensity >= types.IntensityBrutallyHonest {
		counters = append(counters, irreversibleCostPrompt)
	}
	return counters
}

func heuristicImpacts(combined string, intensity types.Intensity) []string {
	var impacts []string
	if textsignal.ContainsAny(combined, launchKeywords) {
		impacts = append(impacts, impactOperationalLoad)
	}
	if textsignal.ContainsAny(combined, integKeywords) {
		impacts = append(impacts, impactIntegrationLag)
	}
	impacts = append(impacts, impactReversalCost, impactLostOptionality)
	if intensity >= types.IntensityHarsh {
		impacts = append(impacts, impactTrustErosion)
	}
	return impacts
}

func heuristicRecommendations(intensity types.Intensity) []string {
	if intensity <= types.IntensityFirm {
		return append([]string(nil), recommendations[:3]...)
	}
	return append([]string(nil), recommendations...)
}
