package types

// Intensity is the caller-selected tier controlling how aggressively the
// pipeline challenges a decision. The five named tiers replace raw level
// lookups so that every consumer handles the full range exhaustively.
type Intensity int

const (
	IntensityGentle Intensity = iota + 1
	IntensityProbing
	IntensityFirm
	IntensityHarsh
	IntensityBrutallyHonest
)

// IntensityFromLevel converts a raw caller-supplied level into a tier,
// clamping out-of-range values to the nearest valid tier.
func IntensityFromLevel(level int) Intensity {
	switch {
	case level < int(IntensityGentle):
		return IntensityGentle
	case level > int(IntensityBrutallyHonest):
		return IntensityBrutallyHonest
	default:
		return Intensity(level)
	}
}

// Level returns the numeric level of the tier.
func (i Intensity) Level() int {
	return int(i)
}

// Valid reports whether the tier is one of the five named variants.
func (i Intensity) Valid() bool {
	return i >= IntensityGentle && i <= IntensityBrutallyHonest
}

// Name returns the tier name used in model prompts and reports.
func (i Intensity) Name() string {
	switch i {
	case IntensityGentle:
		return "gentle"
	case IntensityProbing:
		return "probing"
	case IntensityFirm:
		return "firm"
	case IntensityHarsh:
		return "harsh"
	case IntensityBrutallyHonest:
		return "brutally_honest"
	default:
		return "unknown"
	}
}

// CounterargumentCap returns how many conditional counterarguments the
// heuristic generator keeps at this tier, before tier additions.
func (i Intensity) CounterargumentCap() int {
	switch i {
	case IntensityGentle:
		return 2
	case IntensityProbing:
		return 3
	case IntensityFirm:
		return 4
	case IntensityHarsh:
		return 5
	case IntensityBrutallyHonest:
		return 6
	default:
		return 2
	}
}

// Temperature returns the sampling temperature used for external-model
// generation at this tier. Higher tiers sample hotter so the model produces
// sharper, more varied phrasing.
func (i Intensity) Temperature() float64 {
	return 0.3 + 0.08*float64(i)
}
