package sample

// Fate is what happens to a single egg.
type Fate uint8

const (
	FateSoldEgg Fate = iota
	FateBroken
	FateSoldChick
	FateChickDied
)

func (f Fate) String() string {
	switch f {
	case FateSoldEgg:
		return "sold-egg"
	case FateBroken:
		return "broken"
	case FateSoldChick:
		return "sold-chick"
	case FateChickDied:
		return "chick-died"
	default:
		return "unknown"
	}
}

const (
	BreakProbability    = 0.20
	HatchProbability    = 0.30
	SurvivalProbability = 0.80
)

// EggFate draws once to decide broken, hatched or kept. A hatched egg takes a
// second draw to decide whether the chick survives to be sold.
func EggFate(src Source) Fate {
	u := src.Float64()
	switch {
	case u < BreakProbability:
		return FateBroken
	case u < BreakProbability+HatchProbability:
		if src.Float64() < SurvivalProbability {
			return FateSoldChick
		}
		return FateChickDied
	default:
		return FateSoldEgg
	}
}
