package deposit

import (
	"github.com/tifye/simlab/prng"
	"github.com/tifye/simlab/sim"
)

const VariableName = "deposit-variable"

// Rate tiers by initial capital.
const (
	LowTierLimit = 10_000
	MidTierLimit = 100_000
	LowTierRate  = 0.035
	MidTierRate  = 0.037
	HighTierRate = 0.040
)

// VariableParams describe a deposit compounded yearly at a rate chosen once
// from the initial capital.
type VariableParams struct {
	Capital float64 `json:"capital"`
	Years   int     `json:"years"`
}

func DefaultVariableParams() VariableParams {
	return VariableParams{Capital: 15000, Years: 10}
}

func (p VariableParams) Validate() error {
	return sim.First(
		sim.Positive("capital", p.Capital),
		sim.Horizon("years", p.Years),
	)
}

// TierRate selects the annual rate for an initial capital.
func TierRate(capital float64) float64 {
	switch {
	case capital <= LowTierLimit:
		return LowTierRate
	case capital <= MidTierLimit:
		return MidTierRate
	default:
		return HighTierRate
	}
}

type VariableSummary struct {
	Years          int     `json:"years"`
	Rate           float64 `json:"rate"`
	InitialCapital float64 `json:"initialCapital"`
	TotalInterest  float64 `json:"totalInterest"`
	FinalCapital   float64 `json:"finalCapital"`
}

func (s VariableSummary) Metrics() []sim.Metric {
	return []sim.Metric{
		{Name: "rate", Value: s.Rate},
		{Name: "totalInterest", Value: s.TotalInterest},
		{Name: "finalCapital", Value: s.FinalCapital},
	}
}

type VariableModel struct {
	params VariableParams
	rate   float64
}

func NewVariable(p VariableParams) (*VariableModel, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &VariableModel{params: p, rate: TierRate(p.Capital)}, nil
}

func (m *VariableModel) Name() string               { return VariableName }
func (m *VariableModel) Streams() []prng.StreamSpec { return nil }
func (m *VariableModel) Horizon() int               { return m.params.Years }
func (m *VariableModel) Init() State                { return State{Capital: m.params.Capital} }

func (m *VariableModel) Step(year int, s State, _ sim.Streams) (State, Row) {
	return compound(year, s, m.rate, 0)
}

func (m *VariableModel) Summarize(s State, _ []Row) VariableSummary {
	return VariableSummary{
		Years:          m.params.Years,
		Rate:           m.rate,
		InitialCapital: m.params.Capital,
		TotalInterest:  s.Interest,
		FinalCapital:   s.Capital,
	}
}
