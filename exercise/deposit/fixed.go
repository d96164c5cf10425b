package deposit

import (
	"math"

	"github.com/tifye/simlab/prng"
	"github.com/tifye/simlab/sim"
)

const FixedName = "deposit-fixed"

// FixedParams describe a deposit at a nominal annual rate compounded
// PeriodsPerYear times a year, with an optional contribution at the end of
// every period.
type FixedParams struct {
	Capital        float64 `json:"capital"`
	AnnualRate     float64 `json:"annualRate"`
	PeriodsPerYear int     `json:"periodsPerYear"`
	Years          float64 `json:"years"`
	Contribution   float64 `json:"contribution"`
}

func DefaultFixedParams() FixedParams {
	return FixedParams{Capital: 15000, AnnualRate: 8, PeriodsPerYear: 12, Years: 3}
}

// Periods is round(PeriodsPerYear * Years). It is only meaningful once
// Validate has bounded the product.
func (p FixedParams) Periods() int {
	return int(p.periods())
}

func (p FixedParams) periods() float64 {
	return math.Round(float64(p.PeriodsPerYear) * p.Years)
}

// PeriodicRate is the nominal rate divided by the compounding frequency.
func (p FixedParams) PeriodicRate() float64 {
	return p.AnnualRate / 100 / float64(p.PeriodsPerYear)
}

func (p FixedParams) Validate() error {
	err := sim.First(
		sim.NonNegative("capital", p.Capital),
		sim.NonNegative("annualRate", p.AnnualRate),
		sim.Positive("periodsPerYear", float64(p.PeriodsPerYear)),
		sim.Positive("years", p.Years),
		sim.NonNegative("contribution", p.Contribution),
	)
	if err != nil {
		return err
	}
	n := p.periods()
	if n < 1 {
		return sim.Invalid("years", "term of %v years gives no compounding period", p.Years)
	}
	if n > sim.MaxHorizon {
		return sim.Invalid("years", "term of %v years at %d periods a year exceeds %d periods", p.Years, p.PeriodsPerYear, sim.MaxHorizon)
	}
	return nil
}

type FixedSummary struct {
	Periods            int     `json:"periods"`
	PeriodicRate       float64 `json:"periodicRate"`
	EffectiveRate      float64 `json:"effectiveRate"`
	InitialCapital     float64 `json:"initialCapital"`
	TotalContributions float64 `json:"totalContributions"`
	TotalInterest      float64 `json:"totalInterest"`
	FinalCapital       float64 `json:"finalCapital"`
}

func (s FixedSummary) Metrics() []sim.Metric {
	return []sim.Metric{
		{Name: "effectiveRate", Value: s.EffectiveRate},
		{Name: "totalInterest", Value: s.TotalInterest},
		{Name: "totalContributions", Value: s.TotalContributions},
		{Name: "finalCapital", Value: s.FinalCapital},
	}
}

type FixedModel struct {
	params FixedParams
	rate   float64
}

func NewFixed(p FixedParams) (*FixedModel, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &FixedModel{params: p, rate: p.PeriodicRate()}, nil
}

func (m *FixedModel) Name() string               { return FixedName }
func (m *FixedModel) Streams() []prng.StreamSpec { return nil }
func (m *FixedModel) Horizon() int               { return m.params.Periods() }
func (m *FixedModel) Init() State                { return State{Capital: m.params.Capital} }

func (m *FixedModel) Step(period int, s State, _ sim.Streams) (State, Row) {
	return compound(period, s, m.rate, m.params.Contribution)
}

func (m *FixedModel) Summarize(s State, rows []Row) FixedSummary {
	return FixedSummary{
		Periods:            len(rows),
		PeriodicRate:       m.rate,
		EffectiveRate:      math.Pow(1+m.rate, float64(m.params.PeriodsPerYear)) - 1,
		InitialCapital:     m.params.Capital,
		TotalContributions: m.params.Contribution * float64(len(rows)),
		TotalInterest:      s.Interest,
		FinalCapital:       s.Capital,
	}
}
