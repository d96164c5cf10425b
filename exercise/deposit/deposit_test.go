package deposit

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tifye/simlab/sim"
)

var discard = log.New(io.Discard)

func TestFixed(t *testing.T) {
	batch, err := RunFixed(discard, DefaultFixedParams())
	require.NoError(t, err)
	require.Len(t, batch.Runs, 1)

	run := batch.Runs[0]
	assert.Empty(t, run.Seeds)
	require.Len(t, run.Rows, 36)
	s := run.Summary
	assert.Equal(t, 36, s.Periods)
	assert.Equal(t, 19053.55577430981, s.FinalCapital)
	assert.Equal(t, 4053.555774309806, s.TotalInterest)
	assert.InDelta(t, 0.08299950680750978, s.EffectiveRate, 1e-12)
	assert.Equal(t, 15000.0, s.InitialCapital)
	assert.Zero(t, s.TotalContributions)

	for i, row := range run.Rows {
		assert.Equal(t, i+1, row.Period)
		assert.Equal(t, row.Opening+row.Interest+row.Contribution, row.Closing)
		if i > 0 {
			assert.Equal(t, run.Rows[i-1].Closing, row.Opening)
		}
	}
}

func TestFixedWithContribution(t *testing.T) {
	p := FixedParams{Capital: 15000, AnnualRate: 8, PeriodsPerYear: 12, Years: 1, Contribution: 100}
	batch, err := RunFixed(discard, p)
	require.NoError(t, err)
	s := batch.Runs[0].Summary
	assert.Equal(t, 17489.985204225322, s.FinalCapital)
	assert.Equal(t, 1289.9852042253224, s.TotalInterest)
	assert.Equal(t, 1200.0, s.TotalContributions)
}

func TestFixedPeriodsRound(t *testing.T) {
	assert.Equal(t, 6, FixedParams{PeriodsPerYear: 4, Years: 1.5}.Periods())
	assert.Equal(t, 1, FixedParams{PeriodsPerYear: 1, Years: 0.5}.Periods())
	assert.Equal(t, 0, FixedParams{PeriodsPerYear: 1, Years: 0.4}.Periods())
}

func TestFixedValidation(t *testing.T) {
	tests := []struct {
		name   string
		params FixedParams
		param  string
	}{
		{"negative capital", FixedParams{Capital: -1, PeriodsPerYear: 1, Years: 1}, "capital"},
		{"negative rate", FixedParams{AnnualRate: -1, PeriodsPerYear: 1, Years: 1}, "annualRate"},
		{"zero frequency", FixedParams{PeriodsPerYear: 0, Years: 1}, "periodsPerYear"},
		{"zero term", FixedParams{PeriodsPerYear: 12, Years: 0}, "years"},
		{"term too short", FixedParams{PeriodsPerYear: 1, Years: 0.2}, "years"},
		{"negative contribution", FixedParams{PeriodsPerYear: 1, Years: 1, Contribution: -5}, "contribution"},
		{"too many periods", FixedParams{Capital: 1, AnnualRate: 1, PeriodsPerYear: 1e9, Years: 1e4}, "years"},
		{"term overflows", FixedParams{Capital: 1, AnnualRate: 1, PeriodsPerYear: 12, Years: 1e12}, "years"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := RunFixed(discard, tt.params)
			var verr *sim.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.param, verr.Param)
		})
	}
}

func TestFixedHorizonBound(t *testing.T) {
	_, err := RunFixed(discard, FixedParams{Capital: 1, AnnualRate: 1, PeriodsPerYear: 12, Years: 1e12})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds")

	batch, err := RunFixed(discard, FixedParams{Capital: 1, AnnualRate: 1, PeriodsPerYear: 1000, Years: 100})
	require.NoError(t, err)
	assert.Len(t, batch.Runs[0].Rows, sim.MaxHorizon)
}

func TestTierRate(t *testing.T) {
	tests := []struct {
		capital  float64
		expected float64
	}{
		{1, 0.035},
		{10_000, 0.035},
		{10_000.01, 0.037},
		{100_000, 0.037},
		{100_000.01, 0.040},
		{5_000_000, 0.040},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, TierRate(tt.capital), "capital=%v", tt.capital)
	}
}

func TestVariable(t *testing.T) {
	batch, err := RunVariable(discard, VariableParams{Capital: 15000, Years: 10})
	require.NoError(t, err)
	run := batch.Runs[0]
	require.Len(t, run.Rows, 10)
	assert.Equal(t, 0.037, run.Summary.Rate)
	assert.Equal(t, 21571.424382613513, run.Summary.FinalCapital)
	assert.InDelta(t, 21571.424382613513-15000, run.Summary.TotalInterest, 1e-9)
	for _, row := range run.Rows {
		assert.Zero(t, row.Contribution)
	}
}

func TestVariableValidation(t *testing.T) {
	_, err := RunVariable(discard, VariableParams{Capital: 0, Years: 3})
	assert.ErrorIs(t, err, sim.ErrInvalidParameter)
	_, err = RunVariable(discard, VariableParams{Capital: 10, Years: 0})
	assert.ErrorIs(t, err, sim.ErrInvalidParameter)
	_, err = RunVariable(discard, VariableParams{Capital: 10, Years: sim.MaxHorizon + 1})
	assert.ErrorIs(t, err, sim.ErrInvalidParameter)
}

func TestAggregateOfSingleRun(t *testing.T) {
	batch, err := RunVariable(discard, VariableParams{Capital: 500_000, Years: 2})
	require.NoError(t, err)
	agg, err := batch.Aggregate()
	require.NoError(t, err)
	final, _ := agg.Mean("finalCapital")
	assert.Equal(t, batch.Runs[0].Summary.FinalCapital, final)
}
