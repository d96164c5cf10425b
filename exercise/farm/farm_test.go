package farm

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tifye/simlab/sim"
)

func run(t *testing.T, p Params, epoch uint32, runs int) Batch {
	t.Helper()
	batch, err := Run(log.New(io.Discard), p, epoch, runs)
	require.NoError(t, err)
	return batch
}

func TestKnownBatch(t *testing.T) {
	batch := run(t, DefaultParams(), 123456789, 2)

	first := batch.Runs[0]
	assert.Equal(t, []sim.Seed{{Stream: "eggs", Value: 1459191505}, {Stream: "fates", Value: 2930075083}}, first.Seeds)
	assert.Equal(t, Summary{
		Days:             30,
		Laid:             29,
		Broken:           7,
		EggsSold:         15,
		ChicksSold:       6,
		ChicksDied:       1,
		Revenue:          52.5,
		MeanDailyRevenue: 1.75,
	}, first.Summary)
	assert.Equal(t, Row{Day: 1, Laid: 3, Broken: 1, EggsSold: 1, ChicksSold: 1, Revenue: 6.5, TotalRevenue: 6.5}, first.Rows[0])

	second := batch.Runs[1]
	assert.Equal(t, 32, second.Summary.Laid)
	assert.Equal(t, 68.0, second.Summary.Revenue)
	assert.Equal(t, 0, second.Rows[0].Laid)
}

func TestEggsAreConserved(t *testing.T) {
	batch := run(t, Params{Days: 200, EggPrice: 1, ChickPrice: 4}, 5, 10)
	for _, r := range batch.Runs {
		var total float64
		for _, row := range r.Rows {
			assert.Equal(t, row.Laid, row.Broken+row.EggsSold+row.ChicksSold+row.ChicksDied)
			assert.LessOrEqual(t, row.Laid, 4)
			assert.Equal(t, float64(row.EggsSold)*1+float64(row.ChicksSold)*4, row.Revenue)
			total += row.Revenue
			assert.Equal(t, total, row.TotalRevenue)
		}
		s := r.Summary
		assert.Equal(t, s.Laid, s.Broken+s.EggsSold+s.ChicksSold+s.ChicksDied)
		assert.Equal(t, s.Revenue/200, s.MeanDailyRevenue)
	}
}

func TestReproducible(t *testing.T) {
	assert.Equal(t, run(t, DefaultParams(), 77, 4), run(t, DefaultParams(), 77, 4))
}

func TestValidation(t *testing.T) {
	tests := []struct {
		params Params
		param  string
	}{
		{Params{Days: 0, EggPrice: 1, ChickPrice: 1}, "days"},
		{Params{Days: sim.MaxHorizon + 1, EggPrice: 1, ChickPrice: 1}, "days"},
		{Params{Days: 1, EggPrice: -1, ChickPrice: 1}, "eggPrice"},
		{Params{Days: 1, EggPrice: 1, ChickPrice: -1}, "chickPrice"},
	}
	for _, tt := range tests {
		_, err := New(tt.params)
		var verr *sim.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, tt.param, verr.Param)
	}
}

func TestAggregate(t *testing.T) {
	batch := run(t, DefaultParams(), 123456789, 2)
	agg, err := batch.Aggregate()
	require.NoError(t, err)
	revenue, ok := agg.Mean("revenue")
	require.True(t, ok)
	assert.Equal(t, (52.5+68)/2, revenue)
	laid, _ := agg.Mean("laid")
	assert.Equal(t, 30.5, laid)
}
