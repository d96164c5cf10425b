package shop

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
	assert.Equal(t, []sim.Seed{{Stream: "arrivals", Value: 410382425}, {Stream: "items", Value: 3026010063}}, first.Seeds)
	assert.Equal(t, 16, first.Summary.Customers)
	assert.Equal(t, 23, first.Summary.Items)
	assert.Equal(t, 575.0, first.Summary.GrossProfit)
	assert.Equal(t, 275.0, first.Summary.NetProfit)
	assert.Equal(t, Row{Hour: 1, Customers: 2, Items: 3, Revenue: 225, Cost: 150, Profit: 75}, first.Rows[0])

	second := batch.Runs[1]
	assert.Equal(t, 30, second.Summary.Items)
	assert.Equal(t, 450.0, second.Summary.NetProfit)
}

func TestHourlyBounds(t *testing.T) {
	p := Params{Hours: 500, UnitCost: 2, UnitPrice: 3, FixedCost: 10}
	batch := run(t, p, 9, 3)
	for _, r := range batch.Runs {
		items := 0
		for _, row := range r.Rows {
			assert.GreaterOrEqual(t, row.Customers, 0)
			assert.LessOrEqual(t, row.Customers, 4)
			assert.LessOrEqual(t, row.Items, 3*row.Customers)
			assert.Equal(t, row.Revenue-row.Cost, row.Profit)
			items += row.Items
		}
		assert.Equal(t, items, r.Summary.Items)
		assert.Equal(t, r.Summary.GrossProfit-10, r.Summary.NetProfit)
	}
}

func TestValidation(t *testing.T) {
	bad := []Params{
		{Hours: 0},
		{Hours: sim.MaxHorizon + 1},
		{Hours: 1, UnitCost: -1},
		{Hours: 1, UnitPrice: -1},
		{Hours: 1, FixedCost: -1},
	}
	for _, p := range bad {
		_, err := New(p)
		assert.ErrorIs(t, err, sim.ErrInvalidParameter)
	}
}
