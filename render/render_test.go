package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"

	"github.com/tifye/simlab/exercise/shop"
	"github.com/tifye/simlab/sim"
)

func TestMoney(t *testing.T) {
	r := New(language.English)
	assert.Equal(t, "Bs 19,053.56", r.Money(19053.55577430981))
	assert.Equal(t, "Bs 0.00", r.Money(0))
}

func TestNumber(t *testing.T) {
	r := New(language.English)
	tests := []struct {
		in       float64
		expected string
	}{
		{3, "3"},
		{1500, "1,500"},
		{0.08299950680750978, "0.0830"},
		{52.5, "52.50"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, r.Number(tt.in))
	}
}

func TestRows(t *testing.T) {
	r := New(language.English)
	out := Rows(r, []shop.Row{{Hour: 1, Customers: 2, Items: 3, Revenue: 225, Cost: 150, Profit: 75}})
	for _, s := range []string{"hour", "customers", "profit", "225", "150", "75"} {
		assert.Contains(t, out, s)
	}
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 5)
}

func TestAggregate(t *testing.T) {
	r := New(language.English)
	out := r.Aggregate(sim.Aggregate{Runs: 2, Means: []sim.Metric{{Name: "netProfit", Value: 362.5}}})
	assert.Contains(t, out, "mean over 2 runs")
	assert.Contains(t, out, "netProfit")
	assert.Contains(t, out, "362.50")
}
