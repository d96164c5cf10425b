// Package deposit holds the two term-deposit exercises. Neither draws random
// numbers: their models declare no streams and run as a batch of one.
package deposit

import (
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/tifye/simlab/sim"
)

// Row is one compounding period.
type Row struct {
	Period       int     `json:"period"`
	Opening      float64 `json:"opening"`
	Interest     float64 `json:"interest"`
	Contribution float64 `json:"contribution"`
	Closing      float64 `json:"closing"`
}

func (Row) Header() []string {
	return []string{"period", "opening", "interest", "contribution", "closing"}
}

func (r Row) Record() []string {
	return []string{
		itoa(r.Period),
		ftoa(r.Opening),
		ftoa(r.Interest),
		ftoa(r.Contribution),
		ftoa(r.Closing),
	}
}

// State is the capital and the interest accrued so far.
type State struct {
	Capital  float64
	Interest float64
}

// compound applies K[t+1] = K[t] + K[t]*r + contribution.
func compound(period int, s State, rate, contribution float64) (State, Row) {
	// float64() keeps the product from being fused into an FMA.
	interest := float64(s.Capital * rate)
	closing := s.Capital + interest + contribution
	row := Row{
		Period:       period,
		Opening:      s.Capital,
		Interest:     interest,
		Contribution: contribution,
		Closing:      closing,
	}
	return State{Capital: closing, Interest: s.Interest + interest}, row
}

type FixedBatch = sim.Batch[Row, FixedSummary]
type VariableBatch = sim.Batch[Row, VariableSummary]

// RunFixed evaluates the fixed-rate deposit.
func RunFixed(logger *log.Logger, p FixedParams) (FixedBatch, error) {
	m, err := NewFixed(p)
	if err != nil {
		return FixedBatch{}, err
	}
	return sim.RunBatch[State, Row, FixedSummary](logger, m, 0, 1)
}

// RunVariable evaluates the tiered-rate deposit.
func RunVariable(logger *log.Logger, p VariableParams) (VariableBatch, error) {
	m, err := NewVariable(p)
	if err != nil {
		return VariableBatch{}, err
	}
	return sim.RunBatch[State, Row, VariableSummary](logger, m, 0, 1)
}

func itoa(v int) string     { return strconv.Itoa(v) }
func ftoa(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
