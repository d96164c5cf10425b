// Package sim runs seeded Monte-Carlo batches for any exercise model.
//
// A Model supplies its streams, its horizon, an initial state, a step
// function and a summary reduction. RunBatch derives each run's stream seeds
// from the epoch and run index, steps the model over the horizon and
// collects rows and a summary per run. Runs share no mutable state, so a
// batch is a pure function of (model, epoch, runs).
package sim

import "github.com/tifye/simlab/prng"

// Streams are a run's private uniform sources, in the order the model
// declared them.
type Streams []*prng.Stream

// Model is one exercise with validated parameters.
//
// Step is called for period = 1..Horizon() and must draw from streams in a
// fixed order so that equal seeds reproduce equal rows.
type Model[State, Row any, Sum Summary] interface {
	Name() string
	Streams() []prng.StreamSpec
	Horizon() int
	Init() State
	Step(period int, state State, streams Streams) (State, Row)
	Summarize(final State, rows []Row) Sum
}

// Summary is a per-run reduction exposing the metrics averaged by Aggregate.
type Summary interface {
	Metrics() []Metric
}

// Metric is one named numeric summary value.
type Metric struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// Seed records the seed a run used for one of its streams.
type Seed struct {
	Stream string `json:"stream"`
	Value  uint32 `json:"value"`
}

// Run is one realization of a model.
type Run[Row any, Sum Summary] struct {
	Index   int    `json:"index"`
	Seeds   []Seed `json:"seeds"`
	Rows    []Row  `json:"rows"`
	Summary Sum    `json:"summary"`
}

// Batch is every run for one parameter set and epoch.
type Batch[Row any, Sum Summary] struct {
	Exercise string          `json:"exercise"`
	Epoch    uint32          `json:"epoch"`
	Runs     []Run[Row, Sum] `json:"runs"`
}

// Summaries returns the run summaries in run order.
func (b Batch[Row, Sum]) Summaries() []Summary {
	out := make([]Summary, len(b.Runs))
	for i, r := range b.Runs {
		out[i] = r.Summary
	}
	return out
}

// Aggregate averages the batch's run summaries.
func (b Batch[Row, Sum]) Aggregate() (Aggregate, error) {
	return AggregateSummaries(b.Summaries())
}
