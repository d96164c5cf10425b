package sim

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/tifye/simlab/assert"
	"github.com/tifye/simlab/prng"
)

// RunBatch executes runs independent realizations of m. Run i seeds every
// stream from (stream base, epoch, i). Nothing is carried between runs.
func RunBatch[State, Row any, Sum Summary](
	logger *log.Logger,
	m Model[State, Row, Sum],
	epoch uint32,
	runs int,
) (Batch[Row, Sum], error) {
	assert.AssertNotNil(logger)
	assert.AssertNotNil(m)

	if err := RunCount(runs); err != nil {
		return Batch[Row, Sum]{}, err
	}
	horizon := m.Horizon()
	if err := Horizon("horizon", horizon); err != nil {
		return Batch[Row, Sum]{}, err
	}

	start := time.Now()
	logger.Debug("Batch started",
		"exercise", m.Name(), "epoch", epoch, "runs", runs, "horizon", horizon,
	)
	defer func() {
		logger.Debug("Batch finished",
			"exercise", m.Name(), "epoch", epoch, "elapsed", time.Since(start),
		)
	}()

	batch := Batch[Row, Sum]{
		Exercise: m.Name(),
		Epoch:    epoch,
		Runs:     make([]Run[Row, Sum], 0, runs),
	}
	for i := range runs {
		batch.Runs = append(batch.Runs, runOnce(m, epoch, i))
	}
	return batch, nil
}

func runOnce[State, Row any, Sum Summary](m Model[State, Row, Sum], epoch uint32, index int) Run[Row, Sum] {
	specs := m.Streams()
	streams := make(Streams, len(specs))
	seeds := make([]Seed, len(specs))
	for i, spec := range specs {
		streams[i] = spec.Open(epoch, index)
		seeds[i] = Seed{Stream: spec.Name, Value: streams[i].Seed()}
	}

	horizon := m.Horizon()
	rows := make([]Row, 0, horizon)
	state := m.Init()
	for period := 1; period <= horizon; period++ {
		var row Row
		state, row = m.Step(period, state, streams)
		rows = append(rows, row)
	}

	return Run[Row, Sum]{
		Index:   index,
		Seeds:   seeds,
		Rows:    rows,
		Summary: m.Summarize(state, rows),
	}
}

// SeedsFor lists the seeds run index would use, without running anything.
func SeedsFor(specs []prng.StreamSpec, epoch uint32, index int) []Seed {
	seeds := make([]Seed, len(specs))
	for i, spec := range specs {
		seeds[i] = Seed{Stream: spec.Name, Value: spec.Seed(epoch, index)}
	}
	return seeds
}
