package sim

import "fmt"

// Aggregate is the per-metric mean over every run of a batch.
type Aggregate struct {
	Runs  int      `json:"runs"`
	Means []Metric `json:"means"`
}

// Mean returns the mean of the named metric.
func (a Aggregate) Mean(name string) (float64, bool) {
	for _, m := range a.Means {
		if m.Name == name {
			return m.Value, true
		}
	}
	return 0, false
}

// AggregateSummaries averages every metric across summaries. All summaries
// must expose the same metrics in the same order.
func AggregateSummaries(summaries []Summary) (Aggregate, error) {
	if len(summaries) == 0 {
		return Aggregate{}, ErrNoRuns
	}

	first := summaries[0].Metrics()
	sums := make([]float64, len(first))
	for i, s := range summaries {
		metrics := s.Metrics()
		if len(metrics) != len(first) {
			return Aggregate{}, fmt.Errorf("summary %d: expected %d metrics, got %d", i, len(first), len(metrics))
		}
		for j, m := range metrics {
			if m.Name != first[j].Name {
				return Aggregate{}, fmt.Errorf("summary %d: expected metric %q at %d, got %q", i, first[j].Name, j, m.Name)
			}
			sums[j] += m.Value
		}
	}

	n := float64(len(summaries))
	means := make([]Metric, len(first))
	for j, m := range first {
		means[j] = Metric{Name: m.Name, Value: sums[j] / n}
	}
	return Aggregate{Runs: len(summaries), Means: means}, nil
}
