package environment

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r1"
)

// IntervalLimit implements the Ender interface to end episodes
// whenever a single feature in a feature vector leaves some interval
type IntervalLimit struct {
	intervals []r1.Interval
	indices   []int
}

// NewIntervalLimit creates and returns a new interval limit, which
// ends an episode when feature obsIndices[i] leaves limits[i]
func NewIntervalLimit(limits []r1.Interval, obsIndices []int) *IntervalLimit {
	if len(limits) != len(obsIndices) {
		panic("limits should have same length as observation indices")
	}

	return &IntervalLimit{limits, obsIndices}
}

// End returns whether any tracked feature of state has left its
// interval
func (i *IntervalLimit) End(state mat.Vector, _ int) bool {
	for index := range i.indices {
		featureIndex := i.indices[index]
		interval := i.intervals[index]

		if state.AtVec(featureIndex) > interval.Max ||
			state.AtVec(featureIndex) < interval.Min {
			return true
		}
	}
	return false
}
