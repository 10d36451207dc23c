package registry

import (
	"github.com/pkg/errors"
	env "github.com/samuelfneumann/gymenv/environment"
	"github.com/samuelfneumann/gymenv/environment/gym"
)

// handle exposes a native environment as a gym.Handle. Step results
// are returned as (observation, reward, done, info) tuples, where info
// holds the number of steps taken in the current episode.
type handle struct {
	env   env.Environment
	steps int
}

func (h *handle) Seed(seed int) error {
	if seed < 0 {
		return errors.Errorf("seed: seed must be non-negative, have %d",
			seed)
	}
	h.env.Seed(uint64(seed))
	return nil
}

func (h *handle) Reset() (interface{}, error) {
	obs, err := h.env.Reset()
	if err != nil {
		return nil, err
	}
	h.steps = 0
	return obs, nil
}

func (h *handle) Step(action int) (interface{}, error) {
	obs, reward, done, err := h.env.Step(action)
	if err != nil {
		return nil, err
	}
	h.steps++

	info := map[string]interface{}{"steps": h.steps}
	return []interface{}{obs, reward, done, info}, nil
}

func (h *handle) ActionSpace() (interface{}, error) {
	spec := h.env.ActionSpec()
	if spec.Cardinality != env.Discrete {
		return nil, errors.Errorf("actionSpace: %v actions are not "+
			"supported", spec.Cardinality)
	}
	return gym.Discrete{Count: spec.N()}, nil
}

func (h *handle) ObservationSpace() (interface{}, error) {
	spec := h.env.ObservationSpec()
	return gym.Box{
		Dims: spec.Shape,
		Low:  spec.LowerBound.RawVector().Data,
		High: spec.UpperBound.RawVector().Data,
	}, nil
}
