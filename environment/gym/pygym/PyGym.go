// Package pygym implements a gym.Runtime backed by OpenAI Gym, through
// the Go bindings for OpenAI Gym found at
// https://github.com/samuelfneumann/GoGym.
//
// Using this package requires cgo and a Python installation with Gym.
// The embedded interpreter must only be accessed through gym.Env (or
// another holder of the gym.Gateway), and Close must be called once no
// more environments are needed.
package pygym

import (
	"github.com/pkg/errors"
	"github.com/samuelfneumann/gogym"
	"github.com/samuelfneumann/gymenv/environment/gym"
	"gonum.org/v1/gonum/mat"
)

// Runtime is a gym.Runtime which makes environments from the OpenAI Gym
// registry
type Runtime struct{}

// Make returns a new OpenAI Gym environment with the given name, which
// must be a legal name from the OpenAI Gym suite
func (Runtime) Make(name string) (gym.Handle, error) {
	env, err := gogym.Make(name)
	if err != nil {
		return nil, errors.Wrapf(err, "make: could not create environment "+
			"%q", name)
	}
	return &handle{env}, nil
}

// Close performs cleanup of the package-level resources of GoGym
func Close() {
	gogym.Close()
}

// handle implements gym.Handle for a GoGym environment. Discrete
// actions are sent to GoGym as 1-dimensional vectors.
type handle struct {
	env gogym.Environment
}

func (h *handle) Seed(seed int) error {
	_, err := h.env.Seed(seed)
	return err
}

func (h *handle) Reset() (interface{}, error) {
	obs, err := h.env.Reset()
	if err != nil {
		return nil, err
	}
	return obs, nil
}

func (h *handle) Step(action int) (interface{}, error) {
	a := mat.NewVecDense(1, []float64{float64(action)})
	obs, reward, done, err := h.env.Step(a)
	if err != nil {
		return nil, err
	}
	return []interface{}{obs, reward, done}, nil
}

func (h *handle) ActionSpace() (interface{}, error) {
	return fromSpace(h.env.ActionSpace())
}

func (h *handle) ObservationSpace() (interface{}, error) {
	return fromSpace(h.env.ObservationSpace())
}

// Close closes the underlying GoGym environment
func (h *handle) Close() error {
	h.env.Close()
	return nil
}

// fromSpace converts a GoGym space to a gym.Discrete or gym.Box
func fromSpace(space gogym.Space) (interface{}, error) {
	switch space.(type) {
	case *gogym.DiscreteSpace:
		low := space.Low()[0]
		high := space.High()[0]
		if low.Len() != 1 {
			return nil, errors.Errorf("discrete space is %v-dimensional",
				low.Len())
		}
		return gym.Discrete{Count: int(high.AtVec(0)-low.AtVec(0)) + 1}, nil

	case *gogym.BoxSpace:
		low := space.Low()[0]
		high := space.High()[0]
		return gym.Box{
			Dims: []int{low.Len()},
			Low:  low.RawVector().Data,
			High: high.RawVector().Data,
		}, nil

	case nil:
		return nil, errors.New("space type not implemented by GoGym")
	}
	return nil, errors.Errorf("space %T is not supported, only GoGym's "+
		"BoxSpace or DiscreteSpace", space)
}
