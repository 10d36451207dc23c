// Package gym adapts OpenAI Gym style environments, owned by some
// external runtime, to observations represented as tensors.
//
// An Env forwards Reset and Step calls to an environment instance
// created by a Runtime and converts the loosely typed values that the
// runtime returns into tensors and Go values. The Env itself holds no
// episode state: the environment's episode lifecycle is owned entirely
// by the runtime. Callers are responsible for calling Reset once a
// Step reports that the episode is done.
//
// Every call into a runtime is made while holding a process-wide
// Gateway, so that runtimes which do not tolerate concurrent access
// (e.g. the Python interpreter backing package pygym) are never called
// in parallel.
//
// Runtimes are provided by package registry (native Go environments),
// package gymhttp (environments served over HTTP), and package pygym
// (OpenAI Gym through GoGym).
package gym

import (
	"github.com/pkg/errors"
	ts "github.com/samuelfneumann/gymenv/timestep"
	"github.com/samuelfneumann/gymenv/utils/tensorutils"
	"gorgonia.org/tensor"
)

// Seed is the seed given to every environment on construction
const Seed int = 42

// Env adapts an environment instance owned by an external Runtime.
// The action and observation spaces are queried once on construction
// and cached.
//
// Env does not own the environment instance and never closes it.
type Env struct {
	handle  Handle
	gateway *Gateway

	actionSpace      int
	observationSpace []int
}

// Option configures an Env
type Option func(*Env)

// WithGateway sets the Gateway that an Env uses to access its runtime.
// By default all Envs share the process-wide Gateway.
func WithGateway(g *Gateway) Option {
	return func(e *Env) {
		e.gateway = g
	}
}

// New creates the environment called name in the runtime rt, seeds
// it, and caches its action and observation spaces. The name is not
// validated locally; legal names are defined by rt. If any step fails,
// New returns an *Error of Kind Construction and no Env.
func New(rt Runtime, name string, opts ...Option) (*Env, error) {
	e := &Env{gateway: defaultGateway}
	for _, opt := range opts {
		opt(e)
	}

	var (
		handle           Handle
		actionSpace      int
		observationSpace []int
	)
	err := e.gateway.Do(func() error {
		var err error
		handle, err = rt.Make(name)
		if err != nil {
			return errors.Wrapf(err, "could not create environment %q", name)
		}
		if handle == nil {
			return errors.Errorf("runtime returned no environment for %q",
				name)
		}

		if err := handle.Seed(Seed); err != nil {
			return errors.Wrap(err, "could not seed environment")
		}

		space, err := handle.ActionSpace()
		if err != nil {
			return errors.Wrap(err, "could not get action space")
		}
		actionSpace, err = ActionCount(space)
		if err != nil {
			return err
		}

		space, err = handle.ObservationSpace()
		if err != nil {
			return errors.Wrap(err, "could not get observation space")
		}
		observationSpace, err = ObservationShape(space)
		return err
	})
	if err != nil {
		return nil, newError(Construction, "new", err)
	}

	e.handle = handle
	e.actionSpace = actionSpace
	e.observationSpace = observationSpace
	return e, nil
}

// Reset resets the environment and returns the starting observation
func (e *Env) Reset() (*tensor.Dense, error) {
	var obs []float64
	err := e.gateway.Do(func() error {
		raw, err := e.handle.Reset()
		if err != nil {
			return newError(ExternalCall, "reset", err)
		}

		obs, err = Float64s(raw)
		if err != nil {
			return newError(Conversion, "reset",
				errors.Wrap(err, "observation"))
		}
		return nil
	})
	if err != nil {
		return nil, classify(ExternalCall, "reset", err)
	}

	return tensorutils.FloatVec(obs), nil
}

// Step takes a single environmental step with the discrete action.
// The action is not range checked; an illegal action is forwarded to
// the runtime, and whatever the runtime reports is returned as an
// *Error of Kind ExternalCall.
//
// The Action of the returned Step is always the action argument.
func (e *Env) Step(action int) (ts.Step, error) {
	var (
		obs    []float64
		reward float64
		done   bool
	)
	err := e.gateway.Do(func() error {
		raw, err := e.handle.Step(action)
		if err != nil {
			return newError(ExternalCall, "step", err)
		}

		rawObs, rawReward, rawDone, err := StepTuple(raw)
		if err != nil {
			return newError(Conversion, "step", err)
		}

		if obs, err = Float64s(rawObs); err != nil {
			return newError(Conversion, "step",
				errors.Wrap(err, "observation"))
		}
		if reward, err = Float64(rawReward); err != nil {
			return newError(Conversion, "step", errors.Wrap(err, "reward"))
		}
		if done, err = Bool(rawDone); err != nil {
			return newError(Conversion, "step", errors.Wrap(err, "done"))
		}
		return nil
	})
	if err != nil {
		return ts.Step{}, classify(ExternalCall, "step", err)
	}

	return ts.New(tensorutils.FloatVec(obs), action, reward, done), nil
}

// ActionSpace returns the number of discrete actions in the environment
func (e *Env) ActionSpace() int {
	return e.actionSpace
}

// ObservationSpace returns the shape of the environment's observations
func (e *Env) ObservationSpace() []int {
	shape := make([]int, len(e.observationSpace))
	copy(shape, e.observationSpace)
	return shape
}

// classify returns err if it is already an *Error, otherwise it wraps
// err, which was raised by the Gateway, in an *Error of Kind kind
func classify(kind Kind, op string, err error) error {
	if e, ok := err.(*Error); ok {
		return e
	}
	return newError(kind, op, err)
}
