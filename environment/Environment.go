// Package environment outlines the interfaces and structs needed to
// implement native Go environments. Native environments are served to
// package gym through package registry.
package environment

import (
	"gonum.org/v1/gonum/mat"
)

// Starter implements a distribution of starting states and samples
// starting states for environments
type Starter interface {
	Start() *mat.VecDense

	// Seed re-seeds the distribution of starting states
	Seed(seed uint64)
}

// Ender determines whether an episode has ended, given the state that
// was just transitioned to and the number of steps taken so far in the
// episode
type Ender interface {
	End(state mat.Vector, steps int) bool
}

// Environment implements a simulated environment with discrete
// actions. Environments are not safe for concurrent use.
type Environment interface {
	// Seed seeds the environment's source of randomness
	Seed(seed uint64)

	// Reset starts a new episode and returns the starting observation
	Reset() (mat.Vector, error)

	// Step takes one environmental step with a discrete action and
	// returns the next observation, the reward, and whether the episode
	// has ended. Illegal actions result in an error.
	Step(action int) (mat.Vector, float64, bool, error)

	ActionSpec() Spec
	ObservationSpec() Spec
}
