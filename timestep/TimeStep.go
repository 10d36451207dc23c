// Package timestep implements timesteps of the agent-environment interaction
package timestep

import (
	"fmt"

	"gorgonia.org/tensor"
)

// Step packages together the outcome of taking a single action in an
// environment. A Step is produced fresh by every environmental step
// and should be treated as immutable.
type Step struct {
	// Observation is the observation of the environment after the
	// action was taken
	Observation *tensor.Dense

	// Action is the discrete action that produced Observation, as given
	// by the caller
	Action int

	Reward float64
	Done   bool
}

// New returns a new Step
func New(obs *tensor.Dense, action int, reward float64, done bool) Step {
	return Step{
		Observation: obs,
		Action:      action,
		Reward:      reward,
		Done:        done,
	}
}

// Last returns whether a Step is the last in an episode
func (s Step) Last() bool {
	return s.Done
}

// CopyWithObs returns a new Step with the same action, reward, and
// episode termination flag as s, but with an observation that is an
// independent copy of obs. Modifying the observation of the returned
// Step does not modify obs, and vice versa.
func (s Step) CopyWithObs(obs *tensor.Dense) Step {
	var clone *tensor.Dense
	if obs != nil {
		clone = obs.Clone().(*tensor.Dense)
	}

	return Step{
		Observation: clone,
		Action:      s.Action,
		Reward:      s.Reward,
		Done:        s.Done,
	}
}

func (s Step) String() string {
	str := "Step | Action: %v  |  Reward:  %.2f  |  Done: %v  |  " +
		"Observation:  %v"

	var obs interface{}
	if s.Observation != nil {
		obs = s.Observation.Data()
	}
	return fmt.Sprintf(str, s.Action, s.Reward, s.Done, obs)
}
