package environment

import "gonum.org/v1/gonum/mat"

// StepLimit implements the Ender interface to end episodes at specific
// timestep limits
type StepLimit struct {
	episodeSteps int
}

// NewStepLimit creates and returns a new step limit
func NewStepLimit(episodeSteps int) StepLimit {
	return StepLimit{episodeSteps}
}

// End returns whether the episode has reached the step limit
func (s StepLimit) End(_ mat.Vector, steps int) bool {
	return steps >= s.episodeSteps
}
