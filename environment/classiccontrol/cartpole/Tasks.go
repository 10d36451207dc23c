package cartpole

import (
	"math"

	env "github.com/samuelfneumann/gymenv/environment"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r1"
)

const (
	// FailAngle is the pole angle, in radians, past which the pole has
	// fallen
	FailAngle float64 = 12 * 2 * math.Pi / 360

	// FailPosition is the cart position past which the cart has left
	// the track
	FailPosition float64 = 2.4
)

// Balance implements the classic control Cartpole Balance task. In this
// Task, the goal of the agent is to balance the pole on the cart in
// an upright position for as long as possible.
//
// The reward is +1 for every timestep, including the timestep on which
// the pole falls.
//
// Episodes end after a step limit, after the pole has fallen past
// some angle threshold θ, or after the cart has left the track.
type Balance struct {
	env.Starter
	stepLimiter  env.StepLimit
	stateLimiter *env.IntervalLimit
}

// NewBalance creates and returns a new Balance task
func NewBalance(s env.Starter, episodeSteps int) *Balance {
	stepLimiter := env.NewStepLimit(episodeSteps)

	legal := []r1.Interval{
		{Min: -FailPosition, Max: FailPosition},
		{Min: -FailAngle, Max: FailAngle},
	}
	stateLimiter := env.NewIntervalLimit(legal, []int{0, 2})

	return &Balance{s, stepLimiter, stateLimiter}
}

// End returns whether the episode has ended after transitioning to
// state
func (b *Balance) End(state mat.Vector, steps int) bool {
	return env.AnyEnd(state, steps, b.stateLimiter, b.stepLimiter)
}

// GetReward returns the reward for transitioning to nextState
func (b *Balance) GetReward(mat.Vector) float64 {
	return 1.0
}
