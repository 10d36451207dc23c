package acrobot

import (
	"math"

	env "github.com/samuelfneumann/gymenv/environment"
	"gonum.org/v1/gonum/mat"
)

const (
	// GoalHeight is the height above the fixed base that the tip of
	// the second link must reach. In the classic control problem this
	// is one link length.
	GoalHeight float64 = LinkLength1

	// maxReward is given on the timestep that reaches the goal, and
	// minReward on all other timesteps
	maxReward, minReward float64 = 0.0, -1.0
)

// SwingUp implements the classic control Acrobot task where the
// agent must swing the tip of the second link above some set
// height.
//
// The task is a cost-to-goal task:
// A reward of -1.0 is given on all timesteps except for the timestep
// which transitions the acrobot's second link above the goal line.
// On this timestep, a reward of 0.0 is given.
//
// Episodes are ended when the acrobot's second link swings above the
// goal height or a step limit is reached.
type SwingUp struct {
	env.Starter
	stepEnder  env.StepLimit
	goalEnder  *env.FunctionEnder
	goalHeight float64
}

// NewSwingUp returns a new SwingUp task with start state distribution
// defined by s, episodic step limit episodeSteps, and goal height
// goalHeight. For the classic control problem, the goal height
// should be set to GoalHeight.
func NewSwingUp(s env.Starter, episodeSteps int,
	goalHeight float64) *SwingUp {
	task := &SwingUp{Starter: s, goalHeight: goalHeight}
	task.stepEnder = env.NewStepLimit(episodeSteps)
	task.goalEnder = env.NewFunctionEnder(task.AtGoal)
	return task
}

// AtGoal returns whether the argument state is a goal state
func (s *SwingUp) AtGoal(state mat.Vector) bool {
	theta1, theta2 := state.AtVec(0), state.AtVec(1)
	return -math.Cos(theta1)-math.Cos(theta2+theta1) > s.goalHeight
}

// End returns whether the episode has ended after transitioning to
// state
func (s *SwingUp) End(state mat.Vector, steps int) bool {
	return env.AnyEnd(state, steps, s.goalEnder, s.stepEnder)
}

// GetReward returns the reward for transitioning to nextState
func (s *SwingUp) GetReward(nextState mat.Vector) float64 {
	if s.AtGoal(nextState) {
		return maxReward
	}
	return minReward
}
