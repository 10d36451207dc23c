package mountaincar

import (
	env "github.com/samuelfneumann/gymenv/environment"
	"gonum.org/v1/gonum/mat"
)

const (
	// GoalPosition is the x position of the goal at the top of the hill
	GoalPosition float64 = 0.5
)

// Goal implements the classic control task of reaching a goal on
// Mountain Car. In this task, the agent must learn to drive the car
// up the hill and reach the goal state. Since the car is underpowered,
// it must rock back and forth from hill to hill until it reaches the
// goal.
//
// Rewards are -1 on each timestep, including the timestep which
// transitions the car to the goal.
//
// Episodes end after a step limit or when the car reaches the goal
// state.
type Goal struct {
	env.Starter
	goalEnder *env.FunctionEnder
	stepEnder env.StepLimit
	goalX     float64 // x position of goal
}

// NewGoal creates and returns a new Goal struct given a Starter, which
// determines the starting states; the maximum number of episode
// steps; and the goal x position.
func NewGoal(s env.Starter, episodeSteps int, goalX float64) *Goal {
	g := &Goal{Starter: s, goalX: goalX}
	g.stepEnder = env.NewStepLimit(episodeSteps)
	g.goalEnder = env.NewFunctionEnder(func(state mat.Vector) bool {
		return g.AtGoal(state)
	})
	return g
}

// AtGoal returns whether the argument state is a goal state
func (g *Goal) AtGoal(state mat.Vector) bool {
	return state.AtVec(0) >= g.goalX
}

// End returns whether the episode has ended after transitioning to
// state
func (g *Goal) End(state mat.Vector, steps int) bool {
	return env.AnyEnd(state, steps, g.goalEnder, g.stepEnder)
}

// GetReward returns the reward for transitioning to nextState
func (g *Goal) GetReward(mat.Vector) float64 {
	return -1.0
}
