// Package mountaincar implements the Mountain Car classic control
// environment
package mountaincar

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
	env "github.com/samuelfneumann/gymenv/environment"
	"github.com/samuelfneumann/gymenv/utils/floatutils"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r1"
)

const (
	MinPosition float64 = -1.2
	MaxPosition float64 = 0.6
	MaxSpeed    float64 = 0.07
	Force       float64 = 0.001 // Engine power
	Gravity     float64 = 0.0025

	ObservationDims int = 2

	// Discrete Actions
	MinDiscreteAction int = 0
	MaxDiscreteAction int = 2
)

// MountainCar implements the classic control environment Mountain Car
// with discrete actions. An underpowered car sits in a valley and must
// rock back and forth to drive up the hill on the right.
//
// The state features are continuous and consist of the car's x
// position and velocity, bounded by the constants defined in this
// package.
//
// Actions are discrete, consisting of the direction to accelerate:
//
//	Action		Meaning
//	  0			Accelerate left
//	  1			Do nothing
//	  2			Accelerate right
//
// Illegal actions result in an error. The environment is not safe for
// concurrent use.
//
// MountainCar implements the environment.Environment interface
type MountainCar struct {
	*Goal
	positionBounds r1.Interval
	speedBounds    r1.Interval
	state          *mat.VecDense
	steps          int
	done           bool
	force          float64
	gravity        float64
}

// New creates a new Mountain Car environment with the Goal task. The
// environment must be Reset before it is stepped.
func New(t *Goal) *MountainCar {
	return &MountainCar{
		Goal:           t,
		positionBounds: r1.Interval{Min: MinPosition, Max: MaxPosition},
		speedBounds:    r1.Interval{Min: -MaxSpeed, Max: MaxSpeed},
		force:          Force,
		gravity:        Gravity,
	}
}

// NewStarter returns the default Mountain Car Starter, which samples
// the position uniformly from [-0.6, -0.4] with zero velocity
func NewStarter(seed uint64) env.Starter {
	bounds := []r1.Interval{{Min: -0.6, Max: -0.4}, {Min: 0.0, Max: 0.0}}
	return env.NewUniformStarter(bounds, seed)
}

// ObservationSpec returns the observation specification of the
// environment
func (m *MountainCar) ObservationSpec() env.Spec {
	lowerBound := mat.NewVecDense(ObservationDims,
		[]float64{m.positionBounds.Min, m.speedBounds.Min})
	upperBound := mat.NewVecDense(ObservationDims,
		[]float64{m.positionBounds.Max, m.speedBounds.Max})

	return env.NewSpec([]int{ObservationDims}, env.Observation, lowerBound,
		upperBound, env.Continuous)
}

// ActionSpec returns the action specification of the environment
func (m *MountainCar) ActionSpec() env.Spec {
	lowerBound := mat.NewVecDense(1, []float64{float64(MinDiscreteAction)})
	upperBound := mat.NewVecDense(1, []float64{float64(MaxDiscreteAction)})

	return env.NewSpec([]int{1}, env.Action, lowerBound, upperBound,
		env.Discrete)
}

// Reset resets the environment and returns a starting state drawn from
// the environment Starter
func (m *MountainCar) Reset() (mat.Vector, error) {
	m.state = m.Start()
	m.steps = 0
	m.done = false

	return mat.VecDenseCopyOf(m.state), nil
}

// Step takes one environmental step given action a and returns the
// next observation, the reward, and whether or not the episode has
// ended. Legal actions are in the set {0, 1, 2}.
func (m *MountainCar) Step(a int) (mat.Vector, float64, bool, error) {
	if a < MinDiscreteAction || a > MaxDiscreteAction {
		return nil, 0, false, errors.Errorf("step: illegal action %v "+
			"\u2209 {0, 1, 2}", a)
	}
	if m.state == nil {
		return nil, 0, false, errors.New("step: cannot step before reset")
	}

	// Convert action (0, 1, 2) to a direction (-1, 0, 1)
	direction := float64(a - 1)

	position, velocity := m.state.AtVec(0), m.state.AtVec(1)

	velocity += direction*m.force - m.gravity*math.Cos(3*position)
	velocity = floatutils.ClipInterval(velocity, m.speedBounds)

	position += velocity
	position = floatutils.ClipInterval(position, m.positionBounds)

	// The left wall is inelastic
	if position <= m.positionBounds.Min && velocity < 0 {
		velocity = 0
	}

	m.state = mat.NewVecDense(ObservationDims, []float64{position, velocity})
	m.steps++

	var reward float64
	if !m.done {
		reward = m.GetReward(m.state)
		m.done = m.End(m.state, m.steps)
	}

	return mat.VecDenseCopyOf(m.state), reward, m.done, nil
}

func (m *MountainCar) String() string {
	if m.state == nil {
		return "MountainCar  |  not reset"
	}

	msg := "MountainCar  |  Position: %v  |  Velocity: %v"
	return fmt.Sprintf(msg, m.state.AtVec(0), m.state.AtVec(1))
}
