// Package cartpole implements the Cartpole classic control environment
package cartpole

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
	env "github.com/samuelfneumann/gymenv/environment"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r1"
)

const (
	// Physical constants
	Gravity        float64 = 9.8
	CartMass       float64 = 1.0
	PoleMass       float64 = 0.1
	TotalMass      float64 = CartMass + PoleMass
	HalfPoleLength float64 = 0.5  // half of pole length
	ForceMag       float64 = 10.0 // Magnification of force applied
	Dt             float64 = 0.02 // seconds between state updates

	// Features of the observation vector
	ObservationDims int = 4

	// Discrete Actions
	MinDiscreteAction int = 0
	MaxDiscreteAction int = 1

	// Bounds (+/-) reported by the observation spec. Episodes end well
	// before these bounds are reached.
	PositionBounds float64 = 2 * FailPosition
	AngleBounds    float64 = 2 * FailAngle
	SpeedBounds    float64 = math.MaxFloat64
)

// Cartpole implements the classic control environment Cartpole. In
// this environment, a pole is attached to a cart, which can move
// horizontally. Gravity pulls the pole downwards so that balancing it
// in an upright position is very difficult.
//
// The state features are continuous and consist of the cart's x
// position and speed, as well as the pole's angle from the positive
// y-axis and the pole's angular velocity. Starting states are drawn
// uniformly from [-0.05, 0.05] for each feature.
//
// Actions are discrete, consisting of the direction to apply
// horizontal force to the cart:
//
//	Action		Meaning
//	  0			Apply force left
//	  1			Apply force right
//
// Illegal actions result in an error. The environment is not safe for
// concurrent use.
//
// Cartpole implements the environment.Environment interface
type Cartpole struct {
	*Balance
	state *mat.VecDense
	steps int
	done  bool

	gravity        float64
	forceMag       float64
	poleMass       float64
	halfPoleLength float64
	cartMass       float64
	dt             float64
}

// New constructs a new Cartpole environment with the Balance task.
// The environment must be Reset before it is stepped.
func New(t *Balance) *Cartpole {
	return &Cartpole{
		Balance:        t,
		gravity:        Gravity,
		forceMag:       ForceMag,
		poleMass:       PoleMass,
		halfPoleLength: HalfPoleLength,
		cartMass:       CartMass,
		dt:             Dt,
	}
}

// NewStarter returns the default Cartpole Starter
func NewStarter(seed uint64) env.Starter {
	bounds := make([]r1.Interval, ObservationDims)
	for i := range bounds {
		bounds[i] = r1.Interval{Min: -0.05, Max: 0.05}
	}
	return env.NewUniformStarter(bounds, seed)
}

// Reset resets the environment and returns a starting state drawn from
// the environment Starter
func (c *Cartpole) Reset() (mat.Vector, error) {
	c.state = c.Start()
	c.steps = 0
	c.done = false

	return mat.VecDenseCopyOf(c.state), nil
}

// ActionSpec returns the action specification of the environment
func (c *Cartpole) ActionSpec() env.Spec {
	lowerBound := mat.NewVecDense(1, []float64{float64(MinDiscreteAction)})
	upperBound := mat.NewVecDense(1, []float64{float64(MaxDiscreteAction)})

	return env.NewSpec([]int{1}, env.Action, lowerBound, upperBound,
		env.Discrete)
}

// ObservationSpec returns the observation specification of the
// environment
func (c *Cartpole) ObservationSpec() env.Spec {
	lower := []float64{-PositionBounds, -SpeedBounds, -AngleBounds,
		-SpeedBounds}
	upper := []float64{PositionBounds, SpeedBounds, AngleBounds,
		SpeedBounds}

	return env.NewSpec([]int{ObservationDims}, env.Observation,
		mat.NewVecDense(ObservationDims, lower),
		mat.NewVecDense(ObservationDims, upper), env.Continuous)
}

// Step takes one environmental step given action a and returns the
// next observation, the reward, and whether or not the episode has
// ended. Legal actions are in the set {0, 1}.
//
// Stepping after an episode has ended continues to simulate the
// system, but all further rewards are 0.
func (c *Cartpole) Step(a int) (mat.Vector, float64, bool, error) {
	if a < MinDiscreteAction || a > MaxDiscreteAction {
		return nil, 0, false, errors.Errorf("step: illegal action %v \u2209 "+
			"{0, 1}", a)
	}
	if c.state == nil {
		return nil, 0, false, errors.New("step: cannot step before reset")
	}

	// Convert action (0, 1) to a force direction (-1, 1)
	force := c.forceMag
	if a == 0 {
		force = -c.forceMag
	}

	x, xDot := c.state.AtVec(0), c.state.AtVec(1)
	th, thDot := c.state.AtVec(2), c.state.AtVec(3)

	cosTheta := math.Cos(th)
	sinTheta := math.Sin(th)

	totalMass := c.poleMass + c.cartMass
	poleMassLength := c.poleMass * c.halfPoleLength

	temp := (force + poleMassLength*thDot*thDot*sinTheta) / totalMass
	thAcc := (c.gravity*sinTheta - cosTheta*temp) / (c.halfPoleLength *
		(4.0/3.0 - c.poleMass*cosTheta*cosTheta/totalMass))
	xAcc := temp - poleMassLength*thAcc*cosTheta/totalMass

	// Update state variables using Euler kinematic integration
	x += c.dt * xDot
	xDot += c.dt * xAcc
	th += c.dt * thDot
	thDot += c.dt * thAcc

	c.state = mat.NewVecDense(ObservationDims, []float64{x, xDot, th, thDot})
	c.steps++

	var reward float64
	if !c.done {
		reward = c.GetReward(c.state)
		c.done = c.End(c.state, c.steps)
	}

	return mat.VecDenseCopyOf(c.state), reward, c.done, nil
}

func (c *Cartpole) String() string {
	if c.state == nil {
		return "Cartpole  |  not reset"
	}

	msg := "Cartpole  |  Position: %v  | Speed: %v  |  Angle: %v" +
		"  |  Angular Velocity: %v"

	position, speed := c.state.AtVec(0), c.state.AtVec(1)
	angle, velocity := c.state.AtVec(2), c.state.AtVec(3)

	return fmt.Sprintf(msg, position, speed, angle, velocity)
}
