// Package acrobot implements the Acrobot classic control environment
package acrobot

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
	env "github.com/samuelfneumann/gymenv/environment"
	"github.com/samuelfneumann/gymenv/utils/floatutils"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r1"
)

// dynamicsType determines whether the dynamics of the environment
// follows those defined in the NeurIPS paper or the RL book.
type dynamicsType bool

const (
	// Dynamics of environment is consistent with RL book
	book dynamicsType = true

	// Dynamics of environment is consistent with NeurIPS paper
	nips dynamicsType = false
)

const (
	dt float64 = 0.2

	// Physical constants
	LinkLength1 float64 = 1.0 // Metres, length of link 1
	LinkLength2 float64 = 1.0 // Metres, length of link 2
	LinkMass1   float64 = 1.0 // Kg, mass of link 1
	LinkMass2   float64 = 1.0 // Kg, mass of link 2
	LinkCOMPos1 float64 = 0.5 // Metres, centre of mass link 1
	LinkCOMPos2 float64 = 0.5 // Metres, centre of mass link 2
	LinkMOI     float64 = 1.0 // Moments of inertia for both links
	MaxVel1     float64 = 4 * math.Pi
	MaxVel2     float64 = 9 * math.Pi
	Gravity     float64 = 9.8
	MaxAngle    float64 = math.Pi
	MinTorque   float64 = -1.0
	MaxTorque   float64 = 1.0

	// ObservationDims is the length of observations: the cosine and
	// sine of both angles followed by both angular velocities
	ObservationDims int = 6

	// Discrete Actions
	MinDiscreteAction int = 0 // Applies MinTorque
	MaxDiscreteAction int = 2 // Applies MaxTorque

	stateDims int = 4

	BookOrNips dynamicsType = book
)

// Acrobot implements the classic control environment Acrobot with
// discrete actions. A double linked pendulum is attached to a single
// actuated fixed base, and torque can be applied to the joint between
// the links to swing the acrobot around.
//
// The underlying state is 4-dimensional:
//
//	s = [θ1, θ2, θ̇1, θ̇2], where:
//	θ1 = angle of the first link measured from the negative y-axis
//	θ2 = angle of the second link relative to the first
//	θ̇1 = angular velocity of the first link
//	θ̇2 = angular velocity of the second link
//
// Angles are wrapped to stay within [-π, π] and angular velocities
// are clipped to [-MaxVel1, MaxVel1] and [-MaxVel2, MaxVel2].
// Observations are 6-dimensional:
//
//	o = [cos θ1, sin θ1, cos θ2, sin θ2, θ̇1, θ̇2]
//
// Actions are discrete, consisting of the torque to apply:
//
//	Action		Meaning
//	  0			Apply MinTorque
//	  1			Apply no torque
//	  2			Apply MaxTorque
//
// Illegal actions result in an error. The environment is not safe for
// concurrent use.
//
// Acrobot implements the environment.Environment interface
type Acrobot struct {
	*SwingUp
	angleBounds     r1.Interval
	velocity1Bounds r1.Interval
	velocity2Bounds r1.Interval
	state           *mat.VecDense
	steps           int
	done            bool
}

// New creates a new Acrobot environment with the SwingUp task. The
// environment must be Reset before it is stepped.
func New(t *SwingUp) *Acrobot {
	return &Acrobot{
		SwingUp:         t,
		angleBounds:     r1.Interval{Min: -MaxAngle, Max: MaxAngle},
		velocity1Bounds: r1.Interval{Min: -MaxVel1, Max: MaxVel1},
		velocity2Bounds: r1.Interval{Min: -MaxVel2, Max: MaxVel2},
	}
}

// NewStarter returns the default Acrobot Starter, which samples each
// state feature uniformly from [-0.1, 0.1]
func NewStarter(seed uint64) env.Starter {
	bounds := make([]r1.Interval, stateDims)
	for i := range bounds {
		bounds[i] = r1.Interval{Min: -0.1, Max: 0.1}
	}
	return env.NewUniformStarter(bounds, seed)
}

// ObservationSpec returns the observation specification of the
// environment
func (a *Acrobot) ObservationSpec() env.Spec {
	lowerBound := mat.NewVecDense(ObservationDims, []float64{-1, -1, -1, -1,
		-MaxVel1, -MaxVel2})
	upperBound := mat.NewVecDense(ObservationDims, []float64{1, 1, 1, 1,
		MaxVel1, MaxVel2})

	return env.NewSpec([]int{ObservationDims}, env.Observation, lowerBound,
		upperBound, env.Continuous)
}

// ActionSpec returns the action specification of the environment
func (a *Acrobot) ActionSpec() env.Spec {
	lowerBound := mat.NewVecDense(1, []float64{float64(MinDiscreteAction)})
	upperBound := mat.NewVecDense(1, []float64{float64(MaxDiscreteAction)})

	return env.NewSpec([]int{1}, env.Action, lowerBound, upperBound,
		env.Discrete)
}

// Reset resets the environment and returns the observation of a
// starting state drawn from the environment Starter
func (a *Acrobot) Reset() (mat.Vector, error) {
	a.state = a.Start()
	a.steps = 0
	a.done = false

	return observation(a.state), nil
}

// Step takes one environmental step given action act and returns the
// next observation, the reward, and whether or not the episode has
// ended. Legal actions are in the set {0, 1, 2}.
func (a *Acrobot) Step(act int) (mat.Vector, float64, bool, error) {
	if act < MinDiscreteAction || act > MaxDiscreteAction {
		return nil, 0, false, errors.Errorf("step: illegal action %v "+
			"∉ {0, 1, 2}", act)
	}
	if a.state == nil {
		return nil, 0, false, errors.New("step: cannot step before reset")
	}

	torque := floatutils.Clip(float64(act-1), MinTorque, MaxTorque)
	a.state = a.nextState(torque)
	a.steps++

	var reward float64
	if !a.done {
		reward = a.GetReward(a.state)
		a.done = a.End(a.state, a.steps)
	}

	return observation(a.state), reward, a.done, nil
}

// nextState integrates the dynamics over one timestep with torque
// applied and returns the resulting state
func (a *Acrobot) nextState(torque float64) *mat.VecDense {
	sAugmented := mat.NewVecDense(stateDims+1, nil)
	sAugmented.SliceVec(0, stateDims).(*mat.VecDense).CopyVec(a.state)
	sAugmented.SetVec(stateDims, torque)

	integrated := rk4(dsDt, sAugmented, []float64{0.0, dt})
	r, _ := integrated.Dims()
	last := integrated.RawRowView(r - 1)

	ns := mat.NewVecDense(stateDims, nil)
	ns.SetVec(0, floatutils.WrapInterval(last[0], a.angleBounds))
	ns.SetVec(1, floatutils.WrapInterval(last[1], a.angleBounds))
	ns.SetVec(2, floatutils.ClipInterval(last[2], a.velocity1Bounds))
	ns.SetVec(3, floatutils.ClipInterval(last[3], a.velocity2Bounds))

	return ns
}

// observation returns the observation of state
func observation(state mat.Vector) *mat.VecDense {
	theta1, theta2 := state.AtVec(0), state.AtVec(1)
	return mat.NewVecDense(ObservationDims, []float64{
		math.Cos(theta1), math.Sin(theta1),
		math.Cos(theta2), math.Sin(theta2),
		state.AtVec(2), state.AtVec(3),
	})
}

func (a *Acrobot) String() string {
	if a.state == nil {
		return "Acrobot  |  not reset"
	}

	return fmt.Sprintf("Acrobot  |  θ1: %v  |  θ2: %v  |  θ̇1: %v  |  θ̇2: %v",
		a.state.AtVec(0), a.state.AtVec(1), a.state.AtVec(2),
		a.state.AtVec(3))
}

// dsDt calculates ds/dt for the environment, where s is the state
// augmented with the applied torque
func dsDt(sAugmented *mat.VecDense, _ float64) []float64 {
	m1 := LinkMass1
	m2 := LinkMass2
	l1 := LinkLength1
	lc1 := LinkCOMPos1
	lc2 := LinkCOMPos2
	i1 := LinkMOI
	i2 := LinkMOI
	g := Gravity

	torque := sAugmented.AtVec(stateDims)

	theta1 := sAugmented.AtVec(0)
	theta2 := sAugmented.AtVec(1)
	dtheta1 := sAugmented.AtVec(2)
	dtheta2 := sAugmented.AtVec(3)

	d1 := (m1*math.Pow(lc1, 2) +
		m2*(math.Pow(l1, 2)+math.Pow(lc2, 2)+2*l1*lc2*math.Cos(theta2)) +
		i1 + i2)

	d2 := m2*(math.Pow(lc2, 2)+l1*lc2*math.Cos(theta2)) + i2

	phi2 := m2 * lc2 * g * math.Cos(theta1+theta2-(math.Pi/2.0))
	phi1 := (-m2*l1*lc2*math.Pow(dtheta2, 2)*math.Sin(theta2) -
		2*m2*l1*lc2*dtheta2*dtheta1*math.Sin(theta2) +
		(m1*lc1+m2*l1)*g*math.Cos(theta1-(math.Pi/2.0)) +
		phi2)

	var ddtheta2 float64
	if BookOrNips == nips {
		ddtheta2 = (torque + d2/d1*phi1 - phi2) / (m2*math.Pow(lc2, 2) + i2 -
			math.Pow(d2, 2)/d1)
	} else {
		ddtheta2 = (torque + d2/d1*phi1 - m2*l1*lc2*math.Pow(dtheta1, 2)*
			math.Sin(theta2) - phi2) /
			(m2*math.Pow(lc2, 2) + i2 - math.Pow(d2, 2)/d1)
	}
	ddtheta1 := -(d2*ddtheta2 + phi1) / d1

	// Torque is constant over the timestep
	return []float64{dtheta1, dtheta2, ddtheta1, ddtheta2, 0.0}
}

// rk4 integrates an n-dimensional system of ODEs using 4-th order
// Runge-Kutta, returning the state at each time in t as the rows of a
// matrix.
//
// Adapted from OpenAI Gym Acrobot:
// https://github.com/openai/gym/blob/7c9ae6d14087fe50714d59bc36b1797560
// 961710/gym/envs/classic_control/acrobot.py
func rk4(derivs func(*mat.VecDense, float64) []float64, y0 *mat.VecDense,
	t []float64) *mat.Dense {
	yout := mat.NewDense(len(t), y0.Len(), nil)
	yout.SetRow(0, y0.RawVector().Data)

	input := mat.NewVecDense(y0.Len(), nil)
	for i := 0; i < len(t)-1; i++ {
		thist := t[i]
		dt := t[i+1] - thist
		dt2 := dt / 2.0

		y := yout.RowView(i).(*mat.VecDense)

		k1 := mat.NewVecDense(y.Len(), derivs(y, thist))

		input.AddScaledVec(y, dt2, k1)
		k2 := mat.NewVecDense(y.Len(), derivs(input, thist+dt2))

		input.AddScaledVec(y, dt2, k2)
		k3 := mat.NewVecDense(y.Len(), derivs(input, thist+dt2))

		input.AddScaledVec(y, dt, k3)
		k4 := mat.NewVecDense(y.Len(), derivs(input, thist+dt))

		row := mat.NewVecDense(y.Len(), nil)
		row.CopyVec(k1)
		row.AddScaledVec(row, 2.0, k2)
		row.AddScaledVec(row, 2.0, k3)
		row.AddVec(row, k4)
		row.AddScaledVec(y, dt/6.0, row)

		yout.SetRow(i+1, row.RawVector().Data)
	}
	return yout
}
