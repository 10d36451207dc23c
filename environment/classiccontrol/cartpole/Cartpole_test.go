package cartpole_test

import (
	"math"
	"testing"

	"github.com/samuelfneumann/gymenv/environment/classiccontrol/cartpole"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

func newCartpole(seed uint64, steps int) *cartpole.Cartpole {
	return cartpole.New(cartpole.NewBalance(cartpole.NewStarter(seed), steps))
}

func TestReset(t *testing.T) {
	c := newCartpole(1, 200)

	for i := 0; i < 20; i++ {
		obs, err := c.Reset()
		if err != nil {
			t.Fatalf("reset: %v", err)
		}
		if obs.Len() != cartpole.ObservationDims {
			t.Fatalf("reset: illegal observation length \n\twant(%d)"+
				"\n\thave(%d)", cartpole.ObservationDims, obs.Len())
		}
		for j := 0; j < obs.Len(); j++ {
			if math.Abs(obs.AtVec(j)) > 0.05 {
				t.Errorf("reset: feature %d = %v outside [-0.05, 0.05]", j,
					obs.AtVec(j))
			}
		}
	}
}

func TestSeed(t *testing.T) {
	first := newCartpole(10, 200)
	second := newCartpole(99, 200)
	second.Seed(10)

	obs1, _ := first.Reset()
	obs2, _ := second.Reset()
	if !mat.Equal(obs1, obs2) {
		t.Errorf("seed: same seed gave different starts \n\twant(%v)"+
			"\n\thave(%v)", mat.Formatted(obs1), mat.Formatted(obs2))
	}
}

func TestStepBeforeReset(t *testing.T) {
	c := newCartpole(1, 200)
	if _, _, _, err := c.Step(0); err == nil {
		t.Error("step: expected error when stepping before reset")
	}
}

func TestIllegalAction(t *testing.T) {
	c := newCartpole(1, 200)
	if _, err := c.Reset(); err != nil {
		t.Fatalf("reset: %v", err)
	}

	for _, a := range []int{-1, 2, 3} {
		if _, _, _, err := c.Step(a); err == nil {
			t.Errorf("step(%d): expected error for illegal action", a)
		}
	}
}

func TestPoleFalls(t *testing.T) {
	c := newCartpole(1, 500)
	if _, err := c.Reset(); err != nil {
		t.Fatalf("reset: %v", err)
	}

	// Always pushing in one direction topples the pole quickly
	var (
		steps int
		done  bool
		obs   mat.Vector
	)
	for !done {
		var (
			reward float64
			err    error
		)
		obs, reward, done, err = c.Step(1)
		if err != nil {
			t.Fatalf("step: %v", err)
		}
		if reward != 1.0 {
			t.Errorf("step: illegal reward \n\twant(%v)\n\thave(%v)", 1.0,
				reward)
		}
		steps++
		if steps > 100 {
			t.Fatal("step: pole should have fallen within 100 steps")
		}
	}

	if math.Abs(obs.AtVec(2)) <= cartpole.FailAngle &&
		math.Abs(obs.AtVec(0)) <= cartpole.FailPosition {
		t.Errorf("step: episode ended in a legal state %v",
			mat.Formatted(obs.T()))
	}

	// Rewards after the episode has ended are 0
	_, reward, done, err := c.Step(0)
	if err != nil {
		t.Fatalf("step: %v", err)
	}
	if reward != 0.0 || !done {
		t.Errorf("step: after end \n\twant(0, true)\n\thave(%v, %v)", reward,
			done)
	}
}

func TestStepLimit(t *testing.T) {
	c := newCartpole(1, 5)
	if _, err := c.Reset(); err != nil {
		t.Fatalf("reset: %v", err)
	}

	for i := 1; i <= 5; i++ {
		_, _, done, err := c.Step(i % 2)
		if err != nil {
			t.Fatalf("step: %v", err)
		}
		if done != (i == 5) {
			t.Errorf("step %d: \n\twant(%v)\n\thave(%v)", i, i == 5, done)
		}
	}
}

func TestSpecs(t *testing.T) {
	c := newCartpole(1, 200)

	if n := c.ActionSpec().N(); n != 2 {
		t.Errorf("actionSpec: \n\twant(%d)\n\thave(%d)", 2, n)
	}

	spec := c.ObservationSpec()
	if len(spec.Shape) != 1 || spec.Shape[0] != cartpole.ObservationDims {
		t.Errorf("observationSpec: illegal shape \n\twant([%d])\n\thave(%v)",
			cartpole.ObservationDims, spec.Shape)
	}
	low := spec.LowerBound.RawVector().Data
	high := spec.UpperBound.RawVector().Data
	for i := range low {
		if low[i] != -high[i] {
			t.Errorf("observationSpec: bounds should be symmetric, have "+
				"[%v, %v]", low[i], high[i])
		}
	}
	if !floats.Equal(low[:1], []float64{-cartpole.PositionBounds}) {
		t.Errorf("observationSpec: illegal position bound \n\twant(%v)"+
			"\n\thave(%v)", -cartpole.PositionBounds, low[0])
	}
}
