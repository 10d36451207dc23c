package environment_test

import (
	"math"
	"testing"

	env "github.com/samuelfneumann/gymenv/environment"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r1"
)

func TestUniformStarter(t *testing.T) {
	bounds := []r1.Interval{{Min: -1, Max: 1}, {Min: 2, Max: 3}}
	s := env.NewUniformStarter(bounds, 5)

	for i := 0; i < 100; i++ {
		start := s.Start()
		for j, b := range bounds {
			if v := start.AtVec(j); v < b.Min || v > b.Max {
				t.Errorf("start: feature %d = %v outside %v", j, v, b)
			}
		}
	}

	// Re-seeding reproduces the same sequence of starts
	s.Seed(11)
	first := s.Start()
	s.Seed(11)
	if second := s.Start(); !mat.Equal(first, second) {
		t.Errorf("seed: \n\twant(%v)\n\thave(%v)", mat.Formatted(first.T()),
			mat.Formatted(second.T()))
	}
}

func TestEnders(t *testing.T) {
	state := mat.NewVecDense(2, []float64{0.5, -3})

	steps := env.NewStepLimit(10)
	if steps.End(state, 9) || !steps.End(state, 10) {
		t.Error("stepLimit: should end exactly at the step limit")
	}

	inside := env.NewIntervalLimit([]r1.Interval{{Min: 0, Max: 1}}, []int{0})
	if inside.End(state, 0) {
		t.Error("intervalLimit: feature within interval should not end")
	}
	outside := env.NewIntervalLimit([]r1.Interval{{Min: -1, Max: 1}},
		[]int{1})
	if !outside.End(state, 0) {
		t.Error("intervalLimit: feature outside interval should end")
	}

	negative := env.NewFunctionEnder(func(v mat.Vector) bool {
		return math.Signbit(v.AtVec(1))
	})
	if !negative.End(state, 0) {
		t.Error("functionEnder: should end when function returns true")
	}

	if env.AnyEnd(state, 0, steps, inside) {
		t.Error("anyEnd: no ender should end the episode")
	}
	if !env.AnyEnd(state, 0, steps, inside, outside) {
		t.Error("anyEnd: one ender should end the episode")
	}
}

func TestSpec(t *testing.T) {
	low := mat.NewVecDense(1, []float64{0})
	high := mat.NewVecDense(1, []float64{4})
	spec := env.NewSpec([]int{1}, env.Action, low, high, env.Discrete)

	if n := spec.N(); n != 5 {
		t.Errorf("n: \n\twant(%d)\n\thave(%d)", 5, n)
	}

	defer func() {
		if r := recover(); r == nil {
			t.Error("newSpec: expected panic for mismatched bounds")
		}
	}()
	env.NewSpec([]int{2}, env.Observation, low, high, env.Continuous)
}
