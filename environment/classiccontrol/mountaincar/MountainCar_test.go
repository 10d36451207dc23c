package mountaincar_test

import (
	"testing"

	"github.com/samuelfneumann/gymenv/environment/classiccontrol/mountaincar"
)

func newMountainCar(steps int) *mountaincar.MountainCar {
	task := mountaincar.NewGoal(mountaincar.NewStarter(7), steps,
		mountaincar.GoalPosition)
	return mountaincar.New(task)
}

func TestReset(t *testing.T) {
	m := newMountainCar(200)

	for i := 0; i < 20; i++ {
		obs, err := m.Reset()
		if err != nil {
			t.Fatalf("reset: %v", err)
		}
		if pos := obs.AtVec(0); pos < -0.6 || pos > -0.4 {
			t.Errorf("reset: position %v outside [-0.6, -0.4]", pos)
		}
		if vel := obs.AtVec(1); vel != 0 {
			t.Errorf("reset: \n\twant(%v)\n\thave(%v)", 0.0, vel)
		}
	}
}

func TestStep(t *testing.T) {
	m := newMountainCar(200)
	if _, err := m.Reset(); err != nil {
		t.Fatalf("reset: %v", err)
	}

	var done bool
	steps := 0
	for !done {
		obs, reward, d, err := m.Step(1)
		if err != nil {
			t.Fatalf("step: %v", err)
		}
		if reward != -1.0 {
			t.Errorf("step: illegal reward \n\twant(%v)\n\thave(%v)", -1.0,
				reward)
		}
		if pos := obs.AtVec(0); pos < mountaincar.MinPosition ||
			pos > mountaincar.MaxPosition {
			t.Errorf("step: position %v out of bounds", pos)
		}
		if vel := obs.AtVec(1); vel < -mountaincar.MaxSpeed ||
			vel > mountaincar.MaxSpeed {
			t.Errorf("step: velocity %v out of bounds", vel)
		}
		done = d
		steps++
	}

	// Doing nothing never reaches the goal, so only the step limit ends
	// the episode
	if steps != 200 {
		t.Errorf("step: illegal episode length \n\twant(%d)\n\thave(%d)",
			200, steps)
	}
}

func TestIllegalAction(t *testing.T) {
	m := newMountainCar(200)
	if _, err := m.Reset(); err != nil {
		t.Fatalf("reset: %v", err)
	}
	for _, a := range []int{-1, 3} {
		if _, _, _, err := m.Step(a); err == nil {
			t.Errorf("step(%d): expected error for illegal action", a)
		}
	}
}

func TestAtGoal(t *testing.T) {
	m := newMountainCar(200)
	if n := m.ActionSpec().N(); n != 3 {
		t.Errorf("actionSpec: \n\twant(%d)\n\thave(%d)", 3, n)
	}

	obs, err := m.Reset()
	if err != nil {
		t.Fatalf("reset: %v", err)
	}
	if m.AtGoal(obs) {
		t.Error("atGoal: starting state should not be a goal state")
	}
}
