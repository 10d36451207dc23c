package acrobot_test

import (
	"math"
	"testing"

	"github.com/samuelfneumann/gymenv/environment/classiccontrol/acrobot"
	"gonum.org/v1/gonum/mat"
)

func newAcrobot(seed uint64, steps int) *acrobot.Acrobot {
	task := acrobot.NewSwingUp(acrobot.NewStarter(seed), steps,
		acrobot.GoalHeight)
	return acrobot.New(task)
}

func TestReset(t *testing.T) {
	a := newAcrobot(3, 500)

	for i := 0; i < 20; i++ {
		obs, err := a.Reset()
		if err != nil {
			t.Fatalf("reset: %v", err)
		}
		if obs.Len() != acrobot.ObservationDims {
			t.Fatalf("reset: illegal observation length \n\twant(%d)"+
				"\n\thave(%d)", acrobot.ObservationDims, obs.Len())
		}

		// Starting angles are within [-0.1, 0.1], so cos θ is near 1
		for _, j := range []int{0, 2} {
			if obs.AtVec(j) < math.Cos(0.1) {
				t.Errorf("reset: cosine feature %d = %v below %v", j,
					obs.AtVec(j), math.Cos(0.1))
			}
		}
		for _, j := range []int{4, 5} {
			if math.Abs(obs.AtVec(j)) > 0.1 {
				t.Errorf("reset: velocity feature %d = %v outside "+
					"[-0.1, 0.1]", j, obs.AtVec(j))
			}
		}
	}
}

func TestStepBounds(t *testing.T) {
	a := newAcrobot(5, 500)
	if _, err := a.Reset(); err != nil {
		t.Fatalf("reset: %v", err)
	}

	spec := a.ObservationSpec()
	for i := 0; i < 500; i++ {
		obs, reward, done, err := a.Step(i % 3)
		if err != nil {
			t.Fatalf("step: %v", err)
		}
		if reward != -1.0 && reward != 0.0 {
			t.Errorf("step: illegal reward %v", reward)
		}
		for j := 0; j < obs.Len(); j++ {
			if obs.AtVec(j) < spec.LowerBound.AtVec(j)-1e-9 ||
				obs.AtVec(j) > spec.UpperBound.AtVec(j)+1e-9 {
				t.Errorf("step: feature %d = %v out of bounds", j,
					obs.AtVec(j))
			}
		}
		if done {
			break
		}
	}
}

func TestStepLimit(t *testing.T) {
	a := newAcrobot(1, 10)
	if _, err := a.Reset(); err != nil {
		t.Fatalf("reset: %v", err)
	}

	// Applying no torque from near rest cannot reach the goal
	for i := 1; i <= 10; i++ {
		_, reward, done, err := a.Step(1)
		if err != nil {
			t.Fatalf("step: %v", err)
		}
		if reward != -1.0 {
			t.Errorf("step: \n\twant(%v)\n\thave(%v)", -1.0, reward)
		}
		if done != (i == 10) {
			t.Errorf("step %d: done \n\twant(%v)\n\thave(%v)", i, i == 10,
				done)
		}
	}
}

func TestAtGoal(t *testing.T) {
	task := acrobot.NewSwingUp(acrobot.NewStarter(0), 500,
		acrobot.GoalHeight)

	// Hanging straight down
	if task.AtGoal(mat.NewVecDense(4, []float64{0, 0, 0, 0})) {
		t.Error("atGoal: hanging acrobot should not be at the goal")
	}
	if r := task.GetReward(mat.NewVecDense(4, []float64{0, 0, 0, 0})); r !=
		-1.0 {
		t.Errorf("getReward: \n\twant(%v)\n\thave(%v)", -1.0, r)
	}

	// Pointing straight up
	up := mat.NewVecDense(4, []float64{math.Pi, 0, 0, 0})
	if !task.AtGoal(up) {
		t.Error("atGoal: upright acrobot should be at the goal")
	}
	if r := task.GetReward(up); r != 0.0 {
		t.Errorf("getReward: \n\twant(%v)\n\thave(%v)", 0.0, r)
	}
	if !task.End(up, 1) {
		t.Error("end: episode should end at the goal")
	}
}

func TestIllegalAction(t *testing.T) {
	a := newAcrobot(0, 500)
	if _, _, _, err := a.Step(1); err == nil {
		t.Error("step: expected error before reset")
	}

	if _, err := a.Reset(); err != nil {
		t.Fatalf("reset: %v", err)
	}
	for _, action := range []int{-1, 3} {
		if _, _, _, err := a.Step(action); err == nil {
			t.Errorf("step(%d): expected error", action)
		}
	}
}
