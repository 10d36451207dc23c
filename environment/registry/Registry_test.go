package registry_test

import (
	"testing"

	env "github.com/samuelfneumann/gymenv/environment"
	"github.com/samuelfneumann/gymenv/environment/classiccontrol/cartpole"
	"github.com/samuelfneumann/gymenv/environment/gym"
	"github.com/samuelfneumann/gymenv/environment/registry"
)

func TestDefaultNames(t *testing.T) {
	want := []string{"Acrobot-v1", "CartPole-v0", "CartPole-v1",
		"MountainCar-v0"}
	have := registry.Default.Names()

	if len(have) != len(want) {
		t.Fatalf("names: \n\twant(%v)\n\thave(%v)", want, have)
	}
	for i := range want {
		if have[i] != want[i] {
			t.Errorf("names: \n\twant(%v)\n\thave(%v)", want, have)
		}
	}
}

func TestMake(t *testing.T) {
	tests := []struct {
		name    string
		actions int
		shape   []int
	}{
		{"Acrobot-v1", 3, []int{6}},
		{"CartPole-v0", 2, []int{4}},
		{"CartPole-v1", 2, []int{4}},
		{"MountainCar-v0", 3, []int{2}},
	}

	for _, test := range tests {
		h, err := registry.Default.Make(test.name)
		if err != nil {
			t.Errorf("make(%v): %v", test.name, err)
			continue
		}

		space, err := h.ActionSpace()
		if err != nil {
			t.Errorf("make(%v): %v", test.name, err)
			continue
		}
		if n, err := gym.ActionCount(space); err != nil || n != test.actions {
			t.Errorf("make(%v): illegal action count \n\twant(%d)"+
				"\n\thave(%d, %v)", test.name, test.actions, n, err)
		}

		space, err = h.ObservationSpace()
		if err != nil {
			t.Errorf("make(%v): %v", test.name, err)
			continue
		}
		shape, err := gym.ObservationShape(space)
		if err != nil || len(shape) != 1 || shape[0] != test.shape[0] {
			t.Errorf("make(%v): illegal shape \n\twant(%v)\n\thave(%v, %v)",
				test.name, test.shape, shape, err)
		}

		// Steps are (observation, reward, done, info) tuples
		if _, err := h.Reset(); err != nil {
			t.Errorf("make(%v): reset: %v", test.name, err)
			continue
		}
		result, err := h.Step(0)
		if err != nil {
			t.Errorf("make(%v): step: %v", test.name, err)
			continue
		}
		tuple, ok := result.([]interface{})
		if !ok || len(tuple) != 4 {
			t.Errorf("make(%v): step: illegal result %v", test.name, result)
		}
	}
}

func TestMakeUnknown(t *testing.T) {
	if _, err := registry.Default.Make("Unknown-v0"); err == nil {
		t.Error("make: expected error for unregistered environment")
	}
}

func TestRegister(t *testing.T) {
	r := registry.New()
	if len(r.Names()) != 0 {
		t.Errorf("names: expected empty registry, have %v", r.Names())
	}

	r.Register("Short-v0", func() env.Environment {
		return cartpole.New(cartpole.NewBalance(cartpole.NewStarter(0), 1))
	})

	e, err := gym.New(r, "Short-v0")
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if _, err := e.Reset(); err != nil {
		t.Fatalf("reset: %v", err)
	}
	step, err := e.Step(1)
	if err != nil {
		t.Fatalf("step: %v", err)
	}
	if !step.Done {
		t.Error("step: episode should end after the step limit")
	}
}

func TestNegativeSeed(t *testing.T) {
	h, err := registry.Default.Make("CartPole-v0")
	if err != nil {
		t.Fatalf("make: %v", err)
	}
	if err := h.Seed(-1); err == nil {
		t.Error("seed: expected error for negative seed")
	}
	if err := h.Seed(gym.Seed); err != nil {
		t.Errorf("seed: %v", err)
	}
}
