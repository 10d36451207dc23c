// Package registry implements an in-process runtime of native Go
// environments, which can be adapted by package gym.
//
// Environments are registered by name with a Factory. The Default
// Registry holds the classic control environments of this module under
// their OpenAI Gym names:
//
//	Acrobot-v1       3 actions, 6 features, 500 step episodes
//	CartPole-v0      2 actions, 4 features, 200 step episodes
//	CartPole-v1      2 actions, 4 features, 500 step episodes
//	MountainCar-v0   3 actions, 2 features, 200 step episodes
package registry

import (
	"sort"
	"sync"

	"github.com/pkg/errors"
	env "github.com/samuelfneumann/gymenv/environment"
	"github.com/samuelfneumann/gymenv/environment/classiccontrol/acrobot"
	"github.com/samuelfneumann/gymenv/environment/classiccontrol/cartpole"
	"github.com/samuelfneumann/gymenv/environment/classiccontrol/mountaincar"
	"github.com/samuelfneumann/gymenv/environment/gym"
)

// Factory creates a new, unseeded environment
type Factory func() env.Environment

// Default is the Registry of all environments implemented in this
// module
var Default = New()

func init() {
	Default.Register("Acrobot-v1", func() env.Environment {
		task := acrobot.NewSwingUp(acrobot.NewStarter(0), 500,
			acrobot.GoalHeight)
		return acrobot.New(task)
	})
	Default.Register("CartPole-v0", func() env.Environment {
		return cartpole.New(cartpole.NewBalance(cartpole.NewStarter(0), 200))
	})
	Default.Register("CartPole-v1", func() env.Environment {
		return cartpole.New(cartpole.NewBalance(cartpole.NewStarter(0), 500))
	})
	Default.Register("MountainCar-v0", func() env.Environment {
		task := mountaincar.NewGoal(mountaincar.NewStarter(0), 200,
			mountaincar.GoalPosition)
		return mountaincar.New(task)
	})
}

// Registry maps environment names to Factories. A Registry is a
// gym.Runtime and is safe for concurrent use, although the
// environments it makes are not.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// New returns a new, empty Registry
func New() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register registers a Factory under name, replacing any Factory
// previously registered under the same name
func (r *Registry) Register(name string, f Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[name] = f
}

// Names returns the sorted names of all registered environments
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Make creates a new instance of the environment registered under name
func (r *Registry) Make(name string) (gym.Handle, error) {
	r.mu.RLock()
	f, ok := r.factories[name]
	r.mu.RUnlock()

	if !ok {
		return nil, errors.Errorf("make: no environment registered as %q",
			name)
	}
	return &handle{env: f()}, nil
}
