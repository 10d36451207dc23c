package cli

import (
	"sort"

	"github.com/pkg/errors"
	"github.com/samuelfneumann/gymenv/environment/gym"
	"github.com/samuelfneumann/gymenv/environment/gym/gymhttp"
	"github.com/samuelfneumann/gymenv/environment/registry"
	"github.com/spf13/viper"
)

const (
	backendLocal = "local"
	backendHTTP  = "http"
)

// backend creates a gym.Runtime and returns a function releasing its
// resources
type backend func() (gym.Runtime, func(), error)

var backends = map[string]backend{
	backendLocal: func() (gym.Runtime, func(), error) {
		return registry.Default, func() {}, nil
	},
	backendHTTP: func() (gym.Runtime, func(), error) {
		client, err := gymhttp.NewClient(viper.GetString(keyURL),
			gymhttp.WithRetries(viper.GetInt(keyRetries)))
		if err != nil {
			return nil, nil, err
		}
		return client, func() {}, nil
	},
}

func backendNames() []string {
	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// newRuntime creates the configured runtime
func newRuntime() (gym.Runtime, func(), error) {
	name := viper.GetString(keyBackend)
	b, ok := backends[name]
	if !ok {
		return nil, nil, errors.Errorf("unknown backend %q, expected one "+
			"of %v", name, backendNames())
	}
	return b()
}

// newEnv creates the configured runtime and an adapter for the
// configured environment
func newEnv() (*gym.Env, func(), error) {
	rt, release, err := newRuntime()
	if err != nil {
		return nil, nil, err
	}

	env, err := gym.New(rt, viper.GetString(keyEnv))
	if err != nil {
		release()
		return nil, nil, err
	}
	return env, release, nil
}
