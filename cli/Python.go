//go:build python
// +build python

package cli

import (
	"github.com/samuelfneumann/gymenv/environment/gym"
	"github.com/samuelfneumann/gymenv/environment/gym/pygym"
)

const backendPython = "python"

func init() {
	backends[backendPython] = func() (gym.Runtime, func(), error) {
		return pygym.Runtime{}, pygym.Close, nil
	}
}
