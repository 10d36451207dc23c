package environment

import (
	"gonum.org/v1/gonum/mat"
)

// FunctionEnder ends an episode whenever a function of the state
// returns true
type FunctionEnder struct {
	end func(mat.Vector) bool
}

// NewFunctionEnder returns a new FunctionEnder which ends episodes
// when f returns true
func NewFunctionEnder(f func(mat.Vector) bool) *FunctionEnder {
	return &FunctionEnder{f}
}

// End returns f(state)
func (f *FunctionEnder) End(state mat.Vector, _ int) bool {
	return f.end(state)
}

// AnyEnd returns whether any of the Enders ends the episode
func AnyEnd(state mat.Vector, steps int, enders ...Ender) bool {
	for _, e := range enders {
		if e.End(state, steps) {
			return true
		}
	}
	return false
}
