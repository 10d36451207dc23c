package gym

// Runtime is an external environment runtime which can instantiate
// environments by name. The set of legal names is defined entirely by
// the Runtime.
type Runtime interface {
	Make(name string) (Handle, error)
}

// Handle is a reference to an environment instance owned by some
// Runtime. Values returned by a Handle are loosely typed, in the same
// way an environment in a dynamically typed runtime returns them. Env
// checks and converts each value at the boundary.
//
// Reset should return a flat numeric sequence. Step should return a
// positional tuple ([]interface{}) of at least three elements: the
// observation, the reward, and the episode termination flag. Any
// further elements are ignored by Env.
//
// ActionSpace should return a value with an N() int method or a
// map[string]interface{} with an "n" key. ObservationSpace should
// return a value with a Shape() []int method or a
// map[string]interface{} with a "shape" key.
type Handle interface {
	Seed(seed int) error
	Reset() (interface{}, error)
	Step(action int) (interface{}, error)
	ActionSpace() (interface{}, error)
	ObservationSpace() (interface{}, error)
}

// RuntimeFunc adapts a function to the Runtime interface
type RuntimeFunc func(name string) (Handle, error)

// Make calls f(name)
func (f RuntimeFunc) Make(name string) (Handle, error) {
	return f(name)
}
