package trackers

import (
	ts "github.com/samuelfneumann/gymenv/timestep"
)

// Return tracks the episodic return in a sequence of Steps. When an
// environment returns a Step, this Tracker will extract the reward and
// accumulate the return for each episode.
//
// Note: An episode must finish for this Tracker to save its data.
// If the last episode does not finish, that episode's return will not
// be saved.
type Return struct {
	currentReturn  float64
	episodeReturns []float64
}

// NewReturn creates and returns a new *Return Tracker
func NewReturn() *Return {
	return &Return{}
}

// Track tracks the reward seen on a Step. When a Step ends an episode,
// the accumulated return is recorded and accumulation restarts for
// the next episode.
func (r *Return) Track(step ts.Step) {
	r.currentReturn += step.Reward

	if step.Last() {
		r.episodeReturns = append(r.episodeReturns, r.currentReturn)
		r.currentReturn = 0.0
	}
}

// Data returns the return of each finished episode
func (r *Return) Data() []float64 {
	out := make([]float64, len(r.episodeReturns))
	copy(out, r.episodeReturns)
	return out
}

// Save saves the episodic returns to filename
func (r *Return) Save(filename string) error {
	return save(filename, r.episodeReturns)
}
