package trackers

import (
	ts "github.com/samuelfneumann/gymenv/timestep"
)

// EpisodeLength tracks and saves the lengths of episodes.
// Note that an episode must finish for this Tracker to save its data.
// If the last episode does not finish, that episode's length will not
// be saved.
type EpisodeLength struct {
	currentLength  int
	episodeLengths []float64
}

// NewEpisodeLength returns a new EpisodeLength Tracker
func NewEpisodeLength() *EpisodeLength {
	return &EpisodeLength{}
}

// Track counts a Step towards the length of the current episode
func (e *EpisodeLength) Track(step ts.Step) {
	e.currentLength++

	if step.Last() {
		e.episodeLengths = append(e.episodeLengths, float64(e.currentLength))
		e.currentLength = 0
	}
}

// Data returns the length of each finished episode
func (e *EpisodeLength) Data() []float64 {
	out := make([]float64, len(e.episodeLengths))
	copy(out, e.episodeLengths)
	return out
}

// Save saves the episode lengths to filename
func (e *EpisodeLength) Save(filename string) error {
	return save(filename, e.episodeLengths)
}
