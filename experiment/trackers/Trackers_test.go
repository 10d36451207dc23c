package trackers_test

import (
	"path/filepath"
	"testing"

	"github.com/samuelfneumann/gymenv/experiment/trackers"
	ts "github.com/samuelfneumann/gymenv/timestep"
	"gonum.org/v1/gonum/floats"
)

func episodes() []ts.Step {
	return []ts.Step{
		ts.New(nil, 0, 1.0, false),
		ts.New(nil, 1, 2.0, false),
		ts.New(nil, 0, 3.0, true),
		ts.New(nil, 1, -1.0, true),
		ts.New(nil, 0, 5.0, false), // Unfinished episode
	}
}

func TestReturn(t *testing.T) {
	r := trackers.NewReturn()
	for _, step := range episodes() {
		r.Track(step)
	}

	want := []float64{6.0, -1.0}
	if have := r.Data(); !floats.Equal(have, want) {
		t.Errorf("data: \n\twant(%v)\n\thave(%v)", want, have)
	}
}

func TestEpisodeLength(t *testing.T) {
	e := trackers.NewEpisodeLength()
	for _, step := range episodes() {
		e.Track(step)
	}

	want := []float64{3, 1}
	if have := e.Data(); !floats.Equal(have, want) {
		t.Errorf("data: \n\twant(%v)\n\thave(%v)", want, have)
	}
}

func TestSaveLoad(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "returns.bin")

	var tracker trackers.Tracker = trackers.NewReturn()
	for _, step := range episodes() {
		tracker.Track(step)
	}
	if err := tracker.Save(filename); err != nil {
		t.Fatalf("save: %v", err)
	}

	data, err := trackers.LoadData(filename)
	if err != nil {
		t.Fatalf("loadData: %v", err)
	}
	if want := tracker.Data(); !floats.Equal(data, want) {
		t.Errorf("loadData: \n\twant(%v)\n\thave(%v)", want, data)
	}

	if _, err := trackers.LoadData(filepath.Join(t.TempDir(),
		"missing.bin")); err == nil {
		t.Error("loadData: expected error for missing file")
	}
}
