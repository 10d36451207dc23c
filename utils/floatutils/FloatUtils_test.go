package floatutils_test

import (
	"testing"

	"github.com/samuelfneumann/gymenv/utils/floatutils"
	"gonum.org/v1/gonum/spatial/r1"
)

func TestClip(t *testing.T) {
	tests := []struct {
		value, min, max, want float64
	}{
		{0.5, 0.0, 1.0, 0.5},
		{-1.0, 0.0, 1.0, 0.0},
		{2.0, 0.0, 1.0, 1.0},
		{1.0, 1.0, 1.0, 1.0},
	}

	for _, test := range tests {
		if have := floatutils.Clip(test.value, test.min, test.max); have !=
			test.want {
			t.Errorf("clip(%v, %v, %v): \n\twant(%v)\n\thave(%v)",
				test.value, test.min, test.max, test.want, have)
		}

		interval := r1.Interval{Min: test.min, Max: test.max}
		if have := floatutils.ClipInterval(test.value, interval); have !=
			test.want {
			t.Errorf("clipInterval(%v, %v): \n\twant(%v)\n\thave(%v)",
				test.value, interval, test.want, have)
		}
	}
}

func TestWrap(t *testing.T) {
	const eps = 1e-12
	tests := []struct {
		value, min, max, want float64
	}{
		{0.5, -1.0, 1.0, 0.5},
		{1.5, -1.0, 1.0, -0.5},
		{-1.5, -1.0, 1.0, 0.5},
		{5.5, -1.0, 1.0, -0.5},
		{1.0, -1.0, 1.0, 1.0},
	}

	for _, test := range tests {
		have := floatutils.Wrap(test.value, test.min, test.max)
		if have < test.want-eps || have > test.want+eps {
			t.Errorf("wrap(%v, %v, %v): \n\twant(%v)\n\thave(%v)",
				test.value, test.min, test.max, test.want, have)
		}

		interval := r1.Interval{Min: test.min, Max: test.max}
		if have2 := floatutils.WrapInterval(test.value, interval); have2 !=
			have {
			t.Errorf("wrapInterval(%v, %v): \n\twant(%v)\n\thave(%v)",
				test.value, interval, have, have2)
		}
	}
}
