package tensorutils_test

import (
	"testing"

	"github.com/samuelfneumann/gymenv/utils/tensorutils"
	"gonum.org/v1/gonum/floats"
)

func TestFloatVec(t *testing.T) {
	values := []float64{1.0, -2.5, 3.25, 0.0}
	vec := tensorutils.FloatVec(values)

	if shape := vec.Shape(); len(shape) != 1 || shape[0] != len(values) {
		t.Errorf("floatVec: illegal shape \n\twant([%d])\n\thave(%v)",
			len(values), shape)
	}

	if have := tensorutils.Float64s(vec); !floats.Equal(have, values) {
		t.Errorf("floatVec: illegal data \n\twant(%v)\n\thave(%v)",
			values, have)
	}

	// The tensor must not alias the input slice
	values[0] = 100.0
	if have := tensorutils.Float64s(vec); have[0] != 1.0 {
		t.Errorf("floatVec: tensor aliases input \n\twant(%v)\n\thave(%v)",
			1.0, have[0])
	}
}
