package gym

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
	"gorgonia.org/tensor"
)

// StepTupleLen is the number of leading elements of a step result
// that are read. Anything after them, such as an info dictionary, is
// discarded.
const StepTupleLen = 3

// Float64s converts a flat numeric sequence returned by a runtime into
// a newly allocated []float64
func Float64s(v interface{}) ([]float64, error) {
	switch seq := v.(type) {
	case []float64:
		out := make([]float64, len(seq))
		copy(out, seq)
		return out, nil

	case []float32:
		out := make([]float64, len(seq))
		for i := range seq {
			out[i] = float64(seq[i])
		}
		return out, nil

	case []int:
		out := make([]float64, len(seq))
		for i := range seq {
			out[i] = float64(seq[i])
		}
		return out, nil

	case []int64:
		out := make([]float64, len(seq))
		for i := range seq {
			out[i] = float64(seq[i])
		}
		return out, nil

	case []interface{}:
		out := make([]float64, len(seq))
		for i := range seq {
			f, err := Float64(seq[i])
			if err != nil {
				return nil, errors.Wrapf(err, "element %d", i)
			}
			out[i] = f
		}
		return out, nil

	case mat.Vector:
		out := make([]float64, seq.Len())
		for i := range out {
			out[i] = seq.AtVec(i)
		}
		return out, nil

	case tensor.Tensor:
		if len(seq.Shape()) > 1 {
			return nil, errors.Errorf("tensor of shape %v is not flat",
				seq.Shape())
		}
		switch data := seq.Data().(type) {
		case []float64, []float32:
			return Float64s(data)
		case float64:
			return []float64{data}, nil
		case float32:
			return []float64{float64(data)}, nil
		}
		return nil, errors.Errorf("tensor of dtype %v is not a float "+
			"tensor", seq.Dtype())

	case nil:
		return nil, errors.New("sequence is nil")
	}

	return nil, errors.Errorf("%T is not a numeric sequence", v)
}

// Float64 converts a numeric value returned by a runtime into a float64
func Float64(v interface{}) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int8:
		return float64(n), nil
	case int16:
		return float64(n), nil
	case int32:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case uint:
		return float64(n), nil
	case uint8:
		return float64(n), nil
	case uint16:
		return float64(n), nil
	case uint32:
		return float64(n), nil
	case uint64:
		return float64(n), nil
	}
	return 0, errors.Errorf("%T is not a number", v)
}

// Bool converts a value returned by a runtime into a bool. Only real
// booleans are accepted; numbers are not truthy.
func Bool(v interface{}) (bool, error) {
	b, ok := v.(bool)
	if !ok {
		return false, errors.Errorf("%T is not a bool", v)
	}
	return b, nil
}

// toInt converts an integral value into an int. Floats with no
// fractional part are accepted, since decoded JSON numbers are floats.
func toInt(v interface{}) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int32:
		return int(n), nil
	case int64:
		return int(n), nil
	case uint32:
		return int(n), nil
	case float64:
		if n != math.Trunc(n) || math.IsInf(n, 0) {
			return 0, errors.Errorf("%v is not an integer", n)
		}
		if n < math.MinInt32 || n > math.MaxInt32 {
			return 0, errors.Errorf("%v is out of range", n)
		}
		return int(n), nil
	}
	return 0, errors.Errorf("%T is not an integer", v)
}

// toInts converts an integral sequence into an []int
func toInts(v interface{}) ([]int, error) {
	switch seq := v.(type) {
	case []int:
		out := make([]int, len(seq))
		copy(out, seq)
		return out, nil

	case []int64:
		out := make([]int, len(seq))
		for i := range seq {
			out[i] = int(seq[i])
		}
		return out, nil

	case []interface{}:
		out := make([]int, len(seq))
		for i := range seq {
			n, err := toInt(seq[i])
			if err != nil {
				return nil, errors.Wrapf(err, "element %d", i)
			}
			out[i] = n
		}
		return out, nil
	}
	return nil, errors.Errorf("%T is not an integer sequence", v)
}

// ActionCount extracts the number of discrete actions from an action
// space returned by a runtime. A discrete space has at least one
// action.
func ActionCount(space interface{}) (int, error) {
	var count int
	switch s := space.(type) {
	case interface{ N() int }:
		count = s.N()

	case map[string]interface{}:
		n, ok := s["n"]
		if !ok {
			return 0, errors.New("action space has no attribute n")
		}
		var err error
		if count, err = toInt(n); err != nil {
			return 0, errors.Wrap(err, "action space attribute n")
		}

	default:
		return 0, errors.Errorf("action space %T has no attribute n", space)
	}

	if count < 1 {
		return 0, errors.Errorf("action space has %d actions", count)
	}
	return count, nil
}

// ObservationShape extracts the observation shape from an observation
// space returned by a runtime. Dimensions must be non-negative; an
// empty shape describes scalar observations.
func ObservationShape(space interface{}) ([]int, error) {
	var out []int
	switch s := space.(type) {
	case interface{ Shape() []int }:
		shape := s.Shape()
		out = make([]int, len(shape))
		copy(out, shape)

	case map[string]interface{}:
		shape, ok := s["shape"]
		if !ok {
			return nil, errors.New("observation space has no attribute shape")
		}
		var err error
		if out, err = toInts(shape); err != nil {
			return nil, errors.Wrap(err, "observation space attribute shape")
		}

	default:
		return nil, errors.Errorf("observation space %T has no attribute "+
			"shape", space)
	}

	for i, dim := range out {
		if dim < 0 {
			return nil, errors.Errorf("observation space dimension %d is %d",
				i, dim)
		}
	}
	return out, nil
}

// StepTuple returns the observation, reward, and done elements of a
// step result, ignoring any further elements
func StepTuple(v interface{}) (obs, reward, done interface{}, err error) {
	tuple, ok := v.([]interface{})
	if !ok {
		return nil, nil, nil, errors.Errorf("step result %T is not a tuple", v)
	}
	if len(tuple) < StepTupleLen {
		return nil, nil, nil, errors.Errorf("step result has no element %d",
			len(tuple))
	}
	return tuple[0], tuple[1], tuple[2], nil
}
