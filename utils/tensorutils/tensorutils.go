// Package tensorutils provides helpers for building and copying the
// tensors used to represent observations
package tensorutils

import (
	"gorgonia.org/tensor"
)

// FloatVec returns a new 1-dimensional float64 tensor holding a copy of
// values. The returned tensor never aliases values.
func FloatVec(values []float64) *tensor.Dense {
	backing := make([]float64, len(values))
	copy(backing, values)

	return tensor.New(
		tensor.WithShape(len(backing)),
		tensor.WithBacking(backing),
	)
}

// Float64s returns a copy of the data backing a float64 tensor
func Float64s(t *tensor.Dense) []float64 {
	var data []float64
	switch d := t.Data().(type) {
	case []float64:
		data = d
	case float64:
		// Single-element tensors may report a scalar
		return []float64{d}
	default:
		return nil
	}
	out := make([]float64, len(data))
	copy(out, data)
	return out
}
