package environment

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// SpecType determines what kind of specification a Spec is. A Spec can
// specify the layout of an action or an observation.
type SpecType int

const (
	Action SpecType = iota
	Observation
)

// Cardinality determines the cardinality of a number (discrete or continuous)
type Cardinality string

const (
	Continuous Cardinality = "Continuous"
	Discrete   Cardinality = "Discrete"
)

// Spec implements an environment specification, which tells the type,
// shape, and bounds of an action or observation in an environment
type Spec struct {
	Shape      []int
	Type       SpecType
	LowerBound *mat.VecDense
	UpperBound *mat.VecDense
	Cardinality
}

// NewSpec constructs a new environment specification.
// The shape argument outlines the shape of the data described by the
// specification, and the bounds are given in row-major order. The
// argument t outlines what the specification is describing. The
// cardinality argument describes whether the values that the spec
// describes are continuous or discrete.
func NewSpec(shape []int, t SpecType, lowerBound,
	upperBound *mat.VecDense, cardinality Cardinality) Spec {
	size := 1
	for _, dim := range shape {
		size *= dim
	}

	if size != lowerBound.Len() {
		panic(fmt.Sprintf("shape size %v must match lower bounds length %v",
			size, lowerBound.Len()))
	}
	if size != upperBound.Len() {
		panic(fmt.Sprintf("shape size %v must match upper bounds length %v",
			size, upperBound.Len()))
	}
	return Spec{shape, t, lowerBound, upperBound, cardinality}
}

// N returns the number of legal values for a 1-dimensional discrete
// Spec. N panics if the Spec is not discrete or not 1-dimensional.
func (s Spec) N() int {
	if s.Cardinality != Discrete {
		panic("n: spec is not discrete")
	}
	if s.LowerBound.Len() != 1 {
		panic(fmt.Sprintf("n: spec is %v-dimensional, expected 1",
			s.LowerBound.Len()))
	}
	return int(s.UpperBound.AtVec(0)-s.LowerBound.AtVec(0)) + 1
}
