package gym

// Discrete describes a space of N discrete values {0, 1, ..., N-1}.
// Runtime bindings may return a Discrete from Handle.ActionSpace.
type Discrete struct {
	Count int
}

// N returns the number of values in the space
func (d Discrete) N() int {
	return d.Count
}

// Box describes a continuous space of some shape with lower and upper
// bounds given in row-major order. Runtime bindings may return a Box
// from Handle.ObservationSpace.
type Box struct {
	Dims []int
	Low  []float64
	High []float64
}

// Shape returns the shape of the space
func (b Box) Shape() []int {
	shape := make([]int, len(b.Dims))
	copy(shape, b.Dims)
	return shape
}
