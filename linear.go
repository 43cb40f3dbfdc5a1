package curves

import "fmt"

// Linear is a straight line segment from Start to End.
type Linear[N Scalar] struct {
	Start Vector3[N] `yaml:"start"`
	End   Vector3[N] `yaml:"end"`
}

var _ Curve[float64] = Linear[float64]{}

// Point returns Start*(1-t) + End*t. Parameters outside [0,1] extrapolate
// along the line.
func (l Linear[N]) Point(t N) Vector3[N] {
	return l.Start.Scale(1 - t).Add(l.End.Scale(t))
}

// Validate checks that start and end differ.
func (l Linear[N]) Validate() error {
	if l.Start.IsEqual(l.End) {
		return fmt.Errorf("%w: line starts and ends at %s", ErrDegenerate, l.Start)
	}
	return nil
}

// Valid is a predicate: does this line have extent?
func (l Linear[N]) Valid() bool {
	return l.Validate() == nil
}
