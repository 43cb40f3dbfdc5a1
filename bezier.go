package curves

import "fmt"

// Bezier is a cubic Bézier curve with end points P0 and P3 and control
// points P1 and P2.
type Bezier[N Scalar] struct {
	P0 Vector3[N] `yaml:"p0"`
	P1 Vector3[N] `yaml:"p1"`
	P2 Vector3[N] `yaml:"p2"`
	P3 Vector3[N] `yaml:"p3"`
}

var _ Curve[float64] = Bezier[float64]{}

// Point evaluates the curve in Bernstein form, independently per axis.
func (b Bezier[N]) Point(t N) Vector3[N] {
	return Vector3[N]{
		X: CubicBezier(t, b.P0.X, b.P1.X, b.P2.X, b.P3.X),
		Y: CubicBezier(t, b.P0.Y, b.P1.Y, b.P2.Y, b.P3.Y),
		Z: CubicBezier(t, b.P0.Z, b.P1.Z, b.P2.Z, b.P3.Z),
	}
}

// Validate checks that no control point repeats an earlier one.
func (b Bezier[N]) Validate() error {
	pts := [4]Vector3[N]{b.P0, b.P1, b.P2, b.P3}
	for i := 1; i < len(pts); i++ {
		for j := i; j < len(pts); j++ {
			if pts[j].IsEqual(pts[i-1]) {
				return fmt.Errorf("%w: control points %d and %d coincide at %s",
					ErrDegenerate, i-1, j, pts[j])
			}
		}
	}
	return nil
}

// Valid is a predicate: are all control points distinct?
func (b Bezier[N]) Valid() bool {
	return b.Validate() == nil
}

// CubicBezier evaluates a one-dimensional cubic Bézier polynomial at t:
//
//	(1-t)³p0 + 3(1-t)²t p1 + 3(1-t)t² p2 + t³p3
func CubicBezier[N Scalar](t, p0, p1, p2, p3 N) N {
	k := 1 - t
	return k*k*k*p0 + 3*k*k*t*p1 + 3*k*t*t*p2 + t*t*t*p3
}
