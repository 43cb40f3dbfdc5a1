package curves

import (
	"errors"
	"fmt"
	"iter"
	"sort"
)

var (
	// ErrDegenerate indicates control points collapsing onto each other.
	ErrDegenerate = errors.New("curve is degenerate")
	// ErrRadius indicates a non-positive ellipse radius.
	ErrRadius = errors.New("ellipse radius must be positive")
	// ErrTooFewPoints indicates a control point count insufficient for a curve.
	ErrTooFewPoints = errors.New("curve has too few control points")
)

// Curve is the capability shared by all curve types: evaluating a position
// for a parameter t, where t in [0,1] covers the whole curve.
//
// Implementations are immutable values. Point is a pure function of t and
// the curve's data, safe for concurrent use.
type Curve[N Scalar] interface {
	Valid() bool
	Point(t N) Vector3[N]
}

// Validator is implemented by curves able to explain why they are invalid.
type Validator interface {
	Validate() error
}

// Validate returns nil for a valid curve, and an error describing the
// defect otherwise.
func Validate[N Scalar](c Curve[N]) error {
	if v, ok := c.(Validator); ok {
		return v.Validate()
	}
	if !c.Valid() {
		return ErrDegenerate
	}
	return nil
}

func mustBeValid[N Scalar](c Curve[N]) {
	if !CheckValid {
		return
	}
	if err := Validate(c); err != nil {
		tracer().Errorf("evaluating invalid curve %T: %v", c, err)
		panic(err)
	}
}

// Tangent returns the unit tangent of c at t, approximated by the
// difference of the points at t-delta and t+delta (clamped to [0,1]).
//
// Callers have to choose delta such that both points differ. If they
// coincide, the zero vector is returned.
func Tangent[N Scalar](c Curve[N], t, delta N) Vector3[N] {
	mustBeValid(c)
	t1, t2 := t-delta, t+delta
	if t1 < 0 {
		t1 = 0
	}
	if t2 > 1 {
		t2 = 1
	}
	d := c.Point(t2).Sub(c.Point(t1))
	if d.LengthSquared() == 0 {
		tracer().Errorf("tangent of %T at t=%g undefined for delta=%g", c, t, delta)
		return Vector3[N]{}
	}
	return d.Normal()
}

// Length approximates the arc length of c by a polyline of the given
// number of segments. Panics if divisions < 2.
func Length[N Scalar](c Curve[N], divisions int) N {
	lengths := Lengths(c, divisions)
	return lengths[len(lengths)-1]
}

// Lengths returns the cumulative polyline lengths of c at t = i/divisions,
// for i = 0…divisions. The first entry is always 0. Panics if divisions < 2.
func Lengths[N Scalar](c Curve[N], divisions int) []N {
	if divisions <= 1 {
		panic(fmt.Sprintf("curve length needs more than 1 division, have %d", divisions))
	}
	mustBeValid(c)
	n := N(divisions)
	lengths := make([]N, divisions+1)
	prev := c.Point(0)
	var acc N
	for i := 1; i <= divisions; i++ {
		cur := c.Point(N(i) / n)
		acc += cur.DistanceTo(prev)
		lengths[i] = acc
		prev = cur
	}
	return lengths
}

// Points returns a sequence of divisions points of c, sampled at
// t = i/divisions for i = 0…divisions-1. The end point t=1 is not part of
// the sequence. The sequence may be iterated more than once.
// Panics if divisions < 1.
func Points[N Scalar](c Curve[N], divisions int) iter.Seq[Vector3[N]] {
	if divisions <= 0 {
		panic(fmt.Sprintf("curve sampling needs at least 1 division, have %d", divisions))
	}
	mustBeValid(c)
	n := N(divisions)
	return func(yield func(Vector3[N]) bool) {
		for i := 0; i < divisions; i++ {
			if !yield(c.Point(N(i) / n)) {
				return
			}
		}
	}
}

// AppendPoints appends the samples of Points(c, divisions) to dst and
// returns the extended slice.
func AppendPoints[N Scalar](dst []Vector3[N], c Curve[N], divisions int) []Vector3[N] {
	for p := range Points(c, divisions) {
		dst = append(dst, p)
	}
	return dst
}

// PointAt returns the point at fraction u of the arc length of c, where
// the length is approximated with the given number of divisions.
// u is clamped to [0,1].
func PointAt[N Scalar](c Curve[N], u N, divisions int) Vector3[N] {
	return c.Point(arcParam(Lengths(c, divisions), u))
}

// SpacedPoints returns divisions+1 points of c, equally spaced by arc
// length and including both end points. Panics if divisions < 1.
func SpacedPoints[N Scalar](c Curve[N], divisions int) []Vector3[N] {
	if divisions <= 0 {
		panic(fmt.Sprintf("curve sampling needs at least 1 division, have %d", divisions))
	}
	lengths := Lengths(c, max(200, divisions*8))
	points := make([]Vector3[N], divisions+1)
	for i := range points {
		points[i] = c.Point(arcParam(lengths, N(i)/N(divisions)))
	}
	return points
}

// arcParam maps a fraction u of the total length to a curve parameter t,
// given cumulative lengths at equally spaced t.
func arcParam[N Scalar](lengths []N, u N) N {
	if u <= 0 {
		return 0
	}
	if u >= 1 {
		return 1
	}
	last := len(lengths) - 1
	total := lengths[last]
	if total == 0 {
		return u
	}
	target := u * total
	// first index with lengths[i] > target, so lengths[i-1] <= target
	i := sort.Search(len(lengths), func(i int) bool { return lengths[i] > target })
	if i > last {
		return 1
	}
	i--
	before := lengths[i]
	if before == target {
		return N(i) / N(last)
	}
	frac := (target - before) / (lengths[i+1] - before)
	return (N(i) + frac) / N(last)
}
