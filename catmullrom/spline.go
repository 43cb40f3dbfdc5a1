package catmullrom

import (
	"fmt"

	"github.com/npillmayer/curves"
	"github.com/npillmayer/curves/polyn"
)

// New creates a spline through a copy of points.
func New[N curves.Scalar](typ Type, closed bool, tension N, points ...curves.Vector3[N]) Spline[N] {
	pts := make([]curves.Vector3[N], len(points))
	copy(pts, points)
	return Spline[N]{Type: typ, Points: pts, Closed: closed, Tension: tension}
}

// Validate checks that the spline has at least 4 control points.
func (s Spline[N]) Validate() error {
	if len(s.Points) <= 3 {
		return fmt.Errorf("%w: spline needs at least 4, has %d", curves.ErrTooFewPoints, len(s.Points))
	}
	return nil
}

// Valid is a predicate: does the spline have enough control points?
func (s Spline[N]) Valid() bool {
	return s.Validate() == nil
}

// Len returns the number of control points.
func (s Spline[N]) Len() int {
	return len(s.Points)
}

// span is the number of segments.
func (s Spline[N]) span() int {
	if s.Closed {
		return len(s.Points)
	}
	return len(s.Points) - 1
}

// Point returns the point of the spline at t. For t in [0,1] the whole
// spline is covered, passing through control point i at t = i/span.
//
// Closed splines are periodic in t. Open splines extrapolate their first
// and last segment for t outside [0,1].
//
// A spline without points evaluates to the origin, a spline with one
// point to this point.
func (s Spline[N]) Point(t N) curves.Vector3[N] {
	switch len(s.Points) {
	case 0:
		return curves.Vector3[N]{}
	case 1:
		return s.Points[0]
	}
	seg, w := s.locate(t)
	x, y, z := s.cubics(seg)
	return curves.Vector3[N]{X: x.calc(w), Y: y.calc(w), Z: z.calc(w)}
}

// Derivative returns the derivative dP/dt of the spline at t, i.e. the
// unnormalized tangent.
func (s Spline[N]) Derivative(t N) curves.Vector3[N] {
	if len(s.Points) < 2 {
		return curves.Vector3[N]{}
	}
	seg, w := s.locate(t)
	x, y, z := s.cubics(seg)
	dw := N(s.span()) // dw/dt
	return curves.Vector3[N]{
		X: x.derivative(w) * dw,
		Y: y.derivative(w) * dw,
		Z: z.derivative(w) * dw,
	}
}

// Segment returns the cubic polynomials per axis for the segment t falls
// into, together with the position w within this segment. Evaluating the
// polynomials at w yields Point(t).
//
// Panics for splines with less than 2 points.
func (s Spline[N]) Segment(t N) (x, y, z polyn.Polynomial, w N) {
	if len(s.Points) < 2 {
		panic(fmt.Sprintf("spline segments need at least 2 points, have %d", len(s.Points)))
	}
	seg, w := s.locate(t)
	cx, cy, cz := s.cubics(seg)
	tracer().Debugf("segment %d of %s spline at w=%g", seg, s.Type, w)
	return cx.polynomial(), cy.polynomial(), cz.polynomial(), w
}

// locate finds the segment for t and the position within it. The segment
// index of a closed spline is positive, but may exceed the point count.
func (s Spline[N]) locate(t N) (int, N) {
	n := len(s.Points)
	p := N(s.span()) * t
	fseg := curves.Floor(p)
	w := p - fseg
	seg := int(fseg)
	if s.Closed {
		if seg <= 0 {
			seg += (-seg/n + 1) * n
		}
		return seg, w
	}
	switch {
	case w == 0 && seg == n-1:
		// t=1 reuses the last real segment at its end, as three.js does.
		// Weight 1 keeps the evaluation on that segment.
		return n - 2, 1
	case seg < 0:
		return 0, w + N(seg)
	case seg > n-2:
		return n - 2, w + N(seg-(n-2))
	}
	return seg, w
}

// window returns the 4 control points around segment seg, extrapolating
// missing neighbours at the ends of open splines.
func (s Spline[N]) window(seg int) (p0, p1, p2, p3 curves.Vector3[N]) {
	pts := s.Points
	n := len(pts)
	if s.Closed || seg > 0 {
		p0 = pts[(seg-1)%n]
	} else {
		p0 = pts[0].Add(pts[0].Sub(pts[1]))
	}
	p1 = pts[seg%n]
	p2 = pts[(seg+1)%n]
	if s.Closed || seg+2 < n {
		p3 = pts[(seg+2)%n]
	} else {
		p3 = pts[n-1].Add(pts[n-1].Sub(pts[n-2]))
	}
	return
}

// cubics builds the per-axis cubics for segment seg.
func (s Spline[N]) cubics(seg int) (x, y, z cubicPoly[N]) {
	p0, p1, p2, p3 := s.window(seg)
	if s.Type == Uniform {
		tau := s.Tension
		x = withTension(p0.X, p1.X, p2.X, p3.X, tau)
		y = withTension(p0.Y, p1.Y, p2.Y, p3.Y, tau)
		z = withTension(p0.Z, p1.Z, p2.Z, p3.Z, tau)
		return
	}
	exp := N(s.Type.exponent())
	dt0 := curves.Pow(p0.DistanceToSquared(p1), exp)
	dt1 := curves.Pow(p1.DistanceToSquared(p2), exp)
	dt2 := curves.Pow(p2.DistanceToSquared(p3), exp)
	// avoid division by 0 for coinciding points
	eps := curves.Epsilon[N]()
	if dt1 < eps {
		dt1 = 1
	}
	if dt0 < eps {
		dt0 = dt1
	}
	if dt2 < eps {
		dt2 = dt1
	}
	x = nonuniform(p0.X, p1.X, p2.X, p3.X, dt0, dt1, dt2)
	y = nonuniform(p0.Y, p1.Y, p2.Y, p3.Y, dt0, dt1, dt2)
	z = nonuniform(p0.Z, p1.Z, p2.Z, p3.Z, dt0, dt1, dt2)
	return
}
