package catmullrom

import (
	"fmt"
	"strings"

	"github.com/npillmayer/curves"
)

// Builder collects control points for a spline.
type Builder[N curves.Scalar] struct {
	typ     Type
	tension N
	points  []curves.Vector3[N]
}

// Nullspline creates an empty builder for a spline of the given type,
// to be extended by subsequent builder calls. The following example builds
// a closed centripetal spline through four knots:
//
//	s := Nullspline[float64](Centripetal).Knot(curves.Vec3(0.,0,0)).
//	    Knot(curves.Vec3(1.,1,0)).Knot(curves.Vec3(2.,0,0)).
//	    Knot(curves.Vec3(1.,-1,0)).Cycle()
//
// Calling Cycle() or End() returns the spline. The builder starts with
// DefaultTension.
func Nullspline[N curves.Scalar](typ Type) *Builder[N] {
	return &Builder[N]{typ: typ, tension: N(DefaultTension)}
}

// Tension sets the tension of a Uniform spline.
// Part of builder functionality.
func (b *Builder[N]) Tension(tension N) *Builder[N] {
	b.tension = tension
	return b
}

// Knot adds a control point.
// Part of builder functionality.
func (b *Builder[N]) Knot(p curves.Vector3[N]) *Builder[N] {
	b.points = append(b.points, p)
	return b
}

// Knots adds a sequence of control points.
// Part of builder functionality.
func (b *Builder[N]) Knots(pts ...curves.Vector3[N]) *Builder[N] {
	b.points = append(b.points, pts...)
	return b
}

// End returns an open spline through the knots collected so far.
func (b *Builder[N]) End() Spline[N] {
	return b.build(false)
}

// Cycle returns a closed spline through the knots collected so far.
func (b *Builder[N]) Cycle() Spline[N] {
	if len(b.points) == 0 {
		panic("cannot close empty spline")
	}
	return b.build(true)
}

func (b *Builder[N]) build(closed bool) Spline[N] {
	s := New(b.typ, closed, b.tension, b.points...)
	if err := s.Validate(); err != nil {
		tracer().Infof("building invalid spline: %v", err)
	}
	tracer().Debugf("spline = %s", AsString(s))
	return s
}

// AsString returns a spline's control points as a (debugging) string.
//
// Example, a closed spline through 4 points:
//
//	(1,1,0) .. (2,2,0) .. (3,1,0) .. (2,0,0) .. cycle
func AsString[N curves.Scalar](s Spline[N]) string {
	var sb strings.Builder
	for i, pt := range s.Points {
		if i > 0 {
			sb.WriteString(" .. ")
		}
		sb.WriteString(ptstring(pt))
	}
	if s.Closed {
		sb.WriteString(" .. cycle")
	}
	return sb.String()
}

func ptstring[N curves.Scalar](p curves.Vector3[N]) string {
	return fmt.Sprintf("(%.4g,%.4g,%.4g)", p.X, p.Y, p.Z)
}
