package curves

import "fmt"

// Ellipse is an elliptic arc in the xy-plane, centered at (X,Y), running
// from StartAngle to EndAngle (radians).
//
// Rotation turns the arc around its center within the plane. Orientation
// is then applied to the placed point, rotating the arc out of the plane
// if needed; its zero value leaves points unchanged.
type Ellipse[N Scalar] struct {
	X           N       `yaml:"x"`
	Y           N       `yaml:"y"`
	XRadius     N       `yaml:"xradius"`
	YRadius     N       `yaml:"yradius"`
	StartAngle  N       `yaml:"start"`
	EndAngle    N       `yaml:"end"`
	Clockwise   bool    `yaml:"clockwise"`
	Rotation    N       `yaml:"rotation"`
	Orientation Quat[N] `yaml:"orientation"`
}

var _ Curve[float64] = Ellipse[float64]{}

// DefaultEllipse returns the unit circle around the origin, swept once
// counter-clockwise starting at (1,0,0).
func DefaultEllipse[N Scalar]() Ellipse[N] {
	return Ellipse[N]{
		XRadius:     1,
		YRadius:     1,
		EndAngle:    TwoPi[N](),
		Orientation: IdentityQuat[N](),
	}
}

// Point returns the point of the arc at t.
//
// Equal start and end angles denote a single point. Otherwise an angle
// difference of a multiple of 2π denotes the full ellipse.
func (e Ellipse[N]) Point(t N) Vector3[N] {
	twoPi := TwoPi[N]()
	eps := Epsilon[N]()
	delta := e.EndAngle - e.StartAngle
	samePoints := delta < eps
	if Abs(delta) > 2*twoPi {
		// fold large sweeps at once; non-finite sweeps become NaN
		delta -= twoPi * Floor(delta/twoPi)
	}
	for delta < 0 {
		delta += twoPi
	}
	for delta > twoPi {
		delta -= twoPi
	}
	if delta < eps {
		if samePoints {
			delta = 0
		} else {
			delta = twoPi
		}
	}
	if e.Clockwise && !samePoints {
		if delta == twoPi {
			delta = -twoPi
		} else {
			delta -= twoPi
		}
	}
	angle := e.StartAngle + t*delta
	x := e.X + e.XRadius*Cos(angle)
	y := e.Y + e.YRadius*Sin(angle)
	if e.Rotation != 0 {
		cos, sin := Cos(e.Rotation), Sin(e.Rotation)
		dx, dy := x-e.X, y-e.Y
		x = e.X + dx*cos - dy*sin
		y = e.Y + dx*sin + dy*cos
	}
	return e.Orientation.MulVec3(Vector3[N]{X: x, Y: y})
}

// Validate checks for positive radii.
func (e Ellipse[N]) Validate() error {
	if e.XRadius <= 0 || e.YRadius <= 0 {
		return fmt.Errorf("%w: radii are %g and %g", ErrRadius, e.XRadius, e.YRadius)
	}
	return nil
}

// Valid is a predicate: are both radii positive?
func (e Ellipse[N]) Valid() bool {
	return e.Validate() == nil
}
