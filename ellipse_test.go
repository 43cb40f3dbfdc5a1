package curves

import (
	"errors"
	"math"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestEllipsePoints(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	curve := DefaultEllipse[float32]()
	curve2 := curve
	curve2.Orientation = NewQuatAxisAngle(Vec3[float32](1, 0, 0), math.Pi/2)
	assert.True(t, curve.Valid())
	for i := 0; i < 16; i++ {
		u := float32(i) / 16
		angle := float64(TwoPi[float32]() * u)
		v := Vec3(float32(math.Cos(angle)), float32(math.Sin(angle)), 0)
		v2 := Vec3(float32(math.Cos(angle)), 0, float32(math.Sin(angle)))
		if !curve.Point(u).IsApprox(v, 1e-4) {
			t.Errorf("angle %g index %d: expected %v, got %v", angle, i, v, curve.Point(u))
		}
		if !curve2.Point(u).IsApprox(v2, 1e-4) {
			t.Errorf("angle %g index %d: expected %v, got %v", angle, i, v2, curve2.Point(u))
		}
	}
}

func TestEllipseLength(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	assert.InDelta(t, 2*math.Pi, Length[float64](DefaultEllipse[float64](), 512), 1e-4)
	assert.InDelta(t, 2*math.Pi, float64(Length[float32](DefaultEllipse[float32](), 512)), 1e-3)
}

func TestEllipseInPlaneRotation(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	e := Ellipse[float64]{X: 1, Y: 2, XRadius: 2, YRadius: 1, EndAngle: math.Pi, Rotation: math.Pi / 2}
	diff(t, Vec3(1.0, 4.0, 0.0), e.Point(0), approx)
	diff(t, Vec3(0.0, 2.0, 0.0), e.Point(0.5), approx)
}

func TestEllipseSweepDirection(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	ccw := Ellipse[float64]{XRadius: 1, YRadius: 1, EndAngle: math.Pi / 2}
	cw := ccw
	cw.Clockwise = true
	s := math.Sqrt2 / 2
	diff(t, Vec3(s, s, 0), ccw.Point(0.5), approx)
	diff(t, Vec3(-s, -s, 0), cw.Point(0.5), approx)
	// both end at the same point
	diff(t, ccw.Point(1), cw.Point(1), approx)
	// full circle requested clockwise
	full := DefaultEllipse[float64]()
	full.Clockwise = true
	diff(t, Vec3(0.0, -1.0, 0.0), full.Point(0.25), approx)
}

func TestEllipseAngleNormalization(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	point := Ellipse[float64]{XRadius: 1, YRadius: 1, StartAngle: 1, EndAngle: 1}
	for i := 0; i <= 4; i++ {
		diff(t, Vec3(math.Cos(1), math.Sin(1), 0), point.Point(float64(i)/4), approx)
	}
	twice := Ellipse[float64]{XRadius: 1, YRadius: 1, EndAngle: 4 * math.Pi}
	diff(t, Vec3(0.0, 1.0, 0.0), twice.Point(0.25), approx)
	backwards := Ellipse[float64]{XRadius: 1, YRadius: 1, EndAngle: -math.Pi / 2}
	diff(t, Vec3(0.0, 1.0, 0.0), backwards.Point(1.0/3), approx)
	diff(t, Vec3(0.0, -1.0, 0.0), backwards.Point(1), approx)
}

func TestEllipseLargeSweep(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	turns := Ellipse[float64]{XRadius: 1, YRadius: 1, EndAngle: 2000*math.Pi + math.Pi/2}
	diff(t, Vec3(0.0, 1.0, 0.0), turns.Point(1), approx)
	diff(t, Vec3(math.Sqrt2/2, math.Sqrt2/2, 0), turns.Point(0.5), approx)
	backwards := Ellipse[float64]{XRadius: 1, YRadius: 1, EndAngle: -2000*math.Pi - math.Pi/2}
	diff(t, Vec3(0.0, -1.0, 0.0), backwards.Point(1), approx)
	// adding 2π does not change a float32 of this magnitude
	huge := DefaultEllipse[float32]()
	huge.EndAngle = 1e9
	for i := 0; i <= 4; i++ {
		assert.InDelta(t, 1.0, float64(huge.Point(float32(i)/4).Length()), 1e-4)
	}
	inf := DefaultEllipse[float64]()
	inf.EndAngle = math.Inf(1)
	assert.True(t, math.IsNaN(inf.Point(0.5).X))
	inf.EndAngle = math.Inf(-1)
	assert.True(t, math.IsNaN(inf.Point(0.5).X))
}

func TestEllipseInvalidRadius(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	e := DefaultEllipse[float64]()
	e.YRadius = 0
	assert.False(t, e.Valid())
	if err := e.Validate(); !errors.Is(err, ErrRadius) {
		t.Fatalf("expected ErrRadius, got %v", err)
	}
	e.YRadius, e.XRadius = 1, -1
	assert.False(t, e.Valid())
}
