package catmullrom

import (
	"github.com/npillmayer/curves"
	"github.com/npillmayer/curves/polyn"
)

// hermite returns the cubic with value x0 and slope t0 at w=0, and value x1
// and slope t1 at w=1.
func hermite[N curves.Scalar](x0, x1, t0, t1 N) cubicPoly[N] {
	return cubicPoly[N]{
		c0: x0,
		c1: t0,
		c2: -3*x0 + 3*x1 - 2*t0 - t1,
		c3: 2*x0 - 2*x1 + t0 + t1,
	}
}

// withTension builds the segment between x1 and x2 with tangents
// proportional to the difference of the neighbours.
func withTension[N curves.Scalar](x0, x1, x2, x3, tension N) cubicPoly[N] {
	return hermite(x1, x2, tension*(x2-x0), tension*(x3-x1))
}

// nonuniform builds the segment between x1 and x2, where dt0, dt1, dt2 are
// the parameter intervals between x0…x3.
func nonuniform[N curves.Scalar](x0, x1, x2, x3, dt0, dt1, dt2 N) cubicPoly[N] {
	t1 := (x1-x0)/dt0 - (x2-x0)/(dt0+dt1) + (x2-x1)/dt1
	t2 := (x2-x1)/dt1 - (x3-x1)/(dt1+dt2) + (x3-x2)/dt2
	// rescale tangents for parametrization in [0,1]
	return hermite(x1, x2, t1*dt1, t2*dt1)
}

func (c cubicPoly[N]) calc(w N) N {
	w2 := w * w
	w3 := w2 * w
	return c.c0 + c.c1*w + c.c2*w2 + c.c3*w3
}

// derivative of the cubic at w.
func (c cubicPoly[N]) derivative(w N) N {
	return c.c1 + 2*c.c2*w + 3*c.c3*w*w
}

func (c cubicPoly[N]) polynomial() polyn.Polynomial {
	return polyn.NewConstantPolynomial(float64(c.c0)).
		SetTerm(1, float64(c.c1)).
		SetTerm(2, float64(c.c2)).
		SetTerm(3, float64(c.c3)).
		Zap()
}
