/*
Package curves implements parametric curves in 3D space: straight segments,
cubic Bézier curves and ellipse arcs, together with the vector and scalar
arithmetic they are built on. Catmull-Rom splines live in sub-package
catmullrom.

Every curve maps a parameter t in [0,1] to a point. Derived quantities
(tangents, arc length, sampled points) are computed from that single
primitive by the generic functions of this package.

Curves are generic over their scalar type, which may be float32 or float64
(or types derived from them).

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package curves

import (
	"math"

	"github.com/chewxy/math32"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/exp/constraints"
)

// tracer writes to trace with key 'curves'
func tracer() tracing.Trace {
	return tracing.Select("curves")
}

// === Configuration =========================================================

// CheckValid enables a development-time safety net: if set, the derived
// operations (Tangent, Length, Points, ...) panic when asked to evaluate
// an invalid curve.
var CheckValid = false

// Tolerance : numbers below this are considered 0 by Is0 and Zap.
var Tolerance float64 = 0.0000001

// Is0 is a predicate: is n = 0 ?
func Is0(n float64) bool {
	return math.Abs(n) <= Tolerance
}

// Is1 is a predicate: is n = 1.0 ?
func Is1(n float64) bool {
	return math.Abs(1-n) <= Tolerance
}

// Zap makes n = 0 if n "means" to be zero
func Zap(n float64) float64 {
	if Is0(n) {
		n = 0
	}
	return n
}

// === Numeric Data Type =====================================================

// Scalar is the numeric type curves are generic over.
type Scalar interface {
	constraints.Float
}

const (
	epsilon32 = 0x1p-23
	epsilon64 = 0x1p-52
)

// single reports whether N carries single precision. Detected by value,
// so that types derived from float32 are recognized as well.
func single[N Scalar]() bool {
	return N(1)+N(1e-10) == N(1)
}

// Epsilon returns the machine epsilon for the precision of N.
func Epsilon[N Scalar]() N {
	if single[N]() {
		return N(epsilon32)
	}
	return N(epsilon64)
}

// TwoPi returns 2π in the precision of N.
func TwoPi[N Scalar]() N {
	return N(2 * math.Pi)
}

// Floor returns the greatest integer value less than or equal to x.
func Floor[N Scalar](x N) N {
	if single[N]() {
		return N(math32.Floor(float32(x)))
	}
	return N(math.Floor(float64(x)))
}

// Abs returns the absolute value of x.
func Abs[N Scalar](x N) N {
	if single[N]() {
		return N(math32.Abs(float32(x)))
	}
	return N(math.Abs(float64(x)))
}

// Sin returns the sine of the radian argument x.
func Sin[N Scalar](x N) N {
	if single[N]() {
		return N(math32.Sin(float32(x)))
	}
	return N(math.Sin(float64(x)))
}

// Cos returns the cosine of the radian argument x.
func Cos[N Scalar](x N) N {
	if single[N]() {
		return N(math32.Cos(float32(x)))
	}
	return N(math.Cos(float64(x)))
}

// Pow returns x**y.
func Pow[N Scalar](x, y N) N {
	if single[N]() {
		return N(math32.Pow(float32(x), float32(y)))
	}
	return N(math.Pow(float64(x), float64(y)))
}

// Sqrt returns the square root of x.
func Sqrt[N Scalar](x N) N {
	if single[N]() {
		return N(math32.Sqrt(float32(x)))
	}
	return N(math.Sqrt(float64(x)))
}
