// Package catmullrom evaluates Catmull-Rom splines through a sequence of
// control points in 3D space.
/*

A Catmull-Rom spline passes through all of its control points. Every pair
of consecutive points is connected by a cubic segment whose tangents are
derived from the neighbouring points. Open splines run from the first to
the last point; at both ends a virtual neighbour is extrapolated. Closed
splines additionally connect the last point back to the first one.

Three parametrizations are supported:

   Uniform      tangents are the differences of the neighbours, scaled
                by the spline's tension (0.5 yields the classic
                Catmull-Rom spline)
   Centripetal  segments are parametrized by the square root of the
                distance between control points
   Chordal      segments are parametrized by the distance between
                control points

The non-uniform parametrizations avoid cusps and self-intersections when
control points are spaced unevenly. See

   On the Parameterization of Catmull-Rom Curves
   Cem Yuksel, Scott Schaefer, John Keyser
   2009 SIAM/ACM Joint Conference on Geometric and Physical Modeling

Usage

Clients either construct a spline directly

   s := catmullrom.New(catmullrom.Centripetal, false, 0.5, p0, p1, p2, p3)

or with a builder (package qualifiers omitted for clarity and brevity):

   s := Nullspline[float64](Uniform).Tension(0.5).Knot(Vec3(0,0,0)).Knot(Vec3(1,2,0))
      .Knot(Vec3(3,2,0)).Knot(Vec3(4,0,0)).Cycle()

A spline is a curves.Curve, so all the derived operations of package
curves apply:

   length := curves.Length(s, 100)
   for p := range curves.Points(s, 32) {
      ...
   }

Splines are immutable values and may be shared between goroutines.

BSD License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package catmullrom
