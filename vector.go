package curves

import "fmt"

// === Vector Data Type ======================================================

// Vector3 is a point or direction in 3D space.
type Vector3[N Scalar] struct {
	X N `yaml:"x"`
	Y N `yaml:"y"`
	Z N `yaml:"z"`
}

// Vec3 is a quick notation for constructing a vector.
func Vec3[N Scalar](x, y, z N) Vector3[N] {
	return Vector3[N]{X: x, Y: y, Z: z}
}

// Splat returns a vector with all components set to s.
func Splat[N Scalar](s N) Vector3[N] {
	return Vector3[N]{X: s, Y: s, Z: s}
}

// Pretty Stringer for vectors.
func (v Vector3[N]) String() string {
	return fmt.Sprintf("(%g,%g,%g)", v.X, v.Y, v.Z)
}

// Add returns v + o.
func (v Vector3[N]) Add(o Vector3[N]) Vector3[N] {
	return Vector3[N]{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// Sub returns v - o.
func (v Vector3[N]) Sub(o Vector3[N]) Vector3[N] {
	return Vector3[N]{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

// Scale returns v scaled by factor a.
func (v Vector3[N]) Scale(a N) Vector3[N] {
	return Vector3[N]{X: v.X * a, Y: v.Y * a, Z: v.Z * a}
}

// Dot returns the dot product v · o.
func (v Vector3[N]) Dot(o Vector3[N]) N {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Cross returns the cross product v × o.
func (v Vector3[N]) Cross(o Vector3[N]) Vector3[N] {
	return Vector3[N]{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// LengthSquared returns |v|².
func (v Vector3[N]) LengthSquared() N {
	return v.Dot(v)
}

// Length returns the euclidean length |v|.
func (v Vector3[N]) Length() N {
	return Sqrt(v.LengthSquared())
}

// DistanceTo returns the euclidean distance between v and o.
func (v Vector3[N]) DistanceTo(o Vector3[N]) N {
	return v.Sub(o).Length()
}

// DistanceToSquared returns the squared distance between v and o.
func (v Vector3[N]) DistanceToSquared(o Vector3[N]) N {
	return v.Sub(o).LengthSquared()
}

// Normal returns v scaled to unit length. The zero vector is returned
// unchanged.
func (v Vector3[N]) Normal() Vector3[N] {
	l := v.Length()
	if l == 0 {
		return v
	}
	return Vector3[N]{X: v.X / l, Y: v.Y / l, Z: v.Z / l}
}

// Lerp interpolates linearly between v (at t=0) and o (at t=1).
func (v Vector3[N]) Lerp(o Vector3[N], t N) Vector3[N] {
	return v.Scale(1 - t).Add(o.Scale(t))
}

// IsEqual compares two vectors component by component, without tolerance.
func (v Vector3[N]) IsEqual(o Vector3[N]) bool {
	return v.X == o.X && v.Y == o.Y && v.Z == o.Z
}

// IsApprox compares two vectors, allowing each component to deviate by tol.
func (v Vector3[N]) IsApprox(o Vector3[N], tol N) bool {
	return Abs(v.X-o.X) <= tol && Abs(v.Y-o.Y) <= tol && Abs(v.Z-o.Z) <= tol
}

// === Rotations =============================================================

// Quat is a quaternion with X,Y,Z and W components, used as a rotation.
// The zero Quat leaves vectors unchanged when applied with MulVec3.
type Quat[N Scalar] struct {
	X N `yaml:"x"`
	Y N `yaml:"y"`
	Z N `yaml:"z"`
	W N `yaml:"w"`
}

// IdentityQuat returns the identity rotation.
func IdentityQuat[N Scalar]() Quat[N] {
	return Quat[N]{W: 1}
}

// NewQuatAxisAngle returns a rotation by angle (radians) around axis.
// The axis is normalized.
func NewQuatAxisAngle[N Scalar](axis Vector3[N], angle N) Quat[N] {
	axis = axis.Normal()
	s := Sin(angle / 2)
	return Quat[N]{
		X: axis.X * s,
		Y: axis.Y * s,
		Z: axis.Z * s,
		W: Cos(angle / 2),
	}
}

// MulVec3 applies the rotation q to v.
func (q Quat[N]) MulVec3(v Vector3[N]) Vector3[N] {
	// v' = v + 2w(q×v) + 2q×(q×v)
	qv := Vector3[N]{X: q.X, Y: q.Y, Z: q.Z}
	uv := qv.Cross(v)
	uuv := qv.Cross(uv)
	return v.Add(uv.Scale(2 * q.W)).Add(uuv.Scale(2))
}
