package math3d

import (
	"math"

	"gonum.org/v1/gonum/num/quat"
)

// unitTolerance is how far LenSq may drift from 1 before Unit rescales.
const unitTolerance = 1e-14

// slerpLinearDot is the cosine above which Slerp falls back to a normalized
// linear blend (angle below ~0.03 rad, where sin(theta) is nearly zero).
const slerpLinearDot = 0.9995

// Quat is a rotation quaternion with scalar part W.
type Quat struct {
	W, X, Y, Z float64
}

// Q creates a new Quat from its components.
func Q(w, x, y, z float64) Quat {
	return Quat{w, x, y, z}
}

// QuatIdentity returns the identity rotation (1, 0, 0, 0).
func QuatIdentity() Quat {
	return Quat{W: 1}
}

// QuatFromAxisAngle builds a unit quaternion rotating angle radians around
// axis. The axis is normalized first, so a degenerate axis rotates around Up.
func QuatFromAxisAngle(axis Vec3, angle float64) Quat {
	axis = axis.Normalize()
	s, c := math.Sincos(angle / 2)
	return Quat{
		W: c,
		X: axis.X * s,
		Y: axis.Y * s,
		Z: axis.Z * s,
	}
}

// QuatFromEuler builds a rotation from pitch (around X), yaw (around Y) and
// roll (around Z), applied in that order.
func QuatFromEuler(pitch, yaw, roll float64) Quat {
	sp, cp := math.Sincos(pitch / 2)
	sy, cy := math.Sincos(yaw / 2)
	sr, cr := math.Sincos(roll / 2)

	return Quat{
		W: cp*cy*cr + sp*sy*sr,
		X: sp*cy*cr - cp*sy*sr,
		Y: cp*sy*cr + sp*cy*sr,
		Z: cp*cy*sr - sp*sy*cr,
	}
}

func (q Quat) number() quat.Number {
	return quat.Number{Real: q.W, Imag: q.X, Jmag: q.Y, Kmag: q.Z}
}

func fromNumber(n quat.Number) Quat {
	return Quat{W: n.Real, X: n.Imag, Y: n.Jmag, Z: n.Kmag}
}

// Len returns the norm of the quaternion.
func (q Quat) Len() float64 {
	return quat.Abs(q.number())
}

// LenSq returns the squared norm.
func (q Quat) LenSq() float64 {
	return q.W*q.W + q.X*q.X + q.Y*q.Y + q.Z*q.Z
}

// Normalize returns the unit quaternion with the same orientation.
// Near-zero quaternions normalize to identity.
func (q Quat) Normalize() Quat {
	l := q.Len()
	if l < degenerateLen {
		return QuatIdentity()
	}
	return Quat{q.W / l, q.X / l, q.Y / l, q.Z / l}
}

// Unit returns q unchanged when it is already unit length, otherwise
// q.Normalize(). Unit quaternions pass through bit for bit.
func (q Quat) Unit() Quat {
	if math.Abs(q.LenSq()-1) <= unitTolerance {
		return q
	}
	return q.Normalize()
}

// Conjugate returns (w, -x, -y, -z).
func (q Quat) Conjugate() Quat {
	return fromNumber(quat.Conj(q.number()))
}

// Inverse returns the multiplicative inverse, or identity when q is
// degenerate.
func (q Quat) Inverse() Quat {
	if q.LenSq() < degenerateLen {
		return QuatIdentity()
	}
	return fromNumber(quat.Inv(q.number()))
}

// Negate returns -q, which encodes the same rotation.
func (q Quat) Negate() Quat {
	return Quat{-q.W, -q.X, -q.Y, -q.Z}
}

// Dot returns the four-component dot product.
func (q Quat) Dot(r Quat) float64 {
	return q.W*r.W + q.X*r.X + q.Y*r.Y + q.Z*r.Z
}

// Mul returns the Hamilton product q * r: the rotation r followed by q.
// Accumulate rotations as delta.Mul(current).
func (q Quat) Mul(r Quat) Quat {
	return fromNumber(quat.Mul(q.number(), r.number()))
}

// Rotate applies the rotation to v, computing q * (0, v) * conj(q).
func (q Quat) Rotate(v Vec3) Vec3 {
	n := q.number()
	p := quat.Mul(quat.Mul(n, quat.Number{Imag: v.X, Jmag: v.Y, Kmag: v.Z}), quat.Conj(n))
	return Vec3{p.Imag, p.Jmag, p.Kmag}
}

// Slerp spherically interpolates from q to r by t in [0, 1] along the
// shorter arc. The result is normalized.
func (q Quat) Slerp(r Quat, t float64) Quat {
	t = Clamp(t, 0, 1)

	dot := q.Dot(r)
	if dot < 0 {
		r = r.Negate()
		dot = -dot
	}

	if dot > slerpLinearDot {
		return Quat{
			W: q.W + (r.W-q.W)*t,
			X: q.X + (r.X-q.X)*t,
			Y: q.Y + (r.Y-q.Y)*t,
			Z: q.Z + (r.Z-q.Z)*t,
		}.Normalize()
	}

	theta := math.Acos(dot)
	sinTheta := math.Sin(theta)
	s0 := math.Sin((1-t)*theta) / sinTheta
	s1 := math.Sin(t*theta) / sinTheta

	return Quat{
		W: q.W*s0 + r.W*s1,
		X: q.X*s0 + r.X*s1,
		Y: q.Y*s0 + r.Y*s1,
		Z: q.Z*s0 + r.Z*s1,
	}.Normalize()
}

// Euler returns the pitch, yaw and roll angles that QuatFromEuler would
// turn back into q. Yaw is limited to [-pi/2, pi/2].
func (q Quat) Euler() (pitch, yaw, roll float64) {
	pitch = math.Atan2(2*(q.W*q.X+q.Y*q.Z), 1-2*(q.X*q.X+q.Y*q.Y))

	sinYaw := 2 * (q.W*q.Y - q.Z*q.X)
	if math.Abs(sinYaw) >= 1 {
		yaw = math.Copysign(math.Pi/2, sinYaw)
	} else {
		yaw = math.Asin(sinYaw)
	}

	roll = math.Atan2(2*(q.W*q.Z+q.X*q.Y), 1-2*(q.Y*q.Y+q.Z*q.Z))
	return pitch, yaw, roll
}

// ApproxEqual reports whether all four components differ by less than tol.
func (q Quat) ApproxEqual(r Quat, tol float64) bool {
	return math.Abs(q.W-r.W) < tol &&
		math.Abs(q.X-r.X) < tol &&
		math.Abs(q.Y-r.Y) < tol &&
		math.Abs(q.Z-r.Z) < tol
}

// SameRotation reports whether q and r encode the same rotation, treating
// q and -q as equal.
func (q Quat) SameRotation(r Quat, tol float64) bool {
	return q.ApproxEqual(r, tol) || q.ApproxEqual(r.Negate(), tol)
}

// Mat4 returns the rotation as a column-major matrix.
func (q Quat) Mat4() Mat4 {
	q = q.Normalize()

	xx, yy, zz := q.X*q.X, q.Y*q.Y, q.Z*q.Z
	xy, xz, yz := q.X*q.Y, q.X*q.Z, q.Y*q.Z
	wx, wy, wz := q.W*q.X, q.W*q.Y, q.W*q.Z

	return Mat4{
		1 - 2*(yy+zz), 2 * (xy + wz), 2 * (xz - wy), 0,
		2 * (xy - wz), 1 - 2*(xx+zz), 2 * (yz + wx), 0,
		2 * (xz + wy), 2 * (yz - wx), 1 - 2*(xx+yy), 0,
		0, 0, 0, 1,
	}
}
