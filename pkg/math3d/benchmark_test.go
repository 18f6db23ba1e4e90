package math3d

import (
	"testing"
)

func BenchmarkQuatMul(b *testing.B) {
	q1 := QuatFromAxisAngle(V3(0, 1, 0), 0.5)
	q2 := QuatFromAxisAngle(V3(1, 0, 0), 0.25)

	for b.Loop() {
		_ = q1.Mul(q2)
	}
}

func BenchmarkQuatRotate(b *testing.B) {
	q := QuatFromAxisAngle(V3(1, 1, 0), 0.7)
	v := V3(0.3, 0.5, 0.8)

	for b.Loop() {
		_ = q.Rotate(v)
	}
}

func BenchmarkQuatSlerp(b *testing.B) {
	q1 := QuatIdentity()
	q2 := QuatFromAxisAngle(V3(0, 0, 1), 2.0)

	for b.Loop() {
		_ = q1.Slerp(q2, 0.37)
	}
}

func BenchmarkMat4MulVec4(b *testing.B) {
	m := Perspective(DegToRad(45), 1, 0.1, 100).Mul(Rotate(V3(0, 1, 0), 0.5))
	v := V4(1, 2, 3, 1)

	for b.Loop() {
		_ = m.MulVec4(v)
	}
}

func BenchmarkVec3Normalize(b *testing.B) {
	v := V3(1, 2, 3)

	for b.Loop() {
		_ = v.Normalize()
	}
}

func BenchmarkVec3AngleTo(b *testing.B) {
	v1 := V3(1, 2, 3)
	v2 := V3(4, 5, 6)

	for b.Loop() {
		_ = v1.AngleTo(v2)
	}
}

func BenchmarkViewProjection(b *testing.B) {
	// Same composition the perspective projector builds per frame.
	view := LookAt(V3(0, 0, 3), V3(0, 0, 0), V3(0, 1, 0))
	proj := Perspective(DegToRad(45), 1, 0.1, 100)

	for b.Loop() {
		_ = proj.Mul(view)
	}
}
