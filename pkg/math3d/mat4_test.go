package math3d

import (
	"math"
	"testing"
)

const eps = 1e-9

func vecsClose(a, b Vec3, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol &&
		math.Abs(a.Y-b.Y) <= tol &&
		math.Abs(a.Z-b.Z) <= tol
}

func matsClose(a, b Mat4, tol float64) bool {
	for i := range a {
		if math.Abs(a[i]-b[i]) > tol {
			return false
		}
	}
	return true
}

func TestIdentityRoundTrip(t *testing.T) {
	// translation(0,0,0) * rotation(0) * scale(1,1,1) must leave any point
	// unchanged.
	m := Translate(0, 0, 0).Mul(Euler(0, 0, 0)).Mul(Scale(1, 1, 1))

	points := []Vec3{
		{0, 0, 0},
		{1, 2, 3},
		{-50, 50, 0.5},
		{1e6, -1e6, 42},
	}
	for _, p := range points {
		if got := m.MulVec3(p); !vecsClose(got, p, eps) {
			t.Errorf("identity round-trip moved %v to %v", p, got)
		}
	}
}

func TestMulAssociative(t *testing.T) {
	a := Translate(3, -2, 7)
	b := Euler(0.3, 1.1, -0.6)
	c := Scale(2, 0.5, 4)

	left := a.Mul(b).Mul(c)
	right := a.Mul(b.Mul(c))

	if !matsClose(left, right, 1e-12) {
		t.Errorf("(A*B)*C != A*(B*C):\n%v\n%v", left, right)
	}
}

func TestMulAppliesRightFirst(t *testing.T) {
	// Translate * Scale applied to a point scales first, then translates.
	m := Translate(10, 0, 0).Mul(Scale(2, 2, 2))
	got := m.MulVec3(V3(1, 1, 1))
	want := V3(12, 2, 2)
	if !vecsClose(got, want, eps) {
		t.Errorf("Translate*Scale applied = %v, want %v", got, want)
	}
}

func TestRotations(t *testing.T) {
	tests := []struct {
		name string
		m    Mat4
		in   Vec3
		want Vec3
	}{
		{"x 90deg sends +Y to +Z", RotateX(math.Pi / 2), V3(0, 1, 0), V3(0, 0, 1)},
		{"y 90deg sends +Z to +X", RotateY(math.Pi / 2), V3(0, 0, 1), V3(1, 0, 0)},
		{"z 90deg sends +X to +Y", RotateZ(math.Pi / 2), V3(1, 0, 0), V3(0, 1, 0)},
		{"euler matches product", Euler(0.4, -0.2, 1.3),
			V3(1, 2, 3), RotateX(0.4).Mul(RotateY(-0.2)).Mul(RotateZ(1.3)).MulVec3(V3(1, 2, 3))},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.m.MulVec3(tc.in); !vecsClose(got, tc.want, 1e-9) {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestAffineBottomRowPreserved(t *testing.T) {
	constructors := []Mat4{
		Identity(),
		Translate(1, 2, 3),
		Scale(2, 3, 4),
		RotateX(0.7),
		RotateY(-1.2),
		RotateZ(2.5),
		Euler(0.1, 0.2, 0.3),
		Compose(V3(1, 2, 3), V3(0.4, 0.5, 0.6), V3(2, 2, 2)),
	}
	m := Identity()
	for _, c := range constructors {
		m = m.Mul(c)
	}
	// Bottom row is m[3], m[7], m[11], m[15] in column-major storage.
	if m[3] != 0 || m[7] != 0 || m[11] != 0 || m[15] != 1 {
		t.Errorf("composition broke the affine bottom row: [%v %v %v %v]",
			m[3], m[7], m[11], m[15])
	}
}

func TestComposeOrder(t *testing.T) {
	// Compose = T * R * S: a unit +X point is scaled, rotated 90 degrees
	// around Z, then translated.
	m := Compose(V3(10, 0, 0), V3(0, 0, math.Pi/2), V3(3, 1, 1))
	got := m.MulVec3(V3(1, 0, 0))
	want := V3(10, 3, 0)
	if !vecsClose(got, want, 1e-9) {
		t.Errorf("Compose applied = %v, want %v", got, want)
	}
}

func TestMulVec3Dir(t *testing.T) {
	m := Translate(100, 200, 300).Mul(RotateZ(math.Pi / 2))
	got := m.MulVec3Dir(V3(1, 0, 0))
	// Direction ignores translation.
	if !vecsClose(got, V3(0, 1, 0), 1e-9) {
		t.Errorf("MulVec3Dir = %v, want (0,1,0)", got)
	}
}

func TestTranslationExtract(t *testing.T) {
	m := Translate(4, 5, 6)
	if got := m.Translation(); !vecsClose(got, V3(4, 5, 6), 0) {
		t.Errorf("Translation() = %v", got)
	}
}
