package vecs

import (
	"math"
	"testing"
)

func TestVec3Literals(t *testing.T) {
	if got := V3(10.0, 10.0, 10.0).Dot(V3(10.0, 10.0, 10.0)); got != 300 {
		t.Fatalf("dot=%v", got)
	}
	if got := V3(2.0, 3.0, 1.0).Add(V3(3.0, 2.0, 4.0)); got != V3(5.0, 5.0, 5.0) {
		t.Fatalf("add=%v", got)
	}
	if got := V3(10.0, 30.0, 10.0).Sub(V3(5.0, 10.0, 3.0)); got != V3(5.0, 20.0, 7.0) {
		t.Fatalf("sub=%v", got)
	}
}

func TestVec3Cross(t *testing.T) {
	if got := V3(3.0, 6.0, 8.0).Cross(V3(9.0, 4.0, 7.0)); got != V3(10.0, 51.0, -42.0) {
		t.Fatalf("cross=%v", got)
	}
	if got := V3(3.0, 2.0, 1.0).Cross(V3(1.0, 2.0, 3.0)); got != V3(4.0, -8.0, 4.0) {
		t.Fatalf("cross=%v", got)
	}
	// Basis vectors follow the right-hand rule.
	if got := V3(1.0, 0.0, 0.0).Cross(V3(0.0, 1.0, 0.0)); got != V3(0.0, 0.0, 1.0) {
		t.Fatalf("x cross y=%v", got)
	}
}

func TestVec3CrossAntiCommutes(t *testing.T) {
	pairs := [][2]Vec3[float64]{
		{V3(3.0, 6.0, 8.0), V3(9.0, 4.0, 7.0)},
		{V3(1.0, 0.0, -2.5), V3(0.25, -4.0, 3.0)},
		{V3(-1.0, -1.0, -1.0), V3(2.0, 5.0, -9.0)},
	}
	for _, p := range pairs {
		if p[0].Cross(p[1]) != p[1].Cross(p[0]).Neg() {
			t.Fatalf("cross(%v,%v) != -cross(%v,%v)", p[0], p[1], p[1], p[0])
		}
	}
}

func TestVec3CrossOrthogonal(t *testing.T) {
	a := V3(3.0, 6.0, 8.0)
	b := V3(9.0, 4.0, 7.0)
	c := a.Cross(b)
	if c.Dot(a) != 0 || c.Dot(b) != 0 {
		t.Fatalf("cross not orthogonal: c.a=%v c.b=%v", c.Dot(a), c.Dot(b))
	}
}

func TestVec3DotCommutes(t *testing.T) {
	a := V3(1.5, -2.0, 0.25)
	b := V3(-8.0, 3.0, 12.0)
	if a.Dot(b) != b.Dot(a) {
		t.Fatalf("dot(a,b)=%v dot(b,a)=%v", a.Dot(b), b.Dot(a))
	}
}

func TestVec3Equality(t *testing.T) {
	if V3(5.0, 5.0, 5.0) != V3(5.0, 5.0, 5.0) {
		t.Fatalf("equal vectors compare unequal")
	}
	if V3(5.0, 6.0, 7.0) == V3(6.0, 5.0, 9.0) {
		t.Fatalf("unequal vectors compare equal")
	}
}

func TestVec3AdditiveIdentityInverse(t *testing.T) {
	a := V3(3.25, -8.5, 0.125)
	if got := a.Add(V3(0.0, 0.0, 0.0)); got != a {
		t.Fatalf("a+0=%v", got)
	}
	if got := a.Sub(a); got != V3(0.0, 0.0, 0.0) {
		t.Fatalf("a-a=%v", got)
	}
}

func TestVec3Assign(t *testing.T) {
	v := V3(1.0, 2.0, 3.0)
	v.AddAssign(V3(3.0, 2.0, 1.0))
	if v != V3(4.0, 4.0, 4.0) {
		t.Fatalf("after AddAssign v=%v", v)
	}
	v.SubAssign(V3(1.0, 1.0, 1.0))
	if v != V3(3.0, 3.0, 3.0) {
		t.Fatalf("after SubAssign v=%v", v)
	}
}

func TestVec3SetAndAccessors(t *testing.T) {
	v := V3(9.0, 7.0, 1.0)
	v.Set(5, 0, 8)
	if v != V3(5.0, 0.0, 8.0) {
		t.Fatalf("after Set v=%v", v)
	}
	if v.X() != 5 || v.Y() != 0 || v.Z() != 8 {
		t.Fatalf("accessors x=%v y=%v z=%v", v.X(), v.Y(), v.Z())
	}
}

func TestVec3MulDivShapes(t *testing.T) {
	v := V3(2.0, -3.0, 4.0)
	if got := v.MulScalar(2); got != V3(4.0, -6.0, 8.0) {
		t.Fatalf("mul scalar=%v", got)
	}
	if got := v.Mul(V3(1.0, 2.0, 0.5)); got != V3(2.0, -6.0, 2.0) {
		t.Fatalf("mul vec=%v", got)
	}
	if got := v.DivScalar(2); got != V3(1.0, -1.5, 2.0) {
		t.Fatalf("div scalar=%v", got)
	}
	if got := v.Div(V3(2.0, 3.0, 4.0)); got != V3(1.0, -1.0, 1.0) {
		t.Fatalf("div vec=%v", got)
	}
	if got := ScalarDiv3(12.0, V3(2.0, 3.0, 4.0)); got != V3(6.0, 4.0, 3.0) {
		t.Fatalf("scalar div=%v", got)
	}
}

func TestVec3LengthAndNormalize(t *testing.T) {
	if got := V3(10.0, 10.0, 10.0).Length(); got != math.Sqrt(300) {
		t.Fatalf("length=%v", got)
	}
	if got := V3(1.0, 2.0, 2.0).Length(); got != 3 {
		t.Fatalf("length=%v", got)
	}
	if got := V3(1.0, 2.0, 2.0).LengthSquared(); got != 9 {
		t.Fatalf("length squared=%v", got)
	}
	if got := V3(100.0, 0.0, 0.0).Normalize(); got != V3(1.0, 0.0, 0.0) {
		t.Fatalf("normalize=%v", got)
	}
	n := V3(3.0, 6.0, 8.0).Normalize()
	if math.Abs(n.Length()-1) > 1e-12 {
		t.Fatalf("unit length=%v", n.Length())
	}
	z := V3(0.0, 0.0, 0.0).Normalize()
	if !math.IsNaN(z.X()) || !math.IsNaN(z.Y()) || !math.IsNaN(z.Z()) {
		t.Fatalf("normalize zero=%v", z)
	}
}

func TestVec3ScalingScalesLength(t *testing.T) {
	a := V3(1.0, -2.0, 2.0)
	for _, k := range []float64{3, -0.5, 7} {
		got := a.MulScalar(k).Length()
		want := a.Length() * math.Abs(k)
		if math.Abs(got-want) > 1e-12 {
			t.Fatalf("k=%v length=%v want=%v", k, got, want)
		}
	}
}

func TestVec3Abs(t *testing.T) {
	if got := V3(-12.0, 15.0, -9.0).Abs(); got != V3(12.0, 15.0, 9.0) {
		t.Fatalf("abs=%v", got)
	}
}

func TestVec3String(t *testing.T) {
	if got := V3(1.0, 2.5, -3.0).String(); got != "(1, 2.5, -3)" {
		t.Fatalf("string=%q", got)
	}
}

func TestVec3Float32(t *testing.T) {
	a := V3[float32](3, 2, 1)
	b := V3[float32](1, 2, 3)
	if got := a.Cross(b); got != V3[float32](4, -8, 4) {
		t.Fatalf("float32 cross=%v", got)
	}
	if got := V3[float32](1, 2, 2).Length(); got != 3 {
		t.Fatalf("float32 length=%v", got)
	}
}
