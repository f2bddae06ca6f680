package mesh

import "testing"

func TestVec3_Basics(t *testing.T) {
	v := V3(1, 2, 3)
	w := V3(4, -2, 0.5)

	if got := v.Add(w); got != V3(5, 0, 3.5) {
		t.Errorf("Add = %+v", got)
	}
	if got := v.Sub(w); got != V3(-3, 4, 2.5) {
		t.Errorf("Sub = %+v", got)
	}
	if got := v.Mul(2); got != V3(2, 4, 6) {
		t.Errorf("Mul = %+v", got)
	}
	if got := V3(3, 4, 0).Length(); got != 5 {
		t.Errorf("Length = %g, want 5", got)
	}
	if got := v.Lerp(w, 0); got != v {
		t.Errorf("Lerp(0) = %+v, want v", got)
	}
	if got := v.Lerp(w, 1); !got.Approx(w, 1e-6) {
		t.Errorf("Lerp(1) = %+v, want w", got)
	}
}

func TestTriangle_Translate(t *testing.T) {
	tri := Tri(V3(0, 0, 0), V3(1, 0, 0), V3(0, 1, 0))
	tri.Translate(V3(1, 2, 3))
	want := Tri(V3(1, 2, 3), V3(2, 2, 3), V3(1, 3, 3))
	if tri != want {
		t.Errorf("Translate = %+v, want %+v", tri, want)
	}

	// Translated must not mutate its receiver.
	orig := Tri(V3(0, 0, 0), V3(1, 0, 0), V3(0, 1, 0))
	_ = orig.Translated(V3(5, 5, 5))
	if orig.A != V3(0, 0, 0) {
		t.Errorf("Translated mutated receiver: %+v", orig)
	}
}

func TestBox3_ExpandAndCenter(t *testing.T) {
	b := EmptyBox3()
	if !b.IsEmpty() {
		t.Fatal("EmptyBox3 not empty")
	}
	b.ExpandByPoint(V3(-1, 2, 3))
	b.ExpandByPoint(V3(5, -4, 1))
	if b.IsEmpty() {
		t.Fatal("box empty after expansion")
	}
	if b.Min != V3(-1, -4, 1) || b.Max != V3(5, 2, 3) {
		t.Errorf("bounds = %+v", b)
	}
	if got := b.Center(); got != V3(2, -1, 2) {
		t.Errorf("Center = %+v, want (2,-1,2)", got)
	}
	if got := b.Size(); got != V3(6, 6, 2) {
		t.Errorf("Size = %+v, want (6,6,2)", got)
	}
	if b.Max.X < b.Min.X || b.Max.Y < b.Min.Y || b.Max.Z < b.Min.Z {
		t.Error("min/max invariant violated")
	}
	if !b.ContainsPoint(V3(0, 0, 2)) {
		t.Error("ContainsPoint false for interior point")
	}
	if b.ContainsPoint(V3(6, 0, 2)) {
		t.Error("ContainsPoint true for exterior point")
	}
}
