package raycaster

import (
	"math"
	"testing"
)

func TestVector2Arithmetic(t *testing.T) {
	a := Vector2{X: 1, Y: 2}
	b := Vector2{X: 3, Y: 4}

	if got := a.Add(b); got != (Vector2{4, 6}) {
		t.Errorf("Add: got %v", got)
	}
	if got := b.Sub(a); got != (Vector2{2, 2}) {
		t.Errorf("Sub: got %v", got)
	}
	if got := a.Scale(2); got != (Vector2{2, 4}) {
		t.Errorf("Scale: got %v", got)
	}
	if got := a.Dot(b); got != 11 {
		t.Errorf("Dot: got %v, want 11", got)
	}
	if got := a.Cross(b); got != -2 {
		t.Errorf("Cross: got %v, want -2", got)
	}
}

func TestVector2Normalize(t *testing.T) {
	v := Vector2{X: 3, Y: 4}
	v.Normalize()
	if math.Abs(v.Length()-1) > 1e-12 {
		t.Errorf("Normalize: length = %v, want 1", v.Length())
	}

	zero := Vector2{}
	zero.Normalize()
	if zero != (Vector2{0, 0}) {
		t.Errorf("Normalize zero vector: got %v, want (0,0)", zero)
	}
}

func TestVector2Rotated(t *testing.T) {
	v := Vector2{X: 1, Y: 0}
	got := v.Rotated(math.Pi / 2)
	if math.Abs(got.X) > 1e-12 || math.Abs(got.Y-1) > 1e-12 {
		t.Errorf("Rotated(pi/2): got %v, want (0,1)", got)
	}
}

func TestVector3CrossAndDot(t *testing.T) {
	x := Vector3{X: 1}
	y := Vector3{Y: 1}
	z := x.Cross(y)
	if z != (Vector3{Z: 1}) {
		t.Errorf("Cross: got %v, want (0,0,1)", z)
	}
	if got := x.Dot(Vector3{X: 2}); got != 2 {
		t.Errorf("Dot: got %v, want 2", got)
	}
}

func TestVector3Normalize(t *testing.T) {
	v := Vector3{X: 0, Y: 0, Z: 5}
	v.Normalize()
	if v != (Vector3{0, 0, 1}) {
		t.Errorf("Normalize: got %v, want (0,0,1)", v)
	}
}
