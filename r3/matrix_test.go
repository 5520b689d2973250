package r3

import "testing"

func TestMatrixColAndSetCol(t *testing.T) {
	var m Matrix
	m.SetCol(0, Vector{X: 1, Y: 2, Z: 3})
	m.SetCol(1, Vector{X: 4, Y: 5, Z: 6})
	m.SetCol(2, Vector{X: 7, Y: 8, Z: 9})
	if got, want := m.Col(0), (Vector{X: 1, Y: 2, Z: 3}); got != want {
		t.Errorf("Col(0) = %v, want %v", got, want)
	}
	if got, want := m.Col(2), (Vector{X: 7, Y: 8, Z: 9}); got != want {
		t.Errorf("Col(2) = %v, want %v", got, want)
	}
}

func TestMatrixMulVectorIdentity(t *testing.T) {
	var identity Matrix
	identity.SetCol(0, Vector{X: 1, Y: 0, Z: 0})
	identity.SetCol(1, Vector{X: 0, Y: 1, Z: 0})
	identity.SetCol(2, Vector{X: 0, Y: 0, Z: 1})
	v := Vector{X: 3, Y: -2, Z: 5}
	if got := identity.MulVector(v); got != v {
		t.Errorf("identity.MulVector(%v) = %v, want %v", v, got, v)
	}
}

func TestMatrixMulVectorPermutation(t *testing.T) {
	// Columns (0,1,0), (0,0,1), (1,0,0) map the standard basis e1,e2,e3 to
	// e2, e3, e1 respectively, so this matrix cyclically permutes a
	// vector's coordinates: (x,y,z) -> (z,x,y).
	var m Matrix
	m.SetCol(0, Vector{X: 0, Y: 1, Z: 0})
	m.SetCol(1, Vector{X: 0, Y: 0, Z: 1})
	m.SetCol(2, Vector{X: 1, Y: 0, Z: 0})
	got := m.MulVector(Vector{X: 3, Y: 5, Z: 7})
	want := Vector{X: 7, Y: 3, Z: 5}
	if got != want {
		t.Errorf("MulVector = %v, want %v", got, want)
	}
}
