// Package r3 implements basic types and operations on 3-vectors.
package r3

import (
	"fmt"
	"math"
)

// Vector represents a point in ℝ³.
type Vector struct {
	X, Y, Z float64
}

func (v Vector) String() string { return fmt.Sprintf("(%.24f, %.24f, %.24f)", v.X, v.Y, v.Z) }

func (v Vector) Add(o Vector) Vector { return Vector{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vector) Sub(o Vector) Vector { return Vector{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vector) Mul(m float64) Vector { return Vector{v.X * m, v.Y * m, v.Z * m} }

// Dot returns the standard dot product of v and o.
func (v Vector) Dot(o Vector) float64 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

// Cross returns the standard cross product of v and o.
func (v Vector) Cross(o Vector) Vector {
	return Vector{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

// Norm2 returns the square of the norm, i.e. the exact dot product with itself.
func (v Vector) Norm2() float64 { return v.Dot(v) }

// Norm returns the vector's norm.
func (v Vector) Norm() float64 { return math.Sqrt(v.Norm2()) }

// Normalize returns a unit vector in the same direction as v. The zero
// vector maps to itself.
func (v Vector) Normalize() Vector {
	n2 := v.Norm2()
	if n2 == 0 {
		return v
	}
	return v.Mul(1 / math.Sqrt(n2))
}

// IsUnit reports whether v is approximately a unit vector.
func (v Vector) IsUnit() bool {
	const epsilon = 5e-14
	return math.Abs(v.Norm2()-1) <= epsilon
}

// Abs returns the vector with nonnegative components.
func (v Vector) Abs() Vector { return Vector{math.Abs(v.X), math.Abs(v.Y), math.Abs(v.Z)} }

// LargestComponent returns the axis (0=x, 1=y, 2=z) with the largest
// absolute value.
func (v Vector) LargestComponent() int {
	a := v.Abs()
	if a.X > a.Y {
		if a.X > a.Z {
			return 0
		}
		return 2
	}
	if a.Y > a.Z {
		return 1
	}
	return 2
}

// Ortho returns a unit vector orthogonal to v. Crossing with a fixed axis
// different from v's largest component guarantees a nonzero result.
func (v Vector) Ortho() Vector {
	var ortho Vector
	switch v.LargestComponent() {
	case 0:
		ortho = Vector{0, 1, 0}
	case 1:
		ortho = Vector{0, 0, 1}
	default:
		ortho = Vector{1, 0, 0}
	}
	return v.Cross(ortho).Normalize()
}

// Angle returns the angle between v and o in radians.
func (v Vector) Angle(o Vector) float64 {
	return math.Atan2(v.Cross(o).Norm(), v.Dot(o))
}

// ApproxEqual reports whether v and o are within a small epsilon of
// each other componentwise.
func (v Vector) ApproxEqual(o Vector) bool {
	const epsilon = 1e-14
	return math.Abs(v.X-o.X) < epsilon && math.Abs(v.Y-o.Y) < epsilon && math.Abs(v.Z-o.Z) < epsilon
}

// Cmp compares v and o lexicographically (X, then Y, then Z) and returns
// -1, 0, or +1.
func (v Vector) Cmp(o Vector) int {
	if v.X != o.X {
		if v.X < o.X {
			return -1
		}
		return 1
	}
	if v.Y != o.Y {
		if v.Y < o.Y {
			return -1
		}
		return 1
	}
	if v.Z != o.Z {
		if v.Z < o.Z {
			return -1
		}
		return 1
	}
	return 0
}

func (v Vector) LessThan(o Vector) bool    { return v.Cmp(o) < 0 }
func (v Vector) GreaterThan(o Vector) bool { return v.Cmp(o) > 0 }
func (v Vector) GTE(o Vector) bool         { return v.Cmp(o) >= 0 }
