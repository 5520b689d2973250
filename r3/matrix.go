package r3

// Matrix is a 3x3 matrix stored in column-major order. It is used to build
// orthonormal frames for points on the sphere.
type Matrix [3]Vector

// Col returns the i-th column.
func (m Matrix) Col(i int) Vector { return m[i] }

// SetCol sets the i-th column.
func (m *Matrix) SetCol(i int, v Vector) { m[i] = v }

// MulVector returns m*v, treating v as a column vector.
func (m Matrix) MulVector(v Vector) Vector {
	return Vector{
		m[0].X*v.X + m[1].X*v.Y + m[2].X*v.Z,
		m[0].Y*v.X + m[1].Y*v.Y + m[2].Y*v.Z,
		m[0].Z*v.X + m[1].Z*v.Y + m[2].Z*v.Z,
	}
}
