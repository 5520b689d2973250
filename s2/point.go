package s2

import (
	"math"

	"github.com/spherelib/s2/r3"
	"github.com/spherelib/s2/s1"
)

// Point represents a point on the unit sphere as a normalized 3D vector.
// Points are guaranteed to be close to unit length: ||v||^2 - 1 <= 1e-14.
type Point struct {
	r3.Vector
}

// originVector is the fixed non-degenerate direction substituted for the
// degenerate (0,0,0) input, and also published as the fixed reference
// point used by edge-crossing parity tests (spec section 6).
var originVector = r3.Vector{X: 0.00456762077230, Y: 0.99947476613078, Z: 0.03208315302933}

// OriginPoint returns the fixed reference point used by loop/polygon
// containment tests (counting edge crossings from a point known to be
// outside every "normal" loop). It must not be a point commonly produced
// by edge computations, which rules out the poles.
func OriginPoint() Point { return Point{originVector} }

// PointFromCoords creates a normalized point from raw coordinates. The
// origin (0,0,0) maps to the fixed OriginPoint direction so no Point is
// ever the zero vector.
func PointFromCoords(x, y, z float64) Point {
	v := r3.Vector{X: x, Y: y, Z: z}
	if v.Norm2() == 0 {
		return OriginPoint()
	}
	return Point{v.Normalize()}
}

// PointFromVector normalizes an arbitrary vector into a Point.
func PointFromVector(v r3.Vector) Point {
	if v.Norm2() == 0 {
		return OriginPoint()
	}
	return Point{v.Normalize()}
}

// PointCross returns a point orthogonal to both p and op. Unlike a plain
// cross product, it is well-behaved even when p and op are nearly
// parallel or antiparallel: the result is always nonzero and unit length.
func (p Point) PointCross(op Point) Point {
	x := p.Add(op.Vector).Cross(op.Sub(p.Vector))
	if x.ApproxEqual(r3.Vector{}) {
		return Point{p.Ortho()}
	}
	return Point{x.Normalize()}
}

// Distance returns the angle between p and b.
func (p Point) Distance(b Point) s1.Angle {
	return s1.Angle(p.Angle(b.Vector))
}

// ApproxEqual reports whether p and other are within 1e-14 radians.
func (p Point) ApproxEqual(other Point) bool {
	const epsilon = 1e-14
	return p.Angle(other.Vector) <= epsilon
}

// ApproxEqualWithin reports whether p and other are within maxError radians.
func (p Point) ApproxEqualWithin(other Point, maxError float64) bool {
	return p.Angle(other.Vector) <= maxError
}

// TurnAngle returns the angle (positive if CCW) turned while walking the
// path a, b, c: the angle between the PointCross of the incoming and
// outgoing edges.
func TurnAngle(a, b, c Point) float64 {
	angle := b.PointCross(a).Angle(c.PointCross(b).Vector)
	if RobustSign(a, b, c) != Clockwise {
		return angle
	}
	return -angle
}

// PointArea returns the area on the unit sphere of the triangle (a, b, c).
// It uses l'Huilier's theorem, which is accurate for most triangles,
// falling back to Girard's formula for long, thin ones where l'Huilier's
// cancellation error would otherwise dominate.
func PointArea(a, b, c Point) float64 {
	sa := b.Angle(c.Vector)
	sb := c.Angle(a.Vector)
	sc := a.Angle(b.Vector)
	s := 0.5 * (sa + sb + sc)
	if s >= 3e-4 {
		dmin := s - math.Max(sa, math.Max(sb, sc))
		if dmin < 1e-2*s*s*s*s*s {
			ab := a.PointCross(b)
			bc := b.PointCross(c)
			ac := a.PointCross(c)
			area := math.Max(0, ab.Angle(ac.Vector)-ab.Angle(bc.Vector)+bc.Angle(ac.Vector))
			if dmin < s*0.1*area {
				return area
			}
		}
	}
	return 4 * math.Atan(math.Sqrt(math.Max(0,
		math.Tan(0.5*s)*math.Tan(0.5*(s-sa))*math.Tan(0.5*(s-sb))*math.Tan(0.5*(s-sc)))))
}

// SignedArea returns PointArea(a,b,c) with the sign of RobustSign(a,b,c).
func SignedArea(a, b, c Point) float64 {
	return PointArea(a, b, c) * float64(RobustSign(a, b, c))
}

// TrueCentroid returns the true centroid of the spherical triangle
// (a, b, c) multiplied by the signed area of the triangle. The result is
// not unit length, and callers that want a point on the sphere should
// normalize it; this representation lets centroids of a collection of
// triangles be summed directly.
func TrueCentroid(a, b, c Point) Point {
	ra := angleOverSin(b.Angle(c.Vector))
	rb := angleOverSin(c.Angle(a.Vector))
	rc := angleOverSin(a.Angle(b.Vector))

	x := r3.Vector{X: a.X, Y: b.X - a.X, Z: c.X - a.X}
	y := r3.Vector{X: a.Y, Y: b.Y - a.Y, Z: c.Y - a.Y}
	z := r3.Vector{X: a.Z, Y: b.Z - a.Z, Z: c.Z - a.Z}
	r := r3.Vector{X: ra, Y: rb - ra, Z: rc - ra}
	v := r3.Vector{
		X: y.Cross(z).Dot(r),
		Y: z.Cross(x).Dot(r),
		Z: x.Cross(y).Dot(r),
	}
	return Point{v.Mul(0.5)}
}

func angleOverSin(angle float64) float64 {
	if angle == 0 {
		return 1
	}
	return angle / math.Sin(angle)
}

// PlanarCentroid returns the centroid of the planar triangle (a, b, c),
// ignoring the fact that its vertices lie on a sphere.
func PlanarCentroid(a, b, c Point) Point {
	return Point{a.Add(b.Vector).Add(c.Vector).Mul(1.0 / 3.0)}
}

// FrameFromPoint returns a right-handed orthonormal frame (three
// orthogonal unit vectors) with z as its third column.
func FrameFromPoint(z Point) r3.Matrix {
	var m r3.Matrix
	m.SetCol(2, z.Vector)
	m.SetCol(1, z.Ortho())
	m.SetCol(0, m.Col(1).Cross(z.Vector))
	return m
}

// PointFromFrame converts a point q expressed in the local coordinates of
// frame m back into the standard frame.
func PointFromFrame(m r3.Matrix, q Point) Point {
	return Point{m.MulVector(q.Vector)}
}
