package s2

import (
	"math"

	"github.com/spherelib/s2/r1"
	"github.com/spherelib/s2/r2"
	"github.com/spherelib/s2/r3"
)

// The cube projection maps the unit sphere onto six faces of a cube, each
// parameterized by a pair of coordinates (u,v) in [-1,1]. Each face has a
// fixed u-axis, v-axis, and outward normal (the three columns below).
var uvwAxes = [6][3]r3.Vector{
	{{X: 0, Y: 1, Z: 0}, {X: 0, Y: 0, Z: 1}, {X: 1, Y: 0, Z: 0}},
	{{X: -1, Y: 0, Z: 0}, {X: 0, Y: 0, Z: 1}, {X: 0, Y: 1, Z: 0}},
	{{X: -1, Y: 0, Z: 0}, {X: 0, Y: -1, Z: 0}, {X: 0, Y: 0, Z: 1}},
	{{X: 0, Y: 0, Z: -1}, {X: 0, Y: -1, Z: 0}, {X: -1, Y: 0, Z: 0}},
	{{X: 0, Y: 0, Z: -1}, {X: 1, Y: 0, Z: 0}, {X: 0, Y: -1, Z: 0}},
	{{X: 0, Y: 1, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 0, Y: 0, Z: -1}},
}

func uAxis(face int) r3.Vector    { return uvwAxes[face][0] }
func vAxis(face int) r3.Vector    { return uvwAxes[face][1] }
func unitNorm(face int) r3.Vector { return uvwAxes[face][2] }

// faceUVToXYZ turns (face, u, v) into an unnormalized point on the sphere.
func faceUVToXYZ(face int, u, v float64) r3.Vector {
	switch face {
	case 0:
		return r3.Vector{X: 1, Y: u, Z: v}
	case 1:
		return r3.Vector{X: -u, Y: 1, Z: v}
	case 2:
		return r3.Vector{X: -u, Y: -v, Z: 1}
	case 3:
		return r3.Vector{X: -1, Y: -v, Z: -u}
	case 4:
		return r3.Vector{X: v, Y: -1, Z: -u}
	default:
		return r3.Vector{X: v, Y: u, Z: -1}
	}
}

// faceXYZToUV returns the (u,v) coordinates for point p on the given face,
// and whether p actually lies within that face (its largest-magnitude
// component, signed, must match the face).
func faceXYZToUV(face int, p Point) (u, v float64, ok bool) {
	switch face {
	case 0:
		ok = p.X > 0
	case 1:
		ok = p.Y > 0
	case 2:
		ok = p.Z > 0
	case 3:
		ok = p.X < 0
	case 4:
		ok = p.Y < 0
	default:
		ok = p.Z < 0
	}
	if !ok {
		return 0, 0, false
	}
	switch face {
	case 0:
		u, v = p.Y/p.X, p.Z/p.X
	case 1:
		u, v = -p.X/p.Y, p.Z/p.Y
	case 2:
		u, v = -p.X/p.Z, -p.Y/p.Z
	case 3:
		u, v = p.Z/p.X, p.Y/p.X
	case 4:
		u, v = p.Z/p.Y, -p.X/p.Y
	default:
		u, v = -p.Y/p.Z, -p.X/p.Z
	}
	return u, v, true
}

// xyzToFaceUV returns the face that contains p (the one whose outward
// normal is closest to p's direction) and p's (u,v) coordinates on it.
func xyzToFaceUV(p Point) (face int, u, v float64) {
	face = p.LargestComponent()
	switch face {
	case 0:
		if p.X < 0 {
			face = 3
		}
	case 1:
		if p.Y < 0 {
			face = 4
		}
	default:
		if p.Z < 0 {
			face = 5
		}
	}
	u, v, _ = faceXYZToUV(face, p)
	return face, u, v
}

// uNorm returns the inward-facing unit normal of the great circle defined
// by the line u = constant on the given face.
func uNorm(face int, u float64) r3.Vector {
	switch face {
	case 0:
		return r3.Vector{X: u, Y: -1, Z: 0}
	case 1:
		return r3.Vector{X: 1, Y: u, Z: 0}
	case 2:
		return r3.Vector{X: 1, Y: 0, Z: u}
	case 3:
		return r3.Vector{X: -u, Y: 0, Z: 1}
	case 4:
		return r3.Vector{X: 0, Y: -u, Z: 1}
	default:
		return r3.Vector{X: 0, Y: -1, Z: -u}
	}
}

// vNorm returns the inward-facing unit normal of the great circle defined
// by the line v = constant on the given face.
func vNorm(face int, v float64) r3.Vector {
	switch face {
	case 0:
		return r3.Vector{X: -v, Y: 0, Z: 1}
	case 1:
		return r3.Vector{X: 0, Y: -v, Z: 1}
	case 2:
		return r3.Vector{X: 0, Y: -1, Z: -v}
	case 3:
		return r3.Vector{X: v, Y: -1, Z: 0}
	case 4:
		return r3.Vector{X: 1, Y: v, Z: 0}
	default:
		return r3.Vector{X: 1, Y: 0, Z: v}
	}
}

// uvToST applies the quadratic transform that maps a face coordinate u in
// [-1,1] to the corresponding cell-space coordinate s in [0,1]; the
// transform is chosen so that cells of a given level have nearly uniform
// area (rather than area growing quadratically away from the face center,
// as a linear transform would produce). stToUV is its algebraic inverse.
func uvToST(u float64) float64 {
	if u >= 0 {
		return 0.5 * math.Sqrt(1+3*u)
	}
	return 1 - 0.5*math.Sqrt(1-3*u)
}

func stToUV(s float64) float64 {
	if s >= 0.5 {
		return (1 / 3.0) * (4*s*s - 1)
	}
	return (1 / 3.0) * (1 - 4*(1-s)*(1-s))
}

// stToIJ converts an s or t value in [0,1] to the corresponding integer
// cell coordinate in [0, maxSize-1] at the maximum (leaf) level.
func stToIJ(s float64) int {
	return clampInt(int(math.Floor(maxSize*s)), 0, maxSize-1)
}

// ijToST converts a leaf-level i or j coordinate in [0, maxSize] to the
// corresponding s or t value in [0,1]. level is accepted for symmetry with
// stToIJ's inverse but every caller passes a leaf-level coordinate, so the
// division is always by maxSize rather than sizeIJ(level).
func ijToST(i, level int) float64 {
	return float64(i) / float64(maxSize)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ijLevelToBoundUV returns the (u,v) rectangle on a face spanned by the
// cell with the given (i,j) leaf coordinates truncated to level.
func ijLevelToBoundUV(i, j, level int) r2.Rect {
	cellSize := sizeIJ(level)
	iLo := i &^ (cellSize - 1)
	jLo := j &^ (cellSize - 1)
	return r2.Rect{
		X: r1.Interval{Lo: stToUV(ijToST(iLo, maxLevel)), Hi: stToUV(ijToST(iLo+cellSize, maxLevel))},
		Y: r1.Interval{Lo: stToUV(ijToST(jLo, maxLevel)), Hi: stToUV(ijToST(jLo+cellSize, maxLevel))},
	}
}

func latitude(p Point) float64 {
	return math.Atan2(p.Z, math.Sqrt(p.X*p.X+p.Y*p.Y))
}

func longitude(p Point) float64 {
	return math.Atan2(p.Y, p.X)
}
