package s2

import (
	"math"

	"github.com/spherelib/s2/r1"
	"github.com/spherelib/s2/r2"
	"github.com/spherelib/s2/s1"
)

const cellMaxError = 1.0 / (1 << 51)

// dblEpsilon is the difference between 1 and the next representable
// float64, used to expand a cell's (u,v) bound so that round-off
// doesn't spuriously exclude a point lying on (or very near) its edge.
const dblEpsilon = 1.0 / (1 << 52)

var poleMinLat = math.Asin(math.Sqrt(1.0 / 3))

// Cell represents a cell in the hierarchical spherical cell decomposition.
// Unlike a bare CellID, a Cell caches the (u,v) bounds needed for cheap
// containment and intersection tests, at the cost of a larger footprint.
type Cell struct {
	face        int8
	level       int8
	orientation int8
	id          CellID
	uv          r2.Rect
}

// CellFromCellID constructs the Cell corresponding to id.
func CellFromCellID(id CellID) Cell {
	c := Cell{id: id}
	f, i, j, o := id.faceIJOrientation()
	c.face = int8(f)
	c.level = int8(id.Level())
	c.orientation = int8(o)
	c.uv = ijLevelToBoundUV(i, j, int(c.level))
	return c
}

// CellFromPoint constructs the leaf Cell containing p.
func CellFromPoint(p Point) Cell { return CellFromCellID(cellIDFromPoint(p)) }

// CellFromLatLng constructs the leaf Cell containing ll.
func CellFromLatLng(ll LatLng) Cell { return CellFromCellID(CellIDFromLatLng(ll)) }

// ID returns the cell's CellID.
func (c Cell) ID() CellID { return c.id }

// Level returns the cell's subdivision level.
func (c Cell) Level() int { return int(c.level) }

// Face returns the cube face the cell belongs to.
func (c Cell) Face() int { return int(c.face) }

// IsLeaf reports whether c is at the maximum subdivision level.
func (c Cell) IsLeaf() bool { return int(c.level) == maxLevel }

// SizeIJ returns the side length, in leaf cells, of a cell at c's level.
func (c Cell) SizeIJ() int { return sizeIJ(int(c.level)) }

// AverageArea returns the average area of cells at the given level.
func AverageArea(level int) float64 { return AvgArea.Value(level) }

// AverageArea returns the average area of cells at c's level.
func (c Cell) AverageArea() float64 { return AverageArea(int(c.level)) }

// ApproxArea returns an approximation of the cell's area, cheaper to
// compute than ExactArea.
func (c Cell) ApproxArea() float64 {
	if c.level < 2 {
		return c.AverageArea()
	}
	v0, v1, v2, v3 := c.Vertex(0), c.Vertex(1), c.Vertex(2), c.Vertex(3)

	// The cross product of the diagonals gives twice the area of the cell
	// as projected perpendicular to its normal.
	flatArea := 0.5 * v2.Sub(v0.Vector).Cross(v3.Sub(v1.Vector)).Norm()

	// Correct for the curvature of the cell by treating it as a spherical
	// cap: the ratio of a cap's area to its projected disc's area is
	// 2/(1+sqrt(1-r^2)), where pi*r^2 is set equal to flatArea.
	return flatArea * 2 / (1 + math.Sqrt(1-math.Min(flatArea/math.Pi, 1.0)))
}

// ExactArea returns the cell's exact area.
func (c Cell) ExactArea() float64 {
	v0, v1, v2, v3 := c.Vertex(0), c.Vertex(1), c.Vertex(2), c.Vertex(3)
	return PointArea(v0, v1, v2) + PointArea(v0, v2, v3)
}

// CapBound returns a bounding cap for the cell.
func (c Cell) CapBound() Cap {
	// The cell center in (u,v) space is close to, and cheaper to compute
	// than, the true center, and still gives a reasonably tight cap.
	u := 0.5 * (c.uv.X.Lo + c.uv.X.Hi)
	v := 0.5 * (c.uv.Y.Lo + c.uv.Y.Hi)
	capBound := CapFromCenterHeight(Point{faceUVToXYZ(int(c.face), u, v).Normalize()}, 0)
	for k := 0; k < 4; k++ {
		capBound.AddPoint(c.Vertex(k))
	}
	return capBound
}

// RectBound returns a bounding LatLng rectangle for the cell.
func (c Cell) RectBound() Rect {
	if c.level > 0 {
		// Other than at level 0, the latitude extremes are attained at a
		// pair of diagonally opposite vertices, and likewise for the
		// longitude extremes at the other pair. We find the corner with
		// the largest absolute latitude by looking at the sign of u and v.
		u := c.uv.X.Lo + c.uv.X.Hi
		v := c.uv.Y.Lo + c.uv.Y.Hi
		i, j := ijFromFaceZ(c.face, u, v)

		lat := r1.IntervalFromPointPair(c.latitude(i, j), c.latitude(1-i, 1-j))
		lat = lat.Expanded(cellMaxError).Intersection(validRectLatRange)
		if lat.Lo == -math.Pi/2 || lat.Hi == math.Pi/2 {
			return Rect{lat, s1.FullInterval()}
		}
		lng := s1.IntervalFromPointPair(c.longitude(i, 1-j), c.longitude(1-i, j))
		return Rect{lat, lng.Expanded(cellMaxError)}
	}

	// The four equatorial faces extend to +/-45 degrees latitude at the
	// midpoints of their top/bottom edges; the two polar faces extend down
	// to +/-asin(1/sqrt(3)) at their vertices.
	switch c.face {
	case 0:
		return Rect{r1.Interval{Lo: -math.Pi / 4, Hi: math.Pi / 4}, s1.Interval{Lo: -math.Pi / 4, Hi: math.Pi / 4}}
	case 1:
		return Rect{r1.Interval{Lo: -math.Pi / 4, Hi: math.Pi / 4}, s1.Interval{Lo: math.Pi / 4, Hi: 3 * math.Pi / 4}}
	case 2:
		return Rect{r1.Interval{Lo: poleMinLat, Hi: math.Pi / 2}, s1.Interval{Lo: -math.Pi, Hi: math.Pi}}
	case 3:
		return Rect{r1.Interval{Lo: -math.Pi / 4, Hi: math.Pi / 4}, s1.Interval{Lo: 3 * math.Pi / 4, Hi: -3 * math.Pi / 4}}
	case 4:
		return Rect{r1.Interval{Lo: -math.Pi / 4, Hi: math.Pi / 4}, s1.Interval{Lo: -3 * math.Pi / 4, Hi: -math.Pi / 4}}
	default:
		return Rect{r1.Interval{Lo: -math.Pi / 2, Hi: -poleMinLat}, s1.Interval{Lo: -math.Pi, Hi: math.Pi}}
	}
}

// Subdivide appends the cell's four children to children, and reports
// whether it had any (false for a leaf cell).
func (c Cell) Subdivide(children *[]Cell) bool {
	if c.IsLeaf() {
		return false
	}
	ci := c.id.ChildBegin()
	for i := 0; i < 4; i++ {
		*children = append(*children, CellFromCellID(ci))
		ci = ci.Next()
	}
	return true
}

// Children returns the cell's four children in Hilbert-curve order, or
// false if c is a leaf cell and has none.
func (c Cell) Children() ([4]Cell, bool) {
	var children [4]Cell
	if c.IsLeaf() {
		return children, false
	}
	ci := c.id.ChildBegin()
	for i := 0; i < 4; i++ {
		children[i] = CellFromCellID(ci)
		ci = ci.Next()
	}
	return children, true
}

// BoundUV returns the bound of this cell in (u,v)-space.
func (c Cell) BoundUV() r2.Rect { return c.uv }

// IntersectsCell reports whether c and other have any points in common.
func (c Cell) IntersectsCell(other Cell) bool { return c.id.Intersects(other.id) }

func (c Cell) ijToUV(i, j int) (u, v float64) {
	if i == 0 {
		u = c.uv.X.Lo
	} else {
		u = c.uv.X.Hi
	}
	if j == 0 {
		v = c.uv.Y.Lo
	} else {
		v = c.uv.Y.Hi
	}
	return
}

func (c Cell) latitude(i, j int) float64 {
	u, v := c.ijToUV(i, j)
	return latitude(Point{faceUVToXYZ(int(c.face), u, v)})
}

func (c Cell) longitude(i, j int) float64 {
	u, v := c.ijToUV(i, j)
	return longitude(Point{faceUVToXYZ(int(c.face), u, v)})
}

// Vertex returns the k-th vertex of the cell (k in [0,3]) in CCW order:
// lower-left, lower-right, upper-right, upper-left in (u,v) space.
func (c Cell) Vertex(k int) Point { return Point{c.VertexRaw(k).Normalize()} }

// VertexRaw is like Vertex but does not normalize the result.
func (c Cell) VertexRaw(k int) Point {
	verts := c.uv.Vertices()
	return Point{faceUVToXYZ(int(c.face), verts[k].X, verts[k].Y)}
}

// Edge returns the inward-facing normal of the great circle through the
// CCW-ordered edge from vertex k to vertex k+1 (mod 4).
func (c Cell) Edge(k int) Point { return Point{c.EdgeRaw(k).Normalize()} }

// EdgeRaw is like Edge but does not normalize the result.
func (c Cell) EdgeRaw(k int) Point {
	switch k {
	case 0:
		return Point{vNorm(int(c.face), c.uv.Y.Lo)}
	case 1:
		return Point{uNorm(int(c.face), c.uv.X.Hi)}
	case 2:
		return Point{vNorm(int(c.face), c.uv.Y.Hi).Mul(-1.0)}
	default:
		return Point{uNorm(int(c.face), c.uv.X.Lo).Mul(-1.0)}
	}
}

// CenterRaw returns the un-normalized center of the cell.
func (c Cell) CenterRaw() Point { return Point{c.id.rawPoint()} }

// Center returns the (normalized) center of the cell.
func (c Cell) Center() Point { return Point{c.CenterRaw().Normalize()} }

// MayIntersect reports whether c and other might intersect.
func (c Cell) MayIntersect(other Cell) bool { return c.id.Intersects(other.id) }

// ContainsCell reports whether c contains other.
func (c Cell) ContainsCell(other Cell) bool { return c.id.Contains(other.id) }

// ContainsPoint reports whether c contains p.
func (c Cell) ContainsPoint(p Point) bool {
	// Rather than project through xyzToFaceUV (which picks exactly one
	// face), we test against this cell's own face directly so that points
	// on a shared boundary are correctly reported as contained by both
	// adjacent cells. The bound is expanded by dblEpsilon to absorb the
	// round-off accumulated projecting p into (u,v), so a point that is
	// mathematically on the boundary isn't spuriously rejected by one of
	// the two adjacent cells.
	u, v, ok := faceXYZToUV(int(c.face), p)
	if !ok {
		return false
	}
	bound := c.uv.Expanded(r2.Point{X: dblEpsilon, Y: dblEpsilon})
	return u >= bound.X.Lo && u <= bound.X.Hi && v >= bound.Y.Lo && v <= bound.Y.Hi
}

func ijFromFaceZ(face int8, u, v float64) (i, j int) {
	if uAxis(int(face)).Z == 0 {
		i = boolToInt(u < 0)
	} else {
		i = boolToInt(u > 0)
	}
	if vAxis(int(face)).Z == 0 {
		j = boolToInt(v < 0)
	} else {
		j = boolToInt(v > 0)
	}
	return
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
