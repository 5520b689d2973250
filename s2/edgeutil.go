package s2

import "github.com/spherelib/s2/s1"

// An EdgeCrosser permits testing a sequence of edges against a single,
// fixed edge AB for crossings. Initialize it with the edge AB and a
// starting point C, then call RobustCrossing or EdgeOrVertexCrossing
// repeatedly with successive endpoints D1, D2, ...; each call implicitly
// tests the edge from the previous endpoint to the new one.
type EdgeCrosser struct {
	a, b Point
	c    Point
}

// NewEdgeCrosser returns an EdgeCrosser for testing edges against the fixed
// edge AB, with the current point of the incremental sequence set to c.
func NewEdgeCrosser(a, b, c *Point) *EdgeCrosser {
	return &EdgeCrosser{a: *a, b: *b, c: *c}
}

// RestartAt sets the current point of the incremental sequence to c,
// without any assumption about how it relates to the previous point.
func (e *EdgeCrosser) RestartAt(c *Point) { e.c = *c }

// RobustCrossing reports whether the edge AB crosses the edge from the
// current point to d: 1 for a crossing interior to both edges, 0 for a
// degenerate configuration (a shared vertex, or an endpoint exactly on the
// other edge's line), -1 if the edges do not cross. Advances the current
// point to d.
func (e *EdgeCrosser) RobustCrossing(d *Point) int {
	result := robustCrossingHelper(e.a, e.b, e.c, *d)
	e.c = *d
	return result
}

// robustCrossingHelper reports whether edge AB properly crosses edge CD:
// C and D must lie on opposite sides of the line AB, A and B must lie on
// opposite sides of the line CD, and the two orientations must agree (which
// rules out AB meeting the antipodal extension of CD). Returns 0 if any of
// the four points lies exactly on the other edge's line (a degenerate
// configuration that the caller must resolve some other way, e.g.
// VertexCrossing), or -1 if the edges do not cross.
func robustCrossingHelper(a, b, c, d Point) int {
	acb := RobustSign(a, b, c)
	adb := RobustSign(a, b, d)
	if acb != Indeterminate && adb != Indeterminate && acb == adb {
		return -1
	}
	cad := RobustSign(c, d, a)
	cbd := RobustSign(c, d, b)
	if cad != Indeterminate && cbd != Indeterminate && cad == cbd {
		return -1
	}
	if acb == Indeterminate || adb == Indeterminate || cad == Indeterminate || cbd == Indeterminate {
		return 0
	}
	if acb != cbd {
		return -1
	}
	return 1
}

// EdgeOrVertexCrossing reports the same as RobustCrossing does for interior
// crossings, but additionally returns true for degenerate cases that
// point-in-polygon containment parity must still treat as a crossing (for
// instance, when d lies exactly on the line AB). Advances the current
// point to d.
func (e *EdgeCrosser) EdgeOrVertexCrossing(d *Point) bool {
	c := e.c
	crossing := e.RobustCrossing(d)
	if crossing < 0 {
		return false
	}
	if crossing > 0 {
		return true
	}
	return VertexCrossing(e.a, e.b, c, *d)
}

// VertexCrossing reports, given that A, B, C, D are four points such that
// AB and CD share an endpoint or otherwise fail RobustCrossing's interior
// test, whether point-in-polygon containment parity should treat the edges
// as crossing. It is a tie-breaker for the degenerate cases, not a general
// crossing test.
func VertexCrossing(a, b, c, d Point) bool {
	switch {
	case a == b || c == d:
		return false
	case a == c:
		return OrderedCCW(Point{a.Ortho()}, b, d, a)
	case b == d:
		return OrderedCCW(Point{b.Ortho()}, a, c, b)
	case a == d:
		return OrderedCCW(Point{a.Ortho()}, b, c, a)
	case b == c:
		return OrderedCCW(Point{b.Ortho()}, a, d, b)
	}
	return false
}

// Wedge relations describe how two wedges relate to one another. Each
// wedge is an ordered triple (A0, AB1, A2) around a common vertex AB1: the
// region to the left of the path A0 -> AB1 -> A2, swept CCW from A2 to A0.
const (
	WEDGE_EQUALS                = iota // The wedges are identical.
	WEDGE_PROPERLY_CONTAINS            // A strictly contains B.
	WEDGE_IS_PROPERLY_CONTAINED        // B strictly contains A.
	WEDGE_PROPERLY_OVERLAPS            // The wedges overlap, but neither contains the other.
	WEDGE_IS_DISJOINT                  // The wedges do not overlap, even at the boundary.
)

// WedgeContains reports whether the wedge (a0,ab1,a2) contains the wedge
// (b0,ab1,b2). Both wedges must share the vertex ab1, and each wedge is
// assumed to be less than a full revolution.
func WedgeContains(a0, ab1, a2, b0, b2 Point) bool {
	return OrderedCCW(a2, b2, b0, ab1) && OrderedCCW(b0, a0, a2, ab1)
}

// WedgeIntersects reports whether the wedge (a0,ab1,a2) and the wedge
// (b0,ab1,b2) share any ray other than possibly their common vertex.
func WedgeIntersects(a0, ab1, a2, b0, b2 Point) bool {
	return !(OrderedCCW(a0, b2, b0, ab1) && OrderedCCW(b0, a2, a0, ab1))
}

// GetWedgeRelation classifies the relationship between the wedges
// (a0,ab1,a2) and (b0,ab1,b2), returning one of the WEDGE_* constants.
func GetWedgeRelation(a0, ab1, a2, b0, b2 Point) int {
	if a0 == b0 && a2 == b2 {
		return WEDGE_EQUALS
	}
	if WedgeContains(a0, ab1, a2, b0, b2) {
		return WEDGE_PROPERLY_CONTAINS
	}
	if WedgeContains(b0, ab1, b2, a0, a2) {
		return WEDGE_IS_PROPERLY_CONTAINED
	}
	if WedgeIntersects(a0, ab1, a2, b0, b2) {
		return WEDGE_PROPERLY_OVERLAPS
	}
	return WEDGE_IS_DISJOINT
}

// DistanceToEdge returns the minimum distance from x to the edge AB. The
// result is 0 if x lies anywhere on the edge, including its endpoints, and
// up to Pi if x is the antipode of some point on AB.
func (x Point) DistanceToEdge(a, b Point) s1.Angle {
	d, _ := x.distanceToEdgeAndClosest(a, b)
	return d
}

// ClosestPoint returns the point on the edge AB closest to x.
func (x Point) ClosestPoint(a, b Point) Point {
	_, p := x.distanceToEdgeAndClosest(a, b)
	return p
}

// distanceToEdgeAndClosest computes DistanceToEdge and ClosestPoint
// together, since they share the same case analysis.
func (x Point) distanceToEdgeAndClosest(a, b Point) (s1.Angle, Point) {
	if x == a {
		return 0, a
	}
	if x == b {
		return 0, b
	}
	n := a.Cross(b.Vector)
	if n.Norm2() == 0 {
		// A and B coincide or are antipodal; treat the edge as the point A.
		return x.Distance(a), a
	}
	np := Point{n.Normalize()}
	proj := x.Sub(np.Mul(x.Dot(np.Vector)))
	if proj.Norm2() == 0 {
		// x is one of the poles of the great circle through A and B, and
		// is therefore equidistant from every point on that circle: fall
		// back to comparing against the edge's endpoints.
		da, db := x.Distance(a), x.Distance(b)
		if da <= db {
			return da, a
		}
		return db, b
	}
	closest := Point{proj.Normalize()}
	if onMinorArc(a, b, closest) {
		return x.Distance(closest), closest
	}
	da, db := x.Distance(a), x.Distance(b)
	if da <= db {
		return da, a
	}
	return db, b
}
