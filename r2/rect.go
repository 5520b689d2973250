// Package r2 implements types and operations on 2D points and rectangles.
package r2

import "github.com/spherelib/s2/r1"

// Point represents a point in ℝ².
type Point struct {
	X, Y float64
}

// Rect is a closed axis-aligned rectangle, the Cartesian product of two
// R1 intervals. It is empty iff either axis is empty; both axes are
// always empty together or neither is.
type Rect struct {
	X, Y r1.Interval
}

// EmptyRect returns the canonical empty rectangle.
func EmptyRect() Rect { return Rect{r1.EmptyInterval(), r1.EmptyInterval()} }

// RectFromPoints returns the smallest rectangle containing the two given
// points. This is the only point-based constructor; accumulate further
// points with AddPoint.
func RectFromPoints(a, b Point) Rect {
	return Rect{
		X: r1.IntervalFromPointPair(a.X, b.X),
		Y: r1.IntervalFromPointPair(a.Y, b.Y),
	}
}

// RectFromCenterSize constructs a rectangle with the given center and size.
// Negative size components are clamped to zero.
func RectFromCenterSize(center, size Point) Rect {
	if size.X < 0 {
		size.X = 0
	}
	if size.Y < 0 {
		size.Y = 0
	}
	return Rect{
		X: r1.Interval{Lo: center.X - size.X/2, Hi: center.X + size.X/2},
		Y: r1.Interval{Lo: center.Y - size.Y/2, Hi: center.Y + size.Y/2},
	}
}

// IsEmpty reports whether the rectangle is empty.
func (r Rect) IsEmpty() bool { return r.X.IsEmpty() }

// Center returns the center of the rectangle.
func (r Rect) Center() Point { return Point{r.X.Center(), r.Y.Center()} }

// Size returns the width and height of the rectangle as a Point.
func (r Rect) Size() Point { return Point{r.X.Length(), r.Y.Length()} }

// Vertices returns the four vertices of the rectangle, CCW starting from
// the lower-left corner.
func (r Rect) Vertices() [4]Point {
	return [4]Point{
		{r.X.Lo, r.Y.Lo},
		{r.X.Hi, r.Y.Lo},
		{r.X.Hi, r.Y.Hi},
		{r.X.Lo, r.Y.Hi},
	}
}

// ContainsPoint reports whether the rectangle contains p.
func (r Rect) ContainsPoint(p Point) bool {
	return r.X.Contains(p.X) && r.Y.Contains(p.Y)
}

// InteriorContainsPoint reports whether the interior of the rectangle
// contains p.
func (r Rect) InteriorContainsPoint(p Point) bool {
	return r.X.InteriorContains(p.X) && r.Y.InteriorContains(p.Y)
}

// Contains reports whether r contains o.
func (r Rect) Contains(o Rect) bool {
	return r.X.ContainsInterval(o.X) && r.Y.ContainsInterval(o.Y)
}

// InteriorContains reports whether the interior of r contains o.
func (r Rect) InteriorContains(o Rect) bool {
	return r.X.InteriorContainsInterval(o.X) && r.Y.InteriorContainsInterval(o.Y)
}

// Intersects reports whether r and o have any points in common.
func (r Rect) Intersects(o Rect) bool {
	return r.X.Intersects(o.X) && r.Y.Intersects(o.Y)
}

// InteriorIntersects reports whether the interiors of r and o intersect.
func (r Rect) InteriorIntersects(o Rect) bool {
	return r.X.InteriorIntersects(o.X) && r.Y.InteriorIntersects(o.Y)
}

// AddPoint returns the smallest rectangle containing r and p.
func (r Rect) AddPoint(p Point) Rect {
	return Rect{r.X.AddPoint(p.X), r.Y.AddPoint(p.Y)}
}

// Union returns the smallest rectangle containing both r and o.
func (r Rect) Union(o Rect) Rect {
	return Rect{r.X.Union(o.X), r.Y.Union(o.Y)}
}

// Intersection returns the intersection of r and o, which may be empty.
func (r Rect) Intersection(o Rect) Rect {
	xx := r.X.Intersection(o.X)
	yy := r.Y.Intersection(o.Y)
	if xx.IsEmpty() || yy.IsEmpty() {
		return EmptyRect()
	}
	return Rect{xx, yy}
}

// Expanded returns a rectangle expanded on each axis by the corresponding
// component of margin. A negative margin shrinks that axis; shrinking past
// zero on either axis makes the whole rectangle empty.
func (r Rect) Expanded(margin Point) Rect {
	xx := r.X.Expanded(margin.X)
	yy := r.Y.Expanded(margin.Y)
	if xx.IsEmpty() || yy.IsEmpty() {
		return EmptyRect()
	}
	return Rect{xx, yy}
}

// ApproxEqual reports whether r and o are equal to within the given
// tolerance on each axis.
func (r Rect) ApproxEqual(o Rect, maxError float64) bool {
	return r.X.ApproxEqual(o.X, maxError) && r.Y.ApproxEqual(o.Y, maxError)
}
