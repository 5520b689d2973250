// Package r1 implements types and operations for working with 1D intervals
// on the real line.
package r1

import "math"

// Interval represents a closed interval [Lo, Hi] on ℝ. It is empty iff
// Lo > Hi, in which case the canonical empty interval is {1, 0}.
type Interval struct {
	Lo, Hi float64
}

// EmptyInterval returns the canonical empty interval.
func EmptyInterval() Interval { return Interval{1, 0} }

// IntervalFromPoint returns an interval containing a single point.
func IntervalFromPoint(p float64) Interval { return Interval{p, p} }

// IntervalFromPointPair constructs the smallest interval containing both
// points, regardless of their order.
func IntervalFromPointPair(a, b float64) Interval {
	if a <= b {
		return Interval{a, b}
	}
	return Interval{b, a}
}

// IsEmpty reports whether the interval is empty.
func (i Interval) IsEmpty() bool { return i.Lo > i.Hi }

// Center returns the interval's midpoint. Undefined for an empty interval.
func (i Interval) Center() float64 { return 0.5 * (i.Lo + i.Hi) }

// Length returns Hi - Lo. An empty interval has negative length.
func (i Interval) Length() float64 { return i.Hi - i.Lo }

// Contains reports whether the interval contains p.
func (i Interval) Contains(p float64) bool { return i.Lo <= p && p <= i.Hi }

// InteriorContains reports whether the interior of the interval contains p.
func (i Interval) InteriorContains(p float64) bool { return i.Lo < p && p < i.Hi }

// ContainsInterval reports whether i contains o.
func (i Interval) ContainsInterval(o Interval) bool {
	if o.IsEmpty() {
		return true
	}
	return i.Lo <= o.Lo && o.Hi <= i.Hi
}

// InteriorContainsInterval reports whether the interior of i contains o.
func (i Interval) InteriorContainsInterval(o Interval) bool {
	if o.IsEmpty() {
		return true
	}
	return i.Lo < o.Lo && o.Hi < i.Hi
}

// Intersects reports whether i and o have any points in common.
func (i Interval) Intersects(o Interval) bool {
	if i.IsEmpty() || o.IsEmpty() {
		return false
	}
	return i.Lo <= o.Hi && o.Lo <= i.Hi
}

// InteriorIntersects reports whether the interiors of i and o intersect.
func (i Interval) InteriorIntersects(o Interval) bool {
	if i.IsEmpty() || o.IsEmpty() || i.Lo == i.Hi {
		return false
	}
	return i.Lo < o.Hi && o.Lo < i.Hi
}

// Union returns the smallest interval containing both i and o. The empty
// interval is the identity element for Union.
func (i Interval) Union(o Interval) Interval {
	if i.IsEmpty() {
		return o
	}
	if o.IsEmpty() {
		return i
	}
	return Interval{math.Min(i.Lo, o.Lo), math.Max(i.Hi, o.Hi)}
}

// Intersection returns the intersection of i and o, which may be empty.
// The empty interval is absorbing for Intersection.
func (i Interval) Intersection(o Interval) Interval {
	if i.IsEmpty() || o.IsEmpty() {
		return EmptyInterval()
	}
	r := Interval{math.Max(i.Lo, o.Lo), math.Min(i.Hi, o.Hi)}
	if r.IsEmpty() {
		return EmptyInterval()
	}
	return r
}

// AddPoint returns the smallest interval containing i and p.
func (i Interval) AddPoint(p float64) Interval {
	if i.IsEmpty() {
		return Interval{p, p}
	}
	if p < i.Lo {
		return Interval{p, i.Hi}
	}
	if p > i.Hi {
		return Interval{i.Lo, p}
	}
	return i
}

// Expanded returns an interval expanded on both ends by margin. A negative
// margin shrinks the interval; an expansion that would invert it yields
// the empty interval.
func (i Interval) Expanded(margin float64) Interval {
	if i.IsEmpty() {
		return i
	}
	r := Interval{i.Lo - margin, i.Hi + margin}
	if r.IsEmpty() {
		return EmptyInterval()
	}
	return r
}

// Clamp returns p clamped to the interval. The result is unspecified if
// the interval is empty (callers must not call Clamp on an empty interval).
func (i Interval) Clamp(p float64) float64 {
	return math.Max(i.Lo, math.Min(i.Hi, p))
}

// Equal reports whether i and o are the same interval, bound for bound.
func (i Interval) Equal(o Interval) bool { return i == o }

// ApproxEqual reports whether i and o are equal to within the given
// tolerance, treating empty intervals specially.
func (i Interval) ApproxEqual(o Interval, maxError float64) bool {
	if i.IsEmpty() {
		return o.Length() <= maxError
	}
	if o.IsEmpty() {
		return i.Length() <= maxError
	}
	return math.Abs(o.Lo-i.Lo) <= maxError && math.Abs(o.Hi-i.Hi) <= maxError
}
