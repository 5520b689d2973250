package s2

import (
	"math"

	"github.com/spherelib/s2/r3"
	"github.com/spherelib/s2/s1"
)

// RectBounder accumulates a tight bounding Rect for a chain of connected
// edges, adding one vertex at a time. A plain union of the endpoints'
// per-vertex bounds would miss the case where an edge's latitude extremum
// falls in its interior (e.g. an edge that passes near a pole); this
// tracks that case explicitly.
type RectBounder struct {
	a     Point
	aSet  bool
	bound Rect
}

// NewRectBounder returns a bounder with an empty accumulated bound.
func NewRectBounder() *RectBounder {
	return &RectBounder{bound: EmptyRect()}
}

// AddPoint extends the bound, if necessary, to include b and the edge
// from the previously added point (if any) to b.
func (rb *RectBounder) AddPoint(b Point) {
	bLL := LatLngFromPoint(b)
	if !rb.aSet {
		rb.bound = rb.bound.AddPoint(bLL)
		rb.a = b
		rb.aSet = true
		return
	}
	rb.bound = rb.bound.Union(RectFromLatLng(LatLngFromPoint(rb.a)).AddPoint(bLL))

	n := rb.a.Cross(b.Vector)
	if n.Norm2() > 0 {
		zhat := r3.Vector{Z: 1}
		proj := zhat.Sub(n.Mul(zhat.Dot(n) / n.Norm2()))
		if proj.Norm2() > 0 {
			pMax := Point{proj.Normalize()}
			pMin := Point{pMax.Mul(-1)}
			if onMinorArc(rb.a, b, pMax) && math.Asin(pMax.Z) > rb.bound.Lat.Hi {
				rb.bound.Lat.Hi = math.Asin(pMax.Z)
			}
			if onMinorArc(rb.a, b, pMin) && math.Asin(pMin.Z) < rb.bound.Lat.Lo {
				rb.bound.Lat.Lo = math.Asin(pMin.Z)
			}
		}
	}
	rb.a = b
}

// RectBound returns the bound accumulated so far.
func (rb *RectBounder) RectBound() Rect { return rb.bound }

// ExpandForSubregions expands a bound computed by RectBounder so that it
// remains valid as the bound of a region approximated by straight cell
// edges: the linear interpolation used to approximate a curved boundary
// can introduce a small error, and a rectangle that exactly bounds the
// true edges might not quite bound the approximation built from them.
func ExpandForSubregions(rect Rect) Rect {
	if rect.IsEmpty() {
		return rect
	}
	const maxError = 1.0 / (1 << 45)
	lat := rect.Lat.Expanded(maxError).Intersection(validRectLatRange)
	if lat.Lo == -math.Pi/2 || lat.Hi == math.Pi/2 {
		return Rect{lat, s1.FullInterval()}
	}
	lng := rect.Lng
	if lng.Length()+2*maxError >= 2*math.Pi {
		return Rect{lat, s1.FullInterval()}
	}
	return Rect{lat, lng.Expanded(maxError)}
}
