package s2

import (
	"fmt"
	"math"

	"github.com/spherelib/s2/r1"
	"github.com/spherelib/s2/r3"
	"github.com/spherelib/s2/s1"
)

// Rect represents a closed latitude-longitude rectangle: the Cartesian
// product of a latitude range [-pi/2, pi/2] and a longitude range that,
// like an s1.Interval, may wrap through +/-pi. It is the analogue of
// r2.Rect and s1.Interval for the sphere.
type Rect struct {
	Lat r1.Interval
	Lng s1.Interval
}

// EmptyRect returns the canonical empty rectangle.
func EmptyRect() Rect { return Rect{r1.EmptyInterval(), s1.EmptyInterval()} }

// FullRect returns the rectangle covering the whole sphere.
func FullRect() Rect { return Rect{validRectLatRange, s1.FullInterval()} }

var validRectLatRange = r1.Interval{Lo: -math.Pi / 2, Hi: math.Pi / 2}

// RectFromLatLng returns the minimal rectangle containing the single point.
func RectFromLatLng(ll LatLng) Rect {
	return Rect{
		Lat: r1.Interval{Lo: ll.Lat.Radians(), Hi: ll.Lat.Radians()},
		Lng: s1.IntervalFromPoint(ll.Lng.Radians()),
	}
}

// RectFromCenterSize constructs a rectangle with the given center and size.
// Both dimensions of size are clamped to be non-negative; latitude is
// clamped to the poles. If size.Lng.Degrees() >= 360 the longitude range
// becomes full.
func RectFromCenterSize(center, size LatLng) Rect {
	half := LatLng{size.Lat / 2, size.Lng / 2}
	if half.Lat < 0 {
		half.Lat = 0
	}
	if half.Lng < 0 {
		half.Lng = 0
	}
	return RectFromLatLng(center).expanded(half)
}

// IsValid reports whether the rectangle's latitude bounds lie within
// [-pi/2, pi/2] and its interval fields are not independently malformed.
func (r Rect) IsValid() bool {
	return math.Abs(r.Lat.Lo) <= math.Pi/2 && math.Abs(r.Lat.Hi) <= math.Pi/2 &&
		r.Lat.IsEmpty() == r.Lng.IsEmpty()
}

// IsEmpty reports whether the rectangle is the canonical empty rectangle.
func (r Rect) IsEmpty() bool { return r.Lat.IsEmpty() }

// IsFull reports whether the rectangle covers the whole sphere.
func (r Rect) IsFull() bool { return r.Lat == validRectLatRange && r.Lng.IsFull() }

// IsPoint reports whether the rectangle is a single point.
func (r Rect) IsPoint() bool { return r.Lat.Lo == r.Lat.Hi && r.Lng.Lo == r.Lng.Hi }

// Lo returns the low corner of the rectangle.
func (r Rect) Lo() LatLng { return LatLng{s1.Angle(r.Lat.Lo), s1.Angle(r.Lng.Lo)} }

// Hi returns the high corner of the rectangle.
func (r Rect) Hi() LatLng { return LatLng{s1.Angle(r.Lat.Hi), s1.Angle(r.Lng.Hi)} }

// Center returns the center of the rectangle.
func (r Rect) Center() LatLng {
	return LatLng{s1.Angle(r.Lat.Center()), s1.Angle(r.Lng.Center())}
}

// Size returns the angular width and height of the rectangle.
func (r Rect) Size() LatLng {
	return LatLng{s1.Angle(r.Lat.Length()), s1.Angle(r.Lng.Length())}
}

// Area returns the surface area enclosed by the rectangle.
func (r Rect) Area() float64 {
	if r.IsEmpty() {
		return 0
	}
	return r.Lng.Length() * math.Abs(math.Sin(r.Lat.Hi)-math.Sin(r.Lat.Lo))
}

// Vertex returns the k-th vertex of the rectangle (0..3) in CCW order
// starting from the low corner: (lat lo, lng lo), (lat lo, lng hi),
// (lat hi, lng hi), (lat hi, lng lo).
func (r Rect) Vertex(k int) LatLng {
	var lat, lng float64
	switch k {
	case 0:
		lat, lng = r.Lat.Lo, r.Lng.Lo
	case 1:
		lat, lng = r.Lat.Lo, r.Lng.Hi
	case 2:
		lat, lng = r.Lat.Hi, r.Lng.Hi
	default:
		lat, lng = r.Lat.Hi, r.Lng.Lo
	}
	return LatLng{s1.Angle(lat), s1.Angle(lng)}
}

// ContainsLatLng reports whether the rectangle contains ll.
func (r Rect) ContainsLatLng(ll LatLng) bool {
	return r.Lat.Contains(ll.Lat.Radians()) && r.Lng.Contains(ll.Lng.Radians())
}

// ContainsPoint reports whether the rectangle contains p.
func (r Rect) ContainsPoint(p Point) bool { return r.ContainsLatLng(LatLngFromPoint(p)) }

// AddPoint returns the smallest rectangle containing r and ll.
func (r Rect) AddPoint(ll LatLng) Rect {
	return Rect{r.Lat.AddPoint(ll.Lat.Radians()), r.Lng.AddPoint(ll.Lng.Radians())}
}

func (r Rect) expanded(margin LatLng) Rect {
	latResult := r.Lat.Expanded(margin.Lat.Radians())
	lngResult := r.Lng.Expanded(margin.Lng.Radians())
	if latResult.IsEmpty() || lngResult.IsEmpty() {
		return EmptyRect()
	}
	return Rect{latResult.Intersection(validRectLatRange), lngResult}
}

// Expanded returns a rectangle expanded on each side by the angles in margin.
func (r Rect) Expanded(margin LatLng) Rect { return r.expanded(margin) }

// PolarClosure returns the rectangle with its longitude range made full if
// its latitude range reaches either pole exactly; otherwise it returns the
// rectangle unchanged.
func (r Rect) PolarClosure() Rect {
	if r.Lat.Lo == -math.Pi/2 || r.Lat.Hi == math.Pi/2 {
		return Rect{r.Lat, s1.FullInterval()}
	}
	return r
}

// Equal reports whether r and other are the same rectangle, bound for bound.
func (r Rect) Equal(other Rect) bool { return r.Lat == other.Lat && r.Lng == other.Lng }

// Contains reports whether r contains other.
func (r Rect) Contains(other Rect) bool {
	return r.Lat.ContainsInterval(other.Lat) && r.Lng.ContainsInterval(other.Lng)
}

// Intersects reports whether r and other have any points in common.
func (r Rect) Intersects(other Rect) bool {
	return r.Lat.Intersects(other.Lat) && r.Lng.Intersects(other.Lng)
}

// Union returns the smallest rectangle containing both r and other.
func (r Rect) Union(other Rect) Rect {
	return Rect{r.Lat.Union(other.Lat), r.Lng.Union(other.Lng)}
}

// Intersection returns the intersection of r and other, which may be empty.
func (r Rect) Intersection(other Rect) Rect {
	lat := r.Lat.Intersection(other.Lat)
	lng := r.Lng.Intersection(other.Lng)
	if lat.IsEmpty() || lng.IsEmpty() {
		return EmptyRect()
	}
	return Rect{lat, lng}
}

// CapBound returns a bounding cap for the rectangle.
func (r Rect) CapBound() Cap {
	if r.IsEmpty() {
		return EmptyCap()
	}
	var poleZ, poleAngle float64
	if r.Lat.Lo+r.Lat.Hi < 0 {
		poleZ, poleAngle = -1, math.Pi/2+r.Lat.Hi
	} else {
		poleZ, poleAngle = 1, math.Pi/2-r.Lat.Lo
	}
	poleCap := CapFromCenterAngle(PointFromCoords(0, 0, poleZ), s1.Angle(poleAngle))
	if r.Lng.Length() < 2*math.Pi && (r.Lat.Hi-r.Lat.Lo) < poleAngle {
		midLat := r.Lat.Center()
		bandCenter := LatLng{s1.Angle(midLat), s1.Angle(r.Lng.Center())}.Point()
		b := CapFromCenterHeight(bandCenter, 0)
		b.AddPoint(r.Vertex(0).Point())
		b.AddPoint(r.Vertex(1).Point())
		b.AddPoint(r.Vertex(2).Point())
		b.AddPoint(r.Vertex(3).Point())
		if b.height < poleCap.height {
			return b
		}
	}
	return poleCap
}

// ContainsCell reports whether r contains cell.
func (r Rect) ContainsCell(cell Cell) bool {
	capBound := cell.CapBound()
	if capBound.Radius().Radians() >= math.Pi {
		return false
	}
	if !r.ContainsPoint(cell.Center()) {
		return false
	}
	for k := 0; k < 4; k++ {
		if !r.ContainsPoint(cell.Vertex(k)) {
			return false
		}
	}
	return true
}

// MayIntersect reports whether r and cell have any points in common,
// satisfying the Region interface under the same name Cap and Cell use.
func (r Rect) MayIntersect(cell Cell) bool { return r.IntersectsCell(cell) }

// IntersectsCell reports whether r and cell have any points in common.
func (r Rect) IntersectsCell(cell Cell) bool {
	if r.IsEmpty() {
		return false
	}
	if r.ContainsPoint(cell.Center()) {
		return true
	}
	if cell.ContainsPoint(r.Center().Point()) {
		return true
	}
	if !r.Intersects(cell.RectBound()) {
		return false
	}
	for k := 0; k < 4; k++ {
		if r.ContainsPoint(cell.Vertex(k)) {
			return true
		}
	}
	for k := 0; k < 4; k++ {
		a, b := cell.Vertex(k), cell.Vertex((k+1)&3)
		if r.Lng.InteriorIntersects(s1.IntervalFromPointPair(longitude(a), longitude(b))) &&
			intersectsLngEdge(a, b, r.Lat, s1.Angle(r.Lng.Lo)) {
			return true
		}
		if intersectsLatEdge(a, b, s1.Angle(r.Lat.Lo), r.Lng) || intersectsLatEdge(a, b, s1.Angle(r.Lat.Hi), r.Lng) {
			return true
		}
	}
	return false
}

func (r Rect) String() string {
	lo, hi := r.Lo(), r.Hi()
	return fmt.Sprintf("[Lo%s, Hi%s]",
		fmt.Sprintf("[%.7f, %.7f]", lo.Lat.Degrees(), lo.Lng.Degrees()),
		fmt.Sprintf("[%.7f, %.7f]", hi.Lat.Degrees(), hi.Lng.Degrees()))
}

// onMinorArc reports whether p, which is assumed to lie on the great
// circle through a and b, lies on the shorter arc between them (rather
// than on the complementary arc through -a/-b's side of the sphere).
func onMinorArc(a, b, p Point) bool {
	const epsilon = 1e-9
	return math.Abs(float64(p.Distance(a)+p.Distance(b)-a.Distance(b))) < epsilon
}

// intersectsLatEdge reports whether the great-circle edge AB crosses the
// circle of constant latitude lat within the given longitude interval.
func intersectsLatEdge(a, b Point, lat s1.Angle, lng s1.Interval) bool {
	n := a.Cross(b.Vector)
	if n.Norm2() == 0 {
		return false
	}
	z0 := math.Sin(float64(lat))
	r2v := 1 - z0*z0
	if r2v < 0 {
		return false
	}
	d2 := n.X*n.X + n.Y*n.Y
	if d2 == 0 {
		return false
	}
	c := -n.Z * z0
	disc := r2v*d2 - c*c
	if disc < 0 {
		return false
	}
	sq := math.Sqrt(disc)
	for _, sign := range [2]float64{1, -1} {
		x := (n.X*c + sign*n.Y*sq) / d2
		y := (n.Y*c - sign*n.X*sq) / d2
		p := Point{r3.Vector{X: x, Y: y, Z: z0}}
		if lng.Contains(math.Atan2(y, x)) && onMinorArc(a, b, p) {
			return true
		}
	}
	return false
}

// intersectsLngEdge reports whether the great-circle edge AB crosses the
// meridian at longitude lng within the given latitude interval.
func intersectsLngEdge(a, b Point, lat r1.Interval, lng s1.Angle) bool {
	lo := LatLng{s1.Angle(lat.Lo), lng}.Point()
	hi := LatLng{s1.Angle(lat.Hi), lng}.Point()
	return RobustSign(a, lo, hi) != RobustSign(b, lo, hi) &&
		RobustSign(a, b, lo) != RobustSign(a, b, hi)
}
