package s2

import (
	"fmt"
	"math"

	"github.com/spherelib/s2/r3"
	"github.com/spherelib/s2/s1"
)

// LatLng represents a point on the unit sphere as a pair of angles.
type LatLng struct {
	Lat, Lng s1.Angle
}

// LatLngFromDegrees returns a LatLng for the given latitude and longitude
// in degrees.
func LatLngFromDegrees(lat, lng float64) LatLng {
	return LatLng{s1.Angle(lat) * s1.Degree, s1.Angle(lng) * s1.Degree}
}

// LatLngFromPoint returns the LatLng for point p.
func LatLngFromPoint(p Point) LatLng {
	return LatLng{
		Lat: s1.Angle(math.Atan2(p.Z, math.Sqrt(p.X*p.X+p.Y*p.Y))),
		Lng: s1.Angle(math.Atan2(p.Y, p.X)),
	}
}

// IsValid reports whether the LatLng is within valid latitude/longitude
// bounds.
func (ll LatLng) IsValid() bool {
	return math.Abs(ll.Lat.Radians()) <= math.Pi/2 && math.Abs(ll.Lng.Radians()) <= math.Pi
}

// Normalized returns the LatLng with its latitude clamped to
// [-pi/2, pi/2] and its longitude reduced modulo 2*pi to (-pi, pi].
func (ll LatLng) Normalized() LatLng {
	lat := ll.Lat.Radians()
	if lat > math.Pi/2 {
		lat = math.Pi / 2
	} else if lat < -math.Pi/2 {
		lat = -math.Pi / 2
	}
	lng := math.Remainder(ll.Lng.Radians(), 2*math.Pi)
	return LatLng{s1.Angle(lat), s1.Angle(lng)}
}

// PointFromLatLng returns the Point corresponding to ll.
func PointFromLatLng(ll LatLng) Point { return ll.Point() }

// Point returns the Point corresponding to ll, which is assumed to be
// normalized.
func (ll LatLng) Point() Point {
	phi := ll.Lat.Radians()
	theta := ll.Lng.Radians()
	cosphi := math.Cos(phi)
	return Point{
		Vector: r3.Vector{X: math.Cos(theta) * cosphi, Y: math.Sin(theta) * cosphi, Z: math.Sin(phi)},
	}
}

// Distance returns the angle between ll and o, treating both as points on
// the unit sphere (the Haversine formula, accurate for small distances).
func (ll LatLng) Distance(o LatLng) s1.Angle {
	lat1, lat2 := ll.Lat.Radians(), o.Lat.Radians()
	lng1, lng2 := ll.Lng.Radians(), o.Lng.Radians()
	dlat := math.Sin(0.5 * (lat2 - lat1))
	dlng := math.Sin(0.5 * (lng2 - lng1))
	x := dlat*dlat + dlng*dlng*math.Cos(lat1)*math.Cos(lat2)
	return s1.Angle(2 * math.Atan2(math.Sqrt(x), math.Sqrt(math.Max(0, 1-x))))
}

func (ll LatLng) String() string {
	return fmt.Sprintf("[%.7f, %.7f]", ll.Lat.Degrees(), ll.Lng.Degrees())
}
