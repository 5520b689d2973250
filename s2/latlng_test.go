package s2

import (
	"math"
	"testing"

	"github.com/spherelib/s2/s1"
)

func TestLatLngIsValid(t *testing.T) {
	tests := []struct {
		ll   LatLng
		want bool
	}{
		{LatLngFromDegrees(0, 0), true},
		{LatLngFromDegrees(90, 180), true},
		{LatLngFromDegrees(-90, -180), true},
		{LatLngFromDegrees(91, 0), false},
		{LatLngFromDegrees(0, 181), false},
	}
	for _, test := range tests {
		if got := test.ll.IsValid(); got != test.want {
			t.Errorf("%v.IsValid() = %v, want %v", test.ll, got, test.want)
		}
	}
}

func TestLatLngNormalized(t *testing.T) {
	ll := LatLng{Lat: 100 * s1.Degree, Lng: 200 * s1.Degree}
	got := ll.Normalized()
	if got.Lat.Degrees() != 90 {
		t.Errorf("Normalized().Lat = %v degrees, want clamped to 90", got.Lat.Degrees())
	}
	if !got.IsValid() {
		t.Errorf("Normalized() should produce a valid LatLng, got %v", got)
	}
}

func TestLatLngPointRoundTrip(t *testing.T) {
	tests := []LatLng{
		LatLngFromDegrees(0, 0),
		LatLngFromDegrees(90, 0),
		LatLngFromDegrees(-90, 0),
		LatLngFromDegrees(45, 90),
		LatLngFromDegrees(-30, -150),
	}
	for _, ll := range tests {
		p := PointFromLatLng(ll)
		if !p.IsUnit() {
			t.Errorf("PointFromLatLng(%v) = %v, want a unit vector", ll, p)
		}
		got := LatLngFromPoint(p)
		if math.Abs(got.Lat.Radians()-ll.Lat.Radians()) > 1e-14 {
			t.Errorf("round-trip Lat = %v, want %v", got.Lat.Radians(), ll.Lat.Radians())
		}
		wantLng := ll.Lng.Radians()
		gotLng := got.Lng.Radians()
		// Longitude is ambiguous at the poles, where any value round-trips
		// to the same point; skip the longitude check there.
		if math.Abs(math.Abs(ll.Lat.Degrees())-90) < 1e-9 {
			continue
		}
		if math.Abs(gotLng-wantLng) > 1e-14 {
			t.Errorf("round-trip Lng = %v, want %v", gotLng, wantLng)
		}
	}
}

func TestLatLngDistance(t *testing.T) {
	tests := []struct {
		a, b LatLng
		want float64 // radians
	}{
		{LatLngFromDegrees(0, 0), LatLngFromDegrees(0, 0), 0},
		{LatLngFromDegrees(0, 0), LatLngFromDegrees(0, 90), math.Pi / 2},
		{LatLngFromDegrees(0, 0), LatLngFromDegrees(90, 0), math.Pi / 2},
		{LatLngFromDegrees(0, 0), LatLngFromDegrees(0, 180), math.Pi},
		{LatLngFromDegrees(90, 0), LatLngFromDegrees(-90, 0), math.Pi},
	}
	for _, test := range tests {
		got := test.a.Distance(test.b).Radians()
		if math.Abs(got-test.want) > 1e-14 {
			t.Errorf("%v.Distance(%v) = %v, want %v", test.a, test.b, got, test.want)
		}
	}
}

func TestLatLngString(t *testing.T) {
	ll := LatLngFromDegrees(12.3456789, -98.7654321)
	want := "[12.3456789, -98.7654321]"
	if got := ll.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
