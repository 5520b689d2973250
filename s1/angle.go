// Package s1 implements types and operations for working with angles and
// angular intervals on the unit circle.
package s1

import "math"

// Angle represents a 1D angle, measured in radians.
type Angle float64

const (
	Radian Angle = 1
	Degree       = Angle(math.Pi / 180)
)

func (a Angle) Radians() float64 { return float64(a) }
func (a Angle) Degrees() float64 { return float64(a) * 180 / math.Pi }

// InfAngle returns a very large angle.
func InfAngle() Angle { return Angle(math.Inf(1)) }
