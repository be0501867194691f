package kinematics

import (
	"errors"
	"math"
)

// Direction names for the JSON/config discriminator.
const (
	QuadrantNaiveDirectionName = "single_atan"
	FourQuadrantDirectionName  = "atan2"
)

// ErrVerticalVelocity is returned when the horizontal velocity component is
// zero and the flight direction is undefined for the selected function.
var ErrVerticalVelocity = errors.New("zero horizontal velocity: flight direction undefined")

// Direction computes the angle of a velocity vector relative to the +x axis.
type Direction func(vx, vy float64) (float64, error)

// QuadrantNaive uses the single-argument arctangent: the direction is
// always placed in the first or fourth quadrant. It is the default, since
// the aerodynamic coefficient tables were fitted against it; FourQuadrant
// is the corrected variant. Division by zero is surfaced as
// ErrVerticalVelocity instead of propagating a non-finite angle.
func QuadrantNaive(vx, vy float64) (float64, error) {
	if vx == 0 {
		return 0, ErrVerticalVelocity
	}
	return math.Atan(vy / vx), nil
}

// FourQuadrant is the full two-argument arctangent variant.
func FourQuadrant(vx, vy float64) (float64, error) {
	if vx == 0 && vy == 0 {
		return 0, ErrVerticalVelocity
	}
	return math.Atan2(vy, vx), nil
}

// DirectionByName resolves a direction discriminator string. Unknown names
// return false.
func DirectionByName(name string) (Direction, bool) {
	switch name {
	case QuadrantNaiveDirectionName, "":
		return QuadrantNaive, true
	case FourQuadrantDirectionName:
		return FourQuadrant, true
	default:
		return nil, false
	}
}
