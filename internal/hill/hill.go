// Package hill models the in-run and landing slope of the Whistler 140 m
// jumping hill as a piecewise analytic profile. Altitude is given as a
// function of horizontal position, and the in-run ramp additionally maps
// distance travelled along its curved surface to horizontal position and
// instantaneous slope angle.
//
// Segment bounds and coefficients come from the hill's FIS certificate
// survey data; the profile is fixed and stateless.
package hill

import (
	"errors"
	"fmt"
	"math"
)

// ErrOutOfRange is returned when a horizontal position falls outside the
// surveyed hill domain [0, MaxX].
var ErrOutOfRange = errors.New("position outside modeled hill range")

const (
	// MaxX is the horizontal extent of the surveyed profile in metres.
	MaxX = 270.46

	// RampEnd is the slope-distance at which the in-run ramp ends and the
	// skier leaves the takeoff table, in metres along the ramp surface.
	RampEnd = 102.15

	// TakeoffX and TakeoffY are the surveyed takeoff-point coordinates used
	// as the origin for jump distance measurement.
	TakeoffX = 88.64
	TakeoffY = 88.15
)

// segmentForm selects the analytic form of a profile segment.
type segmentForm int

const (
	formLinear segmentForm = iota // y = intercept + slope·x
	formArc                       // y = arcSign·sqrt(radiusSq − (x−centerX)²) + centerY
)

// segment is one interval of the piecewise altitude profile, valid for
// x ≤ xMax (with the previous segment's xMax as implicit lower bound).
type segment struct {
	xMax float64
	form segmentForm

	intercept float64
	slope     float64

	arcSign  float64
	radiusSq float64
	centerX  float64
	centerY  float64
}

func (s segment) altitude(x float64) float64 {
	if s.form == formLinear {
		return s.intercept + s.slope*x
	}
	dx := x - s.centerX
	return s.arcSign*math.Sqrt(s.radiusSq-dx*dx) + s.centerY
}

// profile is the surveyed altitude table, ordered by upper bound. The first
// segment whose xMax is not exceeded applies.
var profile = []segment{
	{xMax: 44.32, form: formLinear, intercept: 136.63, slope: -0.7},
	{xMax: 82.17, form: formArc, arcSign: -1, radiusSq: 10000, centerX: 101.68, centerY: 187.52},
	{xMax: 88.642, form: formLinear, intercept: 105.87, slope: -0.2},
	{xMax: 142.55, form: formArc, arcSign: 1, radiusSq: 8047.18, centerX: 88.64, centerY: -5.14},
	{xMax: 186.96, form: formLinear, intercept: 174.04, slope: -0.754},
	{xMax: 208.67, form: formArc, arcSign: -1, radiusSq: 113232.25, centerX: 389.47, centerY: 301.81},
	{xMax: MaxX, form: formArc, arcSign: -1, radiusSq: 13225, centerX: 270.46, centerY: 115},
}

// Altitude returns the hill surface altitude in metres at horizontal
// position x. Positions outside [0, MaxX] return ErrOutOfRange rather than
// a silent zero.
func Altitude(x float64) (float64, error) {
	if x < 0 || x > MaxX {
		return 0, fmt.Errorf("altitude at x=%.3f: %w", x, ErrOutOfRange)
	}
	for _, s := range profile {
		if x <= s.xMax {
			return s.altitude(x), nil
		}
	}
	// Unreachable: the range check above bounds x by the last segment.
	return 0, fmt.Errorf("altitude at x=%.3f: %w", x, ErrOutOfRange)
}

// PositionForSlopeDistance maps distance travelled along the in-run ramp to
// horizontal position. The ramp has three sections: a straight upper slope,
// a circular transition radius, and the flat takeoff table. Beyond the end
// of the table the position is pinned at the takeoff edge rather than
// extrapolated.
func PositionForSlopeDistance(d float64) float64 {
	switch {
	case d <= 54.1:
		return math.Cos(0.611) * d
	case d <= 95.55:
		return 44.32 + 57.36 - math.Cos(0.96+(d-54.1)/100)*100
	case d <= RampEnd:
		return 82.17 + math.Cos(0.196)*(d-95.55)
	default:
		return 88.642
	}
}

// SlopeAngle returns the ramp's angle relative to the +x axis at slope
// distance d: constant on the straight section, increasing linearly with d
// through the transition radius, and constant again on the takeoff table.
// Beyond the table edge the angle is 0.
func SlopeAngle(d float64) float64 {
	switch {
	case d <= 54.1:
		return -0.611
	case d <= 95.55:
		return -0.611 + (d-54.1)/100
	case d <= RampEnd:
		return -0.196
	default:
		return 0
	}
}

// Point is a sampled (x, y) position on the hill surface.
type Point struct {
	X float64 `json:"x"` // metres
	Y float64 `json:"y"` // metres
}

// Outline samples the full profile at the given horizontal step and returns
// the surface points in order of increasing x. Display consumers use this to
// draw the hill under the trajectory.
func Outline(step float64) []Point {
	if step <= 0 {
		step = 0.5
	}
	points := make([]Point, 0, int(MaxX/step)+2)
	for x := 0.0; x <= MaxX; x += step {
		y, err := Altitude(x)
		if err != nil {
			break
		}
		points = append(points, Point{X: x, Y: y})
	}
	return points
}
