// Package aero computes the lift and drag forces acting on an airborne ski
// jumper. The attack angles of the skis and body are drawn from a table of
// empirically fitted time windows recorded during a reference jump, and the
// lift and drag coefficients are polynomial fits in the ski attack angle.
package aero

import "math"

// degPerRad converts radians to degrees using the same rounded π the
// coefficient fits were produced with. Substituting math.Pi here would shift
// the fitted curves.
const degPerRad = 180 / 3.14

// Model holds the environmental and body-geometry constants the force
// computations depend on. Both force methods are pure functions of their
// arguments; a Model is safe for concurrent use.
type Model struct {
	AirDensity      float64 // kg/m³
	FrontalAreaSkis float64 // m²
	FrontalAreaBody float64 // m²
}

// attackWindow is one time interval of the fitted flight posture. The ski
// attack angle is the flight direction shifted by skiOffset; the body angle
// additionally shifts by bodyOffset (the torso leans ahead of the skis early
// in flight and behind them once the jumper settles).
type attackWindow struct {
	tMax       float64 // upper bound, seconds since takeoff
	skiOffset  float64 // rad
	bodyOffset float64 // rad, applied on top of skiOffset
}

// attackTable is the fitted posture timeline. The first window whose tMax is
// not exceeded applies; flight beyond the last bound holds the final
// stabilised posture.
var attackTable = []attackWindow{
	{tMax: 0.04, skiOffset: 0.209, bodyOffset: 1.187},
	{tMax: 0.21, skiOffset: 0.087, bodyOffset: -1.047},
	{tMax: 0.63, skiOffset: -0.209, bodyOffset: -0.349},
	{tMax: 1.05, skiOffset: -0.122, bodyOffset: -0.349},
	{tMax: 1.43, skiOffset: -0.105, bodyOffset: -0.349},
	{tMax: 2.04, skiOffset: -0.035, bodyOffset: -0.349},
	{tMax: 2.26, skiOffset: -0.017, bodyOffset: -0.349},
	{tMax: 2.71, skiOffset: -0.017, bodyOffset: -0.349},
	{tMax: 3.26, skiOffset: -0.017, bodyOffset: -0.349},
}

// settledWindow applies beyond the last tabulated bound.
var settledWindow = attackWindow{skiOffset: -0.035, bodyOffset: -0.349}

// AttackAngles returns the attack angles of the skis and the body relative
// to the velocity vector, for flight direction velAngle (rad) at time t
// seconds after takeoff. Both angles are magnitudes.
func AttackAngles(velAngle, t float64) (ski, body float64) {
	w := settledWindow
	for _, cand := range attackTable {
		if t <= cand.tMax {
			w = cand
			break
		}
	}
	ski = math.Abs(velAngle + w.skiOffset)
	body = math.Abs(velAngle + w.bodyOffset + w.skiOffset)
	return ski, body
}

// polynomial holds the coefficients of a·x² + b·x + c.
type polynomial struct {
	a, b, c float64
}

func (p polynomial) eval(x float64) float64 {
	return p.a*x*x + p.b*x + p.c
}

// liftPoly is the empirical lift coefficient fit, in degrees of ski attack.
var liftPoly = polynomial{a: -0.00025, b: 0.0228, c: -0.092}

// DragForce returns the drag force magnitude in newtons for velocity
// magnitude v (m/s), flight direction velAngle (rad), and time t seconds
// since takeoff. The drag coefficient grows linearly with the ski attack
// angle and the projected area combines the sine-projected ski and body
// frontal areas. Always non-negative.
func (m Model) DragForce(v, velAngle, t float64) float64 {
	ski, body := AttackAngles(velAngle, t)
	dragCoeff := 0.0103 * ski * degPerRad
	projectedArea := m.FrontalAreaSkis*math.Sin(ski) + m.FrontalAreaBody*math.Sin(body)
	return math.Abs(0.5 * m.AirDensity * projectedArea * dragCoeff * v * v)
}

// LiftForce returns the lift force magnitude in newtons for the same
// arguments as DragForce. The lift coefficient is a quadratic fit in the ski
// attack angle and the projected area uses cosine projection. Always
// non-negative.
func (m Model) LiftForce(v, velAngle, t float64) float64 {
	ski, body := AttackAngles(velAngle, t)
	liftCoeff := math.Abs(liftPoly.eval(ski * degPerRad))
	projectedArea := m.FrontalAreaSkis*math.Cos(ski) + m.FrontalAreaBody*math.Cos(body)
	return math.Abs(0.5 * m.AirDensity * projectedArea * liftCoeff * v * v)
}
