// Package kinematics defines the explicit Euler update schemes and velocity
// direction functions used by the trajectory engine.
//
// The default scheme advances velocity to first order but displacement to
// second order, reusing the freshly updated velocity in the displacement
// term. That asymmetry affects the trajectory, so the update order lives
// here as an explicit, selectable scheme rather than as inline arithmetic
// inside the integrator.
package kinematics

// Scheme names for the JSON/config discriminator.
const (
	MixedOrderSchemeName = "mixed"
	FirstOrderSchemeName = "first_order"
)

// Scheme advances one kinematic degree of freedom over a timestep.
// The integrator applies it to the speed/slope-distance pair while on the
// ramp and per velocity component in flight.
type Scheme interface {
	// Step returns the velocity after dt seconds under acceleration a, and
	// the displacement covered during the step.
	Step(v, a, dt float64) (newV, ds float64)
}

// MixedOrderEuler does a first-order velocity update followed by a
// second-order displacement computed from the updated velocity.
//
// ds = v'·dt + ½·a·dt² with v' = v + a·dt
type MixedOrderEuler struct{}

func (MixedOrderEuler) Step(v, a, dt float64) (float64, float64) {
	newV := v + a*dt
	return newV, newV*dt + 0.5*a*dt*dt
}

// FirstOrderEuler is the textbook fully first-order variant, kept selectable
// so the mixed-order quirk can be A/B-compared without touching the
// integrator.
type FirstOrderEuler struct{}

func (FirstOrderEuler) Step(v, a, dt float64) (float64, float64) {
	newV := v + a*dt
	return newV, newV * dt
}

// SchemeByName resolves a scheme discriminator string. Unknown names
// return false.
func SchemeByName(name string) (Scheme, bool) {
	switch name {
	case MixedOrderSchemeName, "":
		return MixedOrderEuler{}, true
	case FirstOrderSchemeName:
		return FirstOrderEuler{}, true
	default:
		return nil, false
	}
}
