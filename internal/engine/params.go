package engine

import "fmt"

// Regulation-derived constants. Ski length and width are fixed multiples of
// the athlete's height under FIS equipment rules, and the equipment mass
// covers clothes, bindings, and boots.
const (
	skiLengthFactor  = 1.45 // ski length = height · 1.45
	skiWidthFraction = 0.1  // frontal ski area uses a 0.1 m reference width per metre of length
	bodyWidthFactor  = 0.3  // average frontal body width, metres per metre of height
	equipmentMass    = 2.0  // kg
)

// SkierParams holds every physical constant for one simulation run. All
// fields are fixed once the run starts; the integrator never mutates them.
type SkierParams struct {
	BodyMass  float64 `json:"body_mass"`  // kg
	SkiMass   float64 `json:"ski_mass"`   // kg, derived from height per regulation
	TotalMass float64 `json:"total_mass"` // kg, body + skis + equipment
	Height    float64 `json:"height"`     // m

	FrontalAreaBody    float64 `json:"frontal_area_body"`    // m², standing
	FrontalAreaTakeoff float64 `json:"frontal_area_takeoff"` // m², crouched in-run stance
	FrontalAreaSkis    float64 `json:"frontal_area_skis"`    // m²

	FrictionCoeff float64 `json:"friction_coeff"` // snow on waxed skis
	AirDensity    float64 `json:"air_density"`    // kg/m³
	Gravity       float64 `json:"gravity"`        // m/s²

	TimeStep      float64 `json:"time_step"`      // s
	StartPosition float64 `json:"start_position"` // m along the ramp surface
	JumpHeight    float64 `json:"jump_height"`    // m, vertical push at takeoff
}

// NewSkierParams derives a full parameter set from body mass and height,
// using the reference run's environmental constants. Individual fields can
// be overridden afterwards; call Validate before running.
func NewSkierParams(bodyMass, height float64) SkierParams {
	skiMass := 2 * (height * skiLengthFactor)
	bodyArea := height * bodyWidthFactor
	return SkierParams{
		BodyMass:           bodyMass,
		SkiMass:            skiMass,
		TotalMass:          skiMass + bodyMass + equipmentMass,
		Height:             height,
		FrontalAreaBody:    bodyArea,
		FrontalAreaTakeoff: bodyArea * 0.5,
		FrontalAreaSkis:    2 * (height * skiLengthFactor * skiWidthFraction),
		FrictionCoeff:      0.05,
		AirDensity:         1.13,
		Gravity:            9.81,
		TimeStep:           0.001,
		StartPosition:      6.25,
		JumpHeight:         0.4,
	}
}

// Validate rejects parameter sets the integrator cannot run with. Checks
// happen before the first step so a bad configuration fails fast instead of
// producing a degenerate trajectory.
func (p SkierParams) Validate() error {
	switch {
	case p.BodyMass <= 0:
		return fmt.Errorf("body mass must be positive, got %g", p.BodyMass)
	case p.TotalMass <= 0:
		return fmt.Errorf("total mass must be positive, got %g", p.TotalMass)
	case p.Height <= 0:
		return fmt.Errorf("height must be positive, got %g", p.Height)
	case p.TimeStep <= 0:
		return fmt.Errorf("time step must be positive, got %g", p.TimeStep)
	case p.StartPosition < 0:
		return fmt.Errorf("start position must be non-negative, got %g", p.StartPosition)
	case p.AirDensity < 0:
		return fmt.Errorf("air density must be non-negative, got %g", p.AirDensity)
	case p.FrictionCoeff < 0:
		return fmt.Errorf("friction coefficient must be non-negative, got %g", p.FrictionCoeff)
	case p.Gravity <= 0:
		return fmt.Errorf("gravity must be positive, got %g", p.Gravity)
	case p.JumpHeight < 0:
		return fmt.Errorf("jump height must be non-negative, got %g", p.JumpHeight)
	}
	return nil
}
