package engine

// Phase identifies which part of the jump a sample belongs to. The takeoff
// impulse is instantaneous and never produces a sample of its own; landing
// terminates the run, so no landed samples exist either.
type Phase string

const (
	PhaseOnTrack  Phase = "on_track"
	PhaseAirborne Phase = "airborne"
)

// State is the kinematic state of the skier at a single instant. V always
// satisfies V = sqrt(VX²+VY²) and VelAngle is the direction of the velocity
// vector relative to the +x axis. A is sqrt(AX²+AY²) in flight; on the ramp
// it carries the signed along-slope scalar, whose magnitude equals the same
// expression.
type State struct {
	T float64 `json:"t"` // seconds since the run started

	X float64 `json:"pos_x"` // m
	Y float64 `json:"pos_y"` // m

	VX float64 `json:"vel_x"`    // m/s
	VY float64 `json:"vel_y"`    // m/s
	V  float64 `json:"velocity"` // m/s, magnitude

	AX float64 `json:"acc_x"`        // m/s²
	AY float64 `json:"acc_y"`        // m/s²
	A  float64 `json:"acceleration"` // m/s², magnitude

	VelAngle float64 `json:"vel_angle"` // rad from +x axis
}

// Sample is one recorded integration step: the kinematic state plus the
// hill context consumers need for display and export. SlopeDist is only
// meaningful while on track.
type Sample struct {
	Phase Phase `json:"phase"`
	State
	SlopeDist float64 `json:"slope_dist"` // m along the ramp surface
	GroundY   float64 `json:"ground_y"`   // m, hill altitude under the skier
}

// Result summarises a completed run.
type Result struct {
	TotalMass     float64 `json:"total_mass"`     // kg
	Height        float64 `json:"height"`         // m
	StartPosition float64 `json:"start_position"` // m along the ramp
	TakeoffSpeed  float64 `json:"takeoff_speed"`  // m/s at the ramp/impulse boundary
	FinalDistance float64 `json:"final_distance"` // m from the takeoff point to landing
}

// TrajectoryLog is the complete output of a simulation run: the parameters
// it was run with, every recorded step in chronological order, and the
// summary. The sample slice is owned by the run that produced it and is
// read-only to consumers.
type TrajectoryLog struct {
	Params  SkierParams `json:"params"`
	Samples []Sample    `json:"samples"`
	Result  Result      `json:"result"`
}

// SimulationInput is the JSON-serialisable input to the engine. Zero-valued
// fields fall back to the reference run's constants, so an empty input
// reproduces the reference jump. Scheme and Direction select the integration
// policy by discriminator name (see the kinematics package); empty strings
// select the reference behavior.
type SimulationInput struct {
	BodyMass      float64 `json:"body_mass,omitempty"`
	Height        float64 `json:"height,omitempty"`
	FrictionCoeff float64 `json:"friction_coeff,omitempty"`
	AirDensity    float64 `json:"air_density,omitempty"`
	Gravity       float64 `json:"gravity,omitempty"`
	TimeStep      float64 `json:"time_step,omitempty"`
	StartPosition float64 `json:"start_position,omitempty"`
	JumpHeight    float64 `json:"jump_height,omitempty"`

	Scheme    string `json:"scheme,omitempty"`
	Direction string `json:"direction,omitempty"`
}

// Reference athlete data for the recorded jump.
const (
	referenceBodyMass = 63.0
	referenceHeight   = 1.8
)

// Params expands the input into a full SkierParams, deriving the
// regulation-dependent quantities and applying any overrides.
func (in SimulationInput) Params() SkierParams {
	bodyMass := in.BodyMass
	if bodyMass == 0 {
		bodyMass = referenceBodyMass
	}
	height := in.Height
	if height == 0 {
		height = referenceHeight
	}
	p := NewSkierParams(bodyMass, height)
	if in.FrictionCoeff != 0 {
		p.FrictionCoeff = in.FrictionCoeff
	}
	if in.AirDensity != 0 {
		p.AirDensity = in.AirDensity
	}
	if in.Gravity != 0 {
		p.Gravity = in.Gravity
	}
	if in.TimeStep != 0 {
		p.TimeStep = in.TimeStep
	}
	if in.StartPosition != 0 {
		p.StartPosition = in.StartPosition
	}
	if in.JumpHeight != 0 {
		p.JumpHeight = in.JumpHeight
	}
	return p
}
