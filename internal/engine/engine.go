// Package engine implements the three-phase ski jump trajectory simulation.
//
// The simulation advances in fixed timesteps through three phases:
//
//  1. On track - the skier accelerates down the in-run ramp. Gravity,
//     friction, and a crude quadratic drag term act along the slope; speed
//     is integrated as a scalar and converted back to components from the
//     local slope angle.
//
//  2. Takeoff impulse - an instantaneous velocity boost normal to the slope,
//     modelling the jump push at the table edge. No time passes.
//
//  3. Airborne - gravity, lift, and drag act on the velocity components
//     until the skier descends to within a third of body height of the hill
//     surface, which ends the run.
//
// Each step appends one immutable Sample to the trajectory log; the landing
// step itself is not recorded. The integrator is deterministic and keeps no
// state between runs, so independent runs may execute concurrently.
package engine

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/demetrios-koziris/skijump-engine/internal/aero"
	"github.com/demetrios-koziris/skijump-engine/internal/hill"
	"github.com/demetrios-koziris/skijump-engine/internal/kinematics"
)

// Integrator runs one trajectory simulation. Construct with New, optionally
// set Observer, then call Run once.
type Integrator struct {
	params SkierParams
	aero   aero.Model
	scheme kinematics.Scheme
	dir    kinematics.Direction

	// Observer, when set, receives every sample as it is recorded. Used by
	// live display and metrics consumers; the engine itself never reads it
	// back.
	Observer func(Sample)
}

// New constructs an Integrator from a SimulationInput, resolving the
// integration scheme and direction function from their discriminator names
// and validating the expanded parameters.
func New(input SimulationInput) (*Integrator, error) {
	params := input.Params()
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("invalid parameters: %w", err)
	}

	scheme, ok := kinematics.SchemeByName(input.Scheme)
	if !ok {
		return nil, fmt.Errorf("unknown integration scheme %q", input.Scheme)
	}
	dir, ok := kinematics.DirectionByName(input.Direction)
	if !ok {
		return nil, fmt.Errorf("unknown direction function %q", input.Direction)
	}

	return &Integrator{
		params: params,
		aero: aero.Model{
			AirDensity:      params.AirDensity,
			FrontalAreaSkis: params.FrontalAreaSkis,
			FrontalAreaBody: params.FrontalAreaBody,
		},
		scheme: scheme,
		dir:    dir,
	}, nil
}

// Params returns the expanded parameter set the integrator runs with.
func (i *Integrator) Params() SkierParams { return i.params }

// Run executes the full three-phase simulation and returns the trajectory
// log. The returned log is independent of the integrator; calling Run again
// produces an identical fresh log.
func (i *Integrator) Run() (*TrajectoryLog, error) {
	log := &TrajectoryLog{Params: i.params}

	takeoffSpeed, st, slopeDist, err := i.runOnTrack(log)
	if err != nil {
		return nil, fmt.Errorf("on-track phase: %w", err)
	}

	st = i.applyTakeoffImpulse(st, slopeDist)

	st, err = i.runAirborne(log, st)
	if err != nil {
		return nil, fmt.Errorf("airborne phase: %w", err)
	}

	dx := st.X - hill.TakeoffX
	dy := hill.TakeoffY - st.Y
	log.Result = Result{
		TotalMass:     i.params.TotalMass,
		Height:        i.params.Height,
		StartPosition: i.params.StartPosition,
		TakeoffSpeed:  takeoffSpeed,
		FinalDistance: math.Sqrt(dx*dx + dy*dy),
	}
	return log, nil
}

// record appends a sample to the log and notifies the observer.
func (i *Integrator) record(log *TrajectoryLog, s Sample) {
	log.Samples = append(log.Samples, s)
	if i.Observer != nil {
		i.Observer(s)
	}
}

// runOnTrack advances the skier along the ramp until the slope distance
// passes the end of the takeoff table. Speed is integrated as a scalar along
// the slope; position follows from the ramp geometry. Returns the takeoff
// speed, the state at exit, and the final slope distance.
func (i *Integrator) runOnTrack(log *TrajectoryLog) (float64, State, float64, error) {
	p := i.params
	dt := p.TimeStep

	slopeDist := p.StartPosition
	x := hill.PositionForSlopeDistance(slopeDist)
	y, err := hill.Altitude(x)
	if err != nil {
		return 0, State{}, 0, err
	}

	var st State
	st.X, st.Y = x, y

	for slopeDist <= hill.RampEnd {
		theta := hill.SlopeAngle(slopeDist)

		// Gravity and friction along the slope, with a crude quadratic drag
		// term folded in. Drag here is not the flight lift/drag model: the
		// crouched in-run stance is approximated by a fixed 0.5 coefficient
		// on the takeoff frontal area.
		a := p.Gravity*(math.Sin(-theta)-p.FrictionCoeff*math.Cos(-theta)) -
			0.5*p.AirDensity*p.FrontalAreaTakeoff*0.5*st.V*st.V/p.TotalMass

		st.AX = a * math.Cos(theta)
		st.AY = a * math.Sin(theta)
		st.A = a

		var ds float64
		st.V, ds = i.scheme.Step(st.V, a, dt)
		st.VX = st.V * math.Cos(theta)
		st.VY = st.V * math.Sin(theta)

		slopeDist += ds
		st.X = hill.PositionForSlopeDistance(slopeDist)
		st.Y, err = hill.Altitude(st.X)
		if err != nil {
			return 0, State{}, 0, err
		}
		st.T += dt
		st.VelAngle = theta

		i.record(log, Sample{
			Phase:     PhaseOnTrack,
			State:     st,
			SlopeDist: slopeDist,
			GroundY:   st.Y,
		})
	}

	return st.V, st, slopeDist, nil
}

// applyTakeoffImpulse adds the jump push at the table edge: the exit speed
// is decomposed along the slope angle at the exit slope distance, then a
// velocity of sqrt(2·g·jumpHeight) is added normal to the slope. No time
// passes and no sample is recorded.
func (i *Integrator) applyTakeoffImpulse(st State, slopeDist float64) State {
	p := i.params
	theta := hill.SlopeAngle(slopeDist)
	jump := math.Sqrt(2 * p.Gravity * p.JumpHeight)

	st.VX = st.V*math.Cos(theta) + jump*math.Sin(theta)
	st.VY = st.V*-math.Sin(theta) + jump*math.Cos(theta)
	st.V = math.Sqrt(st.VX*st.VX + st.VY*st.VY)
	return st
}

// runAirborne advances the skier through flight until the landing test
// fires: the run ends when the skier's centre of mass descends to within a
// third of body height of the hill surface. The final out-of-bounds step is
// not recorded. Returns the landing state.
func (i *Integrator) runAirborne(log *TrajectoryLog, st State) (State, error) {
	p := i.params
	dt := p.TimeStep
	flightStart := st.T

	for {
		theta, err := i.dir(st.VX, st.VY)
		if err != nil {
			return State{}, fmt.Errorf("at t=%.3f: %w", st.T, err)
		}

		flightTime := st.T - flightStart
		lift := i.aero.LiftForce(st.V, theta, flightTime)
		drag := i.aero.DragForce(st.V, theta, flightTime)

		st.AX = (lift*-math.Sin(theta) + drag*-math.Cos(theta)) / p.TotalMass
		st.AY = -p.Gravity + (lift*math.Cos(theta)+drag*-math.Sin(theta))/p.TotalMass
		st.A = math.Sqrt(st.AX*st.AX + st.AY*st.AY)

		var dsx, dsy float64
		st.VX, dsx = i.scheme.Step(st.VX, st.AX, dt)
		st.VY, dsy = i.scheme.Step(st.VY, st.AY, dt)
		st.V = math.Sqrt(st.VX*st.VX + st.VY*st.VY)

		st.X += dsx
		st.Y += dsy
		st.T += dt
		st.VelAngle = theta

		ground, err := hill.Altitude(st.X)
		if err != nil {
			return State{}, fmt.Errorf("landing check: %w", err)
		}

		if st.Y < ground+p.Height/3 {
			return st, nil
		}

		i.record(log, Sample{
			Phase:   PhaseAirborne,
			State:   st,
			GroundY: ground,
		})
	}
}

// RunJSON is the entry point shared by the CLI, server, and WASM targets.
// It accepts a JSON-encoded SimulationInput, runs the simulation, and
// returns a JSON-encoded TrajectoryLog.
func RunJSON(jsonInput string) (string, error) {
	var input SimulationInput
	if err := json.Unmarshal([]byte(jsonInput), &input); err != nil {
		return "", fmt.Errorf("invalid input JSON: %w", err)
	}

	integrator, err := New(input)
	if err != nil {
		return "", err
	}

	trajectory, err := integrator.Run()
	if err != nil {
		return "", err
	}

	out, err := json.Marshal(trajectory)
	if err != nil {
		return "", fmt.Errorf("marshaling output: %w", err)
	}
	return string(out), nil
}
