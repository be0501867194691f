// Package metrics publishes per-step simulation state and run summaries as
// Prometheus gauges, for scraping while a simulation streams.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/demetrios-koziris/skijump-engine/internal/engine"
)

var (
	posXGauge         = prometheus.NewGauge(prometheus.GaugeOpts{Name: "skijump_pos_x_meters"})
	posYGauge         = prometheus.NewGauge(prometheus.GaugeOpts{Name: "skijump_pos_y_meters"})
	velocityGauge     = prometheus.NewGauge(prometheus.GaugeOpts{Name: "skijump_velocity_mps"})
	accelerationGauge = prometheus.NewGauge(prometheus.GaugeOpts{Name: "skijump_acceleration_mps2"})
	slopeDistGauge    = prometheus.NewGauge(prometheus.GaugeOpts{Name: "skijump_slope_distance_meters"})
	velAngleGauge     = prometheus.NewGauge(prometheus.GaugeOpts{Name: "skijump_velocity_angle_radians"})
	airborneGauge     = prometheus.NewGauge(prometheus.GaugeOpts{Name: "skijump_airborne"})

	takeoffSpeedGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "skijump_takeoff_speed_mps",
		Help: "Velocity magnitude at the ramp/impulse boundary of the last completed run",
	})
	jumpDistanceGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "skijump_final_distance_meters",
		Help: "Jump distance from the takeoff point to the landing point of the last completed run",
	})
	runsCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "skijump_runs_total",
		Help: "Number of completed simulation runs",
	})
)

func init() {
	prometheus.MustRegister(
		posXGauge, posYGauge, velocityGauge, accelerationGauge,
		slopeDistGauge, velAngleGauge, airborneGauge,
		takeoffSpeedGauge, jumpDistanceGauge, runsCounter,
	)
}

// PublishSample updates the per-step gauges from one trajectory sample.
func PublishSample(s engine.Sample) {
	posXGauge.Set(s.X)
	posYGauge.Set(s.Y)
	velocityGauge.Set(s.V)
	accelerationGauge.Set(s.A)
	slopeDistGauge.Set(s.SlopeDist)
	velAngleGauge.Set(s.VelAngle)
	if s.Phase == engine.PhaseAirborne {
		airborneGauge.Set(1)
	} else {
		airborneGauge.Set(0)
	}
}

// PublishResult updates the summary gauges from a completed run.
func PublishResult(r engine.Result) {
	takeoffSpeedGauge.Set(r.TakeoffSpeed)
	jumpDistanceGauge.Set(r.FinalDistance)
	runsCounter.Inc()
}
