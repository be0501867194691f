// Package server exposes the simulation engine over HTTP: REST endpoints to
// trigger runs and fetch results, a websocket stream of trajectory samples
// for live display clients, and hill geometry for drawing the profile.
package server

import (
	"encoding/json"
	"io"
	"net/http"
	"sync"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/demetrios-koziris/skijump-engine/internal/engine"
	"github.com/demetrios-koziris/skijump-engine/internal/hill"
	"github.com/demetrios-koziris/skijump-engine/internal/metrics"
)

// sampleStride thins the websocket stream: the engine steps every
// millisecond, far denser than a display needs for point-plotting.
const sampleStride = 25

// Server owns the run state shared between HTTP handlers and the run
// goroutine. One simulation runs at a time.
type Server struct {
	log          zerolog.Logger
	defaultInput engine.SimulationInput

	mu      sync.RWMutex
	running bool
	lastRun *engine.TrajectoryLog

	upgrader  websocket.Upgrader
	wsMu      sync.Mutex
	wsClients map[*websocket.Conn]bool
}

// New creates a Server whose runs default to the given input when a start
// request carries no body.
func New(log zerolog.Logger, defaultInput engine.SimulationInput) *Server {
	return &Server{
		log:          log,
		defaultInput: defaultInput,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		wsClients: make(map[*websocket.Conn]bool),
	}
}

// Router builds the HTTP route table.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/simulation/start", s.handleStart).Methods("POST")
	r.HandleFunc("/simulation/result", s.handleResult).Methods("GET")
	r.HandleFunc("/simulation/trajectory", s.handleTrajectory).Methods("GET")
	r.HandleFunc("/hill/outline", s.handleOutline).Methods("GET")
	r.HandleFunc("/ws", s.handleWebSocket)
	return r
}

// handleStart kicks off a simulation run in the background. The optional
// request body is a SimulationInput overriding the server's defaults.
// Responds 409 if a run is already in progress.
func (s *Server) handleStart(w http.ResponseWriter, r *http.Request) {
	input := s.defaultInput

	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if len(body) > 0 {
		if err := json.Unmarshal(body, &input); err != nil {
			http.Error(w, "invalid simulation input: "+err.Error(), http.StatusBadRequest)
			return
		}
	}

	integrator, err := engine.New(input)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		http.Error(w, "simulation already running", http.StatusConflict)
		return
	}
	s.running = true
	s.mu.Unlock()

	go s.runSimulation(integrator)

	w.WriteHeader(http.StatusAccepted)
	writeJSON(w, map[string]string{"status": "started"})
}

// runSimulation executes one run, streaming samples to websocket clients and
// metrics, and stores the completed log.
func (s *Server) runSimulation(integrator *engine.Integrator) {
	defer func() {
		s.mu.Lock()
		s.running = false
		s.mu.Unlock()
	}()

	var step int
	integrator.Observer = func(sample engine.Sample) {
		metrics.PublishSample(sample)
		if step%sampleStride == 0 {
			s.broadcast(wsMessage{Type: "sample", Data: sample})
		}
		step++
	}

	s.log.Info().
		Float64("body_mass", integrator.Params().BodyMass).
		Float64("height", integrator.Params().Height).
		Msg("simulation started")

	trajectory, err := integrator.Run()
	if err != nil {
		s.log.Error().Err(err).Msg("simulation failed")
		s.broadcast(wsMessage{Type: "error", Data: err.Error()})
		return
	}

	s.mu.Lock()
	s.lastRun = trajectory
	s.mu.Unlock()

	metrics.PublishResult(trajectory.Result)
	s.broadcast(wsMessage{Type: "result", Data: trajectory.Result})

	s.log.Info().
		Int("samples", len(trajectory.Samples)).
		Float64("takeoff_speed", trajectory.Result.TakeoffSpeed).
		Float64("final_distance", trajectory.Result.FinalDistance).
		Msg("simulation finished")
}

// handleResult returns the summary of the most recent completed run.
func (s *Server) handleResult(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	last := s.lastRun
	s.mu.RUnlock()

	if last == nil {
		http.Error(w, "no completed run", http.StatusNotFound)
		return
	}
	writeJSON(w, last.Result)
}

// handleTrajectory returns the full sample sequence of the most recent
// completed run.
func (s *Server) handleTrajectory(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	last := s.lastRun
	s.mu.RUnlock()

	if last == nil {
		http.Error(w, "no completed run", http.StatusNotFound)
		return
	}
	writeJSON(w, last)
}

// handleOutline returns sampled hill surface points for drawing the profile
// under the trajectory.
func (s *Server) handleOutline(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, hill.Outline(0.5))
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	// Headers are already out by the time Encode can fail.
	_ = json.NewEncoder(w).Encode(v)
}
