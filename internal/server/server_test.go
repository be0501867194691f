package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/demetrios-koziris/skijump-engine/internal/engine"
	"github.com/demetrios-koziris/skijump-engine/internal/hill"
)

func newTestServer() *Server {
	return New(zerolog.Nop(), engine.SimulationInput{})
}

func TestHandleResult_NoCompletedRun(t *testing.T) {
	srv := newTestServer()
	rr := httptest.NewRecorder()
	srv.Router().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/simulation/result", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestHandleTrajectory_NoCompletedRun(t *testing.T) {
	srv := newTestServer()
	rr := httptest.NewRecorder()
	srv.Router().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/simulation/trajectory", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestHandleOutline(t *testing.T) {
	srv := newTestServer()
	rr := httptest.NewRecorder()
	srv.Router().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/hill/outline", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	var points []hill.Point
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &points))
	require.NotEmpty(t, points)
	assert.Equal(t, 0.0, points[0].X)
	assert.InDelta(t, 136.63, points[0].Y, 1e-9)
}

func TestHandleStart_RejectsBadInput(t *testing.T) {
	srv := newTestServer()
	router := srv.Router()

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/simulation/start", strings.NewReader("{not json")))
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/simulation/start", strings.NewReader(`{"body_mass": -5}`)))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestHandleStart_RunsToCompletion(t *testing.T) {
	srv := newTestServer()
	router := srv.Router()

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/simulation/start", nil))
	require.Equal(t, http.StatusAccepted, rr.Code)

	// The reference scenario takes well under a second of wall time.
	assert.Eventually(t, func() bool {
		probe := httptest.NewRecorder()
		router.ServeHTTP(probe, httptest.NewRequest(http.MethodGet, "/simulation/result", nil))
		return probe.Code == http.StatusOK
	}, 10*time.Second, 50*time.Millisecond)

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/simulation/result", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	var result engine.Result
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
	assert.Greater(t, result.TakeoffSpeed, 20.0)
	assert.Less(t, result.TakeoffSpeed, 30.0)
	assert.Greater(t, result.FinalDistance, 90.0)
	assert.Less(t, result.FinalDistance, 170.0)

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/simulation/trajectory", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	var trajectory engine.TrajectoryLog
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &trajectory))
	assert.NotEmpty(t, trajectory.Samples)
	assert.Equal(t, result, trajectory.Result)
}
