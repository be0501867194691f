// Command server runs the simulation service: REST endpoints to trigger and
// inspect runs, a websocket stream for live trajectory display, and a
// Prometheus metrics endpoint.
package main

import (
	"flag"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/demetrios-koziris/skijump-engine/internal/config"
	"github.com/demetrios-koziris/skijump-engine/internal/logging"
	"github.com/demetrios-koziris/skijump-engine/internal/server"
)

func main() {
	configDir := flag.String("config", ".", "directory containing skijump.cfg.json")
	flag.Parse()

	if err := config.Load(*configDir); err != nil {
		os.Stderr.WriteString("config error: " + err.Error() + "\n")
		os.Exit(1)
	}
	log := logging.New(config.GetString("logLevel"))

	srv := server.New(log, config.SimulationInput())
	router := srv.Router()
	router.Handle("/metrics", promhttp.Handler())

	addr := config.GetString("server.listenAddr")
	log.Info().Str("addr", addr).Msg("simulation server listening")
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
