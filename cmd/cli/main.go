// Command cli runs one ski jump simulation and writes the results: an XLSX
// workbook (and optionally a TSV table) with the per-step trajectory, plus a
// summary on the console. Input comes from the config file, overridable by a
// SimulationInput JSON file.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/demetrios-koziris/skijump-engine/internal/config"
	"github.com/demetrios-koziris/skijump-engine/internal/engine"
	"github.com/demetrios-koziris/skijump-engine/internal/export"
	"github.com/demetrios-koziris/skijump-engine/internal/logging"
)

func main() {
	var (
		configDir = flag.String("config", ".", "directory containing skijump.cfg.json")
		inputPath = flag.String("input", "", "SimulationInput JSON file overriding the config")
		tsvPath   = flag.String("tsv", "", "also write a tab-separated table to this path")
		asJSON    = flag.Bool("json", false, "write the full trajectory log JSON to stdout instead of a summary")
	)
	flag.Parse()

	if err := config.Load(*configDir); err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}
	log := logging.New(config.GetString("logLevel"))

	input := config.SimulationInput()
	if *inputPath != "" {
		data, err := os.ReadFile(*inputPath)
		if err != nil {
			log.Fatal().Err(err).Msg("reading input file")
		}
		if err := json.Unmarshal(data, &input); err != nil {
			log.Fatal().Err(err).Msg("parsing input file")
		}
	}

	integrator, err := engine.New(input)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid simulation input")
	}

	trajectory, err := integrator.Run()
	if err != nil {
		log.Fatal().Err(err).Msg("simulation failed")
	}

	if *asJSON {
		if err := json.NewEncoder(os.Stdout).Encode(trajectory); err != nil {
			log.Fatal().Err(err).Msg("writing trajectory JSON")
		}
		return
	}

	xlsxPath := filepath.Join(
		config.GetString("export.outputDir"),
		config.GetString("export.basename")+".xlsx",
	)
	if err := export.WriteXLSX(xlsxPath, trajectory); err != nil {
		log.Fatal().Err(err).Msg("writing workbook")
	}
	log.Info().Str("path", xlsxPath).Int("samples", len(trajectory.Samples)).Msg("trajectory exported")

	if *tsvPath != "" {
		f, err := os.Create(*tsvPath)
		if err != nil {
			log.Fatal().Err(err).Msg("creating TSV file")
		}
		if err := export.WriteTSV(f, trajectory); err != nil {
			f.Close()
			log.Fatal().Err(err).Msg("writing TSV")
		}
		if err := f.Close(); err != nil {
			log.Fatal().Err(err).Msg("closing TSV file")
		}
		log.Info().Str("path", *tsvPath).Msg("TSV exported")
	}

	r := trajectory.Result
	fmt.Printf("total mass:     %.2f kg\n", r.TotalMass)
	fmt.Printf("height:         %.2f m\n", r.Height)
	fmt.Printf("start position: %.2f m\n", r.StartPosition)
	fmt.Printf("takeoff speed:  %.2f m/s\n", r.TakeoffSpeed)
	fmt.Printf("jump distance:  %.2f m\n", r.FinalDistance)
}
