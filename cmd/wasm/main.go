//go:build js && wasm

// Command wasm exposes the simulation engine to the browser via
// WebAssembly. After loading, it registers two global JavaScript functions:
//
//	runSimulation(jsonString) -> jsonString
//	hillOutline(step) -> jsonString
//
// runSimulation takes a JSON-encoded SimulationInput and returns the
// JSON-encoded TrajectoryLog; hillOutline returns sampled hill surface
// points for drawing the profile under the trajectory.
package main

import (
	"encoding/json"
	"syscall/js"

	"github.com/demetrios-koziris/skijump-engine/internal/engine"
	"github.com/demetrios-koziris/skijump-engine/internal/hill"
)

func main() {
	js.Global().Set("runSimulation", js.FuncOf(runSimulation))
	js.Global().Set("hillOutline", js.FuncOf(hillOutline))
	select {} // keep the WASM module alive until the page is closed
}

func runSimulation(_ js.Value, args []js.Value) any {
	if len(args) < 1 {
		return map[string]any{"error": "no input provided"}
	}

	result, err := engine.RunJSON(args[0].String())
	if err != nil {
		return map[string]any{"error": err.Error()}
	}
	return result
}

func hillOutline(_ js.Value, args []js.Value) any {
	step := 0.5
	if len(args) > 0 {
		step = args[0].Float()
	}

	out, err := json.Marshal(hill.Outline(step))
	if err != nil {
		return map[string]any{"error": err.Error()}
	}
	return string(out)
}
