// Package export writes a completed trajectory to tabular files: an XLSX
// workbook with a per-step data sheet and a summary sheet, or a plain
// tab-separated table matching the reference program's output layout.
package export

import (
	"fmt"
	"io"
	"strconv"

	"github.com/demetrios-koziris/skijump-engine/internal/engine"
)

// Columns is the per-step output header, one column per recorded quantity.
// Order matches the reference results table.
var Columns = []string{
	"t", "slopeDist", "hillAltitude", "posX", "posY",
	"velocity", "velX", "velY", "acceleration", "accX", "accY", "velAngle",
}

// row flattens a sample into the column order above.
func row(s engine.Sample) []float64 {
	return []float64{
		s.T, s.SlopeDist, s.GroundY, s.X, s.Y,
		s.V, s.VX, s.VY, s.A, s.AX, s.AY, s.VelAngle,
	}
}

// WriteTSV writes the trajectory as a tab-separated table with a header row
// and one row per sample.
func WriteTSV(w io.Writer, trajectory *engine.TrajectoryLog) error {
	for i, col := range Columns {
		if i > 0 {
			if _, err := io.WriteString(w, "\t"); err != nil {
				return fmt.Errorf("writing header: %w", err)
			}
		}
		if _, err := io.WriteString(w, col); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, s := range trajectory.Samples {
		for i, v := range row(s) {
			if i > 0 {
				if _, err := io.WriteString(w, "\t"); err != nil {
					return fmt.Errorf("writing row: %w", err)
				}
			}
			if _, err := io.WriteString(w, strconv.FormatFloat(v, 'f', 6, 64)); err != nil {
				return fmt.Errorf("writing row: %w", err)
			}
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}
	return nil
}
