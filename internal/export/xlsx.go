package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/demetrios-koziris/skijump-engine/internal/engine"
)

const (
	trajectorySheet = "Trajectory"
	resultsSheet    = "Results"
)

// WriteXLSX writes the trajectory to an XLSX workbook at path: a Trajectory
// sheet with the per-step table and a Results sheet with the run summary.
func WriteXLSX(path string, trajectory *engine.TrajectoryLog) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", trajectorySheet); err != nil {
		return fmt.Errorf("renaming sheet: %w", err)
	}

	header := make([]any, len(Columns))
	for i, col := range Columns {
		header[i] = col
	}
	if err := f.SetSheetRow(trajectorySheet, "A1", &header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, s := range trajectory.Samples {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("row %d: %w", i, err)
		}
		values := row(s)
		cells := make([]any, len(values))
		for j, v := range values {
			cells[j] = v
		}
		if err := f.SetSheetRow(trajectorySheet, cell, &cells); err != nil {
			return fmt.Errorf("writing row %d: %w", i, err)
		}
	}

	if err := writeResultsSheet(f, trajectory.Result); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving workbook: %w", err)
	}
	return nil
}

// writeResultsSheet adds the summary sheet: one labelled row per result
// quantity.
func writeResultsSheet(f *excelize.File, result engine.Result) error {
	if _, err := f.NewSheet(resultsSheet); err != nil {
		return fmt.Errorf("creating results sheet: %w", err)
	}

	rows := [][]any{
		{"totalMass (kg)", result.TotalMass},
		{"height (m)", result.Height},
		{"startPosition (m)", result.StartPosition},
		{"takeoffSpeed (m/s)", result.TakeoffSpeed},
		{"finalDistance (m)", result.FinalDistance},
	}
	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("results row %d: %w", i, err)
		}
		if err := f.SetSheetRow(resultsSheet, cell, &r); err != nil {
			return fmt.Errorf("writing results row %d: %w", i, err)
		}
	}
	return nil
}
