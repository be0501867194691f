package export

import (
	"bytes"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/demetrios-koziris/skijump-engine/internal/engine"
)

func testTrajectory() *engine.TrajectoryLog {
	return &engine.TrajectoryLog{
		Params: engine.NewSkierParams(63, 1.8),
		Samples: []engine.Sample{
			{
				Phase: engine.PhaseOnTrack,
				State: engine.State{
					T: 0.001, X: 5.12, Y: 133.05, VX: 0.004, VY: -0.003,
					V: 0.005, AX: 4.3, AY: -3.0, A: 5.2, VelAngle: -0.611,
				},
				SlopeDist: 6.25,
				GroundY:   133.05,
			},
			{
				Phase: engine.PhaseAirborne,
				State: engine.State{
					T: 7.5, X: 90.1, Y: 88.2, VX: 25.9, VY: 2.4,
					V: 26.0, AX: -1.1, AY: -8.9, A: 8.97, VelAngle: 0.092,
				},
				GroundY: 84.5,
			},
		},
		Result: engine.Result{
			TotalMass:     70.22,
			Height:        1.8,
			StartPosition: 6.25,
			TakeoffSpeed:  25.9,
			FinalDistance: 131.2,
		},
	}
}

func TestWriteTSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTSV(&buf, testTrajectory()))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3) // header + two samples

	header := strings.Split(lines[0], "\t")
	assert.Equal(t, Columns, header)

	for _, line := range lines[1:] {
		fields := strings.Split(line, "\t")
		require.Len(t, fields, len(Columns))
		for _, f := range fields {
			_, err := strconv.ParseFloat(f, 64)
			assert.NoError(t, err)
		}
	}

	// Spot-check column alignment: hillAltitude is the third column.
	row2 := strings.Split(lines[2], "\t")
	got, err := strconv.ParseFloat(row2[2], 64)
	require.NoError(t, err)
	assert.InDelta(t, 84.5, got, 1e-9)
}

func TestWriteXLSX(t *testing.T) {
	trajectory := testTrajectory()
	path := filepath.Join(t.TempDir(), "out.xlsx")
	require.NoError(t, WriteXLSX(path, trajectory))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(trajectorySheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, Columns, rows[0])

	cell, err := f.GetCellValue(trajectorySheet, "A2")
	require.NoError(t, err)
	got, err := strconv.ParseFloat(cell, 64)
	require.NoError(t, err)
	assert.InDelta(t, 0.001, got, 1e-9)

	label, err := f.GetCellValue(resultsSheet, "A4")
	require.NoError(t, err)
	assert.Equal(t, "takeoffSpeed (m/s)", label)

	value, err := f.GetCellValue(resultsSheet, "B5")
	require.NoError(t, err)
	dist, err := strconv.ParseFloat(value, 64)
	require.NoError(t, err)
	assert.InDelta(t, trajectory.Result.FinalDistance, dist, 1e-9)
}
