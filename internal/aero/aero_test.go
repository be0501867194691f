package aero

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// testModel uses the reference athlete's frontal areas (height 1.8 m).
var testModel = Model{
	AirDensity:      1.13,
	FrontalAreaSkis: 2 * (1.8 * 1.45 * 0.1),
	FrontalAreaBody: 1.8 * 0.3,
}

func TestAttackAngles_Windows(t *testing.T) {
	tests := []struct {
		name     string
		velAngle float64
		t        float64
		wantSki  float64
		wantBody float64
	}{
		{"first window", 0, 0.01, 0.209, 1.187 + 0.209},
		{"first window upper bound inclusive", 0, 0.04, 0.209, 1.187 + 0.209},
		{"second window", 0, 0.05, 0.087, math.Abs(-1.047 + 0.087)},
		{"third window", -0.1, 0.3, math.Abs(-0.1 - 0.209), math.Abs(-0.1 - 0.349 - 0.209)},
		{"last tabulated window", -0.3, 3.0, math.Abs(-0.3 - 0.017), math.Abs(-0.3 - 0.349 - 0.017)},
		{"settled posture beyond table", -0.4, 5.0, math.Abs(-0.4 - 0.035), math.Abs(-0.4 - 0.349 - 0.035)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ski, body := AttackAngles(tc.velAngle, tc.t)
			assert.InDelta(t, tc.wantSki, ski, 1e-12)
			assert.InDelta(t, tc.wantBody, body, 1e-12)
		})
	}
}

func TestForces_NonNegative(t *testing.T) {
	for v := 0.0; v <= 40; v += 10 {
		for angle := -1.5; angle <= 1.5; angle += 0.25 {
			for ft := 0.0; ft <= 4.5; ft += 0.3 {
				assert.GreaterOrEqual(t, testModel.DragForce(v, angle, ft), 0.0)
				assert.GreaterOrEqual(t, testModel.LiftForce(v, angle, ft), 0.0)
			}
		}
	}
}

func TestForces_ZeroAtRest(t *testing.T) {
	assert.Zero(t, testModel.DragForce(0, -0.2, 1.0))
	assert.Zero(t, testModel.LiftForce(0, -0.2, 1.0))
}

func TestForces_ScaleWithVelocitySquared(t *testing.T) {
	d1 := testModel.DragForce(10, -0.2, 1.0)
	d2 := testModel.DragForce(20, -0.2, 1.0)
	assert.InDelta(t, 4.0, d2/d1, 1e-9)

	l1 := testModel.LiftForce(10, -0.2, 1.0)
	l2 := testModel.LiftForce(20, -0.2, 1.0)
	assert.InDelta(t, 4.0, l2/l1, 1e-9)
}

func TestForces_Pure(t *testing.T) {
	// Same arguments, same result, regardless of call order.
	a := testModel.LiftForce(25, -0.15, 0.8)
	_ = testModel.DragForce(12, 0.4, 3.0)
	b := testModel.LiftForce(25, -0.15, 0.8)
	assert.Equal(t, a, b)
}

func TestDragForce_KnownValue(t *testing.T) {
	// Hand-computed from the published fit at ski attack 0.3 rad with the
	// body at the same angle offsets: checks the degree conversion uses the
	// fit's rounded pi.
	velAngle := 0.091 // third window: ski = |0.091 - 0.209| = 0.118
	ski, body := AttackAngles(velAngle, 0.3)
	dragCoeff := 0.0103 * ski * 180 / 3.14
	area := testModel.FrontalAreaSkis*math.Sin(ski) + testModel.FrontalAreaBody*math.Sin(body)
	want := math.Abs(0.5 * testModel.AirDensity * area * dragCoeff * 25 * 25)

	assert.InDelta(t, want, testModel.DragForce(25, velAngle, 0.3), 1e-12)
}
