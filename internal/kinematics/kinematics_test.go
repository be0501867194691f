package kinematics

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMixedOrderEuler_Step(t *testing.T) {
	newV, ds := MixedOrderEuler{}.Step(10, 2, 0.1)
	assert.InDelta(t, 10.2, newV, 1e-12)
	// Displacement uses the updated velocity plus the second-order term.
	assert.InDelta(t, 10.2*0.1+0.5*2*0.1*0.1, ds, 1e-12)
}

func TestFirstOrderEuler_Step(t *testing.T) {
	newV, ds := FirstOrderEuler{}.Step(10, 2, 0.1)
	assert.InDelta(t, 10.2, newV, 1e-12)
	assert.InDelta(t, 10.2*0.1, ds, 1e-12)
}

func TestSchemeByName(t *testing.T) {
	s, ok := SchemeByName("")
	require.True(t, ok)
	assert.IsType(t, MixedOrderEuler{}, s)

	s, ok = SchemeByName(MixedOrderSchemeName)
	require.True(t, ok)
	assert.IsType(t, MixedOrderEuler{}, s)

	s, ok = SchemeByName(FirstOrderSchemeName)
	require.True(t, ok)
	assert.IsType(t, FirstOrderEuler{}, s)

	_, ok = SchemeByName("rk4")
	assert.False(t, ok)
}

func TestQuadrantNaive(t *testing.T) {
	angle, err := QuadrantNaive(1, 1)
	require.NoError(t, err)
	assert.InDelta(t, math.Pi/4, angle, 1e-12)

	// Quadrant-naive: a backwards-moving vector lands in the fourth
	// quadrant instead of the second.
	angle, err = QuadrantNaive(-1, 1)
	require.NoError(t, err)
	assert.InDelta(t, -math.Pi/4, angle, 1e-12)

	_, err = QuadrantNaive(0, 5)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrVerticalVelocity))
}

func TestFourQuadrant(t *testing.T) {
	angle, err := FourQuadrant(-1, 1)
	require.NoError(t, err)
	assert.InDelta(t, 3*math.Pi/4, angle, 1e-12)

	// Purely vertical velocity is fine for atan2.
	angle, err = FourQuadrant(0, 5)
	require.NoError(t, err)
	assert.InDelta(t, math.Pi/2, angle, 1e-12)

	_, err = FourQuadrant(0, 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrVerticalVelocity))
}

func TestDirectionByName(t *testing.T) {
	d, ok := DirectionByName("")
	require.True(t, ok)
	require.NotNil(t, d)

	d, ok = DirectionByName(FourQuadrantDirectionName)
	require.True(t, ok)
	angle, err := d(-1, 0)
	require.NoError(t, err)
	assert.InDelta(t, math.Pi, angle, 1e-12)

	_, ok = DirectionByName("compass")
	assert.False(t, ok)
}
