package ashrae_test

import (
	"math"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"psicro/ashrae"
	"psicro/psychro"
)

var tolerance = [psychro.NumProperties]float64{
	psychro.DryBulb:          0.1,
	psychro.RelativeHumidity: 0.5,
	psychro.HumidityRatio:    1e-4,
	psychro.Enthalpy:         0.2,
	psychro.SpecificVolume:   1e-3,
	psychro.WetBulb:          0.1,
	psychro.DewPoint:         0.1,
}

// state returns every property of air at t and ur, computed along the
// direct relations only.
func state(t *testing.T, table *psychro.Table, patm, temp, ur float64) [psychro.NumProperties]float64 {
	t.Helper()
	var s [psychro.NumProperties]float64
	s[psychro.DryBulb] = temp
	s[psychro.RelativeHumidity] = ur
	for _, p := range []psychro.Property{psychro.HumidityRatio, psychro.Enthalpy, psychro.SpecificVolume, psychro.WetBulb, psychro.DewPoint} {
		v, err := table.Evaluate(patm, p, psychro.DryBulb, temp, psychro.RelativeHumidity, ur)
		require.NoError(t, err)
		s[p] = v
	}
	return s
}

func TestRelationsFormCompleteTable(t *testing.T) {
	table, err := psychro.NewTable(ashrae.New().Relations())
	require.NoError(t, err)
	assert.Equal(t, psychro.TableSize, table.Len())
}

func TestReferenceState(t *testing.T) {
	table, err := psychro.NewTable(ashrae.New().Relations())
	require.NoError(t, err)

	s := state(t, table, psychro.StandardPressure, 26, 50)
	assert.InDelta(t, 0.010496, s[psychro.HumidityRatio], 2e-5)
	assert.InDelta(t, 52.9, s[psychro.Enthalpy], 0.1)
	assert.InDelta(t, 0.862, s[psychro.SpecificVolume], 1e-3)
	assert.InDelta(t, 18.7, s[psychro.WetBulb], 0.2)
	assert.InDelta(t, 14.8, s[psychro.DewPoint], 0.2)
}

// Every relation reproduces the state it is fed from, except that humidity
// ratio and dew point together do not fix the state.
func TestRelationsAreConsistent(t *testing.T) {
	table, err := psychro.NewTable(ashrae.New().Relations())
	require.NoError(t, err)

	testCases := []struct {
		name string
		patm float64
		t    float64
		ur   float64
	}{
		{"sea level 26C 50%", psychro.StandardPressure, 26, 50},
		{"1500 m 10C 80%", ashrae.PressureAt(1500), 10, 80},
		{"sea level 35C 30%", psychro.StandardPressure, 35, 30},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := state(t, table, tc.patm, tc.t, tc.ur)

			for _, target := range psychro.Properties() {
				for a := psychro.DryBulb; a <= psychro.DewPoint; a++ {
					for b := a + 1; b <= psychro.DewPoint; b++ {
						if a == target || b == target {
							continue
						}
						got, err := table.Evaluate(tc.patm, target, a, s[a], b, s[b])
						require.NoError(t, err)

						if a == psychro.HumidityRatio && b == psychro.DewPoint {
							assert.True(t, math.IsNaN(got), "%s(%s,%s) = %g", target, a, b, got)
							continue
						}
						assert.InDelta(t, s[target], got, tolerance[target], "%s(%s,%s)", target, a, b)
					}
				}
			}
		})
	}
}

func TestEvaluatorWithASHRAE(t *testing.T) {
	logger, _ := test.NewNullLogger()
	e, err := psychro.New(ashrae.New(), psychro.WithLogger(logger))
	require.NoError(t, err)

	p, err := e.SetAltitude(0, psychro.SI)
	require.NoError(t, err)
	assert.InDelta(t, 101.325, p, 1e-9)

	_, err = e.SetAltitude(-500, psychro.SI)
	assert.ErrorIs(t, err, psychro.ErrAltitudeOutOfRange)
	_, err = e.SetAltitude(12000, psychro.SI)
	assert.ErrorIs(t, err, psychro.ErrAltitudeOutOfRange)

	x, err := e.EvaluateOne("t", 26, "ur", 50, "x", psychro.SI)
	require.NoError(t, err)
	assert.InDelta(t, 0.010496, x, 2e-5)

	w, err := e.EvaluateOne("tdb", 78.8, "rh", 50, "w", psychro.IP)
	require.NoError(t, err)
	assert.InDelta(t, 0.010496, w, 2e-5)

	h, err := e.EvaluateOne("t", 26, "ur", 50, "h", psychro.SI)
	require.NoError(t, err)
	want, err := e.Table().Evaluate(e.Pressure(), psychro.Enthalpy, psychro.DryBulb, 26, psychro.RelativeHumidity, 50)
	require.NoError(t, err)
	assert.Equal(t, want, h)

	// IP enthalpy is referenced to 0 BTU/lb at 0 F
	hIP, err := e.EvaluateOne("t", 78.8, "ur", 50, "h", psychro.IP)
	require.NoError(t, err)
	assert.InDelta(t, (h+psychro.EnthalpyOffset)/psychro.KJPerKgPerBtuPerLb, hIP, 1e-6)
}

// Lower pressure raises the humidity ratio for the same t and ur.
func TestAltitudeChangesResults(t *testing.T) {
	logger, _ := test.NewNullLogger()
	e, err := psychro.New(ashrae.New(), psychro.WithLogger(logger))
	require.NoError(t, err)

	sea, err := e.EvaluateOne("t", 26, "ur", 50, "x", psychro.SI)
	require.NoError(t, err)

	_, err = e.SetAltitude(2000, psychro.SI)
	require.NoError(t, err)
	high, err := e.EvaluateOne("t", 26, "ur", 50, "x", psychro.SI)
	require.NoError(t, err)

	assert.Greater(t, high, sea)
	assert.InDelta(t, ashrae.XSat(26, ashrae.PressureAt(2000))/2, high, 5e-4)
}

func TestHumidityRatioAndDewPointLeaveStateOpen(t *testing.T) {
	logger, _ := test.NewNullLogger()
	e, err := psychro.New(ashrae.New(), psychro.WithLogger(logger))
	require.NoError(t, err)

	g, err := e.Evaluate("x", psychro.Scalar(psychro.Number(0.01)), "tr", psychro.Scalar(psychro.Number(14)), "t,h,ur", psychro.SI)
	require.NoError(t, err)
	for c := 0; c < g.Cols(); c++ {
		v, err := g.At(0, c)
		require.NoError(t, err)
		assert.True(t, math.IsNaN(v))
	}
}
