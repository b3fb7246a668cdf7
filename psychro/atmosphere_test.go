package psychro

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAtmosphereDefaultsToSeaLevel(t *testing.T) {
	a := NewAtmosphere(fakeSolver{}.PressureAt)
	assert.Equal(t, StandardPressure, a.Pressure())
}

func TestSetAltitude(t *testing.T) {
	a := NewAtmosphere(fakeSolver{}.PressureAt)

	p, err := a.SetAltitude(1000, SI)
	require.NoError(t, err)
	assert.InDelta(t, 89.87, p, 0.01)
	assert.Equal(t, p, a.Pressure())

	p, err = a.SetAltitude(0, SI)
	require.NoError(t, err)
	assert.InDelta(t, 101.325, p, 1e-9)
}

func TestSetAltitudeFeet(t *testing.T) {
	a := NewAtmosphere(fakeSolver{}.PressureAt)

	p, err := a.SetAltitude(1000/FeetToMeters, IP)
	require.NoError(t, err)
	assert.InDelta(t, fakeSolver{}.PressureAt(1000), p, 1e-9)

	// 36089 ft is just under 11000 m, 36100 ft just over
	_, err = a.SetAltitude(36089, IP)
	assert.NoError(t, err)
	_, err = a.SetAltitude(36100, IP)
	assert.ErrorIs(t, err, ErrAltitudeOutOfRange)
}

func TestSetAltitudeOutOfRangeKeepsPressure(t *testing.T) {
	a := NewAtmosphere(fakeSolver{}.PressureAt)
	before, err := a.SetAltitude(500, SI)
	require.NoError(t, err)

	for _, alt := range []float64{-500, 12000, -430.001, 11000.001, math.NaN()} {
		_, err := a.SetAltitude(alt, SI)
		assert.ErrorIs(t, err, ErrAltitudeOutOfRange, "%g", alt)
		assert.Equal(t, before, a.Pressure(), "%g", alt)
	}

	for _, alt := range []float64{AltitudeMin, AltitudeMax} {
		_, err := a.SetAltitude(alt, SI)
		assert.NoError(t, err, "%g", alt)
	}
}

func TestFixedAtmosphere(t *testing.T) {
	a := NewFixedAtmosphere(90)
	p, err := a.SetAltitude(0, SI)
	require.NoError(t, err)
	assert.Equal(t, 90.0, p)

	_, err = a.SetAltitude(20000, SI)
	assert.ErrorIs(t, err, ErrAltitudeOutOfRange)
	assert.Equal(t, 90.0, a.Pressure())
}

func TestAltitudeStatus(t *testing.T) {
	assert.Equal(t, "Altitude OK: 1000 m (P: 89.87 kPa)", AltitudeStatus(1000, SI, 89.8712, nil))
	assert.Equal(t, "Altitude OK: 1000 ft (P: 14.173 psi / 97.717 kPa)", AltitudeStatus(1000, IP, 97.7173, nil))
	assert.Equal(t, "Error: Altitude out of range (12000 m)", AltitudeStatus(12000, SI, 0, ErrAltitudeOutOfRange))
	assert.Equal(t, "Error: Altitude out of range (40000 ft)", AltitudeStatus(40000, IP, 0, ErrAltitudeOutOfRange))
}

// Readers only ever see one of the values that were written.
func TestAtmosphereConcurrentAccess(t *testing.T) {
	a := NewAtmosphere(fakeSolver{}.PressureAt)
	allowed := map[float64]bool{StandardPressure: true}
	alts := []float64{0, 250, 1000, 2500}
	for _, alt := range alts {
		allowed[fakeSolver{}.PressureAt(alt)] = true
	}

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				_, _ = a.SetAltitude(alts[j%len(alts)], SI)
			}
		}()
	}

	seen := make(chan float64, 1600)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				seen <- a.Pressure()
			}
		}()
	}
	wg.Wait()
	close(seen)

	for p := range seen {
		assert.True(t, allowed[p], "unexpected pressure %g", p)
	}
}
