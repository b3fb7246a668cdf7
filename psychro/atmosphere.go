package psychro

import (
	"errors"
	"fmt"
	"math"
	"sync/atomic"
)

// StandardPressure is the sea-level atmospheric pressure, kPa.
const StandardPressure = 101.325

// valid altitude range, m
const (
	AltitudeMin = -430.0
	AltitudeMax = 11000.0
)

var ErrAltitudeOutOfRange = errors.New("altitude out of range")

// PressureModel returns the atmospheric pressure in kPa at an altitude in metres.
type PressureModel func(altitude float64) float64

// Atmosphere holds the shared atmospheric pressure read by every evaluation.
//
// Writes replace the value atomically. An evaluation that is already running
// when the altitude changes may observe either pressure; altitude is a coarse
// configuration setting, not a per-calculation input.
type Atmosphere struct {
	model PressureModel
	bits  atomic.Uint64
}

func NewAtmosphere(model PressureModel) *Atmosphere {
	a := &Atmosphere{model: model}
	a.bits.Store(math.Float64bits(StandardPressure))
	return a
}

// NewFixedAtmosphere returns an Atmosphere pinned at p kPa. SetAltitude on it
// still validates its input but never changes the pressure.
func NewFixedAtmosphere(p float64) *Atmosphere {
	a := &Atmosphere{model: nil}
	a.bits.Store(math.Float64bits(p))
	return a
}

// Pressure returns the current pressure, kPa.
func (a *Atmosphere) Pressure() float64 {
	return math.Float64frombits(a.bits.Load())
}

/*
SetAltitude validates the altitude and recomputes the shared pressure.

	Args:
		altitude: metres for SI, feet for IP
		unit: unit system of altitude

	Returns:
		the new pressure, kPa. On ErrAltitudeOutOfRange the stored pressure
		is left as it was.
*/
func (a *Atmosphere) SetAltitude(altitude float64, unit UnitSystem) (float64, error) {
	meters := altitude
	if unit == IP {
		meters = altitude * FeetToMeters
	}
	if math.IsNaN(meters) || meters < AltitudeMin || meters > AltitudeMax {
		return a.Pressure(), fmt.Errorf("%w: %g %s", ErrAltitudeOutOfRange, altitude, altitudeUnit(unit))
	}
	if a.model == nil {
		return a.Pressure(), nil
	}

	p := a.model(meters)
	a.bits.Store(math.Float64bits(p))
	return p, nil
}

func altitudeUnit(u UnitSystem) string {
	if u == IP {
		return "ft"
	}
	return "m"
}

// AltitudeStatus renders the human-readable result of a SetAltitude call.
func AltitudeStatus(altitude float64, unit UnitSystem, pressure float64, err error) string {
	if err != nil {
		return fmt.Sprintf("Error: Altitude out of range (%g %s)", altitude, altitudeUnit(unit))
	}
	if unit == IP {
		return fmt.Sprintf("Altitude OK: %g ft (P: %.3f psi / %.3f kPa)", altitude, pressure*PsiPerKPa, pressure)
	}
	return fmt.Sprintf("Altitude OK: %g m (P: %.2f kPa)", altitude, pressure)
}
