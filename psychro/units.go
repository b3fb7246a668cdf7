package psychro

import (
	"math"
	"strings"
)

// UnitSystem selects metric or imperial values on the caller side.
// The core always computes in SI.
type UnitSystem int

const (
	SI UnitSystem = iota
	IP
)

func (u UnitSystem) String() string {
	if u == IP {
		return "IP"
	}
	return "SI"
}

// ParseUnitSystem returns IP for "IP" (any case) and SI for anything else.
func ParseUnitSystem(s string) UnitSystem {
	if strings.ToUpper(strings.TrimSpace(s)) == "IP" {
		return IP
	}
	return SI
}

const (
	// IP enthalpy is zero for dry air at 0 degree F, SI at 0 degree C.
	// At 0 degree F dry air has h = -17.88444668 kJ/kg on the SI scale.
	EnthalpyOffset = 17.88444668

	// kJ/kg per Btu/lb
	KJPerKgPerBtuPerLb = 2.326

	// m3/kg per ft3/lb
	M3PerKgPerFt3PerLb = 0.062428

	FeetToMeters = 0.3048

	// psi per kPa, display only
	PsiPerKPa = 0.145038
)

/*
Convert moves a value of property p between unit systems.

	Args:
		v: value to convert
		p: property the value belongs to
		toSI: true for IP -> SI, false for SI -> IP

	Returns:
		the converted value; NaN is returned untouched

	Notes:
		ur is % in both systems and x is numerically identical in kg/kg and lb/lb.
		Enthalpy carries the additive offset between the two reference points,
		applied after scaling on the way in and before scaling on the way out.
*/
func Convert(v float64, p Property, toSI bool) float64 {
	if math.IsNaN(v) {
		return v
	}

	switch p {
	case DryBulb, WetBulb, DewPoint:
		if toSI {
			return (v - 32.0) / 1.8
		}
		return v*1.8 + 32.0
	case Enthalpy:
		if toSI {
			return v*KJPerKgPerBtuPerLb - EnthalpyOffset
		}
		return (v + EnthalpyOffset) / KJPerKgPerBtuPerLb
	case SpecificVolume:
		if toSI {
			return v * M3PerKgPerFt3PerLb
		}
		return v / M3PerKgPerFt3PerLb
	default:
		return v
	}
}

func ToSI(v float64, p Property) float64 { return Convert(v, p, true) }

func ToIP(v float64, p Property) float64 { return Convert(v, p, false) }

// UnitLabel returns the display unit of p in system u.
func UnitLabel(p Property, u UnitSystem) string {
	si := [NumProperties]string{"°C", "%", "kg/kg", "kJ/kg", "m³/kg", "°C", "°C"}
	ip := [NumProperties]string{"°F", "%", "lb/lb", "BTU/lb", "ft³/lb", "°F", "°F"}
	if !p.Valid() {
		return ""
	}
	if u == IP {
		return ip[p]
	}
	return si[p]
}
