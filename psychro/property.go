package psychro

import (
	"errors"
	"fmt"
	"strings"
)

// Property is one of the seven moist-air state properties.
// The numeric value is the fixed index used for canonical ordering.
type Property int

const (
	DryBulb          Property = iota // t, degree C
	RelativeHumidity                 // ur, %
	HumidityRatio                    // x, kg/kgDA
	Enthalpy                         // h, kJ/kgDA
	SpecificVolume                   // vau, m3/kgDA
	WetBulb                          // tbu, degree C
	DewPoint                         // tr, degree C

	InvalidProperty Property = -1
)

// NumProperties is the size of the property set.
const NumProperties = 7

var (
	ErrInvalidPropertyName     = errors.New("invalid property name")
	ErrUnsupportedPropertyPair = errors.New("unsupported property pair")
)

var symbols = [NumProperties]string{"t", "ur", "x", "h", "vau", "tbu", "tr"}

// abbreviated form first, English/ASHRAE form second
var synonyms = map[string]Property{
	"t":   DryBulb,
	"tdb": DryBulb,
	"ur":  RelativeHumidity,
	"rh":  RelativeHumidity,
	"x":   HumidityRatio,
	"w":   HumidityRatio,
	"h":   Enthalpy,
	"vau": SpecificVolume,
	"v":   SpecificVolume,
	"tbu": WetBulb,
	"twb": WetBulb,
	"tr":  DewPoint,
	"tdp": DewPoint,
}

// Properties returns the seven properties in index order.
func Properties() []Property {
	ps := make([]Property, NumProperties)
	for i := range ps {
		ps[i] = Property(i)
	}
	return ps
}

func (p Property) Valid() bool {
	return p >= DryBulb && p <= DewPoint
}

func (p Property) String() string {
	if !p.Valid() {
		return "invalid"
	}
	return symbols[p]
}

/*
Resolve maps a user-facing property name onto its Property.

	Args:
		name: symbol or synonym, case-insensitive, surrounding blanks ignored

	Returns:
		the Property, or InvalidProperty together with an error wrapping
		ErrInvalidPropertyName
*/
func Resolve(name string) (Property, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if p, ok := synonyms[key]; ok {
		return p, nil
	}
	return InvalidProperty, fmt.Errorf("%w: %q", ErrInvalidPropertyName, name)
}
