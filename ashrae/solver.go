// Package ashrae implements the moist-air relations of the ASHRAE
// Fundamentals Handbook (1997) for every target and pair of the seven
// psychrometric properties, at an explicit atmospheric pressure.
package ashrae

import "psicro/psychro"

// Solver provides the ASHRAE relations to the psychro dispatch table.
type Solver struct{}

func New() Solver { return Solver{} }

// PressureAt returns the standard-atmosphere pressure at altitude (m), kPa.
func (Solver) PressureAt(altitude float64) float64 {
	return PressureAt(altitude)
}

func rel(target, k1, k2 psychro.Property, f func(a air, v1, v2 float64) float64) psychro.Relation {
	return psychro.Relation{
		Target: target,
		Known1: k1,
		Known2: k2,
		Eval: func(patm, v1, v2 float64) float64 {
			return f(air{p: patm}, v1, v2)
		},
	}
}

// Relations returns all 105 relations, known pairs in canonical order.
func (Solver) Relations() []psychro.Relation {
	const (
		t   = psychro.DryBulb
		ur  = psychro.RelativeHumidity
		x   = psychro.HumidityRatio
		h   = psychro.Enthalpy
		vau = psychro.SpecificVolume
		tbu = psychro.WetBulb
		tr  = psychro.DewPoint
	)

	return []psychro.Relation{
		rel(t, ur, x, air.tURX),
		rel(t, ur, h, air.tURH),
		rel(t, ur, vau, air.tURVau),
		rel(t, ur, tbu, air.tURTbu),
		rel(t, ur, tr, air.tURTr),
		rel(t, x, h, air.tXH),
		rel(t, x, vau, air.tXVau),
		rel(t, x, tbu, air.tXTbu),
		rel(t, x, tr, air.tXTr),
		rel(t, h, vau, air.tHVau),
		rel(t, h, tbu, air.tHTbu),
		rel(t, h, tr, air.tHTr),
		rel(t, vau, tbu, air.tVauTbu),
		rel(t, vau, tr, air.tVauTr),
		rel(t, tbu, tr, air.tTbuTr),

		rel(ur, t, x, air.urTX),
		rel(ur, t, h, air.urTH),
		rel(ur, t, vau, air.urTVau),
		rel(ur, t, tbu, air.urTTbu),
		rel(ur, t, tr, air.urTTr),
		rel(ur, x, h, air.urXH),
		rel(ur, x, vau, air.urXVau),
		rel(ur, x, tbu, air.urXTbu),
		rel(ur, x, tr, air.urXTr),
		rel(ur, h, vau, air.urHVau),
		rel(ur, h, tbu, air.urHTbu),
		rel(ur, h, tr, air.urHTr),
		rel(ur, vau, tbu, air.urVauTbu),
		rel(ur, vau, tr, air.urVauTr),
		rel(ur, tbu, tr, air.urTbuTr),

		rel(x, t, ur, air.xTUR),
		rel(x, t, h, air.xTH),
		rel(x, t, vau, air.xTVau),
		rel(x, t, tbu, air.xTTbu),
		rel(x, t, tr, air.xTTr),
		rel(x, ur, h, air.xURH),
		rel(x, ur, vau, air.xURVau),
		rel(x, ur, tbu, air.xURTbu),
		rel(x, ur, tr, air.xURTr),
		rel(x, h, vau, air.xHVau),
		rel(x, h, tbu, air.xHTbu),
		rel(x, h, tr, air.xHTr),
		rel(x, vau, tbu, air.xVauTbu),
		rel(x, vau, tr, air.xVauTr),
		rel(x, tbu, tr, air.xTbuTr),

		rel(h, t, ur, air.hTUR),
		rel(h, t, x, air.hTX),
		rel(h, t, vau, air.hTVau),
		rel(h, t, tbu, air.hTTbu),
		rel(h, t, tr, air.hTTr),
		rel(h, ur, x, air.hURX),
		rel(h, ur, vau, air.hURVau),
		rel(h, ur, tbu, air.hURTbu),
		rel(h, ur, tr, air.hURTr),
		rel(h, x, vau, air.hXVau),
		rel(h, x, tbu, air.hXTbu),
		rel(h, x, tr, air.hXTr),
		rel(h, vau, tbu, air.hVauTbu),
		rel(h, vau, tr, air.hVauTr),
		rel(h, tbu, tr, air.hTbuTr),

		rel(vau, t, ur, air.vauTUR),
		rel(vau, t, x, air.vauTX),
		rel(vau, t, h, air.vauTH),
		rel(vau, t, tbu, air.vauTTbu),
		rel(vau, t, tr, air.vauTTr),
		rel(vau, ur, x, air.vauURX),
		rel(vau, ur, h, air.vauURH),
		rel(vau, ur, tbu, air.vauURTbu),
		rel(vau, ur, tr, air.vauURTr),
		rel(vau, x, h, air.vauXH),
		rel(vau, x, tbu, air.vauXTbu),
		rel(vau, x, tr, air.vauXTr),
		rel(vau, h, tbu, air.vauHTbu),
		rel(vau, h, tr, air.vauHTr),
		rel(vau, tbu, tr, air.vauTbuTr),

		rel(tbu, t, ur, air.tbuTUR),
		rel(tbu, t, x, air.tbuTX),
		rel(tbu, t, h, air.tbuTH),
		rel(tbu, t, vau, air.tbuTVau),
		rel(tbu, t, tr, air.tbuTTr),
		rel(tbu, ur, x, air.tbuURX),
		rel(tbu, ur, h, air.tbuURH),
		rel(tbu, ur, vau, air.tbuURVau),
		rel(tbu, ur, tr, air.tbuURTr),
		rel(tbu, x, h, air.tbuXH),
		rel(tbu, x, vau, air.tbuXVau),
		rel(tbu, x, tr, air.tbuXTr),
		rel(tbu, h, vau, air.tbuHVau),
		rel(tbu, h, tr, air.tbuHTr),
		rel(tbu, vau, tr, air.tbuVauTr),

		rel(tr, t, ur, air.trTUR),
		rel(tr, t, x, air.trTX),
		rel(tr, t, h, air.trTH),
		rel(tr, t, vau, air.trTVau),
		rel(tr, t, tbu, air.trTTbu),
		rel(tr, ur, x, air.trURX),
		rel(tr, ur, h, air.trURH),
		rel(tr, ur, vau, air.trURVau),
		rel(tr, ur, tbu, air.trURTbu),
		rel(tr, x, h, air.trXH),
		rel(tr, x, vau, air.trXVau),
		rel(tr, x, tbu, air.trXTbu),
		rel(tr, h, vau, air.trHVau),
		rel(tr, h, tbu, air.trHTbu),
		rel(tr, vau, tbu, air.trVauTbu),
	}
}
