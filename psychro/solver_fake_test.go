package psychro

import "math"

type triple struct {
	target, k1, k2 Property
}

// fakeSolver generates a complete relation set whose results encode the
// target and the order of the values it received.
type fakeSolver struct {
	skip      map[triple]bool
	duplicate *triple
	extra     []Relation
	panicOn   map[triple]bool
}

func fakeValue(target Property, v1, v2 float64) float64 {
	return 1000*float64(target) + 10*v1 - v2
}

func (f fakeSolver) Relations() []Relation {
	var rels []Relation
	for _, target := range Properties() {
		for k1 := DryBulb; k1 <= DewPoint; k1++ {
			for k2 := k1 + 1; k2 <= DewPoint; k2++ {
				if k1 == target || k2 == target {
					continue
				}
				tr := triple{target, k1, k2}
				if f.skip[tr] {
					continue
				}
				target := target
				eval := func(patm, v1, v2 float64) float64 {
					return fakeValue(target, v1, v2)
				}
				if f.panicOn[tr] {
					eval = func(patm, v1, v2 float64) float64 {
						panic("diverged")
					}
				}
				rels = append(rels, Relation{Target: target, Known1: k1, Known2: k2, Eval: eval})
			}
		}
	}
	if f.duplicate != nil {
		d := *f.duplicate
		rels = append(rels, Relation{Target: d.target, Known1: d.k1, Known2: d.k2, Eval: func(patm, v1, v2 float64) float64 { return 0 }})
	}
	return append(rels, f.extra...)
}

func (f fakeSolver) PressureAt(altitude float64) float64 {
	return StandardPressure * math.Pow(1.0-2.25577e-5*altitude, 5.2559)
}

// pressureSolver returns the pressure it was called with for every relation.
type pressureSolver struct{ fakeSolver }

func (p pressureSolver) Relations() []Relation {
	rels := p.fakeSolver.Relations()
	for i := range rels {
		rels[i].Eval = func(patm, v1, v2 float64) float64 { return patm }
	}
	return rels
}
