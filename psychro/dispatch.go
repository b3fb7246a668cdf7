package psychro

import (
	"errors"
	"fmt"
)

var ErrSolverFailure = errors.New("solver failure")

// RelationFunc computes one property from two known SI values, given in
// canonical order, at atmospheric pressure patm (kPa).
type RelationFunc func(patm, v1, v2 float64) float64

// Relation binds a RelationFunc to the target it computes and the two
// properties it takes. Known1 must have the smaller index.
type Relation struct {
	Target Property
	Known1 Property
	Known2 Property
	Eval   RelationFunc
}

// Solver supplies the thermodynamic relations and the pressure model.
type Solver interface {
	Relations() []Relation
	PressureAt(altitude float64) float64
}

// every target has the 15 unordered pairs of the other six properties
const (
	PairsPerTarget = 15
	TableSize      = NumProperties * PairsPerTarget
)

const maxPairKey = 10*(NumProperties-2) + (NumProperties - 1)

// PairKey orders a and b by index and returns i1*10 + i2.
func PairKey(a, b Property) int {
	if a > b {
		a, b = b, a
	}
	return int(a)*10 + int(b)
}

// Table maps (target, pair key) to the relation that computes it.
type Table struct {
	entries [NumProperties][maxPairKey + 1]RelationFunc
}

/*
NewTable builds the dispatch table and verifies it is complete.

	Args:
		relations: one Relation per (target, unordered pair)

	Returns:
		the table, or an error listing every malformed, duplicate and
		missing entry
*/
func NewTable(relations []Relation) (*Table, error) {
	t := &Table{}
	var errs []error

	for _, r := range relations {
		switch {
		case !r.Target.Valid() || !r.Known1.Valid() || !r.Known2.Valid():
			errs = append(errs, fmt.Errorf("relation %s(%s,%s): invalid property", r.Target, r.Known1, r.Known2))
			continue
		case r.Known1 >= r.Known2:
			errs = append(errs, fmt.Errorf("relation %s(%s,%s): known pair not in canonical order", r.Target, r.Known1, r.Known2))
			continue
		case r.Target == r.Known1 || r.Target == r.Known2:
			errs = append(errs, fmt.Errorf("relation %s(%s,%s): target is one of the knowns", r.Target, r.Known1, r.Known2))
			continue
		case r.Eval == nil:
			errs = append(errs, fmt.Errorf("relation %s(%s,%s): nil function", r.Target, r.Known1, r.Known2))
			continue
		}

		key := PairKey(r.Known1, r.Known2)
		if t.entries[r.Target][key] != nil {
			errs = append(errs, fmt.Errorf("relation %s(%s,%s): duplicate", r.Target, r.Known1, r.Known2))
			continue
		}
		t.entries[r.Target][key] = r.Eval
	}

	for _, target := range Properties() {
		for _, k1 := range Properties() {
			for k2 := k1 + 1; k2 < NumProperties; k2++ {
				if k1 == target || k2 == target {
					continue
				}
				if t.entries[target][PairKey(k1, k2)] == nil {
					errs = append(errs, fmt.Errorf("relation %s(%s,%s): missing", target, k1, k2))
				}
			}
		}
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("dispatch table: %w", errors.Join(errs...))
	}
	return t, nil
}

// Len returns the number of relations in the table.
func (t *Table) Len() int {
	n := 0
	for i := range t.entries {
		for _, fn := range t.entries[i] {
			if fn != nil {
				n++
			}
		}
	}
	return n
}

/*
Evaluate computes target from two known properties in any order.

	Args:
		patm: atmospheric pressure, kPa
		target: property to compute
		k1, v1: first known property and its SI value
		k2, v2: second known property and its SI value

	Returns:
		the SI value of target, or an error wrapping ErrInvalidPropertyName,
		ErrUnsupportedPropertyPair or ErrSolverFailure
*/
func (t *Table) Evaluate(patm float64, target, k1 Property, v1 float64, k2 Property, v2 float64) (float64, error) {
	if !target.Valid() || !k1.Valid() || !k2.Valid() || k1 == k2 {
		return 0, ErrInvalidPropertyName
	}

	if k1 > k2 {
		k1, k2 = k2, k1
		v1, v2 = v2, v1
	}
	if target == k1 || target == k2 {
		return 0, fmt.Errorf("%w: %s from (%s,%s)", ErrUnsupportedPropertyPair, target, k1, k2)
	}

	fn := t.entries[target][PairKey(k1, k2)]
	if fn == nil {
		return 0, fmt.Errorf("%w: %s from (%s,%s)", ErrUnsupportedPropertyPair, target, k1, k2)
	}
	return call(fn, patm, v1, v2)
}

func call(fn RelationFunc, patm, v1, v2 float64) (v float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrSolverFailure, r)
		}
	}()
	return fn(patm, v1, v2), nil
}
