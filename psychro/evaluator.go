package psychro

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

var ErrNoTargets = errors.New("no valid target property")

// ErrSeveralTargets is returned by EvaluateOne when the target resolves to
// more than one property.
var ErrSeveralTargets = errors.New("more than one target property")

// target specs that select every property not already known
var allKeywords = map[string]bool{"": true, "all": true, "tutto": true}

/*
ParseTargets resolves the target list of an evaluation.

	Args:
		spec: a single name, a list separated by commas, semicolons or blanks,
		      or one of "", "all", "tutto"
		k1, k2: the known properties

	Returns:
		the targets in order. For the all-keywords this is every property
		other than k1 and k2 by ascending index; otherwise the resolvable names
		in the order given, unresolvable names skipped.
*/
func ParseTargets(spec string, k1, k2 Property) []Property {
	if allKeywords[strings.ToLower(strings.TrimSpace(spec))] {
		var targets []Property
		for _, p := range Properties() {
			if p != k1 && p != k2 {
				targets = append(targets, p)
			}
		}
		return targets
	}

	var targets []Property
	fields := strings.FieldsFunc(spec, func(r rune) bool {
		return r == ',' || r == ';' || r == ' '
	})
	for _, f := range fields {
		if p, err := Resolve(f); err == nil {
			targets = append(targets, p)
		}
	}
	return targets
}

// Evaluator resolves moist-air properties over scalar or range inputs.
// It is safe for concurrent use.
type Evaluator struct {
	table  *Table
	atm    *Atmosphere
	policy ParseFailurePolicy
	log    *logrus.Logger
}

type Option func(*Evaluator)

func WithLogger(l *logrus.Logger) Option {
	return func(e *Evaluator) { e.log = l }
}

func WithParseFailurePolicy(p ParseFailurePolicy) Option {
	return func(e *Evaluator) { e.policy = p }
}

// WithAtmosphere replaces the Atmosphere built from the solver's pressure model.
func WithAtmosphere(a *Atmosphere) Option {
	return func(e *Evaluator) { e.atm = a }
}

// New builds the dispatch table from the solver's relations. It fails when
// the relations do not cover every target and pair exactly once.
func New(solver Solver, opts ...Option) (*Evaluator, error) {
	table, err := NewTable(solver.Relations())
	if err != nil {
		return nil, err
	}

	e := &Evaluator{
		table:  table,
		policy: ParseAsZero,
		log:    logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.atm == nil {
		e.atm = NewAtmosphere(solver.PressureAt)
	}
	return e, nil
}

func (e *Evaluator) Table() *Table { return e.table }

// Pressure returns the atmospheric pressure currently in use, kPa.
func (e *Evaluator) Pressure() float64 { return e.atm.Pressure() }

// SetAltitude changes the shared atmospheric pressure; see Atmosphere.SetAltitude.
func (e *Evaluator) SetAltitude(altitude float64, unit UnitSystem) (float64, error) {
	p, err := e.atm.SetAltitude(altitude, unit)
	if err != nil {
		e.log.WithError(err).Warn("altitude rejected")
		return p, err
	}
	e.log.WithFields(logrus.Fields{"altitude": altitude, "unit": unit, "kPa": p}).Info("pressure updated")
	return p, nil
}

/*
Evaluate computes the requested targets for every input row.

	Args:
		name1, values1: first known property and its value(s)
		name2, values2: second known property and its value(s)
		targetSpec: see ParseTargets
		unit: unit system of the inputs and of the results

	Returns:
		a grid of Len(values1) or Len(values2) rows, whichever is larger, and
		one column per target. Name, pair, parse and solver problems are
		reported per cell; only an empty target list fails the whole call.
*/
func (e *Evaluator) Evaluate(name1 string, values1 Range, name2 string, values2 Range, targetSpec string, unit UnitSystem) (*Grid, error) {
	k1, err1 := Resolve(name1)
	k2, err2 := Resolve(name2)
	nameErr := errors.Join(err1, err2)
	if nameErr == nil && k1 == k2 {
		nameErr = fmt.Errorf("%w: %q and %q name the same property", ErrInvalidPropertyName, name1, name2)
	}

	targets := ParseTargets(targetSpec, k1, k2)
	if len(targets) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrNoTargets, targetSpec)
	}

	rows := max(values1.Len(), values2.Len())
	patm := e.atm.Pressure()
	g := newGrid(rows, targets, unit, patm)

	e.log.WithFields(logrus.Fields{
		"p1":      name1,
		"p2":      name2,
		"targets": targets,
		"rows":    rows,
		"unit":    unit,
		"kPa":     patm,
	}).Debug("evaluate")

	failed := 0
	for r := 0; r < rows; r++ {
		v1, perr1 := e.number(values1.At(r))
		v2, perr2 := e.number(values2.At(r))
		rowErr := errors.Join(perr1, perr2)

		if unit == IP {
			v1 = ToSI(v1, k1)
			v2 = ToSI(v2, k2)
		}

		for c, target := range targets {
			switch {
			case nameErr != nil:
				g.set(r, c, 0, nameErr)
			case rowErr != nil:
				g.set(r, c, 0, rowErr)
			default:
				v, err := e.table.Evaluate(patm, target, k1, v1, k2, v2)
				if err == nil && unit == IP {
					v = ToIP(v, target)
				}
				if errors.Is(err, ErrSolverFailure) {
					failed++
				}
				g.set(r, c, v, err)
			}
		}
	}

	if failed > 0 {
		e.log.WithField("cells", failed).Warn("solver failed on some cells")
	}
	return g, nil
}

// EvaluateOne is Evaluate for a single row and a single target. A target
// that resolves to several properties, such as "all", is rejected.
func (e *Evaluator) EvaluateOne(name1 string, v1 float64, name2 string, v2 float64, target string, unit UnitSystem) (float64, error) {
	g, err := e.Evaluate(name1, Scalar(Number(v1)), name2, Scalar(Number(v2)), target, unit)
	if err != nil {
		return 0, err
	}
	if g.Cols() > 1 {
		return 0, fmt.Errorf("%w: %q", ErrSeveralTargets, target)
	}
	return g.At(0, 0)
}

func (e *Evaluator) number(c Cell) (float64, error) {
	v, err := c.Float()
	if err == nil {
		return v, nil
	}
	if e.policy == ParseAsDiagnostic {
		return 0, err
	}
	return 0, nil
}
