package psychro

import (
	"errors"
	"math"
	"strconv"

	"gonum.org/v1/gonum/mat"
)

// diagnostic tokens written in place of a number
const (
	TokenInvalidName     = "#NAME?"
	TokenUnsupportedPair = "#N/A"
	TokenParseFailure    = "#VALUE!"
	TokenSolverFailure   = "#NUM!"
)

// Diagnostic returns the token for a per-cell error.
func Diagnostic(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidPropertyName):
		return TokenInvalidName
	case errors.Is(err, ErrUnsupportedPropertyPair):
		return TokenUnsupportedPair
	case errors.Is(err, ErrParseFailure):
		return TokenParseFailure
	default:
		return TokenSolverFailure
	}
}

// Grid is the result of an evaluation: one row per input row, one column per
// target. A cell holds either a number or an error.
type Grid struct {
	targets []Property
	unit    UnitSystem
	patm    float64
	values  *mat.Dense
	errs    [][]error
}

func newGrid(rows int, targets []Property, unit UnitSystem, patm float64) *Grid {
	errs := make([][]error, rows)
	for i := range errs {
		errs[i] = make([]error, len(targets))
	}
	return &Grid{
		targets: targets,
		unit:    unit,
		patm:    patm,
		values:  mat.NewDense(rows, len(targets), nil),
		errs:    errs,
	}
}

func (g *Grid) set(r, c int, v float64, err error) {
	if err != nil {
		g.errs[r][c] = err
		g.values.Set(r, c, math.NaN())
		return
	}
	g.values.Set(r, c, v)
}

func (g *Grid) Rows() int { return len(g.errs) }

func (g *Grid) Cols() int { return len(g.targets) }

// Targets returns the property computed in each column.
func (g *Grid) Targets() []Property {
	return append([]Property(nil), g.targets...)
}

func (g *Grid) Unit() UnitSystem { return g.unit }

// Pressure is the atmospheric pressure the grid was computed at, kPa.
func (g *Grid) Pressure() float64 { return g.patm }

// At returns the value at (r, c) in the grid's unit system, or the cell's error.
func (g *Grid) At(r, c int) (float64, error) {
	if err := g.errs[r][c]; err != nil {
		return math.NaN(), err
	}
	return g.values.At(r, c), nil
}

func (g *Grid) Err(r, c int) error { return g.errs[r][c] }

// Values exposes the numeric part of the grid; failed cells are NaN.
func (g *Grid) Values() mat.Matrix { return g.values }

// Column copies the values of column c, failed cells as NaN.
func (g *Grid) Column(c int) []float64 {
	return mat.Col(nil, c, g.values)
}

// Token renders cell (r, c) as text: the number, or its diagnostic token.
func (g *Grid) Token(r, c int) string {
	v, err := g.At(r, c)
	if err != nil {
		return Diagnostic(err)
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
