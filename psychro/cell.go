package psychro

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrParseFailure = errors.New("cell is not a number")

// CellKind tags the content of a Cell.
type CellKind int

const (
	BlankCell CellKind = iota
	NumberCell
	TextCell
	ErrorCell
)

// Cell is one raw input value as handed over by the host.
type Cell struct {
	Kind   CellKind
	Number float64
	Text   string
}

func Number(v float64) Cell { return Cell{Kind: NumberCell, Number: v} }

func Text(s string) Cell { return Cell{Kind: TextCell, Text: s} }

func Blank() Cell { return Cell{Kind: BlankCell} }

// Failed is a cell that already holds a host error such as "#DIV/0!".
func Failed(token string) Cell { return Cell{Kind: ErrorCell, Text: token} }

// Float returns the numeric value of the cell. Text is parsed with a decimal
// point, a decimal comma being accepted in its place.
func (c Cell) Float() (float64, error) {
	switch c.Kind {
	case NumberCell:
		return c.Number, nil
	case TextCell:
		s := strings.ReplaceAll(strings.TrimSpace(c.Text), ",", ".")
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrParseFailure, c.Text)
		}
		return v, nil
	case ErrorCell:
		return 0, fmt.Errorf("%w: %s", ErrParseFailure, c.Text)
	default:
		return 0, fmt.Errorf("%w: blank", ErrParseFailure)
	}
}

// ParseFailurePolicy decides what a cell that is not a number turns into.
type ParseFailurePolicy int

const (
	// ParseAsZero substitutes 0.0 and evaluates the row normally.
	ParseAsZero ParseFailurePolicy = iota
	// ParseAsDiagnostic marks every output cell of the row with ErrParseFailure.
	ParseAsDiagnostic
)

// ParseParseFailurePolicy accepts "zero" and "diagnostic"; anything else is ParseAsZero.
func ParseParseFailurePolicy(s string) ParseFailurePolicy {
	if strings.EqualFold(strings.TrimSpace(s), "diagnostic") {
		return ParseAsDiagnostic
	}
	return ParseAsZero
}

// Range is a rectangular block of cells: a scalar, a column, a row or a
// full grid. All rows have the same length.
type Range struct {
	cells [][]Cell
	cols  int
}

/*
NewRange wraps a 2-D block of cells.

	Notes:
		short rows are padded with blanks; an empty block becomes a single
		blank cell
*/
func NewRange(cells [][]Cell) Range {
	cols := 0
	for _, row := range cells {
		if len(row) > cols {
			cols = len(row)
		}
	}
	if len(cells) == 0 || cols == 0 {
		return Scalar(Blank())
	}

	out := make([][]Cell, len(cells))
	for i, row := range cells {
		out[i] = make([]Cell, cols)
		copy(out[i], row)
	}
	return Range{cells: out, cols: cols}
}

func Scalar(c Cell) Range {
	return Range{cells: [][]Cell{{c}}, cols: 1}
}

// Column builds an N x 1 range of numbers.
func Column(vs ...float64) Range {
	cells := make([][]Cell, len(vs))
	for i, v := range vs {
		cells[i] = []Cell{Number(v)}
	}
	return NewRange(cells)
}

// Row builds a 1 x M range of numbers.
func Row(vs ...float64) Range {
	row := make([]Cell, len(vs))
	for i, v := range vs {
		row[i] = Number(v)
	}
	return NewRange([][]Cell{row})
}

func (r Range) Rows() int {
	if len(r.cells) == 0 {
		return 1
	}
	return len(r.cells)
}

func (r Range) Cols() int {
	if r.cols == 0 {
		return 1
	}
	return r.cols
}

// Len is the number of evaluation rows the range drives: its row count, or
// its column count when it is a single row.
func (r Range) Len() int {
	if r.Rows() == 1 {
		return r.Cols()
	}
	return r.Rows()
}

/*
At returns the cell used for evaluation row i.

	Notes:
		a multi-row range is indexed by row, clamped to its last row;
		a single-row range with several columns is indexed by column, clamped
		to its last column; anything else always yields its first cell
*/
func (r Range) At(i int) Cell {
	if len(r.cells) == 0 {
		return Blank()
	}
	rows, cols := len(r.cells), r.cols
	switch {
	case rows > 1:
		return r.cells[min(i, rows-1)][0]
	case cols > 1:
		return r.cells[0][min(i, cols-1)]
	default:
		return r.cells[0][0]
	}
}
