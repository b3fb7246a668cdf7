// Package batch reads evaluation inputs from CSV and writes result grids back
// out as CSV.
package batch

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/gocarina/gocsv"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"psicro/psychro"
)

var ErrEmptyInput = errors.New("batch: no input rows")

// InputRow is one line of an input file. Values stay text so that the
// evaluator's parse policy decides what a malformed value becomes.
type InputRow struct {
	V1 string `csv:"v1"`
	V2 string `csv:"v2"`
}

func cell(s string) psychro.Cell {
	if strings.TrimSpace(s) == "" {
		return psychro.Blank()
	}
	return psychro.Text(s)
}

/*
Read loads the two known-property columns.

	Args:
		r: CSV with the header "v1,v2"

	Returns:
		the v1 and v2 columns as N x 1 ranges

	Notes:
		decimal commas must be quoted ("26,5")
*/
func Read(r io.Reader) (psychro.Range, psychro.Range, error) {
	var rows []*InputRow
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return psychro.Range{}, psychro.Range{}, fmt.Errorf("read csv: %w", err)
	}
	if len(rows) == 0 {
		return psychro.Range{}, psychro.Range{}, ErrEmptyInput
	}

	c1 := make([][]psychro.Cell, len(rows))
	c2 := make([][]psychro.Cell, len(rows))
	for i, row := range rows {
		c1[i] = []psychro.Cell{cell(row.V1)}
		c2[i] = []psychro.Cell{cell(row.V2)}
	}
	return psychro.NewRange(c1), psychro.NewRange(c2), nil
}

// ReadFile is Read on the named file.
func ReadFile(path string) (psychro.Range, psychro.Range, error) {
	file, err := os.Open(path)
	if err != nil {
		return psychro.Range{}, psychro.Range{}, err
	}
	defer file.Close()

	return Read(file)
}

/*
Write emits the grid as CSV.

	Args:
		w: destination
		g: evaluation result

	Notes:
		the header holds the target symbols; failed cells are written as their
		diagnostic token
*/
func Write(w io.Writer, g *psychro.Grid) error {
	out := gocsv.NewSafeCSVWriter(csv.NewWriter(w))

	header := make([]string, g.Cols())
	for c, p := range g.Targets() {
		header[c] = p.String()
	}
	if err := out.Write(header); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}

	record := make([]string, g.Cols())
	for r := 0; r < g.Rows(); r++ {
		for c := range record {
			record[c] = g.Token(r, c)
		}
		if err := out.Write(record); err != nil {
			return fmt.Errorf("write csv: %w", err)
		}
	}

	out.Flush()
	return out.Error()
}

// WriteFile is Write to the named file, created or truncated.
func WriteFile(path string, g *psychro.Grid) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Write(file, g); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

// ColumnSummary describes the numeric cells of one output column.
type ColumnSummary struct {
	Target psychro.Property
	Count  int
	Failed int
	Min    float64
	Max    float64
	Mean   float64
}

/*
Summarize computes per-column statistics over the cells that hold a number.

	Notes:
		NaN results and diagnostic cells are counted in Failed; a column with
		no number has Min, Max and Mean set to NaN
*/
func Summarize(g *psychro.Grid) []ColumnSummary {
	summaries := make([]ColumnSummary, g.Cols())
	for c, p := range g.Targets() {
		col := g.Column(c)
		vals := make([]float64, 0, len(col))
		for _, v := range col {
			if !math.IsNaN(v) {
				vals = append(vals, v)
			}
		}

		s := ColumnSummary{
			Target: p,
			Count:  len(vals),
			Failed: len(col) - len(vals),
			Min:    math.NaN(),
			Max:    math.NaN(),
			Mean:   math.NaN(),
		}
		if len(vals) > 0 {
			s.Min = floats.Min(vals)
			s.Max = floats.Max(vals)
			s.Mean = stat.Mean(vals, nil)
		}
		summaries[c] = s
	}
	return summaries
}
