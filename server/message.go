package server

import (
	"bytes"
	"encoding/json"
	"fmt"

	"psicro/psychro"
)

// request types
const (
	TypeEvaluate = "evaluate"
	TypeAltitude = "altitude"
	TypeHelp     = "help"
)

// reply types
const (
	TypeResult = "result"
	TypeError  = "error"
)

// Msg is a request from the peer.
type Msg struct {
	Type string `json:"type"`

	// evaluate
	P1     string `json:"p1,omitempty"`
	V1     Values `json:"v1"`
	P2     string `json:"p2,omitempty"`
	V2     Values `json:"v2"`
	Target string `json:"target,omitempty"`
	Unit   string `json:"unit,omitempty"`

	// altitude
	Altitude float64 `json:"altitude,omitempty"`

	// help: "units" or "info", anything else is the usage guide
	Topic string `json:"topic,omitempty"`
}

// Reply is sent back for every request.
type Reply struct {
	Type     string     `json:"type"`
	Targets  []string   `json:"targets,omitempty"`
	Rows     [][]string `json:"rows,omitempty"`
	Pressure float64    `json:"pressure,omitempty"`
	Status   string     `json:"status,omitempty"`
	Content  string     `json:"content,omitempty"`
	Error    string     `json:"error,omitempty"`
}

// Values is a scalar or a range of input cells. It decodes from a number, a
// string, null, an array of those (a column), or an array of arrays (rows of
// a rectangular range, so [[40,50,60]] is a 1x3 row).
type Values struct {
	psychro.Range
}

func (v *Values) UnmarshalJSON(data []byte) error {
	if !isArray(data) {
		c, err := decodeCell(data)
		if err != nil {
			return err
		}
		v.Range = psychro.Scalar(c)
		return nil
	}

	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}
	cells := make([][]psychro.Cell, len(items))
	for i, item := range items {
		row, err := decodeRow(item)
		if err != nil {
			return err
		}
		cells[i] = row
	}
	v.Range = psychro.NewRange(cells)
	return nil
}

func isArray(data []byte) bool {
	data = bytes.TrimSpace(data)
	return len(data) > 0 && data[0] == '['
}

// decodeRow decodes one row of a range. A bare value is a row of one cell.
func decodeRow(data []byte) ([]psychro.Cell, error) {
	if !isArray(data) {
		c, err := decodeCell(data)
		if err != nil {
			return nil, err
		}
		return []psychro.Cell{c}, nil
	}

	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return []psychro.Cell{psychro.Blank()}, nil
	}
	row := make([]psychro.Cell, len(items))
	for i, item := range items {
		c, err := decodeCell(item)
		if err != nil {
			return nil, err
		}
		row[i] = c
	}
	return row, nil
}

func decodeCell(data []byte) (psychro.Cell, error) {
	var x any
	if err := json.Unmarshal(data, &x); err != nil {
		return psychro.Cell{}, err
	}
	switch x := x.(type) {
	case nil:
		return psychro.Blank(), nil
	case float64:
		return psychro.Number(x), nil
	case string:
		return psychro.Text(x), nil
	default:
		return psychro.Cell{}, fmt.Errorf("unsupported cell value %s", data)
	}
}

func resultReply(g *psychro.Grid) Reply {
	targets := make([]string, g.Cols())
	for c, p := range g.Targets() {
		targets[c] = p.String()
	}

	rows := make([][]string, g.Rows())
	for r := range rows {
		rows[r] = make([]string, g.Cols())
		for c := range rows[r] {
			rows[r][c] = g.Token(r, c)
		}
	}

	return Reply{
		Type:     TypeResult,
		Targets:  targets,
		Rows:     rows,
		Pressure: g.Pressure(),
	}
}

func errorReply(err error) Reply {
	return Reply{Type: TypeError, Error: err.Error()}
}
