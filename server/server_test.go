package server

import (
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"psicro/ashrae"
	"psicro/psychro"
)

type memRecorder struct {
	mu        sync.Mutex
	altitudes []float64
	runs      []string
}

func (m *memRecorder) RecordAltitude(altitude float64, unit psychro.UnitSystem, pressure float64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.altitudes = append(m.altitudes, altitude)
	return nil
}

func (m *memRecorder) RecordRun(p1, p2 string, g *psychro.Grid) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.runs = append(m.runs, p1+","+p2)
	return strconv.Itoa(len(m.runs)), nil
}

func (m *memRecorder) recorded() ([]float64, []string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]float64(nil), m.altitudes...), append([]string(nil), m.runs...)
}

func newTestServer(t *testing.T) (*httptest.Server, *memRecorder) {
	t.Helper()
	logger, _ := test.NewNullLogger()
	e, err := psychro.New(ashrae.New(), psychro.WithLogger(logger))
	require.NoError(t, err)

	s := New(":0", e, logger)
	rec := &memRecorder{}
	s.SetRecorder(rec)

	srv := httptest.NewServer(s.Handler())
	t.Cleanup(srv.Close)
	return srv, rec
}

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func roundTrip(t *testing.T, conn *websocket.Conn, msg any) Reply {
	t.Helper()
	require.NoError(t, conn.WriteJSON(msg))
	var reply Reply
	require.NoError(t, conn.ReadJSON(&reply))
	return reply
}

func TestEvaluate(t *testing.T) {
	srv, rec := newTestServer(t)
	conn := dial(t, srv)

	reply := roundTrip(t, conn, map[string]any{
		"type":   "evaluate",
		"p1":     "t",
		"v1":     []any{20, "26", nil},
		"p2":     "ur",
		"v2":     50,
		"target": "x,t",
	})
	require.Equal(t, TypeResult, reply.Type)
	assert.Equal(t, []string{"x", "t"}, reply.Targets)
	require.Len(t, reply.Rows, 3)
	assert.Equal(t, psychro.TokenUnsupportedPair, reply.Rows[0][1])
	assert.Equal(t, psychro.StandardPressure, reply.Pressure)

	x, err := strconv.ParseFloat(reply.Rows[1][0], 64)
	require.NoError(t, err)
	assert.InDelta(t, 0.010496, x, 2e-5)

	_, runs := rec.recorded()
	assert.Equal(t, []string{"t,ur"}, runs)
}

func TestEvaluateIP(t *testing.T) {
	srv, _ := newTestServer(t)
	conn := dial(t, srv)

	reply := roundTrip(t, conn, map[string]any{
		"type": "evaluate", "p1": "tdb", "v1": 78.8, "p2": "rh", "v2": 50, "target": "w", "unit": "IP",
	})
	require.Equal(t, TypeResult, reply.Type)
	w, err := strconv.ParseFloat(reply.Rows[0][0], 64)
	require.NoError(t, err)
	assert.InDelta(t, 0.010496, w, 2e-5)
}

func TestEvaluateRanges(t *testing.T) {
	srv, _ := newTestServer(t)
	conn := dial(t, srv)

	// a 1x3 row against a scalar gives three rows
	reply := roundTrip(t, conn, map[string]any{
		"type": "evaluate", "p1": "t", "v1": 26, "p2": "ur", "v2": [][]any{{40, 50, 60}}, "target": "h",
	})
	require.Equal(t, TypeResult, reply.Type, reply.Error)
	require.Len(t, reply.Rows, 3)
	prev := 0.0
	for _, row := range reply.Rows {
		h, err := strconv.ParseFloat(row[0], 64)
		require.NoError(t, err)
		assert.Greater(t, h, prev)
		prev = h
	}
	mid, err := strconv.ParseFloat(reply.Rows[1][0], 64)
	require.NoError(t, err)
	assert.InDelta(t, 52.9, mid, 0.2)

	// a rectangular range is read down its first column
	reply = roundTrip(t, conn, map[string]any{
		"type": "evaluate", "p1": "t", "v1": [][]any{{20, 99}, {26, 99}}, "p2": "ur", "v2": 50, "target": "x",
	})
	require.Equal(t, TypeResult, reply.Type, reply.Error)
	require.Len(t, reply.Rows, 2)
	x, err := strconv.ParseFloat(reply.Rows[1][0], 64)
	require.NoError(t, err)
	assert.InDelta(t, 0.010496, x, 2e-5)
}

func TestEvaluateErrors(t *testing.T) {
	srv, _ := newTestServer(t)
	conn := dial(t, srv)

	reply := roundTrip(t, conn, map[string]any{"type": "evaluate", "p1": "t", "v1": 26, "p2": "ur", "v2": 50, "target": "zz"})
	assert.Equal(t, TypeError, reply.Type)
	assert.Contains(t, reply.Error, "no valid target")

	reply = roundTrip(t, conn, map[string]any{"type": "evaluate", "p1": "zz", "v1": 26, "p2": "ur", "v2": 50, "target": "h"})
	require.Equal(t, TypeResult, reply.Type)
	assert.Equal(t, [][]string{{psychro.TokenInvalidName}}, reply.Rows)

	reply = roundTrip(t, conn, map[string]any{"type": "evaluate", "v1": map[string]any{"a": 1}})
	assert.Equal(t, TypeError, reply.Type)

	reply = roundTrip(t, conn, map[string]any{"type": "launch"})
	assert.Equal(t, TypeError, reply.Type)

	// the connection survives bad messages
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("{not json")))
	var r Reply
	require.NoError(t, conn.ReadJSON(&r))
	assert.Equal(t, TypeError, r.Type)

	reply = roundTrip(t, conn, map[string]any{"type": "help"})
	assert.Equal(t, TypeHelp, reply.Type)
}

// An altitude set by one peer is seen by every other peer.
func TestAltitudeIsShared(t *testing.T) {
	srv, rec := newTestServer(t)
	a := dial(t, srv)
	b := dial(t, srv)

	reply := roundTrip(t, a, map[string]any{"type": "altitude", "altitude": 1000})
	require.Equal(t, TypeAltitude, reply.Type)
	assert.InDelta(t, 89.87, reply.Pressure, 0.01)
	assert.Equal(t, "Altitude OK: 1000 m (P: 89.87 kPa)", reply.Status)

	reply = roundTrip(t, b, map[string]any{"type": "evaluate", "p1": "t", "v1": 26, "p2": "ur", "v2": 50, "target": "x"})
	require.Equal(t, TypeResult, reply.Type)
	assert.InDelta(t, 89.87, reply.Pressure, 0.01)

	reply = roundTrip(t, b, map[string]any{"type": "altitude", "altitude": 40000, "unit": "IP"})
	assert.Equal(t, TypeError, reply.Type)
	assert.Equal(t, "Error: Altitude out of range (40000 ft)", reply.Status)

	altitudes, _ := rec.recorded()
	assert.Equal(t, []float64{1000}, altitudes)
}

func TestHelp(t *testing.T) {
	srv, _ := newTestServer(t)
	conn := dial(t, srv)

	reply := roundTrip(t, conn, map[string]any{"type": "help"})
	assert.Equal(t, psychro.Help(), reply.Content)

	reply = roundTrip(t, conn, map[string]any{"type": "help", "topic": "units"})
	assert.Equal(t, psychro.UnitsInfo(), reply.Content)

	reply = roundTrip(t, conn, map[string]any{"type": "help", "topic": "info"})
	assert.Equal(t, psychro.Info(), reply.Content)
}

func TestConcurrentPeers(t *testing.T) {
	srv, _ := newTestServer(t)

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		conn := dial(t, srv)
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 5; j++ {
				if err := conn.WriteJSON(map[string]any{"type": "evaluate", "p1": "t", "v1": []any{20, 25, 30}, "p2": "ur", "v2": 50, "target": "all"}); err != nil {
					t.Error(err)
					return
				}
				var reply Reply
				if err := conn.ReadJSON(&reply); err != nil {
					t.Error(err)
					return
				}
				assert.Equal(t, TypeResult, reply.Type)
				assert.Len(t, reply.Rows, 3)
			}
		}()
	}
	wg.Wait()
}
