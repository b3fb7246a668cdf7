// Package server exposes the evaluator to websocket peers as JSON messages.
package server

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"psicro/psychro"
)

// Recorder receives accepted altitudes and finished evaluations.
type Recorder interface {
	RecordAltitude(altitude float64, unit psychro.UnitSystem, pressure float64) error
	RecordRun(p1, p2 string, g *psychro.Grid) (string, error)
}

type Server struct {
	addr     string
	upgrader websocket.Upgrader
	e        *psychro.Evaluator
	log      *logrus.Logger
	rec      Recorder
}

// New returns a server for addr that evaluates against e. All connections
// share e, so an altitude change from one peer applies to every peer.
func New(addr string, e *psychro.Evaluator, logger *logrus.Logger) *Server {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Server{
		addr: addr,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		e:   e,
		log: logger,
	}
}

// SetRecorder makes the server log altitudes and runs to r.
func (s *Server) SetRecorder(r Recorder) {
	s.rec = r
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.serveWs)
	return mux
}

// Serve listens on the server address until the listener fails.
func (s *Server) Serve() error {
	s.log.WithField("addr", s.addr).Info("listening")
	return http.ListenAndServe(s.addr, s.Handler())
}

// serveWs handles websocket requests from the peer. Messages of one
// connection are answered in order.
func (s *Server) serveWs(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.WithError(err).Warn("upgrade failed")
		return
	}
	defer conn.Close()

	peer := s.log.WithField("peer", conn.RemoteAddr().String())
	peer.Info("connected")

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				peer.WithError(err).Warn("read failed")
			}
			peer.Info("disconnected")
			return
		}

		var reply Reply
		var msg Msg
		if err := json.Unmarshal(data, &msg); err != nil {
			peer.WithError(err).Warn("malformed message")
			reply = errorReply(err)
		} else {
			reply = s.handle(peer, msg)
		}

		if err := conn.WriteJSON(&reply); err != nil {
			peer.WithError(err).Warn("write failed")
			return
		}
	}
}

func (s *Server) handle(peer *logrus.Entry, msg Msg) Reply {
	switch msg.Type {
	case TypeEvaluate:
		return s.evaluate(peer, msg)
	case TypeAltitude:
		return s.altitude(peer, msg)
	case TypeHelp:
		switch msg.Topic {
		case "units":
			return Reply{Type: TypeHelp, Content: psychro.UnitsInfo()}
		case "info":
			return Reply{Type: TypeHelp, Content: psychro.Info()}
		default:
			return Reply{Type: TypeHelp, Content: psychro.Help()}
		}
	default:
		peer.WithField("type", msg.Type).Warn("no such type")
		return Reply{Type: TypeError, Error: "unknown message type " + msg.Type}
	}
}

func (s *Server) evaluate(peer *logrus.Entry, msg Msg) Reply {
	g, err := s.e.Evaluate(msg.P1, msg.V1.Range, msg.P2, msg.V2.Range, msg.Target, psychro.ParseUnitSystem(msg.Unit))
	if err != nil {
		return errorReply(err)
	}

	if s.rec != nil {
		if _, err := s.rec.RecordRun(msg.P1, msg.P2, g); err != nil {
			peer.WithError(err).Warn("run not recorded")
		}
	}
	return resultReply(g)
}

func (s *Server) altitude(peer *logrus.Entry, msg Msg) Reply {
	unit := psychro.ParseUnitSystem(msg.Unit)
	p, err := s.e.SetAltitude(msg.Altitude, unit)
	status := psychro.AltitudeStatus(msg.Altitude, unit, p, err)
	if err != nil {
		return Reply{Type: TypeError, Status: status, Error: err.Error()}
	}

	if s.rec != nil {
		if err := s.rec.RecordAltitude(msg.Altitude, unit, p); err != nil {
			peer.WithError(err).Warn("altitude not recorded")
		}
	}
	return Reply{Type: TypeAltitude, Status: status, Pressure: p}
}
