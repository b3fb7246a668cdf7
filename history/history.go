// Package history keeps a SQLite log of altitude changes and evaluation runs.
package history

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"

	"psicro/psychro"
)

// ErrNoAltitude is returned by LastAltitude before any altitude was recorded.
var ErrNoAltitude = errors.New("history: no altitude recorded")

// DB wraps a SQLite connection.
type DB struct {
	conn *sqlx.DB
	log  *logrus.Logger
}

// Open opens or creates a SQLite database at the given path.
func Open(path string, logger *logrus.Logger) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	db := &DB{conn: conn, log: logger}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	logger.WithField("path", path).Debug("history database ready")
	return db, nil
}

func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS altitudes (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		altitude REAL NOT NULL,
		unit TEXT NOT NULL,
		pressure REAL NOT NULL,
		created_at INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS runs (
		seq INTEGER PRIMARY KEY AUTOINCREMENT,
		id TEXT NOT NULL UNIQUE,
		p1 TEXT NOT NULL,
		p2 TEXT NOT NULL,
		targets TEXT NOT NULL,
		unit TEXT NOT NULL,
		pressure REAL NOT NULL,
		row_count INTEGER NOT NULL,
		failed_cells INTEGER NOT NULL,
		created_at INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// Altitude is one accepted altitude change.
type Altitude struct {
	Altitude  float64 `db:"altitude"`
	Unit      string  `db:"unit"`
	Pressure  float64 `db:"pressure"`
	CreatedAt int64   `db:"created_at"`
}

// RecordAltitude stores an accepted altitude and the pressure it produced.
func (db *DB) RecordAltitude(altitude float64, unit psychro.UnitSystem, pressure float64) error {
	_, err := db.conn.Exec(
		"INSERT INTO altitudes (altitude, unit, pressure, created_at) VALUES (?, ?, ?, ?)",
		altitude, unit.String(), pressure, time.Now().UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("record altitude: %w", err)
	}
	return nil
}

// LastAltitude returns the most recently recorded altitude.
func (db *DB) LastAltitude() (Altitude, error) {
	var a Altitude
	err := db.conn.Get(&a,
		"SELECT altitude, unit, pressure, created_at FROM altitudes ORDER BY id DESC LIMIT 1",
	)
	if errors.Is(err, sql.ErrNoRows) {
		return a, ErrNoAltitude
	}
	return a, err
}

// Run summarises one call to Evaluate.
type Run struct {
	ID        string  `db:"id"`
	P1        string  `db:"p1"`
	P2        string  `db:"p2"`
	Targets   string  `db:"targets"`
	Unit      string  `db:"unit"`
	Pressure  float64 `db:"pressure"`
	Rows      int     `db:"row_count"`
	Failed    int     `db:"failed_cells"`
	CreatedAt int64   `db:"created_at"`
}

/*
RecordRun stores a summary of an evaluation result.

	Args:
		p1, p2: the known-property names as given
		g: the result grid

	Returns:
		the generated run id
*/
func (db *DB) RecordRun(p1, p2 string, g *psychro.Grid) (string, error) {
	targets := make([]string, g.Cols())
	for c, p := range g.Targets() {
		targets[c] = p.String()
	}

	failed := 0
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			if g.Err(r, c) != nil {
				failed++
			}
		}
	}

	run := Run{
		ID:        uuid.NewString(),
		P1:        p1,
		P2:        p2,
		Targets:   strings.Join(targets, ","),
		Unit:      g.Unit().String(),
		Pressure:  g.Pressure(),
		Rows:      g.Rows(),
		Failed:    failed,
		CreatedAt: time.Now().UnixNano(),
	}
	_, err := db.conn.NamedExec(`INSERT INTO runs
		(id, p1, p2, targets, unit, pressure, row_count, failed_cells, created_at)
		VALUES (:id, :p1, :p2, :targets, :unit, :pressure, :row_count, :failed_cells, :created_at)`, &run)
	if err != nil {
		return "", fmt.Errorf("record run: %w", err)
	}

	db.log.WithFields(logrus.Fields{"id": run.ID, "rows": run.Rows, "failed": failed}).Debug("run recorded")
	return run.ID, nil
}

// RecentRuns returns the most recent runs, newest first.
func (db *DB) RecentRuns(limit int) ([]Run, error) {
	var runs []Run
	err := db.conn.Select(&runs,
		"SELECT id, p1, p2, targets, unit, pressure, row_count, failed_cells, created_at FROM runs ORDER BY seq DESC LIMIT ?",
		limit,
	)
	return runs, err
}
