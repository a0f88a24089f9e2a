// Package persistence provides the SQLite audit journal: every roll drawn
// and every message emitted, filed under a run id.
package persistence

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/talgya/resistance-core/internal/engine"
	"github.com/talgya/resistance-core/internal/entropy"
)

// ErrNoRun is returned when writing before StartRun.
var ErrNoRun = errors.New("no run started")

// Journal wraps a SQLite connection for the audit log.
type Journal struct {
	conn  *sqlx.DB
	runID string
}

// Open opens or creates a journal database at the given path.
func Open(path string) (*Journal, error) {
	conn, err := sqlx.Open("sqlite", path+"?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}

	j := &Journal{conn: conn}
	if err := j.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return j, nil
}

// Close closes the database connection.
func (j *Journal) Close() error {
	return j.conn.Close()
}

func (j *Journal) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		seed INTEGER NOT NULL,
		human_side TEXT NOT NULL,
		started_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS rolls (
		run_id TEXT NOT NULL,
		seq INTEGER NOT NULL,
		turn INTEGER NOT NULL,
		kind TEXT NOT NULL,
		check_name TEXT NOT NULL,
		actor_id INTEGER NOT NULL,
		value INTEGER NOT NULL,
		threshold INTEGER NOT NULL,
		success INTEGER NOT NULL,
		PRIMARY KEY (run_id, seq)
	);

	CREATE TABLE IF NOT EXISTS events (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id TEXT NOT NULL,
		turn INTEGER NOT NULL,
		side TEXT NOT NULL,
		actor_id INTEGER NOT NULL,
		category TEXT NOT NULL,
		description TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS run_meta (
		run_id TEXT NOT NULL,
		key TEXT NOT NULL,
		value TEXT NOT NULL,
		PRIMARY KEY (run_id, key)
	);

	CREATE INDEX IF NOT EXISTS idx_rolls_turn ON rolls(run_id, turn);
	CREATE INDEX IF NOT EXISTS idx_events_turn ON events(run_id, turn);
	`
	_, err := j.conn.Exec(schema)
	return err
}

// StartRun registers a new run and makes it the target of later writes.
func (j *Journal) StartRun(seed int64, humanSide string) (string, error) {
	id := uuid.NewString()
	_, err := j.conn.Exec(
		"INSERT INTO runs (id, seed, human_side, started_at) VALUES (?, ?, ?, ?)",
		id, seed, humanSide, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return "", fmt.Errorf("start run: %w", err)
	}
	j.runID = id
	slog.Info("journal run started", "run", id, "seed", seed)
	return id, nil
}

// RunID returns the current run, or "" before StartRun.
func (j *Journal) RunID() string {
	return j.runID
}

// SaveTurn appends one turn's rolls and messages in a single transaction.
func (j *Journal) SaveTurn(turn int, rolls []entropy.Record, events []engine.Event) error {
	if j.runID == "" {
		return fmt.Errorf("save turn %d: %w", turn, ErrNoRun)
	}

	tx, err := j.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Preparex(`INSERT INTO rolls
		(run_id, seq, turn, kind, check_name, actor_id, value, threshold, success)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, r := range rolls {
		_, err := stmt.Exec(j.runID, r.Seq, r.Turn, string(r.Kind), r.Check, r.ActorID, r.Value, r.Threshold, r.Success)
		if err != nil {
			return fmt.Errorf("insert roll %d: %w", r.Seq, err)
		}
	}

	for _, e := range events {
		_, err := tx.Exec(
			"INSERT INTO events (run_id, turn, side, actor_id, category, description) VALUES (?, ?, ?, ?, ?, ?)",
			j.runID, e.Turn, e.Side, e.ActorID, e.Category, e.Description,
		)
		if err != nil {
			return fmt.Errorf("insert event: %w", err)
		}
	}

	if _, err := tx.Exec(
		"INSERT OR REPLACE INTO run_meta (run_id, key, value) VALUES (?, 'last_turn', ?)",
		j.runID, fmt.Sprintf("%d", turn),
	); err != nil {
		return fmt.Errorf("save last turn: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	slog.Debug("turn journaled", "turn", turn, "rolls", len(rolls), "events", len(events))
	return nil
}

// Rolls returns a run's draws for one turn in stream order.
func (j *Journal) Rolls(runID string, turn int) ([]entropy.Record, error) {
	var out []entropy.Record
	err := j.conn.Select(&out,
		`SELECT seq, turn, kind, check_name, actor_id, value, threshold, success
		 FROM rolls WHERE run_id = ? AND turn = ? ORDER BY seq`,
		runID, turn,
	)
	return out, err
}

// RecentEvents returns a run's most recent messages, newest first.
func (j *Journal) RecentEvents(runID string, limit int) ([]engine.Event, error) {
	var out []engine.Event
	err := j.conn.Select(&out,
		"SELECT turn, side, actor_id, category, description FROM events WHERE run_id = ? ORDER BY id DESC LIMIT ?",
		runID, limit,
	)
	return out, err
}

// SaveMeta stores a key-value pair for the current run.
func (j *Journal) SaveMeta(key, value string) error {
	if j.runID == "" {
		return fmt.Errorf("save meta %q: %w", key, ErrNoRun)
	}
	_, err := j.conn.Exec(
		"INSERT OR REPLACE INTO run_meta (run_id, key, value) VALUES (?, ?, ?)",
		j.runID, key, value,
	)
	return err
}

// GetMeta retrieves a metadata value for a run.
func (j *Journal) GetMeta(runID, key string) (string, error) {
	var value string
	err := j.conn.Get(&value, "SELECT value FROM run_meta WHERE run_id = ? AND key = ?", runID, key)
	return value, err
}

// Seed returns the seed a run was started with, for replays.
func (j *Journal) Seed(runID string) (int64, error) {
	var seed int64
	err := j.conn.Get(&seed, "SELECT seed FROM runs WHERE id = ?", runID)
	return seed, err
}
