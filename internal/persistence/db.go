// Package persistence provides the SQLite archive of the emitted event
// stream and per-run metadata. Simulation state itself is never persisted;
// the event record is the only output that survives a run.
package persistence

import (
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/talgya/aeternitas/internal/sim"
)

// DB wraps a SQLite connection for the event archive.
type DB struct {
	conn *sqlx.DB
}

// EventRow is the archived form of one event.
type EventRow struct {
	Tick     uint64 `db:"tick"`
	EntityID uint64 `db:"entity_id"`
	Type     string `db:"type"`
	ParentID uint64 `db:"parent_id"`
	Genome   string `db:"genome"`
	X        int    `db:"x"`
	Y        int    `db:"y"`
	Reason   string `db:"reason"`
}

// Open opens or creates the archive database at the given path.
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS events (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		tick INTEGER NOT NULL,
		entity_id INTEGER NOT NULL,
		type TEXT NOT NULL,
		parent_id INTEGER NOT NULL DEFAULT 0,
		genome TEXT NOT NULL DEFAULT '',
		x INTEGER NOT NULL DEFAULT 0,
		y INTEGER NOT NULL DEFAULT 0,
		reason TEXT NOT NULL DEFAULT ''
	);

	CREATE TABLE IF NOT EXISTS run_meta (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_events_tick ON events(tick);
	CREATE INDEX IF NOT EXISTS idx_events_entity ON events(entity_id);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// SaveEvents appends a tick's event batch to the archive in one
// transaction, preserving emission order.
func (db *DB) SaveEvents(events []sim.Event) error {
	if len(events) == 0 {
		return nil
	}

	tx, err := db.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Preparex(`INSERT INTO events
		(tick, entity_id, type, parent_id, genome, x, y, reason)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, e := range events {
		var genomeHex string
		if e.Type == sim.EventBirth {
			genomeHex = e.Genome.String()
		}
		if _, err := stmt.Exec(
			e.Tick, e.EntityID, e.Type.String(),
			e.ParentID, genomeHex, e.X, e.Y, e.Reason,
		); err != nil {
			return fmt.Errorf("insert event tick %d entity %d: %w", e.Tick, e.EntityID, err)
		}
	}

	return tx.Commit()
}

// RecentEvents returns the most recent limit events, newest first.
func (db *DB) RecentEvents(limit int) ([]EventRow, error) {
	var rows []EventRow
	err := db.conn.Select(&rows,
		`SELECT tick, entity_id, type, parent_id, genome, x, y, reason
		 FROM events ORDER BY id DESC LIMIT ?`, limit)
	return rows, err
}

// EventCount returns the number of archived events.
func (db *DB) EventCount() (int64, error) {
	var n int64
	err := db.conn.Get(&n, "SELECT COUNT(*) FROM events")
	return n, err
}

// SaveMeta stores a key-value pair in the run metadata.
func (db *DB) SaveMeta(key, value string) error {
	_, err := db.conn.Exec(
		"INSERT OR REPLACE INTO run_meta (key, value) VALUES (?, ?)",
		key, value,
	)
	return err
}

// GetMeta retrieves a run metadata value.
func (db *DB) GetMeta(key string) (string, error) {
	var value string
	err := db.conn.Get(&value, "SELECT value FROM run_meta WHERE key = ?", key)
	return value, err
}

// FinalizeRun records the closing metadata for a run.
func (db *DB) FinalizeRun(runID string, seed uint64, lastTick uint64) error {
	slog.Info("finalizing run archive", "run_id", runID, "last_tick", lastTick)

	if err := db.SaveMeta("run_id", runID); err != nil {
		return fmt.Errorf("save run id: %w", err)
	}
	if err := db.SaveMeta("seed", fmt.Sprintf("%d", seed)); err != nil {
		return fmt.Errorf("save seed: %w", err)
	}
	if err := db.SaveMeta("last_tick", fmt.Sprintf("%d", lastTick)); err != nil {
		return fmt.Errorf("save last tick: %w", err)
	}
	return nil
}
