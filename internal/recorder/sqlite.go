package recorder

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"
)

// SQLiteRecorder persists history to a SQLite database.
type SQLiteRecorder struct {
	db  *sql.DB
	mu  sync.Mutex
	log zerolog.Logger
}

// NewSQLiteRecorder opens (or creates) the database and runs migrations.
func NewSQLiteRecorder(dbPath string, log zerolog.Logger) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL so dashboard reads don't block daemon writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db, log: log.With().Str("component", "recorder").Logger()}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	r.log.Info().Str("path", dbPath).Msg("sqlite recorder opened")
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS load_snapshots (
			id           INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp    INTEGER NOT NULL,
			source       TEXT,
			parsed_count INTEGER,
			duration_ms  INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_load_ts ON load_snapshots(timestamp)`,

		`CREATE TABLE IF NOT EXISTS evaluations (
			id        INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp INTEGER NOT NULL,
			fund_id   INTEGER,
			fund_name TEXT,
			score     INTEGER,
			label     TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_eval_ts ON evaluations(timestamp)`,

		`CREATE TABLE IF NOT EXISTS basket_events (
			id        INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp INTEGER NOT NULL,
			action    TEXT,
			fund_id   INTEGER,
			count     INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_basket_ts ON basket_events(timestamp)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordLoad(snap *LoadSnapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO load_snapshots
		(timestamp, source, parsed_count, duration_ms)
		VALUES (?,?,?,?)`,
		time.Now().Unix(), snap.Source, snap.ParsedCount, snap.Duration.Milliseconds(),
	)
	return err
}

func (r *SQLiteRecorder) RecordEvaluation(evt *Evaluation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO evaluations
		(timestamp, fund_id, fund_name, score, label)
		VALUES (?,?,?,?,?)`,
		time.Now().Unix(), evt.FundID, evt.FundName, evt.Score, evt.Label,
	)
	return err
}

func (r *SQLiteRecorder) RecordBasketEvent(evt *BasketEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO basket_events
		(timestamp, action, fund_id, count)
		VALUES (?,?,?,?)`,
		time.Now().Unix(), evt.Action, evt.FundID, evt.Count,
	)
	return err
}

// Prune drops history rows older than the cutoff.
func (r *SQLiteRecorder) Prune(before time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := before.Unix()
	for _, table := range []string{"load_snapshots", "evaluations", "basket_events"} {
		if _, err := r.db.Exec("DELETE FROM "+table+" WHERE timestamp < ?", cutoff); err != nil {
			return fmt.Errorf("prune %s: %w", table, err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) Close() error {
	r.log.Info().Msg("closing sqlite recorder")
	return r.db.Close()
}
