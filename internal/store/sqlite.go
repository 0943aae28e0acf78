// Package store persists run saves and simulation batches in SQLite.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// SQLiteStore is the on-disk persistence layer.
type SQLiteStore struct {
	db *sql.DB
}

// Open opens (or creates) the database at path and enables WAL mode.
func Open(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("store: open database: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: enable WAL mode: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Migrate creates the schema. Safe to run on every start.
func (s *SQLiteStore) Migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS saves (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			seed TEXT NOT NULL,
			save_version INTEGER NOT NULL,
			payload TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS idx_saves_name ON saves(name, created_at)`,
		`CREATE TABLE IF NOT EXISTS sim_batches (
			id TEXT PRIMARY KEY,
			seed TEXT NOT NULL,
			jokers TEXT NOT NULL,
			runs INTEGER NOT NULL,
			rounds INTEGER NOT NULL,
			mean_score REAL NOT NULL,
			min_score INTEGER NOT NULL,
			max_score INTEGER NOT NULL,
			mean_money REAL NOT NULL,
			elapsed_ms INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS sim_outcomes (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			batch_id TEXT NOT NULL,
			run_index INTEGER NOT NULL,
			total_score INTEGER NOT NULL,
			best_hand INTEGER NOT NULL,
			money INTEGER NOT NULL,
			survivors TEXT NOT NULL,
			FOREIGN KEY (batch_id) REFERENCES sim_batches(id)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_sim_outcomes_batch ON sim_outcomes(batch_id, run_index)`,
	}
	for _, migration := range migrations {
		if _, err := s.db.Exec(migration); err != nil {
			return fmt.Errorf("store: migration failed: %w", err)
		}
	}
	return nil
}

// SaveRecord is a persisted run save.
type SaveRecord struct {
	ID          string
	Name        string
	Seed        string
	SaveVersion int
	Payload     []byte
	CreatedAt   time.Time
}

// PutSave stores a run save blob and returns its id.
func (s *SQLiteStore) PutSave(name, seed string, version int, payload []byte) (string, error) {
	id := uuid.New().String()
	_, err := s.db.Exec(
		`INSERT INTO saves (id, name, seed, save_version, payload) VALUES (?, ?, ?, ?, ?)`,
		id, name, seed, version, string(payload),
	)
	if err != nil {
		return "", fmt.Errorf("store: put save: %w", err)
	}
	return id, nil
}

// GetSave loads a save by id.
func (s *SQLiteStore) GetSave(id string) (*SaveRecord, error) {
	row := s.db.QueryRow(
		`SELECT id, name, seed, save_version, payload, created_at FROM saves WHERE id = ?`, id)
	var rec SaveRecord
	var payload string
	if err := row.Scan(&rec.ID, &rec.Name, &rec.Seed, &rec.SaveVersion, &payload, &rec.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("store: save %q not found", id)
		}
		return nil, fmt.Errorf("store: get save: %w", err)
	}
	rec.Payload = []byte(payload)
	return &rec, nil
}

// LatestSave loads the most recent save under a name.
func (s *SQLiteStore) LatestSave(name string) (*SaveRecord, error) {
	row := s.db.QueryRow(
		`SELECT id, name, seed, save_version, payload, created_at FROM saves
		 WHERE name = ? ORDER BY created_at DESC, rowid DESC LIMIT 1`, name)
	var rec SaveRecord
	var payload string
	if err := row.Scan(&rec.ID, &rec.Name, &rec.Seed, &rec.SaveVersion, &payload, &rec.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("store: no save named %q", name)
		}
		return nil, fmt.Errorf("store: latest save: %w", err)
	}
	rec.Payload = []byte(payload)
	return &rec, nil
}

// BatchRecord is a persisted simulation batch header.
type BatchRecord struct {
	ID        string
	Seed      string
	Jokers    []string
	Runs      int
	Rounds    int
	MeanScore float64
	MinScore  int64
	MaxScore  int64
	MeanMoney float64
	ElapsedMs int64
	CreatedAt time.Time
}

// OutcomeRecord is a persisted per-run simulation outcome.
type OutcomeRecord struct {
	RunIndex   int
	TotalScore int64
	BestHand   int64
	Money      int64
	Survivors  []string
}

// PutBatch stores a batch header plus its outcomes in one transaction.
func (s *SQLiteStore) PutBatch(b *BatchRecord, outcomes []OutcomeRecord) error {
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	jokers, err := json.Marshal(b.Jokers)
	if err != nil {
		return fmt.Errorf("store: encode jokers: %w", err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("store: begin: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO sim_batches
		 (id, seed, jokers, runs, rounds, mean_score, min_score, max_score, mean_money, elapsed_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		b.ID, b.Seed, string(jokers), b.Runs, b.Rounds,
		b.MeanScore, b.MinScore, b.MaxScore, b.MeanMoney, b.ElapsedMs,
	)
	if err != nil {
		return fmt.Errorf("store: insert batch: %w", err)
	}

	stmt, err := tx.Prepare(
		`INSERT INTO sim_outcomes (batch_id, run_index, total_score, best_hand, money, survivors)
		 VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("store: prepare outcomes: %w", err)
	}
	defer stmt.Close()

	for _, o := range outcomes {
		survivors, err := json.Marshal(o.Survivors)
		if err != nil {
			return fmt.Errorf("store: encode survivors: %w", err)
		}
		if _, err := stmt.Exec(b.ID, o.RunIndex, o.TotalScore, o.BestHand, o.Money, string(survivors)); err != nil {
			return fmt.Errorf("store: insert outcome: %w", err)
		}
	}
	return tx.Commit()
}

// GetBatch loads a batch header by id.
func (s *SQLiteStore) GetBatch(id string) (*BatchRecord, error) {
	row := s.db.QueryRow(
		`SELECT id, seed, jokers, runs, rounds, mean_score, min_score, max_score, mean_money, elapsed_ms, created_at
		 FROM sim_batches WHERE id = ?`, id)
	var rec BatchRecord
	var jokers string
	err := row.Scan(&rec.ID, &rec.Seed, &jokers, &rec.Runs, &rec.Rounds,
		&rec.MeanScore, &rec.MinScore, &rec.MaxScore, &rec.MeanMoney, &rec.ElapsedMs, &rec.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("store: batch %q not found", id)
		}
		return nil, fmt.Errorf("store: get batch: %w", err)
	}
	if err := json.Unmarshal([]byte(jokers), &rec.Jokers); err != nil {
		return nil, fmt.Errorf("store: decode jokers: %w", err)
	}
	return &rec, nil
}

// BatchOutcomes loads the outcomes of a batch in run order.
func (s *SQLiteStore) BatchOutcomes(batchID string) ([]OutcomeRecord, error) {
	rows, err := s.db.Query(
		`SELECT run_index, total_score, best_hand, money, survivors
		 FROM sim_outcomes WHERE batch_id = ? ORDER BY run_index`, batchID)
	if err != nil {
		return nil, fmt.Errorf("store: batch outcomes: %w", err)
	}
	defer rows.Close()

	var out []OutcomeRecord
	for rows.Next() {
		var o OutcomeRecord
		var survivors string
		if err := rows.Scan(&o.RunIndex, &o.TotalScore, &o.BestHand, &o.Money, &survivors); err != nil {
			return nil, fmt.Errorf("store: scan outcome: %w", err)
		}
		if err := json.Unmarshal([]byte(survivors), &o.Survivors); err != nil {
			return nil, fmt.Errorf("store: decode survivors: %w", err)
		}
		out = append(out, o)
	}
	return out, rows.Err()
}
