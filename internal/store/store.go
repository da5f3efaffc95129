package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/collectifengineering-lang/wellness-MEP-Calulator-sub004/pkg/calc"
)

// Run is one saved system evaluation.
type Run struct {
	ID             string    `json:"id"`
	ProjectName    string    `json:"project_name"`
	SystemID       string    `json:"system_id"`
	SystemName     string    `json:"system_name"`
	TotalCfm       float64   `json:"total_cfm"`
	TotalLossInWc  float64   `json:"total_in_wc"`
	MaxVelocityFpm float64   `json:"max_velocity_fpm"`
	WarningCount   int       `json:"warning_count"`
	CreatedAt      time.Time `json:"created_at"`
}

// StoredRun is a run together with its full calculation result.
type StoredRun struct {
	Run
	Result calc.Result `json:"result"`
}

// Store persists calculation runs in SQLite.
type Store struct {
	db *sql.DB
}

// Open creates and initializes the run history database at the given path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening history database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging history database: %w", err)
	}

	// WAL allows the serve command to read history while a solve writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling WAL mode: %w", err)
	}
	if _, err := db.Exec("PRAGMA busy_timeout=5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting busy timeout: %w", err)
	}

	s := &Store{db: db}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) initSchema() error {
	schema := `CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		project_name TEXT NOT NULL,
		system_id TEXT NOT NULL,
		system_name TEXT,
		total_cfm REAL NOT NULL,
		total_in_wc REAL NOT NULL,
		max_velocity_fpm REAL NOT NULL,
		warning_count INTEGER NOT NULL,
		result_json TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL
	);`

	indexes := []string{
		`CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_project ON runs(project_name)`,
	}

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("creating runs table: %w", err)
	}
	for _, idx := range indexes {
		if _, err := s.db.Exec(idx); err != nil {
			return fmt.Errorf("creating index: %w", err)
		}
	}

	return nil
}

// SaveResult stores one system result and returns the new run id.
func (s *Store) SaveResult(projectName string, res calc.Result) (string, error) {
	blob, err := json.Marshal(res)
	if err != nil {
		return "", fmt.Errorf("encoding result: %w", err)
	}

	id := uuid.NewString()
	query := `INSERT INTO runs (
		id, project_name, system_id, system_name,
		total_cfm, total_in_wc, max_velocity_fpm, warning_count,
		result_json, created_at
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err = s.db.Exec(query,
		id,
		projectName,
		res.SystemID,
		res.SystemName,
		res.TotalCfm,
		res.TotalLossInWc,
		res.MaxVelocityFpm,
		len(res.Warnings),
		string(blob),
		time.Now().UTC(),
	)
	if err != nil {
		return "", fmt.Errorf("inserting run: %w", err)
	}

	return id, nil
}

// ListRuns returns the most recent runs, newest first. A non-positive limit
// returns up to 20 runs.
func (s *Store) ListRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `SELECT id, project_name, system_id, system_name,
		total_cfm, total_in_wc, max_velocity_fpm, warning_count, created_at
	FROM runs ORDER BY created_at DESC, id LIMIT ?`

	rows, err := s.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(
			&r.ID, &r.ProjectName, &r.SystemID, &r.SystemName,
			&r.TotalCfm, &r.TotalLossInWc, &r.MaxVelocityFpm, &r.WarningCount, &r.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		runs = append(runs, r)
	}

	return runs, rows.Err()
}

// GetRun fetches one run and its full result by id.
func (s *Store) GetRun(id string) (*StoredRun, error) {
	query := `SELECT id, project_name, system_id, system_name,
		total_cfm, total_in_wc, max_velocity_fpm, warning_count, result_json, created_at
	FROM runs WHERE id = ?`

	var sr StoredRun
	var blob string
	err := s.db.QueryRow(query, id).Scan(
		&sr.ID, &sr.ProjectName, &sr.SystemID, &sr.SystemName,
		&sr.TotalCfm, &sr.TotalLossInWc, &sr.MaxVelocityFpm, &sr.WarningCount, &blob, &sr.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("run %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("querying run: %w", err)
	}

	if err := json.Unmarshal([]byte(blob), &sr.Result); err != nil {
		return nil, fmt.Errorf("decoding result: %w", err)
	}

	return &sr, nil
}
