package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/netai-lab/timetravel-eval/internal/report"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS runs (
    id TEXT PRIMARY KEY,
    suite TEXT NOT NULL,
    created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS results (
    id INTEGER PRIMARY KEY,
    run_id TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
    scenario TEXT NOT NULL,
    source TEXT NOT NULL,
    precision REAL NOT NULL,
    recall REAL NOT NULL,
    f1_score REAL NOT NULL,
    details JSON
);

CREATE INDEX IF NOT EXISTS idx_results_run ON results(run_id);
`

// SQLite keeps a history of evaluation runs in an embedded database so
// model outputs can be compared across runs.
type SQLite struct {
	db    *sql.DB
	runID uuid.UUID
}

// OpenSQLite opens or creates the history database at path and
// bootstraps the schema.
func OpenSQLite(ctx context.Context, path string) (*SQLite, error) {
	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_foreign_keys=on&_busy_timeout=30000")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	if _, err := db.ExecContext(ctx, schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &SQLite{db: db}, nil
}

// StartRun registers the run that every following Save attaches to.
func (s *SQLite) StartRun(ctx context.Context, runID uuid.UUID, suiteName string) error {
	if _, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (id, suite) VALUES (?, ?)`,
		runID.String(), suiteName,
	); err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	s.runID = runID
	return nil
}

func (s *SQLite) Save(ctx context.Context, scenario string, rec *report.Record) error {
	if s.runID == uuid.Nil {
		return fmt.Errorf("no active run; call StartRun first")
	}

	details, err := json.Marshal(rec.Details)
	if err != nil {
		return fmt.Errorf("marshal details: %w", err)
	}

	if _, err := s.db.ExecContext(ctx, `
		INSERT INTO results (run_id, scenario, source, precision, recall, f1_score, details)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		s.runID.String(), scenario, rec.Source,
		rec.Metrics.Precision, rec.Metrics.Recall, rec.Metrics.F1, string(details),
	); err != nil {
		return fmt.Errorf("insert result: %w", err)
	}
	return nil
}

func (s *SQLite) Close() error {
	return s.db.Close()
}

// RunInfo is one row of the run history with mean scores across the
// run's recorded results.
type RunInfo struct {
	ID            uuid.UUID
	Suite         string
	CreatedAt     time.Time
	Sources       int
	MeanPrecision float64
	MeanRecall    float64
	MeanF1        float64
}

// Runs lists the recorded runs, newest first.
func (s *SQLite) Runs(ctx context.Context) ([]RunInfo, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT r.id, r.suite, r.created_at,
		       COUNT(res.id),
		       COALESCE(AVG(res.precision), 0),
		       COALESCE(AVG(res.recall), 0),
		       COALESCE(AVG(res.f1_score), 0)
		FROM runs r
		LEFT JOIN results res ON res.run_id = r.id
		GROUP BY r.id, r.suite, r.created_at
		ORDER BY r.created_at DESC, r.id`)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var infos []RunInfo
	for rows.Next() {
		var (
			info RunInfo
			id   string
		)
		if err := rows.Scan(&id, &info.Suite, &info.CreatedAt, &info.Sources,
			&info.MeanPrecision, &info.MeanRecall, &info.MeanF1); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		parsed, err := uuid.Parse(id)
		if err != nil {
			return nil, fmt.Errorf("parse run id: %w", err)
		}
		info.ID = parsed
		infos = append(infos, info)
	}
	return infos, rows.Err()
}
