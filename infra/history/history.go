// Package history persists an audit log of served predictions in an
// embedded sqlite database.
package history

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS predictions (
	id               TEXT PRIMARY KEY,
	employee_name    TEXT NOT NULL,
	experience_level TEXT NOT NULL,
	job_title        TEXT NOT NULL,
	company_location TEXT NOT NULL,
	remote_ratio     INTEGER NOT NULL,
	work_year        INTEGER NOT NULL,
	salary_usd       REAL NOT NULL,
	created_at       TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_predictions_created_at ON predictions (created_at);
`

// Entry is one recorded prediction.
type Entry struct {
	ID              uuid.UUID `db:"id"`
	EmployeeName    string    `db:"employee_name"`
	ExperienceLevel string    `db:"experience_level"`
	JobTitle        string    `db:"job_title"`
	CompanyLocation string    `db:"company_location"`
	RemoteRatio     int       `db:"remote_ratio"`
	WorkYear        int       `db:"work_year"`
	SalaryUSD       float64   `db:"salary_usd"`
	CreatedAt       time.Time `db:"created_at"`
}

// Store wraps the sqlite connection.
type Store struct {
	db *sqlx.DB
}

// Open connects to the sqlite file at path (":memory:" works for tests)
// and bootstraps the schema.
func Open(path string) (*Store, error) {
	db, err := sqlx.Connect("sqlite", fmt.Sprintf("%s?_journal=WAL&_timeout=5000", path))
	if err != nil {
		return nil, fmt.Errorf("connecting to history db: %w", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close() //nolint: errcheck
		return nil, fmt.Errorf("bootstrapping history schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close terminates the database connection.
func (s *Store) Close() error {
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("closing history db: %w", err)
	}
	return nil
}

// Record inserts one prediction entry.
func (s *Store) Record(ctx context.Context, e Entry) error {
	_, err := s.db.NamedExecContext(ctx, `
		INSERT INTO predictions (
			id, employee_name, experience_level, job_title,
			company_location, remote_ratio, work_year, salary_usd, created_at
		) VALUES (
			:id, :employee_name, :experience_level, :job_title,
			:company_location, :remote_ratio, :work_year, :salary_usd, :created_at
		)`, e)
	if err != nil {
		return fmt.Errorf("recording prediction: %w", err)
	}
	return nil
}

// Recent returns up to limit entries, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 50
	}

	var entries []Entry
	err := s.db.SelectContext(ctx, &entries, `
		SELECT id, employee_name, experience_level, job_title,
		       company_location, remote_ratio, work_year, salary_usd, created_at
		FROM predictions
		ORDER BY created_at DESC, id
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing predictions: %w", err)
	}
	return entries, nil
}

// Count returns the number of recorded predictions.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM predictions`); err != nil {
		return 0, fmt.Errorf("counting predictions: %w", err)
	}
	return n, nil
}
