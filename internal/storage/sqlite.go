// Package storage provides SQLite-based persistence for the run history.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
//
// The run history is separate from the JSON leaderboard: the leaderboard
// keeps only the ranked top five, while the history keeps every finished
// run for the stats and browser commands.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/yurikov/termsnake/internal/game"
)

// Store manages the SQLite database connection for run persistence.
type Store struct {
	db *sql.DB
}

// Run represents one finished game, from reset to death.
type Run struct {
	ID        int64
	Name      string
	Score     int
	Duration  time.Duration
	CreatedAt time.Time
}

// Stats summarize the stored run history.
type Stats struct {
	Runs      int
	BestScore int
	AvgScore  float64
	TotalPlay time.Duration
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			score INTEGER NOT NULL,
			duration_secs INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_score ON runs(score DESC);
		CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun records a finished run. Returns the ID of the inserted record.
func (s *Store) SaveRun(name string, score int, duration time.Duration) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO runs (name, score, duration_secs) VALUES (?, ?, ?)",
		name, score, int(duration.Seconds()),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopRuns retrieves the N best runs, ordered by score descending with the
// most recent first among ties.
func (s *Store) TopRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	return s.queryRuns(
		`SELECT id, name, score, duration_secs, created_at
		 FROM runs
		 ORDER BY score DESC, created_at DESC
		 LIMIT ?`,
		limit,
	)
}

// RecentRuns retrieves the N most recently finished runs.
func (s *Store) RecentRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	return s.queryRuns(
		`SELECT id, name, score, duration_secs, created_at
		 FROM runs
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
}

func (s *Store) queryRuns(query string, args ...any) ([]Run, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var secs int64
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Name, &r.Score, &secs, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Duration = time.Duration(secs) * time.Second

		// Parse the datetime - handle both time.Time and string
		switch v := createdAt.(type) {
		case time.Time:
			r.CreatedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				r.CreatedAt = parsed
			}
		}
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// RunStats returns aggregate statistics over the whole history.
// All fields are zero when no runs are stored.
func (s *Store) RunStats() (Stats, error) {
	var (
		stats Stats
		best  sql.NullInt64
		avg   sql.NullFloat64
		total sql.NullInt64
	)

	err := s.db.QueryRow(
		"SELECT COUNT(*), MAX(score), AVG(score), SUM(duration_secs) FROM runs",
	).Scan(&stats.Runs, &best, &avg, &total)
	if err != nil {
		return Stats{}, fmt.Errorf("storage: cannot query stats: %w", err)
	}

	if best.Valid {
		stats.BestScore = int(best.Int64)
	}
	if avg.Valid {
		stats.AvgScore = avg.Float64
	}
	if total.Valid {
		stats.TotalPlay = time.Duration(total.Int64) * time.Second
	}

	return stats, nil
}

// ClearRuns deletes the entire run history.
func (s *Store) ClearRuns() error {
	_, err := s.db.Exec("DELETE FROM runs")
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

var _ game.RunRecorder = (*Recorder)(nil)

// Recorder adapts a Store to the game's best-effort run sink. A nil store
// makes it a no-op, so the game can run without a database.
type Recorder struct {
	store  *Store
	logger *log.Logger
}

// NewRecorder wraps store for use by the game loop. logger may be nil.
func NewRecorder(store *Store, logger *log.Logger) *Recorder {
	if logger == nil {
		logger = log.Default()
	}
	return &Recorder{store: store, logger: logger}
}

// RecordRun saves the run, logging instead of failing: history storage must
// never interrupt play.
func (r *Recorder) RecordRun(name string, score int, duration time.Duration) {
	if r.store == nil {
		return
	}
	if _, err := r.store.SaveRun(name, score, duration); err != nil {
		r.logger.Warn("could not record run", "name", name, "score", score, "err", err)
	}
}
