// Package storage provides SQLite-based persistence for high scores and
// per-level run statistics.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// DefaultPath is the database location used when none is given.
const DefaultPath = "~/.tether/tether.db"

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// ScoreEntry represents a single high score record.
type ScoreEntry struct {
	ID         int64
	Player     string
	Score      int
	Levels     int    // Levels cleared in the run
	Difficulty string // Difficulty preset name
	CreatedAt  time.Time
}

// Outcome is how a level attempt ended.
type Outcome string

const (
	OutcomeCleared Outcome = "cleared"
	OutcomeDied    Outcome = "died"
	OutcomeQuit    Outcome = "quit"
)

// LevelRun is one attempt at a level.
type LevelRun struct {
	ID        int64
	LevelID   string
	Player    string
	Outcome   Outcome
	Duration  time.Duration
	Distance  int // Pixels travelled
	Kills     int
	CreatedAt time.Time
}

// LevelStats aggregates the runs of one level.
type LevelStats struct {
	LevelID  string
	Runs     int
	Clears   int
	Deaths   int
	BestTime time.Duration // Fastest clear, zero if never cleared
	Kills    int
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

	// Create parent directories
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
		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			player TEXT NOT NULL DEFAULT '',
			score INTEGER NOT NULL,
			levels INTEGER NOT NULL DEFAULT 0,
			difficulty TEXT NOT NULL DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(score DESC);

		CREATE TABLE IF NOT EXISTS level_runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			level_id TEXT NOT NULL,
			player TEXT NOT NULL DEFAULT '',
			outcome TEXT NOT NULL,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			distance INTEGER NOT NULL DEFAULT 0,
			kills INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_level_runs_level ON level_runs(level_id);
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

// SaveScore records a finished run.
// Returns the ID of the inserted record.
func (s *Store) SaveScore(e ScoreEntry) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO scores (player, score, levels, difficulty) VALUES (?, ?, ?, ?)",
		e.Player, e.Score, e.Levels, e.Difficulty,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopScores retrieves the top N scores ordered by score descending.
func (s *Store) TopScores(limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, player, score, levels, difficulty, created_at
		 FROM scores
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Player, &e.Score, &e.Levels, &e.Difficulty, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// HighScore returns the highest score.
// Returns 0 if no scores exist.
func (s *Store) HighScore() (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow("SELECT MAX(score) FROM scores").Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// ClearScores deletes all scores and level runs.
func (s *Store) ClearScores() error {
	if _, err := s.db.Exec("DELETE FROM scores; DELETE FROM level_runs;"); err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// RecordLevelRun stores one level attempt.
func (s *Store) RecordLevelRun(r LevelRun) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO level_runs (level_id, player, outcome, duration_ms, distance, kills)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		r.LevelID, r.Player, string(r.Outcome), r.Duration.Milliseconds(), r.Distance, r.Kills,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot record level run: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// BestLevelTime returns the fastest clear of a level.
// ok is false if the level was never cleared.
func (s *Store) BestLevelTime(levelID string) (best time.Duration, ok bool, err error) {
	var ms sql.NullInt64
	err = s.db.QueryRow(
		"SELECT MIN(duration_ms) FROM level_runs WHERE level_id = ? AND outcome = ?",
		levelID, string(OutcomeCleared),
	).Scan(&ms)
	if err != nil {
		return 0, false, fmt.Errorf("storage: cannot query best time: %w", err)
	}
	if !ms.Valid {
		return 0, false, nil
	}
	return time.Duration(ms.Int64) * time.Millisecond, true, nil
}

// LevelStatsFor aggregates the runs of one level. A level with no runs
// returns zero stats.
func (s *Store) LevelStatsFor(levelID string) (LevelStats, error) {
	all, err := s.queryStats("WHERE level_id = ?", levelID)
	if err != nil {
		return LevelStats{}, err
	}
	if len(all) == 0 {
		return LevelStats{LevelID: levelID}, nil
	}
	return all[0], nil
}

// AllLevelStats aggregates runs for every level that has any, by level ID.
func (s *Store) AllLevelStats() ([]LevelStats, error) {
	return s.queryStats("")
}

func (s *Store) queryStats(where string, args ...any) ([]LevelStats, error) {
	rows, err := s.db.Query(
		`SELECT level_id,
		        COUNT(*),
		        COALESCE(SUM(CASE WHEN outcome = 'cleared' THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(CASE WHEN outcome = 'died' THEN 1 ELSE 0 END), 0),
		        MIN(CASE WHEN outcome = 'cleared' THEN duration_ms END),
		        COALESCE(SUM(kills), 0)
		 FROM level_runs `+where+`
		 GROUP BY level_id
		 ORDER BY level_id`,
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query level stats: %w", err)
	}
	defer rows.Close()

	var stats []LevelStats
	for rows.Next() {
		var st LevelStats
		var best sql.NullInt64
		if err := rows.Scan(&st.LevelID, &st.Runs, &st.Clears, &st.Deaths, &best, &st.Kills); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		if best.Valid {
			st.BestTime = time.Duration(best.Int64) * time.Millisecond
		}
		stats = append(stats, st)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return stats, nil
}

// RecentRuns returns the latest level attempts, newest first.
func (s *Store) RecentRuns(limit int) ([]LevelRun, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, level_id, player, outcome, duration_ms, distance, kills, created_at
		 FROM level_runs
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query level runs: %w", err)
	}
	defer rows.Close()

	var runs []LevelRun
	for rows.Next() {
		var r LevelRun
		var outcome string
		var ms int64
		var createdAt any
		if err := rows.Scan(&r.ID, &r.LevelID, &r.Player, &outcome, &ms, &r.Distance, &r.Kills, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Outcome = Outcome(outcome)
		r.Duration = time.Duration(ms) * time.Millisecond
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return runs, nil
}

// parseTime handles the driver returning DATETIME as time.Time or string.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
