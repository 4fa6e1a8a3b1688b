// Package storage provides SQLite-based persistence for finished matches.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/proto-pong/internal/pong"
)

// DefaultPath is where the match history lives unless told otherwise.
const DefaultPath = "~/.protopong/history.db"

// Store manages the SQLite database connection for match history.
type Store struct {
	db *sql.DB
}

// Match is a stored match result.
type Match struct {
	ID         int64
	Mode       string
	ScoreRight int
	ScoreLeft  int
	Winner     string // "right", "left" or "none"
	EndReason  string // "completed" or "aborted"
	Ticks      int
	CreatedAt  time.Time
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
		CREATE TABLE IF NOT EXISTS matches (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			mode TEXT NOT NULL,
			score_right INTEGER NOT NULL DEFAULT 0,
			score_left INTEGER NOT NULL DEFAULT 0,
			winner TEXT NOT NULL,
			end_reason TEXT NOT NULL,
			ticks INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_matches_mode ON matches(mode);
		CREATE INDEX IF NOT EXISTS idx_matches_created ON matches(created_at DESC);
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

// SaveMatch records a finished match.
// Returns the ID of the inserted record.
func (s *Store) SaveMatch(res pong.MatchResult) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO matches (mode, score_right, score_left, winner, end_reason, ticks)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		res.Mode.String(), res.ScoreA, res.ScoreB, res.Winner.String(), string(res.Reason), res.Ticks,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save match: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// Recorder returns a match-end callback that saves every result. Failures are
// logged and never interrupt the game. A nil store records nothing.
func (s *Store) Recorder(logger *log.Logger) func(pong.MatchResult) {
	if s == nil {
		return nil
	}
	return func(res pong.MatchResult) {
		id, err := s.SaveMatch(res)
		if err != nil {
			if logger != nil {
				logger.Warn("could not save match", "error", err)
			}
			return
		}
		if logger != nil {
			logger.Debug("match saved", "id", id, "mode", res.Mode)
		}
	}
}

const matchColumns = `id, mode, score_right, score_left, winner, end_reason, ticks, created_at`

// MatchByID retrieves a match. Returns nil if it does not exist.
func (s *Store) MatchByID(id int64) (*Match, error) {
	row := s.db.QueryRow(`SELECT `+matchColumns+` FROM matches WHERE id = ?`, id)
	m, err := scanMatch(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query match: %w", err)
	}
	return &m, nil
}

// RecentMatches retrieves the most recent matches, newest first.
// An empty mode matches every mode.
func (s *Store) RecentMatches(mode string, limit int) ([]Match, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+matchColumns+`
		 FROM matches
		 WHERE ? = '' OR mode = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		mode, mode, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query matches: %w", err)
	}
	defer rows.Close()

	var matches []Match
	for rows.Next() {
		m, err := scanMatch(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		matches = append(matches, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return matches, nil
}

// ClearMatches deletes the whole history.
func (s *Store) ClearMatches() error {
	if _, err := s.db.Exec("DELETE FROM matches"); err != nil {
		return fmt.Errorf("storage: cannot clear matches: %w", err)
	}
	return nil
}

// ModeStats contains aggregated statistics for one mode.
type ModeStats struct {
	Mode       string
	Matches    int
	Completed  int
	RightWins  int
	LeftWins   int
	AvgTicks   float64
	LastPlayed time.Time
}

// Aborted returns the number of abandoned matches.
func (m ModeStats) Aborted() int {
	return m.Matches - m.Completed
}

// Stats retrieves statistics for every mode that has been played.
func (s *Store) Stats() (map[string]*ModeStats, error) {
	rows, err := s.db.Query(
		`SELECT mode,
		        COUNT(*),
		        SUM(CASE WHEN end_reason = 'completed' THEN 1 ELSE 0 END),
		        SUM(CASE WHEN winner = 'right' THEN 1 ELSE 0 END),
		        SUM(CASE WHEN winner = 'left' THEN 1 ELSE 0 END),
		        AVG(ticks),
		        MAX(created_at)
		 FROM matches
		 GROUP BY mode`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*ModeStats)
	for rows.Next() {
		var st ModeStats
		var lastPlayed any
		if err := rows.Scan(&st.Mode, &st.Matches, &st.Completed, &st.RightWins, &st.LeftWins,
			&st.AvgTicks, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.LastPlayed = parseTime(lastPlayed)
		stats[st.Mode] = &st
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanMatch(sc scanner) (Match, error) {
	var m Match
	var createdAt any
	if err := sc.Scan(&m.ID, &m.Mode, &m.ScoreRight, &m.ScoreLeft, &m.Winner,
		&m.EndReason, &m.Ticks, &createdAt); err != nil {
		return Match{}, err
	}
	m.CreatedAt = parseTime(createdAt)
	return m, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
