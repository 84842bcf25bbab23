package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// DefaultTopLimit is the leaderboard size used when callers pass a
// non-positive limit.
const DefaultTopLimit = 10

// ScoreEntry is one leaderboard row.
type ScoreEntry struct {
	Username     string    `json:"username"`
	Score        int       `json:"score"`
	LinesCleared int       `json:"lines_cleared"`
	Level        int       `json:"level"`
	CreatedAt    time.Time `json:"timestamp"`
}

// TopScores returns up to limit entries ordered by score descending;
// ties break on earliest submission.
//
// Returns an empty slice (not nil) when no scores are recorded.
func (s *Store) TopScores(ctx context.Context, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = DefaultTopLimit
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT p.username, sc.score, sc.lines_cleared, sc.level, sc.created_at
		FROM scores sc
		JOIN players p ON sc.player_id = p.id
		ORDER BY sc.score DESC, sc.created_at ASC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("query top scores: %w", err)
	}
	defer rows.Close()

	entries := []ScoreEntry{}
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate top scores: %w", err)
	}

	return entries, nil
}

// PlayerBest returns a player's highest score, or nil when the player
// has no recorded games.
func (s *Store) PlayerBest(ctx context.Context, username string) (*ScoreEntry, error) {
	name := NormalizeUsername(username)

	row := s.db.QueryRowContext(ctx, `
		SELECT p.username, sc.score, sc.lines_cleared, sc.level, sc.created_at
		FROM scores sc
		JOIN players p ON sc.player_id = p.id
		WHERE p.username = ?
		ORDER BY sc.score DESC, sc.created_at ASC
		LIMIT 1
	`, name)

	entry, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &entry, nil
}

// scanner covers *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(row scanner) (ScoreEntry, error) {
	var entry ScoreEntry
	var createdAt string
	if err := row.Scan(&entry.Username, &entry.Score, &entry.LinesCleared, &entry.Level, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ScoreEntry{}, err
		}
		return ScoreEntry{}, fmt.Errorf("scan score entry: %w", err)
	}

	ts, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return ScoreEntry{}, fmt.Errorf("parse score timestamp %q: %w", createdAt, err)
	}
	entry.CreatedAt = ts

	return entry, nil
}
