package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/unicode/norm"
)

// NormalizeUsername trims surrounding whitespace and applies Unicode NFC
// so visually identical names map to one player row.
func NormalizeUsername(username string) string {
	return norm.NFC.String(strings.TrimSpace(username))
}

// SaveScore records a finished game for a username, creating the player
// row on first sight. Player lookup and score insert happen in a single
// transaction.
//
// Row ids are time-sortable UUIDv7 strings.
func (s *Store) SaveScore(ctx context.Context, username string, score, linesCleared, level int) error {
	name := NormalizeUsername(username)
	if name == "" {
		return fmt.Errorf("save score: username is required")
	}
	if score < 0 {
		return fmt.Errorf("save score: score must be non-negative, got %d", score)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("save score: begin tx: %w", err)
	}
	defer tx.Rollback() // No-op if committed

	playerID, err := getOrCreatePlayer(ctx, tx, name)
	if err != nil {
		return fmt.Errorf("save score: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO scores (id, player_id, score, lines_cleared, level)
		VALUES (?, ?, ?, ?, ?)
	`,
		uuid.Must(uuid.NewV7()).String(),
		playerID,
		score,
		linesCleared,
		level,
	)
	if err != nil {
		return fmt.Errorf("save score: insert score: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("save score: commit: %w", err)
	}

	return nil
}

// getOrCreatePlayer returns the id of the player row for a normalized
// username, inserting it if absent.
func getOrCreatePlayer(ctx context.Context, tx *sql.Tx, username string) (string, error) {
	var id string
	err := tx.QueryRowContext(ctx,
		`SELECT id FROM players WHERE username = ?`, username,
	).Scan(&id)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("lookup player: %w", err)
	}

	id = uuid.Must(uuid.NewV7()).String()
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO players (id, username) VALUES (?, ?)`, id, username,
	); err != nil {
		return "", fmt.Errorf("create player: %w", err)
	}

	return id, nil
}
