// Package testutil provides shared helpers for tests that need a real
// score store backing them.
package testutil

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/blockfall/blockfall/internal/store"
)

// SeedScore is one row to insert via SeedScores.
type SeedScore struct {
	Username string
	Score    int
	Lines    int
	Level    int
}

// OpenScoreStore opens a score store backed by a fresh database file in a
// per-test temp directory. The store is closed on test cleanup.
func OpenScoreStore(tb testing.TB) *store.Store {
	tb.Helper()

	st, err := store.Open(filepath.Join(tb.TempDir(), "scores.db"))
	if err != nil {
		tb.Fatalf("open score store: %v", err)
	}
	tb.Cleanup(func() { _ = st.Close() })

	return st
}

// SeedScores inserts the given rows in order. Insertion order determines
// created_at, which breaks leaderboard ties.
func SeedScores(tb testing.TB, st *store.Store, rows []SeedScore) {
	tb.Helper()

	for _, r := range rows {
		if err := st.SaveScore(context.Background(), r.Username, r.Score, r.Lines, r.Level); err != nil {
			tb.Fatalf("seed score for %q: %v", r.Username, err)
		}
	}
}
