package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// openTestStore opens a fresh store in a per-test temp directory and
// closes it on cleanup.
func openTestStore(t *testing.T) *Store {
	t.Helper()

	st, err := Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	return st
}
