package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blockfall/blockfall/internal/store"
	"github.com/blockfall/blockfall/internal/testutil"
)

func newTestServer(t *testing.T) (*Server, *store.Store) {
	t.Helper()

	st := testutil.OpenScoreStore(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return New(st, logger), st
}

func postScore(t *testing.T, h http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/score", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	return rec
}

func TestHandleSaveScore_Persists(t *testing.T) {
	srv, st := newTestServer(t)

	rec := postScore(t, srv.Handler(), `{"username":"alice","score":1200,"lines_cleared":14,"level":2}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp scoreResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)

	best, err := st.PlayerBest(context.Background(), "alice")
	require.NoError(t, err)
	require.NotNil(t, best)
	assert.Equal(t, 1200, best.Score)
	assert.Equal(t, 14, best.LinesCleared)
	assert.Equal(t, 2, best.Level)
}

func TestHandleSaveScore_ZeroScoreAccepted(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := postScore(t, srv.Handler(), `{"username":"alice","score":0}`)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandleSaveScore_MissingFields(t *testing.T) {
	srv, _ := newTestServer(t)
	h := srv.Handler()

	cases := map[string]string{
		"no username":    `{"score":100}`,
		"no score":       `{"username":"alice"}`,
		"empty body":     `{}`,
		"malformed JSON": `{"username":`,
	}

	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			rec := postScore(t, h, body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)

			var resp scoreResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.False(t, resp.Success)
			assert.NotEmpty(t, resp.Message)
		})
	}
}

func TestHandleSaveScore_NegativeScoreRejected(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := postScore(t, srv.Handler(), `{"username":"alice","score":-5}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleTopScores_OrderedDescending(t *testing.T) {
	srv, st := newTestServer(t)

	testutil.SeedScores(t, st, []testutil.SeedScore{
		{Username: "alice", Score: 1200, Lines: 14, Level: 2},
		{Username: "bob", Score: 3600, Lines: 31, Level: 4},
		{Username: "carol", Score: 80, Lines: 1, Level: 1},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/top-scores", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var entries []store.ScoreEntry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &entries))
	require.Len(t, entries, 3)
	assert.Equal(t, "bob", entries[0].Username)
	assert.Equal(t, "alice", entries[1].Username)
	assert.Equal(t, "carol", entries[2].Username)
}

func TestHandleTopScores_EmptyIsJSONArray(t *testing.T) {
	srv, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/top-scores", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestHandleHealth(t *testing.T) {
	srv, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
