// Package server exposes the score store over HTTP.
//
// The API mirrors what the terminal client needs: submit a finished
// game's score and read the leaderboard. All responses are JSON.
package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/blockfall/blockfall/internal/store"
)

// Server handles the score API. It is a thin layer over the store; all
// validation beyond request-shape checks lives there.
type Server struct {
	store  *store.Store
	logger *slog.Logger
}

// New creates a Server backed by the given store.
func New(st *store.Store, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{store: st, logger: logger}
}

// Handler returns the routed HTTP handler.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(s.requestLogger)

	r.Route("/api", func(r chi.Router) {
		r.Post("/score", s.handleSaveScore)
		r.Get("/top-scores", s.handleTopScores)
		r.Get("/health", s.handleHealth)
	})

	return r
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"duration", time.Since(start),
		)
	})
}

// scoreRequest is the body of POST /api/score. Score is a pointer so a
// missing field is distinguishable from a legitimate zero.
type scoreRequest struct {
	Username     string `json:"username"`
	Score        *int   `json:"score"`
	LinesCleared int    `json:"lines_cleared"`
	Level        int    `json:"level"`
}

type scoreResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (s *Server) handleSaveScore(w http.ResponseWriter, r *http.Request) {
	var req scoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondJSON(w, http.StatusBadRequest, scoreResponse{Message: "invalid JSON body"})
		return
	}
	if req.Username == "" || req.Score == nil {
		s.respondJSON(w, http.StatusBadRequest, scoreResponse{Message: "missing required data"})
		return
	}

	level := req.Level
	if level < 1 {
		level = 1
	}

	if err := s.store.SaveScore(r.Context(), req.Username, *req.Score, req.LinesCleared, level); err != nil {
		s.logger.Error("save score failed", "username", req.Username, "error", err)
		s.respondJSON(w, http.StatusBadRequest, scoreResponse{Message: err.Error()})
		return
	}

	s.respondJSON(w, http.StatusOK, scoreResponse{Success: true, Message: "score saved"})
}

func (s *Server) handleTopScores(w http.ResponseWriter, r *http.Request) {
	entries, err := s.store.TopScores(r.Context(), store.DefaultTopLimit)
	if err != nil {
		s.logger.Error("top scores query failed", "error", err)
		s.respondError(w, http.StatusInternalServerError, "failed to load scores")
		return
	}

	s.respondJSON(w, http.StatusOK, entries)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("encode response failed", "error", err)
	}
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, map[string]string{"error": message})
}
