// Package store persists final game results.
//
// Backed by SQLite (mattn/go-sqlite3) with WAL mode. Two tables: players
// (one row per unique username) and scores (one row per finished game,
// linked to its player). Usernames are NFC-normalized and trimmed before
// storage so visually identical names share a single player row.
//
// The store is a thin collaborator: the engine never talks to it
// directly. Scores arrive either through the HTTP API (internal/server)
// or from the terminal client when a game ends.
package store
