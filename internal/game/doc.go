// Package game implements the falling-block puzzle engine.
//
// The engine is a synchronous state machine. It owns the board grid, the
// active and next pieces, and the score/level counters, and it exposes
// mutation operations (move, rotate, hard drop) plus a read-only Snapshot
// for renderers.
//
// ARCHITECTURE:
//
// Caller-Driven Loop:
// The engine never runs on its own. An external loop calls Step with the
// elapsed frame time for gravity and Apply for discrete input events.
// Every method completes synchronously within one call; there are no
// goroutines, no channels, and no locks. The engine is exclusively owned
// and mutated by its single driving loop.
//
// Piece Lifecycle:
// spawn -> active (moved/rotated in place) -> locked into the board ->
// line clear -> next spawn. A blocked spawn position is the terminal
// game-over state; it is a normal state transition, not an error. All
// operations are total functions over well-formed inputs.
//
// Determinism:
// Randomness lives behind the PieceSource interface. Production code
// uses RandomSource (independent uniform draws, no bag fairness); tests
// and the scenario harness use FixedSource for scripted sequences.
package game
