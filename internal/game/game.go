package game

import (
	"time"

	"github.com/blockfall/blockfall/internal/tuning"
)

// Status enumerates the engine's lifecycle states. Over is terminal
// until an explicit Restart; Paused suspends gravity and input-driven
// movement but not rendering.
type Status int

const (
	StatusRunning Status = iota
	StatusPaused
	StatusOver
)

func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusPaused:
		return "paused"
	case StatusOver:
		return "over"
	default:
		return "unknown"
	}
}

// Event is a discrete input event. Events map 1:1 to engine operations
// and are ignored entirely once the game is over.
type Event int

const (
	EventMoveLeft Event = iota
	EventMoveRight
	EventSoftDrop
	EventRotate
	EventHardDrop
	EventTogglePause
)

// Game is the falling-block engine: a synchronous state machine advanced
// by discrete input events and per-frame Step calls.
//
// CRITICAL: the engine has no internal threads and no locks. All
// mutation happens in the caller's single driving loop; every method
// completes synchronously. Callers must not share a Game across
// goroutines.
type Game struct {
	board  Board
	active Piece
	next   Piece

	score int
	lines int
	level int

	status Status

	tun    tuning.Tuning
	source PieceSource

	sinceDrop time.Duration // elapsed since the last automatic drop
}

// Option configures a Game.
type Option func(*Game)

// WithSource overrides the piece source. Defaults to a time-seeded
// RandomSource; tests use FixedSource for scripted sequences.
func WithSource(src PieceSource) Option {
	return func(g *Game) {
		g.source = src
	}
}

// WithTuning overrides the gameplay tuning. Defaults to
// tuning.Default(), the canonical rule set.
func WithTuning(t tuning.Tuning) Option {
	return func(g *Game) {
		g.tun = t
	}
}

// WithBoard pre-fills the board with locked cells. Used by the scenario
// harness and by tests that start mid-game.
func WithBoard(b Board) Option {
	return func(g *Game) {
		g.board = b
	}
}

// New creates a game and spawns the first piece. The game starts running
// immediately; the caller drives it from there.
func New(opts ...Option) *Game {
	g := &Game{
		level:  1,
		status: StatusRunning,
		tun:    tuning.Default(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.source == nil {
		g.source = NewRandomSource(time.Now().UnixNano())
	}
	g.next = NewPiece(g.source.Next())
	g.spawn()
	return g
}

// spawn promotes the buffered next piece to active, centers it
// horizontally (integer floor division) at the top row, and draws a
// fresh next piece. A blocked spawn position ends the game; the blocked
// piece stays visible for rendering.
func (g *Game) spawn() {
	g.active = g.next
	g.active.X = (Width - len(g.active.Shape[0])) / 2
	g.active.Y = 0
	g.next = NewPiece(g.source.Next())
	g.sinceDrop = 0
	if !g.board.IsValidPosition(g.active.Shape, g.active.X, g.active.Y) {
		g.status = StatusOver
	}
}

// Move shifts the active piece by (dx, dy) if the target position is
// valid and reports whether the move was committed. A blocked downward
// move (dy > 0) locks the piece; blocked horizontal moves are silently
// ignored.
func (g *Game) Move(dx, dy int) bool {
	if g.status != StatusRunning {
		return false
	}
	if g.board.IsValidPosition(g.active.Shape, g.active.X+dx, g.active.Y+dy) {
		g.active.X += dx
		g.active.Y += dy
		return true
	}
	if dy > 0 {
		g.lock()
	}
	return false
}

// Rotate turns the active piece 90 degrees clockwise. A rotation that
// would leave the board or overlap locked cells is rejected outright and
// the shape is unchanged; there is no wall-kick nudging.
func (g *Game) Rotate() bool {
	if g.status != StatusRunning {
		return false
	}
	shape := rotatedCW(g.active.Shape)
	if !g.board.IsValidPosition(shape, g.active.X, g.active.Y) {
		return false
	}
	g.active.Shape = shape
	return true
}

// SoftDrop advances the active piece one row. A blocked drop locks the
// piece in place.
func (g *Game) SoftDrop() bool {
	return g.Move(0, 1)
}

// HardDrop sends the active piece straight down until it locks, awarding
// the hard-drop bonus for every row descended before the lock. Returns
// the number of rows dropped.
func (g *Game) HardDrop() int {
	if g.status != StatusRunning {
		return 0
	}
	rows := 0
	for g.Move(0, 1) {
		rows++
		g.score += g.tun.HardDropBonus
	}
	return rows
}

// lock merges the active piece into the board, clears completed rows,
// and spawns the next piece.
func (g *Game) lock() {
	g.board.merge(g.active)
	g.clearLines()
	g.spawn()
}

// clearLines removes completed rows and applies the scoring rules. The
// line bonus scales with the pre-clear level; the level is derived from
// the total line count afterwards.
func (g *Game) clearLines() {
	n := g.board.clearFullRows()
	if n == 0 {
		return
	}
	g.lines += n
	g.score += g.tun.LineBonus[min(n, len(g.tun.LineBonus)-1)] * g.level
	g.level = g.lines/g.tun.LinesPerLevel + 1
}

// Step advances the gravity timer by the elapsed frame time. Once the
// accumulated time reaches the current drop interval, the active piece
// falls one row and the timer resets. At most one drop per Step. Paused
// and finished games do not advance.
func (g *Game) Step(elapsed time.Duration) {
	if g.status != StatusRunning {
		return
	}
	g.sinceDrop += elapsed
	if g.sinceDrop >= g.DropInterval() {
		g.Move(0, 1)
		g.sinceDrop = 0
	}
}

// TogglePause flips between running and paused. A finished game is not
// resumable; use Restart.
func (g *Game) TogglePause() {
	switch g.status {
	case StatusRunning:
		g.status = StatusPaused
	case StatusPaused:
		g.status = StatusRunning
	}
}

// Restart unconditionally reinitializes the game: empty board, zeroed
// counters, level 1, base drop interval, and a fresh spawn. The piece
// source and tuning carry over.
func (g *Game) Restart() {
	g.board = Board{}
	g.score = 0
	g.lines = 0
	g.level = 1
	g.status = StatusRunning
	g.sinceDrop = 0
	g.next = NewPiece(g.source.Next())
	g.spawn()
}

// Apply dispatches a discrete input event to the matching operation.
// Every event is ignored once the game is over.
func (g *Game) Apply(ev Event) {
	if g.status == StatusOver {
		return
	}
	switch ev {
	case EventMoveLeft:
		g.Move(-1, 0)
	case EventMoveRight:
		g.Move(1, 0)
	case EventSoftDrop:
		g.SoftDrop()
	case EventRotate:
		g.Rotate()
	case EventHardDrop:
		g.HardDrop()
	case EventTogglePause:
		g.TogglePause()
	}
}

// Score returns the current score. Monotonically non-decreasing between
// restarts.
func (g *Game) Score() int {
	return g.score
}

// Lines returns the total number of cleared lines.
func (g *Game) Lines() int {
	return g.lines
}

// Level returns the current level, derived from cleared lines.
func (g *Game) Level() int {
	return g.level
}

// Status returns the lifecycle state.
func (g *Game) Status() Status {
	return g.status
}

// DropInterval returns the current time between automatic drops, derived
// from the level.
func (g *Game) DropInterval() time.Duration {
	return g.tun.IntervalForLevel(g.level)
}

// IsValidPosition exposes the board's collision query for renderers
// (e.g. ghost piece placement).
func (g *Game) IsValidPosition(shape [][]bool, x, y int) bool {
	return g.board.IsValidPosition(shape, x, y)
}
