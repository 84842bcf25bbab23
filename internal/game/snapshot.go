package game

import "time"

// PieceView is a read-only copy of a piece for rendering.
type PieceView struct {
	Kind  Kind
	Shape [][]bool
	X, Y  int
}

// Snapshot is a read-only copy of everything a renderer needs for one
// frame: the locked grid, the active and next pieces, and the counters.
// The grid and shape matrices are value copies; mutating a snapshot
// never affects the engine.
type Snapshot struct {
	Grid         [Height][Width]Kind
	Active       PieceView
	Next         PieceView
	Score        int
	Lines        int
	Level        int
	Status       Status
	DropInterval time.Duration
}

// Snapshot captures the current state. Renderers call this once per tick
// and issue no mutations.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Grid:         g.board.cells,
		Active:       pieceView(g.active),
		Next:         pieceView(g.next),
		Score:        g.score,
		Lines:        g.lines,
		Level:        g.level,
		Status:       g.status,
		DropInterval: g.DropInterval(),
	}
}

func pieceView(p Piece) PieceView {
	return PieceView{
		Kind:  p.Kind,
		Shape: cloneShape(p.Shape),
		X:     p.X,
		Y:     p.Y,
	}
}
