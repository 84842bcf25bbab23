package game

// Board dimensions in cells. These never change.
const (
	Width  = 10
	Height = 20
)

// Board is the persistent grid of locked cells. Each cell holds the Kind
// of the piece that locked there, or KindNone. The zero value is an
// empty board; Board is a value type and copies freely.
type Board struct {
	cells [Height][Width]Kind
}

// Cell returns the locked kind at (x, y).
func (b *Board) Cell(x, y int) Kind {
	return b.cells[y][x]
}

// SetCell locks a kind into (x, y) directly. Used by the scenario
// harness and tests to pre-fill board states.
func (b *Board) SetCell(x, y int, k Kind) {
	b.cells[y][x] = k
}

// IsValidPosition reports whether a shape placed with its origin at
// (x, y) fits: every occupied cell must be horizontally in [0, Width),
// above the floor, and not overlap a locked cell. Cells with board-y < 0
// are permitted so pieces can sit partially above the visible board
// right after spawning.
//
// Pure query; no side effects.
func (b *Board) IsValidPosition(shape [][]bool, x, y int) bool {
	for sy, row := range shape {
		for sx, occupied := range row {
			if !occupied {
				continue
			}
			bx := x + sx
			by := y + sy
			if bx < 0 || bx >= Width {
				return false
			}
			if by >= Height {
				return false
			}
			if by >= 0 && b.cells[by][bx] != KindNone {
				return false
			}
		}
	}
	return true
}

// merge locks a piece's occupied cells into the grid using the piece's
// kind. Cells above the visible board (board-y < 0) are dropped.
func (b *Board) merge(p Piece) {
	for sy, row := range p.Shape {
		for sx, occupied := range row {
			if occupied && p.Y+sy >= 0 {
				b.cells[p.Y+sy][p.X+sx] = p.Kind
			}
		}
	}
}

// clearFullRows removes every complete row: the rows above shift down
// and an empty row appears at the top, so the board stays Height rows
// tall. The same index is re-examined after a removal so adjacent full
// rows collapse within a single lock event. Returns the number of rows
// removed.
func (b *Board) clearFullRows() int {
	cleared := 0
	for y := 0; y < Height; y++ {
		if !b.rowFull(y) {
			continue
		}
		// Shift rows 0..y-1 down by one; copy handles the overlap.
		copy(b.cells[1:y+1], b.cells[0:y])
		b.cells[0] = [Width]Kind{}
		cleared++
		y-- // rows above shifted into this index
	}
	return cleared
}

// rowFull reports whether every cell in row y is occupied.
func (b *Board) rowFull(y int) bool {
	for x := 0; x < Width; x++ {
		if b.cells[y][x] == KindNone {
			return false
		}
	}
	return true
}
