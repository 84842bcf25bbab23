package game

import "fmt"

// Kind identifies one of the seven canonical tetromino shapes.
// KindNone marks an empty board cell.
type Kind int

const (
	KindNone Kind = iota
	KindI
	KindO
	KindT
	KindS
	KindZ
	KindJ
	KindL
)

// Kinds lists the seven spawnable kinds. Piece sources draw from this
// list; KindNone is never spawned.
var Kinds = [...]Kind{KindI, KindO, KindT, KindS, KindZ, KindJ, KindL}

var kindNames = [...]string{"", "I", "O", "T", "S", "Z", "J", "L"}

func (k Kind) String() string {
	if k < KindNone || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// kindColors holds the canonical render color per kind as a hex string.
var kindColors = [...]string{
	KindNone: "",
	KindI:    "#00F0F0", // cyan
	KindO:    "#F0F000", // yellow
	KindT:    "#A000F0", // purple
	KindS:    "#00F000", // green
	KindZ:    "#F00000", // red
	KindJ:    "#0000F0", // blue
	KindL:    "#F0A000", // orange
}

// Color returns the kind's render color as a "#RRGGBB" hex string.
// Empty for KindNone.
func (k Kind) Color() string {
	if k < KindNone || int(k) >= len(kindColors) {
		return ""
	}
	return kindColors[k]
}

// ParseKind converts a single-letter shape name ("I".."L") to a Kind.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds {
		if kindNames[k] == s {
			return k, nil
		}
	}
	return KindNone, fmt.Errorf("unknown piece kind %q", s)
}

// shapeSpecs defines the canonical spawn orientation of each kind as a
// square character grid ('X' occupied, '.' empty).
var shapeSpecs = [...][]string{
	KindI: {
		"....",
		"XXXX",
		"....",
		"....",
	},
	KindO: {
		"XX",
		"XX",
	},
	KindT: {
		".X.",
		"XXX",
		"...",
	},
	KindS: {
		".XX",
		"XX.",
		"...",
	},
	KindZ: {
		"XX.",
		".XX",
		"...",
	},
	KindJ: {
		"X..",
		"XXX",
		"...",
	},
	KindL: {
		"..X",
		"XXX",
		"...",
	},
}

// baseShape builds a fresh copy of a kind's canonical shape matrix.
// Each piece gets its own matrix so in-place rotation never aliases
// another piece's shape.
func baseShape(k Kind) [][]bool {
	spec := shapeSpecs[k]
	shape := make([][]bool, len(spec))
	for y, row := range spec {
		shape[y] = make([]bool, len(row))
		for x, c := range row {
			shape[y][x] = c == 'X'
		}
	}
	return shape
}

// cloneShape returns a value copy of a shape matrix.
func cloneShape(shape [][]bool) [][]bool {
	out := make([][]bool, len(shape))
	for y, row := range shape {
		out[y] = make([]bool, len(row))
		copy(out[y], row)
	}
	return out
}

// rotatedCW returns the shape turned 90 degrees clockwise: a transpose
// followed by a row reversal. Shapes are square so the result has the
// same dimensions.
func rotatedCW(shape [][]bool) [][]bool {
	n := len(shape)
	out := make([][]bool, n)
	for y := range out {
		out[y] = make([]bool, n)
		for x := range out[y] {
			out[y][x] = shape[n-1-x][y]
		}
	}
	return out
}

// Piece is the currently falling, player-controlled piece: a kind, a
// rotation-state shape matrix, and a board-relative origin.
type Piece struct {
	Kind  Kind
	Shape [][]bool
	X, Y  int
}

// NewPiece creates a piece of the given kind in its spawn orientation at
// origin (0, 0).
func NewPiece(k Kind) Piece {
	return Piece{Kind: k, Shape: baseShape(k)}
}
