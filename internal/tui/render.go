package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/blockfall/blockfall/internal/game"
)

// Layout constants. Each board cell renders two columns wide so the
// playfield is roughly square in a terminal font.
const (
	boardLeft = 1
	boardTop  = 1
	cellWidth = 2
	panelLeft = boardLeft + game.Width*cellWidth + 3
)

func colorForKind(k game.Kind) tcell.Color {
	return tcell.GetColor(k.Color())
}

func cellStyle(k game.Kind) tcell.Style {
	if k == game.KindNone {
		return tcell.StyleDefault
	}
	return tcell.StyleDefault.Background(colorForKind(k))
}

// Render draws one frame from a snapshot. The caller owns Show.
func Render(s tcell.Screen, snap game.Snapshot) {
	s.Clear()

	drawFrame(s)
	drawGrid(s, snap)
	drawActive(s, snap.Active)
	drawPanel(s, snap)

	if snap.Status != game.StatusRunning {
		drawBanner(s, snap.Status)
	}

	s.Show()
}

func drawFrame(s tcell.Screen) {
	style := tcell.StyleDefault.Foreground(tcell.ColorGray)
	right := boardLeft + game.Width*cellWidth

	for y := boardTop; y < boardTop+game.Height; y++ {
		s.SetContent(boardLeft-1, y, '│', nil, style)
		s.SetContent(right, y, '│', nil, style)
	}
	for x := boardLeft - 1; x <= right; x++ {
		s.SetContent(x, boardTop+game.Height, '─', nil, style)
	}
}

func drawGrid(s tcell.Screen, snap game.Snapshot) {
	for y := 0; y < game.Height; y++ {
		for x := 0; x < game.Width; x++ {
			drawCell(s, x, y, snap.Grid[y][x])
		}
	}
}

func drawActive(s tcell.Screen, p game.PieceView) {
	for sy, row := range p.Shape {
		for sx, occupied := range row {
			if !occupied {
				continue
			}
			// Rows above the board are not rendered.
			if by := p.Y + sy; by >= 0 {
				drawCell(s, p.X+sx, by, p.Kind)
			}
		}
	}
}

func drawCell(s tcell.Screen, x, y int, k game.Kind) {
	if k == game.KindNone {
		return
	}
	style := cellStyle(k)
	sx := boardLeft + x*cellWidth
	sy := boardTop + y
	for i := 0; i < cellWidth; i++ {
		s.SetContent(sx+i, sy, ' ', nil, style)
	}
}

func drawPanel(s tcell.Screen, snap game.Snapshot) {
	drawText(s, panelLeft, boardTop, fmt.Sprintf("Score  %d", snap.Score))
	drawText(s, panelLeft, boardTop+1, fmt.Sprintf("Lines  %d", snap.Lines))
	drawText(s, panelLeft, boardTop+2, fmt.Sprintf("Level  %d", snap.Level))

	drawText(s, panelLeft, boardTop+4, "Next")
	for sy, row := range snap.Next.Shape {
		for sx, occupied := range row {
			if !occupied {
				continue
			}
			style := cellStyle(snap.Next.Kind)
			px := panelLeft + sx*cellWidth
			py := boardTop + 5 + sy
			for i := 0; i < cellWidth; i++ {
				s.SetContent(px+i, py, ' ', nil, style)
			}
		}
	}

	drawText(s, panelLeft, boardTop+11, "←/→ move  ↑ rotate")
	drawText(s, panelLeft, boardTop+12, "↓ drop  space slam")
	drawText(s, panelLeft, boardTop+13, "p pause  r restart")
	drawText(s, panelLeft, boardTop+14, "q quit")
}

func drawBanner(s tcell.Screen, status game.Status) {
	msg := " PAUSED "
	if status == game.StatusOver {
		msg = " GAME OVER - r to restart "
	}

	style := tcell.StyleDefault.Reverse(true)
	x := boardLeft + (game.Width*cellWidth-len([]rune(msg)))/2
	y := boardTop + game.Height/2
	for i, r := range msg {
		s.SetContent(x+i, y, r, nil, style)
	}
}

func drawText(s tcell.Screen, x, y int, text string) {
	for i, r := range text {
		s.SetContent(x+i, y, r, nil, tcell.StyleDefault)
	}
}
