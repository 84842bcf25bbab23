package tui

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blockfall/blockfall/internal/game"
)

func newSimScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()

	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	s.SetSize(80, 30)
	t.Cleanup(s.Fini)

	return s
}

// rowText reads the primary runes of a screen row, trimmed.
func rowText(s tcell.SimulationScreen, y int) string {
	w, _ := s.Size()
	var b strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := s.GetContent(x, y)
		b.WriteRune(r)
	}
	return strings.TrimSpace(b.String())
}

func TestDecodeKey(t *testing.T) {
	cases := map[string]struct {
		ev   *tcell.EventKey
		want Input
	}{
		"left arrow":  {tcell.NewEventKey(tcell.KeyLeft, 0, 0), event(game.EventMoveLeft)},
		"right arrow": {tcell.NewEventKey(tcell.KeyRight, 0, 0), event(game.EventMoveRight)},
		"down arrow":  {tcell.NewEventKey(tcell.KeyDown, 0, 0), event(game.EventSoftDrop)},
		"up arrow":    {tcell.NewEventKey(tcell.KeyUp, 0, 0), event(game.EventRotate)},
		"vi left":     {tcell.NewEventKey(tcell.KeyRune, 'h', 0), event(game.EventMoveLeft)},
		"wasd right":  {tcell.NewEventKey(tcell.KeyRune, 'd', 0), event(game.EventMoveRight)},
		"space":       {tcell.NewEventKey(tcell.KeyRune, ' ', 0), event(game.EventHardDrop)},
		"pause":       {tcell.NewEventKey(tcell.KeyRune, 'p', 0), event(game.EventTogglePause)},
		"restart":     {tcell.NewEventKey(tcell.KeyRune, 'r', 0), Input{Restart: true}},
		"quit rune":   {tcell.NewEventKey(tcell.KeyRune, 'q', 0), Input{Quit: true}},
		"escape":      {tcell.NewEventKey(tcell.KeyEscape, 0, 0), Input{Quit: true}},
		"ctrl-c":      {tcell.NewEventKey(tcell.KeyCtrlC, 0, 0), Input{Quit: true}},
		"unbound":     {tcell.NewEventKey(tcell.KeyRune, 'x', 0), Input{}},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, DecodeKey(tc.ev))
		})
	}
}

func TestRender_DrawsHUD(t *testing.T) {
	s := newSimScreen(t)
	g := game.New(game.WithSource(game.NewFixedSource(game.KindO, game.KindI, game.KindT)))
	g.HardDrop()

	Render(s, g.Snapshot())

	assert.Contains(t, rowText(s, boardTop), "Score  36")
	assert.Contains(t, rowText(s, boardTop+1), "Lines  0")
	assert.Contains(t, rowText(s, boardTop+2), "Level  1")
	assert.Contains(t, rowText(s, boardTop+4), "Next")
}

func TestRender_PaintsLockedCells(t *testing.T) {
	s := newSimScreen(t)
	g := game.New(game.WithSource(game.NewFixedSource(game.KindO, game.KindI, game.KindT)))
	g.HardDrop() // O locks at rows 18-19, columns 4-5

	Render(s, g.Snapshot())

	_, _, style, _ := s.GetContent(boardLeft+4*cellWidth, boardTop+19)
	_, bg, _ := style.Decompose()
	assert.Equal(t, colorForKind(game.KindO), bg)
}

func TestRender_BannerOnPauseAndGameOver(t *testing.T) {
	s := newSimScreen(t)
	g := game.New(game.WithSource(game.NewFixedSource(game.KindO, game.KindI)))

	g.TogglePause()
	Render(s, g.Snapshot())
	assert.Contains(t, rowText(s, boardTop+game.Height/2), "PAUSED")

	g.TogglePause()
	Render(s, g.Snapshot())
	assert.NotContains(t, rowText(s, boardTop+game.Height/2), "PAUSED")
}

func TestRender_ActivePieceAboveBoardRowsSkipped(t *testing.T) {
	s := newSimScreen(t)

	// A hand-built view with negative Y must not panic or draw above
	// the frame.
	view := game.PieceView{
		Kind:  game.KindI,
		Shape: [][]bool{{false, false}, {true, true}},
		X:     0,
		Y:     -1,
	}
	snap := game.Snapshot{Active: view, Next: view, Status: game.StatusRunning}

	assert.NotPanics(t, func() { Render(s, snap) })
}
