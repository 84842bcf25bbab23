package tui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/blockfall/blockfall/internal/game"
)

// Input is a decoded key press. At most one of Quit, Restart, or
// HasEvent is set.
type Input struct {
	Quit     bool
	Restart  bool
	HasEvent bool
	Event    game.Event
}

func event(ev game.Event) Input {
	return Input{HasEvent: true, Event: ev}
}

// DecodeKey maps a key press to an engine input. Arrows and vi/wasd
// movement keys are equivalent.
func DecodeKey(ev *tcell.EventKey) Input {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return Input{Quit: true}
	case tcell.KeyLeft:
		return event(game.EventMoveLeft)
	case tcell.KeyRight:
		return event(game.EventMoveRight)
	case tcell.KeyDown:
		return event(game.EventSoftDrop)
	case tcell.KeyUp:
		return event(game.EventRotate)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return Input{Quit: true}
		case 'r', 'R':
			return Input{Restart: true}
		case 'h', 'a':
			return event(game.EventMoveLeft)
		case 'l', 'd':
			return event(game.EventMoveRight)
		case 'j', 's':
			return event(game.EventSoftDrop)
		case 'k', 'w':
			return event(game.EventRotate)
		case ' ':
			return event(game.EventHardDrop)
		case 'p', 'P':
			return event(game.EventTogglePause)
		}
	}

	return Input{}
}
