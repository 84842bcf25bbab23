// Package tui is the interactive terminal client. It owns the render
// loop and key handling; all rules live in the game engine.
package tui

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/blockfall/blockfall/internal/game"
)

// frameInterval is the render tick. Gravity is driven by the same tick
// through Game.Step, which accumulates elapsed time internally.
const frameInterval = 16 * time.Millisecond

// Client runs one game on an initialized tcell screen. The caller owns
// screen Init and Fini.
type Client struct {
	screen tcell.Screen
	game   *game.Game
}

// NewClient wires a game to a screen.
func NewClient(g *game.Game, screen tcell.Screen) *Client {
	return &Client{screen: screen, game: g}
}

// Run drives the game until the player quits or ctx is canceled. The
// final game state stays readable on the Game after Run returns.
func (c *Client) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := c.screen.PollEvent()
			if ev == nil {
				// Screen finalized.
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	last := time.Now()
	Render(c.screen, c.game.Snapshot())

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				in := DecodeKey(ev)
				switch {
				case in.Quit:
					return nil
				case in.Restart:
					c.game.Restart()
				case in.HasEvent:
					c.game.Apply(in.Event)
				}
			case *tcell.EventResize:
				c.screen.Sync()
			}
			Render(c.screen, c.game.Snapshot())

		case now := <-ticker.C:
			c.game.Step(now.Sub(last))
			last = now
			Render(c.screen, c.game.Snapshot())
		}
	}
}
