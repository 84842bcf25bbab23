package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/blockfall/blockfall/internal/game"
)

// Run executes a scenario and returns the finished game for inspection.
// The piece source is scripted, so two identical runs produce identical
// final states.
func Run(sc *Scenario) *game.Game {
	g := game.New(
		game.WithSource(game.NewFixedSource(sc.pieceKinds()...)),
		game.WithBoard(sc.board()),
	)

	for _, mv := range sc.Moves {
		if mv == "restart" {
			g.Restart()
			continue
		}
		g.Apply(moveEvents[mv])
	}

	return g
}

// Check asserts the scenario's expectations against the final state.
func Check(t *testing.T, sc *Scenario, g *game.Game) {
	t.Helper()

	if sc.Expect.Score != nil {
		assert.Equal(t, *sc.Expect.Score, g.Score(), "final score")
	}
	if sc.Expect.Lines != nil {
		assert.Equal(t, *sc.Expect.Lines, g.Lines(), "final line count")
	}
	if sc.Expect.Level != nil {
		assert.Equal(t, *sc.Expect.Level, g.Level(), "final level")
	}
	if sc.Expect.Status != "" {
		assert.Equal(t, sc.Expect.Status, g.Status().String(), "final status")
	}
}
