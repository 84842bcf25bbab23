package harness

import (
	"fmt"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/blockfall/blockfall/internal/game"
)

// renderState renders the locked board and the final counters as text.
// The active piece is deliberately excluded: locked cells and counters
// are the engine's durable output.
func renderState(snap game.Snapshot) []byte {
	var b strings.Builder

	for y := 0; y < game.Height; y++ {
		for x := 0; x < game.Width; x++ {
			k := snap.Grid[y][x]
			if k == game.KindNone {
				b.WriteByte('.')
			} else {
				b.WriteString(k.String())
			}
		}
		b.WriteByte('\n')
	}

	fmt.Fprintf(&b, "\nscore: %d\nlines: %d\nlevel: %d\nstatus: %s\n",
		snap.Score, snap.Lines, snap.Level, snap.Status)

	return []byte(b.String())
}

// RunWithGolden runs a scenario, checks its expectations, and compares
// the rendered final state against testdata/golden/{name}.golden.
func RunWithGolden(t *testing.T, sc *Scenario) {
	t.Helper()

	g := Run(sc)
	Check(t, sc, g)

	gold := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	gold.Assert(t, sc.Name, renderState(g.Snapshot()))
}
