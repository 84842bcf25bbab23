package game

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blockfall/blockfall/internal/tuning"
)

func TestNew_SpawnsCenteredWithPreview(t *testing.T) {
	g := New(WithSource(NewFixedSource(KindI, KindO)))

	snap := g.Snapshot()
	assert.Equal(t, KindI, snap.Active.Kind)
	assert.Equal(t, 3, snap.Active.X, "4-wide piece centers at (10-4)/2")
	assert.Equal(t, 0, snap.Active.Y)
	assert.Equal(t, KindO, snap.Next.Kind)
	assert.Equal(t, StatusRunning, snap.Status)
	assert.Equal(t, 0, snap.Score)
	assert.Equal(t, 0, snap.Lines)
	assert.Equal(t, 1, snap.Level)
	assert.Equal(t, 1000*time.Millisecond, snap.DropInterval)
}

func TestNew_CentersOddWidthPiece(t *testing.T) {
	g := New(WithSource(NewFixedSource(KindT, KindO)))

	assert.Equal(t, 3, g.Snapshot().Active.X, "3-wide piece centers at (10-3)/2")
}

func TestGame_Move_HorizontalBlockIgnored(t *testing.T) {
	g := New(WithSource(NewFixedSource(KindI, KindO)))

	// The horizontal I occupies local x 0..3, so X bottoms out at 0.
	moves := 0
	for g.Move(-1, 0) {
		moves++
	}

	assert.Equal(t, 3, moves)
	assert.Equal(t, 0, g.Snapshot().Active.X)
	// A blocked horizontal move neither locks nor ends the game.
	assert.Equal(t, StatusRunning, g.Status())
	assert.Equal(t, KindI, g.Snapshot().Active.Kind)
}

func TestGame_Move_BlockedDownwardLocks(t *testing.T) {
	g := New(WithSource(NewFixedSource(KindO, KindT, KindI)))

	drops := 0
	for g.SoftDrop() {
		drops++
	}

	assert.Equal(t, 18, drops, "O falls from y=0 to y=18")

	snap := g.Snapshot()
	assert.Equal(t, KindO, snap.Grid[18][4])
	assert.Equal(t, KindO, snap.Grid[18][5])
	assert.Equal(t, KindO, snap.Grid[19][4])
	assert.Equal(t, KindO, snap.Grid[19][5])
	assert.Equal(t, KindT, snap.Active.Kind, "lock spawns the buffered piece")
	assert.Equal(t, KindI, snap.Next.Kind)
}

func TestGame_Rotate_RejectedAtWall(t *testing.T) {
	g := New(WithSource(NewFixedSource(KindI, KindO)))

	require.True(t, g.Rotate(), "rotation in open space succeeds")
	for g.Move(-1, 0) {
	}
	// The vertical I's column is at local x=2, so its origin rests at -2.
	require.Equal(t, -2, g.Snapshot().Active.X)

	before := g.Snapshot().Active.Shape
	assert.False(t, g.Rotate(), "rotating back to horizontal would leave the board")
	assert.Equal(t, before, g.Snapshot().Active.Shape, "rejected rotation leaves the shape unchanged")
}

func TestGame_Rotate_RejectedIntoOccupied(t *testing.T) {
	var b Board
	b.SetCell(4, 2, KindJ) // blocks the rotated T's bottom cell
	g := New(WithSource(NewFixedSource(KindT, KindO)), WithBoard(b))

	before := g.Snapshot().Active.Shape
	assert.False(t, g.Rotate())
	assert.Equal(t, before, g.Snapshot().Active.Shape)
}

func TestGame_HardDrop_AwardsBonusPerRow(t *testing.T) {
	g := New(WithSource(NewFixedSource(KindO, KindT, KindI)))

	rows := g.HardDrop()

	assert.Equal(t, 18, rows)
	assert.Equal(t, 36, g.Score(), "2 points per descended row")
	snap := g.Snapshot()
	assert.Equal(t, KindO, snap.Grid[18][4])
	assert.Equal(t, KindO, snap.Grid[19][5])
	assert.Equal(t, KindT, snap.Active.Kind, "hard drop ends in a lock and fresh spawn")
}

// dropVerticalI rotates the active I piece into a column, shifts it over
// the x=4 well, and hard-drops it.
func dropVerticalI(t *testing.T, g *Game) {
	t.Helper()
	require.Equal(t, KindI, g.Snapshot().Active.Kind)
	require.True(t, g.Rotate())
	require.True(t, g.Move(-1, 0)) // column from x=5 to x=4
	require.Equal(t, 16, g.HardDrop())
}

func TestGame_DoubleClear_AdjacentRowsBothCredited(t *testing.T) {
	var b Board
	fillRow(&b, 18, KindL, 4)
	fillRow(&b, 19, KindJ, 4)
	g := New(WithSource(NewFixedSource(KindI, KindO, KindT)), WithBoard(b))

	dropVerticalI(t, g)

	assert.Equal(t, 2, g.Lines(), "both adjacent rows credited in one lock event")
	assert.Equal(t, 16*2+100*1, g.Score())
	assert.Equal(t, 1, g.Level())

	snap := g.Snapshot()
	// The two uncleared I cells shift down into the freed rows.
	assert.Equal(t, KindI, snap.Grid[18][4])
	assert.Equal(t, KindI, snap.Grid[19][4])
	assert.Equal(t, KindNone, snap.Grid[19][0])
}

func TestGame_ClearLines_BonusTable(t *testing.T) {
	bonuses := map[int]int{1: 40, 2: 100, 3: 300, 4: 1200}

	for n, bonus := range bonuses {
		t.Run(fmt.Sprintf("%d_lines", n), func(t *testing.T) {
			var b Board
			for y := Height - n; y < Height; y++ {
				fillRow(&b, y, KindJ, 4)
			}
			g := New(WithSource(NewFixedSource(KindI, KindO, KindT)), WithBoard(b))

			dropVerticalI(t, g)

			assert.Equal(t, n, g.Lines())
			assert.Equal(t, 16*2+bonus, g.Score())
		})
	}
}

func TestGame_ClearLines_BonusScalesWithLevel(t *testing.T) {
	table := [5]int{0, 40, 100, 300, 1200}

	for level := 1; level <= 3; level++ {
		for n := 1; n <= 4; n++ {
			t.Run(fmt.Sprintf("level_%d_clear_%d", level, n), func(t *testing.T) {
				g := New(WithSource(NewFixedSource(KindT, KindO)))
				g.level = level
				g.lines = (level - 1) * g.tun.LinesPerLevel
				for y := Height - n; y < Height; y++ {
					fillRow(&g.board, y, KindJ)
				}

				before := g.score
				g.clearLines()

				assert.Equal(t, table[n]*level, g.score-before,
					"increment must be exactly lineBonus[%d] x level %d", n, level)
			})
		}
	}
}

func TestGame_LevelTransitions(t *testing.T) {
	g := New(WithSource(NewFixedSource(KindT, KindO)))

	// 9 total lines stays on level 1 at the base interval.
	g.lines = 8
	fillRow(&g.board, 19, KindJ)
	g.clearLines()
	assert.Equal(t, 9, g.Lines())
	assert.Equal(t, 1, g.Level())
	assert.Equal(t, 1000*time.Millisecond, g.DropInterval())

	// The 10th line steps to level 2 and speeds gravity up by 50ms.
	fillRow(&g.board, 19, KindJ)
	g.clearLines()
	assert.Equal(t, 10, g.Lines())
	assert.Equal(t, 2, g.Level())
	assert.Equal(t, 950*time.Millisecond, g.DropInterval())
}

func TestGame_DropInterval_Floor(t *testing.T) {
	g := New(WithSource(NewFixedSource(KindT, KindO)))

	g.level = 20
	assert.Equal(t, 50*time.Millisecond, g.DropInterval())

	g.level = 42
	assert.Equal(t, 50*time.Millisecond, g.DropInterval(), "interval never drops below the floor")
}

func TestGame_Step_GravityDropsOnInterval(t *testing.T) {
	g := New(WithSource(NewFixedSource(KindT, KindO)))

	g.Step(999 * time.Millisecond)
	assert.Equal(t, 0, g.Snapshot().Active.Y, "below the interval nothing moves")

	g.Step(1 * time.Millisecond)
	assert.Equal(t, 1, g.Snapshot().Active.Y, "accumulated time reaches the interval")

	g.Step(500 * time.Millisecond)
	assert.Equal(t, 1, g.Snapshot().Active.Y, "timer reset after the drop")

	g.Step(500 * time.Millisecond)
	assert.Equal(t, 2, g.Snapshot().Active.Y)
}

func TestGame_Step_PausedSuspendsGravityAndInput(t *testing.T) {
	g := New(WithSource(NewFixedSource(KindT, KindO)))

	g.TogglePause()
	require.Equal(t, StatusPaused, g.Status())

	g.Step(5 * time.Second)
	assert.Equal(t, 0, g.Snapshot().Active.Y)

	g.Apply(EventMoveLeft)
	assert.Equal(t, 3, g.Snapshot().Active.X, "input-driven movement is suppressed while paused")

	g.TogglePause()
	require.Equal(t, StatusRunning, g.Status())
	g.Apply(EventMoveLeft)
	assert.Equal(t, 2, g.Snapshot().Active.X)
}

func TestGame_GameOverOnBlockedSpawn(t *testing.T) {
	var b Board
	fillRow(&b, 1, KindJ) // the horizontal I spawns into row 1
	g := New(WithSource(NewFixedSource(KindI, KindO)), WithBoard(b))

	assert.Equal(t, StatusOver, g.Status())
	assert.Equal(t, KindI, g.Snapshot().Active.Kind, "the blocked piece stays visible")
}

func TestGame_EventsIgnoredWhenOver(t *testing.T) {
	var b Board
	fillRow(&b, 1, KindJ)
	g := New(WithSource(NewFixedSource(KindI, KindO)), WithBoard(b))
	require.Equal(t, StatusOver, g.Status())

	before := g.Snapshot()
	for _, ev := range []Event{EventMoveLeft, EventMoveRight, EventSoftDrop, EventRotate, EventHardDrop, EventTogglePause} {
		g.Apply(ev)
	}

	after := g.Snapshot()
	assert.Equal(t, before, after, "every event is a no-op once the game is over")
	assert.Equal(t, StatusOver, g.Status())
}

func TestGame_Apply_MapsEventsToOperations(t *testing.T) {
	g := New(WithSource(NewFixedSource(KindT, KindO)))

	g.Apply(EventMoveRight)
	assert.Equal(t, 4, g.Snapshot().Active.X)

	g.Apply(EventMoveLeft)
	assert.Equal(t, 3, g.Snapshot().Active.X)

	g.Apply(EventSoftDrop)
	assert.Equal(t, 1, g.Snapshot().Active.Y)

	g.Apply(EventRotate)
	assert.NotEqual(t, baseShape(KindT), g.Snapshot().Active.Shape)

	g.Apply(EventTogglePause)
	assert.Equal(t, StatusPaused, g.Status())
}

func TestGame_Restart_ResetsToFreshState(t *testing.T) {
	// Fuzz arbitrary prior states, then verify Restart is equivalent to a
	// fresh initialization regardless of what came before.
	rng := rand.New(rand.NewSource(7))
	events := []Event{EventMoveLeft, EventMoveRight, EventSoftDrop, EventRotate, EventHardDrop, EventTogglePause}

	for trial := 0; trial < 20; trial++ {
		g := New(WithSource(NewRandomSource(int64(trial))))
		for i := 0; i < 300; i++ {
			g.Apply(events[rng.Intn(len(events))])
			g.Step(time.Duration(rng.Intn(400)) * time.Millisecond)
		}

		g.Restart()

		snap := g.Snapshot()
		assert.Equal(t, 0, snap.Score, "trial %d", trial)
		assert.Equal(t, 0, snap.Lines, "trial %d", trial)
		assert.Equal(t, 1, snap.Level, "trial %d", trial)
		assert.Equal(t, StatusRunning, snap.Status, "trial %d", trial)
		assert.Equal(t, 1000*time.Millisecond, snap.DropInterval, "trial %d", trial)
		assert.Equal(t, [Height][Width]Kind{}, snap.Grid, "trial %d: board must be empty", trial)
		assert.Equal(t, 0, snap.Active.Y, "trial %d", trial)
	}
}

func TestGame_HardDrop_NoOpWhenPaused(t *testing.T) {
	g := New(WithSource(NewFixedSource(KindO, KindT)))

	g.TogglePause()
	assert.Equal(t, 0, g.HardDrop())
	assert.Equal(t, 0, g.Score())
}

func TestGame_Snapshot_IsIsolatedCopy(t *testing.T) {
	g := New(WithSource(NewFixedSource(KindT, KindO)))

	snap := g.Snapshot()
	snap.Grid[10][4] = KindZ
	snap.Active.Shape[0][0] = true

	fresh := g.Snapshot()
	assert.Equal(t, KindNone, fresh.Grid[10][4])
	assert.False(t, fresh.Active.Shape[0][0], "snapshot shape is a value copy")
}

func TestGame_TuningOverridesApply(t *testing.T) {
	tun := tuning.Default()
	tun.HardDropBonus = 5
	tun.LinesPerLevel = 2
	g := New(WithSource(NewFixedSource(KindO, KindT, KindI)), WithTuning(tun))

	g.HardDrop()
	assert.Equal(t, 18*5, g.Score())
}
