// Package tuning holds the gameplay constants: the line-clear bonus
// table, the level curve, and the gravity speed curve.
//
// Default() is the canonical rule set and is what ships. Load reads
// overrides from a CUE file for experimentation; whatever comes back is
// validated before use so the engine never sees an inconsistent rule
// set.
package tuning

import (
	"fmt"
	"time"
)

// Tuning is a complete, self-consistent set of gameplay constants.
type Tuning struct {
	// LineBonus is indexed by the number of rows cleared in one lock
	// event (0..4); clears beyond four credit the last entry. The bonus
	// is multiplied by the pre-clear level.
	LineBonus [5]int

	// LinesPerLevel is the number of total cleared lines per level step.
	// Level = lines/LinesPerLevel + 1.
	LinesPerLevel int

	// BaseInterval is the automatic drop interval at level 1.
	BaseInterval time.Duration

	// IntervalStep is subtracted from BaseInterval for each level above 1.
	IntervalStep time.Duration

	// MinInterval is the floor of the drop interval.
	MinInterval time.Duration

	// HardDropBonus is awarded per row descended during a hard drop.
	HardDropBonus int
}

// Default returns the canonical rule set: single/double/triple/tetris
// bonuses of 40/100/300/1200 times the level, a level step every 10
// lines, and a gravity curve from 1000ms at level 1 down to a 50ms floor
// in 50ms steps.
func Default() Tuning {
	return Tuning{
		LineBonus:     [5]int{0, 40, 100, 300, 1200},
		LinesPerLevel: 10,
		BaseInterval:  1000 * time.Millisecond,
		IntervalStep:  50 * time.Millisecond,
		MinInterval:   50 * time.Millisecond,
		HardDropBonus: 2,
	}
}

// IntervalForLevel returns the automatic drop interval at a level:
// BaseInterval - (level-1)*IntervalStep, floored at MinInterval.
func (t Tuning) IntervalForLevel(level int) time.Duration {
	iv := t.BaseInterval - time.Duration(level-1)*t.IntervalStep
	if iv < t.MinInterval {
		return t.MinInterval
	}
	return iv
}

// Validate checks that a tuning is internally consistent.
func (t Tuning) Validate() error {
	if t.LineBonus[0] != 0 {
		return fmt.Errorf("line bonus for zero clears must be 0, got %d", t.LineBonus[0])
	}
	for i, b := range t.LineBonus {
		if b < 0 {
			return fmt.Errorf("line bonus [%d] must be non-negative, got %d", i, b)
		}
	}
	if t.LinesPerLevel <= 0 {
		return fmt.Errorf("lines per level must be positive, got %d", t.LinesPerLevel)
	}
	if t.BaseInterval <= 0 {
		return fmt.Errorf("base interval must be positive, got %v", t.BaseInterval)
	}
	if t.IntervalStep < 0 {
		return fmt.Errorf("interval step must be non-negative, got %v", t.IntervalStep)
	}
	if t.MinInterval <= 0 {
		return fmt.Errorf("min interval must be positive, got %v", t.MinInterval)
	}
	if t.MinInterval > t.BaseInterval {
		return fmt.Errorf("min interval %v exceeds base interval %v", t.MinInterval, t.BaseInterval)
	}
	if t.HardDropBonus < 0 {
		return fmt.Errorf("hard drop bonus must be non-negative, got %d", t.HardDropBonus)
	}
	return nil
}
