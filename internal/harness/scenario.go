package harness

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/blockfall/blockfall/internal/game"
)

// Scenario is one scripted, fully deterministic game.
type Scenario struct {
	// Name uniquely identifies the scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what the scenario demonstrates.
	Description string `yaml:"description"`

	// Pieces is the scripted spawn sequence as single-letter kind
	// names. The sequence must cover every spawn the scenario causes:
	// two pieces up front (active plus preview) and one more per lock.
	Pieces []string `yaml:"pieces"`

	// Setup pre-fills board rows before the first piece spawns, keyed
	// by row index (0 = top). Each row is exactly ten characters,
	// '.' for empty or a kind letter for a locked cell.
	Setup map[int]string `yaml:"setup,omitempty"`

	// Moves is the input script, applied in order.
	Moves []string `yaml:"moves,omitempty"`

	// Expect holds subset assertions on the final state. Unset fields
	// are not checked.
	Expect Expect `yaml:"expect,omitempty"`
}

// Expect is a subset match on the final counters.
type Expect struct {
	Score  *int   `yaml:"score,omitempty"`
	Lines  *int   `yaml:"lines,omitempty"`
	Level  *int   `yaml:"level,omitempty"`
	Status string `yaml:"status,omitempty"`
}

// moveEvents maps scenario move names to engine events. restart is
// handled separately because it is not an engine event.
var moveEvents = map[string]game.Event{
	"left":      game.EventMoveLeft,
	"right":     game.EventMoveRight,
	"rotate":    game.EventRotate,
	"soft_drop": game.EventSoftDrop,
	"hard_drop": game.EventHardDrop,
	"pause":     game.EventTogglePause,
}

// LoadScenario reads and parses a scenario YAML file. Unknown fields
// are rejected so typos fail loudly.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario file: %w", err)
	}

	var sc Scenario
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&sc); err != nil {
		return nil, fmt.Errorf("parse scenario YAML: %w", err)
	}

	if err := sc.validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario %s: %w", path, err)
	}

	return &sc, nil
}

func (sc *Scenario) validate() error {
	if sc.Name == "" {
		return fmt.Errorf("missing name")
	}
	if len(sc.Pieces) < 2 {
		return fmt.Errorf("need at least two pieces (active plus preview), got %d", len(sc.Pieces))
	}
	for _, p := range sc.Pieces {
		if _, err := game.ParseKind(p); err != nil {
			return err
		}
	}
	for y, row := range sc.Setup {
		if y < 0 || y >= game.Height {
			return fmt.Errorf("setup row %d out of range", y)
		}
		if len(row) != game.Width {
			return fmt.Errorf("setup row %d must have %d cells, got %d", y, game.Width, len(row))
		}
		for x, c := range row {
			if c == '.' {
				continue
			}
			if _, err := game.ParseKind(string(c)); err != nil {
				return fmt.Errorf("setup row %d cell %d: %w", y, x, err)
			}
		}
	}
	for _, mv := range sc.Moves {
		if _, ok := moveEvents[mv]; !ok && mv != "restart" {
			return fmt.Errorf("unknown move %q", mv)
		}
	}
	return nil
}

// pieceKinds converts the scripted piece letters to kinds. The
// scenario is validated on load, so this cannot fail afterwards.
func (sc *Scenario) pieceKinds() []game.Kind {
	kinds := make([]game.Kind, len(sc.Pieces))
	for i, p := range sc.Pieces {
		k, _ := game.ParseKind(p)
		kinds[i] = k
	}
	return kinds
}

// board builds the pre-filled starting board from the setup rows.
func (sc *Scenario) board() game.Board {
	var b game.Board
	for y, row := range sc.Setup {
		for x, c := range row {
			if c == '.' {
				continue
			}
			k, _ := game.ParseKind(string(c))
			b.SetCell(x, y, k)
		}
	}
	return b
}
