package tuning

import (
	"fmt"
	"os"
	"time"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// Load reads tuning overrides from a CUE file. Fields not present in the
// file keep their Default() values; the merged tuning is validated
// before it is returned.
//
// Example file:
//
//	lineBonus:      [0, 40, 100, 300, 1200]
//	linesPerLevel:  10
//	baseIntervalMs: 1000
//	intervalStepMs: 50
//	minIntervalMs:  50
//	hardDropBonus:  2
func Load(path string) (Tuning, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return Tuning{}, fmt.Errorf("read tuning file: %w", err)
	}
	t, err := Parse(src)
	if err != nil {
		return Tuning{}, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Parse decodes tuning overrides from CUE source, starting from
// Default().
func Parse(src []byte) (Tuning, error) {
	t := Default()

	ctx := cuecontext.New()
	v := ctx.CompileBytes(src)
	if err := v.Err(); err != nil {
		return Tuning{}, fmt.Errorf("compile tuning: %w", err)
	}

	if err := parseLineBonus(v, &t.LineBonus); err != nil {
		return Tuning{}, err
	}
	if err := lookupInt(v, "linesPerLevel", &t.LinesPerLevel); err != nil {
		return Tuning{}, err
	}
	if err := lookupMillis(v, "baseIntervalMs", &t.BaseInterval); err != nil {
		return Tuning{}, err
	}
	if err := lookupMillis(v, "intervalStepMs", &t.IntervalStep); err != nil {
		return Tuning{}, err
	}
	if err := lookupMillis(v, "minIntervalMs", &t.MinInterval); err != nil {
		return Tuning{}, err
	}
	if err := lookupInt(v, "hardDropBonus", &t.HardDropBonus); err != nil {
		return Tuning{}, err
	}

	if err := t.Validate(); err != nil {
		return Tuning{}, fmt.Errorf("invalid tuning: %w", err)
	}
	return t, nil
}

// parseLineBonus reads the lineBonus list. When present it must have
// exactly len(dst) entries (indices 0..4 = lines cleared simultaneously).
func parseLineBonus(v cue.Value, dst *[5]int) error {
	bonus := v.LookupPath(cue.ParsePath("lineBonus"))
	if !bonus.Exists() {
		return nil
	}
	iter, err := bonus.List()
	if err != nil {
		return fmt.Errorf("lineBonus: %w", err)
	}
	i := 0
	for iter.Next() {
		if i >= len(dst) {
			return fmt.Errorf("lineBonus: expected exactly %d entries", len(dst))
		}
		n, err := iter.Value().Int64()
		if err != nil {
			return fmt.Errorf("lineBonus[%d]: %w", i, err)
		}
		dst[i] = int(n)
		i++
	}
	if i != len(dst) {
		return fmt.Errorf("lineBonus: expected exactly %d entries, got %d", len(dst), i)
	}
	return nil
}

// lookupInt reads an optional integer field into dst.
func lookupInt(v cue.Value, field string, dst *int) error {
	fv := v.LookupPath(cue.ParsePath(field))
	if !fv.Exists() {
		return nil
	}
	n, err := fv.Int64()
	if err != nil {
		return fmt.Errorf("%s: %w", field, err)
	}
	*dst = int(n)
	return nil
}

// lookupMillis reads an optional integer millisecond field into dst.
func lookupMillis(v cue.Value, field string, dst *time.Duration) error {
	fv := v.LookupPath(cue.ParsePath(field))
	if !fv.Exists() {
		return nil
	}
	n, err := fv.Int64()
	if err != nil {
		return fmt.Errorf("%s: %w", field, err)
	}
	*dst = time.Duration(n) * time.Millisecond
	return nil
}
