// Package harness runs YAML-defined gameplay scenarios against the
// engine and compares the final board against golden snapshots.
//
// A scenario scripts a deterministic game: a fixed piece sequence,
// optional pre-filled board rows, a list of input moves, and
// expectations on the final counters.
//
//	name: single_clear
//	description: "Vertical I plugs the hole and clears the bottom row"
//	pieces: [I, O, T]
//	setup:
//	  19: "JJJJ.JJJJJ"
//	moves: [rotate, left, hard_drop]
//	expect:
//	  score: 72
//	  lines: 1
//	  level: 1
//	  status: running
//
// Setup rows use '.' for empty cells and a kind letter for locked
// cells. Golden files under testdata/golden hold the rendered final
// board; regenerate with:
//
//	go test ./internal/harness -update
package harness
