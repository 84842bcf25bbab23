package game

import "math/rand"

// PieceSource supplies the kind for each newly generated piece.
// Implemented by RandomSource (production) and FixedSource (tests).
type PieceSource interface {
	Next() Kind
}

// RandomSource draws each piece independently and uniformly from the
// seven kinds. There is no bag fairness; long droughts and streaks of a
// single shape are possible.
type RandomSource struct {
	rng *rand.Rand
}

// NewRandomSource creates a source seeded for reproducible runs.
func NewRandomSource(seed int64) *RandomSource {
	return &RandomSource{rng: rand.New(rand.NewSource(seed))}
}

// Next returns an independent uniform draw over the seven kinds.
func (s *RandomSource) Next() Kind {
	return Kinds[s.rng.Intn(len(Kinds))]
}

// FixedSource returns a predetermined sequence of kinds. It enables
// deterministic tests and golden board comparison.
type FixedSource struct {
	kinds []Kind
	idx   int
}

// NewFixedSource creates a source that returns the kinds in order.
//
// Example:
//
//	src := NewFixedSource(KindI, KindO)
//	src.Next() // KindI
//	src.Next() // KindO
//	src.Next() // panic: sequence exhausted
func NewFixedSource(kinds ...Kind) *FixedSource {
	return &FixedSource{kinds: kinds}
}

// Next returns the next scripted kind.
//
// Panics when the sequence is exhausted. This is a fail-fast guard
// against scenarios that spawn more pieces than they scripted.
func (s *FixedSource) Next() Kind {
	if s.idx >= len(s.kinds) {
		panic("FixedSource: piece sequence exhausted")
	}
	k := s.kinds[s.idx]
	s.idx++
	return k
}
