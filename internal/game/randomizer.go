package game

import "math/rand"

// PieceSource produces the sequence of upcoming piece kinds.
type PieceSource interface {
	Next() PieceKind
}

// BagSource deals pieces with the 7-bag policy: one shuffled permutation of
// all seven kinds is exhausted before reshuffling, so the gap between repeats
// of the same kind is bounded. State is the owned bag plus a cursor index.
type BagSource struct {
	rng *rand.Rand
	bag [KindCount]PieceKind
	idx int
}

// NewBagSource creates a bag source seeded for deterministic piece order.
func NewBagSource(seed int64) *BagSource {
	s := &BagSource{rng: rand.New(rand.NewSource(seed))}
	s.refill()
	return s
}

// Next returns the next piece kind, reshuffling when the bag is exhausted.
func (s *BagSource) Next() PieceKind {
	if s.idx >= len(s.bag) {
		s.refill()
	}
	k := s.bag[s.idx]
	s.idx++
	return k
}

func (s *BagSource) refill() {
	s.bag = Kinds
	s.rng.Shuffle(len(s.bag), func(i, j int) {
		s.bag[i], s.bag[j] = s.bag[j], s.bag[i]
	})
	s.idx = 0
}

// SequenceSource cycles through a fixed list of kinds. Used by tests that
// need full control over piece order.
type SequenceSource struct {
	pieces []PieceKind
	idx    int
}

// NewSequenceSource creates a source that repeats the given sequence forever.
func NewSequenceSource(pieces ...PieceKind) *SequenceSource {
	if len(pieces) == 0 {
		panic("game: sequence source needs at least one piece")
	}
	return &SequenceSource{pieces: pieces}
}

// Next returns the next kind in the cycle.
func (s *SequenceSource) Next() PieceKind {
	k := s.pieces[s.idx%len(s.pieces)]
	s.idx++
	return k
}
