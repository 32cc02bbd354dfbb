package piece

import (
	"math/rand/v2"
	"sync"
)

// Source supplies the next piece to spawn.
type Source interface {
	Next() Piece
}

// Random draws kinds uniformly and independently.
type Random struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandom returns a Random source backed by rng. A nil rng uses the
// package-level generator.
func NewRandom(rng *rand.Rand) *Random {
	return &Random{rng: rng}
}

func (r *Random) Next() Piece {
	r.mu.Lock()
	defer r.mu.Unlock()

	var n int
	if r.rng == nil {
		n = rand.IntN(Count)
	} else {
		n = r.rng.IntN(Count)
	}
	return MustLookup(kinds[n])
}

// Sequence replays a fixed list of kinds, wrapping around at the end.
type Sequence struct {
	mu    sync.Mutex
	kinds []Kind
	next  int
}

// NewSequence returns a Sequence over kinds. It panics if kinds is empty.
func NewSequence(kinds ...Kind) *Sequence {
	if len(kinds) == 0 {
		panic("piece: empty sequence")
	}
	return &Sequence{kinds: kinds}
}

func (s *Sequence) Next() Piece {
	s.mu.Lock()
	defer s.mu.Unlock()

	k := s.kinds[s.next]
	s.next = (s.next + 1) % len(s.kinds)
	return MustLookup(k)
}
