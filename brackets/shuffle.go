package brackets

import (
	"math/rand/v2"
	"sync"
)

// Shuffler is the randomness port of knockout progression. *rand.Rand satisfies it.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

func NewSeededShuffler(seed uint64) Shuffler {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

type lockedShuffler struct {
	mu  sync.Mutex
	src Shuffler
}

// NewLockedShuffler makes src safe for use from concurrent request handlers.
func NewLockedShuffler(src Shuffler) Shuffler {
	return &lockedShuffler{src: src}
}

func (s *lockedShuffler) Shuffle(n int, swap func(i, j int)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.src.Shuffle(n, swap)
}

func shuffle[S ~[]E, E any](slice S, s Shuffler) {
	s.Shuffle(
		len(slice),
		func(i, j int) { slice[i], slice[j] = slice[j], slice[i] },
	)
}
