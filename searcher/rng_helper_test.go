package searcher

import "golang.org/x/exp/rand"

func newSeededRNG(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
