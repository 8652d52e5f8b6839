package searcher

import (
	"golang.org/x/exp/rand"

	"github.com/cgilab/nogo-mcts/board"
)

// candidateSet is the per-color vector of all board-sized placements,
// reused across simulations and shuffled in place before each scan. It
// deliberately does not filter to legal moves up front: the
// shuffle-then-scan-then-stop-at-first-legal semantics are the
// specified behavior, not an approximation to fix.
type candidateSet struct {
	placements [board.Cells]board.Placement
}

func newCandidateSet(color board.Color) *candidateSet {
	cs := &candidateSet{}
	for i := 0; i < board.Cells; i++ {
		cs.placements[i] = board.Placement{Index: i, Color: color}
	}
	return cs
}

func (cs *candidateSet) shuffle(rng *rand.Rand) {
	rng.Shuffle(len(cs.placements), func(i, j int) {
		cs.placements[i], cs.placements[j] = cs.placements[j], cs.placements[i]
	})
}

// pickAndApply shuffles the set, scans in order, and applies the first
// legal placement found to b. Returns false if none of the 81 candidates
// is legal for color on b.
func (cs *candidateSet) pickAndApply(game Game, b *board.Board, rng *rand.Rand) (board.Placement, bool) {
	cs.shuffle(rng)
	for _, p := range cs.placements {
		if game.Apply(b, p) == board.Legal {
			return p, true
		}
	}
	return board.Placement{}, false
}

// candidatePool owns one candidateSet per color, exclusive to a single
// worker: its scratch vectors are never shared across concurrent
// searches.
type candidatePool struct {
	byColor map[board.Color]*candidateSet
}

func newCandidatePool() *candidatePool {
	return &candidatePool{
		byColor: map[board.Color]*candidateSet{
			board.Black: newCandidateSet(board.Black),
			board.White: newCandidateSet(board.White),
		},
	}
}

func (p *candidatePool) get(color board.Color) *candidateSet {
	cs, ok := p.byColor[color]
	if !ok {
		panic("searcher: no candidate set for color")
	}
	return cs
}

// RandomMove finds a legal placement for color on state by the same
// shuffle-then-scan-then-stop-at-first-legal rule the playout uses,
// without mutating state. It is the implementation of the agent's
// `random` search mode.
func RandomMove(game Game, state board.Board, color board.Color, rng *rand.Rand) (board.Placement, bool) {
	scratch := state
	return newCandidateSet(color).pickAndApply(game, &scratch, rng)
}
