package searcher

import "github.com/cgilab/nogo-mcts/board"

// playout simulates uniformly random legal self-play from node until
// one side has no legal move. The loop terminates when the side whose
// turn it is has no move, and THAT side loses.
func (t *Tree) playout(from nodeIndex) board.Color {
	state := t.node(from).state
	turn := t.node(from).sideToMove

	for {
		set := t.pool.get(turn)
		if _, ok := set.pickAndApply(t.game, &state, t.rng); !ok {
			// turn has no legal placement: turn loses.
			break
		}
		turn = turn.Opposite()
	}

	winner := turn.Opposite()
	if winner == board.Empty {
		panic(invariantViolation("playout produced an Empty winner"))
	}
	return winner
}
