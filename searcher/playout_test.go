package searcher

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cgilab/nogo-mcts/board"
)

func TestPlayoutTerminatesAndReturnsOppositeOfLoser(t *testing.T) {
	var state board.Board
	tr := NewTree(state, board.Black, board.NewStandardRules())

	winner := tr.playout(tr.root)

	require.Contains(t, []board.Color{board.Black, board.White}, winner)
}

func TestPlayoutOnAlreadyTerminalNode(t *testing.T) {
	rules := board.NewStandardRules()
	var state board.Board
	for i := 0; i < board.Cells; i++ {
		if i%2 == 0 {
			state[i] = board.Black
		} else {
			state[i] = board.White
		}
	}
	center := board.Index(4, 4)
	state[center] = board.Empty
	for _, n := range neighbors(center) {
		state[n] = board.White
	}

	tr := NewTree(state, board.Black, rules)

	winner := tr.playout(tr.root)

	require.Equal(t, board.White, winner, "Black has no legal move, so Black loses immediately")
}

func TestPlayoutBoundedByRemainingCells(t *testing.T) {
	var state board.Board
	tr := NewTree(state, board.Black, board.NewStandardRules())

	// playout must not run forever; completing at all (within a test
	// timeout) demonstrates termination within <= 81 plies.
	for i := 0; i < 20; i++ {
		_ = tr.playout(tr.root)
	}
}
