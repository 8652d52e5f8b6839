package searcher

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/cgilab/nogo-mcts/board"
)

// Scenario 1: empty 9x9 board, Black to move, mode=mcts, simulation=1.
func TestSearchEmptyBoardSingleSimulation(t *testing.T) {
	var state board.Board
	rules := board.NewStandardRules()

	move, ok, _ := Search(uuid.New(), state, board.Black, rules, FixedSimulations(1), WithRNG(newSeededRNG(1)))

	require.True(t, ok)
	require.True(t, rules.Legal(state, move))
}

// Scenario 2: Black has exactly one legal move at (4,4). The board is
// Black everywhere except two empty cells, (4,4) and (4,5), and one
// isolated White stone at (3,5) whose only remaining liberty is (4,5):
// placing Black at (4,4) simply extends the living Black group (legal),
// while placing Black at (4,5) would capture the White stone (illegal
// under NoGo, which forbids captures outright).
func TestSearchSingleLegalMove(t *testing.T) {
	rules := board.NewStandardRules()
	only := board.Index(4, 4)
	other := board.Index(4, 5)
	isolatedWhite := board.Index(3, 5)

	var state board.Board
	for i := 0; i < board.Cells; i++ {
		if i == only || i == other {
			continue
		}
		state[i] = board.Black
	}
	state[isolatedWhite] = board.White

	move, ok, _ := Search(uuid.New(), state, board.Black, rules, FixedSimulations(5), WithRNG(newSeededRNG(2)))

	require.True(t, ok)
	require.Equal(t, only, move.Index)
	require.Equal(t, board.Black, move.Color)
}

// Scenario 3: Black has no legal move anywhere.
func TestSearchNoLegalMove(t *testing.T) {
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

	_, ok, _ := Search(uuid.New(), state, board.Black, rules, FixedSimulations(5), WithRNG(newSeededRNG(3)))

	require.False(t, ok)
}

// Scenario 4: determinism with fixed seed.
func TestSearchDeterministicWithFixedSeed(t *testing.T) {
	var state board.Board
	rules := board.NewStandardRules()

	move1, ok1, _ := Search(uuid.New(), state, board.Black, rules, FixedSimulations(200), WithRNG(newSeededRNG(42)))
	move2, ok2, _ := Search(uuid.New(), state, board.Black, rules, FixedSimulations(200), WithRNG(newSeededRNG(42)))

	require.True(t, ok1)
	require.True(t, ok2)
	require.Equal(t, move1, move2)
}

func TestRootVisitsEqualsIterationCount(t *testing.T) {
	var state board.Board
	tr := NewTree(state, board.Black, board.NewStandardRules(), WithRNG(newSeededRNG(7)))

	for i := 0; i < 50; i++ {
		tr.Iterate()
	}

	require.Equal(t, 50, tr.RootVisits())
}
