package agent

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cgilab/nogo-mcts/board"
)

func TestNewAgentDefaults(t *testing.T) {
	_, err := NewAgent("")

	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	require.Equal(t, "role", cfgErr.Field, "default role=unknown must fail validation")
}

func TestNewAgentValidRole(t *testing.T) {
	a, err := NewAgent("role=black name=student")

	require.NoError(t, err)
	require.Equal(t, "black", a.Role())
	require.Equal(t, "student", a.Name())
}

func TestNewAgentRejectsBadName(t *testing.T) {
	_, err := NewAgent("role=black name=bad[name]")

	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	require.Equal(t, "name", cfgErr.Field)
}

func TestNewAgentRejectsBadRole(t *testing.T) {
	_, err := NewAgent("role=purple")

	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	require.Equal(t, "role", cfgErr.Field)
}

func TestLaterDuplicateKeyOverwrites(t *testing.T) {
	a, err := NewAgent("role=black role=white")

	require.NoError(t, err)
	require.Equal(t, "white", a.Role())
}

func TestNotifyUpdatesProperty(t *testing.T) {
	a, err := NewAgent("role=black")
	require.NoError(t, err)

	a.Notify("simulation=500")

	require.Equal(t, "500", a.Property("simulation"))
}

func TestTakeActionRandomModeReturnsLegalMove(t *testing.T) {
	a, err := NewAgent("role=black search=random seed=7")
	require.NoError(t, err)

	var empty board.Board
	move, ok := a.TakeAction(empty)

	require.True(t, ok)
	require.Equal(t, board.Black, move.Color)
}

func TestTakeActionRandomModeNoLegalMove(t *testing.T) {
	a, err := NewAgent("role=black search=random seed=7")
	require.NoError(t, err)

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
	for _, n := range centerNeighbors(center) {
		state[n] = board.White
	}

	_, ok := a.TakeAction(state)

	require.False(t, ok)
}

func TestTakeActionMCTSModeReturnsLegalMove(t *testing.T) {
	a, err := NewAgent("role=black search=mcts simulation=10 seed=3")
	require.NoError(t, err)

	var empty board.Board
	move, ok := a.TakeAction(empty)

	rules := board.NewStandardRules()
	require.True(t, ok)
	require.True(t, rules.Legal(empty, move))
}

func TestTakeActionParallelModeReturnsLegalMove(t *testing.T) {
	a, err := NewAgent("role=white search=p-mcts simulation=10 thread=3 seed=9")
	require.NoError(t, err)

	var empty board.Board
	move, ok := a.TakeAction(empty)

	rules := board.NewStandardRules()
	require.True(t, ok)
	require.True(t, rules.Legal(empty, move))
	require.Equal(t, board.White, move.Color)
}

func centerNeighbors(index int) []int {
	row, col := board.RowCol(index)
	var out []int
	if row > 0 {
		out = append(out, board.Index(row-1, col))
	}
	if row < board.Size-1 {
		out = append(out, board.Index(row+1, col))
	}
	if col > 0 {
		out = append(out, board.Index(row, col-1))
	}
	if col < board.Size-1 {
		out = append(out, board.Index(row, col+1))
	}
	return out
}
