package searcher

import (
	"github.com/google/uuid"

	"github.com/cgilab/nogo-mcts/board"
)

// Search runs a single-threaded MCTS search over one root and returns
// the chosen move: runs the budget out single-threaded over one root,
// then returns the depth-1 child with max visits, or ok=false if the
// root has no children.
func Search(searchID uuid.UUID, state board.Board, rootSideToMove board.Color, game Game, budget Budget, opts ...TreeOption) (board.Placement, bool, SearchMetric) {
	t := NewTree(state, rootSideToMove, game, opts...)
	t.metrics.Start(searchID)

	RunBudget(t, budget)

	move, ok := t.BestMove()
	return move, ok, t.metrics.Complete()
}
