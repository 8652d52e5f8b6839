package searcher

import "github.com/cgilab/nogo-mcts/board"

// Game is the rules-oracle contract the tree consumes. It is declared
// here, not imported from board, so that searcher stays decoupled from
// any particular rules implementation.
type Game interface {
	Legal(b board.Board, p board.Placement) bool
	Apply(b *board.Board, p board.Placement) board.ApplyResult
}
