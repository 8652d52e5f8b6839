package searcher

import "github.com/cgilab/nogo-mcts/board"

// neighbors returns the up-to-4 orthogonally adjacent cell indices, used
// by test fixtures to carve out self-capture/no-legal-move boards.
func neighbors(index int) []int {
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
