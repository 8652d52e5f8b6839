package searcher

import "github.com/cgilab/nogo-mcts/board"

// expand creates one child per legal move for the side to move at leaf,
// enumerating placements in index order. It is a no-op if leaf already
// has children; a leaf with no legal moves for its side to move stays
// childless and is a terminal leaf.
func (t *Tree) expand(leaf nodeIndex) {
	node := t.node(leaf)
	if len(node.children) > 0 {
		return
	}

	side := node.sideToMove
	state := node.state
	opponent := side.Opposite()

	for i := 0; i < board.Cells; i++ {
		p := board.Placement{Index: i, Color: side}
		after := state
		if t.game.Apply(&after, p) != board.Legal {
			continue
		}
		// after is Apply(state, p) by construction: the oracle call
		// above is the only source of truth, so no separate
		// tree-integrity check is repeated here on the hot path.
		child := t.newNode(leaf, after, opponent, p)
		t.node(leaf).children = append(t.node(leaf).children, child)
	}
}
