package searcher

import "github.com/cgilab/nogo-mcts/board"

// backprop walks from leaf up to the root via parent links, updating
// visits/wins and, if RAVE is enabled, the RAVE map. "Win at n" means
// the playout winner is the color that moved INTO n, i.e.
// winner == opposite(n.sideToMove) -- equivalently winner != n.sideToMove.
//
// Both plays and wins are updated for every visited non-root node's
// move when RAVE is enabled.
func (t *Tree) backprop(leaf nodeIndex, winner board.Color) {
	raveEnabled := t.policy == UCB1RAVE

	guard := 0
	for cur := leaf; ; {
		node := t.node(cur)
		node.visits++
		if winner != node.sideToMove {
			node.wins++
		}

		if raveEnabled && cur != t.root {
			entry := t.rave[node.move]
			entry.plays++
			if winner != node.sideToMove {
				entry.wins++
			}
			t.rave[node.move] = entry
		}

		if cur == t.root {
			break
		}
		cur = node.parent
		if guard++; guard > len(t.nodes)+1 {
			panic(invariantViolation("backprop did not terminate at root: possible parent cycle"))
		}
	}
}
