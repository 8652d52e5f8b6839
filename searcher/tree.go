package searcher

import (
	"golang.org/x/exp/rand"

	"github.com/cgilab/nogo-mcts/board"
)

// nodeIndex addresses a node in a Tree's arena. It is never an ownership
// edge -- only an integer -- so the tree has no manual free routine and
// no possibility of a parent/child pointer cycle.
type nodeIndex int32

const noIndex nodeIndex = -1

// nodeRecord is one vertex of the search tree.
type nodeRecord struct {
	state      board.Board
	sideToMove board.Color
	move       board.Placement // meaningless for the root
	parent     nodeIndex
	children   []nodeIndex
	visits     int
	wins       int
}

type raveEntry struct {
	plays int
	wins  int
}

// Policy selects which tree policy a Tree uses at selection time.
type Policy int

const (
	UCB1 Policy = iota
	UCB1RAVE
)

// Tree is one arena-owned MCTS search tree rooted at a single position.
// A Tree is created at the start of a search, grown in place, queried
// once for the best move, and discarded -- no state persists between
// searches.
type Tree struct {
	nodes []nodeRecord
	root  nodeIndex

	game Game
	rng  *rand.Rand
	pool *candidatePool

	policy               Policy
	explorationConstant  float64
	simulationBudgetHint int // S in the RAVE beta schedule
	rave                 map[board.Placement]raveEntry

	metrics MetricsCollector
}

// TreeOption configures a Tree at construction.
type TreeOption func(*Tree)

// WithExplorationConstant overrides the UCB1 constant C (default sqrt(2)).
func WithExplorationConstant(c float64) TreeOption {
	return func(t *Tree) {
		if c > 0 {
			t.explorationConstant = c
		}
	}
}

// WithRAVE switches the tree policy to UCB+RAVE and records the planned
// simulation budget S used by the RAVE beta schedule.
func WithRAVE(simulationBudget int) TreeOption {
	return func(t *Tree) {
		t.policy = UCB1RAVE
		t.simulationBudgetHint = simulationBudget
		if t.rave == nil {
			t.rave = make(map[board.Placement]raveEntry)
		}
	}
}

// WithRNG overrides the tree's random engine, used by root-parallel
// workers so every worker seeds distinctly.
func WithRNG(rng *rand.Rand) TreeOption {
	return func(t *Tree) {
		t.rng = rng
	}
}

// WithTreeMetrics attaches a metrics collector.
func WithTreeMetrics(m MetricsCollector) TreeOption {
	return func(t *Tree) {
		if m != nil {
			t.metrics = m
		}
	}
}

// NewTree creates a root node for state with the given root side to
// move: rootSideToMove is the side about to act at state, so its legal
// placements become the root's depth-1 children.
func NewTree(state board.Board, rootSideToMove board.Color, game Game, opts ...TreeOption) *Tree {
	t := &Tree{
		game:                game,
		pool:                newCandidatePool(),
		explorationConstant: sqrt2,
		metrics:             NewNoopCollector(),
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.rng == nil {
		t.rng = rand.New(rand.NewSource(1))
	}

	t.root = t.newNode(noIndex, state, rootSideToMove, board.Placement{})
	return t
}

func (t *Tree) newNode(parent nodeIndex, state board.Board, sideToMove board.Color, move board.Placement) nodeIndex {
	idx := nodeIndex(len(t.nodes))
	t.nodes = append(t.nodes, nodeRecord{
		state:      state,
		sideToMove: sideToMove,
		move:       move,
		parent:     parent,
		children:   nil,
		visits:     0,
		wins:       0,
	})
	return idx
}

func (t *Tree) node(i nodeIndex) *nodeRecord {
	return &t.nodes[i]
}

// Root returns the root node's index.
func (t *Tree) Root() nodeIndex { return t.root }

// RootVisits returns the root's visit count, i.e. the number of
// completed iterations.
func (t *Tree) RootVisits() int {
	return t.nodes[t.root].visits
}

// BestMove returns the root child with the highest visit count and
// whether the root has any children at all.
func (t *Tree) BestMove() (board.Placement, bool) {
	root := t.node(t.root)
	if len(root.children) == 0 {
		return board.Placement{}, false
	}

	best := root.children[0]
	for _, c := range root.children[1:] {
		if t.nodes[c].visits > t.nodes[best].visits {
			best = c
		}
	}
	return t.nodes[best].move, true
}

// ChildVisits returns a map of move -> visits for every root child,
// used by the root-parallel coordinator to aggregate across trees.
func (t *Tree) ChildVisits() map[board.Placement]int {
	root := t.node(t.root)
	out := make(map[board.Placement]int, len(root.children))
	for _, c := range root.children {
		child := t.nodes[c]
		out[child.move] = child.visits
	}
	return out
}

// Iterate runs exactly one selection-expansion-playout-backpropagation
// cycle.
func (t *Tree) Iterate() {
	leaf := t.selectToLeaf()
	t.expand(leaf)

	var simulateFrom nodeIndex
	if children := t.node(leaf).children; len(children) > 0 {
		simulateFrom = children[t.rng.Intn(len(children))]
	} else {
		simulateFrom = leaf // terminal: side to move at leaf has no move
	}

	winner := t.playout(simulateFrom)
	t.backprop(simulateFrom, winner)
	t.metrics.AddEpisode()
}

const sqrt2 = 1.4142135623730951
