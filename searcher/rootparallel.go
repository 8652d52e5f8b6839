package searcher

import (
	"sort"
	"sync"

	"golang.org/x/exp/rand"

	"github.com/google/uuid"

	"github.com/cgilab/nogo-mcts/board"
)

// AggregateReport carries the per-move summed visits used to pick the
// root-parallel move, for callers that want to inspect the aggregation.
type AggregateReport struct {
	SummedVisits map[board.Placement]int
	Workers      []SearchMetric
}

// WorkerBudget builds a fresh Budget for one root-parallel worker. Each
// worker gets the full per-move budget independently: a
// fixed-simulations budget is NOT divided by K.
type WorkerBudget func(worker int) Budget

// RunParallel spawns k independent tree roots over the same state and
// root side to move, runs each to its own full budget with its own RNG
// seed and candidate-set scratch vectors (per-worker exclusive, no
// cross-tree communication during search), joins, and aggregates child
// visit counts by move key (robust to any reordering) to pick the move
// with the maximum summed visits.
func RunParallel(searchID uuid.UUID, state board.Board, rootSideToMove board.Color, game Game, k int, newBudget WorkerBudget, seeds []uint64, opts ...TreeOption) (board.Placement, bool, AggregateReport) {
	if k <= 0 {
		panic("searcher: RunParallel requires k > 0")
	}
	if len(seeds) != k {
		panic("searcher: RunParallel requires exactly k seeds, one per worker")
	}

	results := make([]map[board.Placement]int, k)
	metrics := make([]SearchMetric, k)

	var wg sync.WaitGroup
	wg.Add(k)
	for i := 0; i < k; i++ {
		go func(worker int) {
			defer wg.Done()

			workerOpts := append([]TreeOption{}, opts...)
			workerOpts = append(workerOpts, WithRNG(rand.New(rand.NewSource(seeds[worker]))))

			t := NewTree(state, rootSideToMove, game, workerOpts...)
			t.metrics.Start(searchID)
			RunBudget(t, newBudget(worker))

			results[worker] = t.ChildVisits()
			metrics[worker] = t.metrics.Complete()
		}(i)
	}
	wg.Wait() // join barrier: no worker tree is read before this returns

	summed := make(map[board.Placement]int)
	for _, r := range results {
		for move, visits := range r {
			summed[move] += visits
		}
	}

	best, ok := argmaxVisits(summed)
	return best, ok, AggregateReport{SummedVisits: summed, Workers: metrics}
}

// argmaxVisits picks the move with the maximum summed visits, breaking
// ties by cell index for determinism (map iteration order is not
// stable, so the candidates are sorted before scanning).
func argmaxVisits(summed map[board.Placement]int) (board.Placement, bool) {
	if len(summed) == 0 {
		return board.Placement{}, false
	}
	moves := make([]board.Placement, 0, len(summed))
	for move := range summed {
		moves = append(moves, move)
	}
	sort.Slice(moves, func(i, j int) bool { return moves[i].Index < moves[j].Index })

	best := moves[0]
	bestVisits := summed[best]
	for _, move := range moves[1:] {
		if v := summed[move]; v > bestVisits {
			best = move
			bestVisits = v
		}
	}
	return best, true
}
