package agent

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"github.com/cgilab/nogo-mcts/board"
	"github.com/cgilab/nogo-mcts/searcher"
)

// Agent is a configured player that turns a board position into a
// move. It owns no tree state between calls -- every TakeAction builds
// a fresh search from scratch.
type Agent struct {
	meta    map[string]string
	role    board.Color
	rules   board.Rules
	rng     *rand.Rand
	metrics searcher.MetricsCollector
}

// Option configures an Agent at construction.
type Option func(*Agent)

// WithMetrics attaches a collector that every single-threaded ("mcts"
// mode) search reports to. It is NOT applied in p-mcts mode: a single
// collector instance shared across root-parallel workers' Tree values
// would race on its own bookkeeping fields, and each worker's state
// must stay exclusive.
func WithMetrics(m searcher.MetricsCollector) Option {
	return func(a *Agent) {
		a.metrics = m
	}
}

// NewAgent parses args (a key=value grammar) and validates name and
// role, returning a *ConfigError if either is invalid. The agent is not
// usable if construction fails.
func NewAgent(args string, opts ...Option) (*Agent, error) {
	meta := parseArgs(args)

	name := meta["name"]
	if strings.ContainsAny(name, "[]():; ") {
		err := &ConfigError{Field: "name", Value: name}
		log.Error().Err(err).Msg("agent construction failed")
		return nil, err
	}

	var role board.Color
	switch meta["role"] {
	case "black":
		role = board.Black
	case "white":
		role = board.White
	default:
		err := &ConfigError{Field: "role", Value: meta["role"]}
		log.Error().Err(err).Msg("agent construction failed")
		return nil, err
	}

	seed := uint64(1)
	if s, ok := meta["seed"]; ok {
		if parsed, err := strconv.ParseUint(s, 10, 64); err == nil {
			seed = parsed
		}
	}

	a := &Agent{
		meta:  meta,
		role:  role,
		rules: board.NewStandardRules(),
		rng:   rand.New(rand.NewSource(seed)),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// OpenEpisode and CloseEpisode are no-ops for the MCTS agent, present
// for facade parity.
func (a *Agent) OpenEpisode(flag string)  {}
func (a *Agent) CloseEpisode(flag string) {}

// Property returns a configuration value recorded at construction or
// via Notify.
func (a *Agent) Property(key string) string { return a.meta[key] }

// Notify updates a single `key=value` configuration entry in place.
func (a *Agent) Notify(kv string) {
	key, value, _ := strings.Cut(kv, "=")
	a.meta[key] = value
}

// Name returns the configured agent name.
func (a *Agent) Name() string { return a.meta["name"] }

// Role returns the configured agent role as a string ("black"/"white").
func (a *Agent) Role() string { return a.meta["role"] }

// TakeAction dispatches on the `search` configuration key: random, mcts
// (default), or p-mcts. It returns ok=false when the agent's side has
// no legal placement on b -- a normal outcome, not an error.
func (a *Agent) TakeAction(b board.Board) (board.Placement, bool) {
	switch a.meta["search"] {
	case "random":
		return searcher.RandomMove(a.rules, b, a.role, a.rng)
	case "p-mcts":
		return a.takeActionParallel(b)
	default:
		return a.takeActionMCTS(b)
	}
}

func (a *Agent) takeActionMCTS(b board.Board) (board.Placement, bool) {
	treeOpts := []searcher.TreeOption{searcher.WithRNG(a.rng)}
	if a.metrics != nil {
		treeOpts = append(treeOpts, searcher.WithTreeMetrics(a.metrics))
	}

	move, ok, _ := searcher.Search(uuid.New(), b, a.role, a.rules, a.budget(b), treeOpts...)
	return move, ok
}

func (a *Agent) takeActionParallel(b board.Board) (board.Placement, bool) {
	k := a.intProperty("thread", 4)
	seeds := make([]uint64, k)
	for i := range seeds {
		seeds[i] = a.rng.Uint64()
	}

	move, ok, _ := searcher.RunParallel(
		uuid.New(), b, a.role, a.rules, k,
		func(int) searcher.Budget { return a.budget(b) },
		seeds,
	)
	return move, ok
}

// budget builds the per-move Budget from the `simulation` configuration
// key: a fixed iteration count if `simulation` is a positive integer,
// otherwise the wall-clock budget over DefaultPhaseTable. The `timeout`
// key is not read.
func (a *Agent) budget(b board.Board) searcher.Budget {
	if n := a.intProperty("simulation", 0); n > 0 {
		return searcher.FixedSimulations(n)
	}
	return searcher.WallClock(searcher.DefaultPhaseTable)
}

func (a *Agent) intProperty(key string, fallback int) int {
	v, ok := a.meta[key]
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
