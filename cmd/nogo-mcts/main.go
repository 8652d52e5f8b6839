// Command nogo-mcts drives the agent facade from the command line: a
// one-shot "move" lookup over a board read from stdin, and a
// "selfplay" loop that pits two configured agents against each other.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/cgilab/nogo-mcts/agent"
	"github.com/cgilab/nogo-mcts/board"
	"github.com/cgilab/nogo-mcts/metrics"
	"github.com/cgilab/nogo-mcts/searcher"
)

func main() {
	setupLogging()

	if err := rootCmd().Execute(); err != nil {
		log.Fatal().Err(err).Msg("nogo-mcts failed")
	}
}

func setupLogging() {
	out := io.Writer(os.Stderr)
	if isatty.IsTerminal(os.Stderr.Fd()) {
		out = colorable.NewColorableStderr()
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: out, TimeFormat: "15:04:05"}).With().Timestamp().Logger()
}

func rootCmd() *cobra.Command {
	var metricsAddr string

	root := &cobra.Command{
		Use:   "nogo-mcts",
		Short: "NoGo MCTS move-selection core",
	}
	root.PersistentFlags().StringVar(&metricsAddr, "metrics-addr", "",
		"if set, serve Prometheus metrics at http://<addr>/metrics (mcts mode only)")
	root.AddCommand(moveCmd(&metricsAddr), selfplayCmd(&metricsAddr))
	return root
}

// agentMetrics starts a Prometheus endpoint on addr, if non-empty, and
// returns per-worker-labeled collectors ready to pass to agent.WithMetrics.
func agentMetrics(addr string, labels ...string) []searcher.MetricsCollector {
	collectors := make([]searcher.MetricsCollector, len(labels))
	if addr == "" {
		return collectors
	}

	reg := prometheus.NewRegistry()
	c := metrics.NewCollectors(reg)
	metrics.Serve(reg, addr)
	for i, label := range labels {
		collectors[i] = metrics.NewPrometheusCollector(c, label)
	}
	return collectors
}

func moveCmd(metricsAddr *string) *cobra.Command {
	var role, search string
	var simulation, thread int
	var seed uint64

	cmd := &cobra.Command{
		Use:   "move",
		Short: "Read a 9x9 board from stdin and print the chosen placement",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("reading board: %w", err)
			}
			b, err := board.Parse(string(text))
			if err != nil {
				return err
			}

			opts := []agent.Option{}
			if collectors := agentMetrics(*metricsAddr, "0"); collectors[0] != nil {
				opts = append(opts, agent.WithMetrics(collectors[0]))
			}

			a, err := agent.NewAgent(fmt.Sprintf("role=%s search=%s simulation=%d thread=%d seed=%d",
				role, search, simulation, thread, seed), opts...)
			if err != nil {
				return err
			}

			move, ok := a.TakeAction(b)
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "no legal move")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", move)
			return nil
		},
	}

	cmd.Flags().StringVar(&role, "role", "black", "side to move: black or white")
	cmd.Flags().StringVar(&search, "search", "mcts", "search mode: random, mcts, or p-mcts")
	cmd.Flags().IntVar(&simulation, "simulation", 200, "fixed iteration budget (0 disables, falling back to the phase table)")
	cmd.Flags().IntVar(&thread, "thread", 4, "worker count for p-mcts")
	cmd.Flags().Uint64Var(&seed, "seed", 1, "RNG seed")
	return cmd
}

func selfplayCmd(metricsAddr *string) *cobra.Command {
	var games int
	var blackSearch, whiteSearch string
	var simulation int
	var seed uint64

	cmd := &cobra.Command{
		Use:   "selfplay",
		Short: "Play N games between two configured agents",
		RunE: func(cmd *cobra.Command, args []string) error {
			var blackOpts, whiteOpts []agent.Option
			if collectors := agentMetrics(*metricsAddr, "black", "white"); collectors[0] != nil {
				blackOpts = append(blackOpts, agent.WithMetrics(collectors[0]))
				whiteOpts = append(whiteOpts, agent.WithMetrics(collectors[1]))
			}

			black, err := agent.NewAgent(fmt.Sprintf("name=black role=black search=%s simulation=%d seed=%d", blackSearch, simulation, seed), blackOpts...)
			if err != nil {
				return err
			}
			white, err := agent.NewAgent(fmt.Sprintf("name=white role=white search=%s simulation=%d seed=%d", whiteSearch, simulation, seed+1), whiteOpts...)
			if err != nil {
				return err
			}

			wins := map[string]int{"black": 0, "white": 0}
			for i := 0; i < games; i++ {
				winner := playGame(black, white)
				wins[winner]++
				log.Info().Int("game", i+1).Str("winner", winner).Msg("selfplay game finished")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "black wins=%d white wins=%d\n", wins["black"], wins["white"])
			return nil
		},
	}

	cmd.Flags().IntVar(&games, "games", 1, "number of games to play")
	cmd.Flags().StringVar(&blackSearch, "black-search", "mcts", "search mode for Black")
	cmd.Flags().StringVar(&whiteSearch, "white-search", "mcts", "search mode for White")
	cmd.Flags().IntVar(&simulation, "simulation", 200, "fixed iteration budget per move")
	cmd.Flags().Uint64Var(&seed, "seed", 1, "base RNG seed (White gets seed+1)")
	return cmd
}

// playGame alternates TakeAction calls between black and white, starting
// with Black on an empty board, until one side has no legal move -- the
// host interprets that as a loss for this side.
func playGame(black, white *agent.Agent) string {
	var state board.Board
	turn := board.Black
	rules := board.NewStandardRules()

	for {
		mover := black
		if turn == board.White {
			mover = white
		}

		move, ok := mover.TakeAction(state)
		if !ok {
			if turn == board.Black {
				return "white"
			}
			return "black"
		}

		if rules.Apply(&state, move) != board.Legal {
			log.Fatal().Stringer("move", move).Msg("agent returned an illegal move")
		}
		turn = turn.Opposite()
	}
}
