package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"othello/config"
	"othello/engine"
	"othello/experiments/metrics"
	"othello/game"
	"othello/searcher"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("bad configuration")
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Msgf("bad log level %q", cfg.LogLevel)
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	runMatch(cfg)
}

func runMatch(cfg config.Config) {
	fmt.Printf("Running %d game(s): black depth %d vs white depth %d\n",
		cfg.Games, cfg.BlackDepth, cfg.WhiteDepth)

	wins := map[string]int{}
	for i := 0; i < cfg.Games; i++ {
		fmt.Printf("Game %d started...\n", i+1)
		winner, metric := runGame(cfg)
		wins[winner]++
		if winner == "" {
			fmt.Printf("Game %d over! Tie %d-%d\n", i+1, metric.BlackCount, metric.WhiteCount)
		} else {
			fmt.Printf("Game %d over! Winner: %s (%d-%d in %d moves)\n",
				i+1, winner, metric.BlackCount, metric.WhiteCount, metric.TotalMoves)
		}
	}
	fmt.Printf("Final tally: black %d, white %d, ties %d\n",
		wins["black"], wins["white"], wins[""])
}

// runGame executes a single game between the configured players and
// returns the winner
func runGame(cfg config.Config) (string, metrics.GameMetric) {
	black := createAlphaBeta(cfg.BlackDepth, cfg)
	white := createAlphaBeta(cfg.WhiteDepth, cfg)
	e := engine.LocalEngine(black, white)
	winner, gameMetric, _ := e.Run()
	fmt.Print(e.Board)
	return winner, gameMetric
}

func createAlphaBeta(depth int, cfg config.Config) *searcher.AlphaBeta {
	return searcher.NewAlphaBeta(depth,
		searcher.WithEvaluator(&game.Evaluator{Weights: cfg.Weights}),
		searcher.WithMetrics(),
	)
}
