package engine

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"othello/experiments/metrics"
	"othello/game"
	"othello/searcher"
)

// Engine drives a local game between two strategies. It owns the
// alternation of players, pass detection, and game-over detection; the
// strategies only ever choose among legal moves.
type Engine struct {
	Board      *game.Board
	MoveNumber int
	black      searcher.Strategy
	white      searcher.Strategy
}

func LocalEngine(black, white searcher.Strategy) *Engine {
	if black == nil || white == nil {
		panic("both players need a strategy")
	}
	return &Engine{
		Board:      game.InitialBoard(),
		MoveNumber: 1,
		black:      black,
		white:      white,
	}
}

func (e *Engine) strategy(player game.Piece) searcher.Strategy {
	if player == game.Black {
		return e.black
	}
	return e.white
}

// Run plays the game to the end and returns the winner's color name
// ("" on a tie) along with per-game and per-move metrics.
func (e *Engine) Run() (string, metrics.GameMetric, []metrics.MoveMetric) {
	start := time.Now()
	var moveMetrics []metrics.MoveMetric

	log.Info().Msg("black is starting")

	player := game.Black
	for {
		if e.Board.AnyLegalMove(player) {
			move, metric := e.strategy(player).FindMove(player, e.Board, e.MoveNumber)
			if !e.Board.LegalMove(move, player) {
				panic(fmt.Sprintf("strategy for %v returned illegal move %d", player, move))
			}
			e.Board.MakeMove(move, player)
			moveMetrics = append(moveMetrics, metrics.MoveMetric{
				Step:         e.MoveNumber,
				Player:       player.String(),
				Move:         move,
				SearchMetric: metric,
			})
			log.Debug().
				Str("player", player.String()).
				Int("move", move).
				Int("moveNumber", e.MoveNumber).
				Msg("move played")
			e.MoveNumber++
		} else if e.Board.AnyLegalMove(game.Opponent(player)) {
			log.Debug().Str("player", player.String()).Msg("pass")
		} else {
			break
		}
		player = game.Opponent(player)
	}

	winner := e.Winner()
	end := time.Now()
	gameMetric := metrics.GameMetric{
		Winner:     winner,
		StartTime:  start,
		EndTime:    end,
		Duration:   end.Sub(start),
		TotalMoves: e.MoveNumber - 1,
		BlackCount: e.Board.Count(game.Black),
		WhiteCount: e.Board.Count(game.White),
	}

	log.Info().
		Str("winner", winner).
		Int("black", gameMetric.BlackCount).
		Int("white", gameMetric.WhiteCount).
		Int("moves", gameMetric.TotalMoves).
		Msg("game over")

	return winner, gameMetric, moveMetrics
}

// Winner returns the color name with more pieces, or "" on a tie.
func (e *Engine) Winner() string {
	diff := e.Board.CountDifference(game.Black)
	switch {
	case diff > 0:
		return game.Black.String()
	case diff < 0:
		return game.White.String()
	}
	return ""
}
