package searcher

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"othello/experiments/metrics"
	"othello/game"
	"othello/utils"
)

// noMove is never a playable square (square 0 is border).
const noMove = 0

// Strategy chooses a move for player on a board. The returned square is
// one of the player's legal moves; calling a strategy for a player with
// no legal move is a caller error (the driver must probe AnyLegalMove
// first).
type Strategy interface {
	FindMove(player game.Piece, board *game.Board, moveNumber int) (int, metrics.SearchMetric)
}

type Option func(a *AlphaBeta)

// AlphaBeta is a fixed-depth negamax searcher with alpha-beta pruning
// and killer-move ordering. One instance holds one board pool, so a
// single instance must not run concurrent searches; concurrent root
// analysis needs one AlphaBeta per goroutine (the edge table they share
// is read-only).
type AlphaBeta struct {
	depth      int
	eval       *game.Evaluator
	pool       *boardPool
	metrics    metrics.Collector
	moveNumber int
}

func WithEvaluator(eval *game.Evaluator) Option {
	return func(a *AlphaBeta) {
		if eval != nil {
			a.eval = eval
		}
	}
}

func WithMetrics() Option {
	return func(a *AlphaBeta) {
		a.metrics = metrics.NewCollector()
	}
}

func NewAlphaBeta(depth int, options ...Option) *AlphaBeta {
	if depth <= 0 {
		panic("search depth must be positive")
	}
	a := &AlphaBeta{ // Default values
		depth:   depth,
		eval:    game.NewEvaluator(),
		pool:    newBoardPool(depth),
		metrics: metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(a)
	}
	return a
}

// FindMove runs a full-window search and returns the best move found.
func (a *AlphaBeta) FindMove(player game.Piece, board *game.Board, moveNumber int) (int, metrics.SearchMetric) {
	if !board.AnyLegalMove(player) {
		panic(fmt.Sprintf("no legal move for %v", player))
	}
	a.moveNumber = moveNumber
	a.metrics.Start(a.depth)

	value, move := a.search(player, board, game.LosingValue, game.WinningValue, a.depth, noMove)

	metric := a.metrics.Complete()
	log.Debug().
		Str("player", player.String()).
		Int("move", move).
		Int("value", value).
		Int("nodes", metric.Nodes).
		Msg("search complete")
	return move, metric
}

// search returns the best achievable value for player and the move
// reaching it, from player's perspective (negamax). achievable is the
// best value already guaranteed, cutoff the bound past which the
// opponent would avoid this line, killer the first move to try.
func (a *AlphaBeta) search(player game.Piece, board *game.Board, achievable, cutoff, ply, killer int) (int, int) {
	if ply == 0 {
		a.metrics.AddLeaf()
		return a.eval.Evaluate(player, board, a.moveNumber), noMove
	}
	a.metrics.AddNode()

	moves := board.LegalMoves(player)
	if len(moves) == 0 {
		if board.AnyLegalMove(game.Opponent(player)) {
			// Pass: same position, opponent to move, bounds negated and swapped.
			value, _ := a.search(game.Opponent(player), board, -cutoff, -achievable, ply-1, noMove)
			return -value, noMove
		}
		return board.FinalValue(player), noMove
	}

	putFirst(moves, killer)

	bestMove := moves[0]
	// The reply that hurt us most so far, forwarded as the killer hint
	// for the opponent's search in later sibling branches.
	killer2 := noMove
	killer2Value := game.WinningValue
	for _, move := range moves {
		if achievable >= cutoff {
			a.metrics.AddCutoff()
			break
		}
		next := a.pool.board(ply)
		*next = *board
		next.MakeMove(move, player)

		value, reply := a.search(game.Opponent(player), next, -cutoff, -achievable, ply-1, killer2)
		value = -value
		if value > achievable {
			achievable = value
			bestMove = move
		}
		if reply != noMove && value < killer2Value {
			killer2 = reply
			killer2Value = value
		}
	}
	return achievable, bestMove
}

// putFirst moves killer to the front of moves, keeping the relative
// order of the rest, so ascending-square tie-breaking survives.
func putFirst(moves []int, killer int) {
	if killer == noMove {
		return
	}
	if i := utils.FindIndex(moves, killer); i > 0 {
		copy(moves[1:i+1], moves[:i])
		moves[0] = killer
	}
}
