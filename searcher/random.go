package searcher

import (
	"fmt"

	"golang.org/x/exp/rand"

	"othello/experiments/metrics"
	"othello/game"
)

// Random picks a uniformly random legal move. It is the baseline
// opponent for experiments and tests.
type Random struct {
	rng *rand.Rand
}

func NewRandom(seed uint64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

func (r *Random) FindMove(player game.Piece, board *game.Board, moveNumber int) (int, metrics.SearchMetric) {
	moves := board.LegalMoves(player)
	if len(moves) == 0 {
		panic(fmt.Sprintf("no legal move for %v", player))
	}
	return moves[r.rng.Intn(len(moves))], metrics.SearchMetric{}
}
