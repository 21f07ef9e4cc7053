package game

// Weights holds the tuning coefficients of the positional evaluator.
// The shape matters more than the exact numbers: the edge weight grows
// over the game, the current-mobility weight grows faster before move
// 25 than after, and the potential-mobility weight is flat.
type Weights struct {
	EdgeBase         int
	EdgeSlope        int
	EdgeScale        int
	CurrentBase      int
	CurrentSlope     int
	CurrentLateBase  int
	CurrentLateSlope int
	LateMove         int
	Potential        int
}

// DefaultWeights are the classic tuning values.
var DefaultWeights = Weights{
	EdgeBase:         312000,
	EdgeSlope:        6240,
	EdgeScale:        32000,
	CurrentBase:      50000,
	CurrentSlope:     2000,
	CurrentLateBase:  75000,
	CurrentLateSlope: 1000,
	LateMove:         25,
	Potential:        20000,
}

// Evaluator scores positions by blending edge stability with current
// and potential mobility. Higher is better for the scored player.
type Evaluator struct {
	Weights Weights
}

func NewEvaluator() *Evaluator {
	return &Evaluator{Weights: DefaultWeights}
}

// Mobility returns player's current mobility (number of legal moves)
// and potential mobility (number of empty squares adjacent to at least
// one opponent piece, a cheap proxy for future mobility).
func Mobility(player Piece, b *Board) (current, potential int) {
	opp := Opponent(player)
	for sq := FirstSquare; sq <= LastSquare; sq++ {
		if b[sq] != Empty {
			continue
		}
		if b.LegalMove(sq, player) {
			current++
		}
		for _, dir := range AllDirections {
			if b[sq+dir] == opp {
				potential++
				break
			}
		}
	}
	return current, potential
}

// Evaluate scores the position for player at the given move number
// (1-based, counting each placement by either side).
func (e *Evaluator) Evaluate(player Piece, b *Board, moveNumber int) int {
	w := e.Weights

	edgeWeight := w.EdgeBase + w.EdgeSlope*moveNumber
	currentWeight := w.CurrentBase + w.CurrentSlope*moveNumber
	if moveNumber >= w.LateMove {
		currentWeight = w.CurrentLateBase + w.CurrentLateSlope*moveNumber
	}

	pCur, pPot := Mobility(player, b)
	oCur, oPot := Mobility(Opponent(player), b)

	// Both mobility terms are normalized by the combined count plus 2
	// to dampen early-game noise and avoid division by zero.
	return roundDiv(edgeWeight*EdgeStability(player, b), w.EdgeScale) +
		roundDiv(currentWeight*(pCur-oCur), pCur+oCur+2) +
		roundDiv(w.Potential*(pPot-oPot), pPot+oPot+2)
}

// roundDiv divides rounding to nearest instead of truncating toward
// zero, so small negative terms are not biased upward.
func roundDiv(a, b int) int {
	if (a < 0) != (b < 0) {
		return -((-a + b/2) / b)
	}
	return (a + b/2) / b
}
