package searcher

import "othello/game"

// boardPool is the per-ply board arena: one buffer per remaining-ply
// value, allocated once per search session. Slot d is exclusively owned
// by the recursive call active at remaining-ply d, so a depth-first
// search never has two users of the same slot. A board taken from a
// slot is only valid for the duration of that call.
type boardPool struct {
	boards []game.Board
}

func newBoardPool(maxDepth int) *boardPool {
	return &boardPool{boards: make([]game.Board, maxDepth+1)}
}

func (p *boardPool) board(ply int) *game.Board {
	return &p.boards[ply]
}
