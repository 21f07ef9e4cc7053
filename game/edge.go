package game

import "sync"

// edgeTableSize is 3^10: ten edge-and-X squares, three states each.
const edgeTableSize = 59049

// edgeAndXLists names, for each border, the eight edge squares plus the
// two interior X-squares next to the corners. Corners appear in two
// lists on purpose; the heuristic double-counts them.
var edgeAndXLists = [4][10]int{
	{22, 11, 12, 13, 14, 15, 16, 17, 18, 27}, // top
	{72, 81, 82, 83, 84, 85, 86, 87, 88, 77}, // bottom
	{22, 11, 21, 31, 41, 51, 61, 71, 81, 72}, // left
	{27, 18, 28, 38, 48, 58, 68, 78, 88, 77}, // right
}

var (
	edgeTable [edgeTableSize]int
	edgeOnce  sync.Once
)

// EdgeIndex encodes the pieces on the given squares as a base-3 number,
// most significant square first: 0 empty, 1 player's piece, 2 the
// opponent's. The result is always in [0, 59049).
func EdgeIndex(player Piece, b *Board, squares [10]int) int {
	index := 0
	for _, sq := range squares {
		digit := 0
		switch b[sq] {
		case Empty:
			digit = 0
		case player:
			digit = 1
		default:
			digit = 2
		}
		index = index*3 + digit
	}
	return index
}

// EdgeStability sums the precomputed stability of all four edges from
// player's perspective. The first call builds the table; afterwards it
// is immutable and safe to share between concurrent searches.
func EdgeStability(player Piece, b *Board) int {
	edgeOnce.Do(buildEdgeTable)
	score := 0
	for _, squares := range edgeAndXLists {
		score += edgeTable[EdgeIndex(player, b, squares)]
	}
	return score
}

// buildEdgeTable scores every possible configuration of one edge by
// playing out the ten edge-and-X squares as if they were the whole
// board: both sides alternate edge-confined moves (passing when stuck)
// until neither can play, and the entry records the best reachable
// piece-count differential for the player owning digit 1. A sub-game
// value depends only on the relative configuration, so positions met
// during one playout fill table entries for free.
func buildEdgeTable() {
	top := edgeAndXLists[0]
	computed := make([]bool, edgeTableSize)
	for index := 0; index < edgeTableSize; index++ {
		if !computed[index] {
			edgeValue(Black, decodeEdge(index, top), top, computed)
		}
	}
}

// decodeEdge lays out the configuration encoded by index on an
// otherwise empty board, with Black as the digit-1 owner.
func decodeEdge(index int, squares [10]int) *Board {
	b := EmptyBoard()
	for i := len(squares) - 1; i >= 0; i-- {
		switch index % 3 {
		case 1:
			b[squares[i]] = Black
		case 2:
			b[squares[i]] = White
		}
		index /= 3
	}
	return b
}

func edgeValue(player Piece, b *Board, squares [10]int, computed []bool) int {
	index := EdgeIndex(player, b, squares)
	if computed[index] {
		return edgeTable[index]
	}

	var value int
	moves := edgeMoves(player, b, squares)
	switch {
	case len(moves) > 0:
		value = LosingValue
		for _, move := range moves {
			nb := b.Copy()
			nb.MakeMove(move, player)
			if v := -edgeValue(Opponent(player), nb, squares, computed); v > value {
				value = v
			}
		}
	case len(edgeMoves(Opponent(player), b, squares)) > 0:
		value = -edgeValue(Opponent(player), b, squares, computed)
	default:
		value = edgeDifferential(player, b, squares)
	}

	edgeTable[index] = value
	computed[index] = true
	return value
}

// edgeMoves returns player's legal moves restricted to the edge squares.
func edgeMoves(player Piece, b *Board, squares [10]int) []int {
	var moves []int
	for _, sq := range squares {
		if b.LegalMove(sq, player) {
			moves = append(moves, sq)
		}
	}
	return moves
}

func edgeDifferential(player Piece, b *Board, squares [10]int) int {
	opp := Opponent(player)
	diff := 0
	for _, sq := range squares {
		switch b[sq] {
		case player:
			diff++
		case opp:
			diff--
		}
	}
	return diff
}
