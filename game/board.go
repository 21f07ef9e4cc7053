package game

import (
	"fmt"
	"strings"
)

// Piece is the content of a single board cell.
type Piece int8

const (
	Empty Piece = iota
	Black
	White
	Outer // border sentinel, never a legal destination
)

func (p Piece) String() string {
	switch p {
	case Empty:
		return "empty"
	case Black:
		return "black"
	case White:
		return "white"
	case Outer:
		return "outer"
	}
	return fmt.Sprintf("piece(%d)", int8(p))
}

// symbol is the one-character rendering used by Board.String.
func (p Piece) symbol() byte {
	switch p {
	case Black:
		return '@'
	case White:
		return 'o'
	case Empty:
		return '.'
	}
	return '?'
}

// Opponent returns the other player. Panics on a non-player piece.
func Opponent(player Piece) Piece {
	switch player {
	case Black:
		return White
	case White:
		return Black
	}
	panic(fmt.Sprintf("opponent of non-player piece %v", player))
}

const (
	// BoardSquares is the size of the bordered 10x10 grid.
	BoardSquares = 100
	// FirstSquare and LastSquare bound the playable 8x8 interior.
	// A square's tens digit is its row and its units digit its column,
	// both 1..8; everything else is border.
	FirstSquare = 11
	LastSquare  = 88

	// WinningValue and LosingValue are the terminal sentinels returned
	// by FinalValue. They dominate any score the evaluator can produce.
	WinningValue = 40000000
	LosingValue  = -WinningValue
)

// AllDirections holds the eight index offsets reaching a square's neighbors.
var AllDirections = [8]int{-11, -10, -9, -1, 1, 9, 10, 11}

// Board is the bordered position: a 10x10 grid stored row-major, with
// the outer ring fixed at Outer. It is a plain value; assignment copies.
type Board [BoardSquares]Piece

// InitialBoard returns a board with the four center squares occupied in
// the standard starting pattern and every other interior square empty.
func InitialBoard() *Board {
	b := EmptyBoard()
	b[44] = White
	b[45] = Black
	b[54] = Black
	b[55] = White
	return b
}

// EmptyBoard returns a board with an empty interior and Outer border.
func EmptyBoard() *Board {
	var b Board
	for sq := range b {
		b[sq] = Outer
	}
	for sq := FirstSquare; sq <= LastSquare; sq++ {
		if ValidSquare(sq) {
			b[sq] = Empty
		}
	}
	return &b
}

// ValidSquare reports whether sq addresses the playable interior.
func ValidSquare(sq int) bool {
	return sq >= FirstSquare && sq <= LastSquare && sq%10 >= 1 && sq%10 <= 8
}

// Copy returns an independent duplicate of the board.
func (b *Board) Copy() *Board {
	nb := *b
	return &nb
}

// Count returns the number of squares holding p.
func (b *Board) Count(p Piece) int {
	count := 0
	for sq := FirstSquare; sq <= LastSquare; sq++ {
		if b[sq] == p {
			count++
		}
	}
	return count
}

// CountDifference returns player's piece count minus the opponent's.
func (b *Board) CountDifference(player Piece) int {
	return b.Count(player) - b.Count(Opponent(player))
}

// findBracketingPiece walks from sq in direction dir over a run of the
// opponent's pieces and returns the square of player's piece bounding
// the run, or 0 when the run ends on anything else.
func (b *Board) findBracketingPiece(sq int, player Piece, dir int) int {
	opp := Opponent(player)
	for b[sq] == opp {
		sq += dir
	}
	if b[sq] == player {
		return sq
	}
	return 0
}

// wouldFlip returns the bracketing square if playing move for player
// would flip at least one piece in direction dir, or 0 otherwise.
func (b *Board) wouldFlip(move int, player Piece, dir int) int {
	c := move + dir
	if b[c] != Opponent(player) {
		return 0
	}
	return b.findBracketingPiece(c+dir, player, dir)
}

// LegalMove reports whether player may play at move.
func (b *Board) LegalMove(move int, player Piece) bool {
	if !ValidSquare(move) || b[move] != Empty {
		return false
	}
	for _, dir := range AllDirections {
		if b.wouldFlip(move, player, dir) != 0 {
			return true
		}
	}
	return false
}

// LegalMoves returns every square where player may play, in ascending
// square order. The fixed order makes search tie-breaking reproducible.
func (b *Board) LegalMoves(player Piece) []int {
	var moves []int
	for sq := FirstSquare; sq <= LastSquare; sq++ {
		if b.LegalMove(sq, player) {
			moves = append(moves, sq)
		}
	}
	return moves
}

// AnyLegalMove reports whether player has at least one legal move.
func (b *Board) AnyLegalMove(player Piece) bool {
	for sq := FirstSquare; sq <= LastSquare; sq++ {
		if b.LegalMove(sq, player) {
			return true
		}
	}
	return false
}

// MakeMove plays move for player in place, flipping every bracketed
// run. The move must be legal; callers are expected to draw moves from
// LegalMoves.
func (b *Board) MakeMove(move int, player Piece) {
	b[move] = player
	for _, dir := range AllDirections {
		b.makeFlips(move, player, dir)
	}
}

func (b *Board) makeFlips(move int, player Piece, dir int) {
	bracketer := b.wouldFlip(move, player, dir)
	if bracketer == 0 {
		return
	}
	for sq := move + dir; sq != bracketer; sq += dir {
		b[sq] = player
	}
}

// FinalValue scores a finished game for player: WinningValue with more
// pieces, LosingValue with fewer, 0 on an exact tie. Only meaningful
// once neither side has a legal move.
func (b *Board) FinalValue(player Piece) int {
	diff := b.CountDifference(player)
	switch {
	case diff > 0:
		return WinningValue
	case diff < 0:
		return LosingValue
	}
	return 0
}

// ParseBoard builds a board from eight 8-character rows using the same
// symbols String produces: '@' black, 'o' white, '.' empty.
func ParseBoard(rows ...string) (*Board, error) {
	if len(rows) != 8 {
		return nil, fmt.Errorf("expected 8 rows, got %d", len(rows))
	}
	b := EmptyBoard()
	for r, row := range rows {
		if len(row) != 8 {
			return nil, fmt.Errorf("row %d: expected 8 columns, got %d", r+1, len(row))
		}
		for c := 0; c < 8; c++ {
			sq := (r+1)*10 + c + 1
			switch row[c] {
			case '@':
				b[sq] = Black
			case 'o':
				b[sq] = White
			case '.':
				b[sq] = Empty
			default:
				return nil, fmt.Errorf("row %d: unknown piece %q", r+1, row[c])
			}
		}
	}
	return b, nil
}

func (b *Board) String() string {
	var sb strings.Builder
	sb.WriteString("  1 2 3 4 5 6 7 8\n")
	for row := 1; row <= 8; row++ {
		fmt.Fprintf(&sb, "%d", row*10)
		for col := 1; col <= 8; col++ {
			sb.WriteByte(' ')
			sb.WriteByte(b[row*10+col].symbol())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
