package game

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestEdgeIndex(t *testing.T) {
	t.Run("empty edge encodes to zero", func(t *testing.T) {
		b := InitialBoard()
		for _, squares := range edgeAndXLists {
			require.Equal(t, 0, EdgeIndex(Black, b, squares),
				"No edge pieces exist on the initial board")
		}
	})

	t.Run("most significant square first", func(t *testing.T) {
		b := EmptyBoard()
		b[22] = Black
		require.Equal(t, 19683, EdgeIndex(Black, b, edgeAndXLists[0]),
			"The leading X-square should contribute 3^9")
		require.Equal(t, 2*19683, EdgeIndex(White, b, edgeAndXLists[0]),
			"The same piece should read as an opponent digit from white's side")
	})

	t.Run("stays in range on random playouts", func(t *testing.T) {
		rng := rand.New(rand.NewSource(7))
		b := InitialBoard()
		player := Black
		for i := 0; i < 60; i++ {
			moves := b.LegalMoves(player)
			if len(moves) == 0 {
				if !b.AnyLegalMove(Opponent(player)) {
					break
				}
				player = Opponent(player)
				continue
			}
			b.MakeMove(moves[rng.Intn(len(moves))], player)
			player = Opponent(player)

			for _, squares := range edgeAndXLists {
				for _, who := range []Piece{Black, White} {
					index := EdgeIndex(who, b, squares)
					require.GreaterOrEqual(t, index, 0)
					require.Less(t, index, edgeTableSize)
				}
			}
		}
	})
}

func TestEdgeStability(t *testing.T) {
	t.Run("symmetric on the initial board", func(t *testing.T) {
		b := InitialBoard()
		require.Equal(t, EdgeStability(Black, b), EdgeStability(White, b),
			"With no edge pieces both sides should see the same configuration")
		require.Equal(t, 0, EdgeStability(Black, b),
			"An all-empty edge should be worth nothing")
	})

	t.Run("a full friendly edge is worth its pieces", func(t *testing.T) {
		EdgeStability(Black, InitialBoard()) // force the table build

		allMine := 0
		for i := 0; i < 10; i++ {
			allMine = allMine*3 + 1
		}
		require.Equal(t, 10, edgeTable[allMine],
			"Ten settled friendly pieces leave no moves and a +10 differential")
		require.Equal(t, -10, edgeTable[2*allMine],
			"The mirrored configuration scores the same for the opponent")
	})

	t.Run("an exposed piece next to a hostile corner is a liability", func(t *testing.T) {
		// White owns the corner; black's neighbor gets captured as soon
		// as white extends the line, so the verdict is -3.
		b, err := ParseBoard(
			"o@......",
			"........",
			"........",
			"........",
			"........",
			"........",
			"........",
			"........",
		)
		require.NoError(t, err)
		index := EdgeIndex(Black, b, edgeAndXLists[0])
		EdgeStability(Black, b) // force the table build
		require.Equal(t, -3, edgeTable[index],
			"White plays third file, flipping black and owning three edge squares")
	})
}
