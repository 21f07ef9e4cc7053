package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMobility(t *testing.T) {
	t.Run("initial board", func(t *testing.T) {
		b := InitialBoard()
		cur, pot := Mobility(Black, b)
		require.Equal(t, 4, cur, "Black opens with four legal moves")
		require.Equal(t, 10, pot, "Ten empty squares touch a white piece")

		oCur, oPot := Mobility(White, b)
		require.Equal(t, cur, oCur, "The opening position is symmetric")
		require.Equal(t, pot, oPot, "The opening position is symmetric")
	})

	t.Run("potential mobility counts squares, not neighbors", func(t *testing.T) {
		// 33 touches both white pieces but counts once.
		b, err := ParseBoard(
			"........",
			"........",
			"........",
			"..oo....",
			"........",
			"........",
			"........",
			"........",
		)
		require.NoError(t, err)
		_, pot := Mobility(Black, b)
		require.Equal(t, 10, pot, "The ten squares ringing the white pair count once each")
	})
}

func TestEvaluate(t *testing.T) {
	t.Run("zero on the symmetric opening", func(t *testing.T) {
		e := NewEvaluator()
		b := InitialBoard()
		require.Equal(t, 0, e.Evaluate(Black, b, 1),
			"Every term cancels on the opening position")
		require.Equal(t, e.Evaluate(Black, b, 1), e.Evaluate(White, b, 1),
			"Neither side should be favored before the first move")
	})

	t.Run("rewards potential mobility", func(t *testing.T) {
		e := NewEvaluator()
		b := InitialBoard()
		b.MakeMove(34, Black)
		// Black's move exposed a long frontier of black pieces, which
		// is future mobility for white.
		require.Greater(t, e.Evaluate(White, b, 2), e.Evaluate(Black, b, 2),
			"The side facing the bigger frontier should score higher")
		require.Equal(t, -e.Evaluate(White, b, 2), e.Evaluate(Black, b, 2),
			"With no edge pieces the score is antisymmetric")
	})

	t.Run("mobility weight shifts after the late-game boundary", func(t *testing.T) {
		w := DefaultWeights
		early := w.CurrentBase + w.CurrentSlope*(w.LateMove-1)
		late := w.CurrentLateBase + w.CurrentLateSlope*w.LateMove
		require.Greater(t, w.CurrentSlope, w.CurrentLateSlope,
			"Mobility weight should grow slower late in the game")
		require.Greater(t, late, early, "The weight itself never drops at the boundary")
	})
}

func TestRoundDiv(t *testing.T) {
	require.Equal(t, 2, roundDiv(3, 2))
	require.Equal(t, -2, roundDiv(-3, 2))
	require.Equal(t, 1, roundDiv(2, 2))
	require.Equal(t, 0, roundDiv(1, 3))
}
