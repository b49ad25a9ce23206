package strategy

import (
	"testing"

	"battleship/game"

	"github.com/stretchr/testify/require"
)

func TestNextAttack(t *testing.T) {
	t.Run("uniform map breaks ties on checkerboard parity", func(t *testing.T) {
		s := NewTargeting(2, 2, map[int]int{1: 1})

		x, y, err := s.NextAttack()

		require.NoError(t, err)
		require.Equal(t, 1, (x+y)%2, "first attack should land on a parity-1 cell")
		require.Equal(t, 1, x)
		require.Equal(t, 0, y, "row-major scan should reach (1,0) before (0,1)")
	})

	t.Run("boosted neighbour outranks the checkerboard", func(t *testing.T) {
		s := NewTargeting(10, 10, map[int]int{2: 1})
		s.RegisterAttack(3, 3, true, false)

		x, y, err := s.NextAttack()

		require.NoError(t, err)
		require.Contains(t, []game.Point{{X: 3, Y: 2}, {X: 2, Y: 3}, {X: 4, Y: 3}, {X: 3, Y: 4}}, game.Point{X: x, Y: y},
			"hunt mode should pick an orthogonal neighbour of the hit")
	})

	t.Run("degenerate all-zero map falls back to first un-attacked cell", func(t *testing.T) {
		s := NewTargeting(2, 2, map[int]int{})
		for y := 0; y < 2; y++ {
			for x := 0; x < 2; x++ {
				s.probs[y][x] = 0.0
			}
		}
		s.RegisterAttack(0, 0, false, false)

		x, y, err := s.NextAttack()

		require.NoError(t, err)
		require.Equal(t, 1, x)
		require.Equal(t, 0, y, "fallback should be row-major, not parity-ordered")
	})

	t.Run("fails once every cell has been attacked", func(t *testing.T) {
		s := NewTargeting(2, 2, map[int]int{})
		for y := 0; y < 2; y++ {
			for x := 0; x < 2; x++ {
				s.RegisterAttack(x, y, false, false)
			}
		}

		_, _, err := s.NextAttack()

		require.ErrorIs(t, err, ErrNoAttacksRemaining)
	})

	t.Run("never proposes an attacked cell", func(t *testing.T) {
		s := NewTargeting(3, 3, map[int]int{1: 1})
		seen := make(map[game.Point]struct{})
		for i := 0; i < 9; i++ {
			x, y, err := s.NextAttack()
			require.NoError(t, err)
			p := game.Point{X: x, Y: y}
			require.NotContains(t, seen, p)
			seen[p] = struct{}{}
			s.RegisterAttack(x, y, false, false)
		}
	})
}

func TestRegisterAttack(t *testing.T) {
	t.Run("hit doubles in-bounds un-attacked neighbours", func(t *testing.T) {
		s := NewTargeting(10, 10, map[int]int{3: 1})

		s.RegisterAttack(3, 3, true, false)

		for _, p := range []game.Point{{X: 2, Y: 3}, {X: 4, Y: 3}, {X: 3, Y: 2}, {X: 3, Y: 4}} {
			require.Equal(t, 2.0, s.probs[p.Y][p.X], "neighbour %v should double", p)
		}
		require.Equal(t, 1.0, s.probs[3][5], "non-neighbours keep the prior")
		require.Equal(t, 1.0, s.probs[0][0])
	})

	t.Run("corner hit boosts only the two in-bounds neighbours", func(t *testing.T) {
		s := NewTargeting(5, 5, map[int]int{1: 1})

		s.RegisterAttack(0, 0, true, false)

		require.Equal(t, 2.0, s.probs[0][1])
		require.Equal(t, 2.0, s.probs[1][0])
	})

	t.Run("attacked neighbours are not boosted", func(t *testing.T) {
		s := NewTargeting(5, 5, map[int]int{1: 1})
		s.RegisterAttack(2, 3, false, false)

		s.RegisterAttack(3, 3, true, false)

		require.Equal(t, 1.0, s.probs[3][2], "missed cell should keep its prior")
		require.Equal(t, 2.0, s.probs[3][4])
	})

	t.Run("sunk zeroes the exclusion buffer around the recovered shape", func(t *testing.T) {
		s := NewTargeting(10, 10, map[int]int{1: 1, 2: 1})
		s.RegisterAttack(4, 4, true, false)
		s.RegisterAttack(5, 4, true, true)

		// Bounding box (4..5, 4) grown by one: x 3..6, y 3..5.
		for y := 3; y <= 5; y++ {
			for x := 3; x <= 6; x++ {
				if (x == 4 || x == 5) && y == 4 {
					continue // the attacked cells themselves
				}
				require.Zero(t, s.probs[y][x], "buffer cell (%d,%d) should be excluded", x, y)
			}
		}
		require.Equal(t, 1.0, s.probs[2][4], "cells outside the buffer keep their prior")
	})

	t.Run("sunk decrements the matching ship id", func(t *testing.T) {
		s := NewTargeting(10, 10, map[int]int{1: 1, 2: 1})
		s.RegisterAttack(0, 0, true, false)
		s.RegisterAttack(1, 0, true, true)

		remaining := s.RemainingShips()
		require.Equal(t, 0, remaining[1], "2-tile sink should be attributed to ship 1")
		require.Equal(t, 1, remaining[2])
		require.False(t, s.AllShipsSunk())
	})

	t.Run("same-size ids fall back to catalog order", func(t *testing.T) {
		// Ships 3 (straight) and 4 (T) both have 4 tiles. An ambiguous
		// 4-tile square cluster matches neither family, so the first
		// surviving 4-tile id in catalog order takes the decrement.
		s := NewTargeting(10, 10, map[int]int{3: 1, 4: 1})
		s.RegisterAttack(0, 0, true, false)
		s.RegisterAttack(1, 0, true, false)
		s.RegisterAttack(0, 1, true, false)
		s.RegisterAttack(1, 1, true, true)

		remaining := s.RemainingShips()
		require.Equal(t, 0, remaining[3])
		require.Equal(t, 1, remaining[4])
	})

	t.Run("all ships sunk once bookkeeping reaches zero", func(t *testing.T) {
		s := NewTargeting(10, 10, map[int]int{1: 1})
		s.RegisterAttack(0, 0, true, false)
		s.RegisterAttack(1, 0, true, true)

		require.True(t, s.AllShipsSunk())
	})
}

func TestObserved(t *testing.T) {
	s := NewTargeting(2, 3, map[int]int{})
	s.RegisterAttack(0, 0, true, false)
	s.RegisterAttack(2, 1, false, false)

	board := s.Observed()

	require.Equal(t, byte('H'), board[0][0])
	require.Equal(t, byte('M'), board[1][2])
	require.Equal(t, byte('?'), board[0][1])

	board[0][1] = 'X'
	require.Equal(t, markUnknown, s.observed[0][1], "Observed should return a copy")
}
