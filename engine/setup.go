package engine

import (
	"battleship/game"

	"golang.org/x/exp/rand"
)

// Setup is the default BoardSetup: a grid populated by the game placer.
type Setup struct {
	rows, cols int
	counts     map[int]int
	rng        *rand.Rand
	board      *game.Grid
}

// NewSetup prepares a board setup for the given dimensions and fleet. The
// caller owns the RNG so batches can seed each battle independently.
func NewSetup(rows, cols int, counts map[int]int, rng *rand.Rand) *Setup {
	return &Setup{rows: rows, cols: cols, counts: counts, rng: rng}
}

func (s *Setup) PlaceShips() error {
	board, err := game.Place(s.rows, s.cols, s.counts, s.rng)
	if err != nil {
		return err
	}
	s.board = board
	return nil
}

// Board returns a defensive copy of the placed grid, nil before PlaceShips.
func (s *Setup) Board() *game.Grid {
	if s.board == nil {
		return nil
	}
	return s.board.Copy()
}
