package game

import "errors"

var (
	// ErrInsufficientSpace means the requested fleet needs more tiles than
	// the board has cells. Surfaced before any placement work happens.
	ErrInsufficientSpace = errors.New("not enough space to place all ships")

	// ErrPlacementExhausted means the placer ran out of full-board restarts
	// without finding a valid arrangement.
	ErrPlacementExhausted = errors.New("ship placement retry budget exhausted")
)
