package engine

import (
	"fmt"

	"battleship/game"

	"github.com/rs/zerolog/log"
)

type Option func(*LocalEngine)

// WithStartingPlayer sets which side attacks first (1 or 2, default 1).
func WithStartingPlayer(player int) Option {
	return func(e *LocalEngine) {
		if player == 1 || player == 2 {
			e.starting = player
		}
	}
}

// WithMaxMoves overrides the draw cap, default rows*cols*100.
func WithMaxMoves(moves int) Option {
	return func(e *LocalEngine) {
		if moves > 0 {
			e.maxMoves = moves
		}
	}
}

// WithSinks attaches write-only observers for move and result events.
func WithSinks(sinks ...Sink) Option {
	return func(e *LocalEngine) {
		e.sinks = append(e.sinks, sinks...)
	}
}

// LocalEngine drives one battle between two sides in the same process.
type LocalEngine struct {
	rows, cols int
	sides      [2]Side
	starting   int
	maxMoves   int
	sinks      []Sink
}

func NewLocalEngine(rows, cols int, side1, side2 Side, options ...Option) *LocalEngine {
	e := &LocalEngine{
		rows:     rows,
		cols:     cols,
		sides:    [2]Side{side1, side2},
		starting: 1,
		maxMoves: rows * cols * 100,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Run plays the battle to its terminal outcome: a winner, a draw at the move
// cap, or an error when setup fails or a strategy misbehaves. Turns strictly
// alternate; the win check runs against the defender's real instance state
// after every move, never against the attacker's beliefs.
func (e *LocalEngine) Run() (BattleResult, error) {
	var fleets [2][]*game.ShipInstance
	for i, side := range e.sides {
		if err := side.Setup.PlaceShips(); err != nil {
			return BattleResult{}, fmt.Errorf("player %d setup: %w", i+1, err)
		}
		board := side.Setup.Board()
		if board == nil || board.Rows() != e.rows || board.Cols() != e.cols {
			return BattleResult{}, fmt.Errorf("player %d returned a board that is not %dx%d", i+1, e.rows, e.cols)
		}
		fleets[i] = game.Extract(board)
	}

	log.Debug().Msgf("player %d starts a %dx%d battle with fleets of %d and %d ships",
		e.starting, e.rows, e.cols, len(fleets[0]), len(fleets[1]))

	// Degenerate fleets never reach the turn loop. Both sides empty is a
	// draw; a single empty side is already fully sunk and loses outright.
	switch {
	case len(fleets[0]) == 0 && len(fleets[1]) == 0:
		return e.finish(BattleResult{}), nil
	case len(fleets[1]) == 0:
		return e.finish(BattleResult{Winner: 1}), nil
	case len(fleets[0]) == 0:
		return e.finish(BattleResult{Winner: 2}), nil
	}

	attacked := [2]map[game.Point]struct{}{
		make(map[game.Point]struct{}),
		make(map[game.Point]struct{}),
	}

	current := e.starting
	for moves := 1; moves <= e.maxMoves; moves++ {
		attacker, defender := current-1, 2-current

		x, y, err := e.sides[attacker].Strategy.NextAttack()
		if err != nil {
			return BattleResult{}, fmt.Errorf("player %d strategy: %w", current, err)
		}
		if err := e.validate(x, y, attacked[attacker]); err != nil {
			return BattleResult{}, fmt.Errorf("player %d: %w", current, err)
		}
		attacked[attacker][game.Point{X: x, Y: y}] = struct{}{}

		hit, sunk := game.Resolve(x, y, fleets[defender])
		e.sides[attacker].Strategy.RegisterAttack(x, y, hit, sunk)

		event := MoveEvent{Move: moves, Player: current, X: x, Y: y, Hit: hit, Sunk: sunk}
		for _, sink := range e.sinks {
			sink.OnMove(event)
		}

		if game.AllSunk(fleets[defender]) {
			return e.finish(BattleResult{Winner: current, Moves: moves}), nil
		}
		current = 3 - current
	}

	return e.finish(BattleResult{Moves: e.maxMoves}), nil
}

func (e *LocalEngine) validate(x, y int, attacked map[game.Point]struct{}) error {
	if x < 0 || x >= e.cols || y < 0 || y >= e.rows {
		return fmt.Errorf("(%d,%d) is out of bounds: %w", x, y, ErrInvalidAttack)
	}
	if _, done := attacked[game.Point{X: x, Y: y}]; done {
		return fmt.Errorf("(%d,%d) was already attacked: %w", x, y, ErrInvalidAttack)
	}
	return nil
}

func (e *LocalEngine) finish(result BattleResult) BattleResult {
	if result.Winner == 0 {
		log.Debug().Msgf("battle drawn after %d moves", result.Moves)
	} else {
		log.Debug().Msgf("player %d wins after %d moves", result.Winner, result.Moves)
	}
	for _, sink := range e.sinks {
		sink.OnBattleEnd(result)
	}
	return result
}
