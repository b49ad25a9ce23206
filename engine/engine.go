// Package engine runs battles between two otherwise isolated opponents.
// Each side supplies the two capabilities below; the engine owns ground
// truth (boards, ship instances, turn order, win detection) and mediates
// every attack. A side's strategy only ever sees its own attack outcomes,
// never the opponent's board.
package engine

import (
	"errors"

	"battleship/game"
)

// ErrInvalidAttack means a strategy proposed an out-of-bounds or repeated
// coordinate. The engine rejects the battle instead of corrupting state.
var ErrInvalidAttack = errors.New("invalid attack coordinate")

// BoardSetup is the ship-placement capability of one side. Board must return
// a defensive copy; the engine reads it exactly once, right after PlaceShips,
// to build its authoritative ship-instance table.
type BoardSetup interface {
	PlaceShips() error
	Board() *game.Grid
}

// Strategy is the attack-selection capability of one side. The engine
// validates every proposed coordinate before resolving it and feeds the
// outcome back through RegisterAttack.
type Strategy interface {
	NextAttack() (x, y int, err error)
	RegisterAttack(x, y int, hit, sunk bool)
}

// Side bundles the two capabilities of one player.
type Side struct {
	Setup    BoardSetup
	Strategy Strategy
}

// MoveEvent describes one resolved attack, delivered to sinks.
type MoveEvent struct {
	Move   int // 1-based move index across the battle
	Player int // attacking side, 1 or 2
	X, Y   int
	Hit    bool
	Sunk   bool
}

// BattleResult is the terminal outcome of a battle. Winner 0 means a draw.
type BattleResult struct {
	Winner int
	Moves  int
}

// Sink is a write-only observer of battle progress. Sinks never influence
// engine state.
type Sink interface {
	OnMove(MoveEvent)
	OnBattleEnd(BattleResult)
}
