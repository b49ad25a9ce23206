// Package strategy implements attack-selection opponents. Targeting is the
// probability-map AI; Sweeper is a trivial row-major baseline. Both satisfy
// the engine's Strategy capability and only ever observe their own attack
// outcomes, never the opponent's board.
package strategy

import (
	"errors"

	"battleship/game"
	"battleship/utils"
)

// ErrNoAttacksRemaining means every board cell has been attacked. Reaching it
// indicates a logic bug upstream: a battle always ends before the board runs
// out under the engine's move cap.
var ErrNoAttacksRemaining = errors.New("no attack positions remaining")

// hitBoost multiplies the probability of cells orthogonally adjacent to an
// unresolved hit. An adjacency bias, not a true Bayesian update.
const hitBoost = 2.0

type mark byte

const (
	markUnknown mark = iota
	markHit
	markMiss
)

// Targeting keeps a per-cell probability estimate of the opponent's ships,
// seeded uniform and reshaped by attack feedback. With no unresolved hit it
// searches on the checkerboard; after a hit the boosted neighbours pull the
// next attacks into hunt mode until the ship resolves to sunk.
type Targeting struct {
	rows, cols int
	attacked   map[game.Point]struct{}
	observed   [][]mark
	probs      [][]float64
	remaining  map[int]int
}

// NewTargeting builds a strategy for an opponent board of the given size
// holding the given fleet (ship id -> instance count).
func NewTargeting(rows, cols int, counts map[int]int) *Targeting {
	observed := make([][]mark, rows)
	probs := make([][]float64, rows)
	for y := 0; y < rows; y++ {
		observed[y] = make([]mark, cols)
		probs[y] = make([]float64, cols)
		for x := 0; x < cols; x++ {
			probs[y][x] = 1.0
		}
	}
	remaining := make(map[int]int, len(counts))
	for id, count := range counts {
		remaining[id] = count
	}
	return &Targeting{
		rows:      rows,
		cols:      cols,
		attacked:  make(map[game.Point]struct{}),
		observed:  observed,
		probs:     probs,
		remaining: remaining,
	}
}

// NextAttack picks the un-attacked cell with the highest probability. Ties
// prefer checkerboard parity (x+y)%2 == 1; a degenerate all-zero map falls
// back to the first un-attacked cell in row-major order.
func (t *Targeting) NextAttack() (int, int, error) {
	maxProb := -1.0
	var candidates []game.Point
	for y := 0; y < t.rows; y++ {
		for x := 0; x < t.cols; x++ {
			if _, done := t.attacked[game.Point{X: x, Y: y}]; done {
				continue
			}
			switch p := t.probs[y][x]; {
			case p > maxProb:
				maxProb = p
				candidates = append(candidates[:0], game.Point{X: x, Y: y})
			case p == maxProb:
				candidates = append(candidates, game.Point{X: x, Y: y})
			}
		}
	}
	if len(candidates) == 0 {
		return 0, 0, ErrNoAttacksRemaining
	}
	if maxProb > 0 {
		for _, c := range candidates {
			if (c.X+c.Y)%2 == 1 {
				return c.X, c.Y, nil
			}
		}
	}
	return candidates[0].X, candidates[0].Y, nil
}

// RegisterAttack feeds back the outcome of an attack this strategy proposed.
// Hits boost un-attacked orthogonal neighbours; a sunk report recovers the
// full hit region, zeroes its exclusion buffer, and updates the best-effort
// remaining-fleet bookkeeping.
func (t *Targeting) RegisterAttack(x, y int, hit, sunk bool) {
	t.attacked[game.Point{X: x, Y: y}] = struct{}{}
	if !hit {
		t.observed[y][x] = markMiss
		return
	}
	t.observed[y][x] = markHit
	t.boostNeighbours(x, y)
	if sunk {
		cells := t.sunkRegion(x, y)
		t.excludeAround(cells)
		t.accountSunk(cells)
	}
}

func (t *Targeting) boostNeighbours(x, y int) {
	for _, d := range [4]game.Point{{X: 1, Y: 0}, {X: -1, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: -1}} {
		nx, ny := x+d.X, y+d.Y
		if nx < 0 || nx >= t.cols || ny < 0 || ny >= t.rows {
			continue
		}
		if _, done := t.attacked[game.Point{X: nx, Y: ny}]; !done {
			t.probs[ny][nx] *= hitBoost
		}
	}
}

// sunkRegion recovers the shape of the ship just sunk: the connected hit
// region anchored at the sinking cell.
func (t *Targeting) sunkRegion(x, y int) []game.Point {
	return game.FloodFill(game.Point{X: x, Y: y},
		func(p game.Point) bool {
			return p.X >= 0 && p.X < t.cols && p.Y >= 0 && p.Y < t.rows
		},
		func(p game.Point) bool { return t.observed[p.Y][p.X] == markHit })
}

// excludeAround zeroes every un-attacked cell in the sunk shape's bounding
// box grown by one cell: ships never touch, so the buffer is guaranteed water.
func (t *Targeting) excludeAround(cells []game.Point) {
	if len(cells) == 0 {
		return
	}
	minX, maxX := cells[0].X, cells[0].X
	minY, maxY := cells[0].Y, cells[0].Y
	for _, c := range cells[1:] {
		minX = min(minX, c.X)
		maxX = max(maxX, c.X)
		minY = min(minY, c.Y)
		maxY = max(maxY, c.Y)
	}
	minX = max(minX-1, 0)
	maxX = min(maxX+1, t.cols-1)
	minY = max(minY-1, 0)
	maxY = min(maxY+1, t.rows-1)

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			if _, done := t.attacked[game.Point{X: x, Y: y}]; !done {
				t.probs[y][x] = 0.0
			}
		}
	}
}

// accountSunk decrements the remaining count of whichever ship id best
// matches the sunk shape: same tile count and family first, tile count alone
// second, catalog order breaking ties. Can mis-attribute when several
// surviving ids share a size; the engine's win check does not rely on it.
func (t *Targeting) accountSunk(cells []game.Point) {
	size, family := AnalyzeShape(cells)
	ids := game.ShipIDs()

	idx := utils.FindIndexFunc(ids, func(id int) bool {
		shape := game.ShapeByID(id)
		return t.remaining[id] > 0 && shape.Size == size && shape.Family == family
	})
	if idx < 0 {
		idx = utils.FindIndexFunc(ids, func(id int) bool {
			return t.remaining[id] > 0 && game.ShapeByID(id).Size == size
		})
	}
	if idx >= 0 {
		t.remaining[ids[idx]]--
	}
}

// AllShipsSunk reports whether the tracked remaining counts have reached
// zero. A heuristic proxy for the engine's authoritative check, computed
// independently from this side's own feedback only.
func (t *Targeting) AllShipsSunk() bool {
	total := 0
	for _, count := range t.remaining {
		total += count
	}
	return total == 0
}

// RemainingShips returns a copy of the tracked remaining fleet.
func (t *Targeting) RemainingShips() map[int]int {
	out := make(map[int]int, len(t.remaining))
	for id, count := range t.remaining {
		out[id] = count
	}
	return out
}

// Observed returns a copy of the observation grid: '?' unknown, 'H' hit,
// 'M' miss. Diagnostics only.
func (t *Targeting) Observed() [][]byte {
	out := make([][]byte, t.rows)
	for y := 0; y < t.rows; y++ {
		out[y] = make([]byte, t.cols)
		for x := 0; x < t.cols; x++ {
			switch t.observed[y][x] {
			case markHit:
				out[y][x] = 'H'
			case markMiss:
				out[y][x] = 'M'
			default:
				out[y][x] = '?'
			}
		}
	}
	return out
}
