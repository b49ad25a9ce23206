package game

import (
	"fmt"
	"sort"

	"golang.org/x/exp/rand"
)

// MaxRestarts bounds how many times Place may clear the board and start over
// after a dense arrangement paints itself into a corner.
const MaxRestarts = 100

var rotations = [4]int{0, 90, 180, 270}

// Place fills a fresh grid with the requested fleet. counts maps ship id
// (1..7) to the number of instances wanted. Ships never overlap and never
// touch orthogonally. Placement works largest-first over a shuffled anchor
// order; if some instance cannot be placed anywhere, the whole board is
// cleared and placement restarts from scratch, up to MaxRestarts times.
func Place(rows, cols int, counts map[int]int, rng *rand.Rand) (*Grid, error) {
	if total := TotalTiles(counts); total > rows*cols {
		return nil, fmt.Errorf("%d tiles on a %dx%d board: %w", total, rows, cols, ErrInsufficientSpace)
	}

	// Largest ships first reduces later placement failures. Equal sizes
	// keep ascending id order so the pass is deterministic per shuffle.
	ids := make([]int, 0, len(counts))
	for id, count := range counts {
		if count > 0 {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool {
		si, sj := catalog[ids[i]].Size, catalog[ids[j]].Size
		if si != sj {
			return si > sj
		}
		return ids[i] < ids[j]
	})

	anchors := make([]Point, 0, rows*cols)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			anchors = append(anchors, Point{X: x, Y: y})
		}
	}

	g := NewGrid(rows, cols)
	for restart := 0; restart < MaxRestarts; restart++ {
		rng.Shuffle(len(anchors), func(i, j int) {
			anchors[i], anchors[j] = anchors[j], anchors[i]
		})
		if placeFleet(g, ids, counts, anchors, rng) {
			return g, nil
		}
		g.Reset()
	}
	return nil, fmt.Errorf("%d restarts on a %dx%d board: %w", MaxRestarts, rows, cols, ErrPlacementExhausted)
}

func placeFleet(g *Grid, ids []int, counts map[int]int, anchors []Point, rng *rand.Rand) bool {
	for _, id := range ids {
		for i := 0; i < counts[id]; i++ {
			if !placeInstance(g, id, anchors, rng) {
				return false
			}
		}
	}
	return true
}

// placeInstance tries one ship instance at every anchor and rotation,
// painting the first valid configuration onto the grid.
func placeInstance(g *Grid, id int, anchors []Point, rng *rand.Rand) bool {
	shape := catalog[id]
	variant := shape.Variants[rng.Intn(len(shape.Variants))]

	for _, anchor := range anchors {
		for _, deg := range rotations {
			cells := Rotate(variant, deg)
			for i := range cells {
				cells[i].X += anchor.X
				cells[i].Y += anchor.Y
			}
			if validPlacement(g, cells) {
				for _, c := range cells {
					g.Set(c.X, c.Y, id)
				}
				return true
			}
		}
	}
	return false
}

// validPlacement checks bounds, collisions, and the one-cell separation rule:
// no orthogonal neighbour of any cell may already hold a ship.
func validPlacement(g *Grid, cells []Point) bool {
	for _, c := range cells {
		if !g.InBounds(c.X, c.Y) {
			return false
		}
		if g.At(c.X, c.Y) != Empty {
			return false
		}
		for _, d := range neighbours {
			nx, ny := c.X+d.X, c.Y+d.Y
			if g.InBounds(nx, ny) && g.At(nx, ny) != Empty {
				return false
			}
		}
	}
	return true
}
