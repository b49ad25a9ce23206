package strategy

import "battleship/game"

var rotations = [4]int{0, 90, 180, 270}

// AnalyzeShape classifies a connected hit cluster by matching its normalized
// cells against every catalog variant in every rotation. Returns the tile
// count and the recognized family, FamilyUnknown when nothing matches.
// Bookkeeping and diagnostics only; attack selection never depends on it.
func AnalyzeShape(cells []game.Point) (int, game.Family) {
	if len(cells) == 0 {
		return 0, game.FamilyUnknown
	}
	norm := normalize(cells)

	for _, id := range game.ShipIDs() {
		shape := game.ShapeByID(id)
		if shape.Size != len(cells) {
			continue
		}
		for _, variant := range shape.Variants {
			for _, deg := range rotations {
				if setsEqual(norm, normalize(game.Rotate(variant, deg))) {
					return len(cells), shape.Family
				}
			}
		}
	}

	// Any single row or column reads as a straight run even at sizes the
	// catalog does not carry.
	minX, maxX, minY, maxY := bounds(cells)
	if minX == maxX || minY == maxY {
		return len(cells), game.FamilyStraight
	}
	return len(cells), game.FamilyUnknown
}

func bounds(cells []game.Point) (minX, maxX, minY, maxY int) {
	minX, maxX = cells[0].X, cells[0].X
	minY, maxY = cells[0].Y, cells[0].Y
	for _, c := range cells[1:] {
		minX = min(minX, c.X)
		maxX = max(maxX, c.X)
		minY = min(minY, c.Y)
		maxY = max(maxY, c.Y)
	}
	return minX, maxX, minY, maxY
}

// normalize shifts cells so the bounding box starts at the origin.
func normalize(cells []game.Point) map[game.Point]struct{} {
	minX, _, minY, _ := bounds(cells)
	set := make(map[game.Point]struct{}, len(cells))
	for _, c := range cells {
		set[game.Point{X: c.X - minX, Y: c.Y - minY}] = struct{}{}
	}
	return set
}

func setsEqual(a, b map[game.Point]struct{}) bool {
	if len(a) != len(b) {
		return false
	}
	for p := range a {
		if _, ok := b[p]; !ok {
			return false
		}
	}
	return true
}
